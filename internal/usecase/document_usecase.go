package usecase

import (
	"context"
	"errors"
	"log"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"
)

var (
	ErrEmptyDocument        = errors.New("empty document image")
	ErrScannerNotConfigured = errors.New("document scanner not configured")
)

// IDocumentUseCase runs an uploaded document image through the OCR gateway.
type IDocumentUseCase interface {
	ScanDocument(ctx context.Context, image []byte) (entities.DocumentScan, error)
}

type DocumentUseCase struct {
	scanner interfaces.IDocumentScanner
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(scanner interfaces.IDocumentScanner) *DocumentUseCase {
	return &DocumentUseCase{scanner: scanner}
}

func (u *DocumentUseCase) ScanDocument(ctx context.Context, image []byte) (entities.DocumentScan, error) {
	if len(image) == 0 {
		return entities.DocumentScan{}, ErrEmptyDocument
	}
	if u.scanner == nil {
		return entities.DocumentScan{}, ErrScannerNotConfigured
	}

	scan, err := u.scanner.ScanDocument(ctx, image)
	if err != nil {
		log.Printf("[document][usecase] scan failed err=%v", err)
		return entities.DocumentScan{}, err
	}
	log.Printf("[document][usecase] scan done lines=%d vin=%q", len(scan.Lines), scan.VIN)
	return scan, nil
}
