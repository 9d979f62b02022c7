package interfaces

import (
	"context"

	"dealcost/internal/domain/entities"
)

// IDocumentScanner abstracts the external OCR provider (e.g. AWS Textract).
//
// The service only needs raw text lines back; picking the VIN candidate out
// of them is part of the gateway contract so callers stay provider-agnostic.
type IDocumentScanner interface {
	ScanDocument(ctx context.Context, image []byte) (entities.DocumentScan, error)
}
