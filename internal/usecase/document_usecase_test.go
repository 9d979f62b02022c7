package usecase

import (
	"context"
	"errors"
	"testing"

	"dealcost/internal/domain/entities"
	mock_interfaces "dealcost/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase_ScanDocument(t *testing.T) {
	t.Run("empty image", func(t *testing.T) {
		uc := NewDocumentUseCase(nil)
		_, err := uc.ScanDocument(context.Background(), nil)
		if !errors.Is(err, ErrEmptyDocument) {
			t.Fatalf("expected ErrEmptyDocument, got %v", err)
		}
	})

	t.Run("no scanner configured", func(t *testing.T) {
		uc := NewDocumentUseCase(nil)
		_, err := uc.ScanDocument(context.Background(), []byte{0x1})
		if !errors.Is(err, ErrScannerNotConfigured) {
			t.Fatalf("expected ErrScannerNotConfigured, got %v", err)
		}
	})

	t.Run("scanner error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scanner := mock_interfaces.NewMockIDocumentScanner(ctrl)
		uc := NewDocumentUseCase(scanner)

		scanner.EXPECT().ScanDocument(gomock.Any(), []byte{0x1}).Return(entities.DocumentScan{}, errors.New("ocr down"))

		_, err := uc.ScanDocument(context.Background(), []byte{0x1})
		if err == nil || err.Error() != "ocr down" {
			t.Fatalf("expected ocr error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scanner := mock_interfaces.NewMockIDocumentScanner(ctrl)
		uc := NewDocumentUseCase(scanner)

		want := entities.DocumentScan{Lines: []string{"BILL OF SALE", "1HGCM82633A004352"}, VIN: "1HGCM82633A004352"}
		scanner.EXPECT().ScanDocument(gomock.Any(), []byte{0x1}).Return(want, nil)

		got, err := uc.ScanDocument(context.Background(), []byte{0x1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VIN != want.VIN || len(got.Lines) != 2 {
			t.Fatalf("unexpected scan: %+v", got)
		}
	})
}
