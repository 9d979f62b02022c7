package ocr

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestVinPattern(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"VIN 1HGCM82633A004352", "1HGCM82633A004352"},
		{"1HGCM82633A004352", "1HGCM82633A004352"},
		// I, O, Q never appear in a VIN
		{"IHGCM82633A00435O", ""},
		// too short
		{"1HGCM82633A00435", ""},
		{"no vin here", ""},
	}
	for _, tc := range cases {
		if got := vinPattern.FindString(tc.in); got != tc.want {
			t.Fatalf("vinPattern(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTextractGateway_MockMode(t *testing.T) {
	t.Setenv("DOCUMENT_SCANNER_MOCK", "1")

	g := NewTextractGateway(aws.Config{})
	scan, err := g.ScanDocument(context.Background(), []byte{0x1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scan.Lines) == 0 || scan.VIN == "" {
		t.Fatalf("expected canned scan, got %+v", scan)
	}
}

func TestIsDocumentScannerMockEnabled(t *testing.T) {
	t.Run("off by default", func(t *testing.T) {
		t.Setenv("DOCUMENT_SCANNER_MOCK", "")
		t.Setenv("TEXTRACT_MOCK", "")
		if isDocumentScannerMockEnabled() {
			t.Fatalf("expected mock mode off")
		}
	})

	t.Run("accepted values", func(t *testing.T) {
		for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
			t.Setenv("TEXTRACT_MOCK", v)
			if !isDocumentScannerMockEnabled() {
				t.Fatalf("expected %q to enable mock mode", v)
			}
		}
	})
}
