package ocr

import (
	"context"
	"errors"
	"log"
	"os"
	"regexp"
	"strings"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	textracttypes "github.com/aws/aws-sdk-go-v2/service/textract/types"
)

var ErrTextractNotConfigured = errors.New("textract gateway not configured")

// vinPattern matches a 17-character VIN; I, O and Q are never used in VINs.
var vinPattern = regexp.MustCompile(`\b[A-HJ-NPR-Z0-9]{17}\b`)

// TextractGateway extracts text from vehicle documents (titles, bills of
// sale) via AWS Textract.
//
// Mock mode (DOCUMENT_SCANNER_MOCK=1) skips the AWS call and returns a fixed
// scan, which keeps local runs working without credentials.
type TextractGateway struct {
	client   *textract.Client
	mockMode bool
}

var _ interfaces.IDocumentScanner = (*TextractGateway)(nil)

func NewTextractGateway(cfg aws.Config) *TextractGateway {
	if isDocumentScannerMockEnabled() {
		log.Printf("[document][gateway] mock mode enabled")
		return &TextractGateway{mockMode: true}
	}
	return &TextractGateway{client: textract.NewFromConfig(cfg)}
}

func (g *TextractGateway) ScanDocument(ctx context.Context, image []byte) (entities.DocumentScan, error) {
	if g != nil && g.mockMode {
		lines := []string{"BILL OF SALE", "VIN 1HGCM82633A004352"}
		log.Printf("[document][gateway] mock scan lines=%d", len(lines))
		return entities.DocumentScan{Lines: lines, VIN: "1HGCM82633A004352"}, nil
	}

	if g == nil || g.client == nil {
		return entities.DocumentScan{}, ErrTextractNotConfigured
	}

	out, err := g.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &textracttypes.Document{Bytes: image},
	})
	if err != nil {
		log.Printf("[document][gateway] detect failed err=%v", err)
		return entities.DocumentScan{}, err
	}

	scan := entities.DocumentScan{Lines: []string{}}
	for _, block := range out.Blocks {
		if block.BlockType != textracttypes.BlockTypeLine || block.Text == nil {
			continue
		}
		line := strings.TrimSpace(*block.Text)
		if line == "" {
			continue
		}
		scan.Lines = append(scan.Lines, line)
		if scan.VIN == "" {
			if vin := vinPattern.FindString(strings.ToUpper(line)); vin != "" {
				scan.VIN = vin
			}
		}
	}

	log.Printf("[document][gateway] scan done lines=%d vin_found=%t", len(scan.Lines), scan.VIN != "")
	return scan, nil
}

func isDocumentScannerMockEnabled() bool {
	for _, key := range []string{"DOCUMENT_SCANNER_MOCK", "TEXTRACT_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
