package handlers

import (
	"errors"
	"io"
	"net/http"

	response "dealcost/internal/adapter/http/dto/response"
	"dealcost/internal/usecase"
	"dealcost/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Missing or unreadable document image", http.StatusBadRequest)

// DocumentHandler runs uploaded vehicle documents through the OCR gateway.
// Accepts multipart form uploads (field "document") or a raw image body.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) ScanDocument(c *gin.Context) {
	image, err := readDocumentImage(c)
	if err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	scan, err := h.usecase.ScanDocument(c.Request.Context(), image)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocumentScan(scan))
}

func readDocumentImage(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("document"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyDocument):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Empty document image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScannerNotConfigured):
		return pkg.NewDomainErrorSimple("SCANNER_UNAVAILABLE", "Document scanner not configured", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("SCANNER_ERROR", "Document scan failed", err, http.StatusBadGateway)
	}
}
