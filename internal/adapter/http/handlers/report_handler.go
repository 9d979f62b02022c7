package handlers

import (
	"errors"
	"net/http"

	request "dealcost/internal/adapter/http/dto/request"
	response "dealcost/internal/adapter/http/dto/response"
	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase"
	"dealcost/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportPayload = pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)

// ReportHandler handles HTTP requests for reconditioning/expense reports.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) InsertReport(c *gin.Context) {
	var payload request.ReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.InsertReport(c.Request.Context(), payload.ToReport())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReport(r))
}

// ListReports serves both the per-account listing and, with a vin query
// parameter, the per-vehicle deal view.
func (h *ReportHandler) ListReports(c *gin.Context) {
	username := c.Query("username")
	vin := c.Query("vin")

	var (
		reports []entities.Report
		err     error
	)
	if vin != "" {
		reports, err = h.usecase.ListByVIN(c.Request.Context(), username, vin)
	} else {
		reports, err = h.usecase.ListByUsername(c.Request.Context(), username)
	}
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReports(reports))
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Query("username"), c.Param("id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(r))
}

func (h *ReportHandler) UpdateReport(c *gin.Context) {
	var payload request.ReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	existing, err := h.usecase.GetByID(c.Request.Context(), payload.Username, c.Param("id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload.ApplyTo(&existing)
	r, err := h.usecase.UpdateReport(c.Request.Context(), existing)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(r))
}

func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.usecase.DeleteReport(c.Request.Context(), c.Query("username"), c.Param("id")); err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidVIN), errors.Is(err, usecase.ErrInvalidReportID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
