package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "dealcost/internal/adapter/http/dto/response"
	"dealcost/internal/usecase"
	"dealcost/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the profitability aggregations.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard computes the current-month metrics for the account.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	m, err := h.usecase.GetDashboard(c.Request.Context(), c.Query("username"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardMetrics(m))
}

// GetMonthlyProfits computes per-vehicle profit rows for an explicit
// (month, year) pair, e.g. ?month=June&year=2024.
func (h *DashboardHandler) GetMonthlyProfits(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		appErr := mapDashboardError(usecase.ErrInvalidYear)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	m, err := h.usecase.MonthlyProfits(c.Request.Context(), c.Query("username"), c.Query("month"), year)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMonthlyProfits(m))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidMonth), errors.Is(err, usecase.ErrInvalidYear):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
