package handlers

import (
	"errors"
	"net/http"

	request "dealcost/internal/adapter/http/dto/request"
	response "dealcost/internal/adapter/http/dto/response"
	"dealcost/internal/usecase"
	"dealcost/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDepositPayload = pkg.NewDomainErrorSimple("INVALID_DEPOSIT_INPUT", "Invalid deposit payload", http.StatusBadRequest)

// DepositHandler handles HTTP requests for the deposit ledger.
type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	var payload request.DepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDepositPayload.HTTPStatus, errInvalidDepositPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.CreateDeposit(c.Request.Context(), payload.ToDeposit())
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDeposit(d))
}

func (h *DepositHandler) ListDeposits(c *gin.Context) {
	deposits, err := h.usecase.ListByUsername(c.Request.Context(), c.Query("username"))
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeposits(deposits))
}

func (h *DepositHandler) UpdateDeposit(c *gin.Context) {
	var payload request.DepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDepositPayload.HTTPStatus, errInvalidDepositPayload.ToHTTPError())
		return
	}

	d := payload.ToDeposit()
	d.ID = c.Param("id")
	updated, err := h.usecase.UpdateDeposit(c.Request.Context(), d)
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeposit(updated))
}

func (h *DepositHandler) DeleteDeposit(c *gin.Context) {
	if err := h.usecase.DeleteDeposit(c.Request.Context(), c.Query("username"), c.Param("id")); err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidDepositID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
