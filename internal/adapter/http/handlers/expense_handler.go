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

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

// ExpenseHandler handles HTTP requests for the expense ledger.
type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	e, err := h.usecase.CreateExpense(c.Request.Context(), payload.ToExpense())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExpense(e))
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.ListByUsername(c.Request.Context(), c.Query("username"))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	e := payload.ToExpense()
	e.ID = c.Param("id")
	updated, err := h.usecase.UpdateExpense(c.Request.Context(), e)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpense(updated))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.usecase.DeleteExpense(c.Request.Context(), c.Query("username"), c.Param("id")); err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidExpenseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
