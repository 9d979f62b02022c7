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

var errInvalidAccountPayload = pkg.NewDomainErrorSimple("INVALID_ACCOUNT_INPUT", "Invalid account payload", http.StatusBadRequest)

// AccountHandler handles HTTP requests for tenant accounts.
type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var payload request.CreateAccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccountPayload.HTTPStatus, errInvalidAccountPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.CreateAccount(c.Request.Context(), payload.Username, payload.Password, payload.Email, payload.CompanyName, payload.PhoneNumber)
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAccount(a))
}

func (h *AccountHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccountPayload.HTTPStatus, errInvalidAccountPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccount(a))
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	a, err := h.usecase.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccount(a))
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccountInput), errors.Is(err, usecase.ErrInvalidUsername):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAccountAlreadyExists):
		return pkg.NewDomainErrorSimple("ACCOUNT_ALREADY_EXISTS", "Account already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
