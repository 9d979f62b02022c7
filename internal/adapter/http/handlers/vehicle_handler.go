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

var errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)

// VehicleHandler handles HTTP requests for the inventory.
type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) AddVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	v, err := h.usecase.AddVehicle(c.Request.Context(), payload.ToVehicle())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(v))
}

func (h *VehicleHandler) ListInventory(c *gin.Context) {
	vehicles, err := h.usecase.ListInventory(c.Request.Context(), c.Query("username"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	v, err := h.usecase.GetByVIN(c.Request.Context(), c.Query("username"), c.Param("vin"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(v))
}

// UpdateVehicle merges the provided fields into the stored row; absent fields
// keep their stored values.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	existing, err := h.usecase.GetByVIN(c.Request.Context(), payload.Username, c.Param("vin"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload.ApplyTo(&existing)
	v, err := h.usecase.UpdateVehicle(c.Request.Context(), existing)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.DeleteVehicle(c.Request.Context(), c.Query("username"), c.Param("vin")); err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidVIN):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleAlreadyExists):
		return pkg.NewDomainErrorSimple("VEHICLE_ALREADY_EXISTS", "Vehicle already exists for this account", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
