package handlers

import (
	"context"
	"errors"
	"net/http"

	request "dealcost/internal/adapter/http/dto/request"
	response "dealcost/internal/adapter/http/dto/response"
	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase"
	"dealcost/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)

// TaskHandler handles HTTP requests for to-do tasks.
type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.TaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.CreateTask(c.Request.Context(), payload.ToTask())
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTask(t))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.usecase.ListByUsername(c.Request.Context(), c.Query("username"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTasks(tasks))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var payload request.TaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	t := payload.ToTask()
	t.ID = c.Param("id")
	updated, err := h.usecase.UpdateTask(c.Request.Context(), t)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(updated))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	h.patchTaskStatus(c, h.usecase.CompleteTask)
}

func (h *TaskHandler) ReopenTask(c *gin.Context) {
	h.patchTaskStatus(c, h.usecase.ReopenTask)
}

func (h *TaskHandler) patchTaskStatus(
	c *gin.Context,
	updater func(ctx context.Context, username, id string) (entities.Task, error),
) {
	t, err := updater(c.Request.Context(), c.Query("username"), c.Param("id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(t))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.DeleteTask(c.Request.Context(), c.Query("username"), c.Param("id")); err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidTaskID), errors.Is(err, usecase.ErrInvalidTaskData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
