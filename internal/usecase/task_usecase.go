package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTaskID   = errors.New("invalid task id")
	ErrInvalidTaskData = errors.New("invalid task data")
)

// ITaskUseCase exposes to-do operations, including the two status
// transitions (complete stamps the completion date, reopen clears it).
type ITaskUseCase interface {
	CreateTask(ctx context.Context, t entities.Task) (entities.Task, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Task, error)
	UpdateTask(ctx context.Context, t entities.Task) (entities.Task, error)
	CompleteTask(ctx context.Context, username, id string) (entities.Task, error)
	ReopenTask(ctx context.Context, username, id string) (entities.Task, error)
	DeleteTask(ctx context.Context, username, id string) error
}

type TaskUseCase struct {
	repo interfaces.ITaskRepository

	now nowFunc
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(repo interfaces.ITaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, now: timeNow}
}

func (u *TaskUseCase) CreateTask(ctx context.Context, t entities.Task) (entities.Task, error) {
	t.Username = strings.TrimSpace(t.Username)
	t.Title = strings.TrimSpace(t.Title)
	if t.Username == "" {
		return entities.Task{}, ErrInvalidUsername
	}
	if t.Title == "" {
		return entities.Task{}, ErrInvalidTaskData
	}

	t.ID = uuid.NewString()
	t.Status = entities.TaskStatusPending
	t.CompletedDate = entities.Date{}
	if !t.DateAssigned.Valid() {
		t.DateAssigned = entities.NewDate(u.now())
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	log.Printf("[task][usecase] created username=%s id=%s", created.Username, created.ID)
	return created, nil
}

func (u *TaskUseCase) ListByUsername(ctx context.Context, username string) ([]entities.Task, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	return u.repo.ListByUsername(ctx, username)
}

func (u *TaskUseCase) UpdateTask(ctx context.Context, t entities.Task) (entities.Task, error) {
	existing, err := u.ownedTask(ctx, t.Username, t.ID)
	if err != nil {
		return entities.Task{}, err
	}

	// Status transitions go through Complete/Reopen, not the generic update.
	t.Username = existing.Username
	t.Status = existing.Status
	t.CompletedDate = existing.CompletedDate

	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	if updated.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}

func (u *TaskUseCase) CompleteTask(ctx context.Context, username, id string) (entities.Task, error) {
	if _, err := u.ownedTask(ctx, username, id); err != nil {
		return entities.Task{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.TaskStatusCompleted, entities.NewDate(u.now()))
	if err != nil {
		return entities.Task{}, err
	}
	if updated.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}

func (u *TaskUseCase) ReopenTask(ctx context.Context, username, id string) (entities.Task, error) {
	if _, err := u.ownedTask(ctx, username, id); err != nil {
		return entities.Task{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.TaskStatusPending, entities.Date{})
	if err != nil {
		return entities.Task{}, err
	}
	if updated.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}

func (u *TaskUseCase) DeleteTask(ctx context.Context, username, id string) error {
	if _, err := u.ownedTask(ctx, username, id); err != nil {
		return err
	}
	return u.repo.DeleteByID(ctx, id)
}

func (u *TaskUseCase) ownedTask(ctx context.Context, username, id string) (entities.Task, error) {
	username = strings.TrimSpace(username)
	id = strings.TrimSpace(id)
	if username == "" {
		return entities.Task{}, ErrInvalidUsername
	}
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" || t.Username != username {
		return entities.Task{}, ErrTaskNotFound
	}
	return t, nil
}
