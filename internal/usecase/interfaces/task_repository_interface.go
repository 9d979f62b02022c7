package interfaces

import (
	"context"

	"dealcost/internal/domain/entities"
)

// ITaskRepository abstracts DynamoDB persistence for Task.
//
// UpdateStatus sets status and completed_date in one UpdateItem so
// complete/reopen cannot race a concurrent full-row update into a torn state.
type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Task, error)
	Update(ctx context.Context, t entities.Task) (entities.Task, error)
	UpdateStatus(ctx context.Context, id string, status entities.TaskStatus, completedDate entities.Date) (entities.Task, error)
	DeleteByID(ctx context.Context, id string) error
}
