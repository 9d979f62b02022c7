package interfaces

import (
	"context"

	"dealcost/internal/domain/entities"
)

// IReportRepository abstracts DynamoDB persistence for Report.
//
// ListByUsername feeds the dashboard aggregation; ListByVIN feeds the
// per-vehicle deal view. DeleteByVIN exists so removing a vehicle can take
// its reconditioning history with it.
type IReportRepository interface {
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Report, error)
	ListByVIN(ctx context.Context, username, vin string) ([]entities.Report, error)
	Update(ctx context.Context, r entities.Report) (entities.Report, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByVIN(ctx context.Context, username, vin string) error
}
