package interfaces

import (
	"context"

	"dealcost/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// All operations take the owning username; the composite (username, vin) key
// keeps every call tenant-scoped.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByVIN(ctx context.Context, username, vin string) (entities.Vehicle, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, username, vin string) error
}
