package interfaces

import (
	"context"

	"dealcost/internal/domain/entities"
)

// IAccountRepository abstracts DynamoDB persistence for Account.
//
// Repositories return the zero entity (empty Username) for "not found";
// usecases translate that into their own sentinel errors.
type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByUsername(ctx context.Context, username string) (entities.Account, error)
	Update(ctx context.Context, a entities.Account) (entities.Account, error)
}
