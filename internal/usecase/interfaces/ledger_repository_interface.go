package interfaces

import (
	"context"

	"dealcost/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense ledger rows.
type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	DeleteByID(ctx context.Context, id string) error
}

// IDepositRepository abstracts DynamoDB persistence for Deposit ledger rows.
type IDepositRepository interface {
	Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Deposit, error)
	Update(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	DeleteByID(ctx context.Context, id string) error
}
