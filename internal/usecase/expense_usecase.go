package usecase

import (
	"context"
	"errors"
	"strings"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrInvalidExpenseID = errors.New("invalid expense id")
)

// IExpenseUseCase exposes the expense ledger operations.
type IExpenseUseCase interface {
	CreateExpense(ctx context.Context, e entities.Expense) (entities.Expense, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Expense, error)
	UpdateExpense(ctx context.Context, e entities.Expense) (entities.Expense, error)
	DeleteExpense(ctx context.Context, username, id string) error
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func (u *ExpenseUseCase) CreateExpense(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	e.Username = strings.TrimSpace(e.Username)
	if e.Username == "" {
		return entities.Expense{}, ErrInvalidUsername
	}

	e.ID = uuid.NewString()
	return u.repo.Create(ctx, e)
}

func (u *ExpenseUseCase) ListByUsername(ctx context.Context, username string) ([]entities.Expense, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	return u.repo.ListByUsername(ctx, username)
}

func (u *ExpenseUseCase) UpdateExpense(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	existing, err := u.ownedExpense(ctx, e.Username, e.ID)
	if err != nil {
		return entities.Expense{}, err
	}

	e.Username = existing.Username
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Expense{}, err
	}
	if updated.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return updated, nil
}

func (u *ExpenseUseCase) DeleteExpense(ctx context.Context, username, id string) error {
	if _, err := u.ownedExpense(ctx, username, id); err != nil {
		return err
	}
	return u.repo.DeleteByID(ctx, id)
}

func (u *ExpenseUseCase) ownedExpense(ctx context.Context, username, id string) (entities.Expense, error) {
	username = strings.TrimSpace(username)
	id = strings.TrimSpace(id)
	if username == "" {
		return entities.Expense{}, ErrInvalidUsername
	}
	if id == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" || e.Username != username {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}
