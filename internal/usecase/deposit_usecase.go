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
	ErrDepositNotFound  = errors.New("deposit not found")
	ErrInvalidDepositID = errors.New("invalid deposit id")
)

// IDepositUseCase exposes the deposit ledger operations.
type IDepositUseCase interface {
	CreateDeposit(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Deposit, error)
	UpdateDeposit(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	DeleteDeposit(ctx context.Context, username, id string) error
}

type DepositUseCase struct {
	repo interfaces.IDepositRepository
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository) *DepositUseCase {
	return &DepositUseCase{repo: repo}
}

func (u *DepositUseCase) CreateDeposit(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	d.Username = strings.TrimSpace(d.Username)
	if d.Username == "" {
		return entities.Deposit{}, ErrInvalidUsername
	}

	d.ID = uuid.NewString()
	return u.repo.Create(ctx, d)
}

func (u *DepositUseCase) ListByUsername(ctx context.Context, username string) ([]entities.Deposit, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	return u.repo.ListByUsername(ctx, username)
}

func (u *DepositUseCase) UpdateDeposit(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	existing, err := u.ownedDeposit(ctx, d.Username, d.ID)
	if err != nil {
		return entities.Deposit{}, err
	}

	d.Username = existing.Username
	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		return entities.Deposit{}, err
	}
	if updated.ID == "" {
		return entities.Deposit{}, ErrDepositNotFound
	}
	return updated, nil
}

func (u *DepositUseCase) DeleteDeposit(ctx context.Context, username, id string) error {
	if _, err := u.ownedDeposit(ctx, username, id); err != nil {
		return err
	}
	return u.repo.DeleteByID(ctx, id)
}

func (u *DepositUseCase) ownedDeposit(ctx context.Context, username, id string) (entities.Deposit, error) {
	username = strings.TrimSpace(username)
	id = strings.TrimSpace(id)
	if username == "" {
		return entities.Deposit{}, ErrInvalidUsername
	}
	if id == "" {
		return entities.Deposit{}, ErrInvalidDepositID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deposit{}, err
	}
	if d.ID == "" || d.Username != username {
		return entities.Deposit{}, ErrDepositNotFound
	}
	return d, nil
}
