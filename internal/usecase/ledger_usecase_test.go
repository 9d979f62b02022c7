package usecase

import (
	"context"
	"errors"
	"testing"

	"dealcost/internal/domain/entities"
	mock_interfaces "dealcost/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestExpenseUseCase(t *testing.T) {
	t.Run("create invalid username", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		_, err := uc.CreateExpense(context.Background(), entities.Expense{})
		if !errors.Is(err, ErrInvalidUsername) {
			t.Fatalf("expected ErrInvalidUsername, got %v", err)
		}
	})

	t.Run("create assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Expense{})).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.ID == "" {
					t.Fatalf("expected generated id")
				}
				return e, nil
			},
		)

		res, err := uc.CreateExpense(context.Background(), entities.Expense{
			Username: "dealer1", Amount: decimal.NewFromInt(120), Description: "fuel",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("update of another account's row reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Expense{ID: "e1", Username: "other"}, nil)

		_, err := uc.UpdateExpense(context.Background(), entities.Expense{ID: "e1", Username: "dealer1"})
		if !errors.Is(err, ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("delete checks ownership first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Expense{ID: "e1", Username: "dealer1"}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "e1").Return(nil)

		if err := uc.DeleteExpense(context.Background(), "dealer1", "e1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDepositUseCase(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDepositUseCase(nil)
		_, err := uc.UpdateDeposit(context.Background(), entities.Deposit{Username: "dealer1"})
		if !errors.Is(err, ErrInvalidDepositID) {
			t.Fatalf("expected ErrInvalidDepositID, got %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositRepository(ctrl)
		uc := NewDepositUseCase(repo)

		repo.EXPECT().ListByUsername(gomock.Any(), "dealer1").Return([]entities.Deposit{{ID: "d1"}}, nil)

		res, err := uc.ListByUsername(context.Background(), "dealer1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "d1" {
			t.Fatalf("unexpected deposits: %+v", res)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositRepository(ctrl)
		uc := NewDepositUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Deposit{ID: "d1", Username: "dealer1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Deposit) (entities.Deposit, error) { return d, nil },
		)

		res, err := uc.UpdateDeposit(context.Background(), entities.Deposit{
			ID: "d1", Username: "dealer1", Amount: decimal.NewFromInt(2000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Amount.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("unexpected amount: %s", res.Amount)
		}
	})
}
