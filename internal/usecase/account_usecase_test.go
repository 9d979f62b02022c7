package usecase

import (
	"context"
	"errors"
	"testing"

	"dealcost/internal/domain/entities"
	mock_interfaces "dealcost/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewAccountUseCase(nil)
		_, err := uc.CreateAccount(context.Background(), "dealer1", "", "a@b.com", "Cars Inc", "")
		if !errors.Is(err, ErrInvalidAccountInput) {
			t.Fatalf("expected ErrInvalidAccountInput, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByUsername(gomock.Any(), "dealer1").Return(entities.Account{Username: "dealer1"}, nil)

		_, err := uc.CreateAccount(context.Background(), "dealer1", "pw", "a@b.com", "Cars Inc", "")
		if !errors.Is(err, ErrAccountAlreadyExists) {
			t.Fatalf("expected ErrAccountAlreadyExists, got %v", err)
		}
	})

	t.Run("create success hashes the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByUsername(gomock.Any(), "dealer1").Return(entities.Account{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Account{})).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) {
				if a.PasswordHash == "" || a.PasswordHash == "secret" {
					t.Fatalf("expected hashed password, got %q", a.PasswordHash)
				}
				if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret")) != nil {
					t.Fatalf("stored hash does not verify the password")
				}
				return a, nil
			},
		)

		res, err := uc.CreateAccount(context.Background(), " dealer1 ", "secret", "a@b.com", "Cars Inc", " 555-0100 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Username != "dealer1" || res.PhoneNumber != "555-0100" {
			t.Fatalf("expected trimmed fields, got %+v", res)
		}
	})
}

func TestAccountUseCase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByUsername(gomock.Any(), "dealer1").Return(entities.Account{}, nil)

		_, err := uc.Login(context.Background(), "dealer1", "secret")
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByUsername(gomock.Any(), "dealer1").Return(entities.Account{Username: "dealer1", PasswordHash: string(hash)}, nil)

		_, err := uc.Login(context.Background(), "dealer1", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByUsername(gomock.Any(), "dealer1").Return(entities.Account{Username: "dealer1", PasswordHash: string(hash)}, nil)

		a, err := uc.Login(context.Background(), "dealer1", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Username != "dealer1" {
			t.Fatalf("unexpected account: %+v", a)
		}
	})
}

func TestAccountUseCase_GetByUsername(t *testing.T) {
	t.Run("invalid username", func(t *testing.T) {
		uc := NewAccountUseCase(nil)
		_, err := uc.GetByUsername(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidUsername) {
			t.Fatalf("expected ErrInvalidUsername, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByUsername(gomock.Any(), "dealer1").Return(entities.Account{}, nil)

		_, err := uc.GetByUsername(context.Background(), "dealer1")
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
