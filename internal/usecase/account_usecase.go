package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidAccountInput  = errors.New("invalid account input")
	ErrInvalidCredentials   = errors.New("invalid username or password")
)

// IAccountUseCase exposes tenant account operations.
type IAccountUseCase interface {
	CreateAccount(ctx context.Context, username, password, email, companyName, phoneNumber string) (entities.Account, error)
	Login(ctx context.Context, username, password string) (entities.Account, error)
	GetByUsername(ctx context.Context, username string) (entities.Account, error)
}

type AccountUseCase struct {
	repo interfaces.IAccountRepository
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(repo interfaces.IAccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

func (u *AccountUseCase) CreateAccount(ctx context.Context, username, password, email, companyName, phoneNumber string) (entities.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	companyName = strings.TrimSpace(companyName)
	if username == "" || password == "" || email == "" || companyName == "" {
		return entities.Account{}, ErrInvalidAccountInput
	}

	if existing, err := u.repo.GetByUsername(ctx, username); err != nil {
		return entities.Account{}, err
	} else if existing.Username != "" {
		return entities.Account{}, ErrAccountAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Account{}, err
	}

	a := entities.Account{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		CompanyName:  companyName,
		PhoneNumber:  strings.TrimSpace(phoneNumber),
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Account{}, err
	}
	log.Printf("[account][usecase] created username=%s", created.Username)
	return created, nil
}

func (u *AccountUseCase) Login(ctx context.Context, username, password string) (entities.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Account{}, ErrInvalidAccountInput
	}

	a, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Account{}, err
	}
	if a.Username == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return entities.Account{}, ErrInvalidCredentials
	}
	return a, nil
}

func (u *AccountUseCase) GetByUsername(ctx context.Context, username string) (entities.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.Account{}, ErrInvalidUsername
	}

	a, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Account{}, err
	}
	if a.Username == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return a, nil
}
