package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrInvalidReportID = errors.New("invalid report id")
)

// IReportUseCase exposes reconditioning/expense report operations.
type IReportUseCase interface {
	InsertReport(ctx context.Context, r entities.Report) (entities.Report, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Report, error)
	ListByVIN(ctx context.Context, username, vin string) ([]entities.Report, error)
	GetByID(ctx context.Context, username, id string) (entities.Report, error)
	UpdateReport(ctx context.Context, r entities.Report) (entities.Report, error)
	DeleteReport(ctx context.Context, username, id string) error
}

type ReportUseCase struct {
	repo interfaces.IReportRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

func (u *ReportUseCase) InsertReport(ctx context.Context, r entities.Report) (entities.Report, error) {
	r.Username = strings.TrimSpace(r.Username)
	r.VIN = normalizeVIN(r.VIN)
	if r.Username == "" {
		return entities.Report{}, ErrInvalidUsername
	}
	if r.VIN == "" {
		return entities.Report{}, ErrInvalidVIN
	}

	r.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Report{}, err
	}
	log.Printf("[report][usecase] inserted username=%s vin=%s id=%s", created.Username, created.VIN, created.ID)
	return created, nil
}

func (u *ReportUseCase) ListByUsername(ctx context.Context, username string) ([]entities.Report, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	return u.repo.ListByUsername(ctx, username)
}

func (u *ReportUseCase) ListByVIN(ctx context.Context, username, vin string) ([]entities.Report, error) {
	username = strings.TrimSpace(username)
	vin = normalizeVIN(vin)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if vin == "" {
		return nil, ErrInvalidVIN
	}
	return u.repo.ListByVIN(ctx, username, vin)
}

func (u *ReportUseCase) GetByID(ctx context.Context, username, id string) (entities.Report, error) {
	r, err := u.ownedReport(ctx, username, id)
	if err != nil {
		return entities.Report{}, err
	}
	return r, nil
}

func (u *ReportUseCase) UpdateReport(ctx context.Context, r entities.Report) (entities.Report, error) {
	existing, err := u.ownedReport(ctx, r.Username, r.ID)
	if err != nil {
		return entities.Report{}, err
	}

	r.Username = existing.Username
	r.VIN = normalizeVIN(r.VIN)
	if r.VIN == "" {
		r.VIN = existing.VIN
	}

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.Report{}, err
	}
	if updated.ID == "" {
		return entities.Report{}, ErrReportNotFound
	}
	return updated, nil
}

func (u *ReportUseCase) DeleteReport(ctx context.Context, username, id string) error {
	if _, err := u.ownedReport(ctx, username, id); err != nil {
		return err
	}
	return u.repo.DeleteByID(ctx, id)
}

// ownedReport loads a report and enforces the tenancy boundary: a report
// belonging to another account reads as not found.
func (u *ReportUseCase) ownedReport(ctx context.Context, username, id string) (entities.Report, error) {
	username = strings.TrimSpace(username)
	id = strings.TrimSpace(id)
	if username == "" {
		return entities.Report{}, ErrInvalidUsername
	}
	if id == "" {
		return entities.Report{}, ErrInvalidReportID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Report{}, err
	}
	if r.ID == "" || r.Username != username {
		return entities.Report{}, ErrReportNotFound
	}
	return r, nil
}
