package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrVehicleAlreadyExists = errors.New("vehicle already exists")
	ErrInvalidVIN           = errors.New("invalid vin")
)

// IVehicleUseCase exposes inventory operations.
type IVehicleUseCase interface {
	AddVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	ListInventory(ctx context.Context, username string) ([]entities.Vehicle, error)
	GetByVIN(ctx context.Context, username, vin string) (entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, username, vin string) error
}

type VehicleUseCase struct {
	repo       interfaces.IVehicleRepository
	reportRepo interfaces.IReportRepository

	now nowFunc
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, reportRepo interfaces.IReportRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, reportRepo: reportRepo, now: timeNow}
}

func (u *VehicleUseCase) AddVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.Username = strings.TrimSpace(v.Username)
	v.VIN = normalizeVIN(v.VIN)
	if v.Username == "" {
		return entities.Vehicle{}, ErrInvalidUsername
	}
	if v.VIN == "" {
		return entities.Vehicle{}, ErrInvalidVIN
	}

	if existing, err := u.repo.GetByVIN(ctx, v.Username, v.VIN); err != nil {
		return entities.Vehicle{}, err
	} else if existing.VIN != "" {
		return entities.Vehicle{}, ErrVehicleAlreadyExists
	}

	if v.SaleStatus == "" {
		v.SaleStatus = entities.SaleStatusAvailable
	}
	if !v.DateAdded.Valid() {
		v.DateAdded = entities.NewDate(u.now())
	}
	applySaleInvariant(&v, u.now)

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	log.Printf("[vehicle][usecase] added username=%s vin=%s", created.Username, created.VIN)
	return created, nil
}

func (u *VehicleUseCase) ListInventory(ctx context.Context, username string) ([]entities.Vehicle, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	return u.repo.ListByUsername(ctx, username)
}

func (u *VehicleUseCase) GetByVIN(ctx context.Context, username, vin string) (entities.Vehicle, error) {
	username = strings.TrimSpace(username)
	vin = normalizeVIN(vin)
	if username == "" {
		return entities.Vehicle{}, ErrInvalidUsername
	}
	if vin == "" {
		return entities.Vehicle{}, ErrInvalidVIN
	}

	v, err := u.repo.GetByVIN(ctx, username, vin)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.VIN == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

// UpdateVehicle replaces the stored row with the merged entity the handler
// built from the existing row plus the provided fields.
func (u *VehicleUseCase) UpdateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.Username = strings.TrimSpace(v.Username)
	v.VIN = normalizeVIN(v.VIN)
	if v.Username == "" {
		return entities.Vehicle{}, ErrInvalidUsername
	}
	if v.VIN == "" {
		return entities.Vehicle{}, ErrInvalidVIN
	}

	applySaleInvariant(&v, u.now)

	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.VIN == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

// DeleteVehicle removes the vehicle and its reconditioning history.
func (u *VehicleUseCase) DeleteVehicle(ctx context.Context, username, vin string) error {
	username = strings.TrimSpace(username)
	vin = normalizeVIN(vin)
	if username == "" {
		return ErrInvalidUsername
	}
	if vin == "" {
		return ErrInvalidVIN
	}

	v, err := u.repo.GetByVIN(ctx, username, vin)
	if err != nil {
		return err
	}
	if v.VIN == "" {
		return ErrVehicleNotFound
	}

	if err := u.repo.Delete(ctx, username, vin); err != nil {
		return err
	}
	if err := u.reportRepo.DeleteByVIN(ctx, username, vin); err != nil {
		return err
	}
	log.Printf("[vehicle][usecase] deleted username=%s vin=%s", username, vin)
	return nil
}

// applySaleInvariant keeps date_sold consistent with sale_status: selling
// without an explicit date stamps today, reverting to available clears it.
func applySaleInvariant(v *entities.Vehicle, now nowFunc) {
	if v.Sold() {
		if !v.DateSold.Valid() {
			v.DateSold = entities.NewDate(now())
		}
		return
	}
	v.DateSold = entities.Date{}
}

func normalizeVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}
