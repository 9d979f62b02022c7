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

func TestReportUseCase_InsertReport(t *testing.T) {
	t.Run("invalid username", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		_, err := uc.InsertReport(context.Background(), entities.Report{VIN: "VIN1"})
		if !errors.Is(err, ErrInvalidUsername) {
			t.Fatalf("expected ErrInvalidUsername, got %v", err)
		}
	})

	t.Run("invalid vin", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		_, err := uc.InsertReport(context.Background(), entities.Report{Username: "dealer1"})
		if !errors.Is(err, ErrInvalidVIN) {
			t.Fatalf("expected ErrInvalidVIN, got %v", err)
		}
	})

	t.Run("create success assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Report{})).DoAndReturn(
			func(_ context.Context, r entities.Report) (entities.Report, error) {
				if r.ID == "" {
					t.Fatalf("expected generated id")
				}
				if r.VIN != "VIN1" {
					t.Fatalf("expected normalized vin, got %q", r.VIN)
				}
				return r, nil
			},
		)

		res, err := uc.InsertReport(context.Background(), entities.Report{
			Username: "dealer1", VIN: " vin1 ", Cost: decimal.NewFromInt(250),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestReportUseCase_OwnedAccess(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Report{}, nil)

		_, err := uc.GetByID(context.Background(), "dealer1", "r1")
		if !errors.Is(err, ErrReportNotFound) {
			t.Fatalf("expected ErrReportNotFound, got %v", err)
		}
	})

	t.Run("another account's report reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Report{ID: "r1", Username: "other"}, nil)

		_, err := uc.GetByID(context.Background(), "dealer1", "r1")
		if !errors.Is(err, ErrReportNotFound) {
			t.Fatalf("expected ErrReportNotFound, got %v", err)
		}
	})

	t.Run("delete checks ownership first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Report{ID: "r1", Username: "dealer1"}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "r1").Return(nil)

		if err := uc.DeleteReport(context.Background(), "dealer1", "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReportUseCase_UpdateReport(t *testing.T) {
	t.Run("keeps owner and falls back to stored vin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Report{ID: "r1", Username: "dealer1", VIN: "VIN1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Report) (entities.Report, error) {
				if r.Username != "dealer1" || r.VIN != "VIN1" {
					t.Fatalf("unexpected report: %+v", r)
				}
				return r, nil
			},
		)

		_, err := uc.UpdateReport(context.Background(), entities.Report{
			ID: "r1", Username: "dealer1", Cost: decimal.NewFromInt(99),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
