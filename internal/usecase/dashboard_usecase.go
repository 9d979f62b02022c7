package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidMonth    = errors.New("invalid month name")
	ErrInvalidYear     = errors.New("invalid year")
)

// IDashboardUseCase exposes the profitability aggregations.
//
// GetDashboard answers "how is the lot doing right now": current inventory
// plus the wall-clock month's financial activity. MonthlyProfits is the same
// partitioning and summation parameterized by an explicit (month, year) pair.
type IDashboardUseCase interface {
	GetDashboard(ctx context.Context, username string) (entities.DashboardMetrics, error)
	MonthlyProfits(ctx context.Context, username, monthName string, year int) (entities.MonthlyProfits, error)
}

type DashboardUseCase struct {
	vehicleRepo interfaces.IVehicleRepository
	reportRepo  interfaces.IReportRepository

	// now is swapped out in tests to pin the reference month.
	now func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(vehicleRepo interfaces.IVehicleRepository, reportRepo interfaces.IReportRepository) *DashboardUseCase {
	return &DashboardUseCase{
		vehicleRepo: vehicleRepo,
		reportRepo:  reportRepo,
		now:         time.Now,
	}
}

// GetDashboard reads a fresh snapshot of the account's vehicles and reports
// and recomputes every metric from scratch. No cross-request state: two calls
// with no intervening writes return identical output.
func (u *DashboardUseCase) GetDashboard(ctx context.Context, username string) (entities.DashboardMetrics, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.DashboardMetrics{}, ErrInvalidUsername
	}

	vehicles, reports, err := u.loadSnapshot(ctx, username)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}

	ref := u.now()
	month, year := ref.Month(), ref.Year()

	m := aggregate(vehicles, reports, month, year)
	m.Inventory = vehicles
	m.Reports = reports

	log.Printf("[dashboard][usecase] computed username=%s month=%s vehicles=%d reports=%d", username, m.CurrentMonthName, len(vehicles), len(reports))
	return m, nil
}

// MonthlyProfits lists the vehicles sold in the named month with their profit
// breakdown. All historical reconditioning cost for a VIN is attributed to
// the sale, regardless of report date.
func (u *DashboardUseCase) MonthlyProfits(ctx context.Context, username, monthName string, year int) (entities.MonthlyProfits, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.MonthlyProfits{}, ErrInvalidUsername
	}
	month, ok := entities.MonthByName(monthName)
	if !ok {
		return entities.MonthlyProfits{}, ErrInvalidMonth
	}
	if year <= 0 {
		return entities.MonthlyProfits{}, ErrInvalidYear
	}

	vehicles, reports, err := u.loadSnapshot(ctx, username)
	if err != nil {
		return entities.MonthlyProfits{}, err
	}

	costByVIN := reconditioningCostByVIN(reports)

	out := entities.MonthlyProfits{
		Month:       month.String(),
		Year:        year,
		Vehicles:    []entities.SoldVehicleProfit{},
		TotalProfit: decimal.Zero,
	}
	for _, v := range vehicles {
		if !v.Sold() || !v.DateSold.InMonth(month, year) {
			continue
		}
		cost := costByVIN[v.VIN]
		profit := v.SalePrice.Sub(v.PurchasePrice).Sub(cost)
		out.Vehicles = append(out.Vehicles, entities.SoldVehicleProfit{
			Vehicle:            v,
			ReconditioningCost: cost,
			Profit:             profit,
		})
		out.TotalProfit = out.TotalProfit.Add(profit)
	}

	return out, nil
}

func (u *DashboardUseCase) loadSnapshot(ctx context.Context, username string) ([]entities.Vehicle, []entities.Report, error) {
	vehicles, err := u.vehicleRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	reports, err := u.reportRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	return vehicles, reports, nil
}

// aggregate is the single-pass metrics computation over one account's
// snapshot. Absent or unparseable dates exclude a record from date-filtered
// sums; absent monetary fields decode as zero upstream, so sums never fail.
func aggregate(vehicles []entities.Vehicle, reports []entities.Report, month time.Month, year int) entities.DashboardMetrics {
	m := entities.DashboardMetrics{
		TotalInventoryValue:            decimal.Zero,
		CurrentMonthReconditioningCost: decimal.Zero,
		CurrentMonthProfit:             decimal.Zero,
		UnsoldReconditioningCost:       decimal.Zero,
		CurrentMonthName:               month.String(),
	}

	unsoldVINs := make(map[string]struct{})
	for _, v := range vehicles {
		if v.Sold() {
			continue
		}
		m.TotalVehicles++
		m.TotalInventoryValue = m.TotalInventoryValue.Add(v.PurchasePrice)
		unsoldVINs[v.VIN] = struct{}{}

		switch v.SaleType {
		case entities.SaleTypeFloor:
			m.TotalFloorPlan++
		case entities.SaleTypeDealer:
			m.TotalDealership++
		case entities.SaleTypeConsignment:
			m.TotalConsignment++
		}
	}

	costByVIN := reconditioningCostByVIN(reports)
	for _, r := range reports {
		if r.DateOccurred.InMonth(month, year) {
			m.CurrentMonthReconditioningCost = m.CurrentMonthReconditioningCost.Add(r.Cost)
		}
		if _, ok := unsoldVINs[r.VIN]; ok {
			m.UnsoldReconditioningCost = m.UnsoldReconditioningCost.Add(r.Cost)
		}
	}

	for _, v := range vehicles {
		if !v.Sold() || !v.DateSold.InMonth(month, year) {
			continue
		}
		profit := v.SalePrice.Sub(v.PurchasePrice).Sub(costByVIN[v.VIN])
		m.CurrentMonthProfit = m.CurrentMonthProfit.Add(profit)
	}

	return m
}

// reconditioningCostByVIN sums report cost per VIN across all dates.
func reconditioningCostByVIN(reports []entities.Report) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(reports))
	for _, r := range reports {
		out[r.VIN] = out[r.VIN].Add(r.Cost)
	}
	return out
}
