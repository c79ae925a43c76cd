package reports

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	accRoomRevenue = 1
	accPayroll     = 2
	accMisc        = 3

	deptRooms = 1
	deptFnB   = 2
	deptSpa   = 3

	propAlpha   = 1
	propBravo   = 2
	propCharlie = 3
)

func ip(v int) *int { return &v }

func sp(v string) *string { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// timeID gives every (year, month) a stable time key: 2024-03 -> 202403.
func timeID(year, month int) *int { return ip(year*100 + month) }

func monthTimes(year int, months ...int) []models.TimeDimension {
	if len(months) == 0 {
		months = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	}
	out := make([]models.TimeDimension, 0, len(months))
	for _, m := range months {
		t := models.NewTimeDimension(time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC))
		t.ID = *timeID(year, m)
		out = append(out, t)
	}
	return out
}

// baseSnapshot has three properties:
//
//	Alpha   brand Grand, region North, market Downtown, Luxury
//	Bravo   brand Grand, region North, market Airport, Economy
//	Charlie brand Inn,   region South, no market, no hotel type
func baseSnapshot(years ...int) *models.Snapshot {
	snap := &models.Snapshot{
		Properties: []models.Property{
			{ID: propCharlie, Name: "Charlie", BrandId: ip(2), RegionId: ip(2)},
			{ID: propAlpha, Name: "Alpha", HotelTypeId: ip(1), MarketId: ip(1), RegionId: ip(1), BrandId: ip(1)},
			{ID: propBravo, Name: "Bravo", HotelTypeId: ip(2), MarketId: ip(2), RegionId: ip(1), BrandId: ip(1)},
		},
		HotelTypes: []models.HotelType{{ID: 1, Name: "Luxury"}, {ID: 2, Name: "Economy"}},
		Brands:     []models.Brand{{ID: 1, Name: "Grand"}, {ID: 2, Name: "Inn"}, {ID: 3, Name: "Empty"}},
		Departments: []models.Department{
			{ID: deptRooms, Name: "Rooms"}, {ID: deptFnB, Name: "F&B"}, {ID: deptSpa, Name: "Spa"},
		},
		Accounts: []models.Account{
			{ID: accRoomRevenue, Name: "Room Revenue", AccountType: models.AccountTypeRevenue},
			{ID: accPayroll, Name: "Payroll", AccountType: models.AccountTypeExpense},
			{ID: accMisc, Name: "Misc", AccountType: "Other"},
		},
		Markets: []models.Market{{ID: 1, Name: "Downtown"}, {ID: 2, Name: "Airport"}, {ID: 3, Name: "Beach"}},
		Regions: []models.Region{{ID: 1, Name: "North"}, {ID: 2, Name: "South"}, {ID: 3, Name: "West"}},
	}
	for _, y := range years {
		snap.Times = append(snap.Times, monthTimes(y)...)
	}
	return snap
}

func financial(property, account, department, tm *int, amount string) models.FinancialFact {
	return models.FinancialFact{
		PropertyId:   property,
		AccountId:    account,
		DepartmentId: department,
		TimeId:       tm,
		Amount:       dec(amount),
	}
}

func marketReading(market, tm *int, revpar, occupancy, demandGrowth string) models.MarketDataFact {
	return models.MarketDataFact{
		MarketId:     market,
		TimeId:       tm,
		Revpar:       dec(revpar),
		Adr:          dec(revpar).Mul(decimal.NewFromInt(2)),
		Occupancy:    dec(occupancy),
		DemandGrowth: dec(demandGrowth),
		SupplyGrowth: dec(demandGrowth).Div(decimal.NewFromInt(2)),
	}
}

type fakeLoader struct {
	snap   *models.Snapshot
	err    error
	scopes []models.SnapshotScope
}

func (f *fakeLoader) LoadSnapshot(_ context.Context, scope models.SnapshotScope) (*models.Snapshot, error) {
	f.scopes = append(f.scopes, scope)
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

func newTestEngine(loader SnapshotLoader) *Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewEngine(loader, logger)
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s: expected %s, got %s", name, want, got.String())
	}
}
