package reports

import (
	"context"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
)

type QuarterlyPerformanceParams struct {
	Year int `json:"year" form:"year" validate:"required,min=1,max=9999"`
	// nil means all four quarters, each reported separately
	Quarter *int `json:"quarter" form:"quarter" validate:"omitempty,min=1,max=4"`
}

type QuarterlyPerformanceRow struct {
	PropertyId   int             `json:"property_id"`
	PropertyName string          `json:"property_name"`
	Year         int             `json:"year"`
	Quarter      int             `json:"quarter"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	AvgOccupancy decimal.Decimal `json:"avg_occupancy"`
	AvgAdr       decimal.Decimal `json:"avg_adr"`
	AvgRevpar    decimal.Decimal `json:"avg_revpar"`
}

func (e *Engine) QuarterlyPerformance(ctx context.Context, params QuarterlyPerformanceParams) ([]*QuarterlyPerformanceRow, error) {
	return runReport(ctx, e, "quarterly_performance", params,
		func(p QuarterlyPerformanceParams) []int { return singleYear(p.Year) },
		BuildQuarterlyPerformance,
	)
}

type quarterTotals struct {
	revenue  decimal.Decimal
	expenses decimal.Decimal
	profit   decimal.Decimal
}

func BuildQuarterlyPerformance(snap *models.Snapshot, params QuarterlyPerformanceParams) []*QuarterlyPerformanceRow {
	lk := newLookup(snap)
	year := params.Year

	quarters := []int{1, 2, 3, 4}
	if params.Quarter != nil {
		quarters = []int{*params.Quarter}
	}
	wanted := make(map[int]bool, len(quarters))
	for _, q := range quarters {
		wanted[q] = true
	}

	totals := make(map[periodKey]*quarterTotals)
	for i := range snap.FinancialFacts {
		f := &snap.FinancialFacts[i]
		p, ok := resolve(lk.properties, f.PropertyId)
		if !ok {
			continue
		}
		t, ok := lk.timeInYear(f.TimeId, year)
		if !ok || !wanted[t.Quarter] {
			continue
		}
		key := periodKey{id: p.ID, period: t.Quarter}
		qt, ok := totals[key]
		if !ok {
			qt = &quarterTotals{}
			totals[key] = qt
		}
		// profit is one signed sum; amounts tagged neither way add nothing
		switch accountType := lk.accountType(f.AccountId); {
		case accountType.IsRevenue():
			qt.revenue = qt.revenue.Add(f.Amount)
			qt.profit = qt.profit.Add(f.Amount)
		case accountType.IsExpense():
			qt.expenses = qt.expenses.Add(f.Amount)
			qt.profit = qt.profit.Sub(f.Amount)
		}
	}
	market := lk.marketByPeriod(snap.MarketDataFacts, year, byQuarter)

	properties := sortedProperties(snap)
	rows := make([]*QuarterlyPerformanceRow, 0, len(properties)*len(quarters))
	for _, p := range properties {
		for _, q := range quarters {
			qt := totals[periodKey{id: p.ID, period: q}]
			if qt == nil {
				qt = &quarterTotals{}
			}
			var m *marketMetrics
			if p.MarketId != nil {
				m = market[periodKey{id: *p.MarketId, period: q}]
			}
			if m == nil {
				m = &marketMetrics{}
			}
			rows = append(rows, &QuarterlyPerformanceRow{
				PropertyId:   p.ID,
				PropertyName: p.Name,
				Year:         year,
				Quarter:      q,
				Revenue:      qt.revenue,
				Expenses:     qt.expenses,
				Profit:       qt.profit,
				AvgOccupancy: m.occupancy.value(),
				AvgAdr:       m.adr.value(),
				AvgRevpar:    m.revpar.value(),
			})
		}
	}
	return rows
}
