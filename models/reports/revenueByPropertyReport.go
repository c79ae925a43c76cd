package reports

import (
	"context"
	"time"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
)

type RevenueByPropertyParams struct {
	Year int `json:"year" form:"year" validate:"required,min=1,max=9999"`
}

type RevenueByPropertyRow struct {
	PropertyId   int             `json:"property_id"`
	PropertyName string          `json:"property_name"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	MonthName    string          `json:"month_name"`
	Revenue      decimal.Decimal `json:"revenue"`
	Revpar       decimal.Decimal `json:"revpar"`
	Adr          decimal.Decimal `json:"adr"`
	Occupancy    decimal.Decimal `json:"occupancy"`
}

// RevenueByProperty returns one row per (property, month) of the year.
// Revenue sums every financial fact of the property regardless of account
// type; the market columns average the property's market for that month.
func (e *Engine) RevenueByProperty(ctx context.Context, params RevenueByPropertyParams) ([]*RevenueByPropertyRow, error) {
	return runReport(ctx, e, "revenue_by_property", params,
		func(p RevenueByPropertyParams) []int { return singleYear(p.Year) },
		BuildRevenueByProperty,
	)
}

func BuildRevenueByProperty(snap *models.Snapshot, params RevenueByPropertyParams) []*RevenueByPropertyRow {
	lk := newLookup(snap)
	year := params.Year

	revenue := make(map[periodKey]decimal.Decimal)
	for i := range snap.FinancialFacts {
		f := &snap.FinancialFacts[i]
		p, ok := resolve(lk.properties, f.PropertyId)
		if !ok {
			continue
		}
		t, ok := lk.timeInYear(f.TimeId, year)
		if !ok {
			continue
		}
		key := periodKey{id: p.ID, period: t.Month}
		revenue[key] = revenue[key].Add(f.Amount)
	}
	market := lk.marketByPeriod(snap.MarketDataFacts, year, byMonth)

	properties := sortedProperties(snap)
	rows := make([]*RevenueByPropertyRow, 0, len(properties)*12)
	for _, p := range properties {
		for month := 1; month <= 12; month++ {
			var m *marketMetrics
			if p.MarketId != nil {
				m = market[periodKey{id: *p.MarketId, period: month}]
			}
			if m == nil {
				m = &marketMetrics{}
			}
			rows = append(rows, &RevenueByPropertyRow{
				PropertyId:   p.ID,
				PropertyName: p.Name,
				Year:         year,
				Month:        month,
				MonthName:    time.Month(month).String(),
				Revenue:      revenue[periodKey{id: p.ID, period: month}],
				Revpar:       m.revpar.value(),
				Adr:          m.adr.value(),
				Occupancy:    m.occupancy.value(),
			})
		}
	}
	return rows
}
