package reports

import (
	"context"
	"sort"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
)

type BrandPerformanceParams struct {
	Year int `json:"year" form:"year" validate:"required,min=1,max=9999"`
}

type BrandPerformanceRow struct {
	BrandId       int             `json:"brand_id"`
	BrandName     string          `json:"brand_name"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgRevpar     decimal.Decimal `json:"avg_revpar"`
	AvgOccupancy  decimal.Decimal `json:"avg_occupancy"`
	PropertyCount int             `json:"property_count"`
}

func (e *Engine) BrandPerformance(ctx context.Context, params BrandPerformanceParams) ([]*BrandPerformanceRow, error) {
	return runReport(ctx, e, "brand_performance", params,
		func(p BrandPerformanceParams) []int { return singleYear(p.Year) },
		BuildBrandPerformance,
	)
}

func BuildBrandPerformance(snap *models.Snapshot, params BrandPerformanceParams) []*BrandPerformanceRow {
	lk := newLookup(snap)
	year := params.Year

	members := make(map[int][]*models.Property)
	for i := range snap.Properties {
		p := &snap.Properties[i]
		if b, ok := resolve(lk.brands, p.BrandId); ok {
			members[b.ID] = append(members[b.ID], p)
		}
	}

	revenue := make(map[int]decimal.Decimal)
	for i := range snap.FinancialFacts {
		f := &snap.FinancialFacts[i]
		p, ok := resolve(lk.properties, f.PropertyId)
		if !ok {
			continue
		}
		b, ok := resolve(lk.brands, p.BrandId)
		if !ok {
			continue
		}
		if _, ok := lk.timeInYear(f.TimeId, year); !ok {
			continue
		}
		if !lk.accountType(f.AccountId).IsRevenue() {
			continue
		}
		revenue[b.ID] = revenue[b.ID].Add(f.Amount)
	}
	market := lk.marketByYear(snap.MarketDataFacts, year)

	rows := make([]*BrandPerformanceRow, 0, len(snap.Brands))
	for i := range snap.Brands {
		b := &snap.Brands[i]
		agg := &marketMetrics{}
		for _, p := range members[b.ID] {
			if p.MarketId != nil {
				agg.merge(market[*p.MarketId])
			}
		}
		rows = append(rows, &BrandPerformanceRow{
			BrandId:       b.ID,
			BrandName:     b.Name,
			TotalRevenue:  revenue[b.ID],
			AvgRevpar:     agg.revpar.value(),
			AvgOccupancy:  agg.occupancy.value(),
			PropertyCount: len(members[b.ID]),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].TotalRevenue.Cmp(rows[j].TotalRevenue); c != 0 {
			return c > 0
		}
		if rows[i].BrandName != rows[j].BrandName {
			return rows[i].BrandName < rows[j].BrandName
		}
		return rows[i].BrandId < rows[j].BrandId
	})
	return rows
}
