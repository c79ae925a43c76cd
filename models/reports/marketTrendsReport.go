package reports

import (
	"context"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/mmdatafocus/hotel_analytics/utils"
	"github.com/shopspring/decimal"
)

// MarketTrendsParams covers the inclusive range [StartYear, EndYear].
// A range with StartYear > EndYear yields no rows.
type MarketTrendsParams struct {
	Market    *string `json:"market" form:"market" validate:"omitempty,min=1"`
	StartYear int     `json:"start_year" form:"start_year" validate:"required,min=1,max=9999"`
	EndYear   int     `json:"end_year" form:"end_year" validate:"required,min=1,max=9999"`
}

type MarketTrendRow struct {
	Year            int             `json:"year"`
	AvgRevpar       decimal.Decimal `json:"avg_revpar"`
	AvgAdr          decimal.Decimal `json:"avg_adr"`
	AvgOccupancy    decimal.Decimal `json:"avg_occupancy"`
	AvgSupplyGrowth decimal.Decimal `json:"avg_supply_growth"`
	AvgDemandGrowth decimal.Decimal `json:"avg_demand_growth"`
}

func (e *Engine) MarketTrends(ctx context.Context, params MarketTrendsParams) ([]*MarketTrendRow, error) {
	return runReport(ctx, e, "market_trends", params,
		func(p MarketTrendsParams) []int { return utils.YearRange(p.StartYear, p.EndYear) },
		BuildMarketTrends,
	)
}

func BuildMarketTrends(snap *models.Snapshot, params MarketTrendsParams) []*MarketTrendRow {
	lk := newLookup(snap)

	byYear := make(map[int]*marketMetrics)
	for i := range snap.MarketDataFacts {
		f := &snap.MarketDataFacts[i]
		t, ok := resolve(lk.times, f.TimeId)
		if !ok || t.Year < params.StartYear || t.Year > params.EndYear {
			continue
		}
		m, mOk := resolve(lk.markets, f.MarketId)
		name := ""
		if mOk {
			name = m.Name
		}
		if !matchesFilter(params.Market, name, mOk) {
			continue
		}
		agg, ok := byYear[t.Year]
		if !ok {
			agg = &marketMetrics{}
			byYear[t.Year] = agg
		}
		agg.add(f)
	}

	years := utils.YearRange(params.StartYear, params.EndYear)
	rows := make([]*MarketTrendRow, 0, len(years))
	for _, year := range years {
		agg := byYear[year]
		if agg == nil {
			agg = &marketMetrics{}
		}
		rows = append(rows, &MarketTrendRow{
			Year:            year,
			AvgRevpar:       agg.revpar.value(),
			AvgAdr:          agg.adr.value(),
			AvgOccupancy:    agg.occupancy.value(),
			AvgSupplyGrowth: agg.supplyGrowth.value(),
			AvgDemandGrowth: agg.demandGrowth.value(),
		})
	}
	return rows
}
