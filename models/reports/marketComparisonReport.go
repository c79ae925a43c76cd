package reports

import (
	"context"
	"sort"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/mmdatafocus/hotel_analytics/utils"
	"github.com/shopspring/decimal"
)

type MarketComparisonParams struct {
	Year int `json:"year" form:"year" validate:"required,min=1,max=9999"`
	// nil or <= 0 returns every market
	Top *int `json:"top" form:"top"`
}

type MarketComparisonRow struct {
	Rank         int             `json:"rank"`
	MarketId     int             `json:"market_id"`
	MarketName   string          `json:"market_name"`
	AvgRevpar    decimal.Decimal `json:"avg_revpar"`
	AvgAdr       decimal.Decimal `json:"avg_adr"`
	AvgOccupancy decimal.Decimal `json:"avg_occupancy"`
	RevparGrowth decimal.Decimal `json:"revpar_growth"`
}

// MarketComparison ranks markets by average RevPAR, highest first.
func (e *Engine) MarketComparison(ctx context.Context, params MarketComparisonParams) ([]*MarketComparisonRow, error) {
	return runReport(ctx, e, "market_comparison", params,
		func(p MarketComparisonParams) []int { return singleYear(p.Year) },
		BuildMarketComparison,
	)
}

func BuildMarketComparison(snap *models.Snapshot, params MarketComparisonParams) []*MarketComparisonRow {
	lk := newLookup(snap)
	market := lk.marketByYear(snap.MarketDataFacts, params.Year)

	rows := make([]*MarketComparisonRow, 0, len(snap.Markets))
	for i := range snap.Markets {
		m := &snap.Markets[i]
		agg := market[m.ID]
		if agg == nil {
			agg = &marketMetrics{}
		}
		rows = append(rows, &MarketComparisonRow{
			MarketId:     m.ID,
			MarketName:   m.Name,
			AvgRevpar:    agg.revpar.value(),
			AvgAdr:       agg.adr.value(),
			AvgOccupancy: agg.occupancy.value(),
			RevparGrowth: agg.demandGrowth.value(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].AvgRevpar.Cmp(rows[j].AvgRevpar); c != 0 {
			return c > 0
		}
		if rows[i].MarketName != rows[j].MarketName {
			return rows[i].MarketName < rows[j].MarketName
		}
		return rows[i].MarketId < rows[j].MarketId
	})
	assignCompetitionRanks(rows)

	if top := utils.DereferencePtr(params.Top); top > 0 && len(rows) > top {
		rows = rows[:top]
	}
	return rows
}

// assignCompetitionRanks expects rows sorted by AvgRevpar descending.
// rank = 1 + number of strictly larger values, so ties share a rank and
// the next distinct value skips past them (1, 1, 3).
func assignCompetitionRanks(rows []*MarketComparisonRow) {
	for i, row := range rows {
		if i > 0 && row.AvgRevpar.Equal(rows[i-1].AvgRevpar) {
			row.Rank = rows[i-1].Rank
			continue
		}
		row.Rank = i + 1
	}
}
