package reports

import (
	"context"
	"sort"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
)

type PerformanceByRegionParams struct {
	Year      int     `json:"year" form:"year" validate:"required,min=1,max=9999"`
	HotelType *string `json:"hotel_type" form:"hotel_type" validate:"omitempty,min=1"`
}

type RegionPerformanceRow struct {
	RegionId     int             `json:"region_id"`
	RegionName   string          `json:"region_name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AvgRevpar    decimal.Decimal `json:"avg_revpar"`
	AvgOccupancy decimal.Decimal `json:"avg_occupancy"`
	GrowthRate   decimal.Decimal `json:"growth_rate"`
}

// PerformanceByRegion rolls properties up through Property.RegionId.
// Total revenue sums all amounts with no account type filter; growth rate is
// the average market demand growth.
func (e *Engine) PerformanceByRegion(ctx context.Context, params PerformanceByRegionParams) ([]*RegionPerformanceRow, error) {
	return runReport(ctx, e, "performance_by_region", params,
		func(p PerformanceByRegionParams) []int { return singleYear(p.Year) },
		BuildPerformanceByRegion,
	)
}

func BuildPerformanceByRegion(snap *models.Snapshot, params PerformanceByRegionParams) []*RegionPerformanceRow {
	lk := newLookup(snap)
	year := params.Year

	// qualifying properties per region
	members := make(map[int][]*models.Property)
	qualifies := make(map[int]bool)
	for i := range snap.Properties {
		p := &snap.Properties[i]
		r, ok := resolve(lk.regions, p.RegionId)
		if !ok {
			continue
		}
		ht, htOk := resolve(lk.hotelTypes, p.HotelTypeId)
		htName := ""
		if htOk {
			htName = ht.Name
		}
		if !matchesFilter(params.HotelType, htName, htOk) {
			continue
		}
		members[r.ID] = append(members[r.ID], p)
		qualifies[p.ID] = true
	}

	revenue := make(map[int]decimal.Decimal)
	for i := range snap.FinancialFacts {
		f := &snap.FinancialFacts[i]
		p, ok := resolve(lk.properties, f.PropertyId)
		if !ok || !qualifies[p.ID] {
			continue
		}
		if _, ok := lk.timeInYear(f.TimeId, year); !ok {
			continue
		}
		revenue[*p.RegionId] = revenue[*p.RegionId].Add(f.Amount)
	}

	market := lk.marketByYear(snap.MarketDataFacts, year)

	regions := make([]*models.Region, 0, len(snap.Regions))
	for i := range snap.Regions {
		regions = append(regions, &snap.Regions[i])
	}
	sort.SliceStable(regions, func(i, j int) bool {
		if regions[i].Name != regions[j].Name {
			return regions[i].Name < regions[j].Name
		}
		return regions[i].ID < regions[j].ID
	})

	rows := make([]*RegionPerformanceRow, 0, len(regions))
	for _, r := range regions {
		agg := &marketMetrics{}
		for _, p := range members[r.ID] {
			if p.MarketId != nil {
				agg.merge(market[*p.MarketId])
			}
		}
		rows = append(rows, &RegionPerformanceRow{
			RegionId:     r.ID,
			RegionName:   r.Name,
			TotalRevenue: revenue[r.ID],
			AvgRevpar:    agg.revpar.value(),
			AvgOccupancy: agg.occupancy.value(),
			GrowthRate:   agg.demandGrowth.value(),
		})
	}
	return rows
}
