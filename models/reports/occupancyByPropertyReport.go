package reports

import (
	"context"
	"time"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
)

type OccupancyByPropertyParams struct {
	Year     int     `json:"year" form:"year" validate:"required,min=1,max=9999"`
	Property *string `json:"property" form:"property" validate:"omitempty,min=1"`
}

type OccupancyIndexRow struct {
	PropertyId        int             `json:"property_id"`
	PropertyName      string          `json:"property_name"`
	MarketName        string          `json:"market_name"`
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	MonthName         string          `json:"month_name"`
	PropertyOccupancy decimal.Decimal `json:"property_occupancy"`
	MarketOccupancy   decimal.Decimal `json:"market_occupancy"`
	OccupancyIndex    decimal.Decimal `json:"occupancy_index"`
}

// OccupancyByProperty indexes each property's monthly occupancy against its
// market. An index above 1 means the property beat its market; 0 means the
// market had no occupancy to compare with.
func (e *Engine) OccupancyByProperty(ctx context.Context, params OccupancyByPropertyParams) ([]*OccupancyIndexRow, error) {
	return runReport(ctx, e, "occupancy_by_property", params,
		func(p OccupancyByPropertyParams) []int { return singleYear(p.Year) },
		BuildOccupancyByProperty,
	)
}

func BuildOccupancyByProperty(snap *models.Snapshot, params OccupancyByPropertyParams) []*OccupancyIndexRow {
	lk := newLookup(snap)
	year := params.Year

	propertyOcc := make(map[periodKey]*average)
	for i := range snap.PropertyStatFacts {
		f := &snap.PropertyStatFacts[i]
		p, ok := resolve(lk.properties, f.PropertyId)
		if !ok {
			continue
		}
		t, ok := lk.timeInYear(f.TimeId, year)
		if !ok {
			continue
		}
		key := periodKey{id: p.ID, period: t.Month}
		a, ok := propertyOcc[key]
		if !ok {
			a = &average{}
			propertyOcc[key] = a
		}
		a.add(f.Occupancy)
	}
	market := lk.marketByPeriod(snap.MarketDataFacts, year, byMonth)

	properties := sortedProperties(snap)
	rows := make([]*OccupancyIndexRow, 0, len(properties)*12)
	for _, p := range properties {
		if !matchesFilter(params.Property, p.Name, true) {
			continue
		}
		marketName := ""
		if m, ok := resolve(lk.markets, p.MarketId); ok {
			marketName = m.Name
		}
		for month := 1; month <= 12; month++ {
			var m *marketMetrics
			if p.MarketId != nil {
				m = market[periodKey{id: *p.MarketId, period: month}]
			}
			if m == nil {
				m = &marketMetrics{}
			}
			propOcc := propertyOcc[periodKey{id: p.ID, period: month}].value()
			marketOcc := m.occupancy.value()
			rows = append(rows, &OccupancyIndexRow{
				PropertyId:        p.ID,
				PropertyName:      p.Name,
				MarketName:        marketName,
				Year:              year,
				Month:             month,
				MonthName:         time.Month(month).String(),
				PropertyOccupancy: propOcc,
				MarketOccupancy:   marketOcc,
				OccupancyIndex:    SafeRatio(propOcc, marketOcc),
			})
		}
	}
	return rows
}
