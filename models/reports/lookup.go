package reports

import (
	"sort"

	"github.com/mmdatafocus/hotel_analytics/models"
)

// lookup holds id-keyed views of a snapshot's dimension tables. Every
// resolve is a left-outer lookup: an unset or dangling key yields ok=false.
type lookup struct {
	properties  map[int]*models.Property
	hotelTypes  map[int]*models.HotelType
	brands      map[int]*models.Brand
	departments map[int]*models.Department
	accounts    map[int]*models.Account
	markets     map[int]*models.Market
	regions     map[int]*models.Region
	times       map[int]*models.TimeDimension
}

func index[T any](rows []T, id func(*T) int) map[int]*T {
	m := make(map[int]*T, len(rows))
	for i := range rows {
		m[id(&rows[i])] = &rows[i]
	}
	return m
}

func resolve[T any](m map[int]*T, id *int) (*T, bool) {
	if id == nil {
		return nil, false
	}
	v, ok := m[*id]
	return v, ok
}

func newLookup(snap *models.Snapshot) *lookup {
	return &lookup{
		properties:  index(snap.Properties, func(p *models.Property) int { return p.ID }),
		hotelTypes:  index(snap.HotelTypes, func(h *models.HotelType) int { return h.ID }),
		brands:      index(snap.Brands, func(b *models.Brand) int { return b.ID }),
		departments: index(snap.Departments, func(d *models.Department) int { return d.ID }),
		accounts:    index(snap.Accounts, func(a *models.Account) int { return a.ID }),
		markets:     index(snap.Markets, func(m *models.Market) int { return m.ID }),
		regions:     index(snap.Regions, func(r *models.Region) int { return r.ID }),
		times:       index(snap.Times, func(t *models.TimeDimension) int { return t.ID }),
	}
}

// timeInYear resolves a fact's time key and keeps it only for year.
func (l *lookup) timeInYear(id *int, year int) (*models.TimeDimension, bool) {
	t, ok := resolve(l.times, id)
	if !ok || t.Year != year {
		return nil, false
	}
	return t, true
}

// accountType is "" for an unresolved account, which is neither Revenue nor Expense.
func (l *lookup) accountType(id *int) models.AccountType {
	if a, ok := resolve(l.accounts, id); ok {
		return a.AccountType
	}
	return ""
}

func (l *lookup) propertyNamed(id *int, filter *string) bool {
	p, ok := resolve(l.properties, id)
	name := ""
	if ok {
		name = p.Name
	}
	return matchesFilter(filter, name, ok)
}

// sortedProperties orders by name, then id, so equal names stay deterministic.
func sortedProperties(snap *models.Snapshot) []*models.Property {
	out := make([]*models.Property, 0, len(snap.Properties))
	for i := range snap.Properties {
		out = append(out, &snap.Properties[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// periodKey addresses one dimension member within one period of a year
// (month 1-12 or quarter 1-4).
type periodKey struct {
	id     int
	period int
}

func byMonth(t *models.TimeDimension) int { return t.Month }

func byQuarter(t *models.TimeDimension) int { return t.Quarter }

// marketMetrics averages every MarketDataFact column.
type marketMetrics struct {
	revpar       average
	adr          average
	occupancy    average
	supply       average
	demand       average
	supplyGrowth average
	demandGrowth average
}

func (m *marketMetrics) add(f *models.MarketDataFact) {
	m.revpar.add(f.Revpar)
	m.adr.add(f.Adr)
	m.occupancy.add(f.Occupancy)
	m.supply.add(f.Supply)
	m.demand.add(f.Demand)
	m.supplyGrowth.add(f.SupplyGrowth)
	m.demandGrowth.add(f.DemandGrowth)
}

func (m *marketMetrics) merge(other *marketMetrics) {
	if other == nil {
		return
	}
	m.revpar.merge(&other.revpar)
	m.adr.merge(&other.adr)
	m.occupancy.merge(&other.occupancy)
	m.supply.merge(&other.supply)
	m.demand.merge(&other.demand)
	m.supplyGrowth.merge(&other.supplyGrowth)
	m.demandGrowth.merge(&other.demandGrowth)
}

// marketByPeriod groups the year's market readings by (market id, period).
// Readings join on the raw market key, as Property.MarketId does.
func (l *lookup) marketByPeriod(facts []models.MarketDataFact, year int, period func(*models.TimeDimension) int) map[periodKey]*marketMetrics {
	out := make(map[periodKey]*marketMetrics)
	for i := range facts {
		f := &facts[i]
		if f.MarketId == nil {
			continue
		}
		t, ok := l.timeInYear(f.TimeId, year)
		if !ok {
			continue
		}
		key := periodKey{id: *f.MarketId, period: period(t)}
		m, ok := out[key]
		if !ok {
			m = &marketMetrics{}
			out[key] = m
		}
		m.add(f)
	}
	return out
}

// marketByYear groups the year's market readings by market id.
func (l *lookup) marketByYear(facts []models.MarketDataFact, year int) map[int]*marketMetrics {
	out := make(map[int]*marketMetrics)
	for k, m := range l.marketByPeriod(facts, year, func(*models.TimeDimension) int { return 0 }) {
		out[k.id] = m
	}
	return out
}
