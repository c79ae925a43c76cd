package models

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmdatafocus/hotel_analytics/utils"
	"gorm.io/gorm"
)

// SnapshotScope limits the fact rows read into a Snapshot to the Time rows
// of the listed years. Dimension tables are always read in full.
type SnapshotScope struct {
	Years []int
}

// Snapshot is an immutable, point-in-time copy of the dimensional store.
type Snapshot struct {
	Properties  []Property
	HotelTypes  []HotelType
	Brands      []Brand
	ChainScales []ChainScale
	Departments []Department
	Accounts    []Account
	Markets     []Market
	Countries   []Country
	Regions     []Region
	States      []State
	Cities      []City

	Times             []TimeDimension
	FinancialFacts    []FinancialFact
	MarketDataFacts   []MarketDataFact
	PropertyStatFacts []PropertyStatFact
}

type SnapshotStore struct {
	db *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// LoadSnapshot reads every table the reports need inside one read-only
// transaction, so a single report never sees a half-applied ingestion batch.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context, scope SnapshotScope) (*Snapshot, error) {
	if s.db == nil {
		return nil, fmt.Errorf("snapshot store: db is nil")
	}
	snap := &Snapshot{}
	years := utils.UniqueSlice(scope.Years)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dimensions := []struct {
			name string
			dest interface{}
		}{
			{"properties", &snap.Properties},
			{"hotel_types", &snap.HotelTypes},
			{"brands", &snap.Brands},
			{"chain_scales", &snap.ChainScales},
			{"departments", &snap.Departments},
			{"accounts", &snap.Accounts},
			{"markets", &snap.Markets},
			{"countries", &snap.Countries},
			{"regions", &snap.Regions},
			{"states", &snap.States},
			{"cities", &snap.Cities},
		}
		for _, d := range dimensions {
			if err := tx.Order("id").Find(d.dest).Error; err != nil {
				return fmt.Errorf("load %s: %w", d.name, err)
			}
		}

		if len(years) == 0 {
			return nil
		}
		if err := tx.Where("year IN ?", years).Order("full_date, id").Find(&snap.Times).Error; err != nil {
			return fmt.Errorf("load time_dimensions: %w", err)
		}
		timeIds := func() *gorm.DB {
			return tx.Model(&TimeDimension{}).Select("id").Where("year IN ?", years)
		}

		if err := tx.Where("time_id IN (?)", timeIds()).Order("id").Find(&snap.FinancialFacts).Error; err != nil {
			return fmt.Errorf("load financial_facts: %w", err)
		}
		if err := tx.Where("time_id IN (?)", timeIds()).Order("id").Find(&snap.MarketDataFacts).Error; err != nil {
			return fmt.Errorf("load market_data_facts: %w", err)
		}
		if err := tx.Where("time_id IN (?)", timeIds()).Order("id").Find(&snap.PropertyStatFacts).Error; err != nil {
			return fmt.Errorf("load property_stat_facts: %w", err)
		}
		return nil
	}, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
