package models

import (
	"gorm.io/gorm"
)

func AllModels() []interface{} {
	return []interface{}{
		&Property{}, &HotelType{}, &Brand{}, &ChainScale{}, &Department{}, &Account{},
		&Market{}, &Country{}, &Region{}, &State{}, &City{},
		&TimeDimension{},
		&FinancialFact{}, &MarketDataFact{}, &PropertyStatFact{},
	}
}

// MigrateTable creates or updates the dimensional schema.
func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
