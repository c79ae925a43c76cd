package models

import (
	"github.com/shopspring/decimal"
)

// FinancialFact is one amount for (property, time, department, account).
// Budget and actual rows for the same tuple coexist, told apart by IsBudget.
type FinancialFact struct {
	ID           int             `gorm:"primary_key" json:"id"`
	PropertyId   *int            `gorm:"index" json:"property_id"`
	TimeId       *int            `gorm:"index" json:"time_id"`
	DepartmentId *int            `gorm:"index" json:"department_id"`
	AccountId    *int            `gorm:"index" json:"account_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"amount"`
	IsBudget     bool            `gorm:"index;not null;default:false" json:"is_budget"`
	IsForecast   bool            `gorm:"index;not null;default:false" json:"is_forecast"`
}

// MarketDataFact is one market reading per (market, time). Duplicates for
// the same key are not collapsed and will be blended by averages.
type MarketDataFact struct {
	ID           int             `gorm:"primary_key" json:"id"`
	MarketId     *int            `gorm:"index" json:"market_id"`
	TimeId       *int            `gorm:"index" json:"time_id"`
	Revpar       decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"revpar"`
	Adr          decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"adr"`
	Occupancy    decimal.Decimal `gorm:"type:decimal(10,6);not null;default:0" json:"occupancy"`
	Supply       decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"supply"`
	Demand       decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"demand"`
	SupplyGrowth decimal.Decimal `gorm:"type:decimal(10,6);not null;default:0" json:"supply_growth"`
	DemandGrowth decimal.Decimal `gorm:"type:decimal(10,6);not null;default:0" json:"demand_growth"`
}

// PropertyStatFact carries property-level operating statistics.
type PropertyStatFact struct {
	ID             int             `gorm:"primary_key" json:"id"`
	PropertyId     *int            `gorm:"index" json:"property_id"`
	TimeId         *int            `gorm:"index" json:"time_id"`
	RoomsAvailable int             `gorm:"not null;default:0" json:"rooms_available"`
	RoomsSold      int             `gorm:"not null;default:0" json:"rooms_sold"`
	Occupancy      decimal.Decimal `gorm:"type:decimal(10,6);not null;default:0" json:"occupancy"`
	Adr            decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"adr"`
	Revpar         decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"revpar"`
}
