package models

// Property is a single hotel. Every dimension reference is optional;
// an unset key means the property takes no part in joins on that dimension.
type Property struct {
	ID           int    `gorm:"primary_key" json:"id"`
	Name         string `gorm:"index;size:150;not null" json:"name"`
	HotelTypeId  *int   `gorm:"index" json:"hotel_type_id"`
	MarketId     *int   `gorm:"index" json:"market_id"`
	CountryId    *int   `gorm:"index" json:"country_id"`
	RegionId     *int   `gorm:"index" json:"region_id"`
	StateId      *int   `gorm:"index" json:"state_id"`
	CityId       *int   `gorm:"index" json:"city_id"`
	BrandId      *int   `gorm:"index" json:"brand_id"`
	ChainScaleId *int   `gorm:"index" json:"chain_scale_id"`
}

type HotelType struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

type Brand struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

type ChainScale struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

type Department struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

// Account classifies every financial fact row through AccountType.
type Account struct {
	ID          int         `gorm:"primary_key" json:"id"`
	Name        string      `gorm:"index;size:100;not null" json:"name"`
	AccountType AccountType `gorm:"index;size:20;not null" json:"account_type"`
}
