package models

type Market struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

type Country struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

// Region groups properties through Property.RegionId.
type Region struct {
	ID        int    `gorm:"primary_key" json:"id"`
	Name      string `gorm:"index;size:100;not null" json:"name"`
	CountryId *int   `gorm:"index" json:"country_id"`
}

type State struct {
	ID        int    `gorm:"primary_key" json:"id"`
	Name      string `gorm:"index;size:100;not null" json:"name"`
	CountryId *int   `gorm:"index" json:"country_id"`
}

type City struct {
	ID      int    `gorm:"primary_key" json:"id"`
	Name    string `gorm:"index;size:100;not null" json:"name"`
	StateId *int   `gorm:"index" json:"state_id"`
}
