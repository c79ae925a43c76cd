package models

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// TimeDimension has one row per calendar date. Reports filter and group
// through these columns, never through raw dates.
type TimeDimension struct {
	ID         int       `gorm:"primary_key" json:"id"`
	FullDate   time.Time `gorm:"type:date;uniqueIndex;not null" json:"full_date"`
	Day        int       `gorm:"not null" json:"day"`
	Month      int       `gorm:"index;not null" json:"month"`
	Quarter    int       `gorm:"index;not null" json:"quarter"`
	Year       int       `gorm:"index;not null" json:"year"`
	DayOfWeek  int       `gorm:"not null" json:"day_of_week"` // 1=Sunday .. 7=Saturday
	WeekOfYear int       `gorm:"not null" json:"week_of_year"`
	IsWeekend  bool      `gorm:"not null;default:false" json:"is_weekend"`
}

// NewTimeDimension derives the denormalised calendar columns for date.
func NewTimeDimension(date time.Time) TimeDimension {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	month := int(d.Month())
	dayOfWeek := int(d.Weekday()) + 1
	return TimeDimension{
		FullDate:   d,
		Day:        d.Day(),
		Month:      month,
		Quarter:    (month-1)/3 + 1,
		Year:       d.Year(),
		DayOfWeek:  dayOfWeek,
		WeekOfYear: (d.YearDay()-1)/7 + 1,
		IsWeekend:  dayOfWeek == 1 || dayOfWeek == 7,
	}
}

// BuildTimeDimensions returns one row per date in [from, to], both inclusive.
func BuildTimeDimensions(from, to time.Time) []TimeDimension {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	var rows []TimeDimension
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		rows = append(rows, NewTimeDimension(current))
	}
	return rows
}

// SeedTimeDimensions inserts the rows of [from, to] whose date is not yet
// present and returns how many were inserted.
func SeedTimeDimensions(ctx context.Context, db *gorm.DB, from, to time.Time) (int, error) {
	rows := BuildTimeDimensions(from, to)
	if len(rows) == 0 {
		return 0, nil
	}

	var existing []TimeDimension
	if err := db.WithContext(ctx).
		Select("id", "full_date").
		Where("year BETWEEN ? AND ?", from.Year(), to.Year()).
		Find(&existing).Error; err != nil {
		return 0, fmt.Errorf("load existing dates: %w", err)
	}
	present := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		present[t.FullDate.UTC().Format(time.DateOnly)] = struct{}{}
	}

	missing := make([]TimeDimension, 0, len(rows))
	for _, r := range rows {
		if _, ok := present[r.FullDate.Format(time.DateOnly)]; ok {
			continue
		}
		missing = append(missing, r)
	}
	if len(missing) == 0 {
		return 0, nil
	}
	if err := db.WithContext(ctx).CreateInBatches(&missing, 500).Error; err != nil {
		return 0, fmt.Errorf("insert time_dimensions: %w", err)
	}
	return len(missing), nil
}
