package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeDimension(t *testing.T) {
	cases := []struct {
		date       time.Time
		quarter    int
		dayOfWeek  int
		weekOfYear int
		weekend    bool
	}{
		// 2024-01-01 is a Monday
		{time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC), 1, 2, 1, false},
		{time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), 1, 1, 1, true},
		{time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 1, 2, 2, false},
		{time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC), 2, 7, 26, true},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 4, 3, 53, false},
	}
	for _, tc := range cases {
		td := NewTimeDimension(tc.date)
		name := tc.date.Format(time.DateOnly)
		assert.Equal(t, tc.date.Day(), td.Day, name)
		assert.Equal(t, int(tc.date.Month()), td.Month, name)
		assert.Equal(t, tc.quarter, td.Quarter, name)
		assert.Equal(t, tc.date.Year(), td.Year, name)
		assert.Equal(t, tc.dayOfWeek, td.DayOfWeek, name)
		assert.Equal(t, tc.weekOfYear, td.WeekOfYear, name)
		assert.Equal(t, tc.weekend, td.IsWeekend, name)
		assert.Equal(t, 0, td.FullDate.Hour(), name)
	}
}

func TestBuildTimeDimensions_Inclusive(t *testing.T) {
	rows := BuildTimeDimensions(time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, rows, 4)
	assert.Equal(t, 29, rows[2].Day)
	assert.Equal(t, 3, rows[3].Month)

	assert.Empty(t, BuildTimeDimensions(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSeedTimeDimensions_SkipsExistingDates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	existing := NewTimeDimension(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&existing).Error)

	inserted, err := SeedTimeDimensions(ctx, db, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 30, inserted)

	inserted, err = SeedTimeDimensions(ctx, db, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	var count int64
	require.NoError(t, db.Model(&TimeDimension{}).Where("year = ?", 2024).Count(&count).Error)
	assert.EqualValues(t, 31, count)
}
