// seed-time-dimension fills the time dimension with one row per calendar date.
// Dates that already have a row are left untouched.
//
// Usage:
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-time-dimension -from 2023 -to 2026
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mmdatafocus/hotel_analytics/config"
	"github.com/mmdatafocus/hotel_analytics/models"
)

func main() {
	from := flag.Int("from", 0, "First calendar year to seed (required)")
	to := flag.Int("to", 0, "Last calendar year to seed, inclusive (required)")
	migrate := flag.Bool("migrate", false, "Run AutoMigrate before seeding")
	flag.Parse()

	if *from <= 0 || *to <= 0 || *from > *to {
		fmt.Fprintln(os.Stderr, "-from and -to are required and -from must not be after -to")
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	if *migrate {
		if err := models.MigrateTable(db); err != nil {
			fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
			os.Exit(1)
		}
	}

	start := time.Date(*from, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(*to, time.December, 31, 0, 0, 0, 0, time.UTC)
	inserted, err := models.SeedTimeDimensions(ctx, db, start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed time dimension: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("time dimension %d..%d: %d rows inserted\n", *from, *to, inserted)
}
