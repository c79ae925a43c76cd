package reports

import (
	"testing"

	"github.com/mmdatafocus/hotel_analytics/models"
)

func TestBuildBrandPerformance(t *testing.T) {
	snap := baseSnapshot(2024)
	snap.FinancialFacts = []models.FinancialFact{
		financial(ip(propAlpha), ip(accRoomRevenue), ip(deptRooms), timeID(2024, 1), "1000"),
		financial(ip(propAlpha), ip(accPayroll), ip(deptRooms), timeID(2024, 1), "400"),
		financial(ip(propBravo), ip(accRoomRevenue), ip(deptRooms), timeID(2024, 6), "500"),
		financial(ip(propCharlie), ip(accRoomRevenue), ip(deptRooms), timeID(2024, 9), "2000"),
	}
	snap.MarketDataFacts = []models.MarketDataFact{
		marketReading(ip(1), timeID(2024, 1), "100", "0.6", "0"),
		marketReading(ip(1), timeID(2024, 2), "120", "0.8", "0"),
		marketReading(ip(2), timeID(2024, 1), "80", "0.4", "0"),
	}

	rows := BuildBrandPerformance(snap, BrandPerformanceParams{Year: 2024})
	if len(rows) != 3 {
		t.Fatalf("expected every brand, got %d rows", len(rows))
	}
	if rows[0].BrandName != "Inn" || rows[1].BrandName != "Grand" || rows[2].BrandName != "Empty" {
		t.Fatalf("expected Inn, Grand, Empty by revenue, got %s, %s, %s", rows[0].BrandName, rows[1].BrandName, rows[2].BrandName)
	}

	assertDecimal(t, "inn revenue", rows[0].TotalRevenue, "2000")
	if rows[0].PropertyCount != 1 {
		t.Fatalf("expected Inn to count 1 property, got %d", rows[0].PropertyCount)
	}

	grand := rows[1]
	assertDecimal(t, "grand revenue", grand.TotalRevenue, "1500")
	assertDecimal(t, "grand revpar", grand.AvgRevpar, "100")
	assertDecimal(t, "grand occupancy", grand.AvgOccupancy, "0.6")
	if grand.PropertyCount != 2 {
		t.Fatalf("expected Grand to count 2 properties, got %d", grand.PropertyCount)
	}

	empty := rows[2]
	assertDecimal(t, "empty revenue", empty.TotalRevenue, "0")
	if empty.PropertyCount != 0 {
		t.Fatalf("expected Empty to count 0 properties, got %d", empty.PropertyCount)
	}
}
