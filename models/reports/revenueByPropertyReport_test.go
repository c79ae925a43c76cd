package reports

import (
	"testing"

	"github.com/mmdatafocus/hotel_analytics/models"
)

func TestBuildRevenueByProperty_CrossJoinsPropertiesAndMonths(t *testing.T) {
	snap := baseSnapshot(2023, 2024)
	snap.FinancialFacts = []models.FinancialFact{
		financial(ip(propAlpha), ip(accRoomRevenue), ip(deptRooms), timeID(2024, 1), "1000"),
		// no account type filter: expense and untyped amounts are summed too
		financial(ip(propAlpha), ip(accPayroll), ip(deptRooms), timeID(2024, 1), "200"),
		financial(ip(propAlpha), nil, nil, timeID(2024, 1), "50"),
		financial(ip(propAlpha), ip(accRoomRevenue), ip(deptRooms), timeID(2023, 1), "9999"),
		financial(nil, ip(accRoomRevenue), ip(deptRooms), timeID(2024, 1), "7777"),
		financial(ip(propBravo), ip(accRoomRevenue), ip(deptRooms), timeID(2024, 3), "300"),
	}
	snap.MarketDataFacts = []models.MarketDataFact{
		marketReading(ip(1), timeID(2024, 1), "100", "0.6", "0.03"),
		marketReading(ip(1), timeID(2024, 1), "120", "0.8", "0.03"),
		marketReading(ip(1), timeID(2023, 1), "500", "0.9", "0.03"),
	}

	rows := BuildRevenueByProperty(snap, RevenueByPropertyParams{Year: 2024})
	if len(rows) != 36 {
		t.Fatalf("expected 3 properties x 12 months = 36 rows, got %d", len(rows))
	}
	for i, name := range []string{"Alpha", "Bravo", "Charlie"} {
		for m := 0; m < 12; m++ {
			row := rows[i*12+m]
			if row.PropertyName != name || row.Month != m+1 || row.Year != 2024 {
				t.Fatalf("row %d: expected %s month %d, got %s month %d", i*12+m, name, m+1, row.PropertyName, row.Month)
			}
		}
	}

	jan := rows[0]
	if jan.MonthName != "January" {
		t.Fatalf("expected January, got %s", jan.MonthName)
	}
	assertDecimal(t, "alpha jan revenue", jan.Revenue, "1250")
	assertDecimal(t, "alpha jan revpar", jan.Revpar, "110")
	assertDecimal(t, "alpha jan adr", jan.Adr, "220")
	assertDecimal(t, "alpha jan occupancy", jan.Occupancy, "0.7")

	feb := rows[1]
	assertDecimal(t, "alpha feb revenue", feb.Revenue, "0")
	assertDecimal(t, "alpha feb revpar", feb.Revpar, "0")

	assertDecimal(t, "bravo mar revenue", rows[12+2].Revenue, "300")
	// Charlie has no market: market columns read 0
	assertDecimal(t, "charlie jan revpar", rows[24].Revpar, "0")
}

func TestBuildRevenueByProperty_EmptyStore(t *testing.T) {
	rows := BuildRevenueByProperty(&models.Snapshot{}, RevenueByPropertyParams{Year: 2024})
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", rows)
	}
}
