package reports

import (
	"testing"

	"github.com/mmdatafocus/hotel_analytics/models"
)

func comparisonSnapshot() *models.Snapshot {
	snap := baseSnapshot(2024)
	snap.Markets = []models.Market{
		{ID: 1, Name: "Downtown"}, {ID: 2, Name: "Airport"}, {ID: 3, Name: "Beach"}, {ID: 4, Name: "Lake"},
	}
	snap.MarketDataFacts = []models.MarketDataFact{
		marketReading(ip(1), timeID(2024, 1), "90", "0.6", "0.01"),
		marketReading(ip(2), timeID(2024, 1), "120", "0.7", "0.02"),
		marketReading(ip(2), timeID(2024, 2), "80", "0.5", "0.04"),
		marketReading(ip(3), timeID(2024, 3), "100", "0.8", "0.05"),
	}
	return snap
}

func TestBuildMarketComparison_CompetitionRanking(t *testing.T) {
	rows := BuildMarketComparison(comparisonSnapshot(), MarketComparisonParams{Year: 2024})
	expected := []struct {
		rank int
		name string
	}{
		{1, "Airport"},
		{1, "Beach"},
		{3, "Downtown"},
		{4, "Lake"},
	}
	if len(rows) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(rows))
	}
	for i, want := range expected {
		if rows[i].Rank != want.rank || rows[i].MarketName != want.name {
			t.Fatalf("row %d: expected #%d %s, got #%d %s", i, want.rank, want.name, rows[i].Rank, rows[i].MarketName)
		}
	}
	assertDecimal(t, "airport revpar", rows[0].AvgRevpar, "100")
	assertDecimal(t, "airport growth", rows[0].RevparGrowth, "0.03")
	assertDecimal(t, "lake revpar", rows[3].AvgRevpar, "0")
}

func TestBuildMarketComparison_TopTruncatesAfterRanking(t *testing.T) {
	cases := []struct {
		top      *int
		expected int
	}{
		{nil, 4},
		{ip(0), 4},
		{ip(-1), 4},
		{ip(3), 3},
		{ip(10), 4},
	}
	for _, tc := range cases {
		rows := BuildMarketComparison(comparisonSnapshot(), MarketComparisonParams{Year: 2024, Top: tc.top})
		if len(rows) != tc.expected {
			t.Fatalf("top %v: expected %d rows, got %d", tc.top, tc.expected, len(rows))
		}
	}

	rows := BuildMarketComparison(comparisonSnapshot(), MarketComparisonParams{Year: 2024, Top: ip(3)})
	if rows[2].Rank != 3 {
		t.Fatalf("expected ranks computed before truncation, got %d", rows[2].Rank)
	}
}
