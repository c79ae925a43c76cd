package reports

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteExcel_HeadingAndRows(t *testing.T) {
	rows := BuildMarketComparison(comparisonSnapshot(), MarketComparisonParams{Year: 2024})

	var buf bytes.Buffer
	if err := WriteExcel(&buf, "market-comparison", rows); err != nil {
		t.Fatalf("WriteExcel error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader error: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("market-comparison")
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(got) != len(rows)+1 {
		t.Fatalf("expected heading + %d rows, got %d", len(rows), len(got))
	}
	if got[0][0] != "Rank" || got[0][1] != "Market" {
		t.Fatalf("unexpected heading %v", got[0])
	}
	if got[1][0] != "1" || got[1][1] != "Airport" || got[1][2] != "100" {
		t.Fatalf("unexpected first row %v", got[1])
	}
}

func TestWriteExcel_EmptyRowsKeepHeading(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(&buf, "budget", []*BudgetVsActualRow{}); err != nil {
		t.Fatalf("WriteExcel error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader error: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("budget")
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(got) != 1 || len(got[0]) != 10 {
		t.Fatalf("expected only the 10-column heading, got %v", got)
	}
}
