package reports

import (
	"testing"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
)

func expenseSnapshot() *models.Snapshot {
	snap := baseSnapshot(2023, 2024)
	snap.FinancialFacts = []models.FinancialFact{
		financial(ip(propAlpha), ip(accPayroll), ip(deptRooms), timeID(2024, 1), "300"),
		financial(ip(propBravo), ip(accPayroll), ip(deptRooms), timeID(2024, 4), "100"),
		financial(ip(propAlpha), ip(accPayroll), ip(deptFnB), timeID(2024, 2), "100"),
		// revenue only: Spa is listed with 0 expenses
		financial(ip(propAlpha), ip(accRoomRevenue), ip(deptSpa), timeID(2024, 3), "500"),
		financial(ip(propAlpha), ip(accPayroll), nil, timeID(2024, 3), "999"),
		financial(ip(propAlpha), ip(accPayroll), ip(deptRooms), timeID(2023, 5), "200"),
	}
	return snap
}

func TestBuildExpensesByDepartment_YearOverYear(t *testing.T) {
	rows := BuildExpensesByDepartment(expenseSnapshot(), ExpensesByDepartmentParams{Year: 2024})
	if len(rows) != 3 {
		t.Fatalf("expected 3 departments, got %d", len(rows))
	}
	if rows[0].DepartmentName != "Rooms" || rows[1].DepartmentName != "F&B" || rows[2].DepartmentName != "Spa" {
		t.Fatalf("expected Rooms, F&B, Spa ordered by expenses, got %s, %s, %s", rows[0].DepartmentName, rows[1].DepartmentName, rows[2].DepartmentName)
	}

	assertDecimal(t, "rooms total", rows[0].TotalExpenses, "400")
	assertDecimal(t, "rooms share", rows[0].PercentageOfTotal, "0.8")
	assertDecimal(t, "rooms yoy", rows[0].YearOverYearChange, "1")

	assertDecimal(t, "f&b total", rows[1].TotalExpenses, "100")
	assertDecimal(t, "f&b share", rows[1].PercentageOfTotal, "0.2")
	// no prior-year expense reads as no change
	assertDecimal(t, "f&b yoy", rows[1].YearOverYearChange, "0")

	assertDecimal(t, "spa total", rows[2].TotalExpenses, "0")
	assertDecimal(t, "spa share", rows[2].PercentageOfTotal, "0")
}

func TestBuildExpensesByDepartment_PropertyFilter(t *testing.T) {
	rows := BuildExpensesByDepartment(expenseSnapshot(), ExpensesByDepartmentParams{Year: 2024, Property: sp("Alpha")})
	if len(rows) != 3 {
		t.Fatalf("expected 3 departments, got %d", len(rows))
	}
	assertDecimal(t, "alpha rooms", rows[0].TotalExpenses, "300")
	assertDecimal(t, "alpha rooms share", rows[0].PercentageOfTotal, "0.75")
	assertDecimal(t, "alpha rooms yoy", rows[0].YearOverYearChange, "0.5")
	assertDecimal(t, "alpha f&b share", rows[1].PercentageOfTotal, "0.25")

	rows = BuildExpensesByDepartment(expenseSnapshot(), ExpensesByDepartmentParams{Year: 2024, Property: sp("Nowhere")})
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected no rows for an unknown property, got %d", len(rows))
	}
}

func TestBuildExpensesByDepartment_PropertyFiltersPartitionTotals(t *testing.T) {
	snap := expenseSnapshot()
	totals := func(rows []*DepartmentExpenseRow) map[string]decimal.Decimal {
		m := map[string]decimal.Decimal{}
		for _, r := range rows {
			m[r.DepartmentName] = r.TotalExpenses
		}
		return m
	}

	all := totals(BuildExpensesByDepartment(snap, ExpensesByDepartmentParams{Year: 2024}))
	union := map[string]decimal.Decimal{}
	for _, p := range snap.Properties {
		for name, v := range totals(BuildExpensesByDepartment(snap, ExpensesByDepartmentParams{Year: 2024, Property: sp(p.Name)})) {
			union[name] = union[name].Add(v)
		}
	}

	if len(union) != len(all) {
		t.Fatalf("expected %d departments across property filters, got %d", len(all), len(union))
	}
	for name, want := range all {
		if got, ok := union[name]; !ok || !got.Equal(want) {
			t.Fatalf("%s: per-property totals sum to %s, unfiltered total is %s", name, got, want)
		}
	}
}

func TestMergeDepartmentExpenses_ZeroGrandTotal(t *testing.T) {
	lk := newLookup(baseSnapshot())
	rows := mergeDepartmentExpenses(lk,
		map[int]decimal.Decimal{deptRooms: dec("0")},
		map[int]decimal.Decimal{deptRooms: dec("50")},
	)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	assertDecimal(t, "share", rows[0].PercentageOfTotal, "0")
	assertDecimal(t, "yoy", rows[0].YearOverYearChange, "-1")
}
