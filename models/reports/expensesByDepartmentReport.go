package reports

import (
	"context"
	"sort"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
)

type ExpensesByDepartmentParams struct {
	Year     int     `json:"year" form:"year" validate:"required,min=2,max=9999"`
	Property *string `json:"property" form:"property" validate:"omitempty,min=1"`
}

type DepartmentExpenseRow struct {
	DepartmentId       int             `json:"department_id"`
	DepartmentName     string          `json:"department_name"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	PercentageOfTotal  decimal.Decimal `json:"percentage_of_total"`
	YearOverYearChange decimal.Decimal `json:"year_over_year_change"`
}

// ExpensesByDepartment compares each department's expenses with the prior year.
// A department with no prior-year expense reports a change of 0.
func (e *Engine) ExpensesByDepartment(ctx context.Context, params ExpensesByDepartmentParams) ([]*DepartmentExpenseRow, error) {
	return runReport(ctx, e, "expenses_by_department", params,
		func(p ExpensesByDepartmentParams) []int { return []int{p.Year - 1, p.Year} },
		BuildExpensesByDepartment,
	)
}

// departmentExpenses is one aggregation pass: Expense totals keyed by
// department id for year. Every department seen on a year row that passes
// the property filter gets an entry, even when its expense total is 0.
func departmentExpenses(lk *lookup, facts []models.FinancialFact, year int, property *string) map[int]decimal.Decimal {
	totals := make(map[int]decimal.Decimal)
	for i := range facts {
		f := &facts[i]
		d, ok := resolve(lk.departments, f.DepartmentId)
		if !ok {
			continue
		}
		if _, ok := lk.timeInYear(f.TimeId, year); !ok {
			continue
		}
		if !lk.propertyNamed(f.PropertyId, property) {
			continue
		}
		total := totals[d.ID]
		if lk.accountType(f.AccountId).IsExpense() {
			total = total.Add(f.Amount)
		}
		totals[d.ID] = total
	}
	return totals
}

func BuildExpensesByDepartment(snap *models.Snapshot, params ExpensesByDepartmentParams) []*DepartmentExpenseRow {
	lk := newLookup(snap)

	current := departmentExpenses(lk, snap.FinancialFacts, params.Year, params.Property)
	prior := departmentExpenses(lk, snap.FinancialFacts, params.Year-1, params.Property)
	return mergeDepartmentExpenses(lk, current, prior)
}

func mergeDepartmentExpenses(lk *lookup, current, prior map[int]decimal.Decimal) []*DepartmentExpenseRow {
	grandTotal := decimal.Zero
	for _, v := range current {
		grandTotal = grandTotal.Add(v)
	}

	rows := make([]*DepartmentExpenseRow, 0, len(current))
	for id, expense := range current {
		before := prior[id]
		rows = append(rows, &DepartmentExpenseRow{
			DepartmentId:       id,
			DepartmentName:     lk.departments[id].Name,
			TotalExpenses:      expense,
			PercentageOfTotal:  SafeRatio(expense, grandTotal),
			YearOverYearChange: SafeRatio(expense.Sub(before), before),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].TotalExpenses.Cmp(rows[j].TotalExpenses); c != 0 {
			return c > 0
		}
		if rows[i].DepartmentName != rows[j].DepartmentName {
			return rows[i].DepartmentName < rows[j].DepartmentName
		}
		return rows[i].DepartmentId < rows[j].DepartmentId
	})
	return rows
}
