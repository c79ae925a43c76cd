package reports

import (
	"context"
	"sort"
	"time"

	"github.com/mmdatafocus/hotel_analytics/models"
	"github.com/shopspring/decimal"
)

type BudgetVsActualParams struct {
	Year     int     `json:"year" form:"year" validate:"required,min=1,max=9999"`
	Property *string `json:"property" form:"property" validate:"omitempty,min=1"`
}

type BudgetVsActualRow struct {
	Year                      int             `json:"year"`
	Month                     int             `json:"month"`
	MonthName                 string          `json:"month_name"`
	ActualRevenue             decimal.Decimal `json:"actual_revenue"`
	BudgetRevenue             decimal.Decimal `json:"budget_revenue"`
	RevenueVariance           decimal.Decimal `json:"revenue_variance"`
	RevenueVariancePercentage decimal.Decimal `json:"revenue_variance_percentage"`
	ActualExpense             decimal.Decimal `json:"actual_expense"`
	BudgetExpense             decimal.Decimal `json:"budget_expense"`
	ExpenseVariance           decimal.Decimal `json:"expense_variance"`
	ExpenseVariancePercentage decimal.Decimal `json:"expense_variance_percentage"`
}

// BudgetVsActual compares actual (is_budget=false) against budget
// (is_budget=true) amounts per month. Only months that have Time rows in
// the year are reported; they are not zero-filled.
func (e *Engine) BudgetVsActual(ctx context.Context, params BudgetVsActualParams) ([]*BudgetVsActualRow, error) {
	return runReport(ctx, e, "budget_vs_actual", params,
		func(p BudgetVsActualParams) []int { return singleYear(p.Year) },
		BuildBudgetVsActual,
	)
}

type monthBudget struct {
	actualRevenue decimal.Decimal
	budgetRevenue decimal.Decimal
	actualExpense decimal.Decimal
	budgetExpense decimal.Decimal
}

func BuildBudgetVsActual(snap *models.Snapshot, params BudgetVsActualParams) []*BudgetVsActualRow {
	lk := newLookup(snap)
	year := params.Year

	months := make(map[int]*monthBudget)
	for i := range snap.Times {
		if t := &snap.Times[i]; t.Year == year {
			if _, ok := months[t.Month]; !ok {
				months[t.Month] = &monthBudget{}
			}
		}
	}

	for i := range snap.FinancialFacts {
		f := &snap.FinancialFacts[i]
		t, ok := lk.timeInYear(f.TimeId, year)
		if !ok {
			continue
		}
		if !lk.propertyNamed(f.PropertyId, params.Property) {
			continue
		}
		mb := months[t.Month]
		accountType := lk.accountType(f.AccountId)
		switch {
		case accountType.IsRevenue() && f.IsBudget:
			mb.budgetRevenue = mb.budgetRevenue.Add(f.Amount)
		case accountType.IsRevenue():
			mb.actualRevenue = mb.actualRevenue.Add(f.Amount)
		case accountType.IsExpense() && f.IsBudget:
			mb.budgetExpense = mb.budgetExpense.Add(f.Amount)
		case accountType.IsExpense():
			mb.actualExpense = mb.actualExpense.Add(f.Amount)
		}
	}

	keys := make([]int, 0, len(months))
	for m := range months {
		keys = append(keys, m)
	}
	sort.Ints(keys)

	rows := make([]*BudgetVsActualRow, 0, len(keys))
	for _, month := range keys {
		mb := months[month]
		revenueVariance := mb.actualRevenue.Sub(mb.budgetRevenue)
		expenseVariance := mb.actualExpense.Sub(mb.budgetExpense)
		rows = append(rows, &BudgetVsActualRow{
			Year:                      year,
			Month:                     month,
			MonthName:                 time.Month(month).String(),
			ActualRevenue:             mb.actualRevenue,
			BudgetRevenue:             mb.budgetRevenue,
			RevenueVariance:           revenueVariance,
			RevenueVariancePercentage: SafeRatio(revenueVariance, mb.budgetRevenue),
			ActualExpense:             mb.actualExpense,
			BudgetExpense:             mb.budgetExpense,
			ExpenseVariance:           expenseVariance,
			ExpenseVariancePercentage: SafeRatio(expenseVariance, mb.budgetExpense),
		})
	}
	return rows
}
