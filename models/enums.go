package models

type AccountType string

// Only Revenue and Expense are recognised by the reports; any other tag
// classifies an amount as neither.
const (
	AccountTypeRevenue AccountType = "Revenue"
	AccountTypeExpense AccountType = "Expense"
)

func (t AccountType) IsRevenue() bool { return t == AccountTypeRevenue }

func (t AccountType) IsExpense() bool { return t == AccountTypeExpense }
