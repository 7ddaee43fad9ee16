package domain

import "github.com/shopspring/decimal"

// Summary is the overall position of a ledger.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// CategoryTotal is the accumulated expense amount for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summarize folds entries into income, expense and balance totals.
// Entries with an unknown type are ignored.
func Summarize(entries []Entry) Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, e := range entries {
		switch e.Type {
		case EntryTypeIncome:
			income = income.Add(e.Amount)
		case EntryTypeExpense:
			expenses = expenses.Add(e.Amount)
		}
	}

	return Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}
}

// ExpensesByCategory sums expense amounts per category, in the order each
// category first appears. Categories are compared exactly.
// Returns ErrNoExpenses when there are no expense entries at all.
func ExpensesByCategory(entries []Entry) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	index := make(map[string]int)

	for _, e := range entries {
		if e.Type != EntryTypeExpense {
			continue
		}

		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}

	if len(totals) == 0 {
		return nil, ErrNoExpenses
	}

	return totals, nil
}
