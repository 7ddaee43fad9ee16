// Package report renders ledger results as the text shown to the user.
package report

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/iho/budgetledger/internal/domain"
)

// User-facing messages.
const (
	MsgEntryAdded    = "Entry added successfully!"
	MsgMissingField  = "Category and Amount are required!"
	MsgInvalidAmount = "Invalid amount. Please enter a number."
	MsgInvalidType   = "Type must be income or expense."
	MsgNoExpenses    = "No expenses recorded yet."
)

// Money formats an amount as dollars rounded to two decimals, e.g. $-12.30.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Summary renders the budget summary block.
func Summary(s domain.Summary) string {
	return fmt.Sprintf("Total Income: %s\nTotal Expenses: %s\nBalance: %s",
		Money(s.TotalIncome),
		Money(s.TotalExpenses),
		Money(s.Balance),
	)
}

// ExpensesByCategory renders one line per category.
func ExpensesByCategory(totals []domain.CategoryTotal) string {
	if len(totals) == 0 {
		return MsgNoExpenses
	}

	lines := make([]string, len(totals))
	for i, t := range totals {
		lines[i] = fmt.Sprintf("%s: %s", Capitalize(t.Category), Money(t.Total))
	}

	return strings.Join(lines, "\n")
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Message maps an error from the ledger service to text for the user.
// Errors that are not user mistakes are returned verbatim.
func Message(err error) string {
	switch {
	case err == nil:
		return MsgEntryAdded
	case errors.Is(err, domain.ErrMissingField):
		return MsgMissingField
	case errors.Is(err, domain.ErrInvalidAmount):
		return MsgInvalidAmount
	case errors.Is(err, domain.ErrInvalidEntryType):
		return MsgInvalidType
	case errors.Is(err, domain.ErrNoExpenses):
		return MsgNoExpenses
	default:
		return err.Error()
	}
}
