package report

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/iho/budgetledger/internal/domain"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.00", Money(decimal.Zero))
	assert.Equal(t, "$849.50", Money(decimal.RequireFromString("849.5")))
	assert.Equal(t, "$0.01", Money(decimal.RequireFromString("0.005")))
	assert.Equal(t, "$-12.30", Money(decimal.RequireFromString("-12.3")))
}

func TestSummary(t *testing.T) {
	s := domain.Summary{
		TotalIncome:   decimal.NewFromInt(1000),
		TotalExpenses: decimal.RequireFromString("150.5"),
		Balance:       decimal.RequireFromString("849.5"),
	}

	want := "Total Income: $1000.00\nTotal Expenses: $150.50\nBalance: $849.50"
	assert.Equal(t, want, Summary(s))
}

func TestExpensesByCategory(t *testing.T) {
	totals := []domain.CategoryTotal{
		{Category: "food", Total: decimal.NewFromInt(80)},
		{Category: "RENT", Total: decimal.NewFromInt(200)},
	}

	assert.Equal(t, "Food: $80.00\nRent: $200.00", ExpensesByCategory(totals))
	assert.Equal(t, MsgNoExpenses, ExpensesByCategory(nil))
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"food":       "Food",
		"eating OUT": "Eating out",
		"élan":       "Élan",
		" padded":    " padded",
	}

	for in, want := range tests {
		assert.Equal(t, want, Capitalize(in), "Capitalize(%q)", in)
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, MsgEntryAdded, Message(nil))
	assert.Equal(t, MsgMissingField, Message(&domain.ValidationError{Field: "category", Err: domain.ErrMissingField}))
	assert.Equal(t, MsgInvalidAmount, Message(fmt.Errorf("wrapped: %w", &domain.ValidationError{Field: "amount", Err: domain.ErrInvalidAmount})))
	assert.Equal(t, MsgInvalidType, Message(&domain.ValidationError{Field: "type", Err: domain.ErrInvalidEntryType}))
	assert.Equal(t, MsgNoExpenses, Message(domain.ErrNoExpenses))
	assert.Equal(t, "disk full", Message(errors.New("disk full")))
}
