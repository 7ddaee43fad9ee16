package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the persisted and displayed form of Entry.Date.
const DateLayout = "2006-01-02 15:04:05"

// EntryType distinguishes money coming in from money going out.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// ParseEntryType converts user input into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(s)
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Err: ErrInvalidEntryType}
	}
	return t, nil
}

// Entry represents a single ledger record.
// Entries carry no identifier; they are identified by position.
type Entry struct {
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Type     EntryType
}
