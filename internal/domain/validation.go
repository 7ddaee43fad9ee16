package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateRequired checks that category and amount text were supplied.
// Whitespace-only input counts as supplied; it fails later as an invalid amount.
func ValidateRequired(category, amount string) error {
	if category == "" {
		return &ValidationError{Field: "category", Err: ErrMissingField}
	}
	if amount == "" {
		return &ValidationError{Field: "amount", Err: ErrMissingField}
	}
	return nil
}

// Amount bounds. Anything outside them is almost certainly a typo, and a
// huge exponent would otherwise expand into megabytes of digits on save.
const (
	MaxAmountIntegerDigits  = 15
	MaxAmountFractionDigits = 12
)

// ParseAmount parses a decimal amount. Sign is not checked: zero and
// negative amounts are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !AmountInRange(amount) {
		return decimal.Zero, &ValidationError{Field: "amount", Err: ErrInvalidAmount}
	}
	return amount, nil
}

// AmountInRange reports whether d has at most MaxAmountIntegerDigits digits
// before the decimal point and MaxAmountFractionDigits after it.
// Only the exponent and coefficient length are inspected, so the check stays
// cheap for inputs like 1e50000000.
func AmountInRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -MaxAmountFractionDigits || exp > MaxAmountIntegerDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= MaxAmountIntegerDigits
}

// NormalizeCategory turns CRLF and lone CR line breaks into LF.
// The CSV reader folds CRLF inside quoted fields into LF, so a category
// carrying CR could not be read back as written.
func NormalizeCategory(category string) string {
	if !strings.ContainsRune(category, '\r') {
		return category
	}
	category = strings.ReplaceAll(category, "\r\n", "\n")
	return strings.ReplaceAll(category, "\r", "\n")
}
