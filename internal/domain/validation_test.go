package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		category  string
		amount    string
		wantField string
	}{
		{name: "empty category", category: "", amount: "10", wantField: "category"},
		{name: "empty amount", category: "food", amount: "", wantField: "amount"},
		{name: "both empty reports category first", category: "", amount: "", wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.category, tt.amount)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != tt.wantField {
				t.Fatalf("expected field %q, got %q", tt.wantField, ve.Field)
			}
		})
	}

	t.Run("whitespace counts as present", func(t *testing.T) {
		if err := ValidateRequired(" ", " "); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		"10":      "10",
		"150.50":  "150.5",
		" 42.1 ":  "42.1",
		"-5":      "-5",
		"0":       "0",
		"1e3":     "1000",
		"1000.0":  "1000",
		"0.00001": "0.00001",

		"999999999999999": "999999999999999",
		"0.000000000001":  "0.000000000001",
		"1.5e14":          "150000000000000",
	}

	for input, want := range valid {
		got, err := ParseAmount(input)
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", input, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ParseAmount(%q) = %s, want %s", input, got, want)
		}
	}

	for _, input := range []string{
		"abc", "12,50", "1.2.3", "  ", "NaN", "$10",
		"1e50000000", "1e-50000000", "1e15", "1000000000000000", "0.0000000000001",
	} {
		if _, err := ParseAmount(input); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q) expected ErrInvalidAmount, got %v", input, err)
		}
	}
}

func TestParseEntryType(t *testing.T) {
	t.Parallel()

	if got, err := ParseEntryType("income"); err != nil || got != EntryTypeIncome {
		t.Fatalf("expected income, got %q (%v)", got, err)
	}

	if got, err := ParseEntryType("expense"); err != nil || got != EntryTypeExpense {
		t.Fatalf("expected expense, got %q (%v)", got, err)
	}

	for _, input := range []string{"", "Income", "transfer"} {
		if _, err := ParseEntryType(input); !errors.Is(err, ErrInvalidEntryType) {
			t.Fatalf("ParseEntryType(%q) expected ErrInvalidEntryType, got %v", input, err)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "amount", Err: ErrInvalidAmount}
	if err.Error() != "invalid amount: amount" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	if !IsValidationError(err) {
		t.Fatalf("expected IsValidationError to be true")
	}

	if IsValidationError(ErrNoExpenses) {
		t.Fatalf("expected ErrNoExpenses not to be a validation error")
	}
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"food":       "food",
		"a\r\nb":     "a\nb",
		"a\rb":       "a\nb",
		"a\nb":       "a\nb",
		" Food \r\n": " Food \n",
		"":           "",
	}

	for input, want := range tests {
		if got := NormalizeCategory(input); got != want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", input, got, want)
		}
	}
}
