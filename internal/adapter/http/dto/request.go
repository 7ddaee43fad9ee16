package dto

import (
	"bytes"
	"encoding/json"

	"github.com/iho/budgetledger/internal/domain"
	"github.com/iho/budgetledger/internal/usecase"
)

// AmountText is the raw amount typed by the user. It accepts a JSON string
// or a JSON number and keeps the text as given so the ledger service does
// the validation.
type AmountText string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AmountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = AmountText(n.String())

	return nil
}

// AddEntryRequest represents a request to add a ledger entry.
type AddEntryRequest struct {
	Type     string     `json:"type"`
	Category string     `json:"category"`
	Amount   AmountText `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *AddEntryRequest) ToUseCaseInput() usecase.AddEntryInput {
	return usecase.AddEntryInput{
		Type:     domain.EntryType(r.Type),
		Category: r.Category,
		Amount:   string(r.Amount),
	}
}
