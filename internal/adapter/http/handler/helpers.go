package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/budgetledger/internal/adapter/http/dto"
	"github.com/iho/budgetledger/internal/domain"
	"github.com/iho/budgetledger/internal/usecase"
)

// LedgerService is the ledger use case as seen by HTTP handlers.
type LedgerService interface {
	AddEntry(ctx context.Context, input usecase.AddEntryInput) (*domain.Entry, error)
	Summarize(ctx context.Context) (domain.Summary, error)
	ExpensesByCategory(ctx context.Context) ([]domain.CategoryTotal, error)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidEntryType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoExpenses):
		return http.StatusNoContent
	default:
		return http.StatusInternalServerError
	}
}
