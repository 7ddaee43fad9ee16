package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/budgetledger/internal/adapter/report"
	"github.com/iho/budgetledger/internal/domain"
)

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		Date:     e.Date.Format(domain.DateLayout),
		Category: e.Category,
		Amount:   e.Amount,
		Type:     string(e.Type),
	}
}

// AddEntryResponse confirms a new entry.
type AddEntryResponse struct {
	Message string         `json:"message"`
	Entry   *EntryResponse `json:"entry"`
}

// SummaryResponse represents the budget summary. Amounts keep full
// precision; Text is the rounded rendering.
type SummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
	Text          string          `json:"text"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s domain.Summary) *SummaryResponse {
	return &SummaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		Balance:       s.Balance,
		Text:          report.Summary(s),
	}
}

// CategoryTotalResponse represents one category line.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpensesByCategoryResponse lists categories in first-seen order.
type ExpensesByCategoryResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
	Text       string                  `json:"text"`
}

// ExpensesByCategoryFromDomain converts category totals to a response.
func ExpensesByCategoryFromDomain(totals []domain.CategoryTotal) *ExpensesByCategoryResponse {
	result := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		result[i] = CategoryTotalResponse{Category: t.Category, Total: t.Total}
	}

	return &ExpensesByCategoryResponse{
		Categories: result,
		Text:       report.ExpensesByCategory(totals),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
