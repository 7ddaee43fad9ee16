package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/iho/budgetledger/internal/adapter/chart"
	"github.com/iho/budgetledger/internal/adapter/http/dto"
	"github.com/iho/budgetledger/internal/domain"
)

// ReportHandler serves the ledger reports.
type ReportHandler struct {
	ledger LedgerService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ledger LedgerService) *ReportHandler {
	return &ReportHandler{ledger: ledger}
}

// Summary returns total income, total expenses and balance.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledger.Summarize(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to summarize ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(summary))
}

// ExpensesByCategory returns expense totals per category.
// Responds 204 when no expenses have been recorded.
func (h *ReportHandler) ExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ledger.ExpensesByCategory(r.Context())
	if errors.Is(err, domain.ErrNoExpenses) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to group expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpensesByCategoryFromDomain(totals))
}

// ExpensesChart renders expense totals as a PNG pie chart.
func (h *ReportHandler) ExpensesChart(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ledger.ExpensesByCategory(r.Context())
	if errors.Is(err, domain.ErrNoExpenses) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to group expenses", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := chart.ExpensesPie(&buf, totals); err != nil {
		if errors.Is(err, chart.ErrNothingToPlot) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to render chart", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
