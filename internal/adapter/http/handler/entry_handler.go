package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/budgetledger/internal/adapter/http/dto"
	"github.com/iho/budgetledger/internal/adapter/report"
)

// EntryHandler handles entry-related HTTP requests.
type EntryHandler struct {
	ledger LedgerService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(ledger LedgerService) *EntryHandler {
	return &EntryHandler{ledger: ledger}
}

// Create adds a new income or expense entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledger.AddEntry(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, report.Message(err), err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.AddEntryResponse{
		Message: report.MsgEntryAdded,
		Entry:   dto.EntryFromDomain(entry),
	})
}
