package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/budgetledger/internal/domain"
)

// ConsistencyReport describes what a full read of the ledger found.
type ConsistencyReport struct {
	Entries  int
	Income   int
	Expenses int
	// Rows whose type is neither income nor expense. They are kept on
	// rewrite but ignored by every report. Numbers are 1-based data rows.
	UnknownTypeRows []int
	// Rows with a zero or negative amount. Accepted, but usually a typo.
	NonPositiveRows []int
	CheckedAt       time.Time
}

// Consistent reports whether every row takes part in the reports.
func (r *ConsistencyReport) Consistent() bool {
	return len(r.UnknownTypeRows) == 0
}

// CheckConsistency reads the whole ledger and classifies its rows.
// A store that cannot be parsed is returned as an error.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (*ConsistencyReport, error) {
	entries, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	report := &ConsistencyReport{
		Entries:   len(entries),
		CheckedAt: uc.clock.Now(),
	}

	for i, e := range entries {
		row := i + 1

		switch e.Type {
		case domain.EntryTypeIncome:
			report.Income++
		case domain.EntryTypeExpense:
			report.Expenses++
		default:
			report.UnknownTypeRows = append(report.UnknownTypeRows, row)
		}

		if e.Amount.LessThanOrEqual(decimal.Zero) {
			report.NonPositiveRows = append(report.NonPositiveRows, row)
		}
	}

	if !report.Consistent() {
		uc.logger.Warn().Ints("rows", report.UnknownTypeRows).Msg("ledger has rows with unknown type")
	}

	return report, nil
}
