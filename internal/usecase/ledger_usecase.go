package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/budgetledger/internal/domain"
)

// LedgerUseCase validates new entries and computes ledger reports.
// It keeps no state between calls: every operation reads the store afresh.
type LedgerUseCase struct {
	// mu serialises the load, append and save of AddEntry so concurrent
	// adds through one use case never overwrite each other.
	mu sync.Mutex

	store   EntryStore
	clock   Clock
	metrics MetricsRecorder
	logger  zerolog.Logger
}

// Option configures a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithClock overrides the clock used to timestamp entries.
func WithClock(clock Clock) Option {
	return func(uc *LedgerUseCase) {
		uc.clock = clock
	}
}

// WithMetrics sets the recorder for service events.
func WithMetrics(m MetricsRecorder) Option {
	return func(uc *LedgerUseCase) {
		uc.metrics = m
	}
}

// WithLogger sets the service logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(uc *LedgerUseCase) {
		uc.logger = logger
	}
}

// NewLedgerUseCase creates a new LedgerUseCase backed by store.
func NewLedgerUseCase(store EntryStore, opts ...Option) *LedgerUseCase {
	uc := &LedgerUseCase{
		store:   store,
		clock:   SystemClock{},
		metrics: noopMetrics{},
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// AddEntryInput represents raw user input for a new entry.
type AddEntryInput struct {
	Type     domain.EntryType
	Category string
	Amount   string
}

// AddEntry validates input, appends a new entry and persists the ledger.
// Nothing is written when validation fails.
func (uc *LedgerUseCase) AddEntry(ctx context.Context, input AddEntryInput) (*domain.Entry, error) {
	entry, err := uc.newEntry(input)
	if err != nil {
		uc.metrics.ValidationFailed(validationReason(err))
		uc.logger.Debug().Err(err).Str("category", input.Category).Msg("entry rejected")
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	entries, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	entries = append(entries, *entry)

	if err := uc.store.Save(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}

	uc.metrics.EntryAdded(entry.Type)
	uc.logger.Info().
		Str("type", string(entry.Type)).
		Str("category", entry.Category).
		Str("amount", entry.Amount.String()).
		Int("entries", len(entries)).
		Msg("entry added")

	return entry, nil
}

func (uc *LedgerUseCase) newEntry(input AddEntryInput) (*domain.Entry, error) {
	if err := domain.ValidateRequired(input.Category, input.Amount); err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	entryType, err := domain.ParseEntryType(string(input.Type))
	if err != nil {
		return nil, err
	}

	return &domain.Entry{
		Date:     uc.clock.Now().Truncate(time.Second),
		Category: domain.NormalizeCategory(input.Category),
		Amount:   amount,
		Type:     entryType,
	}, nil
}

// Summarize returns total income, total expenses and the balance.
func (uc *LedgerUseCase) Summarize(ctx context.Context) (domain.Summary, error) {
	entries, err := uc.store.Load(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	return domain.Summarize(entries), nil
}

// ExpensesByCategory returns expense totals per category in first-seen order.
// It returns domain.ErrNoExpenses when no expense has been recorded.
func (uc *LedgerUseCase) ExpensesByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	entries, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return domain.ExpensesByCategory(entries)
}

func validationReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidEntryType):
		return "invalid_type"
	default:
		return "other"
	}
}

type noopMetrics struct{}

func (noopMetrics) EntryAdded(domain.EntryType) {}
func (noopMetrics) ValidationFailed(string)     {}
