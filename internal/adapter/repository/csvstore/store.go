// Package csvstore persists the ledger as a flat CSV file.
//
// Every Save rewrites the whole file: rows go to a temporary file in the
// same directory which is then renamed over the target, so readers see
// either the previous ledger or the new one.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/budgetledger/internal/domain"
)

// maxStoredExponent bounds amounts read from disk. Rows written by other
// tools may carry more digits than the service accepts, but an exponent this
// large would expand into megabytes on the next save.
const maxStoredExponent = 64

// Header is the fixed column order of the store.
var Header = []string{"date", "category", "amount", "type"}

// Observer receives timing for store operations.
type Observer interface {
	ObserveStoreOperation(op, status string, duration time.Duration)
}

// Store implements usecase.EntryStore on a CSV file.
type Store struct {
	path     string
	retrier  *Retrier
	observer Observer
	logger   zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithObserver sets the operation observer.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// WithRetry configures save retries on transient errors.
func WithRetry(maxRetries int, initialInterval time.Duration) Option {
	return func(s *Store) {
		s.retrier.maxRetries = maxRetries
		if initialInterval > 0 {
			s.retrier.initialInterval = initialInterval
		}
	}
}

// New creates a Store for the file at path. The file need not exist.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: zerolog.Nop(),
	}
	s.retrier = NewRetrier(s.logger)

	for _, opt := range opts {
		opt(s)
	}
	s.retrier.logger = s.logger

	return s
}

// Load reads every entry from the file. A missing or empty file is an
// empty ledger.
func (s *Store) Load(ctx context.Context) (entries []domain.Entry, err error) {
	defer s.observe("load", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open ledger store: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

// Save replaces the file contents with entries.
func (s *Store) Save(ctx context.Context, entries []domain.Entry) (err error) {
	defer s.observe("save", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return err
	}

	err = s.retrier.Retry(ctx, func() error {
		return s.writeAtomic(entries)
	})
	if err != nil {
		return fmt.Errorf("failed to save ledger store: %w", err)
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("entries", len(entries)).
		Msg("ledger saved")

	return nil
}

func (s *Store) writeAtomic(entries []domain.Entry) (err error) {
	dir, base := filepath.Split(s.path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, ulid.Make()))

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err = writeEntries(f, entries); err != nil {
		return err
	}

	if err = f.Sync(); err != nil {
		return err
	}

	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *Store) observe(op string, start time.Time, err *error) {
	if s.observer == nil {
		return
	}

	status := "ok"
	if *err != nil {
		status = "error"
	}

	s.observer.ObserveStoreOperation(op, status, time.Since(start))
}

func writeEntries(w io.Writer, entries []domain.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, e := range entries {
		record := []string{
			e.Date.Format(domain.DateLayout),
			e.Category,
			e.Amount.String(),
			string(e.Type),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func readEntries(r io.Reader) ([]domain.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", domain.ErrCorruptStore, err)
	}

	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: unexpected header %q", domain.ErrCorruptStore, header)
	}

	var entries []domain.Entry

	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrCorruptStore, row, err)
		}

		entry, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrCorruptStore, row, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func parseRecord(record []string) (domain.Entry, error) {
	date, err := time.ParseInLocation(domain.DateLayout, record[0], time.Local)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("invalid date %q", record[0])
	}

	amount, err := decimal.NewFromString(record[2])
	if err != nil {
		return domain.Entry{}, fmt.Errorf("invalid amount %q", record[2])
	}
	if exp := amount.Exponent(); exp > maxStoredExponent || exp < -maxStoredExponent {
		return domain.Entry{}, fmt.Errorf("amount %q out of range", truncate(record[2], 32))
	}

	return domain.Entry{
		Date:     date,
		Category: record[1],
		Amount:   amount,
		Type:     domain.EntryType(record[3]),
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
