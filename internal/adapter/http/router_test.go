package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/iho/budgetledger/internal/adapter/http/dto"
	"github.com/iho/budgetledger/internal/adapter/http/handler"
	apimiddleware "github.com/iho/budgetledger/internal/adapter/http/middleware"
	"github.com/iho/budgetledger/internal/adapter/repository/csvstore"
	"github.com/iho/budgetledger/internal/infrastructure/metrics"
	"github.com/iho/budgetledger/internal/usecase"
)

func newRouterConfig(t *testing.T, overrides ...func(*RouterConfig)) RouterConfig {
	t.Helper()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	store := csvstore.New(filepath.Join(t.TempDir(), "budget_data.csv"), csvstore.WithObserver(m))
	ledger := usecase.NewLedgerUseCase(store, usecase.WithMetrics(m))

	cfg := RouterConfig{
		EntryHandler:  handler.NewEntryHandler(ledger),
		ReportHandler: handler.NewReportHandler(ledger),
		HealthHandler: handler.NewHealthHandler(store),
		Logger:        zerolog.Nop(),
		Metrics:       m,
		Gatherer:      registry,
	}

	for _, o := range overrides {
		o(&cfg)
	}

	return cfg
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(context.Background())
	req.RemoteAddr = "127.0.0.1:40000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	if rec := do(t, router, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}

	if rec := do(t, router, http.MethodGet, "/ready", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected /ready to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_LedgerFlow(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	if rec := do(t, router, http.MethodGet, "/api/v1/expenses/categories", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 before any expense, got %d", rec.Code)
	}

	for _, body := range []string{
		`{"type":"income","category":"salary","amount":"1000"}`,
		`{"type":"expense","category":"food","amount":"50"}`,
		`{"type":"expense","category":"rent","amount":200}`,
		`{"type":"expense","category":"food","amount":"30"}`,
	} {
		if rec := do(t, router, http.MethodPost, "/api/v1/entries", body); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 for %s, got %d: %s", body, rec.Code, rec.Body.String())
		}
	}

	if rec := do(t, router, http.MethodPost, "/api/v1/entries", `{"type":"expense","category":"food","amount":"abc"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid amount, got %d", rec.Code)
	}

	rec := do(t, router, http.MethodGet, "/api/v1/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from summary, got %d", rec.Code)
	}

	var summary dto.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}
	if summary.Text != "Total Income: $1000.00\nTotal Expenses: $280.00\nBalance: $720.00" {
		t.Fatalf("unexpected summary %q", summary.Text)
	}

	rec = do(t, router, http.MethodGet, "/api/v1/expenses/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from categories, got %d", rec.Code)
	}

	var categories dto.ExpensesByCategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("failed to decode categories: %v", err)
	}
	if categories.Text != "Food: $80.00\nRent: $200.00" {
		t.Fatalf("unexpected categories %q", categories.Text)
	}

	if rec := do(t, router, http.MethodGet, "/api/v1/expenses/categories/chart.png", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected chart, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	do(t, router, http.MethodPost, "/api/v1/entries", `{"type":"income","category":"salary","amount":"10"}`)

	rec := do(t, router, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`budget_entries_added_total{type="income"} 1`,
		`budget_store_operations_total{operation="save",status="ok"} 1`,
		`budget_http_requests_total{method="POST",path="/api/v1/entries",status="201"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected metrics output to contain %q", want)
		}
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	if rec := do(t, router, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec.Code)
	}

	if rec := do(t, router, http.MethodGet, "/health", ""); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec.Code)
	}
}

func TestNewRouter_ConcurrentAddsAreAllPersisted(t *testing.T) {
	store := csvstore.New(filepath.Join(t.TempDir(), "budget_data.csv"))
	ledger := usecase.NewLedgerUseCase(store)

	router := NewRouter(RouterConfig{
		EntryHandler:  handler.NewEntryHandler(ledger),
		ReportHandler: handler.NewReportHandler(ledger),
		HealthHandler: handler.NewHealthHandler(store),
		Logger:        zerolog.Nop(),
	})

	const requests = 50

	var wg sync.WaitGroup
	codes := make(chan int, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"type":"expense","category":"cat-%d","amount":"1"}`, i)
			codes <- do(t, router, http.MethodPost, "/api/v1/entries", body).Code
		}(i)
	}

	wg.Wait()
	close(codes)

	for code := range codes {
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", code)
		}
	}

	entries, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != requests {
		t.Fatalf("expected %d persisted entries, got %d", requests, len(entries))
	}
}
