package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/noliquid/backend/internal/api/handlers"
	"github.com/wonny/noliquid/backend/internal/dashboard"
	"github.com/wonny/noliquid/backend/internal/dataset"
	"github.com/wonny/noliquid/backend/internal/landing"
	"github.com/wonny/noliquid/backend/pkg/config"
	"github.com/wonny/noliquid/backend/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:      "0",
		Env:       "development",
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, ds *dataset.Dataset) http.Handler {
	t.Helper()

	log := logger.Nop()
	analyzer := dashboard.NewAnalyzer(ds, "test", nil, 0, log)

	renderer, err := landing.NewRenderer()
	require.NoError(t, err)

	return NewRouter(
		handlers.NewBacktestHandler(analyzer, log),
		handlers.NewPageHandler(renderer, analyzer, log),
		cfg,
		log,
	)
}

func defaultRouter(t *testing.T) http.Handler {
	t.Helper()

	ds, err := dataset.Default()
	require.NoError(t, err)
	return newTestRouter(t, testConfig(), ds)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	rec := get(t, defaultRouter(t), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestBacktestSummary(t *testing.T) {
	rec := get(t, defaultRouter(t), "/api/backtest/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.InDelta(t, 6646.5, body["total_pnl"], 1e-6)
	assert.InDelta(t, 66.6667, body["win_rate"], 1e-3)
	assert.InDelta(t, 5.44, body["profit_factor"], 1e-2)
	assert.InDelta(t, -19.5275, body["max_drawdown_pct"], 1e-3)
	assert.EqualValues(t, 12, body["total_months"])
}

func TestBacktestSummary_NullMetrics(t *testing.T) {
	ds := &dataset.Dataset{Months: []dataset.Month{{Month: "Jan", PnL: 10}, {Month: "Feb", PnL: 20}}}
	rec := get(t, newTestRouter(t, testConfig(), ds), "/api/backtest/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Contains(t, body, "profit_factor")
	assert.Nil(t, body["profit_factor"])
	assert.Nil(t, body["avg_loss"])
	assert.NotNil(t, body["sharpe_ratio"])
}

func TestBacktestEquity(t *testing.T) {
	rec := get(t, defaultRouter(t), "/api/backtest/equity")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.EqualValues(t, 12, body["count"])

	points := body["points"].([]interface{})
	first := points[0].(map[string]interface{})
	assert.Equal(t, "Jan 24", first["month"])
	assert.InDelta(t, 1245.8, first["cumulative"], 1e-9)
	assert.EqualValues(t, 0, first["drawdown_value"])
}

func TestBacktestReportAndRatings(t *testing.T) {
	router := defaultRouter(t)

	rec := get(t, router, "/api/backtest/report")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body["metrics"], 12)
	assert.Len(t, body["headline"], 4)

	rec = get(t, router, "/api/backtest/ratings")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	ratings := body["ratings"].([]interface{})
	require.Len(t, ratings, 3)
	assert.Equal(t, "Moderate", ratings[2].(map[string]interface{})["label"])
	assert.Equal(t, "volatile", body["words"].(map[string]interface{})["risk_adjusted"])
}

func TestBacktest_EmptyDataset(t *testing.T) {
	rec := get(t, newTestRouter(t, testConfig(), &dataset.Dataset{}), "/api/backtest/report")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["error"])
}

func TestFeatures(t *testing.T) {
	rec := get(t, defaultRouter(t), "/api/features")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Why NoLiquid", body["title"])
	assert.EqualValues(t, 6, body["count"])
}

func TestPages(t *testing.T) {
	router := defaultRouter(t)

	tests := []struct {
		name     string
		target   string
		selector string
	}{
		{"landing", "/", "#features .feature"},
		{"dashboard default tab", "/backtest", "#equity polyline"},
		{"dashboard stats tab", "/backtest?tab=stats", "#metrics .metric"},
		{"dashboard unknown tab", "/backtest?tab=nope", "#breakdown .month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

			doc, err := goquery.NewDocumentFromReader(rec.Body)
			require.NoError(t, err)
			assert.Greater(t, doc.Find(tt.selector).Length(), 0)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	defaultRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backtest/report", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}

	ds, err := dataset.Default()
	require.NoError(t, err)
	router := newTestRouter(t, cfg, ds)

	assert.Equal(t, http.StatusOK, get(t, router, "/health").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/health").Code)

	rec := get(t, router, "/health")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests", decode(t, rec)["error"])
}

func TestRecoveryMiddleware(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	r.Use(recoveryMiddleware(logger.Nop()))

	rec := get(t, r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["error"])
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	srv := New(cfg, logger.Nop(), defaultRouter(t))
	assert.Equal(t, ":0", srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
