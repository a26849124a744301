package handlers

import (
	"errors"
	"net/http"

	"github.com/wonny/noliquid/backend/internal/dashboard"
	"github.com/wonny/noliquid/backend/internal/stats"
	"github.com/wonny/noliquid/backend/pkg/logger"
)

// BacktestHandler serves the backtest analysis as JSON
// ⭐ SSOT: 백테스트 API 핸들러는 이 구조체에서만
type BacktestHandler struct {
	analyzer *dashboard.Analyzer
	logger   *logger.Logger
}

// NewBacktestHandler creates a new backtest handler
func NewBacktestHandler(analyzer *dashboard.Analyzer, log *logger.Logger) *BacktestHandler {
	return &BacktestHandler{
		analyzer: analyzer,
		logger:   log,
	}
}

// report runs the analysis and writes the error response itself on failure
func (h *BacktestHandler) report(w http.ResponseWriter, r *http.Request) (*dashboard.Report, bool) {
	report, err := h.analyzer.Analyze(r.Context())
	if err != nil {
		if errors.Is(err, stats.ErrInsufficientData) {
			respondError(w, http.StatusUnprocessableEntity, "Dataset has no monthly records")
			return nil, false
		}
		h.logger.WithError(err).Error("Failed to analyze backtest")
		respondError(w, http.StatusInternalServerError, "Failed to analyze backtest")
		return nil, false
	}
	return report, true
}

// GetReport returns the full dashboard report
// GET /api/backtest/report
func (h *BacktestHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// GetEquity returns the equity curve
// GET /api/backtest/equity
func (h *BacktestHandler) GetEquity(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"points": report.EquityCurve,
		"count":  len(report.EquityCurve),
	})
}

// GetSummary returns the summary metrics. Undefined metrics are null.
// GET /api/backtest/summary
func (h *BacktestHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, report.Summary)
}

// GetRatings returns the performance ratings and insight wording
// GET /api/backtest/ratings
func (h *BacktestHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ratings":  report.Ratings,
		"insights": report.Insights,
		"words":    report.Words,
	})
}
