package handlers

import (
	"net/http"

	"github.com/wonny/noliquid/backend/internal/dashboard"
	"github.com/wonny/noliquid/backend/internal/landing"
	"github.com/wonny/noliquid/backend/pkg/logger"
)

// PageHandler serves the HTML pages and the landing content
type PageHandler struct {
	renderer *landing.Renderer
	analyzer *dashboard.Analyzer
	logger   *logger.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(renderer *landing.Renderer, analyzer *dashboard.Analyzer, log *logger.Logger) *PageHandler {
	return &PageHandler{
		renderer: renderer,
		analyzer: analyzer,
		logger:   log,
	}
}

// Landing renders the landing page
// GET /
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Landing(w); err != nil {
		h.logger.WithError(err).Error("Failed to render landing page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Backtest renders the dashboard on the tab named by ?tab=
// GET /backtest
func (h *PageHandler) Backtest(w http.ResponseWriter, r *http.Request) {
	tab := landing.ParseTab(r.URL.Query().Get("tab"))

	report, err := h.analyzer.Analyze(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to analyze backtest")
		http.Error(w, "Failed to analyze backtest", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Dashboard(w, report, tab); err != nil {
		h.logger.WithError(err).WithField("tab", string(tab)).Error("Failed to render dashboard")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// GetFeatures returns the landing feature cards
// GET /api/features
func (h *PageHandler) GetFeatures(w http.ResponseWriter, r *http.Request) {
	features := landing.Features()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"title":    "Why NoLiquid",
		"features": features,
		"count":    len(features),
	})
}
