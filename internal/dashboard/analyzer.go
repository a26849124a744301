package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/noliquid/backend/internal/dataset"
	"github.com/wonny/noliquid/backend/pkg/logger"
	"github.com/wonny/noliquid/backend/pkg/redis"
)

// Analyzer produces the dashboard report for one dataset
// ⭐ SSOT: 대시보드 리포트 생성은 여기서만
type Analyzer struct {
	dataset *dataset.Dataset
	source  string
	cache   *redis.Cache
	ttl     time.Duration
	logger  *logger.Logger
}

// NewAnalyzer creates a new analyzer. cache may be nil, in which case every
// call recomputes the report.
func NewAnalyzer(ds *dataset.Dataset, source string, cache *redis.Cache, ttl time.Duration, log *logger.Logger) *Analyzer {
	return &Analyzer{
		dataset: ds,
		source:  source,
		cache:   cache,
		ttl:     ttl,
		logger:  log,
	}
}

// Dataset returns the series the analyzer works on
func (a *Analyzer) Dataset() *dataset.Dataset {
	return a.dataset
}

// Source returns where the series was loaded from
func (a *Analyzer) Source() string {
	return a.source
}

// Analyze builds the report, memoized by dataset hash when a cache is set
func (a *Analyzer) Analyze(ctx context.Context) (*Report, error) {
	start := time.Now()

	report, err := a.analyze(ctx)
	if err != nil {
		a.logger.WithError(err).WithField("source", a.source).Error("Backtest analysis failed")
		return nil, err
	}

	m := report.Summary
	a.logger.WithFields(map[string]interface{}{
		"source":           a.source,
		"months":           m.TotalMonths,
		"total_pnl":        m.TotalPnL,
		"win_rate":         m.WinRate,
		"sharpe":           m.SharpeRatio.String(),
		"max_drawdown_pct": m.MaxDrawdownPct,
		"duration":         time.Since(start).String(),
	}).Debug("Backtest analysis completed")

	return report, nil
}

func (a *Analyzer) analyze(ctx context.Context) (*Report, error) {
	if a.cache == nil {
		return BuildReport(a.dataset, a.source)
	}

	hash, err := a.dataset.Hash()
	if err != nil {
		return nil, err
	}

	var report Report
	err = a.cache.GetOrSet(ctx, redis.ReportKey(hash), &report, a.ttl, func() (interface{}, error) {
		return BuildReport(a.dataset, a.source)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	// the key covers content only; a cached report may name another path
	report.Dataset.Source = a.source

	return &report, nil
}
