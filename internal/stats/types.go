package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// MonthlyRecord is one period of the input series.
// Slice order is chronology.
type MonthlyRecord struct {
	Month string  `json:"month"`
	PnL   float64 `json:"pnl"`
}

// EquityPoint is the derived state of the equity curve after one period
type EquityPoint struct {
	Month         string  `json:"month"`
	PnL           float64 `json:"pnl"`
	Cumulative    float64 `json:"cumulative"`
	Peak          float64 `json:"peak"`
	DrawdownValue float64 `json:"drawdown_value"` // always <= 0
	DrawdownPct   float64 `json:"drawdown_pct"`   // percent of peak, <= 0
}

// Metric is a value that may be undefined because its denominator is zero.
// An invalid Metric serializes as JSON null and prints as "N/A".
type Metric struct {
	Value float64
	Valid bool
}

// Defined returns a valid Metric holding v
func Defined(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// NotApplicable returns an invalid Metric
func NotApplicable() Metric {
	return Metric{}
}

// ratio returns num/den, or NotApplicable when den is zero or the result is not finite
func ratio(num, den float64) Metric {
	if den == 0 {
		return NotApplicable()
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotApplicable()
	}
	return Defined(v)
}

// Or returns the value, or fallback when the metric is not applicable
func (m Metric) Or(fallback float64) float64 {
	if !m.Valid {
		return fallback
	}
	return m.Value
}

// String formats the metric with two decimals
func (m Metric) String() string {
	if !m.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(m.Value, 'f', 2, 64)
}

// MarshalJSON implements json.Marshaler
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = NotApplicable()
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Defined(v)
	return nil
}

// SummaryMetrics aggregates the whole series
type SummaryMetrics struct {
	TotalPnL  float64 `json:"total_pnl"`
	AvgReturn float64 `json:"avg_return"`
	StdDev    float64 `json:"std_dev"` // population standard deviation

	// 승률 / 손익
	WinRate      float64 `json:"win_rate"` // percent, [0, 100]
	AvgWin       Metric  `json:"avg_win"`
	AvgLoss      Metric  `json:"avg_loss"` // absolute value
	WinLossRatio Metric  `json:"win_loss_ratio"`
	ProfitFactor Metric  `json:"profit_factor"`
	SharpeRatio  Metric  `json:"sharpe_ratio"` // no risk-free rate, not annualized

	// 리스크
	MaxDrawdown    float64 `json:"max_drawdown"`     // most negative drawdown value
	MaxDrawdownPct float64 `json:"max_drawdown_pct"` // most negative drawdown percent

	LargestWin  float64 `json:"largest_win"`
	LargestLoss float64 `json:"largest_loss"`

	WinningMonths int `json:"winning_months"`
	LosingMonths  int `json:"losing_months"`
	FlatMonths    int `json:"flat_months"`
	TotalMonths   int `json:"total_months"`
}

// Analysis bundles both derived structures of one series
type Analysis struct {
	EquityCurve []EquityPoint  `json:"equity_curve"`
	Summary     SummaryMetrics `json:"summary"`
}
