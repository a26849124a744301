package rating

import (
	"math"

	"github.com/wonny/noliquid/backend/internal/stats"
)

// SignTone is positive for values >= 0 and negative otherwise
func SignTone(v float64) Tone {
	if v >= 0 {
		return TonePositive
	}
	return ToneNegative
}

// ProfitFactorTone is positive above 1.0, negative at or below it and
// neutral when the profit factor is not applicable
func ProfitFactorTone(m stats.Metric) Tone {
	if !m.Valid {
		return ToneNeutral
	}
	if m.Value > 1 {
		return TonePositive
	}
	return ToneNegative
}

// Words are the qualitative terms used by the insight paragraphs
type Words struct {
	Consistency  string `json:"consistency"`
	Returns      string `json:"returns"`
	RiskExposure string `json:"risk_exposure"`
	RiskAdjusted string `json:"risk_adjusted"`
	Direction    string `json:"direction"` // "Positive" or "Negative" total P&L
}

// Describe picks the insight wording for m
func Describe(m stats.SummaryMetrics) Words {
	direction := "Negative"
	if m.TotalPnL > 0 {
		direction = "Positive"
	}

	return Words{
		Consistency:  WinRateTable.Lookup(m.WinRate).Word,
		Returns:      ProfitFactorTable.LookupMetric(m.ProfitFactor).Word,
		RiskExposure: RiskControlTable.Lookup(math.Abs(m.MaxDrawdownPct)).Word,
		RiskAdjusted: SharpeTable.LookupMetric(m.SharpeRatio).Word,
		Direction:    direction,
	}
}
