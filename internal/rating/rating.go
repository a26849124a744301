package rating

import (
	"math"
	"strings"

	"github.com/wonny/noliquid/backend/internal/stats"
)

// Tone is the presentation hint for a value. Renderers map it to colors.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneWarning  Tone = "warning"
	ToneCaution  Tone = "caution"
	ToneInfo     Tone = "info"
	ToneNeutral  Tone = "neutral"
)

// Band is one row of a lookup table
type Band struct {
	Bound float64
	Stars int
	Label string
	Word  string // lowercase wording used inside insight sentences
	Tone  Tone
}

// Table maps a numeric range to a Band. Bands are checked in order and the
// Fallback applies when no band matches.
type Table struct {
	Name     string
	Above    bool // true: value > Bound matches; false: value < Bound matches
	Bands    []Band
	Fallback Band
}

// Lookup returns the band for v
func (t Table) Lookup(v float64) Band {
	for _, b := range t.Bands {
		if t.Above && v > b.Bound {
			return b
		}
		if !t.Above && v < b.Bound {
			return b
		}
	}
	return t.Fallback
}

// ⭐ SSOT: 등급 임계값은 여기서만 정의
var (
	// WinRateTable rates the percentage of winning months
	WinRateTable = Table{
		Name:  "Win Rate",
		Above: true,
		Bands: []Band{
			{Bound: 70, Stars: 3, Label: "Excellent", Word: "excellent", Tone: TonePositive},
			{Bound: 60, Stars: 2, Label: "Good", Word: "good", Tone: ToneWarning},
		},
		Fallback: Band{Stars: 1, Label: "Fair", Word: "fair", Tone: ToneNegative},
	}

	// ProfitFactorTable rates gross wins over gross losses
	ProfitFactorTable = Table{
		Name:  "Profit Factor",
		Above: true,
		Bands: []Band{
			{Bound: 2, Stars: 3, Label: "Excellent", Word: "exceptional", Tone: TonePositive},
			{Bound: 1.5, Stars: 2, Label: "Good", Word: "strong", Tone: ToneWarning},
			{Bound: 1, Stars: 1, Label: "Fair", Word: "positive", Tone: ToneCaution},
		},
		Fallback: Band{Stars: 0, Label: "Poor", Word: "challenging", Tone: ToneNegative},
	}

	// RiskControlTable rates the magnitude of the worst drawdown percent
	RiskControlTable = Table{
		Name:  "Risk Control",
		Above: false,
		Bands: []Band{
			{Bound: 15, Stars: 3, Label: "Low Risk", Word: "low", Tone: TonePositive},
			{Bound: 25, Stars: 2, Label: "Moderate", Word: "moderate", Tone: ToneWarning},
		},
		Fallback: Band{Stars: 1, Label: "High Risk", Word: "high", Tone: ToneNegative},
	}

	// SharpeTable words the risk-adjusted return
	SharpeTable = Table{
		Name:  "Sharpe Ratio",
		Above: true,
		Bands: []Band{
			{Bound: 1, Stars: 1, Label: "Favorable", Word: "favorable", Tone: TonePositive},
		},
		Fallback: Band{Stars: 0, Label: "Volatile", Word: "volatile", Tone: ToneNeutral},
	}
)

// notApplicable is the band used for metrics that are undefined
var notApplicable = Band{Stars: 0, Label: "N/A", Word: "not applicable", Tone: ToneNeutral}

// LookupMetric rates a metric that may be undefined
func (t Table) LookupMetric(m stats.Metric) Band {
	if !m.Valid {
		return notApplicable
	}
	return t.Lookup(m.Value)
}

// Rating is one cell of the performance rating row
type Rating struct {
	Category string `json:"category"`
	Stars    int    `json:"stars"`
	Label    string `json:"label"`
	Tone     Tone   `json:"tone"`
}

// Symbol renders the stars, or a cross for a zero-star rating
func (r Rating) Symbol() string {
	if r.Label == notApplicable.Label {
		return "–"
	}
	if r.Stars == 0 {
		return "✗"
	}
	return strings.Repeat("★", r.Stars)
}

func rate(t Table, b Band) Rating {
	return Rating{Category: t.Name, Stars: b.Stars, Label: b.Label, Tone: b.Tone}
}

// Rate returns the win rate, profit factor and risk control ratings
func Rate(m stats.SummaryMetrics) []Rating {
	return []Rating{
		rate(WinRateTable, WinRateTable.Lookup(m.WinRate)),
		rate(ProfitFactorTable, ProfitFactorTable.LookupMetric(m.ProfitFactor)),
		rate(RiskControlTable, RiskControlTable.Lookup(math.Abs(m.MaxDrawdownPct))),
	}
}
