package dashboard

import (
	"fmt"
	"math"

	"github.com/wonny/noliquid/backend/internal/dataset"
	"github.com/wonny/noliquid/backend/internal/rating"
	"github.com/wonny/noliquid/backend/internal/stats"
)

// Report is the complete view-model of the backtest analysis dashboard.
// Renderers only lay it out; every number is already formatted here.
type Report struct {
	Dataset     DatasetInfo          `json:"dataset"`
	EquityCurve []stats.EquityPoint  `json:"equity_curve"`
	Summary     stats.SummaryMetrics `json:"summary"`

	// 차트 탭
	EquityHeader   Card        `json:"equity_header"`
	MonthlyHeader  Card        `json:"monthly_header"`
	DrawdownHeader Card        `json:"drawdown_header"`
	Months         []MonthCell `json:"months"`

	// 통계 탭
	Headline    []Card       `json:"headline"`
	Metrics     []Card       `json:"metrics"`
	WinLoss     []Card       `json:"win_loss"`
	Performance []Card       `json:"performance"`
	Insights    []Insight    `json:"insights"`
	Ratings     []RatingView `json:"ratings"`
	Words       rating.Words `json:"words"`
}

// DatasetInfo identifies the series a report was built from
type DatasetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Source      string `json:"source"`
	Hash        string `json:"hash"`
}

// Card is a labelled, formatted value with a presentation tone
type Card struct {
	Label   string      `json:"label"`
	Value   string      `json:"value"`
	Caption string      `json:"caption,omitempty"`
	Tone    rating.Tone `json:"tone"`
}

// MonthCell is one tile of the monthly breakdown grid
type MonthCell struct {
	Month   string      `json:"month"`
	PnL     float64     `json:"pnl"`
	Display string      `json:"display"`
	Tone    rating.Tone `json:"tone"`
}

// Insight is a short generated paragraph
type Insight struct {
	Title string      `json:"title"`
	Text  string      `json:"text"`
	Tone  rating.Tone `json:"tone"`
}

// RatingView is a rating with its rendered star symbol
type RatingView struct {
	rating.Rating
	Symbol string `json:"symbol"`
}

// BuildReport derives the full dashboard from ds.
// It fails only when the series cannot be analyzed.
func BuildReport(ds *dataset.Dataset, source string) (*Report, error) {
	analysis, err := stats.Compute(ds.Records())
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", source, err)
	}

	hash, err := ds.Hash()
	if err != nil {
		return nil, err
	}

	f := NewFormatter(ds.Currency())
	m := analysis.Summary

	report := &Report{
		Dataset: DatasetInfo{
			Name:        ds.Meta.Name,
			Description: ds.Meta.Description,
			Currency:    ds.Currency(),
			Source:      source,
			Hash:        hash,
		},
		EquityCurve: analysis.EquityCurve,
		Summary:     m,
		Words:       rating.Describe(m),
	}

	report.EquityHeader = Card{
		Label: "Total P&L",
		Value: f.SignedMoney(m.TotalPnL),
		Tone:  rating.SignTone(m.TotalPnL),
	}
	report.MonthlyHeader = Card{
		Label: fmt.Sprintf("%s Win Rate", f.Percent(m.WinRate, 1)),
		Value: fmt.Sprintf("%dW / %dL", m.WinningMonths, m.LosingMonths),
		Tone:  rating.ToneInfo,
	}
	report.DrawdownHeader = Card{
		Label: "Max DD",
		Value: f.Percent(m.MaxDrawdownPct, 2),
		Tone:  rating.ToneNegative,
	}

	report.Months = make([]MonthCell, len(analysis.EquityCurve))
	for i, p := range analysis.EquityCurve {
		report.Months[i] = MonthCell{
			Month:   p.Month,
			PnL:     p.PnL,
			Display: f.SignedWhole(p.PnL),
			Tone:    rating.SignTone(p.PnL),
		}
	}

	report.Headline = headlineCards(f, m)
	report.Metrics = metricCards(f, m)
	report.WinLoss = []Card{
		{Label: "Average Win", Value: f.MoneyMetric(m.AvgWin), Tone: rating.TonePositive},
		{Label: "Average Loss", Value: f.MoneyMetric(m.AvgLoss), Tone: rating.ToneNegative},
		{Label: "Win/Loss Ratio", Value: f.Ratio(m.WinLossRatio), Tone: rating.ToneInfo},
		{Label: "Sharpe Ratio", Value: f.Ratio(m.SharpeRatio), Tone: rating.ToneInfo},
	}
	report.Performance = []Card{
		{Label: "Best Month", Value: f.SignedMoney(m.LargestWin), Tone: rating.SignTone(m.LargestWin)},
		{Label: "Worst Month", Value: f.Money(m.LargestLoss), Tone: rating.SignTone(m.LargestLoss)},
		{Label: "Std Deviation", Value: f.Money(m.StdDev), Tone: rating.ToneNeutral},
		{Label: "Avg Return", Value: f.Money(m.AvgReturn), Tone: rating.ToneInfo},
	}
	report.Insights = insights(f, m, report.Words)

	for _, r := range rating.Rate(m) {
		report.Ratings = append(report.Ratings, RatingView{Rating: r, Symbol: r.Symbol()})
	}

	return report, nil
}

func headlineCards(f *Formatter, m stats.SummaryMetrics) []Card {
	status := "Negative"
	if m.TotalPnL >= 0 {
		status = "Profitable"
	}

	return []Card{
		{Label: "Total P&L", Value: f.Money(m.TotalPnL), Caption: status, Tone: rating.SignTone(m.TotalPnL)},
		{
			Label:   "Win Rate",
			Value:   f.Percent(m.WinRate, 1),
			Caption: fmt.Sprintf("%d/%d wins", m.WinningMonths, m.TotalMonths),
			Tone:    rating.ToneInfo,
		},
		{
			Label:   "Profit Factor",
			Value:   f.Ratio(m.ProfitFactor),
			Caption: profitFactorCaption(m.ProfitFactor),
			Tone:    rating.ProfitFactorTone(m.ProfitFactor),
		},
		{
			Label:   "Max Drawdown",
			Value:   f.Percent(m.MaxDrawdownPct, 2),
			Caption: f.MoneyWhole(m.MaxDrawdown),
			Tone:    rating.ToneNegative,
		},
	}
}

func profitFactorCaption(pf stats.Metric) string {
	switch {
	case !pf.Valid:
		return "No losing months"
	case pf.Value > 2:
		return "Excellent"
	case pf.Value > 1:
		return "Good"
	default:
		return "Fair"
	}
}

// metricCards is the "Detailed Metrics" grid
func metricCards(f *Formatter, m stats.SummaryMetrics) []Card {
	return []Card{
		{Label: "Total P&L", Value: f.Money(m.TotalPnL), Tone: rating.SignTone(m.TotalPnL)},
		{Label: "Win Rate", Value: f.Percent(m.WinRate, 1), Tone: rating.ToneInfo},
		{Label: "Profit Factor", Value: f.Ratio(m.ProfitFactor), Tone: rating.ProfitFactorTone(m.ProfitFactor)},
		{Label: "Avg Win", Value: f.MoneyMetric(m.AvgWin), Tone: rating.TonePositive},
		{Label: "Avg Loss", Value: f.MoneyMetric(m.AvgLoss), Tone: rating.ToneNegative},
		{Label: "Max Drawdown", Value: f.Money(m.MaxDrawdown), Tone: rating.ToneNegative},
		{Label: "Max DD %", Value: f.Percent(m.MaxDrawdownPct, 2), Tone: rating.ToneNegative},
		{Label: "Sharpe Ratio", Value: f.Ratio(m.SharpeRatio), Tone: rating.ToneInfo},
		{Label: "Largest Win", Value: f.Money(m.LargestWin), Tone: rating.TonePositive},
		{Label: "Largest Loss", Value: f.Money(m.LargestLoss), Tone: rating.ToneNegative},
		{Label: "Win Months", Value: fmt.Sprintf("%d/%d", m.WinningMonths, m.TotalMonths), Tone: rating.ToneInfo},
		{Label: "Std Dev", Value: f.Money(m.StdDev), Tone: rating.ToneNeutral},
	}
}

func insights(f *Formatter, m stats.SummaryMetrics, w rating.Words) []Insight {
	returns := fmt.Sprintf("Profit Factor of %s indicates %s returns.", f.Ratio(m.ProfitFactor), w.Returns)
	if !m.ProfitFactor.Valid {
		returns = "Profit Factor is not applicable: there are no losing months."
	}

	sharpe := fmt.Sprintf("Sharpe ratio %s indicates %s risk-adjusted returns.", f.Ratio(m.SharpeRatio), w.RiskAdjusted)
	if !m.SharpeRatio.Valid {
		sharpe = "Sharpe ratio is not applicable: monthly returns have no variance."
	}

	ratio := fmt.Sprintf("Win/Loss ratio of %s with avg win %s vs avg loss %s.",
		f.Ratio(m.WinLossRatio), f.moneyWholeMetric(m.AvgWin), f.moneyWholeMetric(m.AvgLoss))

	return []Insight{
		{
			Title: "Key Insight",
			Text: fmt.Sprintf("Win Rate %s shows %s consistency. %s",
				f.Percent(math.Round(m.WinRate), 0), w.Consistency, returns),
			Tone: rating.ToneInfo,
		},
		{
			Title: "Risk Profile",
			Text: fmt.Sprintf("Max drawdown of %s represents %s risk exposure. %s",
				f.Percent(m.MaxDrawdownPct, 1), w.RiskExposure, sharpe),
			Tone: rating.ToneWarning,
		},
		{
			Title: "Performance",
			Text: fmt.Sprintf("%s %s total P&L of %s.",
				ratio, w.Direction, f.MoneyWhole(m.TotalPnL)),
			Tone: rating.TonePositive,
		},
	}
}

func (f *Formatter) moneyWholeMetric(m stats.Metric) string {
	if !m.Valid {
		return NotApplicable
	}
	return f.MoneyWhole(m.Value)
}
