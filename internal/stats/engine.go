package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientData is returned for an empty series
var ErrInsufficientData = errors.New("insufficient data: at least one monthly record is required")

// Compute derives the equity curve and the summary metrics of records
// ⭐ SSOT: 백테스트 통계 계산은 여기서만
func Compute(records []MonthlyRecord) (*Analysis, error) {
	curve, err := ComputeEquityCurve(records)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		EquityCurve: curve,
		Summary:     summarize(records, curve),
	}, nil
}

// ComputeEquityCurve walks records in order, tracking the running total and
// the running peak. The peak starts at 0 and includes the current period, so a
// period that sets a new high has a drawdown of 0.
func ComputeEquityCurve(records []MonthlyRecord) ([]EquityPoint, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("equity curve: %w", ErrInsufficientData)
	}

	curve := make([]EquityPoint, 0, len(records))

	var cumulative, peak float64
	for _, r := range records {
		cumulative += r.PnL
		if cumulative > peak {
			peak = cumulative
		}

		drawdown := cumulative - peak

		// peak is never negative; a zero peak is treated as 1
		base := math.Abs(peak)
		if base == 0 {
			base = 1
		}

		curve = append(curve, EquityPoint{
			Month:         r.Month,
			PnL:           r.PnL,
			Cumulative:    cumulative,
			Peak:          peak,
			DrawdownValue: drawdown,
			DrawdownPct:   drawdown / base * 100,
		})
	}

	return curve, nil
}

// ComputeSummaryMetrics derives the aggregate metrics of records
func ComputeSummaryMetrics(records []MonthlyRecord) (SummaryMetrics, error) {
	if len(records) == 0 {
		return SummaryMetrics{}, fmt.Errorf("summary metrics: %w", ErrInsufficientData)
	}

	curve, err := ComputeEquityCurve(records)
	if err != nil {
		return SummaryMetrics{}, err
	}
	return summarize(records, curve), nil
}

// summarize expects len(records) == len(curve) > 0
func summarize(records []MonthlyRecord, curve []EquityPoint) SummaryMetrics {
	m := SummaryMetrics{
		TotalMonths: len(records),
		LargestWin:  records[0].PnL,
		LargestLoss: records[0].PnL,
	}

	var sumWin, sumLoss float64
	for _, r := range records {
		m.TotalPnL += r.PnL

		switch {
		case r.PnL > 0:
			m.WinningMonths++
			sumWin += r.PnL
		case r.PnL < 0:
			m.LosingMonths++
			sumLoss += r.PnL
		default:
			m.FlatMonths++
		}

		if r.PnL > m.LargestWin {
			m.LargestWin = r.PnL
		}
		if r.PnL < m.LargestLoss {
			m.LargestLoss = r.PnL
		}
	}

	n := float64(m.TotalMonths)
	m.WinRate = float64(m.WinningMonths) / n * 100

	m.AvgWin = ratio(sumWin, float64(m.WinningMonths))
	if avg := ratio(sumLoss, float64(m.LosingMonths)); avg.Valid {
		m.AvgLoss = Defined(math.Abs(avg.Value))
	}
	if m.AvgWin.Valid && m.AvgLoss.Valid {
		m.WinLossRatio = ratio(m.AvgWin.Value, m.AvgLoss.Value)
	}
	m.ProfitFactor = ratio(sumWin, math.Abs(sumLoss))

	for _, p := range curve {
		if p.DrawdownValue < m.MaxDrawdown {
			m.MaxDrawdown = p.DrawdownValue
		}
		if p.DrawdownPct < m.MaxDrawdownPct {
			m.MaxDrawdownPct = p.DrawdownPct
		}
	}

	m.AvgReturn = m.TotalPnL / n

	var variance float64
	for _, r := range records {
		diff := r.PnL - m.AvgReturn
		variance += diff * diff
	}
	variance /= n

	m.StdDev = math.Sqrt(variance)
	if m.LargestWin == m.LargestLoss {
		// constant series; rounding in the mean must not leave a residual
		m.StdDev = 0
	}
	m.SharpeRatio = ratio(m.AvgReturn, m.StdDev)

	return m
}
