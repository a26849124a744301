package landing

import (
	"math"
	"strconv"
	"strings"

	"github.com/wonny/noliquid/backend/internal/rating"
	"github.com/wonny/noliquid/backend/internal/stats"
)

// Chart canvas size in SVG user units
const (
	chartWidth  = 600.0
	chartHeight = 200.0
	chartPad    = 10.0
)

// Chart is a precomputed SVG chart. Templates only print its fields.
type Chart struct {
	Width  float64
	Height float64
	Points string  // polyline points "x,y x,y ..."
	ZeroY  float64 // y of the zero baseline
	Bars   []Bar
}

// Bar is one column of a bar chart
type Bar struct {
	X, Y, W, H float64
	Label      string
	Tone       rating.Tone
}

// scale maps values into the chart's vertical space. Zero is always in range.
type scale struct {
	min, max float64
}

func newScale(values []float64) scale {
	s := scale{}
	for _, v := range values {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	if s.max == s.min {
		s.max = s.min + 1
	}
	return s
}

func (s scale) y(v float64) float64 {
	inner := chartHeight - 2*chartPad
	return chartPad + (s.max-v)/(s.max-s.min)*inner
}

// slotX is the center of slot i of n
func slotX(i, n int) float64 {
	inner := chartWidth - 2*chartPad
	return chartPad + (float64(i)+0.5)*inner/float64(n)
}

func lineChart(values []float64) Chart {
	s := newScale(values)

	points := make([]string, len(values))
	for i, v := range values {
		points[i] = coord(slotX(i, len(values))) + "," + coord(s.y(v))
	}

	return Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Points: strings.Join(points, " "),
		ZeroY:  s.y(0),
	}
}

// EquityChart plots the cumulative P&L
func EquityChart(curve []stats.EquityPoint) Chart {
	values := make([]float64, len(curve))
	for i, p := range curve {
		values[i] = p.Cumulative
	}
	return lineChart(values)
}

// DrawdownChart plots the drawdown percent
func DrawdownChart(curve []stats.EquityPoint) Chart {
	values := make([]float64, len(curve))
	for i, p := range curve {
		values[i] = p.DrawdownPct
	}
	return lineChart(values)
}

// MonthlyChart draws one bar per month, up from or down to the zero line
func MonthlyChart(curve []stats.EquityPoint) Chart {
	values := make([]float64, len(curve))
	for i, p := range curve {
		values[i] = p.PnL
	}

	s := newScale(values)
	zero := s.y(0)
	slot := (chartWidth - 2*chartPad) / float64(max(len(curve), 1))

	bars := make([]Bar, len(curve))
	for i, p := range curve {
		top, bottom := s.y(p.PnL), zero
		if p.PnL < 0 {
			top, bottom = zero, s.y(p.PnL)
		}
		bars[i] = Bar{
			X:     round2(slotX(i, len(curve)) - slot*0.35),
			Y:     round2(top),
			W:     round2(slot * 0.7),
			H:     round2(bottom - top),
			Label: p.Month,
			Tone:  rating.SignTone(p.PnL),
		}
	}

	return Chart{
		Width:  chartWidth,
		Height: chartHeight,
		ZeroY:  zero,
		Bars:   bars,
	}
}

func coord(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
