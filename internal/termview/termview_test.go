package termview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/noliquid/backend/internal/dashboard"
	"github.com/wonny/noliquid/backend/internal/dataset"
	"github.com/wonny/noliquid/backend/internal/rating"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"rising", []float64{0, 7}, "▁█"},
		{"falling", []float64{7, 0}, "█▁"},
		{"flat", []float64{3, 3, 3}, "▅▅▅"},
		{"steps", []float64{0, 1, 2, 3, 4, 5, 6, 7}, "▁▂▃▄▅▆▇█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sparkline(tt.values))
		})
	}
}

func TestTrend(t *testing.T) {
	assert.Equal(t, "↗", Trend([]float64{1, 2}))
	assert.Equal(t, "↘", Trend([]float64{2, -1}))
	assert.Equal(t, "→", Trend([]float64{2, 5, 2}))
	assert.Equal(t, "→", Trend([]float64{1}))
}

func TestToneColor(t *testing.T) {
	assert.Equal(t, Green, ToneColor(rating.TonePositive))
	assert.Equal(t, Red, ToneColor(rating.ToneNegative))
	assert.Equal(t, Gray, ToneColor(rating.Tone("unknown")))
}

func TestView_Render(t *testing.T) {
	ds, err := dataset.Default()
	require.NoError(t, err)
	report, err := dashboard.BuildReport(ds, dataset.DefaultName)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Write(&buf, report))
	out := buf.String()

	for _, want := range []string{
		"Backtest Analysis",
		"Detailed Metrics",
		"$6,646.50",
		"66.7%",
		"5.44",
		"-19.53%",
		"8/12",
		"Jan 24",
		"+1,246",
		"Moderate",
		"★★★",
		"Key Insight",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "NaN")
}
