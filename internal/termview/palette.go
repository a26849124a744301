package termview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wonny/noliquid/backend/internal/rating"
)

// Palette colors
var (
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Blue   = lipgloss.Color("#2563EB")
	Yellow = lipgloss.Color("#CA8A04")
	Orange = lipgloss.Color("#EA580C")
	Gray   = lipgloss.Color("#6B7280")
	Text   = lipgloss.Color("#E5E7EB")
	Border = lipgloss.Color("#374151")
)

// ToneColor maps a presentation tone to a palette color
func ToneColor(t rating.Tone) lipgloss.Color {
	switch t {
	case rating.TonePositive:
		return Green
	case rating.ToneNegative:
		return Red
	case rating.ToneInfo:
		return Blue
	case rating.ToneWarning:
		return Yellow
	case rating.ToneCaution:
		return Orange
	default:
		return Gray
	}
}
