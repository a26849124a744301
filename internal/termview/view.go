package termview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wonny/noliquid/backend/internal/dashboard"
)

// View renders a dashboard report for a terminal
type View struct {
	r *lipgloss.Renderer

	title  lipgloss.Style
	muted  lipgloss.Style
	card   lipgloss.Style
	header lipgloss.Style
}

// New creates a View whose color profile is detected from w
func New(w io.Writer) *View {
	r := lipgloss.NewRenderer(w)

	return &View{
		r:      r,
		title:  r.NewStyle().Bold(true).Foreground(Text),
		muted:  r.NewStyle().Foreground(Gray),
		card:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1).Width(22),
		header: r.NewStyle().Bold(true).Underline(true).MarginTop(1),
	}
}

// Render returns the whole report as a string
func (v *View) Render(report *dashboard.Report) string {
	sections := []string{
		v.title.Render("Backtest Analysis") + " " + v.muted.Render(fmt.Sprintf("%s · %s", report.Dataset.Name, report.Dataset.Source)),
		v.cards(report.Headline),
		v.equity(report),
		v.header.Render("Detailed Metrics"),
		v.grid(report.Metrics, 4),
		v.header.Render("Monthly Breakdown"),
		v.months(report.Months),
		v.header.Render("Performance Rating"),
		v.ratings(report.Ratings),
		v.header.Render("Insights"),
		v.insights(report.Insights),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// Write renders report to w
func (v *View) Write(w io.Writer, report *dashboard.Report) error {
	_, err := io.WriteString(w, v.Render(report))
	return err
}

func (v *View) tone(card dashboard.Card) lipgloss.Style {
	return v.r.NewStyle().Bold(true).Foreground(ToneColor(card.Tone))
}

func (v *View) cardBox(c dashboard.Card) string {
	lines := []string{v.muted.Render(c.Label), v.tone(c).Render(c.Value)}
	if c.Caption != "" {
		lines = append(lines, v.muted.Render(c.Caption))
	}
	return v.card.Render(strings.Join(lines, "\n"))
}

func (v *View) cards(cards []dashboard.Card) string {
	boxes := make([]string, len(cards))
	for i, c := range cards {
		boxes[i] = v.cardBox(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (v *View) grid(cards []dashboard.Card, perRow int) string {
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, v.cards(cards[start:end]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *View) equity(report *dashboard.Report) string {
	values := make([]float64, len(report.EquityCurve))
	for i, p := range report.EquityCurve {
		values[i] = p.Cumulative
	}

	line := v.tone(report.EquityHeader).Render(Sparkline(values) + " " + Trend(values))
	return fmt.Sprintf("%s %s  %s", v.muted.Render("Equity"), line, v.tone(report.EquityHeader).Render(report.EquityHeader.Value))
}

func (v *View) months(cells []dashboard.MonthCell) string {
	label := v.r.NewStyle().Width(8).Foreground(Gray)
	value := v.r.NewStyle().Width(10).Align(lipgloss.Right)

	var b strings.Builder
	for i, c := range cells {
		b.WriteString(label.Render(c.Month))
		b.WriteString(value.Foreground(ToneColor(c.Tone)).Render(c.Display))
		if i%3 == 2 || i == len(cells)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString("   ")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *View) ratings(ratings []dashboard.RatingView) string {
	boxes := make([]string, len(ratings))
	for i, r := range ratings {
		stars := v.r.NewStyle().Foreground(ToneColor(r.Tone)).Render(r.Symbol)
		boxes[i] = v.card.Render(strings.Join([]string{v.muted.Render(r.Category), stars, r.Label}, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (v *View) insights(insights []dashboard.Insight) string {
	wrap := v.r.NewStyle().Width(88)

	lines := make([]string, len(insights))
	for i, in := range insights {
		title := v.r.NewStyle().Bold(true).Foreground(ToneColor(in.Tone)).Render(in.Title)
		lines[i] = wrap.Render(title + ": " + in.Text)
	}
	return strings.Join(lines, "\n")
}
