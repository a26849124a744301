package landing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/wonny/noliquid/backend/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

// Tab selects the dashboard view
type Tab string

const (
	TabChart Tab = "chart"
	TabStats Tab = "stats"
)

// ParseTab maps a query value to a Tab. Anything unknown shows the charts.
func ParseTab(s string) Tab {
	if Tab(strings.ToLower(strings.TrimSpace(s))) == TabStats {
		return TabStats
	}
	return TabChart
}

// Renderer renders the HTML pages
// ⭐ SSOT: HTML 템플릿은 여기서만 파싱
type Renderer struct {
	landing   *template.Template
	dashboard *template.Template
}

type chartHeader struct {
	Title    string
	Subtitle string
	Card     dashboard.Card
}

var funcs = template.FuncMap{
	"header": func(title, subtitle string, card dashboard.Card) chartHeader {
		return chartHeader{Title: title, Subtitle: subtitle, Card: card}
	},
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	landing, err := parse("landing.html")
	if err != nil {
		return nil, err
	}

	dash, err := parse("dashboard.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{landing: landing, dashboard: dash}, nil
}

func parse(page string) (*template.Template, error) {
	t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", page, err)
	}
	return t, nil
}

type landingPage struct {
	Title    string
	Features []Feature
}

type dashboardPage struct {
	Title    string
	Tab      Tab
	Report   *dashboard.Report
	Equity   Chart
	Monthly  Chart
	Drawdown Chart
}

// Landing writes the landing page
func (r *Renderer) Landing(w io.Writer) error {
	return execute(w, r.landing, landingPage{Title: "Home", Features: Features()})
}

// Dashboard writes the backtest analysis page on the given tab
func (r *Renderer) Dashboard(w io.Writer, report *dashboard.Report, tab Tab) error {
	page := dashboardPage{
		Title:  "Backtest Analysis",
		Tab:    tab,
		Report: report,
	}
	if tab != TabStats {
		page.Equity = EquityChart(report.EquityCurve)
		page.Monthly = MonthlyChart(report.EquityCurve)
		page.Drawdown = DrawdownChart(report.EquityCurve)
	}
	return execute(w, r.dashboard, page)
}

// execute writes only complete pages
func execute(w io.Writer, t *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", t.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
