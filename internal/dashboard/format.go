package dashboard

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wonny/noliquid/backend/internal/stats"
)

// Formatter renders numbers the way the dashboard shows them
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter returns a Formatter for currency (ISO code)
func NewFormatter(currency string) *Formatter {
	symbol := currency + " "
	switch currency {
	case "USD", "":
		symbol = "$"
	case "EUR":
		symbol = "€"
	case "KRW":
		symbol = "₩"
	}

	return &Formatter{
		printer: message.NewPrinter(language.English),
		symbol:  symbol,
	}
}

// Money formats v with two decimals and digit grouping: -$1,234.56
func (f *Formatter) Money(v float64) string {
	return f.money(v, 2)
}

// MoneyWhole formats v rounded to whole units: $1,235
func (f *Formatter) MoneyWhole(v float64) string {
	return f.money(v, 0)
}

func (f *Formatter) money(v float64, decimals int) string {
	sign := ""
	if v < 0 && math.Round(v*math.Pow10(decimals)) != 0 {
		sign = "-"
	}
	return sign + f.symbol + f.number(math.Abs(v), decimals)
}

// SignedMoney prefixes non-negative values with "+"
func (f *Formatter) SignedMoney(v float64) string {
	if v >= 0 {
		return "+" + f.Money(v)
	}
	return f.Money(v)
}

// SignedWhole formats v as a signed whole number without currency: +1,246
func (f *Formatter) SignedWhole(v float64) string {
	r := math.Round(v)
	if r == 0 {
		return "+0"
	}
	if r > 0 {
		return "+" + f.number(r, 0)
	}
	return "-" + f.number(-r, 0)
}

// MoneyMetric formats a possibly undefined amount
func (f *Formatter) MoneyMetric(m stats.Metric) string {
	if !m.Valid {
		return NotApplicable
	}
	return f.Money(m.Value)
}

// Percent formats v (already in percent) with the given decimals
func (f *Formatter) Percent(v float64, decimals int) string {
	if math.Round(v*math.Pow10(decimals)) == 0 {
		v = 0
	}
	return f.number(v, decimals) + "%"
}

// Ratio formats a possibly undefined ratio with two decimals
func (f *Formatter) Ratio(m stats.Metric) string {
	if !m.Valid {
		return NotApplicable
	}
	return f.number(m.Value, 2)
}

// number formats v with digit grouping
func (f *Formatter) number(v float64, decimals int) string {
	return f.printer.Sprintf("%."+strconv.Itoa(decimals)+"f", v)
}

// NotApplicable is shown in place of undefined metrics
const NotApplicable = "N/A"
