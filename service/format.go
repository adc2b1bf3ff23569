package service

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"finance-toolkit/domain"
)

const notANumber = "n/a"

// Formatter renders metric values for display. Money is grouped with no
// decimals and prefixed with the currency symbol; years and percentages get
// one decimal and no symbol.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.English)}
}

func (f *Formatter) Money(symbol string, value float64) string {
	if !finite(value) {
		return notANumber
	}
	// -0 would print as "-0"
	rounded := math.Round(value)
	if rounded == 0 {
		rounded = 0
	}
	return symbol + f.printer.Sprintf("%.0f", rounded)
}

func (f *Formatter) Years(value float64) string {
	if !finite(value) {
		return notANumber
	}
	return f.printer.Sprintf("%.1f", value) + " years"
}

func (f *Formatter) Percent(value float64) string {
	if !finite(value) {
		return notANumber
	}
	return f.printer.Sprintf("%.1f", value) + "%"
}

// Number formats a plain input echo, e.g. "9.5" or "10".
func (f *Formatter) Number(value float64) string {
	s := f.printer.Sprintf("%.2f", value)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Metric formats m according to its kind.
func (f *Formatter) Metric(currency domain.Currency, m domain.Metric) string {
	switch m.Kind {
	case domain.KindMoney:
		return f.Money(currency.Symbol, m.Value)
	case domain.KindYears:
		return f.Years(m.Value)
	case domain.KindPercent:
		return f.Percent(m.Value)
	}
	return f.Number(m.Value)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
