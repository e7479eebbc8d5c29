package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PlaceholderToBeConfirmed is rendered for an absent amount.
const PlaceholderToBeConfirmed = "valor a confirmar"

// Formatter renders amounts for display. It holds its own language tag so
// the output never depends on the process locale.
type Formatter struct {
	Tag         language.Tag
	Symbol      string
	Placeholder string
}

// BRL formats Brazilian reais: "R$ 1.200,50".
var BRL = Formatter{
	Tag:         language.BrazilianPortuguese,
	Symbol:      "R$",
	Placeholder: PlaceholderToBeConfirmed,
}

// Format renders v with two decimal places and thousands separators, or the
// placeholder when v is absent. Negative values are written as "-R$ 10,00".
func (f Formatter) Format(v Amount) string {
	d, ok := v.Value()
	if !ok {
		return f.Placeholder
	}
	d = d.Round(centPlaces)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	digits := f.digits(d)
	if f.Symbol == "" {
		return sign + digits
	}
	return sign + f.Symbol + " " + digits
}

// digits formats a non-negative d already rounded to cents. The whole part
// goes through x/text as an int64 so grouping follows the language and no
// digit passes through a float. Values of 1e18 or more keep their plain form.
func (f Formatter) digits(d decimal.Decimal) string {
	if d.Cmp(maxAmount) >= 0 {
		return d.StringFixed(centPlaces)
	}
	p := message.NewPrinter(f.Tag)
	whole := d.IntPart()
	cents := d.Sub(decimal.NewFromInt(whole)).Shift(centPlaces).IntPart()
	return p.Sprintf("%v", number.Decimal(whole)) + decimalSeparator(p) + fmt.Sprintf("%02d", cents)
}

// decimalSeparator asks the printer how it writes one and a half.
func decimalSeparator(p *message.Printer) string {
	s := p.Sprintf("%v", number.Decimal(1.5, number.Scale(1)))
	return strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
}

// FormatCurrency renders v with the BRL formatter.
func FormatCurrency(v Amount) string { return BRL.Format(v) }
