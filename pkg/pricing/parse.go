package pricing

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCurrency converts loosely formatted user or catalog input into an
// Amount. Numbers are taken as is. Strings keep only digits, ',', '.' and
// '-'; when a comma is present it is the decimal separator and periods are
// thousands separators, otherwise the cleaned string is read as a plain
// decimal. Anything that does not yield a finite number is absent.
//
// Values of MaxIntegerDigits or more integer digits, or with more than
// MaxFractionDigits decimal places, are absent too.
//
// ParseCurrency never panics and never invents a zero.
func ParseCurrency(input any) Amount {
	return withinBounds(parseInput(input))
}

const (
	// MaxIntegerDigits bounds parsed amounts to below 1e18.
	MaxIntegerDigits = 18
	// MaxFractionDigits bounds the decimal places of any parsed amount.
	MaxFractionDigits = 18
)

var maxAmount = decimal.New(1, MaxIntegerDigits)

// withinBounds drops values whose exponent would make rounding to cents
// allocate huge powers of ten. The exponent is checked before any
// comparison that would rescale.
func withinBounds(a Amount) Amount {
	d, ok := a.Value()
	if !ok {
		return a
	}
	if d.IsZero() {
		return Of(decimal.Zero)
	}
	exp := d.Exponent()
	if exp >= MaxIntegerDigits || exp < -MaxFractionDigits {
		return Absent()
	}
	if d.Abs().Cmp(maxAmount) >= 0 {
		return Absent()
	}
	return a
}

func parseInput(input any) Amount {
	switch v := input.(type) {
	case nil:
		return Absent()
	case Amount:
		return v
	case *Amount:
		if v == nil {
			return Absent()
		}
		return *v
	case decimal.Decimal:
		return Of(v)
	case *decimal.Decimal:
		if v == nil {
			return Absent()
		}
		return Of(*v)
	case decimal.NullDecimal:
		if !v.Valid {
			return Absent()
		}
		return Of(v.Decimal)
	case float64:
		return OfFloat(v)
	case *float64:
		if v == nil {
			return Absent()
		}
		return OfFloat(*v)
	case float32:
		return OfFloat(float64(v))
	case int:
		return Of(decimal.NewFromInt(int64(v)))
	case int32:
		return Of(decimal.NewFromInt32(v))
	case int64:
		return Of(decimal.NewFromInt(v))
	case uint:
		return Of(decimal.NewFromUint64(uint64(v)))
	case uint32:
		return Of(decimal.NewFromUint64(uint64(v)))
	case uint64:
		return Of(decimal.NewFromUint64(v))
	case json.Number:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return Absent()
		}
		return Of(d)
	case string:
		return parseCurrencyString(v)
	case *string:
		if v == nil {
			return Absent()
		}
		return parseCurrencyString(*v)
	default:
		return Absent()
	}
}

func parseCurrencyString(s string) Amount {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, s)
	if cleaned == "" {
		return Absent()
	}

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	// decimal.NewFromString rejects stray separators and signs ("1,2,3",
	// "12-3", "-"), which is what keeps junk from becoming a number.
	if !strings.ContainsAny(cleaned, "0123456789") {
		return Absent()
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Absent()
	}
	return Of(d)
}
