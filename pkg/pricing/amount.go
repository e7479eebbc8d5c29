// Package pricing computes trip cost breakdowns from optional line items.
//
// Every monetary input is optional. An Amount that was never entered is
// absent, which is not the same as zero, and absence propagates through the
// arithmetic instead of silently turning into 0.
package pricing

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// centPlaces is the number of decimal places money is rounded to.
const centPlaces = 2

// Amount is an optional monetary value. The zero value is absent.
type Amount struct {
	value   decimal.Decimal
	present bool
}

// Absent returns an Amount carrying no value.
func Absent() Amount { return Amount{} }

// Of wraps a present decimal value.
func Of(v decimal.Decimal) Amount { return Amount{value: v, present: true} }

// OfFloat wraps a float. NaN and infinities are absent.
func OfFloat(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Absent()
	}
	return Of(decimal.NewFromFloat(v))
}

// OfString parses s with ParseCurrency.
func OfString(s string) Amount { return ParseCurrency(s) }

func (a Amount) IsPresent() bool { return a.present }

// Value returns the decimal and whether it is present.
func (a Amount) Value() (decimal.Decimal, bool) { return a.value, a.present }

// Float64 returns the value as a float and whether it is present.
func (a Amount) Float64() (float64, bool) {
	if !a.present {
		return 0, false
	}
	return a.value.InexactFloat64(), true
}

// Equal reports whether both amounts are absent, or both present with the
// same numeric value.
func (a Amount) Equal(b Amount) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value.Equal(b.value)
}

// String renders a plain decimal ("1380.5") or "" when absent. The output is
// accepted back by ParseCurrency unchanged.
func (a Amount) String() string {
	if !a.present {
		return ""
	}
	return a.value.String()
}

// Cents returns the value rounded half away from zero to two places.
func (a Amount) Cents() Amount {
	if !a.present {
		return a
	}
	return Of(a.value.Round(centPlaces))
}

// plus adds b to a. An absent side contributes nothing; the sum is absent
// only when both sides are.
func (a Amount) plus(b Amount) Amount {
	switch {
	case !b.present:
		return a
	case !a.present:
		return b
	default:
		return Of(a.value.Add(b.value))
	}
}

// FromNullDecimal reads a nullable database column.
func FromNullDecimal(nd decimal.NullDecimal) Amount {
	if !nd.Valid {
		return Absent()
	}
	return Of(nd.Decimal)
}

// NullDecimal is the column form of a, NULL when absent.
func (a Amount) NullDecimal() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: a.value, Valid: a.present}
}

// MarshalJSON encodes a present amount as a JSON number and an absent one
// as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.present {
		return []byte("null"), nil
	}
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts null, a JSON number or a currency string such as
// "R$ 1.200,50". Input that cannot be parsed decodes as absent.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Absent()
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ParseCurrency(s)
		return nil
	}
	*a = ParseCurrency(json.Number(data))
	return nil
}
