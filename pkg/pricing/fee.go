package pricing

import "github.com/shopspring/decimal"

// Fee is a platform service fee. It is always held as a fraction of the
// subtotal (0.08 means 8%), regardless of how the source expressed it.
type Fee struct {
	rate decimal.Decimal
}

// DefaultFee is charged when the caller does not supply one.
var DefaultFee = FeeFromFraction(0.08)

var hundred = decimal.NewFromInt(100)

// FeeFromFraction builds a fee from a fraction such as 0.05.
func FeeFromFraction(f float64) Fee {
	return Fee{rate: decimal.NewFromFloat(f)}
}

// FeeFromPercent builds a fee from a percentage such as 5.
func FeeFromPercent(p float64) Fee {
	return Fee{rate: decimal.NewFromFloat(p).Div(hundred)}
}

// Rate is the fee as a fraction.
func (f Fee) Rate() decimal.Decimal { return f.rate }

// Percent is the fee as a percentage.
func (f Fee) Percent() decimal.Decimal { return f.rate.Mul(hundred) }

func (f Fee) String() string { return f.Percent().String() + "%" }
