package pricing

import "github.com/shopspring/decimal"

// InsurancePolicy prices travel insurance as a share of the base cost with a
// floor.
type InsurancePolicy struct {
	Rate    decimal.Decimal
	Minimum decimal.Decimal
}

// DefaultInsurance charges 2% of the base, never less than R$ 25.
var DefaultInsurance = InsurancePolicy{
	Rate:    decimal.NewFromFloat(0.02),
	Minimum: decimal.NewFromInt(25),
}

// Insurance quotes cover for a trip whose base cost is base. Nothing is
// quoted for an absent or non-positive base.
func Insurance(base Amount, policy InsurancePolicy) Amount {
	v, ok := base.Value()
	if !ok || !v.IsPositive() {
		return Absent()
	}
	return Of(decimal.Max(policy.Minimum, v.Mul(policy.Rate))).Cents()
}
