package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAmount(t *testing.T, want string, got Amount) {
	t.Helper()
	v, ok := got.Value()
	require.True(t, ok, "expected %s, got absent", want)
	assert.True(t, decimal.RequireFromString(want).Equal(v), "expected %s, got %s", want, v)
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		present bool
	}{
		{name: "brazilian format", input: "R$ 1.200,50", want: "1200.50", present: true},
		{name: "plain integer string", input: "180", want: "180", present: true},
		{name: "plain decimal string", input: "1380.5", want: "1380.5", present: true},
		{name: "comma decimal without thousands", input: "42,10", want: "42.10", present: true},
		{name: "negative discount", input: "-R$ 15,00", want: "-15", present: true},
		{name: "zero string is present", input: "0", want: "0", present: true},
		{name: "float", input: 99.9, want: "99.9", present: true},
		{name: "int", input: 0, want: "0", present: true},
		{name: "json number", input: json.Number("1.5e3"), want: "1500", present: true},
		{name: "zero with huge exponent", input: json.Number("0e10000000"), want: "0", present: true},
		{name: "largest accepted", input: "999.999.999.999.999.999,99", want: "999999999999999999.99", present: true},
		{name: "eighteen decimal places", input: "0.000000000000000001", want: "0.000000000000000001", present: true},
		{name: "huge exponent", input: json.Number("1e10000000"), present: false},
		{name: "huge negative exponent", input: json.Number("-1e10000000"), present: false},
		{name: "tiny exponent", input: json.Number("1e-10000000"), present: false},
		{name: "at the magnitude bound", input: "1.000.000.000.000.000.000,00", present: false},
		{name: "too many decimal places", input: "0.0000000000000000001", present: false},
		{name: "nil", input: nil, present: false},
		{name: "empty string", input: "", present: false},
		{name: "whitespace only", input: "   ", present: false},
		{name: "letters only", input: "a combinar", present: false},
		{name: "lone minus", input: "-", present: false},
		{name: "two commas", input: "1,2,3", present: false},
		{name: "nil string pointer", input: (*string)(nil), present: false},
		{name: "unsupported type", input: struct{}{}, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCurrency(tt.input)
			if !tt.present {
				assert.False(t, got.IsPresent(), "expected absent, got %s", got)
				return
			}
			assertAmount(t, tt.want, got)
		})
	}
}

func TestParseCurrencyIsIdempotent(t *testing.T) {
	inputs := []string{"R$ 1.200,50", "1380.5", "-42,10", "0", "1234567,891", "R$ 900"}
	for _, in := range inputs {
		first := ParseCurrency(in)
		second := ParseCurrency(first.String())
		assert.True(t, first.Equal(second), "input %q: %s != %s", in, first, second)
	}
}

func TestComputeTotal(t *testing.T) {
	t.Run("all items absent", func(t *testing.T) {
		got := ComputeTotal(LineItems{})
		assert.False(t, got.Subtotal.IsPresent())
		assert.False(t, got.ServiceFee.IsPresent())
		assert.False(t, got.Total.IsPresent())
	})

	t.Run("zero base is present", func(t *testing.T) {
		got := ComputeTotal(LineItems{BasePrice: OfFloat(0)})
		assertAmount(t, "0", got.Subtotal)
		assertAmount(t, "0", got.ServiceFee)
		assertAmount(t, "0", got.Total)
	})

	t.Run("explicit eight percent", func(t *testing.T) {
		got := ComputeTotal(LineItems{BasePrice: OfFloat(1000)}, FeeFromFraction(0.08))
		assertAmount(t, "1000", got.Subtotal)
		assertAmount(t, "80", got.ServiceFee)
		assertAmount(t, "1080", got.Total)
	})

	t.Run("default fee is eight percent", func(t *testing.T) {
		got := ComputeTotal(LineItems{BasePrice: OfFloat(1000)})
		assertAmount(t, "80", got.ServiceFee)
	})

	t.Run("currency strings at five percent", func(t *testing.T) {
		items := LineItems{
			BasePrice:     ParseCurrency("R$ 1.200,50"),
			TransportCost: ParseCurrency("180"),
		}
		got := ComputeTotal(items, FeeFromFraction(0.05))
		assertAmount(t, "1380.50", got.Subtotal)
		assertAmount(t, "69.03", got.ServiceFee)
		assertAmount(t, "1449.53", got.Total)
	})

	t.Run("negative items are kept", func(t *testing.T) {
		items := LineItems{BasePrice: OfFloat(500), OtherCost: OfFloat(-100)}
		got := ComputeTotal(items, FeeFromPercent(10))
		assertAmount(t, "400", got.Subtotal)
		assertAmount(t, "40", got.ServiceFee)
		assertAmount(t, "440", got.Total)
	})
}

func TestComputeSubtotalAddsOnlyPresentItems(t *testing.T) {
	values := []Amount{OfFloat(100), OfFloat(20.5), OfFloat(0), OfFloat(7.25), OfFloat(-3)}
	for mask := 0; mask < 1<<len(values); mask++ {
		var picked [5]Amount
		want := decimal.Zero
		for i, v := range values {
			if mask&(1<<i) != 0 {
				picked[i] = v
				d, _ := v.Value()
				want = want.Add(d)
			}
		}
		items := LineItems{
			BasePrice:         picked[0],
			TransportCost:     picked[1],
			AccommodationCost: picked[2],
			ActivitiesCost:    picked[3],
			OtherCost:         picked[4],
		}
		got := ComputeSubtotal(items)
		if mask == 0 {
			assert.False(t, got.IsPresent())
			continue
		}
		assertAmount(t, want.String(), got)

		res := ComputeTotal(items)
		sub, _ := res.Subtotal.Value()
		fee, _ := res.ServiceFee.Value()
		total, _ := res.Total.Value()
		assert.True(t, sub.Add(fee).Equal(total), "mask %b", mask)
	}
}

func TestComputeServiceFeeAbsentSubtotal(t *testing.T) {
	assert.False(t, ComputeServiceFee(Absent(), FeeFromPercent(8)).IsPresent())
}

func TestFeeNormalization(t *testing.T) {
	assert.True(t, FeeFromPercent(8).Rate().Equal(FeeFromFraction(0.08).Rate()))
	assert.Equal(t, "5%", FeeFromFraction(0.05).String())
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.200,50", FormatCurrency(OfFloat(1200.5)))
	assert.Equal(t, "R$ 1.234.567,89", FormatCurrency(OfFloat(1234567.891)))
	assert.Equal(t, "R$ 0,00", FormatCurrency(OfFloat(0)))
	assert.Equal(t, "-R$ 10,00", FormatCurrency(OfFloat(-10)))
	assert.Equal(t, PlaceholderToBeConfirmed, FormatCurrency(Absent()))

	v := OfFloat(1449.53)
	assert.Equal(t, FormatCurrency(v), FormatCurrency(v))
}

func TestFormatThenParseRoundTrips(t *testing.T) {
	for _, f := range []float64{0, 1, 69.03, 1380.5, 1449.53, 987654.32, -250.75} {
		got := ParseCurrency(FormatCurrency(OfFloat(f)))
		v, ok := got.Float64()
		require.True(t, ok)
		assert.InDelta(t, f, v, 0.01)
	}
}

func TestFormatKeepsEveryDigit(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "12345678901234567,89", want: "R$ 12.345.678.901.234.567,89"},
		{input: "999.999.999.999.999.999,99", want: "R$ 999.999.999.999.999.999,99"},
		{input: "-90071992547409,93", want: "-R$ 90.071.992.547.409,93"},
		{input: "0,05", want: "R$ 0,05"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := ParseCurrency(tt.input)
			got := FormatCurrency(v)
			assert.Equal(t, tt.want, got)
			assert.True(t, v.Equal(ParseCurrency(got)), "%s did not survive %q", v, got)
		})
	}
}

func TestAmountJSON(t *testing.T) {
	var items LineItems
	err := json.Unmarshal([]byte(`{"base_price":"R$ 1.200,50","transport_cost":180,"accommodation_cost":null,"other_cost":"n/a"}`), &items)
	require.NoError(t, err)
	assertAmount(t, "1200.5", items.BasePrice)
	assertAmount(t, "180", items.TransportCost)
	assert.False(t, items.AccommodationCost.IsPresent())
	assert.False(t, items.ActivitiesCost.IsPresent())
	assert.False(t, items.OtherCost.IsPresent())

	out, err := json.Marshal(ComputeTotal(LineItems{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"subtotal":null,"service_fee":null,"total":null}`, string(out))

	out, err = json.Marshal(ComputeTotal(LineItems{BasePrice: OfFloat(1000)}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"subtotal":1000,"service_fee":80,"total":1080}`, string(out))
}

func TestAmountJSONRejectsHugeExponents(t *testing.T) {
	var items LineItems
	err := json.Unmarshal([]byte(`{"base_price":1e10000000,"transport_cost":1e-10000000,"other_cost":10}`), &items)
	require.NoError(t, err)
	assert.False(t, items.BasePrice.IsPresent())
	assert.False(t, items.TransportCost.IsPresent())

	res := ComputeTotal(items)
	assertAmount(t, "10.8", res.Total)
	assert.Equal(t, "R$ 10,80", FormatCurrency(res.Total))
}

func TestAdapters(t *testing.T) {
	t.Run("itemized", func(t *testing.T) {
		items := FromItemized(ItemizedPricing{Base: OfFloat(100), Activities: OfFloat(50)})
		assertAmount(t, "100", items.BasePrice)
		assertAmount(t, "50", items.ActivitiesCost)
		assert.False(t, items.AccommodationCost.IsPresent())
	})

	t.Run("extras with percent fee", func(t *testing.T) {
		pct := 5.0
		items, fee := FromExtras(ExtrasPricing{
			BasePrice:         OfFloat(1000),
			Extras:            OfFloat(200),
			ServiceFeePercent: &pct,
		})
		assertAmount(t, "200", items.AccommodationCost)
		assert.True(t, fee.Rate().Equal(decimal.NewFromFloat(0.05)))
		assertAmount(t, "1260", ComputeTotal(items, fee).Total)
	})

	t.Run("extras without fee uses default", func(t *testing.T) {
		_, fee := FromExtras(ExtrasPricing{BasePrice: OfFloat(10)})
		assert.True(t, fee.Rate().Equal(DefaultFee.Rate()))
	})

	t.Run("price tag", func(t *testing.T) {
		assertAmount(t, "2500", FromPriceTag("R$ 2.500,00").BasePrice)
		assert.False(t, FromPriceTag("sob consulta").BasePrice.IsPresent())
	})
}

func TestInsurance(t *testing.T) {
	assertAmount(t, "25", Insurance(OfFloat(900), DefaultInsurance))
	assertAmount(t, "50", Insurance(OfFloat(2500), DefaultInsurance))
	assert.False(t, Insurance(OfFloat(0), DefaultInsurance).IsPresent())
	assert.False(t, Insurance(Absent(), DefaultInsurance).IsPresent())
}

func TestSumAndNullDecimal(t *testing.T) {
	assert.False(t, Sum().IsPresent())
	assert.False(t, Sum(Absent(), Absent()).IsPresent())
	assertAmount(t, "30", Sum(OfFloat(10), Absent(), OfFloat(20)))

	assert.False(t, FromNullDecimal(Absent().NullDecimal()).IsPresent())
	assertAmount(t, "12.5", FromNullDecimal(OfFloat(12.5).NullDecimal()))
}
