package pricing

// Older trip payloads describe pricing in three incompatible shapes. Each
// adapter maps one of them onto LineItems so nothing downstream needs to
// know which shape a record arrived in.

// ItemizedPricing is the base/transport/accommodation/activities/other shape.
type ItemizedPricing struct {
	Base          Amount `json:"base"`
	Transport     Amount `json:"transport"`
	Accommodation Amount `json:"accommodation"`
	Activities    Amount `json:"activities"`
	Other         Amount `json:"other"`
}

// ExtrasPricing is the basePrice/transportCost/serviceFeePercent/extras
// shape. ServiceFeePercent is a percentage (8 means 8%).
type ExtrasPricing struct {
	BasePrice         Amount   `json:"basePrice"`
	TransportCost     Amount   `json:"transportCost"`
	ServiceFeePercent *float64 `json:"serviceFeePercent" binding:"omitempty,gte=0,lt=100"`
	Extras            Amount   `json:"extras"`
}

func FromItemized(p ItemizedPricing) LineItems {
	return LineItems{
		BasePrice:         p.Base,
		TransportCost:     p.Transport,
		AccommodationCost: p.Accommodation,
		ActivitiesCost:    p.Activities,
		OtherCost:         p.Other,
	}
}

// FromExtras folds extras into accommodation and returns the fee the record
// carries, or DefaultFee when it has none.
func FromExtras(p ExtrasPricing) (LineItems, Fee) {
	fee := DefaultFee
	if p.ServiceFeePercent != nil {
		fee = FeeFromPercent(*p.ServiceFeePercent)
	}
	return LineItems{
		BasePrice:         p.BasePrice,
		TransportCost:     p.TransportCost,
		AccommodationCost: p.Extras,
	}, fee
}

// FromPriceTag reads a single display price ("R$ 1.200,00") as the base.
func FromPriceTag(price string) LineItems {
	return LineItems{BasePrice: ParseCurrency(price)}
}
