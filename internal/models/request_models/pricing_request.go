package request_models

import "tripnation/pkg/pricing"

// QuoteRequest accepts the canonical line items. Itemized or Extras may be
// sent instead by older clients; the first one present wins.
type QuoteRequest struct {
	pricing.LineItems
	ServiceFeePercent *float64 `json:"service_fee_percent" binding:"omitempty,gte=0,lt=100"`

	Itemized *pricing.ItemizedPricing `json:"itemized,omitempty"`
	Extras   *pricing.ExtrasPricing   `json:"extras,omitempty"`
}

// QuoteFormRequest is the checkout form, every field as the user typed it.
type QuoteFormRequest struct {
	BasePrice         string `form:"base_price" json:"base_price"`
	TransportCost     string `form:"transport_cost" json:"transport_cost"`
	AccommodationCost string `form:"accommodation_cost" json:"accommodation_cost"`
	ActivitiesCost    string `form:"activities_cost" json:"activities_cost"`
	OtherCost         string `form:"other_cost" json:"other_cost"`
	ServiceFeePercent string `form:"service_fee_percent" json:"service_fee_percent"`
}
