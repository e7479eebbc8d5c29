package response_models

import "tripnation/pkg/pricing"

// FormattedBreakdown holds display strings in pt-BR currency notation.
type FormattedBreakdown struct {
	Subtotal   string `json:"subtotal"`
	ServiceFee string `json:"service_fee"`
	Total      string `json:"total"`
}

type QuoteResponse struct {
	Items             pricing.LineItems  `json:"items"`
	Breakdown         pricing.Result     `json:"breakdown"`
	ServiceFeePercent string             `json:"service_fee_percent"`
	Formatted         FormattedBreakdown `json:"formatted"`
}

type PackageQuoteResponse struct {
	PackageID int           `json:"package_id"`
	Title     string        `json:"title"`
	Price     string        `json:"price"`
	Quote     QuoteResponse `json:"quote"`
}

type CheckoutResponse struct {
	TripID             string         `json:"trip_id"`
	Destination        string         `json:"destination"`
	Quote              QuoteResponse  `json:"quote"`
	WithInsurance      bool           `json:"with_insurance"`
	Insurance          pricing.Amount `json:"insurance"`
	InsuranceFormatted string         `json:"insurance_formatted"`
	AmountDue          pricing.Amount `json:"amount_due"`
	AmountDueFormatted string         `json:"amount_due_formatted"`
}
