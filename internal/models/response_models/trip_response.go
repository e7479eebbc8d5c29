package response_models

import "tripnation/pkg/pricing"

type TripResponse struct {
	ID              string         `json:"id"`
	Kind            string         `json:"kind"`
	PackageID       *int           `json:"package_id,omitempty"`
	Destination     string         `json:"destination"`
	Sport           string         `json:"sport"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	Budget          pricing.Amount `json:"budget"`
	BudgetFormatted string         `json:"budget_formatted"`
	People          int            `json:"people"`
	Notes           string         `json:"notes,omitempty"`
	IsOpen          bool           `json:"is_open"`
	InterestedCount int            `json:"interested_count"`
	NeedsGuide      bool           `json:"needs_guide"`
	GuideID         *string        `json:"guide_id,omitempty"`
	CreatedAt       int64          `json:"created_at"`
}

type PaginatedResponse[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
