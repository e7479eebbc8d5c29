package request_models

import "tripnation/pkg/pricing"

// Dates are calendar days in the 2006-01-02 layout.
type CreateTripRequest struct {
	Destination string         `json:"destination" binding:"required"`
	Sport       string         `json:"sport" binding:"required"`
	StartDate   string         `json:"start_date" binding:"required"`
	EndDate     string         `json:"end_date" binding:"required"`
	Budget      pricing.Amount `json:"budget"`
	People      int            `json:"people" binding:"omitempty,gte=1"`
	Notes       string         `json:"notes"`
	IsOpen      bool           `json:"is_open"`
	NeedsGuide  bool           `json:"needs_guide"`
	GuideID     *string        `json:"guide_id"`
}

// UpdateTripRequest only touches the fields that are sent.
type UpdateTripRequest struct {
	Destination *string         `json:"destination"`
	Sport       *string         `json:"sport"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	Budget      *pricing.Amount `json:"budget"`
	People      *int            `json:"people" binding:"omitempty,gte=1"`
	Notes       *string         `json:"notes"`
	IsOpen      *bool           `json:"is_open"`
	NeedsGuide  *bool           `json:"needs_guide"`
	GuideID     *string         `json:"guide_id"`
}

type ListTripsRequest struct {
	Page     int `form:"page" binding:"omitempty,gte=1"`
	PageSize int `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}
