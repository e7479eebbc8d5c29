package request_models

type AddReviewRequest struct {
	TripTitle string   `json:"trip_title" binding:"required"`
	Rating    int      `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string   `json:"comment" binding:"required"`
	Photos    []string `json:"photos" binding:"omitempty,max=6,dive,url"`
}

type ListReviewsRequest struct {
	Page     int `form:"page" binding:"omitempty,gte=1"`
	PageSize int `form:"page_size" binding:"omitempty,gte=1,lte=100"`
	// Rating of 0 lists every rating.
	Rating int `form:"rating" binding:"omitempty,gte=1,lte=5"`
}
