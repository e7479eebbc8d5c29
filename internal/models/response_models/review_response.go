package response_models

type ReviewResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	TripTitle string   `json:"trip_title"`
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment"`
	Photos    []string `json:"photos"`
	CreatedAt int64    `json:"created_at"`
}
