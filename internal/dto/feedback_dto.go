package dto

type FeedbackRequest struct {
	Rating     int    `json:"rating"`
	LikedEvent bool   `json:"likedEvent"`
	WantMore   bool   `json:"wantMore"`
	Comments   string `json:"comments"`
}

type FeedbackCheckResponse struct {
	Exists bool `json:"exists"`
}
