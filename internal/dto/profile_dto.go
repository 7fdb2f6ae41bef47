package dto

type UpdateProfileRequest struct {
	Name            string  `json:"name"`
	InstagramHandle string  `json:"instagram_handle"`
	Nationality     *string `json:"nationality"`
	Gender          *string `json:"gender"`
	InterestedIn    *string `json:"interested_in"`
}
