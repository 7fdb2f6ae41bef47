package dto

type SettingsResponse struct {
	IsVotingOpen       bool `json:"is_voting_open"`
	AreMatchesRevealed bool `json:"are_matches_revealed"`
}

// UpdateSettingsRequest is a partial update: nil fields are left alone.
type UpdateSettingsRequest struct {
	IsVotingOpen       *bool `json:"is_voting_open"`
	AreMatchesRevealed *bool `json:"are_matches_revealed"`
}
