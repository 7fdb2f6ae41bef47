package dto

import "github.com/scanmatch/backend/internal/models"

// MatchAuditEntry is one row of the admin match explorer: a counterpart
// profile and the like relation between it and the inspected profile.
type MatchAuditEntry struct {
	Profile     models.Profile `json:"profile"`
	ILikedThem  bool           `json:"iLikedThem"`
	TheyLikedMe bool           `json:"theyLikedMe"`
	IsMutual    bool           `json:"isMutual"`
}

type StatsResponse struct {
	Profiles      int64 `json:"profiles"`
	Connections   int64 `json:"connections"`
	Likes         int64 `json:"likes"`
	MutualMatches int64 `json:"mutual_matches"`
}
