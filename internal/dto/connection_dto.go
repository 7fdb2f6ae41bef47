package dto

import (
	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/models"
)

type ScanRequest struct {
	ScannedID string `json:"scanned_id"`
}

type ScanResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

// ConnectionEntry is one row of the connections list: the counterpart
// profile plus the viewer-dependent like booleans.
type ConnectionEntry struct {
	ID            uuid.UUID      `json:"id"`
	User          models.Profile `json:"user"`
	ILikedThem    bool           `json:"iLikedThem"`
	TheyLikedMe   bool           `json:"theyLikedMe"`
	IsMutualMatch bool           `json:"isMutualMatch"`
}

type ConnectionsResponse struct {
	Connections []ConnectionEntry `json:"connections"`
	ProfileID   uuid.UUID         `json:"profileId"`
}

type LikeRequest struct {
	LikedID string `json:"liked_id"`
}
