package services_test

import (
	"testing"

	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestFeedbackOncePerProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewFeedbackService(db)

	a := createProfile(t, db, "alice")

	exists, err := svc.Exists(a.ID)
	assert.NoError(t, err)
	assert.False(t, exists)

	req := &dto.FeedbackRequest{Rating: 4, LikedEvent: true, WantMore: true, Comments: "great night"}
	assert.NoError(t, svc.Submit(*a.UserID, a.ID, req))

	exists, err = svc.Exists(a.ID)
	assert.NoError(t, err)
	assert.True(t, exists)

	err = svc.Submit(*a.UserID, a.ID, req)
	assert.ErrorIs(t, err, services.ErrFeedbackExists)
}

func TestFeedbackRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewFeedbackService(db)

	a := createProfile(t, db, "alice")

	for _, rating := range []int{0, 6, -1} {
		err := svc.Submit(*a.UserID, a.ID, &dto.FeedbackRequest{Rating: rating})
		assert.ErrorIs(t, err, services.ErrInvalidRating)
	}

	assert.NoError(t, svc.Submit(*a.UserID, a.ID, &dto.FeedbackRequest{Rating: 1}))
}
