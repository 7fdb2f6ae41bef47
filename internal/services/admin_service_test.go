package services_test

import (
	"testing"

	"github.com/scanmatch/backend/internal/models"
	"github.com/scanmatch/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMatchAuditSeesBothDirections(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAdminService(db)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")
	c := createProfile(t, db, "carol")

	// a likes b, c likes a; reveal flag stays off on purpose
	assert.NoError(t, db.Create(&models.Like{LikerID: a.ID, LikedID: b.ID}).Error)
	assert.NoError(t, db.Create(&models.Like{LikerID: c.ID, LikedID: a.ID}).Error)

	entries, err := svc.MatchAudit(a.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	byName := map[string]bool{}
	for _, e := range entries {
		byName[e.Profile.Name] = true
		switch e.Profile.Name {
		case "bob":
			assert.True(t, e.ILikedThem)
			assert.False(t, e.TheyLikedMe)
			assert.False(t, e.IsMutual)
		case "carol":
			assert.False(t, e.ILikedThem)
			assert.True(t, e.TheyLikedMe)
			assert.False(t, e.IsMutual)
		}
	}
	assert.True(t, byName["bob"])
	assert.True(t, byName["carol"])
}

func TestMatchAuditMutualFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAdminService(db)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	assert.NoError(t, db.Create(&models.Like{LikerID: a.ID, LikedID: b.ID}).Error)
	assert.NoError(t, db.Create(&models.Like{LikerID: b.ID, LikedID: a.ID}).Error)

	entries, err := svc.MatchAudit(a.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.True(t, entries[0].IsMutual)
}

func TestStatsHalvesDirectedPairs(t *testing.T) {
	db := setupTestDB(t)
	connSvc, settingsSvc := newConnectionService(db)
	likeSvc := services.NewLikeService(db, settingsSvc, nil)
	svc := services.NewAdminService(db)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")
	c := createProfile(t, db, "carol")

	_, err := connSvc.Scan(a.ID, b.ID)
	assert.NoError(t, err)
	_, err = connSvc.Scan(a.ID, c.ID)
	assert.NoError(t, err)

	setVotingOpen(t, db, true)
	assert.NoError(t, likeSvc.Like(a.ID, b.ID))
	assert.NoError(t, likeSvc.Like(b.ID, a.ID))
	assert.NoError(t, likeSvc.Like(a.ID, c.ID))

	stats, err := svc.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.Profiles)
	assert.Equal(t, int64(2), stats.Connections)
	assert.Equal(t, int64(3), stats.Likes)
	assert.Equal(t, int64(1), stats.MutualMatches)
}
