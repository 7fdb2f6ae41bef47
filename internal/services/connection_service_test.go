package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/models"
	"github.com/scanmatch/backend/internal/realtime"
	"github.com/scanmatch/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newConnectionService(db *gorm.DB) (*services.ConnectionService, *services.SettingsService) {
	settings := services.NewSettingsService(db, realtime.NewHub())
	return services.NewConnectionService(db, settings), settings
}

func TestScanCreatesBothEdges(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newConnectionService(db)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	name, err := svc.Scan(a.ID, b.ID)
	assert.NoError(t, err)
	assert.Equal(t, "bob", name)

	var forward, reverse int64
	db.Model(&models.Connection{}).Where("scanner_id = ? AND scanned_id = ?", a.ID, b.ID).Count(&forward)
	db.Model(&models.Connection{}).Where("scanner_id = ? AND scanned_id = ?", b.ID, a.ID).Count(&reverse)
	assert.Equal(t, int64(1), forward)
	assert.Equal(t, int64(1), reverse)
}

func TestScanSelfRejected(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newConnectionService(db)

	a := createProfile(t, db, "alice")

	_, err := svc.Scan(a.ID, a.ID)
	assert.ErrorIs(t, err, services.ErrSelfScan)

	var count int64
	db.Model(&models.Connection{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestScanUnknownProfile(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newConnectionService(db)

	a := createProfile(t, db, "alice")

	_, err := svc.Scan(a.ID, uuid.New())
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestRescanIsAlreadyConnected(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newConnectionService(db)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	_, err := svc.Scan(a.ID, b.ID)
	assert.NoError(t, err)

	_, err = svc.Scan(a.ID, b.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyConnected)

	// b scanning a back is also a duplicate: the reverse edge already exists
	_, err = svc.Scan(b.ID, a.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyConnected)

	var count int64
	db.Model(&models.Connection{}).Where("scanner_id = ? AND scanned_id = ?", a.ID, b.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestListDerivesLikeBooleans(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newConnectionService(db)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	_, err := svc.Scan(a.ID, b.ID)
	assert.NoError(t, err)
	setMatchesRevealed(t, db, true)

	cases := []struct {
		name        string
		aLikesB     bool
		bLikesA     bool
		wantILiked  bool
		wantTheyDid bool
		wantMutual  bool
	}{
		{"no likes", false, false, false, false, false},
		{"only mine", true, false, true, false, false},
		{"only theirs", false, true, false, true, false},
		{"mutual", true, true, true, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db.Where("1 = 1").Delete(&models.Like{})
			if tc.aLikesB {
				assert.NoError(t, db.Create(&models.Like{LikerID: a.ID, LikedID: b.ID}).Error)
			}
			if tc.bLikesA {
				assert.NoError(t, db.Create(&models.Like{LikerID: b.ID, LikedID: a.ID}).Error)
			}

			entries, err := svc.List(a.ID)
			assert.NoError(t, err)
			assert.Len(t, entries, 1)
			assert.Equal(t, b.ID, entries[0].User.ID)
			assert.Equal(t, tc.wantILiked, entries[0].ILikedThem)
			assert.Equal(t, tc.wantTheyDid, entries[0].TheyLikedMe)
			assert.Equal(t, tc.wantMutual, entries[0].IsMutualMatch)
		})
	}
}

func TestIncomingLikesHiddenBeforeReveal(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newConnectionService(db)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	_, err := svc.Scan(a.ID, b.ID)
	assert.NoError(t, err)
	assert.NoError(t, db.Create(&models.Like{LikerID: b.ID, LikedID: a.ID}).Error)

	entries, err := svc.List(a.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.False(t, entries[0].TheyLikedMe, "incoming likes must stay hidden before reveal")
	assert.False(t, entries[0].IsMutualMatch)

	setMatchesRevealed(t, db, true)

	entries, err = svc.List(a.ID)
	assert.NoError(t, err)
	assert.True(t, entries[0].TheyLikedMe)
}

func TestEndToEndScenario(t *testing.T) {
	db := setupTestDB(t)
	connSvc, settingsSvc := newConnectionService(db)
	likeSvc := services.NewLikeService(db, settingsSvc, nil)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")
	admin := createProfile(t, db, "staff")

	// a scans b: both edges exist, no likes yet
	_, err := connSvc.Scan(a.ID, b.ID)
	assert.NoError(t, err)

	entries, err := connSvc.List(a.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.False(t, entries[0].ILikedThem)
	assert.False(t, entries[0].TheyLikedMe)

	// admin opens voting, both like each other
	open := true
	_, err = settingsSvc.Update(admin.ID, &dto.UpdateSettingsRequest{IsVotingOpen: &open})
	assert.NoError(t, err)

	assert.NoError(t, likeSvc.Like(a.ID, b.ID))

	entries, err = connSvc.List(a.ID)
	assert.NoError(t, err)
	assert.True(t, entries[0].ILikedThem)
	assert.False(t, entries[0].IsMutualMatch)

	assert.NoError(t, likeSvc.Like(b.ID, a.ID))

	// reveal: both sides now see the mutual match
	revealed := true
	_, err = settingsSvc.Update(admin.ID, &dto.UpdateSettingsRequest{AreMatchesRevealed: &revealed})
	assert.NoError(t, err)

	for _, viewer := range []uuid.UUID{a.ID, b.ID} {
		entries, err = connSvc.List(viewer)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.True(t, entries[0].IsMutualMatch)
		assert.NotEmpty(t, entries[0].User.InstagramHandle)
	}
}
