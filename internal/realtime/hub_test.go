package realtime_test

import (
	"testing"
	"time"

	"github.com/scanmatch/backend/internal/models"
	"github.com/scanmatch/backend/internal/realtime"
	"github.com/stretchr/testify/assert"
)

func TestHubFansOutToAllSubscribers(t *testing.T) {
	hub := realtime.NewHub()

	first := hub.Subscribe()
	second := hub.Subscribe()
	assert.Equal(t, 2, hub.Subscribers())

	hub.Publish(models.Settings{ID: models.SettingsID, IsVotingOpen: true})

	for _, sub := range []chan models.Settings{first, second} {
		select {
		case settings := <-sub:
			assert.True(t, settings.IsVotingOpen)
		case <-time.After(time.Second):
			t.Fatal("subscriber never received the update")
		}
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := realtime.NewHub()

	sub := hub.Subscribe()
	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.Subscribers())

	_, open := <-sub
	assert.False(t, open)

	// double unsubscribe must not panic on the closed channel
	hub.Unsubscribe(sub)
}

func TestHubDropsUpdatesForSlowSubscriber(t *testing.T) {
	hub := realtime.NewHub()

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	// overflow the buffer; publishes past capacity are dropped, not blocked
	for i := 0; i < 10; i++ {
		hub.Publish(models.Settings{ID: models.SettingsID, IsVotingOpen: i%2 == 0})
	}

	received := 0
	for {
		select {
		case <-sub:
			received++
		default:
			assert.Equal(t, cap(sub), received)
			return
		}
	}
}
