package realtime

import (
	"sync"

	"github.com/scanmatch/backend/internal/models"
)

// Hub fans out settings updates to subscribed clients. There is a
// single logical topic (the settings singleton); every publish carries
// the full row, never a delta.
//
// Delivery is best-effort: a subscriber whose buffer is full misses the
// intermediate update and gets the next one. Reconnecting clients are
// expected to re-fetch current settings once before listening again.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan models.Settings]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan models.Settings]struct{})}
}

// Subscribe registers a new listener. The returned channel is closed by
// Unsubscribe.
func (h *Hub) Subscribe() chan models.Settings {
	ch := make(chan models.Settings, 4)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan models.Settings) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish pushes the new settings row to every subscriber.
func (h *Hub) Publish(settings models.Settings) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- settings:
		default:
			// slow subscriber, skip; it will catch the next update
		}
	}
}

// Subscribers reports the current listener count.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
