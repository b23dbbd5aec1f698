// Package eventhub provides the in-process event hub backing the live
// tracking stream. Delivery is at-most-once: a subscriber that cannot keep up
// loses events rather than slowing publishers down.
package eventhub

import (
	"context"
	"sync"

	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
)

const subscriberBuffer = 16

// Hub is a single-process publish/subscribe hub keyed by room. Orders use
// their tracking identifier as the room; RoomBroadcast reaches every
// subscriber regardless of room.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string][]chan ports.Event
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string][]chan ports.Event),
	}
}

// Publish delivers the event to the subscribers of its room and to the
// broadcast room. It never blocks: a full subscriber channel drops the event
// for that subscriber only.
func (h *Hub) Publish(_ context.Context, event ports.Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	h.deliver(h.rooms[event.Room], event)
	if event.Room != ports.RoomBroadcast {
		h.deliver(h.rooms[ports.RoomBroadcast], event)
	}

	return nil
}

func (h *Hub) deliver(subscribers []chan ports.Event, event ports.Event) {
	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers a subscriber on a room and returns its event channel
// with a cancel function. The channel is closed when the cancel function runs
// or the hub shuts down.
func (h *Hub) Subscribe(room string) (<-chan ports.Event, func()) {
	ch := make(chan ports.Event, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return ch, func() {}
	}

	h.rooms[room] = append(h.rooms[room], ch)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.remove(room, ch)
		})
	}

	return ch, cancel
}

func (h *Hub) remove(room string, ch chan ports.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers := h.rooms[room]
	for i, subscriber := range subscribers {
		if subscriber == ch {
			h.rooms[room] = append(subscribers[:i], subscribers[i+1:]...)
			close(ch)
			break
		}
	}

	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
}

// Close shuts the hub down and closes every subscriber channel. Publishes
// after Close are discarded.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for room, subscribers := range h.rooms {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(h.rooms, room)
	}
}
