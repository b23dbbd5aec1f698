package redisx

import (
	"context"
	"encoding/json"

	"github.com/aryan26102004/Bill-Genius/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const eventChannelPrefix = "orders:"

// EventBackplane mirrors lifecycle events onto Redis pub/sub so dashboards in
// other processes can follow a room. Like the in-process hub, delivery is at
// most once: Redis pub/sub keeps no history for late subscribers.
type EventBackplane struct {
	client *redis.Client
}

func NewEventBackplane(client *redis.Client) *EventBackplane {
	return &EventBackplane{client: client}
}

// Publish sends the event to the room's channel. Subscribers listen on
// "orders:<room>".
func (b *EventBackplane) Publish(ctx context.Context, event ports.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, eventChannelPrefix+event.Room, payload).Err()
}
