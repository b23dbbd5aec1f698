package ports

import (
	"context"
	"time"
)

// Event names published by the order lifecycle.
const (
	EventOrderCreated          = "orderCreated"
	EventOrderStatusChanged    = "orderStatusChanged"
	EventOrderCancelled        = "orderCancelled"
	EventDeliveryStatusChanged = "deliveryStatusChanged"
	EventOrderDelivered        = "orderDelivered"
	EventLowStock              = "lowStock"
)

// Room for events that are not scoped to a single order.
const RoomBroadcast = "broadcast"

// Event is a notification about an order lifecycle change. Room scopes the
// event to the subscribers of one order, keyed by its tracking identifier.
type Event struct {
	Name string         `json:"event"`
	Room string         `json:"room"`
	At   time.Time      `json:"at"`
	Data map[string]any `json:"data"`
}

// Notifier publishes lifecycle events. Delivery is at most once and must
// never block the caller: a slow or absent consumer loses events rather than
// stalling a request. Handlers publish after commit and treat failures as
// log-and-continue.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

// EventSource is the subscriber side of the in-process notifier, used by the
// live event stream endpoint. Cancel the returned function to unsubscribe.
type EventSource interface {
	Subscribe(room string) (<-chan Event, func())
}

// Alerter delivers operational alerts, such as low stock warnings, outside
// the request path.
type Alerter interface {
	Alert(ctx context.Context, subject, body string) error
}
