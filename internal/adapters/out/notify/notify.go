// Package notify provides the notifier plumbing between command handlers and
// the delivery channels: fan-out over multiple sinks, cache invalidation on
// lifecycle events, and the log-backed replenishment alerter.
package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
)

// Multi fans one Publish out to several notifiers. Sink errors are joined
// and returned, but publishers treat them as fire-and-forget.
type Multi struct {
	sinks []ports.Notifier
}

// NewMulti creates a fan-out notifier over the given sinks.
func NewMulti(sinks ...ports.Notifier) *Multi {
	return &Multi{sinks: sinks}
}

// Publish delivers the event to every sink. A failing sink does not stop the
// others.
func (m *Multi) Publish(ctx context.Context, event ports.Event) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// CacheInvalidator drops the cached tracking projection before forwarding a
// lifecycle event, so the next tracking lookup reads the new state.
type CacheInvalidator struct {
	cache ports.TrackingCache
	next  ports.Notifier
}

// NewCacheInvalidator wraps next with tracking cache invalidation.
func NewCacheInvalidator(cache ports.TrackingCache, next ports.Notifier) *CacheInvalidator {
	return &CacheInvalidator{cache: cache, next: next}
}

// Publish invalidates the event's room and forwards the event. Invalidation
// failures are forwarded anyway: the cache TTL bounds the staleness.
func (n *CacheInvalidator) Publish(ctx context.Context, event ports.Event) error {
	if event.Room != "" && event.Room != ports.RoomBroadcast {
		_ = n.cache.Invalidate(ctx, event.Room)
	}

	return n.next.Publish(ctx, event)
}

// LogAlerter writes replenishment alerts to the structured log. It stands in
// for an email or chat integration.
type LogAlerter struct {
	logger *slog.Logger
}

// NewLogAlerter creates an alerter over the given logger.
func NewLogAlerter(logger *slog.Logger) *LogAlerter {
	return &LogAlerter{logger: logger.With("component", "stock_alerter")}
}

// Alert logs the alert. It never fails.
func (a *LogAlerter) Alert(ctx context.Context, subject, body string) error {
	a.logger.WarnContext(ctx, "Stock alert", "subject", subject, "body", body)
	return nil
}
