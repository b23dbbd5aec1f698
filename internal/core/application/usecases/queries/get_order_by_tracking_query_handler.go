package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByTrackingQueryHandler serves the tracking projection, consulting
// the cache before the database. Cache failures fall through to the database
// and never surface to the caller; cache writes are best-effort.
//
// Example:
//
//	handler := NewGetOrderByTrackingQueryHandler(db, cache)
//	query, _ := NewGetOrderByTrackingQuery(trackingID)
//
//	projection, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to track order: %v", err)
//	    return err
//	}
type GetOrderByTrackingQueryHandler struct {
	db    *gorm.DB
	cache ports.TrackingCache
}

// NewGetOrderByTrackingQueryHandler creates a handler for tracking queries.
// The cache may be nil, in which case every lookup hits the database.
func NewGetOrderByTrackingQueryHandler(db *gorm.DB,
	cache ports.TrackingCache) GetOrderByTrackingQueryHandler {
	return GetOrderByTrackingQueryHandler{db: db, cache: cache}
}

// Handle resolves the tracking identifier to its public projection.
// Returns an ObjectNotFoundError when no order carries the identifier.
func (h GetOrderByTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTrackingQuery,
) (GetOrderByTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByTrackingQueryResponse{}, err
	}

	if cached, ok := h.fromCache(ctx, query.TrackingID()); ok {
		return cached, nil
	}

	var resp GetOrderByTrackingQueryResponse
	var status int
	var deliveryStatus sql.NullInt64
	var deliveryLocation sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.tracking_id,
			o.status,
			o.qr_code_payload,
			d.status,
			d.location
		FROM orders o
		LEFT JOIN deliveries d ON d.order_id = o.id
		WHERE o.tracking_id = ?
	`, query.TrackingID()).Row()

	err := row.Scan(
		&resp.OrderID,
		&resp.TrackingID,
		&status,
		&resp.QRCodePayload,
		&deliveryStatus,
		&deliveryLocation,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderByTrackingQueryResponse{},
				errs.NewObjectNotFoundError("order", query.TrackingID())
		}
		return GetOrderByTrackingQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()
	if deliveryStatus.Valid {
		resp.DeliveryStatus = delivery.Status(deliveryStatus.Int64).String()
	}
	if deliveryLocation.Valid {
		resp.DeliveryLocation = deliveryLocation.String
	}

	h.toCache(ctx, query.TrackingID(), resp)
	return resp, nil
}

func (h GetOrderByTrackingQueryHandler) fromCache(ctx context.Context,
	trackingID string) (GetOrderByTrackingQueryResponse, bool) {
	if h.cache == nil {
		return GetOrderByTrackingQueryResponse{}, false
	}

	payload, ok, err := h.cache.Get(ctx, trackingID)
	if err != nil || !ok {
		return GetOrderByTrackingQueryResponse{}, false
	}

	var resp GetOrderByTrackingQueryResponse
	if err = json.Unmarshal(payload, &resp); err != nil {
		return GetOrderByTrackingQueryResponse{}, false
	}
	return resp, true
}

func (h GetOrderByTrackingQueryHandler) toCache(ctx context.Context,
	trackingID string, resp GetOrderByTrackingQueryResponse) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = h.cache.Set(ctx, trackingID, payload)
}
