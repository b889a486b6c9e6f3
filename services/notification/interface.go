package notification

import (
	"context"

	"campushire/models"
)

// Channel is the live push connection for one subscriber. The transport layer
// owns the underlying socket; the registry only routes to it.
type Channel interface {
	Push(n *models.Notification) error
}

// PersistHook receives every dispatched record. It is called fire-and-forget:
// delivery never depends on its success. Wire it to the notification
// repository for a durable history, or leave the no-op default.
type PersistHook interface {
	Persist(ctx context.Context, n *models.Notification) error
}

// NopPersistHook discards records.
type NopPersistHook struct{}

func (NopPersistHook) Persist(ctx context.Context, n *models.Notification) error { return nil }

// NotificationService is the inbound contract producers use for best-effort
// live delivery. Delivery to an offline subscriber is queued in memory and
// flushed on reconnect; nothing here guarantees delivery across restarts.
type NotificationService interface {
	Send(ctx context.Context, subscriberID string, input models.NotificationInput)
	SendBulk(ctx context.Context, subscriberIDs []string, input models.NotificationInput)
	Register(subscriberID string, ch Channel)
	Release(subscriberID string, ch Channel)
	FlushPending(subscriberID string)
}
