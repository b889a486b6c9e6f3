package notification

import (
	"context"
	"sync"
	"time"

	"campushire/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPendingLimit caps the in-memory queue per offline subscriber. Oldest
// records are evicted first once the cap is hit.
const DefaultPendingLimit = 100

// DefaultDispatcher is the production NotificationService. It attempts
// immediate delivery through the registry and falls back to a per-subscriber
// FIFO pending queue. One instance is constructed at startup and shared by
// the transport layer and all producers.
type DefaultDispatcher struct {
	registry *Registry
	store    PersistHook
	logger   *zap.Logger
	limit    int

	mu      sync.Mutex
	pending map[string][]*models.Notification
}

// NewDefaultDispatcher builds a dispatcher. A nil store disables persistence;
// limit <= 0 selects DefaultPendingLimit.
func NewDefaultDispatcher(registry *Registry, store PersistHook, logger *zap.Logger, limit int) *DefaultDispatcher {
	if store == nil {
		store = NopPersistHook{}
	}
	if limit <= 0 {
		limit = DefaultPendingLimit
	}
	return &DefaultDispatcher{
		registry: registry,
		store:    store,
		logger:   logger,
		limit:    limit,
		pending:  make(map[string][]*models.Notification),
	}
}

// Send builds a notification record and delivers it to subscriberID if a live
// channel exists, queueing it otherwise. Transmission errors are treated as
// "channel now dead": the record is queued, never dropped, and no error is
// surfaced to the producer.
func (d *DefaultDispatcher) Send(ctx context.Context, subscriberID string, input models.NotificationInput) {
	if subscriberID == "" {
		d.logger.Warn("Dropping notification without subscriber id",
			zap.String("title", input.Title))
		return
	}

	rec := d.buildRecord(subscriberID, input)

	if err := d.store.Persist(ctx, rec); err != nil {
		// Fire-and-forget: live delivery does not depend on the history store.
		d.logger.Warn("Failed to persist notification",
			zap.String("id", rec.ID), zap.Error(err))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.deliverOrQueue(subscriberID, rec)
}

// SendBulk applies Send independently to each id. A failure for one
// subscriber never aborts delivery to the others.
func (d *DefaultDispatcher) SendBulk(ctx context.Context, subscriberIDs []string, input models.NotificationInput) {
	for _, id := range subscriberIDs {
		d.Send(ctx, id, input)
	}
}

// Register maps subscriberID to ch and flushes its pending queue.
func (d *DefaultDispatcher) Register(subscriberID string, ch Channel) {
	d.registry.Register(subscriberID, ch)
	d.FlushPending(subscriberID)
}

// Release drops the mapping for subscriberID if it still points at ch.
// Queued-but-undelivered records are retained for the next reconnect.
func (d *DefaultDispatcher) Release(subscriberID string, ch Channel) {
	d.registry.Release(subscriberID, ch)
}

// FlushPending delivers every queued record for subscriberID in enqueue order,
// then empties the queue. If a push fails mid-flush the remaining records stay
// queued for the next reconnect. The queue lock is held for the whole flush,
// so a concurrent Send either runs before or after it, never inside.
func (d *DefaultDispatcher) FlushPending(subscriberID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	queue := d.pending[subscriberID]
	if len(queue) == 0 {
		return
	}

	ch, ok := d.registry.Lookup(subscriberID)
	if !ok {
		return
	}

	for i, rec := range queue {
		if err := ch.Push(rec); err != nil {
			d.logger.Warn("Flush interrupted, retaining undelivered notifications",
				zap.String("subscriberId", subscriberID),
				zap.Int("remaining", len(queue)-i),
				zap.Error(err))
			d.registry.Release(subscriberID, ch)
			d.pending[subscriberID] = queue[i:]
			return
		}
	}

	delete(d.pending, subscriberID)
	d.logger.Debug("Flushed pending notifications",
		zap.String("subscriberId", subscriberID), zap.Int("count", len(queue)))
}

// PendingCount reports the queued backlog for a subscriber.
func (d *DefaultDispatcher) PendingCount(subscriberID string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending[subscriberID])
}

// deliverOrQueue must be called with d.mu held.
func (d *DefaultDispatcher) deliverOrQueue(subscriberID string, rec *models.Notification) {
	if ch, ok := d.registry.Lookup(subscriberID); ok {
		err := ch.Push(rec)
		if err == nil {
			return
		}
		d.logger.Warn("Live delivery failed, queueing notification",
			zap.String("subscriberId", subscriberID), zap.Error(err))
		d.registry.Release(subscriberID, ch)
	}

	queue := append(d.pending[subscriberID], rec)
	if len(queue) > d.limit {
		dropped := len(queue) - d.limit
		queue = queue[dropped:]
		d.logger.Warn("Pending queue over limit, evicting oldest",
			zap.String("subscriberId", subscriberID), zap.Int("evicted", dropped))
	}
	d.pending[subscriberID] = queue
}

func (d *DefaultDispatcher) buildRecord(subscriberID string, input models.NotificationInput) *models.Notification {
	return &models.Notification{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		Type:         models.NormalizeNotificationType(input.Type),
		Title:        input.Title,
		Body:         input.Body,
		Priority:     models.NormalizeNotificationPriority(input.Priority),
		Data:         input.Data,
		CreatedAt:    time.Now().UTC(),
	}
}
