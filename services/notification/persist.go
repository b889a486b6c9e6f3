package notification

import (
	"context"

	notificationRepo "campushire/database/repository/notification"
	"campushire/models"
)

// RepoPersistHook writes notification records through the Mongo repository so
// clients can load history over HTTP before (or instead of) a live socket.
type RepoPersistHook struct {
	Repo notificationRepo.NotificationRepository
}

func (h RepoPersistHook) Persist(ctx context.Context, n *models.Notification) error {
	return h.Repo.Insert(n)
}
