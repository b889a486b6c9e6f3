package notificationRepo

import "campushire/models"

// NotificationRepository persists delivered and queued notification records so
// the frontend can seed its state before the live channel takes over.
type NotificationRepository interface {
	Insert(n *models.Notification) error
	GetBySubscriber(subscriberID string, limit int64) ([]models.Notification, error)
	MarkRead(id string) error
}
