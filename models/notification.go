package models

import "time"

// NotificationType is a closed set of notification categories. Producers must
// pick one of these; anything else is normalized to NotificationTypeGeneral.
type NotificationType string

const (
	NotificationTypeJobMatch           NotificationType = "job_match"
	NotificationTypeSkillDevelopment   NotificationType = "skill_development"
	NotificationTypeAssessmentReminder NotificationType = "assessment_reminder"
	NotificationTypeApplicationUpdate  NotificationType = "application_update"
	NotificationTypePlacement          NotificationType = "placement"
	NotificationTypeAnnouncement       NotificationType = "announcement"
	NotificationTypeGeneral            NotificationType = "general"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeJobMatch, NotificationTypeSkillDevelopment,
		NotificationTypeAssessmentReminder, NotificationTypeApplicationUpdate,
		NotificationTypePlacement, NotificationTypeAnnouncement,
		NotificationTypeGeneral:
		return true
	}
	return false
}

// NormalizeNotificationType maps an arbitrary tag onto the closed enumeration.
func NormalizeNotificationType(s string) NotificationType {
	t := NotificationType(s)
	if t.Valid() {
		return t
	}
	return NotificationTypeGeneral
}

// NotificationPriority levels.
type NotificationPriority string

const (
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

// NormalizeNotificationPriority maps an arbitrary tag onto a known priority.
func NormalizeNotificationPriority(s string) NotificationPriority {
	switch NotificationPriority(s) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Notification is the record pushed over a live channel and persisted for the
// read-side history endpoints.
type Notification struct {
	ID           string               `json:"id" bson:"id"`
	SubscriberID string               `json:"subscriberId" bson:"subscriberId"`
	Type         NotificationType     `json:"type" bson:"type"`
	Title        string               `json:"title" bson:"title"`
	Body         string               `json:"body" bson:"body"`
	Priority     NotificationPriority `json:"priority" bson:"priority"`
	Data         map[string]any       `json:"data,omitempty" bson:"data,omitempty"`
	Read         bool                 `json:"read" bson:"read"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
}

// NotificationInput is what producers hand to the dispatcher.
type NotificationInput struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	Priority string         `json:"priority"`
	Data     map[string]any `json:"data,omitempty"`
}
