package notifications

import "time"

// NotificationType: qué clase de aviso programó el backend.
// @Enum reminder, reflection, assessment
type NotificationType string

const (
	TypeReminder   NotificationType = "reminder"
	TypeReflection NotificationType = "reflection"
	TypeAssessment NotificationType = "assessment"
)

// Status lo maneja el backend; acá solo se muestra y se marca "sent".
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

type Notification struct {
	ID   string
	Type NotificationType

	Status      Status
	ScheduledAt time.Time
	Message     string
}
