package protocols

// Type define las plantillas de esquema de dosificación soportadas.
// @Enum fadiman, stamets, custom, other
type Type string

const (
	TypeFadiman Type = "fadiman"
	TypeStamets Type = "stamets"
	TypeCustom  Type = "custom"
	TypeOther   Type = "other"
)

// Status del protocolo.
// @Enum active, paused, completed
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// EventType distingue días de dosis de días de pausa.
type EventType string

const (
	EventDose  EventType = "dose"
	EventPause EventType = "pause"
)

// EventStatus lo evalúa el backend; acá solo se muestra.
type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventCompleted EventStatus = "completed"
	EventMissed    EventStatus = "missed"
	EventSkipped   EventStatus = "skipped"
)

func ValidType(t Type) bool {
	switch t {
	case TypeFadiman, TypeStamets, TypeCustom, TypeOther:
		return true
	}
	return false
}
