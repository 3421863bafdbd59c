package calendar

import (
	"time"

	"microdose-web/internal/domain/protocols"
)

// Kind distingue los dos tipos de entrada que entiende el widget.
type Kind string

const (
	// KindRange: franja de fondo que cubre el período activo de un protocolo.
	KindRange Kind = "range"
	// KindPoint: bloque de día completo para un evento puntual.
	KindPoint Kind = "point"
)

// Placeholders cuando un evento referencia un protocolo que no está en la
// lista. Comportamiento degradado definido, no un error (ver Project).
const (
	UnknownProtocolName = "Unknown"
	UnknownProtocolType = protocols.Type("unknown")
)

// Item es la proyección efímera que consume el widget de calendario.
// Se recalcula en cada render a partir de (protocols, events); nunca se
// persiste ni se cachea entre renders.
type Item struct {
	ID    string    `json:"id"`
	Kind  Kind      `json:"kind"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	AllDay     bool   `json:"allDay"`
	Background bool   `json:"background"` // true solo para ranges
	Color      string `json:"color"`

	// Trazabilidad hacia la fuente: todo Item referencia exactamente un
	// Protocol (range) o un Event (point).
	ProtocolID   string         `json:"protocolId"`
	ProtocolName string         `json:"protocolName"`
	ProtocolType protocols.Type `json:"protocolType"`

	EventID     string                `json:"eventId,omitempty"`
	EventType   protocols.EventType   `json:"eventType,omitempty"`
	EventStatus protocols.EventStatus `json:"eventStatus,omitempty"`

	// Destino del click: detalle del protocolo (range) o vista diaria (point).
	Href string `json:"href"`
}
