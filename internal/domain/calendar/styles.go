package calendar

import "microdose-web/internal/domain/protocols"

// Paleta fija por tipo de protocolo (franjas de fondo).
var rangeColors = map[protocols.Type]string{
	protocols.TypeFadiman: "#8b5cf6",
	protocols.TypeStamets: "#0ea5e9",
	protocols.TypeCustom:  "#f59e0b",
	protocols.TypeOther:   "#64748b",
}

const defaultRangeColor = "#64748b"

type pointKey struct {
	Type   protocols.EventType
	Status protocols.EventStatus
}

// Colores por (tipo, estado) de evento. Combinaciones no reconocidas caen
// en defaultPointColor.
var pointColors = map[pointKey]string{
	{protocols.EventDose, protocols.EventScheduled}: "#3b82f6",
	{protocols.EventDose, protocols.EventCompleted}: "#10b981",
	{protocols.EventDose, protocols.EventMissed}:    "#ef4444",
	{protocols.EventDose, protocols.EventSkipped}:   "#9ca3af",

	{protocols.EventPause, protocols.EventScheduled}: "#cbd5e1",
	{protocols.EventPause, protocols.EventCompleted}: "#94a3b8",
}

const defaultPointColor = "#9ca3af"

// RangeColor resuelve el color de la franja de un protocolo.
func RangeColor(t protocols.Type) string {
	if c, ok := rangeColors[t]; ok {
		return c
	}
	return defaultRangeColor
}

// PointColor resuelve el color de un evento puntual.
func PointColor(et protocols.EventType, st protocols.EventStatus) string {
	if c, ok := pointColors[pointKey{et, st}]; ok {
		return c
	}
	return defaultPointColor
}
