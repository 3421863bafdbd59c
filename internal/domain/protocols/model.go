package protocols

import "time"

// Protocol es la copia efímera del protocolo que devuelve el backend.
// Desde esta UI se crea y se borra; nunca se edita.
type Protocol struct {
	ID   string
	Name string
	Type Type

	Status Status

	StartDate time.Time
	EndDate   time.Time

	// Largo del ciclo en días (p.ej. fadiman = 3: 1 dosis + 2 descanso).
	CycleLength int

	NotifyEnabled bool

	CreatedAt time.Time
}

// Event es una ocurrencia programada dentro de un protocolo. El backend las
// genera al crear el protocolo y evalúa sus estados.
type Event struct {
	ID         string
	ProtocolID string

	Date time.Time

	Type   EventType
	Status EventStatus

	// Solo para eventos de dosis.
	Substance string
	Dose      float64
	DoseUnit  string
}
