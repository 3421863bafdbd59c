package profile

import "time"

// DosingProfile es el resultado que deja el calculador de dosis. La UI lo
// recibe por el callback de completado y lo guarda en el backend tal cual.
type DosingProfile struct {
	Substance   string
	BodyWeight  float64 // kg
	Sensitivity string  // low / medium / high, lo define el calculador
	Dose        float64
	DoseUnit    string

	UpdatedAt time.Time
}

// Activity es una entrada del historial de actividad del usuario.
type Activity struct {
	ID          string
	Kind        string
	Description string
	OccurredAt  time.Time
}
