package analytics

// Las series vienen calculadas del backend; esta UI solo elige la ventana
// (en días) y dibuja.

type JournalStats struct {
	Days int

	Entries   int
	AvgMood   float64
	AvgEnergy float64
	AvgFocus  float64

	// Serie diaria para el gráfico; puede venir vacía.
	Daily []JournalDay
}

type JournalDay struct {
	Date    string // YYYY-MM-DD
	Entries int
	Mood    float64
}

type AdherenceStats struct {
	Days int

	Scheduled int
	Completed int
	Missed    int
	Skipped   int

	// Rate = Completed / Scheduled, ya calculado server-side.
	Rate float64
}
