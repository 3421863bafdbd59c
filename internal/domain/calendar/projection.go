// Package calendar proyecta protocolos y eventos a las entradas que dibuja
// el widget de calendario. Project es una función pura de (protocols, events):
// el view layer la invoca en cada render, sin cache intermedio, así el
// calendario nunca queda desincronizado de los datos.
package calendar

import (
	"fmt"
	"strconv"
	"time"

	"microdose-web/internal/domain/protocols"
	"microdose-web/internal/platform/logger"
)

// Project emite:
//   - un Item de rango por cada protocolo active/paused, cubriendo
//     [startDate, endDate);
//   - un Item puntual por cada evento, cubriendo [date, date+1d).
//
// Todos los bordes se normalizan a medianoche local para que la componente
// horaria de los timestamps no corra las entradas un día.
//
// Un evento cuyo protocolo no aparece en ps degrada a placeholders
// Unknown/unknown; jamás falla el render por eso.
func Project(ps []protocols.Protocol, evs []protocols.Event, log logger.Logger) []Item {
	if log == nil {
		log = logger.Nop()
	}

	byID := make(map[string]protocols.Protocol, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}

	items := make([]Item, 0, len(ps)+len(evs))

	for _, p := range ps {
		if p.Status != protocols.StatusActive && p.Status != protocols.StatusPaused {
			continue
		}
		start := atMidnight(p.StartDate)
		end := atMidnight(p.EndDate)

		items = append(items, Item{
			ID:           "protocol-" + p.ID,
			Kind:         KindRange,
			Title:        p.Name,
			Start:        start,
			End:          end,
			AllDay:       true,
			Background:   true,
			Color:        RangeColor(p.Type),
			ProtocolID:   p.ID,
			ProtocolName: p.Name,
			ProtocolType: p.Type,
			Href:         "/protocols/" + p.ID,
		})
	}

	for _, e := range evs {
		day := atMidnight(e.Date)

		item := Item{
			ID:          "event-" + e.ID,
			Kind:        KindPoint,
			Title:       eventTitle(e),
			Start:       day,
			End:         day.AddDate(0, 0, 1),
			AllDay:      true,
			Color:       PointColor(e.Type, e.Status),
			EventID:     e.ID,
			EventType:   e.Type,
			EventStatus: e.Status,
			Href:        "/daily/" + DayKey(day),
		}

		if p, ok := byID[e.ProtocolID]; ok {
			item.ProtocolID = p.ID
			item.ProtocolName = p.Name
			item.ProtocolType = p.Type
		} else {
			// referencia rota: mostramos placeholders en vez de romper el
			// render, pero lo dejamos registrado
			log.Debug("event references unknown protocol", map[string]any{
				"event_id":    e.ID,
				"protocol_id": e.ProtocolID,
			})
			item.ProtocolID = string(UnknownProtocolType)
			item.ProtocolName = UnknownProtocolName
			item.ProtocolType = UnknownProtocolType
		}

		items = append(items, item)
	}

	return items
}

// DayKey formatea la fecha como YYYY-MM-DD usando componentes locales,
// no UTC: convertir primero correría el día en zonas negativas.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// atMidnight trunca al inicio del día calendario en la zona del timestamp.
func atMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func eventTitle(e protocols.Event) string {
	if e.Type == protocols.EventPause {
		return "Pause day"
	}
	if e.Substance == "" && e.Dose == 0 {
		return "Dose day"
	}
	return fmt.Sprintf("%s %s %s", formatDose(e.Dose), e.DoseUnit, e.Substance)
}

// formatDose imprime la dosis sin ceros de cola ("1", "0.5", "12.5").
func formatDose(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
