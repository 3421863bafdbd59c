package view

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"microdose-web/internal/platform/logger"
)

// view no debe depender de paquetes de dominio: el daykey del FuncMap se
// formatea acá y tiene que coincidir con el formato de las rutas /daily.
func TestDayKeyFuncZeroPads(t *testing.T) {
	daykey, ok := funcs["daykey"].(func(time.Time) string)
	if !ok {
		t.Fatal("daykey func missing from FuncMap")
	}

	got := daykey(time.Date(2024, 1, 5, 23, 30, 0, 0, time.Local))
	if got != "2024-01-05" {
		t.Errorf("daykey = %q, esperaba 2024-01-05", got)
	}
}

func TestNewParsesAndRendersPages(t *testing.T) {
	rnd, err := New(logger.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	rnd.Render(rec, 200, "landing", Data{Title: "Home"})

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Microdose Tracker") {
		t.Errorf("landing sin layout: %q", body[:min(120, len(body))])
	}
}
