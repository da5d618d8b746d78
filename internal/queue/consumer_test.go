package queue

import (
	"testing"
	"time"

	"github.com/hotelero/reservas/internal/model"
)

func TestFormatEventLine(t *testing.T) {
	evt := NewReservaCreadaEvent(model.Reservation{
		ID:           7,
		Cliente:      "Juan Santacruz",
		Habitacion:   202,
		FechaEntrada: time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC),
		FechaSalida:  time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC),
		Total:        35,
		CreadoEn:     time.Date(2025, 11, 1, 10, 30, 0, 0, time.UTC),
	})
	if evt.EventID == "" {
		t.Fatal("event id not assigned")
	}
	if evt.CreadoEn != "2025-11-01T10:30:00Z" {
		t.Fatalf("creado_en = %q", evt.CreadoEn)
	}

	evt.EventID = "evt-1" // pin for deterministic output
	receivedAt := time.Date(2025, 11, 1, 10, 30, 5, 0, time.UTC)
	got := FormatEventLine(evt, receivedAt)
	want := `2025-11-01T10:30:05Z reserva=7 habitacion=202 cliente="Juan Santacruz" 2025-11-18..2025-11-23 total=35.00 event=evt-1`
	if got != want {
		t.Fatalf("log line mismatch:\n got %s\nwant %s", got, want)
	}
}
