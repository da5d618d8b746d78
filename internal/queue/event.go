// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelero/reservas/internal/model"
)

// QueueReservaCreada is the durable queue that receives one message per
// successfully created reservation.
const QueueReservaCreada = "reserva.creada"

// ReservaCreadaEvent is published when a reservation is created.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.  EventID is unique per message so
// consumers can deduplicate redeliveries.
type ReservaCreadaEvent struct {
	EventID      string  `json:"event_id"`
	ReservaID    uint64  `json:"reserva_id"`
	Cliente      string  `json:"cliente"`
	Habitacion   uint    `json:"habitacion"`
	FechaEntrada string  `json:"fecha_entrada"`
	FechaSalida  string  `json:"fecha_salida"`
	Total        float64 `json:"total"`
	CreadoEn     string  `json:"creado_en"`
}

// NewReservaCreadaEvent builds the event payload for a stored reservation.
func NewReservaCreadaEvent(r model.Reservation) ReservaCreadaEvent {
	return ReservaCreadaEvent{
		EventID:      uuid.NewString(),
		ReservaID:    r.ID,
		Cliente:      r.Cliente,
		Habitacion:   r.Habitacion,
		FechaEntrada: r.FechaEntrada.Format(model.DateLayout),
		FechaSalida:  r.FechaSalida.Format(model.DateLayout),
		Total:        r.Total,
		CreadoEn:     r.CreadoEn.UTC().Format(time.RFC3339),
	}
}
