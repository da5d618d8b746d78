package model

import "time"

// DateLayout is the wire format for reservation dates.  Times of day are
// not meaningful; dates are stored and compared as UTC midnights.
const DateLayout = "2006-01-02"

// Reservation is a booking of one room for one client over a date range.
// The JSON field names mirror the public API contract, which is Spanish.
//
// Fields:
//  ID            – primary key, assigned by the database on insert.
//  Cliente       – client name, trimmed, never empty.
//  Habitacion    – room number, any positive integer.
//  FechaEntrada  – check-in date (inclusive).
//  FechaSalida   – check-out date (inclusive); never before FechaEntrada.
//  Total         – amount billed for the stay, strictly positive.
//  CreadoEn      – creation timestamp, set by the database.
//  ActualizadoEn – last update timestamp, set by the database.
type Reservation struct {
	ID            uint64    `json:"id"`            // reservas.id
	Cliente       string    `json:"cliente"`       // reservas.cliente
	Habitacion    uint      `json:"habitacion"`    // reservas.habitacion
	FechaEntrada  time.Time `json:"fechaEntrada"`  // reservas.fecha_entrada
	FechaSalida   time.Time `json:"fechaSalida"`   // reservas.fecha_salida
	Total         float64   `json:"total"`         // reservas.total
	CreadoEn      time.Time `json:"creadoEn"`      // reservas.creado_en
	ActualizadoEn time.Time `json:"actualizadoEn"` // reservas.actualizado_en
}

// RoomSummary aggregates the reservations of a single room.
type RoomSummary struct {
	Habitacion         uint    `json:"habitacion"`
	Reservas           int     `json:"reservas"`
	TotalFacturado     float64 `json:"totalFacturado"`
	PromedioPorReserva float64 `json:"promedioPorReserva"`
}

// Overlaps reports whether the date ranges [aIn, aOut] and [bIn, bOut]
// share at least one calendar day.  Boundaries are inclusive: a stay that
// checks in on another stay's check-out day still overlaps it.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !bIn.After(aOut)
}
