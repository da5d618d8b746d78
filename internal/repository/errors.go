// Package repository implements persistence for reservations on top of
// database/sql.  The sentinel errors defined here let handlers distinguish
// failure scenarios without inspecting driver-specific errors.
package repository

import "errors"

// ErrReservationNotFound is returned when an id does not resolve to a
// stored reservation.  Handlers translate this into an HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrOverlap is returned when a create or update would leave two
// reservations for the same room with overlapping date ranges.  Handlers
// translate this into an HTTP 409 response.
var ErrOverlap = errors.New("reservation dates overlap an existing reservation")
