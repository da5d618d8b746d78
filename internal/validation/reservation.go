// Package validation normalizes raw reservation input into a model.Reservation.
// It is pure: no database access, no clock, no side effects.  Handlers bind
// the request body into a ReservaInput and call Validate before touching
// storage.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hotelero/reservas/internal/model"
)

// Error codes returned in FieldError.Code.  Handlers map every code to a
// 400 response; the codes let clients highlight the offending field.
const (
	CodeMissingField     = "missing_field"
	CodeInvalidRoom      = "invalid_room"
	CodeInvalidDate      = "invalid_date"
	CodeInvalidDateRange = "invalid_date_range"
	CodeInvalidTotal     = "invalid_total"
)

// FieldError describes a single invalid or missing input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string { return e.Message }

func missing(field string) *FieldError {
	return &FieldError{Field: field, Code: CodeMissingField, Message: field + " is required"}
}

// ReservaInput is the loosely typed request body for create and update.
// Room and total may arrive as JSON numbers or strings depending on the
// client, so they are bound as `any` and coerced during validation.
type ReservaInput struct {
	Cliente      string `json:"cliente"`
	Habitacion   any    `json:"habitacion"`
	FechaEntrada string `json:"fechaEntrada"`
	FechaSalida  string `json:"fechaSalida"`
	Total        any    `json:"total"`
}

// Validate checks every field of in and returns a normalized reservation:
// client trimmed, room and total coerced to numeric types, dates parsed to
// UTC midnights.  ID and timestamps are left zero; the storage layer owns
// them.  The returned error is always a *FieldError describing the first
// failing field.
//
// Validating the normalized output of a previous call succeeds and yields
// the same record.
func Validate(in ReservaInput) (model.Reservation, error) {
	var res model.Reservation

	cliente := strings.TrimSpace(in.Cliente)
	if cliente == "" {
		return res, missing("cliente")
	}

	if in.Habitacion == nil || in.Habitacion == "" {
		return res, missing("habitacion")
	}
	habitacion, ok := asPositiveInt(in.Habitacion)
	if !ok {
		return res, &FieldError{
			Field:   "habitacion",
			Code:    CodeInvalidRoom,
			Message: "habitacion must be a positive integer",
		}
	}

	entrada, err := parseDate("fechaEntrada", in.FechaEntrada)
	if err != nil {
		return res, err
	}
	salida, err := parseDate("fechaSalida", in.FechaSalida)
	if err != nil {
		return res, err
	}
	if salida.Before(entrada) {
		return res, &FieldError{
			Field:   "fechaSalida",
			Code:    CodeInvalidDateRange,
			Message: "fechaSalida must not be before fechaEntrada",
		}
	}

	if in.Total == nil || in.Total == "" {
		return res, missing("total")
	}
	total, ok := asAmount(in.Total)
	if !ok || total <= 0 {
		return res, &FieldError{
			Field:   "total",
			Code:    CodeInvalidTotal,
			Message: "total must be a number greater than zero",
		}
	}

	res.Cliente = cliente
	res.Habitacion = habitacion
	res.FechaEntrada = entrada
	res.FechaSalida = salida
	res.Total = total
	return res, nil
}

// Input converts a reservation back into the raw input shape.  Used when
// re-validating an already normalized record.
func Input(r model.Reservation) ReservaInput {
	return ReservaInput{
		Cliente:      r.Cliente,
		Habitacion:   fmt.Sprintf("%d", r.Habitacion),
		FechaEntrada: r.FechaEntrada.Format(model.DateLayout),
		FechaSalida:  r.FechaSalida.Format(model.DateLayout),
		Total:        r.Total,
	}
}

func parseDate(field, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, missing(field)
	}
	t, err := time.ParseInLocation(model.DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &FieldError{
			Field:   field,
			Code:    CodeInvalidDate,
			Message: field + " must be a valid date in YYYY-MM-DD format",
		}
	}
	return t, nil
}

// asPositiveInt coerces a JSON value into a positive integer.  JSON numbers
// arrive as float64, form-ish clients send strings.
func asPositiveInt(v any) (uint, bool) {
	switch t := v.(type) {
	case float64:
		if t <= 0 || t != math.Trunc(t) {
			return 0, false
		}
		return uint(t), true
	case int:
		if t <= 0 {
			return 0, false
		}
		return uint(t), true
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(t), 10, 32)
		if err != nil || n == 0 {
			return 0, false
		}
		return uint(n), true
	}
	return 0, false
}

// asAmount coerces a JSON value into a float64 amount.
func asAmount(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
