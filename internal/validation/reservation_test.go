package validation

import (
	"errors"
	"testing"
	"time"
)

func validInput() ReservaInput {
	return ReservaInput{
		Cliente:      "  Juan Santacruz  ",
		Habitacion:   float64(202), // JSON numbers decode as float64
		FechaEntrada: "2025-11-18",
		FechaSalida:  "2025-11-23",
		Total:        float64(35),
	}
}

func TestValidateNormalizes(t *testing.T) {
	res, err := Validate(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Cliente != "Juan Santacruz" {
		t.Fatalf("cliente not trimmed: %q", res.Cliente)
	}
	if res.Habitacion != 202 {
		t.Fatalf("habitacion = %d, want 202", res.Habitacion)
	}
	wantIn := time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC)
	wantOut := time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)
	if !res.FechaEntrada.Equal(wantIn) || !res.FechaSalida.Equal(wantOut) {
		t.Fatalf("dates = %v..%v, want %v..%v", res.FechaEntrada, res.FechaSalida, wantIn, wantOut)
	}
	if res.Total != 35 {
		t.Fatalf("total = %v, want 35", res.Total)
	}
	if res.ID != 0 || !res.CreadoEn.IsZero() || !res.ActualizadoEn.IsZero() {
		t.Fatal("id and timestamps must be left for the storage layer")
	}
}

func TestValidateCoercesStrings(t *testing.T) {
	in := validInput()
	in.Habitacion = "202"
	in.Total = "35.50"
	res, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Habitacion != 202 || res.Total != 35.5 {
		t.Fatalf("coercion failed: habitacion=%d total=%v", res.Habitacion, res.Total)
	}
}

// Validating the normalized output again must succeed and yield the same record.
func TestValidateIdempotent(t *testing.T) {
	first, err := Validate(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Validate(Input(first))
	if err != nil {
		t.Fatalf("revalidation failed: %v", err)
	}
	if second != first {
		t.Fatalf("revalidation changed the record:\n first=%+v\nsecond=%+v", first, second)
	}
}

func TestValidateSameDayStayAllowed(t *testing.T) {
	in := validInput()
	in.FechaSalida = in.FechaEntrada
	if _, err := Validate(in); err != nil {
		t.Fatalf("same-day stay rejected: %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ReservaInput)
		field  string
		code   string
	}{
		{"missing cliente", func(in *ReservaInput) { in.Cliente = "   " }, "cliente", CodeMissingField},
		{"missing habitacion", func(in *ReservaInput) { in.Habitacion = nil }, "habitacion", CodeMissingField},
		{"empty habitacion", func(in *ReservaInput) { in.Habitacion = "" }, "habitacion", CodeMissingField},
		{"missing fechaEntrada", func(in *ReservaInput) { in.FechaEntrada = "" }, "fechaEntrada", CodeMissingField},
		{"missing fechaSalida", func(in *ReservaInput) { in.FechaSalida = "" }, "fechaSalida", CodeMissingField},
		{"missing total", func(in *ReservaInput) { in.Total = nil }, "total", CodeMissingField},
		{"non-numeric habitacion", func(in *ReservaInput) { in.Habitacion = "lobby" }, "habitacion", CodeInvalidRoom},
		{"zero habitacion", func(in *ReservaInput) { in.Habitacion = float64(0) }, "habitacion", CodeInvalidRoom},
		{"negative habitacion", func(in *ReservaInput) { in.Habitacion = float64(-3) }, "habitacion", CodeInvalidRoom},
		{"fractional habitacion", func(in *ReservaInput) { in.Habitacion = 20.2 }, "habitacion", CodeInvalidRoom},
		{"bad fechaEntrada", func(in *ReservaInput) { in.FechaEntrada = "18/11/2025" }, "fechaEntrada", CodeInvalidDate},
		{"bad fechaSalida", func(in *ReservaInput) { in.FechaSalida = "not-a-date" }, "fechaSalida", CodeInvalidDate},
		{"impossible date", func(in *ReservaInput) { in.FechaEntrada = "2025-02-30" }, "fechaEntrada", CodeInvalidDate},
		{"salida before entrada", func(in *ReservaInput) { in.FechaSalida = "2025-11-10" }, "fechaSalida", CodeInvalidDateRange},
		{"zero total", func(in *ReservaInput) { in.Total = float64(0) }, "total", CodeInvalidTotal},
		{"negative total", func(in *ReservaInput) { in.Total = float64(-20) }, "total", CodeInvalidTotal},
		{"non-numeric total", func(in *ReservaInput) { in.Total = "gratis" }, "total", CodeInvalidTotal},
	}

	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := Validate(in)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Fatalf("%s: error is %T, want *FieldError", tc.name, err)
		}
		if fe.Field != tc.field || fe.Code != tc.code {
			t.Fatalf("%s: got field=%q code=%q, want field=%q code=%q",
				tc.name, fe.Field, fe.Code, tc.field, tc.code)
		}
	}
}

func TestValidateIsPure(t *testing.T) {
	in := validInput()
	if _, err := Validate(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Cliente != "  Juan Santacruz  " {
		t.Fatal("Validate mutated its input")
	}
}
