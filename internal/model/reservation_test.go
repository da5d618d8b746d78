package model

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	// Existing stay: 2025-11-18 .. 2025-11-23.
	in, out := day("2025-11-18"), day("2025-11-23")

	cases := []struct {
		name      string
		bIn, bOut string
		want      bool
	}{
		{"fully contained", "2025-11-20", "2025-11-21", true},
		{"identical range", "2025-11-18", "2025-11-23", true},
		{"extends past both ends", "2025-11-10", "2025-11-30", true},
		{"touches at checkout boundary", "2025-11-23", "2025-11-25", true},
		{"touches at checkin boundary", "2025-11-15", "2025-11-18", true},
		{"disjoint before", "2025-11-10", "2025-11-17", false},
		{"disjoint after", "2025-11-24", "2025-11-28", false},
	}
	for _, tc := range cases {
		got := Overlaps(in, out, day(tc.bIn), day(tc.bOut))
		if got != tc.want {
			t.Fatalf("%s: Overlaps(%s..%s, %s..%s) = %v, want %v",
				tc.name, "2025-11-18", "2025-11-23", tc.bIn, tc.bOut, got, tc.want)
		}
		// The predicate is symmetric.
		if rev := Overlaps(day(tc.bIn), day(tc.bOut), in, out); rev != got {
			t.Fatalf("%s: Overlaps is not symmetric", tc.name)
		}
	}
}
