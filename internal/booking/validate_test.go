package booking

import (
	"testing"
	"time"
)

// fixedNow pins the validators' clock to mid-2026 so date cases stay stable.
var fixedNow = time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"john.doe@example.com", true},
		{"a@b.c", true},
		{"first+tag@sub.domain.nl", true},
		{"", false},
		{"no-at-sign.example.com", false},
		{"no-dot-after@example", false},
		{"spaces in@example.com", false},
		{"trailing@example.com ", false},
		{"@example.com", false},
		{"user@", false},
	}
	for _, c := range cases {
		if got := IsValidEmail(c.in); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidDateAt(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2099-12-31", true},
		{"2026-08-15", true}, // today is never "in the past"
		{"2026-08-16", true},
		{"2026-08-14", false}, // yesterday
		{"2023-01-01", false}, // long past
		{"2026-02-30", false}, // not a real calendar date
		{"2026-13-01", false},
		{"2026-8-15", false}, // missing zero padding
		{"15-08-2026", false},
		{"2026/08/15", false},
		{"", false},
		{"20260815", false},
	}
	for _, c := range cases {
		if got := IsValidDateAt(c.in, fixedNow); got != c.want {
			t.Errorf("IsValidDateAt(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:00", true},
		{"23:59", true},
		{"12:30", true},
		{"9:00", false}, // must be zero-padded
		{"24:00", false},
		{"23:60", false},
		{"12:5", false},
		{"12-30", false},
		{"", false},
		{"12:30:00", false},
	}
	for _, c := range cases {
		if got := IsValidTime(c.in); got != c.want {
			t.Errorf("IsValidTime(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidAppointmentType(t *testing.T) {
	for _, valid := range []string{"kantoor", "videobellen"} {
		if !IsValidAppointmentType(valid) {
			t.Errorf("IsValidAppointmentType(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "office", "Kantoor", "video"} {
		if IsValidAppointmentType(invalid) {
			t.Errorf("IsValidAppointmentType(%q) = true, want false", invalid)
		}
	}
}

func TestIsValidLegalArea(t *testing.T) {
	valid := []string{
		"ondernemingsrecht", "familierecht", "arbeidsrecht",
		"bestuursrecht", "verbintenissenrecht", "overig",
	}
	for _, area := range valid {
		if !IsValidLegalArea(area) {
			t.Errorf("IsValidLegalArea(%q) = false, want true", area)
		}
	}
	for _, invalid := range []string{"", "strafrecht", "Familierecht", "familie"} {
		if IsValidLegalArea(invalid) {
			t.Errorf("IsValidLegalArea(%q) = true, want false", invalid)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, valid := range []string{"scheduled", "completed", "cancelled"} {
		if !IsValidStatus(valid) {
			t.Errorf("IsValidStatus(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "done", "Scheduled", "canceled"} {
		if IsValidStatus(invalid) {
			t.Errorf("IsValidStatus(%q) = true, want false", invalid)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, ok := ParseID("42"); !ok || id != 42 {
		t.Fatalf("ParseID(\"42\") = (%d, %v)", id, ok)
	}
	for _, bad := range []string{"", "abc", "12abc", "1.5", " 3"} {
		if _, ok := ParseID(bad); ok {
			t.Errorf("ParseID(%q) succeeded, want failure", bad)
		}
	}
}
