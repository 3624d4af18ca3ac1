// Field validators for the booking engine. Each is a pure function over its
// input (the date rule additionally depends on a clock, exposed via the *At
// variant so the service and tests can inject a fixed instant).
package booking

import (
	"regexp"
	"time"

	"github.com/jverhoeven/go-booking-backend/internal/domain"
)

var (
	// emailRE accepts anything of mailbox shape: one "@", a "." somewhere
	// after it, no whitespace. Deliverability is not this engine's concern.
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// dateRE requires exactly YYYY-MM-DD; calendar validity is checked by
	// parsing afterwards.
	dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// timeRE requires zero-padded 24-hour HH:MM ("9:00" is invalid).
	timeRE = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// IsValidEmail reports whether s has mailbox shape.
func IsValidEmail(s string) bool {
	return emailRE.MatchString(s)
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD calendar date
// that is not before today.
func IsValidDate(s string) bool {
	return IsValidDateAt(s, time.Now())
}

// IsValidDateAt is IsValidDate evaluated against an explicit current instant.
// The instant is truncated to its calendar day, so a booking for later today
// is still valid. ISO dates compare correctly as strings, which keeps the
// not-in-the-past check free of time zone arithmetic.
func IsValidDateAt(s string, now time.Time) bool {
	if !dateRE.MatchString(s) {
		return false
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return false
	}
	return s >= now.Format("2006-01-02")
}

// IsValidTime reports whether s is a zero-padded HH:MM between 00:00 and 23:59.
func IsValidTime(s string) bool {
	return timeRE.MatchString(s)
}

// IsValidAppointmentType reports membership in the fixed appointment type set.
func IsValidAppointmentType(s string) bool {
	return contains(domain.AppointmentTypes, s)
}

// IsValidLegalArea reports membership in the fixed legal-area set.
func IsValidLegalArea(s string) bool {
	return contains(domain.LegalAreas, s)
}

// IsValidStatus reports membership in the fixed status set.
func IsValidStatus(s string) bool {
	return contains(domain.Statuses, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
