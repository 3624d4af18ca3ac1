// Package booking implements the appointment scheduling and validation
// engine. This file centralizes the engine's error values so that they can be
// consistently returned by service methods and checked by callers.
//
// All of these are caused by bad input, never by internal failure; mapping
// them to user-facing messages or HTTP status codes is the handler layer's
// job. "Not found" is intentionally absent: lookups on unknown ids yield a
// normal result value, not an error.
package booking

import "errors"

// Field-shape and domain violations, returned at create or update.
var (
	// ErrInvalidEmail is returned when an email does not have mailbox shape.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidDate is returned when a date is not YYYY-MM-DD, not a real
	// calendar date, or lies before the current day.
	ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD and a date that is not in the past")

	// ErrInvalidTime is returned when a time is not zero-padded HH:MM between
	// 00:00 and 23:59.
	ErrInvalidTime = errors.New("invalid time format, use HH:MM")

	// ErrInvalidType is returned when an appointment type is outside the
	// fixed set ("kantoor", "videobellen").
	ErrInvalidType = errors.New(`invalid appointment type, use "kantoor" or "videobellen"`)

	// ErrInvalidLegalArea is returned when a legal area is not one of the
	// recognized category codes.
	ErrInvalidLegalArea = errors.New("invalid legal area")

	// ErrInvalidStatus is returned when an update supplies a status outside
	// scheduled/completed/cancelled.
	ErrInvalidStatus = errors.New("invalid status, use scheduled, completed or cancelled")
)

// ErrSlotConflict is returned when the requested (date, time) slot is already
// held by another appointment with status "scheduled". It is a distinct kind
// from the field-validation errors: the input is well-formed, the slot is
// simply taken.
var ErrSlotConflict = errors.New("this time slot is already booked")

// MissingFieldError reports a required field that was absent or empty. It
// names exactly the first offending field in the fixed enumeration order.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// IsValidation reports whether err is a field-validation failure (missing
// field or field-shape/domain violation). Slot conflicts are not validation
// failures; check those with errors.Is(err, ErrSlotConflict).
func IsValidation(err error) bool {
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return true
	}
	for _, e := range []error{
		ErrInvalidEmail,
		ErrInvalidDate,
		ErrInvalidTime,
		ErrInvalidType,
		ErrInvalidLegalArea,
		ErrInvalidStatus,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
