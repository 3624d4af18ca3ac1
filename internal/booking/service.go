// Package booking – Service
//
// This file implements the appointment Service, the sole gatekeeper and store
// for appointment records. It validates every field of a booking request,
// enforces slot uniqueness among scheduled appointments, and executes the
// record lifecycle (create, read, update, delete, query-by-attribute).
//
// The store is in-memory: a mutex-guarded map keyed by a monotonically
// assigned integer id. Every operation runs its full validate→check-slot→write
// sequence under the lock, so two concurrent creates for the same slot can
// never both succeed. Callers hold their own Service instance; there is no
// ambient global state.
package booking

import (
	"sync"
	"time"

	"github.com/jverhoeven/go-booking-backend/internal/domain"
)

// CreateInput carries the caller-supplied fields of a booking request. All
// fields are required; id, status and the timestamps are engine-assigned.
type CreateInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LegalArea   string `json:"legalArea"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"-"` // always overwritten with "scheduled"
}

// UpdateInput enumerates the mutable fields of an appointment. A nil field is
// left untouched; a supplied field is revalidated before anything is written.
// Unknown keys in a decoded payload simply have nowhere to land, which is the
// point: updates can never smuggle arbitrary state into a record.
type UpdateInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	LegalArea   *string `json:"legalArea"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Service owns the appointment collection and its id counter.
//
// Ids are assigned sequentially starting at 1 and only advance on a
// successful store, so insertion order and id order coincide; all listing
// operations rely on that.
type Service struct {
	mu     sync.Mutex
	byID   map[int]*domain.Appointment
	nextID int

	// Now supplies the current instant for timestamps and the date rule.
	// Tests may replace it with a fixed clock.
	Now func() time.Time
}

// NewService returns an empty appointment store using the wall clock.
func NewService() *Service {
	return &Service{
		byID:   make(map[int]*domain.Appointment),
		nextID: 1,
		Now:    time.Now,
	}
}

// requiredFields fixes the presence-check enumeration order for Create.
// The first missing field aborts validation and is named in the error.
var requiredFields = []struct {
	name  string
	value func(CreateInput) string
}{
	{"firstName", func(in CreateInput) string { return in.FirstName }},
	{"lastName", func(in CreateInput) string { return in.LastName }},
	{"email", func(in CreateInput) string { return in.Email }},
	{"phone", func(in CreateInput) string { return in.Phone }},
	{"legalArea", func(in CreateInput) string { return in.LegalArea }},
	{"date", func(in CreateInput) string { return in.Date }},
	{"time", func(in CreateInput) string { return in.Time }},
	{"type", func(in CreateInput) string { return in.Type }},
	{"description", func(in CreateInput) string { return in.Description }},
}

// Create validates a booking request, checks slot availability, and stores a
// new appointment with the next sequential id and status "scheduled". The
// returned record is a snapshot, not an alias into the store. On any failure
// nothing is stored and the id counter does not advance.
func (s *Service) Create(in CreateInput) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range requiredFields {
		if f.value(in) == "" {
			return nil, &MissingFieldError{Field: f.name}
		}
	}
	if !IsValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if !IsValidDateAt(in.Date, s.Now()) {
		return nil, ErrInvalidDate
	}
	if !IsValidTime(in.Time) {
		return nil, ErrInvalidTime
	}
	if !IsValidAppointmentType(in.Type) {
		return nil, ErrInvalidType
	}
	if !IsValidLegalArea(in.LegalArea) {
		return nil, ErrInvalidLegalArea
	}
	if !s.slotFree(in.Date, in.Time, 0) {
		return nil, ErrSlotConflict
	}

	a := &domain.Appointment{
		ID:          s.nextID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		LegalArea:   in.LegalArea,
		Date:        in.Date,
		Time:        in.Time,
		Type:        in.Type,
		Description: in.Description,
		Status:      domain.StatusScheduled,
		CreatedAt:   s.Now().UTC(),
	}
	s.byID[a.ID] = a
	s.nextID++

	cp := *a
	return &cp, nil
}

// GetAll returns a point-in-time snapshot of every stored appointment in
// insertion order.
func (s *Service) GetAll() []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(*domain.Appointment) bool { return true })
}

// GetByID returns a snapshot of the appointment with the given id, or
// ok=false when no such record exists.
func (s *Service) GetByID(id int) (*domain.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	cp := *a
	return &cp, true
}

// Update applies a partial update to the appointment with the given id.
//
// Every supplied field is validated with the same rule Create uses; the first
// violation aborts the whole update with no partial mutation. The slot is
// re-checked (excluding the record itself) when date or time changes, and
// also when the update moves the record back into "scheduled" — a reactivated
// appointment must not land on a slot someone else booked in the meantime.
//
// Returns found=false when the id is unknown; that is a normal result, not an
// error. On success the merged record carries a fresh UpdatedAt.
func (s *Service) Update(id int, in UpdateInput) (*domain.Appointment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.byID[id]
	if !ok {
		return nil, false, nil
	}

	// Supplied fields may not be blanked out: a previously valid record must
	// stay valid.
	for _, f := range []struct {
		name string
		p    *string
	}{
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"legalArea", in.LegalArea},
		{"date", in.Date},
		{"time", in.Time},
		{"type", in.Type},
		{"description", in.Description},
		{"status", in.Status},
	} {
		if f.p != nil && *f.p == "" {
			return nil, true, &MissingFieldError{Field: f.name}
		}
	}
	if in.Email != nil && !IsValidEmail(*in.Email) {
		return nil, true, ErrInvalidEmail
	}
	if in.Date != nil && !IsValidDateAt(*in.Date, s.Now()) {
		return nil, true, ErrInvalidDate
	}
	if in.Time != nil && !IsValidTime(*in.Time) {
		return nil, true, ErrInvalidTime
	}
	if in.Type != nil && !IsValidAppointmentType(*in.Type) {
		return nil, true, ErrInvalidType
	}
	if in.LegalArea != nil && !IsValidLegalArea(*in.LegalArea) {
		return nil, true, ErrInvalidLegalArea
	}
	if in.Status != nil && !IsValidStatus(*in.Status) {
		return nil, true, ErrInvalidStatus
	}

	newDate, newTime := cur.Date, cur.Time
	if in.Date != nil {
		newDate = *in.Date
	}
	if in.Time != nil {
		newTime = *in.Time
	}
	slotTouched := in.Date != nil || in.Time != nil
	reactivated := in.Status != nil && *in.Status == domain.StatusScheduled &&
		cur.Status != domain.StatusScheduled
	if (slotTouched || reactivated) && !s.slotFree(newDate, newTime, id) {
		return nil, true, ErrSlotConflict
	}

	merged := *cur
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&merged.FirstName, in.FirstName)
	apply(&merged.LastName, in.LastName)
	apply(&merged.Email, in.Email)
	apply(&merged.Phone, in.Phone)
	apply(&merged.LegalArea, in.LegalArea)
	apply(&merged.Date, in.Date)
	apply(&merged.Time, in.Time)
	apply(&merged.Type, in.Type)
	apply(&merged.Description, in.Description)
	apply(&merged.Status, in.Status)

	now := s.Now().UTC()
	merged.UpdatedAt = &now
	s.byID[id] = &merged

	cp := merged
	return &cp, true, nil
}

// Delete removes the appointment with the given id and reports whether a
// removal occurred. Deleting an unknown id is not an error; the id is never
// reassigned to a later record.
func (s *Service) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	return true
}

// ByStatus returns all appointments whose status equals status, in insertion
// order. Exact string equality, no normalization.
func (s *Service) ByStatus(status string) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(a *domain.Appointment) bool { return a.Status == status })
}

// ByDate returns all appointments on the given date, in insertion order.
func (s *Service) ByDate(date string) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(a *domain.Appointment) bool { return a.Date == date })
}

// ByLegalArea returns all appointments for the given legal area, in insertion
// order.
func (s *Service) ByLegalArea(area string) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(a *domain.Appointment) bool { return a.LegalArea == area })
}

// IsSlotAvailable reports whether the (date, time) slot is free of scheduled
// appointments other than excludeID. Pass excludeID 0 for a plain
// availability probe (ids start at 1). Completed and cancelled appointments
// never block a slot.
func (s *Service) IsSlotAvailable(date, timeOfDay string, excludeID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slotFree(date, timeOfDay, excludeID)
}

// Restore replaces the store contents with a trusted snapshot (e.g., the
// archive mirror read at boot). The id counter continues past the highest
// restored id so ids stay unique across restarts. Records are not
// revalidated: they were valid when stored and the date rule must not
// retroactively reject appointments whose day has since passed.
func (s *Service) Restore(records []domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int]*domain.Appointment, len(records))
	max := 0
	for i := range records {
		cp := records[i]
		s.byID[cp.ID] = &cp
		if cp.ID > max {
			max = cp.ID
		}
	}
	s.nextID = max + 1
}

// slotFree is the lock-held slot scan shared by Create, Update and
// IsSlotAvailable.
func (s *Service) slotFree(date, timeOfDay string, excludeID int) bool {
	for _, a := range s.byID {
		if a.Status == domain.StatusScheduled &&
			a.Date == date && a.Time == timeOfDay && a.ID != excludeID {
			return false
		}
	}
	return true
}

// filter collects snapshots of all appointments matching keep, ordered by id
// (which equals insertion order, since ids are monotonic and never reused).
func (s *Service) filter(keep func(*domain.Appointment) bool) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(s.byID))
	for id := 1; id < s.nextID; id++ {
		if a, ok := s.byID[id]; ok && keep(a) {
			out = append(out, *a)
		}
	}
	return out
}
