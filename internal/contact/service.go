// Package contact implements the contact-form submission store: the booking
// engine's simpler sibling. Same encapsulated id counter, same mutex-guarded
// in-memory map, same not-found-is-a-value semantics, but no slot concept and
// a smaller required-field list (phone is optional).
package contact

import (
	"sync"
	"time"

	"github.com/jverhoeven/go-booking-backend/internal/booking"
	"github.com/jverhoeven/go-booking-backend/internal/domain"
)

// CreateInput carries the caller-supplied fields of a contact submission.
// Phone is optional; everything else is required.
type CreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateInput enumerates the mutable fields of a contact record. Status is
// free-form here (staff workflows vary); email keeps its shape rule.
type UpdateInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

// Service owns the contact collection and its id counter.
type Service struct {
	mu     sync.Mutex
	byID   map[int]*domain.Contact
	nextID int

	// Now supplies the current instant for timestamps.
	Now func() time.Time
}

// NewService returns an empty contact store using the wall clock.
func NewService() *Service {
	return &Service{
		byID:   make(map[int]*domain.Contact),
		nextID: 1,
		Now:    time.Now,
	}
}

var requiredFields = []struct {
	name  string
	value func(CreateInput) string
}{
	{"name", func(in CreateInput) string { return in.Name }},
	{"email", func(in CreateInput) string { return in.Email }},
	{"subject", func(in CreateInput) string { return in.Subject }},
	{"message", func(in CreateInput) string { return in.Message }},
}

// Create validates and stores a new contact with status "pending".
func (s *Service) Create(in CreateInput) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range requiredFields {
		if f.value(in) == "" {
			return nil, &booking.MissingFieldError{Field: f.name}
		}
	}
	if !booking.IsValidEmail(in.Email) {
		return nil, booking.ErrInvalidEmail
	}

	c := &domain.Contact{
		ID:        s.nextID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.StatusPending,
		CreatedAt: s.Now().UTC(),
	}
	s.byID[c.ID] = c
	s.nextID++

	cp := *c
	return &cp, nil
}

// GetAll returns a snapshot of every stored contact in insertion order.
func (s *Service) GetAll() []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(*domain.Contact) bool { return true })
}

// GetByID returns the contact with the given id, or ok=false.
func (s *Service) GetByID(id int) (*domain.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	cp := *c
	return &cp, true
}

// Update applies a partial update; a supplied email is revalidated, supplied
// required fields may not be blanked. Returns found=false for unknown ids.
func (s *Service) Update(id int, in UpdateInput) (*domain.Contact, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.byID[id]
	if !ok {
		return nil, false, nil
	}

	for _, f := range []struct {
		name string
		p    *string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"subject", in.Subject},
		{"message", in.Message},
		{"status", in.Status},
	} {
		if f.p != nil && *f.p == "" {
			return nil, true, &booking.MissingFieldError{Field: f.name}
		}
	}
	if in.Email != nil && !booking.IsValidEmail(*in.Email) {
		return nil, true, booking.ErrInvalidEmail
	}

	merged := *cur
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&merged.Name, in.Name)
	apply(&merged.Email, in.Email)
	apply(&merged.Phone, in.Phone)
	apply(&merged.Subject, in.Subject)
	apply(&merged.Message, in.Message)
	apply(&merged.Status, in.Status)

	now := s.Now().UTC()
	merged.UpdatedAt = &now
	s.byID[id] = &merged

	cp := merged
	return &cp, true, nil
}

// Delete removes the contact with the given id and reports whether a removal
// occurred.
func (s *Service) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	return true
}

// ByStatus returns all contacts with the given status, insertion order.
func (s *Service) ByStatus(status string) []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(c *domain.Contact) bool { return c.Status == status })
}

// Restore replaces the store contents with a trusted snapshot; the id counter
// continues past the highest restored id.
func (s *Service) Restore(records []domain.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int]*domain.Contact, len(records))
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

func (s *Service) filter(keep func(*domain.Contact) bool) []domain.Contact {
	out := make([]domain.Contact, 0, len(s.byID))
	for id := 1; id < s.nextID; id++ {
		if c, ok := s.byID[id]; ok && keep(c) {
			out = append(out, *c)
		}
	}
	return out
}
