package contact

import (
	"errors"
	"testing"
	"time"

	"github.com/jverhoeven/go-booking-backend/internal/booking"
	"github.com/jverhoeven/go-booking-backend/internal/domain"
)

var fixedNow = time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService()
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func validInput() CreateInput {
	return CreateInput{
		Name:    "Jan Jansen",
		Email:   "jan@example.nl",
		Phone:   "06-87654321",
		Subject: "Vraag over arbeidscontract",
		Message: "Graag contact opnemen.",
	}
}

func strptr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	svc := newTestService(t)
	c, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID != 1 || c.Status != domain.StatusPending {
		t.Fatalf("unexpected record: %+v", c)
	}
	if c.UpdatedAt != nil {
		t.Errorf("UpdatedAt must be absent until first update")
	}
}

func TestCreate_PhoneIsOptional(t *testing.T) {
	svc := newTestService(t)
	in := validInput()
	in.Phone = ""
	if _, err := svc.Create(in); err != nil {
		t.Fatalf("create without phone: %v", err)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	blank := map[string]func(*CreateInput){
		"name":    func(in *CreateInput) { in.Name = "" },
		"email":   func(in *CreateInput) { in.Email = "" },
		"subject": func(in *CreateInput) { in.Subject = "" },
		"message": func(in *CreateInput) { in.Message = "" },
	}
	for field, clear := range blank {
		svc := newTestService(t)
		in := validInput()
		clear(&in)

		_, err := svc.Create(in)
		var mf *booking.MissingFieldError
		if !errors.As(err, &mf) || mf.Field != field {
			t.Errorf("omitting %s: got %v", field, err)
		}
	}
}

func TestCreate_InvalidEmail(t *testing.T) {
	svc := newTestService(t)
	in := validInput()
	in.Email = "not an email"
	if _, err := svc.Create(in); !errors.Is(err, booking.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestUpdate_And_ByStatus(t *testing.T) {
	svc := newTestService(t)
	c, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, found, err := svc.Update(c.ID, UpdateInput{Status: strptr(domain.StatusResolved)})
	if err != nil || !found || got.Status != domain.StatusResolved {
		t.Fatalf("Update = (%+v, %v, %v)", got, found, err)
	}
	if got.UpdatedAt == nil {
		t.Errorf("UpdatedAt not set")
	}

	if pending := svc.ByStatus(domain.StatusPending); len(pending) != 0 {
		t.Errorf("expected no pending contacts, got %+v", pending)
	}
	if resolved := svc.ByStatus(domain.StatusResolved); len(resolved) != 1 {
		t.Errorf("expected one resolved contact, got %+v", resolved)
	}
}

func TestUpdate_NotFoundAndInvalidEmail(t *testing.T) {
	svc := newTestService(t)
	if _, found, err := svc.Update(5, UpdateInput{Name: strptr("X")}); found || err != nil {
		t.Fatalf("update unknown id = (found=%v, err=%v)", found, err)
	}

	c, _ := svc.Create(validInput())
	if _, _, err := svc.Update(c.ID, UpdateInput{Email: strptr("bad")}); !errors.Is(err, booking.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	svc := newTestService(t)
	c, _ := svc.Create(validInput())
	if !svc.Delete(c.ID) {
		t.Fatalf("first delete returned false")
	}
	if svc.Delete(c.ID) {
		t.Fatalf("second delete returned true")
	}
}

func TestRestore(t *testing.T) {
	svc := newTestService(t)
	svc.Restore([]domain.Contact{{ID: 3, Name: "A", Email: "a@b.c", Subject: "s", Message: "m",
		Status: domain.StatusPending, CreatedAt: fixedNow}})
	c, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("create after restore: %v", err)
	}
	if c.ID != 4 {
		t.Errorf("expected id 4, got %d", c.ID)
	}
}
