// Appointment HTTP handlers.
//
// This file exposes REST endpoints for appointment resources:
//   - POST   /appointments               (book, idempotent via Idempotency-Key)
//   - GET    /appointments               (list, optional filters, ETag support)
//   - GET    /appointments/availability  (slot probe)
//   - GET    /appointments/{id}          (fetch one)
//   - PATCH  /appointments/{id}          (partial update)
//   - DELETE /appointments/{id}          (remove)
//
// Handlers are transport-thin: they validate transport concerns, call the
// booking engine, mirror accepted writes into the archive, and translate
// results into HTTP responses (including conditional responses).
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jverhoeven/go-booking-backend/internal/booking"
	"github.com/jverhoeven/go-booking-backend/internal/domain"
	"github.com/jverhoeven/go-booking-backend/internal/http/middleware"
	"github.com/jverhoeven/go-booking-backend/internal/repo"
	"github.com/jverhoeven/go-booking-backend/internal/utils"
)

//
// Service contracts
//

// AppointmentService defines the booking engine operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use; all methods are
// synchronous in-memory operations and therefore take no context.
type AppointmentService interface {
	// Create validates and books a new appointment.
	Create(in booking.CreateInput) (*domain.Appointment, error)
	// GetAll returns every appointment in creation order.
	GetAll() []domain.Appointment
	// GetByID returns one appointment, or ok=false when the id is unknown.
	GetByID(id int) (*domain.Appointment, bool)
	// Update applies a partial update. found=false when the id is unknown.
	Update(id int, in booking.UpdateInput) (*domain.Appointment, bool, error)
	// Delete removes an appointment and reports whether one was removed.
	Delete(id int) bool
	// ByStatus, ByDate and ByLegalArea filter in creation order.
	ByStatus(status string) []domain.Appointment
	ByDate(date string) []domain.Appointment
	ByLegalArea(area string) []domain.Appointment
	// IsSlotAvailable probes a (date, time) pair, ignoring excludeID (0 = none).
	IsSlotAvailable(date, timeOfDay string, excludeID int) bool
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for appointments and contact submissions.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
//
// DB is the archive handle: accepted writes are mirrored into it so the
// engine can be re-seeded after a restart, and POST deduplication records
// live there. A nil DB disables both (useful in tests).
type Handlers struct {
	apptSvc    AppointmentService
	contactSvc ContactService

	DB      *gorm.DB
	IdemTTL time.Duration
}

// New constructs a Handlers instance bound to the given services and archive.
func New(apptSvc AppointmentService, contactSvc ContactService, db *gorm.DB, idemTTL time.Duration) *Handlers {
	if idemTTL <= 0 {
		idemTTL = 24 * time.Hour
	}
	return &Handlers{apptSvc: apptSvc, contactSvc: contactSvc, DB: db, IdemTTL: idemTTL}
}

//
// DTOs
//

// AvailabilityResponse reports whether a (date, time) slot can still be booked.
type AvailabilityResponse struct {
	Date      string `json:"date" example:"2026-09-01"`
	Time      string `json:"time" example:"10:00"`
	Available bool   `json:"available"`
}

// ListAppointmentsResponse wraps the appointment collection.
type ListAppointmentsResponse struct {
	Appointments []domain.Appointment `json:"appointments"`
	Total        int                  `json:"total"`
}

//
// Helpers
//

// failBooking translates a booking engine error into an HTTP response.
// Field validation failures map to 400, slot conflicts to 409.
func failBooking(c *gin.Context, err error) {
	switch {
	case booking.IsValidation(err):
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
	case errors.Is(err, booking.ErrSlotConflict):
		middleware.SlotConflicts.Inc()
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}

// pathID parses the :id path parameter. A non-numeric id can never match a
// stored record, so it is answered as not-found, not as a client error.
func pathID(c *gin.Context, what string) (int, bool) {
	id, ok := booking.ParseID(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, ErrCodeNotFound, what+" not found")
		return 0, false
	}
	return id, true
}

// archiveAppointment mirrors an accepted write into the archive. Failures are
// logged but never surfaced: the engine remains the source of truth.
func (h *Handlers) archiveAppointment(c *gin.Context, a *domain.Appointment) {
	if h.DB == nil {
		return
	}
	if err := repo.SaveAppointment(c.Request.Context(), h.DB, a); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Int("id", a.ID).Msg("archive appointment failed")
	}
}

// unarchiveAppointment removes a deleted appointment's archive snapshot.
func (h *Handlers) unarchiveAppointment(c *gin.Context, id int) {
	if h.DB == nil {
		return
	}
	if err := repo.DeleteAppointment(c.Request.Context(), h.DB, id); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Int("id", id).Msg("unarchive appointment failed")
	}
}

// appointmentsETag derives a weak ETag from a snapshot: record count plus the
// most recent create/update instant. Cheap and stable across identical lists.
func appointmentsETag(items []domain.Appointment) string {
	var maxTS int64
	for i := range items {
		ts := items[i].CreatedAt.Unix()
		if items[i].UpdatedAt != nil && items[i].UpdatedAt.Unix() > ts {
			ts = items[i].UpdatedAt.Unix()
		}
		if ts > maxTS {
			maxTS = ts
		}
	}
	return fmt.Sprintf(`W/"appointments:%d:%d"`, len(items), maxTS)
}

// serveIdemReplay serves a previously booked appointment for a replayed POST.
// Returns true when the replay was served; false lets the caller book normally
// (e.g., the referenced appointment has since been deleted).
func (h *Handlers) serveIdemReplay(c *gin.Context, scope, key string) bool {
	if h.DB == nil {
		return false
	}
	rec, err := repo.GetIdempotency(c.Request.Context(), h.DB, scope, key, time.Now().UTC())
	if err != nil {
		return false
	}
	a, found := h.apptSvc.GetByID(rec.AppointmentID)
	if !found {
		return false
	}
	c.Header("Idempotency-Replayed", "true")
	ok(c, rec.Status, a)
	return true
}

//
// Handlers
//

// CreateAppointment godoc
// @ID          createAppointment
// @Summary     Book an appointment
// @Description Validates the submission and books the slot. Retries carrying the same Idempotency-Key replay the original result instead of double-booking.
// @Tags        Appointments
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false  "Deduplication key for safe retries"  example(booking-3f2a)
// @Param       body             body    booking.CreateInput  true  "Appointment payload"
//
// @Success     201  {object}  domain.Appointment
// @Header      201  {string}  Idempotency-Replayed  "Present (true) when a retry was served from the original booking"
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid field"
// @Failure     409  {object}  handlers.ErrorResponse  "Slot already booked"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /appointments [post]
func (h *Handlers) CreateAppointment(c *gin.Context) {
	idemKey, hasKey := middleware.GetIdempotencyKey(c)
	scope := middleware.IdempotencyScope(c)

	if hasKey && middleware.IsReplay(c) && h.serveIdemReplay(c, scope, idemKey) {
		return
	}

	var req booking.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	a, err := h.apptSvc.Create(req)
	if err != nil {
		failBooking(c, err)
		return
	}
	middleware.AppointmentsCreated.Inc()
	h.archiveAppointment(c, a)

	if hasKey && h.DB != nil {
		_, err := repo.CreateIdempotency(c.Request.Context(), h.DB, scope, idemKey, a.ID, http.StatusCreated, h.IdemTTL)
		if err != nil && !errors.Is(err, repo.ErrDuplicate) {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("store idempotency record failed")
		}
	}

	ok(c, http.StatusCreated, a)
}

// ListAppointments godoc
// @ID          listAppointments
// @Summary     List appointments
// @Description Returns all appointments in booking order. Filters are mutually exclusive; precedence is status, date, area. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Appointments
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"appointments:3:1756\")
// @Param       status         query   string  false "Filter by status"            Enums(scheduled, completed, cancelled)
// @Param       date           query   string  false "Filter by date (YYYY-MM-DD)" example(2026-09-01)
// @Param       area           query   string  false "Filter by legal area"        example(familierecht)
//
// @Success     200  {object} handlers.ListAppointmentsResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Router      /appointments [get]
func (h *Handlers) ListAppointments(c *gin.Context) {
	var items []domain.Appointment
	switch {
	case c.Query("status") != "":
		items = h.apptSvc.ByStatus(c.Query("status"))
	case c.Query("date") != "":
		items = h.apptSvc.ByDate(c.Query("date"))
	case c.Query("area") != "":
		items = h.apptSvc.ByLegalArea(c.Query("area"))
	default:
		items = h.apptSvc.GetAll()
	}

	etag := appointmentsETag(items)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return
	}

	ok(c, http.StatusOK, ListAppointmentsResponse{Appointments: items, Total: len(items)})
}

// GetAppointment godoc
// @ID          getAppointment
// @Summary     Fetch one appointment
// @Tags        Appointments
// @Produce     json
//
// @Param       id  path  int  true  "Appointment ID"  example(1)
//
// @Success     200  {object} domain.Appointment
// @Failure     404  {object} handlers.ErrorResponse "Appointment not found"
// @Router      /appointments/{id} [get]
func (h *Handlers) GetAppointment(c *gin.Context) {
	id, okID := pathID(c, "appointment")
	if !okID {
		return
	}
	a, found := h.apptSvc.GetByID(id)
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "appointment not found")
		return
	}
	ok(c, http.StatusOK, a)
}

// UpdateAppointment godoc
// @ID          updateAppointment
// @Summary     Update an appointment
// @Description Applies a partial update. Supplied fields are revalidated; moving a scheduled appointment (or reactivating a cancelled one) rechecks slot uniqueness.
// @Tags        Appointments
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                  true  "Appointment ID"  example(1)
// @Param       body  body  booking.UpdateInput  true  "Fields to change"
//
// @Success     200  {object} domain.Appointment
// @Failure     400  {object} handlers.ErrorResponse "Invalid field"
// @Failure     404  {object} handlers.ErrorResponse "Appointment not found"
// @Failure     409  {object} handlers.ErrorResponse "Slot already booked"
// @Router      /appointments/{id} [patch]
func (h *Handlers) UpdateAppointment(c *gin.Context) {
	id, okID := pathID(c, "appointment")
	if !okID {
		return
	}

	var req booking.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	a, found, err := h.apptSvc.Update(id, req)
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "appointment not found")
		return
	}
	if err != nil {
		failBooking(c, err)
		return
	}
	h.archiveAppointment(c, a)
	ok(c, http.StatusOK, a)
}

// DeleteAppointment godoc
// @ID          deleteAppointment
// @Summary     Delete an appointment
// @Tags        Appointments
//
// @Param       id  path  int  true  "Appointment ID"  example(1)
//
// @Success     204  {string} string "No Content"
// @Failure     404  {object} handlers.ErrorResponse "Appointment not found"
// @Router      /appointments/{id} [delete]
func (h *Handlers) DeleteAppointment(c *gin.Context) {
	id, okID := pathID(c, "appointment")
	if !okID {
		return
	}
	if !h.apptSvc.Delete(id) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "appointment not found")
		return
	}
	h.unarchiveAppointment(c, id)
	noContent(c)
}

// CheckAvailability godoc
// @ID          checkAvailability
// @Summary     Probe a slot
// @Description Reports whether a (date, time) pair is still open. Pass exclude=<id> to ignore one appointment, e.g. when rescheduling it.
// @Tags        Appointments
// @Produce     json
//
// @Param       date     query  string  true   "Date (YYYY-MM-DD)"       example(2026-09-01)
// @Param       time     query  string  true   "Time (HH:MM, 24h)"       example(10:00)
// @Param       exclude  query  int     false  "Appointment id to ignore" example(3)
//
// @Success     200  {object} handlers.AvailabilityResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed date or time"
// @Router      /appointments/availability [get]
func (h *Handlers) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	timeOfDay := c.Query("time")
	if !booking.IsValidDate(date) {
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, booking.ErrInvalidDate.Error())
		return
	}
	if !booking.IsValidTime(timeOfDay) {
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, booking.ErrInvalidTime.Error())
		return
	}
	exclude := utils.AtoiDefault(c.Query("exclude"), 0)

	ok(c, http.StatusOK, AvailabilityResponse{
		Date:      date,
		Time:      timeOfDay,
		Available: h.apptSvc.IsSlotAvailable(date, timeOfDay, exclude),
	})
}
