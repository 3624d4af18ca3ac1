// Contact-form HTTP handlers.
//
// This file exposes REST endpoints for contact submissions:
//   - POST   /contacts        (submit)
//   - GET    /contacts        (list, optional ?status= filter)
//   - GET    /contacts/{id}   (fetch one)
//   - PATCH  /contacts/{id}   (partial update, e.g. staff resolving a message)
//   - DELETE /contacts/{id}   (remove)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jverhoeven/go-booking-backend/internal/contact"
	"github.com/jverhoeven/go-booking-backend/internal/domain"
	"github.com/jverhoeven/go-booking-backend/internal/http/middleware"
	"github.com/jverhoeven/go-booking-backend/internal/repo"
)

// ContactService defines the contact-form operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use.
type ContactService interface {
	Create(in contact.CreateInput) (*domain.Contact, error)
	GetAll() []domain.Contact
	GetByID(id int) (*domain.Contact, bool)
	Update(id int, in contact.UpdateInput) (*domain.Contact, bool, error)
	Delete(id int) bool
	ByStatus(status string) []domain.Contact
}

// ListContactsResponse wraps the contact collection.
type ListContactsResponse struct {
	Contacts []domain.Contact `json:"contacts"`
	Total    int              `json:"total"`
}

// archiveContact mirrors an accepted contact write into the archive.
func (h *Handlers) archiveContact(c *gin.Context, rec *domain.Contact) {
	if h.DB == nil {
		return
	}
	if err := repo.SaveContact(c.Request.Context(), h.DB, rec); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Int("id", rec.ID).Msg("archive contact failed")
	}
}

// unarchiveContact removes a deleted contact's archive snapshot.
func (h *Handlers) unarchiveContact(c *gin.Context, id int) {
	if h.DB == nil {
		return
	}
	if err := repo.DeleteContact(c.Request.Context(), h.DB, id); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Int("id", id).Msg("unarchive contact failed")
	}
}

// CreateContact godoc
// @ID          createContact
// @Summary     Submit a contact message
// @Description Validates and stores a contact-form submission with status "pending".
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       body  body  contact.CreateInput  true  "Contact payload"
//
// @Success     201  {object}  domain.Contact
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid field"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contacts [post]
func (h *Handlers) CreateContact(c *gin.Context) {
	var req contact.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	rec, err := h.contactSvc.Create(req)
	if err != nil {
		failBooking(c, err)
		return
	}
	middleware.ContactsCreated.Inc()
	h.archiveContact(c, rec)
	ok(c, http.StatusCreated, rec)
}

// ListContacts godoc
// @ID          listContacts
// @Summary     List contact messages
// @Tags        Contacts
// @Produce     json
//
// @Param       status  query  string  false "Filter by status"  example(pending)
//
// @Success     200  {object} handlers.ListContactsResponse
// @Router      /contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	var items []domain.Contact
	if status := c.Query("status"); status != "" {
		items = h.contactSvc.ByStatus(status)
	} else {
		items = h.contactSvc.GetAll()
	}
	ok(c, http.StatusOK, ListContactsResponse{Contacts: items, Total: len(items)})
}

// GetContact godoc
// @ID          getContact
// @Summary     Fetch one contact message
// @Tags        Contacts
// @Produce     json
//
// @Param       id  path  int  true  "Contact ID"  example(1)
//
// @Success     200  {object} domain.Contact
// @Failure     404  {object} handlers.ErrorResponse "Contact not found"
// @Router      /contacts/{id} [get]
func (h *Handlers) GetContact(c *gin.Context) {
	id, okID := pathID(c, "contact")
	if !okID {
		return
	}
	rec, found := h.contactSvc.GetByID(id)
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "contact not found")
		return
	}
	ok(c, http.StatusOK, rec)
}

// UpdateContact godoc
// @ID          updateContact
// @Summary     Update a contact message
// @Description Applies a partial update, typically flipping status to "resolved".
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                  true  "Contact ID"  example(1)
// @Param       body  body  contact.UpdateInput  true  "Fields to change"
//
// @Success     200  {object} domain.Contact
// @Failure     400  {object} handlers.ErrorResponse "Invalid field"
// @Failure     404  {object} handlers.ErrorResponse "Contact not found"
// @Router      /contacts/{id} [patch]
func (h *Handlers) UpdateContact(c *gin.Context) {
	id, okID := pathID(c, "contact")
	if !okID {
		return
	}

	var req contact.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	rec, found, err := h.contactSvc.Update(id, req)
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "contact not found")
		return
	}
	if err != nil {
		failBooking(c, err)
		return
	}
	h.archiveContact(c, rec)
	ok(c, http.StatusOK, rec)
}

// DeleteContact godoc
// @ID          deleteContact
// @Summary     Delete a contact message
// @Tags        Contacts
//
// @Param       id  path  int  true  "Contact ID"  example(1)
//
// @Success     204  {string} string "No Content"
// @Failure     404  {object} handlers.ErrorResponse "Contact not found"
// @Router      /contacts/{id} [delete]
func (h *Handlers) DeleteContact(c *gin.Context) {
	id, okID := pathID(c, "contact")
	if !okID {
		return
	}
	if !h.contactSvc.Delete(id) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "contact not found")
		return
	}
	h.unarchiveContact(c, id)
	noContent(c)
}
