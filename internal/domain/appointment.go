// Package domain defines the core data model shared by the booking engine,
// the archive store, and the HTTP layer. The Appointment type carries both
// JSON tags (API shape) and GORM tags (archive schema mapping).
package domain

import "time"

// Appointment statuses. Creation always yields StatusScheduled; the other
// two are reachable only through updates.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment types: consultation at the office or via video call.
const (
	TypeKantoor     = "kantoor"
	TypeVideobellen = "videobellen"
)

// AppointmentTypes is the closed set of accepted appointment types.
var AppointmentTypes = []string{TypeKantoor, TypeVideobellen}

// LegalAreas is the closed set of accepted legal-area codes. The values are
// opaque category codes; they are matched by exact string equality and never
// normalized or translated here.
var LegalAreas = []string{
	"ondernemingsrecht",
	"familierecht",
	"arbeidsrecht",
	"bestuursrecht",
	"verbintenissenrecht",
	"overig",
}

// Statuses is the closed set of appointment statuses.
var Statuses = []string{StatusScheduled, StatusCompleted, StatusCancelled}

// Appointment is a consultation booking. The ID is assigned once by the
// booking engine, monotonically, and is never reused; Date/Time form the
// slot, which is unique among appointments with status "scheduled".
//
// Fields:
//   - ID: engine-assigned sequential integer, starting at 1.
//   - FirstName/LastName/Phone/Description: non-empty free text.
//   - Email: mailbox-shaped text.
//   - LegalArea: one of LegalAreas.
//   - Date: calendar date, YYYY-MM-DD, never before the current day at
//     creation or when changed.
//   - Time: HH:MM, 24-hour, zero-padded.
//   - Type: one of AppointmentTypes.
//   - Status: one of Statuses.
//   - CreatedAt: set at creation, immutable.
//   - UpdatedAt: set on every successful update; nil until the first one.
type Appointment struct {
	ID          int        `json:"id"          gorm:"primaryKey;autoIncrement:false"`
	FirstName   string     `json:"firstName"   gorm:"type:TEXT;not null"`
	LastName    string     `json:"lastName"    gorm:"type:TEXT;not null"`
	Email       string     `json:"email"       gorm:"type:TEXT;not null"`
	Phone       string     `json:"phone"       gorm:"type:TEXT;not null"`
	LegalArea   string     `json:"legalArea"   gorm:"type:TEXT;not null;index"`
	Date        string     `json:"date"        gorm:"type:TEXT;not null;index:idx_slot,priority:1"`
	Time        string     `json:"time"        gorm:"type:TEXT;not null;index:idx_slot,priority:2"`
	Type        string     `json:"type"        gorm:"type:TEXT;not null"`
	Description string     `json:"description" gorm:"type:TEXT;not null"`
	Status      string     `json:"status"      gorm:"type:TEXT;not null;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// TableName returns the archive table name for Appointment.
func (Appointment) TableName() string { return "appointments" }
