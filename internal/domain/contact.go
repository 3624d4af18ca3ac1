package domain

import "time"

// Contact statuses. New submissions start as StatusPending; staff move them
// along via updates. Unlike appointment statuses this set is advisory, not
// closed: the admin panel historically used free-form statuses.
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// Contact is a contact-form submission. Structurally a simpler sibling of
// Appointment: same id/lifecycle rules, no slot concept.
type Contact struct {
	ID        int        `json:"id"      gorm:"primaryKey;autoIncrement:false"`
	Name      string     `json:"name"    gorm:"type:TEXT;not null"`
	Email     string     `json:"email"   gorm:"type:TEXT;not null"`
	Phone     string     `json:"phone,omitempty" gorm:"type:TEXT"`
	Subject   string     `json:"subject" gorm:"type:TEXT;not null"`
	Message   string     `json:"message" gorm:"type:TEXT;not null"`
	Status    string     `json:"status"  gorm:"type:TEXT;not null;index"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// TableName returns the archive table name for Contact.
func (Contact) TableName() string { return "contacts" }
