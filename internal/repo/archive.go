// Package repo implements the archive store backed by GORM. This file
// provides the write-through helpers for appointment and contact snapshots.
//
// All functions are context-aware and accept a *gorm.DB handle. They follow
// the "thin repository" approach: no business logic, no validation — the
// booking engine has already enforced every rule before a record gets here.
//
// Error semantics: raw gorm errors are propagated; callers treat archive
// failures as non-fatal (the engine remains the source of truth) and log them.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jverhoeven/go-booking-backend/internal/domain"
)

// SaveAppointment upserts an appointment snapshot by its engine-assigned id.
func SaveAppointment(ctx context.Context, db *gorm.DB, a *domain.Appointment) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(a).Error
}

// DeleteAppointment removes an appointment snapshot. Deleting an id that was
// never mirrored is not an error.
func DeleteAppointment(ctx context.Context, db *gorm.DB, id int) error {
	return db.WithContext(ctx).Delete(&domain.Appointment{}, "id = ?", id).Error
}

// ListAppointments returns every mirrored appointment ordered by id, which is
// the engine's creation order. Used to re-seed the engine at boot.
func ListAppointments(ctx context.Context, db *gorm.DB) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// SaveContact upserts a contact snapshot by its engine-assigned id.
func SaveContact(ctx context.Context, db *gorm.DB, c *domain.Contact) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(c).Error
}

// DeleteContact removes a contact snapshot.
func DeleteContact(ctx context.Context, db *gorm.DB, id int) error {
	return db.WithContext(ctx).Delete(&domain.Contact{}, "id = ?", id).Error
}

// ListContacts returns every mirrored contact ordered by id.
func ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}
