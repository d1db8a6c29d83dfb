package repository

import (
	"healvista-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(db *gorm.DB, feedback *entity.Feedback) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Feedback, error)
	// FindByAppointmentIDForUpdate locks the feedback row until the
	// surrounding transaction commits, so concurrent submissions for the
	// same appointment serialize and the last writer wins whole.
	FindByAppointmentIDForUpdate(db *gorm.DB, appointmentID uuid.UUID) (*entity.Feedback, error)
	Update(db *gorm.DB, feedback *entity.Feedback) error
	// FindByDoctorID returns all feedback rows whose appointment belongs to
	// the doctor, most recently submitted first.
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Feedback, error)
	// RatingsByDoctorID returns every present rating across the doctor's
	// feedback rows. This is the authoritative set the rating service
	// recomputes the feedback score from.
	RatingsByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]int, error)
}
