package repository

import (
	"healvista-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	// UpdateFeedbackScore writes the materialized rating mean for a doctor.
	// Only the rating service may call this.
	UpdateFeedbackScore(db *gorm.DB, userID uuid.UUID, score *float64) error
}
