package repository

import (
	"errors"

	"healvista-server/internal/domain/entity"
	domainRepo "healvista-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Create(feedback).Error
}

func (r *feedbackRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := db.Where("appointment_id = ?", appointmentID).First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindByAppointmentIDForUpdate(db *gorm.DB, appointmentID uuid.UUID) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("appointment_id = ?", appointmentID).
		First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) Update(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Save(feedback).Error
}

func (r *feedbackRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := db.Preload("Patient.User").
		Joins("JOIN appointments ON appointments.id = feedbacks.appointment_id").
		Where("appointments.doctor_id = ?", doctorID).
		Order("feedbacks.submitted_date DESC NULLS LAST").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) RatingsByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]int, error) {
	var ratings []int
	err := db.Model(&entity.Feedback{}).
		Joins("JOIN appointments ON appointments.id = feedbacks.appointment_id").
		Where("appointments.doctor_id = ? AND feedbacks.rating IS NOT NULL", doctorID).
		Pluck("feedbacks.rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
