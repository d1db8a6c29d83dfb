package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"full_name" validate:"required,min=2"`
	LicenseNumber  string `json:"license_number" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Biography      string `json:"biography" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	FullName       string `json:"full_name" validate:"omitempty,min=2"`
	LicenseNumber  string `json:"license_number" validate:"omitempty"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Biography      string `json:"biography" validate:"omitempty"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID        `json:"id"`
	Email          string           `json:"email"`
	FullName       string           `json:"full_name"`
	LicenseNumber  string           `json:"license_number"`
	Specialization string           `json:"specialization"`
	Biography      string           `json:"biography,omitempty"`
	FeedbackScore  *float64         `json:"feedback_score"`
	IsActive       bool             `json:"is_active"`
	Reviews        []ReviewResponse `json:"reviews,omitempty"`
}

// ReviewResponse is a feedback row presented on the doctor's detail page
type ReviewResponse struct {
	FeedbackID    uuid.UUID  `json:"feedback_id"`
	PatientName   string     `json:"patient_name"`
	Comments      string     `json:"comments,omitempty"`
	Rating        *int       `json:"rating,omitempty"`
	SubmittedDate *time.Time `json:"submitted_date,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DoctorProfileResponse represents doctor profile data nested in user responses
// DoctorRatingResponse carries the materialized feedback score for a doctor.
type DoctorRatingResponse struct {
	DoctorID      uuid.UUID `json:"doctor_id"`
	FeedbackScore *float64  `json:"feedback_score"`
}

type DoctorProfileResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	Biography      string    `json:"biography,omitempty"`
	FeedbackScore  *float64  `json:"feedback_score,omitempty"`
}
