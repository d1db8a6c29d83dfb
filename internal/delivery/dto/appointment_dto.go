package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Reason          string    `json:"reason" validate:"omitempty,max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Scheduled Completed Cancelled"`
}

type SubmitFeedbackRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Comments      string    `json:"comments" validate:"omitempty,max=2000"`
	Rating        *int      `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID         `json:"appointment_id"`
	PatientID       uuid.UUID         `json:"patient_id"`
	DoctorID        uuid.UUID         `json:"doctor_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Status          string            `json:"status"`
	Feedback        *FeedbackResponse `json:"feedback,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// AppointmentListItem is one row of a doctor's or patient's appointment list:
// the appointment joined with its feedback and the counterpart's display name.
type AppointmentListItem struct {
	ID                uuid.UUID  `json:"appointment_id"`
	PatientID         uuid.UUID  `json:"patient_id"`
	DoctorID          uuid.UUID  `json:"doctor_id"`
	CounterpartName   string     `json:"counterpart_name"`
	AppointmentDate   time.Time  `json:"appointment_date"`
	Status            string     `json:"status"`
	Comments          string     `json:"comments,omitempty"`
	Rating            *int       `json:"rating,omitempty"`
	FeedbackSubmitted *time.Time `json:"feedback_submitted_date,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentListItem `json:"appointments"`
	Total        int                   `json:"total"`
}

type FeedbackResponse struct {
	ID            uuid.UUID  `json:"feedback_id"`
	AppointmentID uuid.UUID  `json:"appointment_id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	Comments      string     `json:"comments,omitempty"`
	Rating        *int       `json:"rating,omitempty"`
	SubmittedDate *time.Time `json:"submitted_date,omitempty"`
}

type AppointmentCountResponse struct {
	Total int64 `json:"total"`
}
