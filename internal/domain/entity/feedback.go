package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for feedback
const (
	MinRating = 1
	MaxRating = 5
)

// IsValidRating checks if a rating value is within the accepted range
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// Feedback represents a patient's post-visit comments and rating, tied to
// exactly one appointment. A placeholder row (rating absent) is created
// together with the appointment and later updated in place when the patient
// rates the visit; the unique index on appointment_id guarantees at most one
// row per appointment.
type Feedback struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	Comments      string     `gorm:"type:text" json:"comments,omitempty"`
	Rating        *int       `gorm:"check:rating >= 1 AND rating <= 5" json:"rating,omitempty"`
	SubmittedDate *time.Time `json:"submitted_date,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment    `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Patient     PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

// IsRated checks if the patient has actually rated the visit
func (f *Feedback) IsRated() bool {
	return f.Rating != nil
}
