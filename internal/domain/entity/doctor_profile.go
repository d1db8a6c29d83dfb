package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data.
//
// FeedbackScore is the materialized mean of all present ratings across this
// doctor's feedback rows. It is recomputed from the authoritative feedback set
// by the rating service after every rating write and must never be written
// directly by any other path. NULL until the doctor has rated feedback.
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber  string    `gorm:"column:license_number;type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography      string    `gorm:"type:text" json:"biography,omitempty"`
	FeedbackScore  *float64  `gorm:"type:numeric(3,2)" json:"feedback_score,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
