package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabTest represents a laboratory test ordered for a patient. The result is
// empty until the lab records it.
type LabTest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	TestName  string    `gorm:"type:varchar(100);not null" json:"test_name"`
	Result    string    `gorm:"type:text" json:"result,omitempty"`
	TestDate  time.Time `gorm:"not null;index" json:"test_date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}

// HasResult checks if the lab has recorded a result for this test
func (t *LabTest) HasResult() bool {
	return t.Result != ""
}
