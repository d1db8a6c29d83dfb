package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLabTestRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	TestName  string    `json:"test_name" validate:"required,min=2,max=100"`
	Result    string    `json:"result" validate:"omitempty"`
}

type UpdateLabTestRequest struct {
	TestName string `json:"test_name" validate:"required,min=2,max=100"`
	Result   string `json:"result" validate:"omitempty"`
}

// Response DTOs

type LabTestResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	TestName    string    `json:"test_name"`
	Result      string    `json:"result,omitempty"`
	TestDate    time.Time `json:"test_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LabTestListResponse struct {
	LabTests []LabTestResponse `json:"lab_tests"`
	Total    int               `json:"total"`
}
