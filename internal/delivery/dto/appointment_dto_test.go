package dto

import (
	"testing"
	"time"

	"healvista-server/pkg/validator"

	"github.com/google/uuid"
)

func TestSubmitFeedbackRequestRatingBounds(t *testing.T) {
	v := validator.NewValidator()

	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name    string
		rating  *int
		wantErr bool
	}{
		{"no rating is a comment-only update", nil, false},
		{"minimum rating", intPtr(1), false},
		{"maximum rating", intPtr(5), false},
		{"below minimum", intPtr(0), true},
		{"above maximum", intPtr(6), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SubmitFeedbackRequest{
				AppointmentID: uuid.New(),
				Comments:      "ok",
				Rating:        tt.rating,
			}
			err := v.Validate(&req)
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error for rating %v, got nil", tt.rating)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no validation error for rating %v, got %v", tt.rating, err)
			}
		})
	}
}

func TestSubmitFeedbackRequestRequiresAppointmentID(t *testing.T) {
	v := validator.NewValidator()

	req := SubmitFeedbackRequest{Comments: "missing appointment"}
	if err := v.Validate(&req); err == nil {
		t.Error("expected validation error for zero appointment ID, got nil")
	}
}

func TestUpdateAppointmentStatusRequest(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		status  string
		wantErr bool
	}{
		{"Scheduled", false},
		{"Completed", false},
		{"Cancelled", false},
		{"", true},
		{"completed", true},
		{"Done", true},
	}

	for _, tt := range tests {
		req := UpdateAppointmentStatusRequest{Status: tt.status}
		err := v.Validate(&req)
		if tt.wantErr && err == nil {
			t.Errorf("expected validation error for status %q, got nil", tt.status)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("expected no validation error for status %q, got %v", tt.status, err)
		}
	}
}

func TestCreateAppointmentRequest(t *testing.T) {
	v := validator.NewValidator()

	valid := CreateAppointmentRequest{
		PatientID:       uuid.New(),
		DoctorID:        uuid.New(),
		AppointmentDate: time.Now().Add(24 * time.Hour),
	}
	if err := v.Validate(&valid); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	missing := CreateAppointmentRequest{DoctorID: uuid.New()}
	if err := v.Validate(&missing); err == nil {
		t.Error("expected validation error for missing fields, got nil")
	}
}
