package dto

import (
	"testing"

	"healvista-server/pkg/validator"

	"github.com/google/uuid"
)

func TestCreateLabTestRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		name    string
		req     CreateLabTestRequest
		wantErr bool
	}{
		{
			"valid request without result",
			CreateLabTestRequest{PatientID: uuid.New(), TestName: "Complete Blood Count"},
			false,
		},
		{
			"valid request with result",
			CreateLabTestRequest{PatientID: uuid.New(), TestName: "Lipid Panel", Result: "within normal limits"},
			false,
		},
		{
			"missing patient",
			CreateLabTestRequest{TestName: "Complete Blood Count"},
			true,
		},
		{
			"missing test name",
			CreateLabTestRequest{PatientID: uuid.New()},
			true,
		},
		{
			"test name too short",
			CreateLabTestRequest{PatientID: uuid.New(), TestName: "X"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no validation error, got %v", err)
			}
		})
	}
}
