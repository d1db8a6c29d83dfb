package converter

import (
	"healvista-server/internal/delivery/dto"
	"healvista-server/internal/domain/entity"
)

// LabTestToResponse converts a LabTest entity to LabTestResponse DTO. The
// patient name is filled in when the Patient relation is loaded.
func LabTestToResponse(labTest *entity.LabTest) *dto.LabTestResponse {
	if labTest == nil {
		return nil
	}

	response := &dto.LabTestResponse{
		ID:        labTest.ID,
		PatientID: labTest.PatientID,
		TestName:  labTest.TestName,
		Result:    labTest.Result,
		TestDate:  labTest.TestDate,
		CreatedAt: labTest.CreatedAt,
		UpdatedAt: labTest.UpdatedAt,
	}

	if labTest.Patient != nil {
		response.PatientName = labTest.Patient.User.FullName
	}

	return response
}

// LabTestsToResponses converts a slice of LabTest entities to slice of LabTestResponse DTOs
func LabTestsToResponses(labTests []entity.LabTest) []dto.LabTestResponse {
	responses := make([]dto.LabTestResponse, len(labTests))
	for i, labTest := range labTests {
		resp := LabTestToResponse(&labTest)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
