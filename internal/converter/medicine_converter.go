package converter

import (
	"healvista-server/internal/delivery/dto"
	"healvista-server/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity to MedicineResponse DTO
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:           medicine.ID,
		Name:         medicine.Name,
		Description:  medicine.Description,
		UnitPrice:    medicine.UnitPrice,
		Stock:        medicine.Stock,
		Manufacturer: medicine.Manufacturer,
		ExpiryDate:   medicine.ExpiryDate,
		CreatedAt:    medicine.CreatedAt,
		UpdatedAt:    medicine.UpdatedAt,
	}
}

// MedicinesToResponses converts a slice of Medicine entities to slice of MedicineResponse DTOs
func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i, medicine := range medicines {
		resp := MedicineToResponse(&medicine)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
