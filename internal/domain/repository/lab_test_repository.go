package repository

import (
	"context"

	"healvista-server/internal/domain/entity"

	"github.com/google/uuid"
)

type LabTestRepository interface {
	Create(ctx context.Context, labTest *entity.LabTest) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.LabTest, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LabTest, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.LabTest, error)
	Update(ctx context.Context, labTest *entity.LabTest) error
	Delete(ctx context.Context, id uuid.UUID) error
}
