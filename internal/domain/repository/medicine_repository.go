package repository

import (
	"context"

	"healvista-server/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Medicine, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
}
