package repository

import (
	"context"
	"errors"

	"healvista-server/internal/domain/entity"
	domainRepo "healvista-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labTestRepository struct {
	db *gorm.DB
}

func NewLabTestRepository(db *gorm.DB) domainRepo.LabTestRepository {
	return &labTestRepository{db: db}
}

func (r *labTestRepository) Create(ctx context.Context, labTest *entity.LabTest) error {
	return r.db.WithContext(ctx).Create(labTest).Error
}

func (r *labTestRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.LabTest, int64, error) {
	var labTests []entity.LabTest
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.LabTest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Patient.User").
		Limit(limit).Offset(offset).
		Order("test_date DESC").
		Find(&labTests).Error; err != nil {
		return nil, 0, err
	}

	return labTests, total, nil
}

func (r *labTestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LabTest, error) {
	var labTest entity.LabTest
	err := r.db.WithContext(ctx).Preload("Patient.User").Where("id = ?", id).First(&labTest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &labTest, nil
}

func (r *labTestRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.LabTest, error) {
	var labTests []entity.LabTest
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("test_date DESC").
		Find(&labTests).Error
	if err != nil {
		return nil, err
	}
	return labTests, nil
}

func (r *labTestRepository) Update(ctx context.Context, labTest *entity.LabTest) error {
	return r.db.WithContext(ctx).Save(labTest).Error
}

func (r *labTestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.LabTest{}).Error
}
