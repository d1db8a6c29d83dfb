package usecase

import (
	"context"
	"errors"
	"time"

	"healvista-server/internal/converter"
	"healvista-server/internal/delivery/dto"
	"healvista-server/internal/domain/entity"
	"healvista-server/internal/domain/repository"
	"healvista-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLabTestNotFound = errors.New("lab test not found")
)

type LabTestUsecase interface {
	Create(ctx context.Context, req *dto.CreateLabTestRequest) (*dto.LabTestResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.LabTestResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.LabTestResponse, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.LabTestListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLabTestRequest) (*dto.LabTestResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type labTestUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	labTestRepo        repository.LabTestRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewLabTestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	labTestRepo repository.LabTestRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) LabTestUsecase {
	return &labTestUsecase{
		db:                 db,
		log:                log,
		labTestRepo:        labTestRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

// Create orders a lab test for a known patient. The test date is set at
// creation time; the result may arrive later through Update.
func (u *labTestUsecase) Create(ctx context.Context, req *dto.CreateLabTestRequest) (*dto.LabTestResponse, error) {
	patient, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	labTest := &entity.LabTest{
		PatientID: req.PatientID,
		TestName:  req.TestName,
		Result:    req.Result,
		TestDate:  time.Now(),
	}

	if err := u.labTestRepo.Create(ctx, labTest); err != nil {
		u.log.Warnf("Failed to create lab test: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionLabTestCreate, "lab_test", labTest.ID.String(), converter.LabTestToResponse(labTest)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.LabTestToResponse(labTest), nil
}

func (u *labTestUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.LabTestResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	labTests, total, err := u.labTestRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find lab tests: %+v", err)
		return nil, 0, err
	}

	return converter.LabTestsToResponses(labTests), total, nil
}

func (u *labTestUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.LabTestResponse, error) {
	labTest, err := u.labTestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, ErrLabTestNotFound
	}

	return converter.LabTestToResponse(labTest), nil
}

// GetByPatient returns the patient's lab tests, most recent test date first.
func (u *labTestUsecase) GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.LabTestListResponse, error) {
	patient, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	labTests, err := u.labTestRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find lab tests for patient %s: %+v", patientID, err)
		return nil, err
	}

	responses := converter.LabTestsToResponses(labTests)
	return &dto.LabTestListResponse{
		LabTests: responses,
		Total:    len(responses),
	}, nil
}

func (u *labTestUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLabTestRequest) (*dto.LabTestResponse, error) {
	labTest, err := u.labTestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, ErrLabTestNotFound
	}

	oldValue := converter.LabTestToResponse(labTest)

	labTest.TestName = req.TestName
	labTest.Result = req.Result

	if err := u.labTestRepo.Update(ctx, labTest); err != nil {
		u.log.Warnf("Failed to update lab test %s: %+v", id, err)
		return nil, err
	}

	newValue := converter.LabTestToResponse(labTest)
	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionLabTestUpdate, "lab_test", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *labTestUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	labTest, err := u.labTestRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if labTest == nil {
		return ErrLabTestNotFound
	}

	if err := u.labTestRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete lab test %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionLabTestDelete, "lab_test", id.String(), converter.LabTestToResponse(labTest)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
