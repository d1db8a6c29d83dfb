package usecase

import (
	"context"
	"errors"

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
	ErrMedicineNotFound = errors.New("medicine not found")
)

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.MedicineResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	auditService service.AuditService
}

func NewMedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
		auditService: auditService,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine := &entity.Medicine{
		Name:         req.Name,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		Stock:        req.Stock,
		Manufacturer: req.Manufacturer,
		ExpiryDate:   req.ExpiryDate,
	}

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionMedicineCreate, "medicine", medicine.ID.String(), converter.MedicineToResponse(medicine)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.MedicineResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	medicines, total, err := u.medicineRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find medicines: %+v", err)
		return nil, 0, err
	}

	return converter.MedicinesToResponses(medicines), total, nil
}

func (u *medicineUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	oldValue := converter.MedicineToResponse(medicine)

	medicine.Name = req.Name
	medicine.Description = req.Description
	medicine.UnitPrice = req.UnitPrice
	medicine.Stock = req.Stock
	medicine.Manufacturer = req.Manufacturer
	medicine.ExpiryDate = req.ExpiryDate

	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		u.log.Warnf("Failed to update medicine %s: %+v", id, err)
		return nil, err
	}

	newValue := converter.MedicineToResponse(medicine)
	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionMedicineUpdate, "medicine", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	if err := u.medicineRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete medicine %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), auditActor(ctx), entity.AuditActionMedicineDelete, "medicine", id.String(), converter.MedicineToResponse(medicine)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
