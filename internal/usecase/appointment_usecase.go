package usecase

import (
	"context"
	"errors"

	"healvista-server/internal/converter"
	"healvista-server/internal/delivery/dto"
	"healvista-server/internal/delivery/http/middleware"
	"healvista-server/internal/domain/entity"
	"healvista-server/internal/domain/repository"
	"healvista-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("invalid appointment status transition")
	ErrUnknownStatus       = errors.New("unknown appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	CountAll(ctx context.Context) (*dto.AppointmentCountResponse, error)
}

type appointmentUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	appointmentRepo    repository.AppointmentRepository
	feedbackRepo       repository.FeedbackRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	auditService       service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	feedbackRepo repository.FeedbackRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                 db,
		log:                log,
		appointmentRepo:    appointmentRepo,
		feedbackRepo:       feedbackRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		auditService:       auditService,
	}
}

// CreateAppointment inserts a new Scheduled appointment together with its
// placeholder feedback row. Both inserts share one transaction: an
// appointment without its feedback row, or the reverse, must never be
// observable.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Resolve both parties before writing anything
	patient, err := u.patientProfileRepo.FindByUserID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorProfileRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Status:          entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// Placeholder feedback: rating absent until the patient rates the visit,
	// comments seeded from the booking reason
	feedback := &entity.Feedback{
		AppointmentID: appointment.ID,
		PatientID:     req.PatientID,
		Comments:      req.Reason,
	}

	if err := u.feedbackRepo.Create(tx, feedback); err != nil {
		u.log.Warnf("Failed to create placeholder feedback for appointment %s: %+v", appointment.ID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, auditActor(ctx), entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, patient=%s, doctor=%s", appointment.ID, req.PatientID, req.DoctorID)

	appointment.Feedback = feedback
	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus transitions an appointment through its status machine. The row
// is locked for the duration of the transaction so concurrent transitions on
// the same appointment serialize.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) error {
	next := entity.AppointmentStatus(req.Status)
	if !next.IsValid() {
		return ErrUnknownStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByIDForUpdate(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if !appointment.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	oldStatus := appointment.Status
	if err := u.appointmentRepo.UpdateStatus(tx, appointmentID, next); err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", appointmentID, err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, auditActor(ctx), entity.AuditActionAppointmentStatus, "appointment", appointmentID.String(), string(oldStatus), string(next)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment status updated: id=%s, %s -> %s", appointmentID, oldStatus, next)
	return nil
}

// ListByDoctor returns the doctor's appointments joined with their feedback
// and the patient's display name, most recent appointment date first.
func (u *appointmentUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	items := converter.AppointmentsToDoctorListItems(appointments)
	return &dto.AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}, nil
}

// ListByPatient returns the patient's appointments joined with their feedback
// and the doctor's display name, most recent appointment date first.
func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	items := converter.AppointmentsToPatientListItems(appointments)
	return &dto.AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}, nil
}

// auditActor returns the authenticated user's id for audit attribution, nil
// when the context carries no identity. A zero UUID must never reach the
// audit log's user foreign key.
func auditActor(ctx context.Context) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}

func (u *appointmentUsecase) CountAll(ctx context.Context) (*dto.AppointmentCountResponse, error) {
	total, err := u.appointmentRepo.CountAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentCountResponse{Total: total}, nil
}
