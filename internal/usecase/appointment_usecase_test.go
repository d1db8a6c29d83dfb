package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"healvista-server/internal/delivery/dto"
	"healvista-server/internal/domain/entity"
	"healvista-server/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentFixture struct {
	uc              AppointmentUsecase
	mock            sqlmock.Sqlmock
	db              *gorm.DB
	appointmentRepo *fakeAppointmentRepo
	feedbackRepo    *fakeFeedbackRepo
	patientRepo     *fakePatientProfileRepo
	doctorRepo      *fakeDoctorProfileRepo
	patientID       uuid.UUID
	doctorID        uuid.UUID
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	db, mock := newTestDB(t)
	log := newTestLogger()

	appointmentRepo := newFakeAppointmentRepo()
	feedbackRepo := newFakeFeedbackRepo()
	patientRepo := newFakePatientProfileRepo()
	doctorRepo := newFakeDoctorProfileRepo()
	auditService := service.NewAuditService(db, log, newFakeAuditLogRepo())

	patientID := uuid.New()
	doctorID := uuid.New()
	patientRepo.profiles[patientID] = &entity.PatientProfile{UserID: patientID}
	doctorRepo.profiles[doctorID] = &entity.DoctorProfile{UserID: doctorID}

	return &appointmentFixture{
		uc:              NewAppointmentUsecase(db, log, appointmentRepo, feedbackRepo, patientRepo, doctorRepo, auditService),
		mock:            mock,
		db:              db,
		appointmentRepo: appointmentRepo,
		feedbackRepo:    feedbackRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		patientID:       patientID,
		doctorID:        doctorID,
	}
}

func TestCreateAppointmentCreatesPlaceholderFeedback(t *testing.T) {
	f := newAppointmentFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       f.patientID,
		DoctorID:        f.doctorID,
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "persistent cough",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Status != string(entity.AppointmentStatusScheduled) {
		t.Errorf("expected status %q, got %q", entity.AppointmentStatusScheduled, resp.Status)
	}

	feedback, ok := f.feedbackRepo.rows[resp.ID]
	if !ok {
		t.Fatal("expected a placeholder feedback row for the new appointment")
	}
	if feedback.Rating != nil {
		t.Errorf("expected placeholder feedback without a rating, got %d", *feedback.Rating)
	}
	if feedback.Comments != "persistent cough" {
		t.Errorf("expected comments %q, got %q", "persistent cough", feedback.Comments)
	}
	if f.feedbackRepo.created != 1 {
		t.Errorf("expected 1 feedback insert, got %d", f.feedbackRepo.created)
	}

	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet transaction expectations: %v", err)
	}
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	f := newAppointmentFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       uuid.New(),
		DoctorID:        f.doctorID,
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}

	if f.appointmentRepo.created != 0 {
		t.Errorf("expected no appointment insert, got %d", f.appointmentRepo.created)
	}
	if f.feedbackRepo.created != 0 {
		t.Errorf("expected no feedback insert, got %d", f.feedbackRepo.created)
	}

	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet transaction expectations: %v", err)
	}
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	f := newAppointmentFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       f.patientID,
		DoctorID:        uuid.New(),
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}

	if f.appointmentRepo.created != 0 {
		t.Errorf("expected no appointment insert, got %d", f.appointmentRepo.created)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.uc.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusCompleted),
	})
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestUpdateStatusRejectsTerminalTransition(t *testing.T) {
	f := newAppointmentFixture(t)

	appointment := &entity.Appointment{
		PatientID:       f.patientID,
		DoctorID:        f.doctorID,
		AppointmentDate: time.Now(),
		Status:          entity.AppointmentStatusCompleted,
	}
	if err := f.appointmentRepo.Create(f.db, appointment); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.uc.UpdateStatus(context.Background(), appointment.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusCancelled),
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if f.appointmentRepo.rows[appointment.ID].Status != entity.AppointmentStatusCompleted {
		t.Errorf("expected status to stay %q, got %q", entity.AppointmentStatusCompleted, f.appointmentRepo.rows[appointment.ID].Status)
	}
}

func TestUpdateStatusCompletesScheduledAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	appointment := &entity.Appointment{
		PatientID:       f.patientID,
		DoctorID:        f.doctorID,
		AppointmentDate: time.Now(),
		Status:          entity.AppointmentStatusScheduled,
	}
	if err := f.appointmentRepo.Create(f.db, appointment); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	err := f.uc.UpdateStatus(context.Background(), appointment.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusCompleted),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.appointmentRepo.rows[appointment.ID].Status != entity.AppointmentStatusCompleted {
		t.Errorf("expected status %q, got %q", entity.AppointmentStatusCompleted, f.appointmentRepo.rows[appointment.ID].Status)
	}

	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet transaction expectations: %v", err)
	}
}
