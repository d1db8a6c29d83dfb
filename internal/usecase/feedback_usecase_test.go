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
)

type feedbackFixture struct {
	uc            FeedbackUsecase
	mock          sqlmock.Sqlmock
	feedbackRepo  *fakeFeedbackRepo
	doctorRepo    *fakeDoctorProfileRepo
	doctorID      uuid.UUID
	appointmentID uuid.UUID
}

// newFeedbackFixture seeds one scheduled appointment with its placeholder
// feedback row, the state SubmitFeedback always starts from.
func newFeedbackFixture(t *testing.T) *feedbackFixture {
	t.Helper()

	db, mock := newTestDB(t)
	log := newTestLogger()

	feedbackRepo := newFakeFeedbackRepo()
	appointmentRepo := newFakeAppointmentRepo()
	doctorRepo := newFakeDoctorProfileRepo()
	auditService := service.NewAuditService(db, log, newFakeAuditLogRepo())
	ratingService := service.NewRatingService(log, feedbackRepo, doctorRepo)

	patientID := uuid.New()
	doctorID := uuid.New()
	doctorRepo.profiles[doctorID] = &entity.DoctorProfile{UserID: doctorID}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: time.Now(),
		Status:          entity.AppointmentStatusScheduled,
	}
	if err := appointmentRepo.Create(db, appointment); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	if err := feedbackRepo.Create(db, &entity.Feedback{
		AppointmentID: appointment.ID,
		PatientID:     patientID,
		Comments:      "checkup",
	}); err != nil {
		t.Fatalf("failed to seed feedback: %v", err)
	}
	feedbackRepo.doctorOf[appointment.ID] = doctorID

	return &feedbackFixture{
		uc:            NewFeedbackUsecase(db, log, feedbackRepo, appointmentRepo, doctorRepo, ratingService, auditService),
		mock:          mock,
		feedbackRepo:  feedbackRepo,
		doctorRepo:    doctorRepo,
		doctorID:      doctorID,
		appointmentID: appointment.ID,
	}
}

func (f *feedbackFixture) submit(t *testing.T, rating *int, comments string) *dto.FeedbackResponse {
	t.Helper()

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.SubmitFeedback(context.Background(), &dto.SubmitFeedbackRequest{
		AppointmentID: f.appointmentID,
		Comments:      comments,
		Rating:        rating,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func (f *feedbackFixture) doctorScore() *float64 {
	return f.doctorRepo.profiles[f.doctorID].FeedbackScore
}

func TestSubmitFeedbackUpdatesRowInPlace(t *testing.T) {
	f := newFeedbackFixture(t)

	first := 5
	f.submit(t, &first, "great visit")

	second := 3
	resp := f.submit(t, &second, "changed my mind")

	// Resubmission must never insert a second row for the appointment
	if f.feedbackRepo.created != 1 {
		t.Errorf("expected 1 feedback row, got %d inserts", f.feedbackRepo.created)
	}
	if f.feedbackRepo.updated != 2 {
		t.Errorf("expected 2 in-place updates, got %d", f.feedbackRepo.updated)
	}

	row := f.feedbackRepo.rows[f.appointmentID]
	if row.Rating == nil || *row.Rating != 3 {
		t.Errorf("expected stored rating 3, got %v", row.Rating)
	}
	if row.SubmittedDate == nil {
		t.Error("expected submitted date to be set")
	}
	if resp.Comments != "changed my mind" {
		t.Errorf("expected comments %q, got %q", "changed my mind", resp.Comments)
	}

	if score := f.doctorScore(); score == nil || *score != 3.0 {
		t.Errorf("expected recomputed score 3.0, got %v", score)
	}

	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet transaction expectations: %v", err)
	}
}

func TestSubmitFeedbackRecomputesDoctorScore(t *testing.T) {
	f := newFeedbackFixture(t)

	if f.doctorScore() != nil {
		t.Fatalf("expected no score before any rating, got %v", f.doctorScore())
	}

	rating := 5
	f.submit(t, &rating, "excellent")

	if score := f.doctorScore(); score == nil || *score != 5.0 {
		t.Errorf("expected score 5.0, got %v", score)
	}
}

func TestSubmitFeedbackClearedRatingRecomputesScore(t *testing.T) {
	f := newFeedbackFixture(t)

	rating := 5
	f.submit(t, &rating, "excellent")
	if score := f.doctorScore(); score == nil || *score != 5.0 {
		t.Fatalf("expected score 5.0 after rating, got %v", score)
	}

	// A comment-only resubmission drops the rating; the materialized score
	// must follow the now-empty rated set
	f.submit(t, nil, "second thoughts, rating withdrawn")

	row := f.feedbackRepo.rows[f.appointmentID]
	if row.Rating != nil {
		t.Errorf("expected rating to be cleared, got %d", *row.Rating)
	}
	if score := f.doctorScore(); score != nil {
		t.Errorf("expected score to reset to nil, got %v", *score)
	}
}

func TestSubmitFeedbackUnknownAppointment(t *testing.T) {
	f := newFeedbackFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	rating := 4
	_, err := f.uc.SubmitFeedback(context.Background(), &dto.SubmitFeedbackRequest{
		AppointmentID: uuid.New(),
		Rating:        &rating,
	})
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}

	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet transaction expectations: %v", err)
	}
}

func TestSubmitFeedbackRatingOutOfRange(t *testing.T) {
	f := newFeedbackFixture(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.uc.SubmitFeedback(context.Background(), &dto.SubmitFeedbackRequest{
			AppointmentID: f.appointmentID,
			Rating:        &rating,
		})
		if !errors.Is(err, ErrRatingOutOfRange) {
			t.Errorf("rating %d: expected ErrRatingOutOfRange, got %v", rating, err)
		}
	}

	if f.feedbackRepo.updated != 0 {
		t.Errorf("expected no updates for rejected ratings, got %d", f.feedbackRepo.updated)
	}
}
