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
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error)
	GetDoctorRating(ctx context.Context, doctorID uuid.UUID) (*float64, error)
}

type feedbackUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	feedbackRepo    repository.FeedbackRepository
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	ratingService   service.RatingService
	auditService    service.AuditService
}

func NewFeedbackUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	feedbackRepo repository.FeedbackRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	ratingService service.RatingService,
	auditService service.AuditService,
) FeedbackUsecase {
	return &feedbackUsecase{
		db:              db,
		log:             log,
		feedbackRepo:    feedbackRepo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		ratingService:   ratingService,
		auditService:    auditService,
	}
}

// SubmitFeedback updates the appointment's feedback row in place and, when a
// rating is present, recomputes the doctor's feedback score within the same
// transaction.
//
// The feedback row is locked for the duration of the transaction, so two
// concurrent submissions for the same appointment serialize and the final row
// reflects exactly one of them. The placeholder row is guaranteed to exist
// for every known appointment, so a missing row means the appointment id
// itself is unknown.
func (u *feedbackUsecase) SubmitFeedback(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	if req.Rating != nil && !entity.IsValidRating(*req.Rating) {
		return nil, ErrRatingOutOfRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	feedback, err := u.feedbackRepo.FindByAppointmentIDForUpdate(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find feedback for appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.FeedbackToResponse(feedback)
	wasRated := feedback.IsRated()

	now := time.Now()
	feedback.Comments = req.Comments
	feedback.Rating = req.Rating
	feedback.SubmittedDate = &now

	if err := u.feedbackRepo.Update(tx, feedback); err != nil {
		u.log.Warnf("Failed to update feedback %s: %+v", feedback.ID, err)
		return nil, err
	}

	// A rating write changes the doctor's aggregate; recompute it from the
	// authoritative set before the transaction commits. A resubmission that
	// drops a previously present rating shrinks that set, so it triggers the
	// recompute too.
	if wasRated || feedback.IsRated() {
		appointment, err := u.appointmentRepo.FindByID(tx, feedback.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", feedback.AppointmentID, err)
			return nil, err
		}
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}

		if _, err := u.ratingService.RecomputeDoctorScore(ctx, tx, appointment.DoctorID); err != nil {
			return nil, err
		}
	}

	newValue := converter.FeedbackToResponse(feedback)
	if err := u.auditService.LogUpdate(ctx, tx, auditActor(ctx), entity.AuditActionFeedbackSubmit, "feedback", feedback.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Feedback submitted: appointment=%s, rated=%t", req.AppointmentID, feedback.IsRated())
	return newValue, nil
}

// GetDoctorRating returns the materialized feedback score: the value written
// by the last successful recomputation, nil when the doctor has no rated
// feedback. It is never recomputed lazily on read.
func (u *feedbackUsecase) GetDoctorRating(ctx context.Context, doctorID uuid.UUID) (*float64, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return profile.FeedbackScore, nil
}
