package service

import (
	"context"

	"healvista-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RatingService maintains the materialized feedback score on the doctor
// profile. Every recomputation reads the full set of present ratings for the
// doctor and writes a single summary value, so concurrent recomputations for
// the same doctor are idempotent and the last commit wins. Incremental
// running sums are deliberately not used: they go stale when a patient edits
// an existing rating.
type RatingService interface {
	// RecomputeDoctorScore recalculates the doctor's feedback score from the
	// authoritative feedback set and persists it within the given
	// transaction. Returns the new score, nil when the doctor has no rated
	// feedback.
	RecomputeDoctorScore(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID) (*float64, error)
}

type ratingService struct {
	log               *logrus.Logger
	feedbackRepo      repository.FeedbackRepository
	doctorProfileRepo repository.DoctorProfileRepository
}

func NewRatingService(
	log *logrus.Logger,
	feedbackRepo repository.FeedbackRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
) RatingService {
	return &ratingService{
		log:               log,
		feedbackRepo:      feedbackRepo,
		doctorProfileRepo: doctorProfileRepo,
	}
}

func (s *ratingService) RecomputeDoctorScore(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID) (*float64, error) {
	ratings, err := s.feedbackRepo.RatingsByDoctorID(tx, doctorID)
	if err != nil {
		s.log.Warnf("Failed to load ratings for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	score := meanRating(ratings)

	if err := s.doctorProfileRepo.UpdateFeedbackScore(tx, doctorID, score); err != nil {
		s.log.Warnf("Failed to update feedback score for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	if score != nil {
		s.log.Infof("Feedback score recomputed: doctor=%s, score=%.2f, ratings=%d", doctorID, *score, len(ratings))
	}

	return score, nil
}

// meanRating returns the arithmetic mean of the ratings, nil for an empty set
func meanRating(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	mean := float64(sum) / float64(len(ratings))
	return &mean
}
