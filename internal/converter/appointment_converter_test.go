package converter

import (
	"testing"
	"time"

	"healvista-server/internal/domain/entity"

	"github.com/google/uuid"
)

func TestAppointmentToResponseNil(t *testing.T) {
	if got := AppointmentToResponse(nil); got != nil {
		t.Errorf("expected nil response for nil appointment, got %v", got)
	}
}

func TestAppointmentToResponseWithFeedback(t *testing.T) {
	rating := 5
	now := time.Now()
	appointment := &entity.Appointment{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		Status:    entity.AppointmentStatusCompleted,
		Feedback: &entity.Feedback{
			ID:            uuid.New(),
			Comments:      "Great visit",
			Rating:        &rating,
			SubmittedDate: &now,
		},
	}

	resp := AppointmentToResponse(appointment)
	if resp == nil {
		t.Fatal("expected response, got nil")
	}
	if resp.Status != "Completed" {
		t.Errorf("expected status Completed, got %q", resp.Status)
	}
	if resp.Feedback == nil {
		t.Fatal("expected feedback in response, got nil")
	}
	if resp.Feedback.Rating == nil || *resp.Feedback.Rating != 5 {
		t.Errorf("expected rating 5, got %v", resp.Feedback.Rating)
	}
}

func TestAppointmentsToDoctorListItems(t *testing.T) {
	rating := 4
	appointments := []entity.Appointment{
		{
			ID:     uuid.New(),
			Status: entity.AppointmentStatusCompleted,
			Patient: entity.PatientProfile{
				User: entity.User{FullName: "Jane Roe"},
			},
			Feedback: &entity.Feedback{Comments: "Helpful", Rating: &rating},
		},
		{
			ID:     uuid.New(),
			Status: entity.AppointmentStatusScheduled,
			Patient: entity.PatientProfile{
				User: entity.User{FullName: "John Doe"},
			},
		},
	}

	items := AppointmentsToDoctorListItems(appointments)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].CounterpartName != "Jane Roe" {
		t.Errorf("expected counterpart Jane Roe, got %q", items[0].CounterpartName)
	}
	if items[0].Rating == nil || *items[0].Rating != 4 {
		t.Errorf("expected rating 4, got %v", items[0].Rating)
	}

	// Placeholder feedback row absent: no rating or comments on the item.
	if items[1].CounterpartName != "John Doe" {
		t.Errorf("expected counterpart John Doe, got %q", items[1].CounterpartName)
	}
	if items[1].Rating != nil {
		t.Errorf("expected no rating, got %v", *items[1].Rating)
	}
}

func TestAppointmentsToPatientListItems(t *testing.T) {
	appointments := []entity.Appointment{
		{
			ID:     uuid.New(),
			Status: entity.AppointmentStatusScheduled,
			Doctor: entity.DoctorProfile{
				User: entity.User{FullName: "Dr. Smith"},
			},
		},
	}

	items := AppointmentsToPatientListItems(appointments)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].CounterpartName != "Dr. Smith" {
		t.Errorf("expected counterpart Dr. Smith, got %q", items[0].CounterpartName)
	}
}

func TestFeedbacksToReviews(t *testing.T) {
	rating := 3
	feedbacks := []entity.Feedback{
		{
			ID:       uuid.New(),
			Comments: "Average",
			Rating:   &rating,
			Patient: entity.PatientProfile{
				User: entity.User{FullName: "Jane Roe"},
			},
		},
	}

	reviews := FeedbacksToReviews(feedbacks)
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	if reviews[0].PatientName != "Jane Roe" {
		t.Errorf("expected patient Jane Roe, got %q", reviews[0].PatientName)
	}
	if reviews[0].Rating == nil || *reviews[0].Rating != 3 {
		t.Errorf("expected rating 3, got %v", reviews[0].Rating)
	}
}
