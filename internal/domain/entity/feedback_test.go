package entity

import "testing"

func TestIsValidRating(t *testing.T) {
	tests := []struct {
		rating   int
		expected bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := IsValidRating(tt.rating); got != tt.expected {
			t.Errorf("IsValidRating(%d): expected %v, got %v", tt.rating, tt.expected, got)
		}
	}
}

func TestFeedbackIsRated(t *testing.T) {
	f := &Feedback{}
	if f.IsRated() {
		t.Error("expected placeholder feedback to be unrated")
	}

	rating := 4
	f.Rating = &rating
	if !f.IsRated() {
		t.Error("expected feedback with rating to be rated")
	}
}
