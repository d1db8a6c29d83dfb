package service

import (
	"math"
	"testing"
)

func TestMeanRatingEmpty(t *testing.T) {
	if got := meanRating(nil); got != nil {
		t.Errorf("expected nil score for no ratings, got %v", *got)
	}
	if got := meanRating([]int{}); got != nil {
		t.Errorf("expected nil score for empty ratings, got %v", *got)
	}
}

func TestMeanRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected float64
	}{
		{"single rating", []int{5}, 5.0},
		{"two ratings", []int{5, 3}, 4.0},
		{"mean unchanged by matching rating", []int{5, 3, 4}, 4.0},
		{"non-integral mean", []int{1, 3, 4}, 8.0 / 3.0},
		{"all minimum", []int{1, 1, 1}, 1.0},
		{"all maximum", []int{5, 5}, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := meanRating(tt.ratings)
			if got == nil {
				t.Fatalf("expected %v, got nil", tt.expected)
			}
			if math.Abs(*got-tt.expected) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.expected, *got)
			}
		})
	}
}

// A patient editing an existing rating must move the mean, not append to it.
func TestMeanRatingAfterEdit(t *testing.T) {
	before := meanRating([]int{5, 3})
	if before == nil || *before != 4.0 {
		t.Fatalf("expected 4.0 before edit, got %v", before)
	}

	// The 3 was edited to a 1; the full re-scan sees {5, 1}.
	after := meanRating([]int{5, 1})
	if after == nil || *after != 3.0 {
		t.Fatalf("expected 3.0 after edit, got %v", after)
	}
}
