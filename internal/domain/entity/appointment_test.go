package entity

import "testing"

func TestAppointmentStatusIsValid(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		expected bool
	}{
		{AppointmentStatusScheduled, true},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, true},
		{AppointmentStatus(""), false},
		{AppointmentStatus("scheduled"), false},
		{AppointmentStatus("Pending"), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.expected {
			t.Errorf("IsValid(%q): expected %v, got %v", tt.status, tt.expected, got)
		}
	}
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		expected bool
	}{
		{AppointmentStatusScheduled, false},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.expected {
			t.Errorf("IsTerminal(%q): expected %v, got %v", tt.status, tt.expected, got)
		}
	}
}

func TestAppointmentStatusCanTransitionTo(t *testing.T) {
	statuses := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	// Only Scheduled -> Completed and Scheduled -> Cancelled are legal.
	for _, from := range statuses {
		for _, to := range statuses {
			expected := from == AppointmentStatusScheduled &&
				(to == AppointmentStatusCompleted || to == AppointmentStatusCancelled)
			if got := from.CanTransitionTo(to); got != expected {
				t.Errorf("CanTransitionTo(%q -> %q): expected %v, got %v", from, to, expected, got)
			}
		}
	}
}

func TestAppointmentStatusHelpers(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}
	if !a.IsScheduled() || a.IsCompleted() || a.IsCancelled() {
		t.Errorf("expected scheduled appointment, got status %q", a.Status)
	}

	a.Status = AppointmentStatusCompleted
	if a.IsScheduled() || !a.IsCompleted() {
		t.Errorf("expected completed appointment, got status %q", a.Status)
	}
}
