package converter

import (
	"healvista-server/internal/delivery/dto"
	"healvista-server/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		Feedback:        FeedbackToResponse(appointment.Feedback),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// FeedbackToResponse converts a Feedback entity to FeedbackResponse DTO
func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}

	return &dto.FeedbackResponse{
		ID:            feedback.ID,
		AppointmentID: feedback.AppointmentID,
		PatientID:     feedback.PatientID,
		Comments:      feedback.Comments,
		Rating:        feedback.Rating,
		SubmittedDate: feedback.SubmittedDate,
	}
}

// AppointmentsToDoctorListItems converts a doctor's appointments to list items,
// using the patient's display name as the counterpart. Expects Patient.User and
// Feedback to be preloaded.
func AppointmentsToDoctorListItems(appointments []entity.Appointment) []dto.AppointmentListItem {
	items := make([]dto.AppointmentListItem, len(appointments))
	for i, appointment := range appointments {
		items[i] = appointmentToListItem(&appointment, appointment.Patient.User.FullName)
	}
	return items
}

// AppointmentsToPatientListItems converts a patient's appointments to list
// items, using the doctor's display name as the counterpart. Expects
// Doctor.User and Feedback to be preloaded.
func AppointmentsToPatientListItems(appointments []entity.Appointment) []dto.AppointmentListItem {
	items := make([]dto.AppointmentListItem, len(appointments))
	for i, appointment := range appointments {
		items[i] = appointmentToListItem(&appointment, appointment.Doctor.User.FullName)
	}
	return items
}

func appointmentToListItem(appointment *entity.Appointment, counterpartName string) dto.AppointmentListItem {
	item := dto.AppointmentListItem{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		CounterpartName: counterpartName,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
	}

	if appointment.Feedback != nil {
		item.Comments = appointment.Feedback.Comments
		item.Rating = appointment.Feedback.Rating
		item.FeedbackSubmitted = appointment.Feedback.SubmittedDate
	}

	return item
}

// FeedbacksToReviews converts a doctor's feedback rows to review DTOs for the
// doctor detail page. Expects Patient.User to be preloaded.
func FeedbacksToReviews(feedbacks []entity.Feedback) []dto.ReviewResponse {
	reviews := make([]dto.ReviewResponse, len(feedbacks))
	for i, feedback := range feedbacks {
		reviews[i] = dto.ReviewResponse{
			FeedbackID:    feedback.ID,
			PatientName:   feedback.Patient.User.FullName,
			Comments:      feedback.Comments,
			Rating:        feedback.Rating,
			SubmittedDate: feedback.SubmittedDate,
		}
	}
	return reviews
}
