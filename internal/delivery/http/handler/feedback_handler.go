package handler

import (
	"encoding/json"
	"net/http"

	"healvista-server/internal/delivery/dto"
	"healvista-server/internal/usecase"
	"healvista-server/pkg/response"
	"healvista-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
	validator       *validator.CustomValidator
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase, validator *validator.CustomValidator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
		validator:       validator,
	}
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	feedback, err := h.feedbackUsecase.SubmitFeedback(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrRatingOutOfRange:
			response.Error(w, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
		default:
			response.InternalServerError(w, "Failed to submit feedback")
		}
		return
	}

	response.Success(w, http.StatusOK, "Feedback submitted successfully", feedback)
}

func (h *FeedbackHandler) GetDoctorRating(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	score, err := h.feedbackUsecase.GetDoctorRating(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor rating")
		return
	}

	response.Success(w, http.StatusOK, "Doctor rating retrieved successfully", &dto.DoctorRatingResponse{
		DoctorID:      doctorID,
		FeedbackScore: score,
	})
}
