package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"healvista-server/internal/delivery/dto"
	"healvista-server/internal/usecase"
	"healvista-server/pkg/response"
	"healvista-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LabTestHandler struct {
	labTestUsecase usecase.LabTestUsecase
	validator      *validator.CustomValidator
}

func NewLabTestHandler(labTestUsecase usecase.LabTestUsecase, validator *validator.CustomValidator) *LabTestHandler {
	return &LabTestHandler{
		labTestUsecase: labTestUsecase,
		validator:      validator,
	}
}

// Create handles lab test creation
// @Summary Order a new lab test
// @Description Order a new lab test for a patient
// @Tags LabTests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateLabTestRequest true "Create Lab Test Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /lab-tests [post]
func (h *LabTestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	labTest, err := h.labTestUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
		default:
			response.InternalServerError(w, "Failed to create lab test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Lab test created successfully", labTest)
}

// GetAll handles getting all lab tests
// @Summary Get all lab tests
// @Description Get all lab tests with pagination
// @Tags LabTests
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /lab-tests [get]
func (h *LabTestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	labTests, total, err := h.labTestUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get lab tests")
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Lab tests retrieved successfully", labTests, meta)
}

// GetByID handles getting a lab test by ID
// @Summary Get lab test by ID
// @Description Get a lab test by its ID
// @Tags LabTests
// @Produce json
// @Param id path string true "Lab Test ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /lab-tests/{id} [get]
func (h *LabTestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab test ID", nil)
		return
	}

	labTest, err := h.labTestUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrLabTestNotFound:
			response.NotFound(w, "Lab test not found")
		default:
			response.InternalServerError(w, "Failed to get lab test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab test retrieved successfully", labTest)
}

// GetByPatient handles getting a patient's lab tests
// @Summary Get lab tests by patient
// @Description Get all lab tests for a patient
// @Tags LabTests
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /lab-tests/patient/{patientId} [get]
func (h *LabTestHandler) GetByPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	labTests, err := h.labTestUsecase.GetByPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get lab tests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab tests retrieved successfully", labTests)
}

// Update handles lab test update
// @Summary Update a lab test
// @Description Update a lab test by its ID
// @Tags LabTests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lab Test ID"
// @Param request body dto.UpdateLabTestRequest true "Update Lab Test Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /lab-tests/{id} [put]
func (h *LabTestHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab test ID", nil)
		return
	}

	var req dto.UpdateLabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	labTest, err := h.labTestUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrLabTestNotFound:
			response.NotFound(w, "Lab test not found")
		default:
			response.InternalServerError(w, "Failed to update lab test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab test updated successfully", labTest)
}

// Delete handles lab test deletion
// @Summary Delete a lab test
// @Description Delete a lab test by its ID
// @Tags LabTests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lab Test ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /lab-tests/{id} [delete]
func (h *LabTestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab test ID", nil)
		return
	}

	err = h.labTestUsecase.Delete(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrLabTestNotFound:
			response.NotFound(w, "Lab test not found")
		default:
			response.InternalServerError(w, "Failed to delete lab test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab test deleted successfully", nil)
}
