package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"maturiq/internal/model"
	"maturiq/internal/scoring"
	"maturiq/internal/service"
)

// AssessmentHandler handles assessment lifecycle endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Start handles POST /v1/projects/{projectId}/assessments
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]
	assessorID := assessorFrom(r)

	var req model.StartAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.assessmentSvc.Start(r.Context(), projectID, assessorID, req.Type)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, assessment)
}

// Get handles GET /v1/assessments/{assessmentId}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.assessmentSvc.Get(r.Context(), mux.Vars(r)["assessmentId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

// RecordAnswer handles POST /v1/assessments/{assessmentId}/answers
func (h *AssessmentHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	var req model.RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.assessmentSvc.RecordAnswer(r.Context(), mux.Vars(r)["assessmentId"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// Complete handles POST /v1/assessments/{assessmentId}/complete
func (h *AssessmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.assessmentSvc.Complete(r.Context(), mux.Vars(r)["assessmentId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

// Progress handles GET /v1/assessments/{assessmentId}/progress
func (h *AssessmentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.assessmentSvc.Progress(r.Context(), mux.Vars(r)["assessmentId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// Pause handles POST /v1/assessments/{assessmentId}/pause
func (h *AssessmentHandler) Pause(w http.ResponseWriter, r *http.Request) {
	if err := h.assessmentSvc.Pause(r.Context(), mux.Vars(r)["assessmentId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(model.StatusPaused)})
}

// Cancel handles POST /v1/assessments/{assessmentId}/cancel
func (h *AssessmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.assessmentSvc.Cancel(r.Context(), mux.Vars(r)["assessmentId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(model.StatusCancelled)})
}

// Delete handles DELETE /v1/assessments/{assessmentId}
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assessmentSvc.Delete(r.Context(), mux.Vars(r)["assessmentId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps service errors onto HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound), errors.Is(err, service.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyCompleted),
		errors.Is(err, service.ErrNotInProgress),
		errors.Is(err, service.ErrDeleteCompleted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidType),
		errors.Is(err, service.ErrQuestionUnknown),
		errors.Is(err, service.ErrOptionUnknown),
		errors.Is(err, scoring.ErrScoreOutOfRange),
		errors.Is(err, scoring.ErrNegativeTime),
		errors.Is(err, scoring.ErrQuestionInactive),
		errors.Is(err, scoring.ErrNotDeepEligible):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
