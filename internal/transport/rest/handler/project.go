package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"maturiq/internal/model"
	"maturiq/internal/service"
	"maturiq/internal/transport/rest/middleware"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectSvc    *service.ProjectService
	assessmentSvc *service.AssessmentService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectSvc *service.ProjectService, assessmentSvc *service.AssessmentService) *ProjectHandler {
	return &ProjectHandler{
		projectSvc:    projectSvc,
		assessmentSvc: assessmentSvc,
	}
}

// CreateProjectRequest is the request body for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /v1/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := assessorFrom(r)

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "project name is required")
		return
	}

	project := &model.Project{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	}

	id, err := h.projectSvc.Create(r.Context(), project)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"projectId": id})
}

// Get handles GET /v1/projects/{projectId}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectSvc.GetByID(r.Context(), mux.Vars(r)["projectId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// List handles GET /v1/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectSvc.GetByOwnerID(r.Context(), assessorFrom(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

// ListAssessments handles GET /v1/projects/{projectId}/assessments
func (h *ProjectHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.assessmentSvc.ListByProject(r.Context(), mux.Vars(r)["projectId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": assessments})
}

func assessorFrom(r *http.Request) string {
	return middleware.GetAssessorID(r.Context())
}
