package handler

import (
	"net/http"

	"maturiq/internal/model"
	"maturiq/internal/service"
)

// CatalogHandler handles catalog read endpoints
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListCategories handles GET /v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogSvc.ActiveCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// ListQuestions handles GET /v1/questions?type=quick|deep
func (h *CatalogHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	mode := model.AssessmentType(r.URL.Query().Get("type"))
	if mode == "" {
		mode = model.AssessmentTypeQuick
	}

	questions, err := h.catalogSvc.ListQuestions(r.Context(), mode)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// RefreshCache handles POST /v1/catalog/refresh
func (h *CatalogHandler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.RefreshCache(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}
