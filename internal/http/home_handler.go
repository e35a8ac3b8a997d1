package http

import (
	"encoding/json"
	"net/http"

	"properlyapi/internal/entity"
	"properlyapi/internal/usecase"
)

type HomeHandler struct {
	repo usecase.HomeRepository
}

func NewHomeHandler(repo usecase.HomeRepository) *HomeHandler {
	return &HomeHandler{repo: repo}
}

// Index handles GET /homes.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	homes, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeError(w, err, "home not found")
		return
	}
	writeJSON(w, http.StatusOK, homes)
}

// Show handles GET /homes/{id}.
func (h *HomeHandler) Show(w http.ResponseWriter, r *http.Request) {
	home, err := h.repo.FindOne(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "home not found")
		return
	}
	writeJSON(w, http.StatusOK, home)
}

// Store handles POST /homes.
func (h *HomeHandler) Store(w http.ResponseWriter, r *http.Request) {
	var in entity.HomeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w)
		return
	}
	home, err := h.repo.Create(r.Context(), in)
	if err != nil {
		writeError(w, err, "home not found")
		return
	}
	writeJSON(w, http.StatusOK, home)
}

// Update handles PATCH /homes/{id}.
func (h *HomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in entity.HomeUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w)
		return
	}
	home, err := h.repo.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err, "home not found")
		return
	}
	writeJSON(w, http.StatusOK, home)
}

// Destroy handles DELETE /homes/{id}. Deletion always reports 200, even for
// ids that never existed.
func (h *HomeHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err, "home not found")
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
