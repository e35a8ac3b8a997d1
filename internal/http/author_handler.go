package http

import (
	"encoding/json"
	"net/http"

	"properlyapi/internal/entity"
	"properlyapi/internal/usecase"
)

type AuthorHandler struct {
	repo usecase.AuthorRepository
}

func NewAuthorHandler(repo usecase.AuthorRepository) *AuthorHandler {
	return &AuthorHandler{repo: repo}
}

// Index handles GET /authors.
func (h *AuthorHandler) Index(w http.ResponseWriter, r *http.Request) {
	authors, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeError(w, err, "author not found")
		return
	}
	writeJSON(w, http.StatusOK, authors)
}

// Show handles GET /authors/{id}.
func (h *AuthorHandler) Show(w http.ResponseWriter, r *http.Request) {
	author, err := h.repo.FindOne(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "author not found")
		return
	}
	writeJSON(w, http.StatusOK, author)
}

// Store handles POST /authors.
func (h *AuthorHandler) Store(w http.ResponseWriter, r *http.Request) {
	var in entity.AuthorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w)
		return
	}
	author, err := h.repo.Create(r.Context(), in)
	if err != nil {
		writeError(w, err, "author not found")
		return
	}
	writeJSON(w, http.StatusOK, author)
}

// Update handles PATCH /authors/{id}.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in entity.AuthorUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w)
		return
	}
	author, err := h.repo.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err, "author not found")
		return
	}
	writeJSON(w, http.StatusOK, author)
}

// Destroy handles DELETE /authors/{id}.
func (h *AuthorHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err, "author not found")
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
