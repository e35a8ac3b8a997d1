package http

import (
	"encoding/json"
	"net/http"

	"properlyapi/internal/entity"
	"properlyapi/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// Index handles GET /books.
func (h *BookHandler) Index(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeError(w, err, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// IndexByAuthor handles GET /books/author/{id}. An author with no books, or
// an unknown author id, yields an empty list.
func (h *BookHandler) IndexByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.FindAllByAuthorID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// Show handles GET /books/{id}.
func (h *BookHandler) Show(w http.ResponseWriter, r *http.Request) {
	book, err := h.repo.FindOne(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Store handles POST /books.
func (h *BookHandler) Store(w http.ResponseWriter, r *http.Request) {
	var in entity.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w)
		return
	}
	book, err := h.repo.Create(r.Context(), in)
	if err != nil {
		writeError(w, err, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Update handles PATCH /books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in entity.BookUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w)
		return
	}
	book, err := h.repo.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Destroy handles DELETE /books/{id}.
func (h *BookHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
