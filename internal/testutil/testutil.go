// Package testutil holds fixtures and HTTP helpers shared across tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"properlyapi/internal/entity"
)

// TestHome is a populated home fixture.
var TestHome = entity.Home{
	ID:            "home-id-123",
	StreetAddress: "56 Bathurst St.",
	City:          "Toronto",
	Province:      "ON",
	Country:       "Canada",
	PostalCode:    "M5V 2P7",
}

// TestAuthor is a populated author fixture.
var TestAuthor = entity.Author{
	ID:        "author-id-456",
	FullName:  "John Doe",
	Country:   "United States",
	BirthDate: "01/01/1990",
}

// TestBook is a populated book fixture referencing TestAuthor.
var TestBook = entity.Book{
	ID:          "book-id-789",
	FullName:    "Book 1",
	ReleaseDate: "01/01/2020",
	AuthorID:    TestAuthor.ID,
}

// NewRequest creates a test request, JSON-encoding body when non-nil.
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	encoded, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(encoded))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordedResponse is a decoded HTTP response for assertions.
type RecordedResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
	List   []any
}

// Record drains a recorder into a RecordedResponse. Object bodies land in
// Body, array bodies in List.
func Record(w *httptest.ResponseRecorder) RecordedResponse {
	result := w.Result()
	defer result.Body.Close()

	raw, _ := io.ReadAll(result.Body)
	recorded := RecordedResponse{Code: result.StatusCode, Header: result.Header}
	if len(raw) == 0 {
		return recorded
	}
	if raw[0] == '[' {
		_ = json.Unmarshal(raw, &recorded.List)
	} else {
		_ = json.Unmarshal(raw, &recorded.Body)
	}
	return recorded
}
