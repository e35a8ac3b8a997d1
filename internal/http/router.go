// Package http exposes the entity repositories over REST. Handlers parse
// requests, delegate to a repository, and encode the outcome as JSON; they
// hold no state beyond the injected repository.
package http

import "net/http"

// NewRouter wires every entity route onto a ServeMux using method patterns.
// The books/author route has two literal segments, so it never collides with
// the single-segment /books/{id} pattern.
func NewRouter(homes *HomeHandler, authors *AuthorHandler, books *BookHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /homes", homes.Index)
	mux.HandleFunc("GET /homes/{id}", homes.Show)
	mux.HandleFunc("POST /homes", homes.Store)
	mux.HandleFunc("PATCH /homes/{id}", homes.Update)
	mux.HandleFunc("DELETE /homes/{id}", homes.Destroy)

	mux.HandleFunc("GET /authors", authors.Index)
	mux.HandleFunc("GET /authors/{id}", authors.Show)
	mux.HandleFunc("POST /authors", authors.Store)
	mux.HandleFunc("PATCH /authors/{id}", authors.Update)
	mux.HandleFunc("DELETE /authors/{id}", authors.Destroy)

	mux.HandleFunc("GET /books", books.Index)
	mux.HandleFunc("GET /books/author/{id}", books.IndexByAuthor)
	mux.HandleFunc("GET /books/{id}", books.Show)
	mux.HandleFunc("POST /books", books.Store)
	mux.HandleFunc("PATCH /books/{id}", books.Update)
	mux.HandleFunc("DELETE /books/{id}", books.Destroy)

	return mux
}
