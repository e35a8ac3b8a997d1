package http

import (
	"context"
	"net/http"

	"properlyapi/internal/entity"
	"properlyapi/internal/usecase"
)

// Function-field fakes for the repository contracts.

type fakeHomeRepo struct {
	findAll func(ctx context.Context) ([]entity.Home, error)
	findOne func(ctx context.Context, id string) (entity.Home, error)
	create  func(ctx context.Context, in entity.HomeInput) (entity.Home, error)
	update  func(ctx context.Context, id string, in entity.HomeUpdateInput) (entity.Home, error)
	remove  func(ctx context.Context, id string) error
}

var _ usecase.HomeRepository = (*fakeHomeRepo)(nil)

func (f *fakeHomeRepo) FindAll(ctx context.Context) ([]entity.Home, error) {
	return f.findAll(ctx)
}

func (f *fakeHomeRepo) FindOne(ctx context.Context, id string) (entity.Home, error) {
	return f.findOne(ctx, id)
}

func (f *fakeHomeRepo) Create(ctx context.Context, in entity.HomeInput) (entity.Home, error) {
	return f.create(ctx, in)
}

func (f *fakeHomeRepo) Update(ctx context.Context, id string, in entity.HomeUpdateInput) (entity.Home, error) {
	return f.update(ctx, id, in)
}

func (f *fakeHomeRepo) Delete(ctx context.Context, id string) error {
	return f.remove(ctx, id)
}

type fakeAuthorRepo struct {
	findAll func(ctx context.Context) ([]entity.Author, error)
	findOne func(ctx context.Context, id string) (entity.Author, error)
	create  func(ctx context.Context, in entity.AuthorInput) (entity.Author, error)
	update  func(ctx context.Context, id string, in entity.AuthorUpdateInput) (entity.Author, error)
	remove  func(ctx context.Context, id string) error
}

var _ usecase.AuthorRepository = (*fakeAuthorRepo)(nil)

func (f *fakeAuthorRepo) FindAll(ctx context.Context) ([]entity.Author, error) {
	return f.findAll(ctx)
}

func (f *fakeAuthorRepo) FindOne(ctx context.Context, id string) (entity.Author, error) {
	return f.findOne(ctx, id)
}

func (f *fakeAuthorRepo) Create(ctx context.Context, in entity.AuthorInput) (entity.Author, error) {
	return f.create(ctx, in)
}

func (f *fakeAuthorRepo) Update(ctx context.Context, id string, in entity.AuthorUpdateInput) (entity.Author, error) {
	return f.update(ctx, id, in)
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id string) error {
	return f.remove(ctx, id)
}

type fakeBookRepo struct {
	findAll         func(ctx context.Context) ([]entity.Book, error)
	findAllByAuthor func(ctx context.Context, authorID string) ([]entity.Book, error)
	findOne         func(ctx context.Context, id string) (entity.Book, error)
	create          func(ctx context.Context, in entity.BookInput) (entity.Book, error)
	update          func(ctx context.Context, id string, in entity.BookUpdateInput) (entity.Book, error)
	remove          func(ctx context.Context, id string) error
}

var _ usecase.BookRepository = (*fakeBookRepo)(nil)

func (f *fakeBookRepo) FindAll(ctx context.Context) ([]entity.Book, error) {
	return f.findAll(ctx)
}

func (f *fakeBookRepo) FindAllByAuthorID(ctx context.Context, authorID string) ([]entity.Book, error) {
	return f.findAllByAuthor(ctx, authorID)
}

func (f *fakeBookRepo) FindOne(ctx context.Context, id string) (entity.Book, error) {
	return f.findOne(ctx, id)
}

func (f *fakeBookRepo) Create(ctx context.Context, in entity.BookInput) (entity.Book, error) {
	return f.create(ctx, in)
}

func (f *fakeBookRepo) Update(ctx context.Context, id string, in entity.BookUpdateInput) (entity.Book, error) {
	return f.update(ctx, id, in)
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) error {
	return f.remove(ctx, id)
}

// newTestRouter mounts the given fakes, substituting empty fakes for nil.
// Requests go through the full router so path values resolve as they do in
// production.
func newTestRouter(homes *fakeHomeRepo, authors *fakeAuthorRepo, books *fakeBookRepo) *http.ServeMux {
	if homes == nil {
		homes = &fakeHomeRepo{}
	}
	if authors == nil {
		authors = &fakeAuthorRepo{}
	}
	if books == nil {
		books = &fakeBookRepo{}
	}
	return NewRouter(NewHomeHandler(homes), NewAuthorHandler(authors), NewBookHandler(books))
}
