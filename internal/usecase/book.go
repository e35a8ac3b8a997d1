package usecase

import (
	"context"

	"properlyapi/internal/entity"
)

// BookRepository defines the contract for book persistence, including the
// lookup of all books referencing a given author.
type BookRepository interface {
	FindAll(ctx context.Context) ([]entity.Book, error)
	FindAllByAuthorID(ctx context.Context, authorID string) ([]entity.Book, error)
	FindOne(ctx context.Context, id string) (entity.Book, error)
	Create(ctx context.Context, in entity.BookInput) (entity.Book, error)
	Update(ctx context.Context, id string, in entity.BookUpdateInput) (entity.Book, error)
	Delete(ctx context.Context, id string) error
}
