package usecase

import (
	"context"

	"properlyapi/internal/entity"
)

// AuthorRepository defines the contract for author persistence.
type AuthorRepository interface {
	FindAll(ctx context.Context) ([]entity.Author, error)
	FindOne(ctx context.Context, id string) (entity.Author, error)
	Create(ctx context.Context, in entity.AuthorInput) (entity.Author, error)
	Update(ctx context.Context, id string, in entity.AuthorUpdateInput) (entity.Author, error)
	Delete(ctx context.Context, id string) error
}
