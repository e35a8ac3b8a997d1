package usecase

import (
	"context"

	"properlyapi/internal/entity"
)

// HomeRepository defines the contract for home persistence.
type HomeRepository interface {
	FindAll(ctx context.Context) ([]entity.Home, error)
	FindOne(ctx context.Context, id string) (entity.Home, error)
	Create(ctx context.Context, in entity.HomeInput) (entity.Home, error)
	Update(ctx context.Context, id string, in entity.HomeUpdateInput) (entity.Home, error)
	Delete(ctx context.Context, id string) error
}
