package ports

import (
	"context"

	"afisha/internal/domain"
)

type CompilationRepo interface {
	Create(ctx context.Context, c *domain.Compilation) error
	GetByID(ctx context.Context, id string) (*domain.Compilation, error)
	// List с опциональным фильтром pinned и пагинацией from/size.
	List(ctx context.Context, pinned *bool, offset, limit int) ([]*domain.Compilation, error)
	Update(ctx context.Context, c *domain.Compilation) error
	Delete(ctx context.Context, id string) error
}
