package ports

import (
	"context"

	"afisha/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	UpdateState(ctx context.Context, id string, state domain.EventState) error
}
