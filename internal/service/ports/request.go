package ports

import (
	"context"

	"afisha/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	ListByRequester(ctx context.Context, userID string) ([]*domain.Request, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Request, error)
	// ListPendingByEvent возвращает pending-заявки по created_at asc, id asc.
	ListPendingByEvent(ctx context.Context, eventID string) ([]*domain.Request, error)
	CountByEventAndStatus(ctx context.Context, eventID string, status domain.RequestStatus) (int, error)
	// HasNonCanceled: существует ли у пользователя неотменённая заявка на событие.
	HasNonCanceled(ctx context.Context, requesterID, eventID string) (bool, error)
	Save(ctx context.Context, r *domain.Request) error
	SaveAll(ctx context.Context, requests []*domain.Request) error
}
