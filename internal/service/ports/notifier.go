package ports

import (
	"context"

	"afisha/internal/domain"
)

type RequestNotifier interface {
	NotifyRequestCreated(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestConfirmed(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestRejected(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestCanceled(ctx context.Context, user *domain.User, event *domain.Event)
}
