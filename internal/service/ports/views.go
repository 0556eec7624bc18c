package ports

import "context"

// ViewCounter отправляет хиты просмотров в сервис статистики и читает
// количество уникальных просмотров события.
type ViewCounter interface {
	Hit(ctx context.Context, eventID, ip string) error
	Views(ctx context.Context, eventID string) (int64, error)
}
