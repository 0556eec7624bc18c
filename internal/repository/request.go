package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"afisha/internal/domain"
)

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create вставляет заявку, в одной транзакции перепроверяя лимит события.
// FOR UPDATE на строке события сериализует конкурентные вставки на уровне
// хранилища; уникальный частичный индекс отсекает повторные заявки.
func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	limitQuery := `SELECT participant_limit FROM events WHERE id = $1 FOR UPDATE`
	var limit int
	if err = tx.QueryRowContext(ctx, limitQuery, req.EventID).Scan(&limit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get participant limit: %w", err)
	}

	if limit > 0 {
		activeQuery := `SELECT COUNT(*) FROM requests
						WHERE event_id = $1 AND status = ANY($2)`
		var active int
		if err = tx.QueryRowContext(
			ctx, activeQuery, req.EventID,
			pq.Array(domain.ActiveStatuses),
		).Scan(&active); err != nil {
			return fmt.Errorf("count active requests: %w", err)
		}

		if active >= limit {
			return domain.ErrLimitReached
		}
	}

	query := `INSERT INTO requests (id, event_id, requester_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query, req.ID, req.EventID,
		req.RequesterID, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return tx.Commit()
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT id, event_id, requester_id, status, created_at, updated_at
			  FROM requests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var req domain.Request
	if err = row.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &req, nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, userID string) ([]*domain.Request, error) {
	query := `SELECT id, event_id, requester_id, status, created_at, updated_at
			  FROM requests
			  WHERE requester_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *RequestRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Request, error) {
	query := `SELECT id, event_id, requester_id, status, created_at, updated_at
			  FROM requests
			  WHERE event_id = $1
			  ORDER BY created_at ASC, id ASC`

	return r.list(ctx, query, eventID)
}

func (r *RequestRepository) ListPendingByEvent(ctx context.Context, eventID string) ([]*domain.Request, error) {
	query := `SELECT id, event_id, requester_id, status, created_at, updated_at
			  FROM requests
			  WHERE event_id = $1 AND status = $2
			  ORDER BY created_at ASC, id ASC`

	return r.list(ctx, query, eventID, domain.RequestStatusPending)
}

func (r *RequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Request, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.Request
	for rows.Next() {
		var req domain.Request
		if err = rows.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}

func (r *RequestRepository) CountByEventAndStatus(ctx context.Context, eventID string, status domain.RequestStatus) (int, error) {
	query := `SELECT COUNT(*) FROM requests
			  WHERE event_id = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, status)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *RequestRepository) HasNonCanceled(ctx context.Context, requesterID, eventID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM requests
				WHERE requester_id = $1 AND event_id = $2 AND status <> $3
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, requesterID, eventID, domain.RequestStatusCanceled)
	if err != nil {
		return false, fmt.Errorf("check request exists: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func (r *RequestRepository) Save(ctx context.Context, req *domain.Request) error {
	query := `UPDATE requests
			  SET status = $2, updated_at = $3
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, req.ID, req.Status, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

// SaveAll записывает статусы батча одной транзакцией.
func (r *RequestRepository) SaveAll(ctx context.Context, requests []*domain.Request) error {
	if len(requests) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE requests
			  SET status = $2, updated_at = $3
			  WHERE id = $1`
	for _, req := range requests {
		if _, err = tx.ExecContext(ctx, query, req.ID, req.Status, req.UpdatedAt); err != nil {
			return fmt.Errorf("update request %s: %w", req.ID, err)
		}
	}

	return tx.Commit()
}
