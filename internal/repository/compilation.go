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

type CompilationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCompilationRepo(db *dbpg.DB) *CompilationRepository {
	return &CompilationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CompilationRepository) Create(ctx context.Context, c *domain.Compilation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO compilations (id, title, pinned, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, query, c.ID, c.Title, c.Pinned, c.CreatedAt, c.UpdatedAt); err != nil {
		return fmt.Errorf("insert compilation: %w", err)
	}

	if err = insertCompilationEvents(ctx, tx, c.ID, c.EventIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CompilationRepository) GetByID(ctx context.Context, id string) (*domain.Compilation, error) {
	query := `SELECT c.id, c.title, c.pinned, c.created_at, c.updated_at,
	                 COALESCE(array_agg(ce.event_id) FILTER (WHERE ce.event_id IS NOT NULL), '{}')
			  FROM compilations c
			  LEFT JOIN compilation_events ce ON ce.compilation_id = c.id
			  WHERE c.id = $1
			  GROUP BY c.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get compilation: %w", err)
	}

	var c domain.Compilation
	if err = row.Scan(&c.ID, &c.Title, &c.Pinned, &c.CreatedAt, &c.UpdatedAt, pq.Array(&c.EventIDs)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompilationNotFound
		}
		return nil, fmt.Errorf("scan compilation: %w", err)
	}

	return &c, nil
}

func (r *CompilationRepository) List(ctx context.Context, pinned *bool, offset, limit int) ([]*domain.Compilation, error) {
	query := `SELECT c.id, c.title, c.pinned, c.created_at, c.updated_at,
	                 COALESCE(array_agg(ce.event_id) FILTER (WHERE ce.event_id IS NOT NULL), '{}')
			  FROM compilations c
			  LEFT JOIN compilation_events ce ON ce.compilation_id = c.id
			  WHERE $1::boolean IS NULL OR c.pinned = $1
			  GROUP BY c.id
			  ORDER BY c.created_at DESC
			  OFFSET $2 LIMIT $3`

	var pinnedArg sql.NullBool
	if pinned != nil {
		pinnedArg = sql.NullBool{Bool: *pinned, Valid: true}
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pinnedArg, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Compilation
	for rows.Next() {
		var c domain.Compilation
		if err = rows.Scan(&c.ID, &c.Title, &c.Pinned, &c.CreatedAt, &c.UpdatedAt, pq.Array(&c.EventIDs)); err != nil {
			return nil, fmt.Errorf("scan compilation: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CompilationRepository) Update(ctx context.Context, c *domain.Compilation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE compilations
			  SET title = $2, pinned = $3, updated_at = $4
			  WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, c.ID, c.Title, c.Pinned, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update compilation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("compilation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCompilationNotFound
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM compilation_events WHERE compilation_id = $1`, c.ID); err != nil {
		return fmt.Errorf("clear compilation events: %w", err)
	}
	if err = insertCompilationEvents(ctx, tx, c.ID, c.EventIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CompilationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete compilation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("compilation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCompilationNotFound
	}

	return nil
}

func insertCompilationEvents(ctx context.Context, tx *sql.Tx, compilationID string, eventIDs []string) error {
	query := `INSERT INTO compilation_events (compilation_id, event_id)
			  VALUES ($1, $2)`
	for _, eventID := range eventIDs {
		if _, err := tx.ExecContext(ctx, query, compilationID, eventID); err != nil {
			return fmt.Errorf("insert compilation event: %w", err)
		}
	}
	return nil
}
