package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/pangea-backend/pkg/logger/sl"
	"github.com/jmoiron/sqlx"
)

type Transactor interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// BaseService carries what every manager needs: a way to open transactions,
// a handle for single statements, a logger and a clock.
type BaseService struct {
	db  Transactor
	ext sqlx.ExtContext
	log *slog.Logger
	now func() time.Time
}

func NewBaseService(db Transactor, ext sqlx.ExtContext, log *slog.Logger) BaseService {
	return BaseService{
		db:  db,
		ext: ext,
		log: log,
		now: utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func (s *BaseService) transaction(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.log.Error("failed to rollback transaction", sl.Err(err))
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}
