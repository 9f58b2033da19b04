package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/YusovID/pangea-backend/internal/config"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Postgres struct {
	db  *sqlx.DB
	log *slog.Logger
}

func NewDB(cfg config.Postgres, log *slog.Logger) (*Postgres, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	log.Info("connected to postgres",
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Database),
	)

	return &Postgres{db: db, log: log}, nil
}

func (p *Postgres) DB() *sqlx.DB {
	return p.db
}

// validID reports whether id can be compared against a UUID column.
// Anything else can never match a row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// jsonb stores any JSON-serializable value in a JSONB column.
type jsonb[T any] struct {
	V T
}

func (j jsonb[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

func (j *jsonb[T]) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("jsonb: unsupported source type %T", src)
	}

	return json.Unmarshal(raw, &j.V)
}
