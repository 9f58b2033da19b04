package postgres

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/jmoiron/sqlx"
)

type ContactRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewContactRepository(db *sqlx.DB, log *slog.Logger) *ContactRepository {
	return &ContactRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ContactRepository) CreateContactMessage(ctx context.Context, m *domain.ContactMessage) error {
	const op = "internal.repository.postgres.CreateContactMessage"

	query, args, err := r.sq.Insert("contact_messages").
		Columns("id", "name", "email", "subject", "message", "created_at").
		Values(m.ID, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	r.log.Info("contact message stored", slog.String("op", op), slog.String("message_id", m.ID))

	return nil
}
