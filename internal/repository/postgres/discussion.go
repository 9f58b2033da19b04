package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/jmoiron/sqlx"
)

var discussionColumns = []string{"id", "problem_id", "content", "user_id", "parent_id", "votes", "created_at"}

type discussionRow struct {
	ID        string         `db:"id"`
	ProblemID string         `db:"problem_id"`
	Content   string         `db:"content"`
	UserID    string         `db:"user_id"`
	ParentID  sql.NullString `db:"parent_id"`
	Votes     int            `db:"votes"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r discussionRow) toDomain() domain.Discussion {
	d := domain.Discussion{
		ID:        r.ID,
		ProblemID: r.ProblemID,
		Content:   r.Content,
		UserID:    r.UserID,
		Votes:     r.Votes,
		CreatedAt: r.CreatedAt,
	}

	if r.ParentID.Valid {
		parentID := r.ParentID.String
		d.ParentID = &parentID
	}

	return d
}

type DiscussionRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewDiscussionRepository(db *sqlx.DB, log *slog.Logger) *DiscussionRepository {
	return &DiscussionRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DiscussionRepository) CreateDiscussion(ctx context.Context, d *domain.Discussion) error {
	const op = "internal.repository.postgres.CreateDiscussion"
	log := r.log.With(slog.String("op", op), slog.String("problem_id", d.ProblemID))

	query, args, err := r.sq.Insert("discussions").
		Columns(discussionColumns...).
		Values(d.ID, d.ProblemID, d.Content, d.UserID, d.ParentID, d.Votes, d.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, apperrors.NotFound("parent discussion"))
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	log.Info("discussion created", slog.String("discussion_id", d.ID))

	return nil
}

func (r *DiscussionRepository) GetDiscussion(ctx context.Context, id string) (*domain.Discussion, error) {
	const op = "internal.repository.postgres.GetDiscussion"

	if !validID(id) {
		return nil, fmt.Errorf("%s: %w", op, apperrors.NotFound("discussion '%s'", id))
	}

	query, args, err := r.sq.Select(discussionColumns...).
		From("discussions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var row discussionRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.NotFound("discussion '%s'", id))
		}

		return nil, fmt.Errorf("%s: failed to get discussion: %w", op, err)
	}

	d := row.toDomain()

	return &d, nil
}

func (r *DiscussionRepository) ListTopLevel(ctx context.Context, problemID string) ([]domain.Discussion, error) {
	const op = "internal.repository.postgres.ListTopLevel"

	query, args, err := r.sq.Select(discussionColumns...).
		From("discussions").
		Where(sq.Eq{"problem_id": problemID, "parent_id": nil}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.selectDiscussions(ctx, op, query, args)
}

func (r *DiscussionRepository) ListReplies(ctx context.Context, parentIDs []string) ([]domain.Discussion, error) {
	const op = "internal.repository.postgres.ListReplies"

	if len(parentIDs) == 0 {
		return []domain.Discussion{}, nil
	}

	query, args, err := r.sq.Select(discussionColumns...).
		From("discussions").
		Where(sq.Eq{"parent_id": parentIDs}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.selectDiscussions(ctx, op, query, args)
}

func (r *DiscussionRepository) selectDiscussions(ctx context.Context, op, query string, args []any) ([]domain.Discussion, error) {
	var rows []discussionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select discussions: %w", op, err)
	}

	discussions := make([]domain.Discussion, len(rows))
	for i, row := range rows {
		discussions[i] = row.toDomain()
	}

	return discussions, nil
}

func (r *DiscussionRepository) IncrementVotes(ctx context.Context, id string) error {
	const op = "internal.repository.postgres.IncrementVotes"

	if !validID(id) {
		return fmt.Errorf("%s: %w", op, apperrors.NotFound("discussion '%s'", id))
	}

	query, args, err := r.sq.Update("discussions").
		Set("votes", sq.Expr("votes + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.NotFound("discussion '%s'", id))
	}

	return nil
}
