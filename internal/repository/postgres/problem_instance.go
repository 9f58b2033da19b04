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

var instanceColumns = []string{
	"id", "problem_num", "owner_user_id", "owner_username", "owner_email",
	"collaboration_mode", "status", "started_at", "last_updated_at",
	"completed_at", "collaboration_details",
}

type instanceRow struct {
	ID                   string                 `db:"id"`
	ProblemNum           string                 `db:"problem_num"`
	OwnerUserID          string                 `db:"owner_user_id"`
	OwnerUsername        string                 `db:"owner_username"`
	OwnerEmail           string                 `db:"owner_email"`
	CollaborationMode    string                 `db:"collaboration_mode"`
	Status               string                 `db:"status"`
	StartedAt            time.Time              `db:"started_at"`
	LastUpdatedAt        time.Time              `db:"last_updated_at"`
	CompletedAt          *time.Time             `db:"completed_at"`
	CollaborationDetails jsonb[map[string]any]  `db:"collaboration_details"`
}

func (r instanceRow) toDomain() *domain.ProblemInstance {
	details := r.CollaborationDetails.V
	if details == nil {
		details = map[string]any{}
	}

	return &domain.ProblemInstance{
		ID:                   r.ID,
		ProblemNum:           r.ProblemNum,
		Owner:                domain.Owner{UserID: r.OwnerUserID, Username: r.OwnerUsername, Email: r.OwnerEmail},
		CollaborationMode:    domain.CollaborationMode(r.CollaborationMode),
		Collaborators:        []domain.Collaborator{},
		Status:               domain.Status(r.Status),
		StartedAt:            r.StartedAt,
		LastUpdatedAt:        r.LastUpdatedAt,
		CompletedAt:          r.CompletedAt,
		CollaborationDetails: details,
	}
}

type collaboratorRow struct {
	UserID    string     `db:"user_id"`
	Username  string     `db:"username"`
	Email     string     `db:"email"`
	InvitedAt time.Time  `db:"invited_at"`
	JoinedAt  *time.Time `db:"joined_at"`
	Status    string     `db:"status"`
}

type ProblemInstanceRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewProblemInstanceRepository(db *sqlx.DB, log *slog.Logger) *ProblemInstanceRepository {
	return &ProblemInstanceRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProblemInstanceRepository) CreateInstance(ctx context.Context, inst *domain.ProblemInstance) error {
	const op = "internal.repository.postgres.CreateInstance"
	log := r.log.With(slog.String("op", op), slog.String("problem_num", inst.ProblemNum), slog.String("owner_id", inst.Owner.UserID))

	query, args, err := r.sq.Insert("problem_instances").
		Columns(instanceColumns...).
		Values(
			inst.ID, inst.ProblemNum, inst.Owner.UserID, inst.Owner.Username, inst.Owner.Email,
			string(inst.CollaborationMode), string(inst.Status), inst.StartedAt, inst.LastUpdatedAt,
			inst.CompletedAt, jsonb[map[string]any]{V: inst.CollaborationDetails},
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if pqCode(err) == codeUniqueViolation {
			return &apperrors.InstanceAlreadyExistsError{ProblemNum: inst.ProblemNum, OwnerID: inst.Owner.UserID}
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	log.Info("problem instance created", slog.String("instance_id", inst.ID))

	return nil
}

func (r *ProblemInstanceRepository) GetInstanceByID(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.ProblemInstance, error) {
	const op = "internal.repository.postgres.GetInstanceByID"

	if !validID(id) {
		return nil, fmt.Errorf("%s: %w", op, apperrors.NotFound("problem instance '%s'", id))
	}

	query, args, err := r.sq.Select(instanceColumns...).
		From("problem_instances").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.getInstance(ctx, ext, op, query, args, fmt.Sprintf("problem instance '%s'", id))
}

func (r *ProblemInstanceRepository) GetInstanceByOwner(ctx context.Context, problemNum string, userID string) (*domain.ProblemInstance, error) {
	const op = "internal.repository.postgres.GetInstanceByOwner"

	query, args, err := r.sq.Select(instanceColumns...).
		From("problem_instances").
		Where(sq.Eq{"problem_num": problemNum, "owner_user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.getInstance(ctx, r.db, op, query, args, fmt.Sprintf("problem instance for problem '%s' and user '%s'", problemNum, userID))
}

func (r *ProblemInstanceRepository) getInstance(ctx context.Context, ext sqlx.ExtContext, op, query string, args []any, what string) (*domain.ProblemInstance, error) {
	var row instanceRow
	if err := sqlx.GetContext(ctx, ext, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.NotFound("%s", what))
		}

		return nil, fmt.Errorf("%s: failed to get problem instance: %w", op, err)
	}

	inst := row.toDomain()

	collaborators, err := r.getCollaborators(ctx, ext, inst.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	inst.Collaborators = collaborators

	return inst, nil
}

func (r *ProblemInstanceRepository) getCollaborators(ctx context.Context, ext sqlx.ExtContext, instanceID string) ([]domain.Collaborator, error) {
	query, args, err := r.sq.Select("user_id", "username", "email", "invited_at", "joined_at", "status").
		From("problem_instance_collaborators").
		Where(sq.Eq{"instance_id": instanceID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build collaborators query: %w", err)
	}

	var rows []collaboratorRow
	if err := sqlx.SelectContext(ctx, ext, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select collaborators: %w", err)
	}

	collaborators := make([]domain.Collaborator, len(rows))
	for i, row := range rows {
		collaborators[i] = domain.Collaborator{
			UserID:    row.UserID,
			Username:  row.Username,
			Email:     row.Email,
			InvitedAt: row.InvitedAt,
			JoinedAt:  row.JoinedAt,
			Status:    domain.CollaboratorStatus(row.Status),
		}
	}

	return collaborators, nil
}

func (r *ProblemInstanceRepository) AddCollaborator(ctx context.Context, tx *sqlx.Tx, instanceID string, c domain.Collaborator) error {
	const op = "internal.repository.postgres.AddCollaborator"

	query, args, err := r.sq.Insert("problem_instance_collaborators").
		Columns("instance_id", "user_id", "username", "email", "invited_at", "joined_at", "status").
		Values(instanceID, c.UserID, c.Username, c.Email, c.InvitedAt, c.JoinedAt, string(c.Status)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return &apperrors.CollaboratorAlreadyExistsError{UserID: c.UserID}
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, apperrors.NotFound("problem instance '%s'", instanceID))
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (r *ProblemInstanceRepository) UpdateInstance(
	ctx context.Context,
	ext sqlx.ExtContext,
	id string,
	changes domain.ProblemInstanceChanges,
	tr domain.Transition,
	at time.Time,
) error {
	const op = "internal.repository.postgres.UpdateInstance"

	if !validID(id) {
		return fmt.Errorf("%s: %w", op, apperrors.NotFound("problem instance '%s'", id))
	}

	updateBuilder := r.sq.Update("problem_instances").
		Set("last_updated_at", at).
		Where(sq.Eq{"id": id})

	if changes.CollaborationMode != nil {
		updateBuilder = updateBuilder.Set("collaboration_mode", string(*changes.CollaborationMode))
	}

	if changes.CollaborationDetails != nil {
		updateBuilder = updateBuilder.Set("collaboration_details", jsonb[map[string]any]{V: changes.CollaborationDetails})
	}

	updateBuilder = applyTransition(updateBuilder, tr)

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.NotFound("problem instance '%s'", id))
	}

	return nil
}

// applyTransition adds the status and timestamp columns of tr to an update.
// Stamps that must not overwrite an existing value go through COALESCE so the
// check and the write happen in the same statement.
func applyTransition(b sq.UpdateBuilder, tr domain.Transition) sq.UpdateBuilder {
	if tr.Status != nil {
		b = b.Set("status", string(*tr.Status))
	}

	if tr.StartedAtIfUnset != nil {
		b = b.Set("started_at", sq.Expr("COALESCE(started_at, ?)", *tr.StartedAtIfUnset))
	}

	switch {
	case tr.CompletedAt != nil:
		b = b.Set("completed_at", *tr.CompletedAt)
	case tr.CompletedAtIfUnset != nil:
		b = b.Set("completed_at", sq.Expr("COALESCE(completed_at, ?)", *tr.CompletedAtIfUnset))
	}

	return b
}
