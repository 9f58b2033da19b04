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

var subtaskColumns = []string{
	"id", "problem_instance_id", "step_num",
	"assignee_user_id", "assignee_username", "reporter_user_id", "reporter_username",
	"status", "branch_created", "pr_created", "deliverables", "pr_feedback",
	"started_at", "completed_at",
}

type subtaskRow struct {
	ID                string                     `db:"id"`
	ProblemInstanceID string                     `db:"problem_instance_id"`
	StepNum           int                        `db:"step_num"`
	AssigneeUserID    string                     `db:"assignee_user_id"`
	AssigneeUsername  string                     `db:"assignee_username"`
	ReporterUserID    string                     `db:"reporter_user_id"`
	ReporterUsername  string                     `db:"reporter_username"`
	Status            string                     `db:"status"`
	BranchCreated     bool                       `db:"branch_created"`
	PRCreated         bool                       `db:"pr_created"`
	Deliverables      string                     `db:"deliverables"`
	PRFeedback        jsonb[[]domain.PRFeedback] `db:"pr_feedback"`
	StartedAt         *time.Time                 `db:"started_at"`
	CompletedAt       *time.Time                 `db:"completed_at"`
}

func (r subtaskRow) toDomain() domain.SubtaskInstance {
	feedback := r.PRFeedback.V
	if feedback == nil {
		feedback = []domain.PRFeedback{}
	}

	return domain.SubtaskInstance{
		ID:                 r.ID,
		ProblemInstanceID:  r.ProblemInstanceID,
		StepNum:            r.StepNum,
		Assignee:           domain.Member{UserID: r.AssigneeUserID, Username: r.AssigneeUsername},
		Reporter:           domain.Member{UserID: r.ReporterUserID, Username: r.ReporterUsername},
		Status:             domain.Status(r.Status),
		BranchCreated:      r.BranchCreated,
		PRCreated:          r.PRCreated,
		Deliverables:       r.Deliverables,
		AcceptanceCriteria: []domain.AcceptanceCriterion{},
		PRFeedback:         feedback,
		StartedAt:          r.StartedAt,
		CompletedAt:        r.CompletedAt,
	}
}

type criterionRow struct {
	SubtaskID    string `db:"subtask_id"`
	Position     int    `db:"position"`
	CriteriaText string `db:"criteria_text"`
	Completed    bool   `db:"completed"`
}

type SubtaskInstanceRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewSubtaskInstanceRepository(db *sqlx.DB, log *slog.Logger) *SubtaskInstanceRepository {
	return &SubtaskInstanceRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SubtaskInstanceRepository) CreateSubtask(ctx context.Context, tx *sqlx.Tx, st *domain.SubtaskInstance) error {
	const op = "internal.repository.postgres.CreateSubtask"
	log := r.log.With(slog.String("op", op), slog.String("instance_id", st.ProblemInstanceID), slog.Int("step_num", st.StepNum))

	if !validID(st.ProblemInstanceID) {
		return &apperrors.ParentNotFoundError{InstanceID: st.ProblemInstanceID}
	}

	query, args, err := r.sq.Insert("subtask_instances").
		Columns(subtaskColumns...).
		Values(
			st.ID, st.ProblemInstanceID, st.StepNum,
			st.Assignee.UserID, st.Assignee.Username, st.Reporter.UserID, st.Reporter.Username,
			string(st.Status), st.BranchCreated, st.PRCreated, st.Deliverables,
			jsonb[[]domain.PRFeedback]{V: nonNilFeedback(st.PRFeedback)},
			st.StartedAt, st.CompletedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return &apperrors.StepAlreadyExistsError{StepNum: st.StepNum}
		case codeForeignKeyViolation:
			return &apperrors.ParentNotFoundError{InstanceID: st.ProblemInstanceID}
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	if err := r.insertCriteria(ctx, tx, st.ID, st.AcceptanceCriteria); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("subtask instance created", slog.String("subtask_id", st.ID))

	return nil
}

func (r *SubtaskInstanceRepository) ReplaceCriteria(ctx context.Context, tx *sqlx.Tx, subtaskID string, criteria []domain.AcceptanceCriterion) error {
	const op = "internal.repository.postgres.ReplaceCriteria"

	query, args, err := r.sq.Delete("subtask_acceptance_criteria").
		Where(sq.Eq{"subtask_id": subtaskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to delete criteria: %w", op, err)
	}

	if err := r.insertCriteria(ctx, tx, subtaskID, criteria); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SubtaskInstanceRepository) insertCriteria(ctx context.Context, tx *sqlx.Tx, subtaskID string, criteria []domain.AcceptanceCriterion) error {
	if len(criteria) == 0 {
		return nil
	}

	insertBuilder := r.sq.Insert("subtask_acceptance_criteria").
		Columns("subtask_id", "position", "criteria_text", "completed")

	for i, c := range criteria {
		insertBuilder = insertBuilder.Values(subtaskID, i, c.CriteriaText, c.Completed)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build criteria insert query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert criteria: %w", err)
	}

	return nil
}

func (r *SubtaskInstanceRepository) GetSubtask(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.SubtaskInstance, error) {
	const op = "internal.repository.postgres.GetSubtask"

	if !validID(id) {
		return nil, fmt.Errorf("%s: %w", op, apperrors.NotFound("subtask instance '%s'", id))
	}

	query, args, err := r.sq.Select(subtaskColumns...).
		From("subtask_instances").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var row subtaskRow
	if err := sqlx.GetContext(ctx, ext, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.NotFound("subtask instance '%s'", id))
		}

		return nil, fmt.Errorf("%s: failed to get subtask instance: %w", op, err)
	}

	st := row.toDomain()

	criteria, err := r.criteriaBySubtask(ctx, ext, []string{id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if c, ok := criteria[id]; ok {
		st.AcceptanceCriteria = c
	}

	return &st, nil
}

func (r *SubtaskInstanceRepository) ListSubtasks(ctx context.Context, instanceID string) ([]domain.SubtaskInstance, error) {
	const op = "internal.repository.postgres.ListSubtasks"

	if !validID(instanceID) {
		return []domain.SubtaskInstance{}, nil
	}

	query, args, err := r.sq.Select(subtaskColumns...).
		From("subtask_instances").
		Where(sq.Eq{"problem_instance_id": instanceID}).
		OrderBy("step_num").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var rows []subtaskRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select subtasks: %w", op, err)
	}

	subtasks := make([]domain.SubtaskInstance, len(rows))
	ids := make([]string, len(rows))

	for i, row := range rows {
		subtasks[i] = row.toDomain()
		ids[i] = row.ID
	}

	if len(ids) == 0 {
		return subtasks, nil
	}

	criteria, err := r.criteriaBySubtask(ctx, r.db, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range subtasks {
		if c, ok := criteria[subtasks[i].ID]; ok {
			subtasks[i].AcceptanceCriteria = c
		}
	}

	return subtasks, nil
}

func (r *SubtaskInstanceRepository) criteriaBySubtask(ctx context.Context, ext sqlx.ExtContext, ids []string) (map[string][]domain.AcceptanceCriterion, error) {
	query, args, err := r.sq.Select("subtask_id", "position", "criteria_text", "completed").
		From("subtask_acceptance_criteria").
		Where(sq.Eq{"subtask_id": ids}).
		OrderBy("subtask_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build criteria query: %w", err)
	}

	var rows []criterionRow
	if err := sqlx.SelectContext(ctx, ext, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select criteria: %w", err)
	}

	result := make(map[string][]domain.AcceptanceCriterion, len(ids))
	for _, row := range rows {
		result[row.SubtaskID] = append(result[row.SubtaskID], domain.AcceptanceCriterion{
			CriteriaText: row.CriteriaText,
			Completed:    row.Completed,
		})
	}

	return result, nil
}

func (r *SubtaskInstanceRepository) UpdateSubtask(ctx context.Context, tx *sqlx.Tx, id string, changes domain.SubtaskChanges, tr domain.Transition) error {
	const op = "internal.repository.postgres.UpdateSubtask"

	if !validID(id) {
		return fmt.Errorf("%s: %w", op, apperrors.NotFound("subtask instance '%s'", id))
	}

	// id = id keeps the statement valid when nothing else is set and still
	// reports a missing row through RowsAffected.
	updateBuilder := r.sq.Update("subtask_instances").
		Set("id", sq.Expr("id")).
		Where(sq.Eq{"id": id})

	if changes.Assignee != nil {
		updateBuilder = updateBuilder.
			Set("assignee_user_id", changes.Assignee.UserID).
			Set("assignee_username", changes.Assignee.Username)
	}

	if changes.Reporter != nil {
		updateBuilder = updateBuilder.
			Set("reporter_user_id", changes.Reporter.UserID).
			Set("reporter_username", changes.Reporter.Username)
	}

	if changes.BranchCreated != nil {
		updateBuilder = updateBuilder.Set("branch_created", *changes.BranchCreated)
	}

	if changes.PRCreated != nil {
		updateBuilder = updateBuilder.Set("pr_created", *changes.PRCreated)
	}

	if changes.Deliverables != nil {
		updateBuilder = updateBuilder.Set("deliverables", *changes.Deliverables)
	}

	if changes.PRFeedback != nil {
		updateBuilder = updateBuilder.Set("pr_feedback", jsonb[[]domain.PRFeedback]{V: nonNilFeedback(*changes.PRFeedback)})
	}

	updateBuilder = applyTransition(updateBuilder, tr)

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.NotFound("subtask instance '%s'", id))
	}

	return nil
}

func (r *SubtaskInstanceRepository) SetCriterionCompleted(ctx context.Context, subtaskID string, ref domain.CriterionRef, completed bool) (bool, error) {
	const op = "internal.repository.postgres.SetCriterionCompleted"

	if !validID(subtaskID) {
		return false, nil
	}

	updateBuilder := r.sq.Update("subtask_acceptance_criteria").
		Set("completed", completed).
		Where(sq.Eq{"subtask_id": subtaskID})

	if idx, ok := ref.Index(); ok {
		updateBuilder = updateBuilder.Where(sq.Eq{"position": idx})
	} else {
		updateBuilder = updateBuilder.Where(
			"position = (SELECT MIN(position) FROM subtask_acceptance_criteria WHERE subtask_id = ? AND criteria_text = ?)",
			subtaskID, ref.Text(),
		)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}

	return rowsAffected > 0, nil
}

func nonNilFeedback(f []domain.PRFeedback) []domain.PRFeedback {
	if f == nil {
		return []domain.PRFeedback{}
	}

	return f
}
