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
	"github.com/lib/pq"
)

var problemColumns = []string{
	"problem_num", "title", "description", "long_description", "difficulty", "category",
	"requirements", "tags", "steps", "resources", "metadata",
	"downloadable_items", "preparation_steps", "acceptance_criteria", "created_at",
}

type problemRow struct {
	ProblemNum         string                  `db:"problem_num"`
	Title              string                  `db:"title"`
	Description        string                  `db:"description"`
	LongDescription    string                  `db:"long_description"`
	Difficulty         string                  `db:"difficulty"`
	Category           string                  `db:"category"`
	Requirements       jsonb[map[string]any]   `db:"requirements"`
	Tags               pq.StringArray          `db:"tags"`
	Steps              jsonb[[]domain.Step]    `db:"steps"`
	Resources          jsonb[[]map[string]any] `db:"resources"`
	Metadata           jsonb[map[string]any]   `db:"metadata"`
	DownloadableItems  jsonb[[]any]            `db:"downloadable_items"`
	PreparationSteps   jsonb[[]any]            `db:"preparation_steps"`
	AcceptanceCriteria jsonb[[]string]         `db:"acceptance_criteria"`
	CreatedAt          time.Time               `db:"created_at"`
}

func (r problemRow) toDomain() domain.Problem {
	return domain.Problem{
		ProblemNum:         r.ProblemNum,
		Title:              r.Title,
		Description:        r.Description,
		LongDescription:    r.LongDescription,
		Difficulty:         r.Difficulty,
		Category:           r.Category,
		Requirements:       r.Requirements.V,
		Tags:               []string(r.Tags),
		Steps:              r.Steps.V,
		Resources:          r.Resources.V,
		Metadata:           r.Metadata.V,
		DownloadableItems:  r.DownloadableItems.V,
		PreparationSteps:   r.PreparationSteps.V,
		AcceptanceCriteria: r.AcceptanceCriteria.V,
		CreatedAt:          r.CreatedAt,
	}
}

type ProblemRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewProblemRepository(db *sqlx.DB, log *slog.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProblemRepository) ListProblems(ctx context.Context, category string) ([]domain.Problem, error) {
	const op = "internal.repository.postgres.ListProblems"

	selectBuilder := r.sq.Select(problemColumns...).
		From("problems").
		OrderBy("problem_num")

	if category != "" {
		selectBuilder = selectBuilder.Where(sq.Eq{"category": category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var rows []problemRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select problems: %w", op, err)
	}

	problems := make([]domain.Problem, len(rows))
	for i, row := range rows {
		problems[i] = row.toDomain()
	}

	return problems, nil
}

func (r *ProblemRepository) GetProblem(ctx context.Context, problemNum string) (*domain.Problem, error) {
	const op = "internal.repository.postgres.GetProblem"

	query, args, err := r.sq.Select(problemColumns...).
		From("problems").
		Where(sq.Eq{"problem_num": problemNum}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var row problemRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.NotFound("problem '%s'", problemNum))
		}

		return nil, fmt.Errorf("%s: failed to get problem: %w", op, err)
	}

	p := row.toDomain()

	return &p, nil
}

func (r *ProblemRepository) CreateProblem(ctx context.Context, p *domain.Problem) error {
	const op = "internal.repository.postgres.CreateProblem"
	log := r.log.With(slog.String("op", op), slog.String("problem_num", p.ProblemNum))

	query, args, err := r.sq.Insert("problems").
		Columns(problemColumns...).
		Values(
			p.ProblemNum, p.Title, p.Description, p.LongDescription, p.Difficulty, p.Category,
			jsonb[map[string]any]{V: orEmptyMap(p.Requirements)},
			pq.StringArray(orEmpty(p.Tags)),
			jsonb[[]domain.Step]{V: orEmpty(p.Steps)},
			jsonb[[]map[string]any]{V: orEmpty(p.Resources)},
			jsonb[map[string]any]{V: orEmptyMap(p.Metadata)},
			jsonb[[]any]{V: orEmpty(p.DownloadableItems)},
			jsonb[[]any]{V: orEmpty(p.PreparationSteps)},
			jsonb[[]string]{V: orEmpty(p.AcceptanceCriteria)},
			p.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if pqCode(err) == codeUniqueViolation {
			return &apperrors.ProblemAlreadyExistsError{ProblemNum: p.ProblemNum}
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	log.Info("problem created")

	return nil
}

func (r *ProblemRepository) UpdateProblem(ctx context.Context, problemNum string, patch domain.ProblemPatch) error {
	const op = "internal.repository.postgres.UpdateProblem"

	updateBuilder := r.sq.Update("problems").
		Set("problem_num", sq.Expr("problem_num")).
		Where(sq.Eq{"problem_num": problemNum})

	setString := func(column string, v *string) {
		if v != nil {
			updateBuilder = updateBuilder.Set(column, *v)
		}
	}

	setString("title", patch.Title)
	setString("description", patch.Description)
	setString("long_description", patch.LongDescription)
	setString("difficulty", patch.Difficulty)
	setString("category", patch.Category)

	if patch.Requirements != nil {
		updateBuilder = updateBuilder.Set("requirements", jsonb[map[string]any]{V: patch.Requirements})
	}
	if patch.Tags != nil {
		updateBuilder = updateBuilder.Set("tags", pq.StringArray(orEmpty(*patch.Tags)))
	}
	if patch.Steps != nil {
		updateBuilder = updateBuilder.Set("steps", jsonb[[]domain.Step]{V: orEmpty(*patch.Steps)})
	}
	if patch.Resources != nil {
		updateBuilder = updateBuilder.Set("resources", jsonb[[]map[string]any]{V: orEmpty(*patch.Resources)})
	}
	if patch.Metadata != nil {
		updateBuilder = updateBuilder.Set("metadata", jsonb[map[string]any]{V: patch.Metadata})
	}
	if patch.DownloadableItems != nil {
		updateBuilder = updateBuilder.Set("downloadable_items", jsonb[[]any]{V: orEmpty(*patch.DownloadableItems)})
	}
	if patch.PreparationSteps != nil {
		updateBuilder = updateBuilder.Set("preparation_steps", jsonb[[]any]{V: orEmpty(*patch.PreparationSteps)})
	}
	if patch.AcceptanceCriteria != nil {
		updateBuilder = updateBuilder.Set("acceptance_criteria", jsonb[[]string]{V: orEmpty(*patch.AcceptanceCriteria)})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.NotFound("problem '%s'", problemNum))
	}

	return nil
}

func (r *ProblemRepository) DeleteProblem(ctx context.Context, problemNum string) error {
	const op = "internal.repository.postgres.DeleteProblem"

	query, args, err := r.sq.Delete("problems").
		Where(sq.Eq{"problem_num": problemNum}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute delete: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.NotFound("problem '%s'", problemNum))
	}

	r.log.Info("problem deleted", slog.String("op", op), slog.String("problem_num", problemNum))

	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}
