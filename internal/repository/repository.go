// Package repository defines the persistence contracts used by the service layer.
// Methods taking sqlx.ExtContext run either inside a transaction (*sqlx.Tx)
// or directly on a connection (*sqlx.DB).
package repository

import (
	"context"
	"time"

	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ProblemInstanceRepository stores problem instances and their collaborators.
type ProblemInstanceRepository interface {
	// CreateInstance inserts inst. It returns *apperrors.InstanceAlreadyExistsError
	// when the (problemNum, owner) pair is taken.
	CreateInstance(ctx context.Context, inst *domain.ProblemInstance) error

	// GetInstanceByID loads an instance with its collaborators in invitation order.
	// It returns apperrors.ErrNotFound for unknown or malformed ids.
	GetInstanceByID(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.ProblemInstance, error)

	// GetInstanceByOwner loads the instance a user owns for a problem.
	GetInstanceByOwner(ctx context.Context, problemNum string, userID string) (*domain.ProblemInstance, error)

	// AddCollaborator appends c. It returns *apperrors.CollaboratorAlreadyExistsError
	// when the user is already on the instance.
	AddCollaborator(ctx context.Context, tx *sqlx.Tx, instanceID string, c domain.Collaborator) error

	// UpdateInstance applies the mode and details in changes plus the status
	// transition tr, and always sets last_updated_at. It returns
	// apperrors.ErrNotFound when no row matched.
	UpdateInstance(ctx context.Context, ext sqlx.ExtContext, id string, changes domain.ProblemInstanceChanges, tr domain.Transition, at time.Time) error
}

// SubtaskInstanceRepository stores subtask instances and their acceptance criteria.
type SubtaskInstanceRepository interface {
	// CreateSubtask inserts st. It returns *apperrors.StepAlreadyExistsError for a
	// taken step and *apperrors.ParentNotFoundError for a missing parent.
	CreateSubtask(ctx context.Context, tx *sqlx.Tx, st *domain.SubtaskInstance) error

	// ReplaceCriteria rewrites the full criteria list of a subtask.
	ReplaceCriteria(ctx context.Context, tx *sqlx.Tx, subtaskID string, criteria []domain.AcceptanceCriterion) error

	// GetSubtask loads a subtask with its ordered criteria.
	GetSubtask(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.SubtaskInstance, error)

	// ListSubtasks returns the subtasks of an instance ordered by step number.
	ListSubtasks(ctx context.Context, instanceID string) ([]domain.SubtaskInstance, error)

	// UpdateSubtask applies the plain fields of changes plus the status
	// transition tr. Criteria replacement goes through ReplaceCriteria.
	// It returns apperrors.ErrNotFound when no row matched.
	UpdateSubtask(ctx context.Context, tx *sqlx.Tx, id string, changes domain.SubtaskChanges, tr domain.Transition) error

	// SetCriterionCompleted flips one criterion with a single-row update and
	// reports whether a row matched.
	SetCriterionCompleted(ctx context.Context, subtaskID string, ref domain.CriterionRef, completed bool) (bool, error)
}

// DiscussionRepository stores discussion threads.
type DiscussionRepository interface {
	CreateDiscussion(ctx context.Context, d *domain.Discussion) error

	// GetDiscussion returns apperrors.ErrNotFound for unknown or malformed ids.
	GetDiscussion(ctx context.Context, id string) (*domain.Discussion, error)

	// ListTopLevel returns the discussions of a problem that have no parent, newest first.
	ListTopLevel(ctx context.Context, problemID string) ([]domain.Discussion, error)

	// ListReplies returns the direct replies to any of parentIDs, oldest first.
	ListReplies(ctx context.Context, parentIDs []string) ([]domain.Discussion, error)

	// IncrementVotes adds one vote atomically. It returns apperrors.ErrNotFound
	// when the discussion does not exist.
	IncrementVotes(ctx context.Context, id string) error
}

// ProblemRepository stores the problem catalog.
type ProblemRepository interface {
	ListProblems(ctx context.Context, category string) ([]domain.Problem, error)
	GetProblem(ctx context.Context, problemNum string) (*domain.Problem, error)

	// CreateProblem returns *apperrors.ProblemAlreadyExistsError for a taken number.
	CreateProblem(ctx context.Context, p *domain.Problem) error
	UpdateProblem(ctx context.Context, problemNum string, patch domain.ProblemPatch) error
	DeleteProblem(ctx context.Context, problemNum string) error
}

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	CreateContactMessage(ctx context.Context, m *domain.ContactMessage) error
}
