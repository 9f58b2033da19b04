package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/YusovID/pangea-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SubtaskInstanceService interface {
	Create(ctx context.Context, problemInstanceID string, in domain.NewSubtask) (string, error)
	Get(ctx context.Context, id string) (*domain.SubtaskInstance, error)
	ListByParent(ctx context.Context, problemInstanceID string) ([]domain.SubtaskInstance, error)
	Update(ctx context.Context, id string, changes domain.SubtaskChanges) error
	UpdateCriterion(ctx context.Context, id string, ref domain.CriterionRef, completed bool) error
}

type SubtaskInstanceServiceImpl struct {
	BaseService
	instances repository.ProblemInstanceRepository
	subtasks  repository.SubtaskInstanceRepository
}

func NewSubtaskInstanceService(
	db Transactor,
	ext sqlx.ExtContext,
	log *slog.Logger,
	instances repository.ProblemInstanceRepository,
	subtasks repository.SubtaskInstanceRepository,
) *SubtaskInstanceServiceImpl {
	return &SubtaskInstanceServiceImpl{
		BaseService: NewBaseService(db, ext, log),
		instances:   instances,
		subtasks:    subtasks,
	}
}

func (s *SubtaskInstanceServiceImpl) Create(ctx context.Context, problemInstanceID string, in domain.NewSubtask) (string, error) {
	const op = "internal.service.subtaskinstance.Create"
	log := s.log.With(slog.String("op", op), slog.String("instance_id", problemInstanceID), slog.Int("step_num", in.StepNum))

	status := in.Status
	if status == "" {
		status = domain.StatusNotStarted
	}

	startedAt, completedAt := domain.SubtaskTransition(&status, nil, s.now()).Apply(nil, nil)

	st := &domain.SubtaskInstance{
		ID:                 uuid.NewString(),
		ProblemInstanceID:  problemInstanceID,
		StepNum:            in.StepNum,
		Assignee:           in.Assignee,
		Reporter:           in.Reporter,
		Status:             status,
		BranchCreated:      in.BranchCreated,
		PRCreated:          in.PRCreated,
		Deliverables:       in.Deliverables,
		AcceptanceCriteria: in.AcceptanceCriteria,
		PRFeedback:         in.PRFeedback,
		StartedAt:          startedAt,
		CompletedAt:        completedAt,
	}

	if st.AcceptanceCriteria == nil {
		st.AcceptanceCriteria = []domain.AcceptanceCriterion{}
	}

	if st.PRFeedback == nil {
		st.PRFeedback = []domain.PRFeedback{}
	}

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if _, err := s.instances.GetInstanceByID(ctx, tx, problemInstanceID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return &apperrors.ParentNotFoundError{InstanceID: problemInstanceID}
			}

			return fmt.Errorf("%s: failed to get parent instance: %w", op, err)
		}

		if err := s.subtasks.CreateSubtask(ctx, tx, st); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	log.Info("subtask instance created", slog.String("subtask_id", st.ID))

	return st.ID, nil
}

func (s *SubtaskInstanceServiceImpl) Get(ctx context.Context, id string) (*domain.SubtaskInstance, error) {
	const op = "internal.service.subtaskinstance.Get"

	st, err := s.subtasks.GetSubtask(ctx, s.ext, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return st, nil
}

func (s *SubtaskInstanceServiceImpl) ListByParent(ctx context.Context, problemInstanceID string) ([]domain.SubtaskInstance, error) {
	const op = "internal.service.subtaskinstance.ListByParent"

	if _, err := s.instances.GetInstanceByID(ctx, s.ext, problemInstanceID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subtasks, err := s.subtasks.ListSubtasks(ctx, problemInstanceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subtasks, nil
}

func (s *SubtaskInstanceServiceImpl) Update(ctx context.Context, id string, changes domain.SubtaskChanges) error {
	const op = "internal.service.subtaskinstance.Update"

	tr := domain.SubtaskTransition(changes.Status, changes.CompletedAt, s.now())

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if err := s.subtasks.UpdateSubtask(ctx, tx, id, changes, tr); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if changes.AcceptanceCriteria != nil {
			criteria := *changes.AcceptanceCriteria
			if criteria == nil {
				criteria = []domain.AcceptanceCriterion{}
			}

			if err := s.subtasks.ReplaceCriteria(ctx, tx, id, criteria); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("subtask instance updated", slog.String("op", op), slog.String("subtask_id", id))

	return nil
}

func (s *SubtaskInstanceServiceImpl) UpdateCriterion(ctx context.Context, id string, ref domain.CriterionRef, completed bool) error {
	const op = "internal.service.subtaskinstance.UpdateCriterion"
	log := s.log.With(slog.String("op", op), slog.String("subtask_id", id), slog.String("criterion", ref.String()))

	st, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, ok := ref.Resolve(st.AcceptanceCriteria); !ok {
		return fmt.Errorf("%s: %w", op, criterionMissing(ref))
	}

	// The list may have been replaced since it was read; the update itself
	// decides whether the criterion still exists.
	updated, err := s.subtasks.SetCriterionCompleted(ctx, id, ref, completed)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !updated {
		return fmt.Errorf("%s: %w", op, criterionMissing(ref))
	}

	log.Info("acceptance criterion updated", slog.Bool("completed", completed))

	return nil
}

func criterionMissing(ref domain.CriterionRef) error {
	if idx, ok := ref.Index(); ok {
		return fmt.Errorf("%w: index %d", apperrors.ErrIndexOutOfRange, idx)
	}

	return fmt.Errorf("%w: %s", apperrors.ErrCriterionNotFound, ref)
}
