package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/YusovID/pangea-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProblemInstanceService interface {
	GetByProblemAndUser(ctx context.Context, problemNum string, userID string) (*domain.ProblemInstance, error)
	GetByID(ctx context.Context, id string) (*domain.ProblemInstance, error)
	ListCollaborators(ctx context.Context, id string) ([]domain.Collaborator, error)
	Create(ctx context.Context, in domain.NewProblemInstance) (string, error)
	AddCollaborator(ctx context.Context, id string, user domain.Owner) error
	UpdateStatus(ctx context.Context, id string, status domain.Status, completedAt *time.Time) error
	UpdateFields(ctx context.Context, id string, changes domain.ProblemInstanceChanges) error
}

type ProblemInstanceServiceImpl struct {
	BaseService
	repo repository.ProblemInstanceRepository
}

func NewProblemInstanceService(db Transactor, ext sqlx.ExtContext, log *slog.Logger, repo repository.ProblemInstanceRepository) *ProblemInstanceServiceImpl {
	return &ProblemInstanceServiceImpl{
		BaseService: NewBaseService(db, ext, log),
		repo:        repo,
	}
}

func (s *ProblemInstanceServiceImpl) GetByProblemAndUser(ctx context.Context, problemNum string, userID string) (*domain.ProblemInstance, error) {
	const op = "internal.service.probleminstance.GetByProblemAndUser"

	inst, err := s.repo.GetInstanceByOwner(ctx, problemNum, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return inst, nil
}

func (s *ProblemInstanceServiceImpl) GetByID(ctx context.Context, id string) (*domain.ProblemInstance, error) {
	const op = "internal.service.probleminstance.GetByID"

	inst, err := s.repo.GetInstanceByID(ctx, s.ext, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return inst, nil
}

func (s *ProblemInstanceServiceImpl) ListCollaborators(ctx context.Context, id string) ([]domain.Collaborator, error) {
	inst, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return inst.Collaborators, nil
}

func (s *ProblemInstanceServiceImpl) Create(ctx context.Context, in domain.NewProblemInstance) (string, error) {
	const op = "internal.service.probleminstance.Create"
	log := s.log.With(slog.String("op", op), slog.String("problem_num", in.ProblemNum), slog.String("owner_id", in.Owner.UserID))

	now := s.now()

	inst := &domain.ProblemInstance{
		ID:                   uuid.NewString(),
		ProblemNum:           in.ProblemNum,
		Owner:                in.Owner,
		CollaborationMode:    in.CollaborationMode,
		Collaborators:        []domain.Collaborator{},
		Status:               in.Status,
		StartedAt:            now,
		LastUpdatedAt:        now,
		CollaborationDetails: in.CollaborationDetails,
	}

	if inst.Status == "" {
		inst.Status = domain.StatusInProgress
	}

	if inst.CollaborationDetails == nil {
		inst.CollaborationDetails = map[string]any{}
	}

	if err := s.repo.CreateInstance(ctx, inst); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("problem instance started", slog.String("instance_id", inst.ID))

	return inst.ID, nil
}

func (s *ProblemInstanceServiceImpl) AddCollaborator(ctx context.Context, id string, user domain.Owner) error {
	const op = "internal.service.probleminstance.AddCollaborator"
	log := s.log.With(slog.String("op", op), slog.String("instance_id", id), slog.String("user_id", user.UserID))

	now := s.now()

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		// Touching the parent first locks the row and reports a missing instance.
		if err := s.repo.UpdateInstance(ctx, tx, id, domain.ProblemInstanceChanges{}, domain.Transition{}, now); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		c := domain.Collaborator{
			UserID:    user.UserID,
			Username:  user.Username,
			Email:     user.Email,
			InvitedAt: now,
			Status:    domain.CollaboratorInvited,
		}

		if err := s.repo.AddCollaborator(ctx, tx, id, c); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info("collaborator invited")

	return nil
}

func (s *ProblemInstanceServiceImpl) UpdateStatus(ctx context.Context, id string, status domain.Status, completedAt *time.Time) error {
	const op = "internal.service.probleminstance.UpdateStatus"

	now := s.now()
	tr := domain.InstanceTransition(&status, completedAt, now)

	if err := s.repo.UpdateInstance(ctx, s.ext, id, domain.ProblemInstanceChanges{}, tr, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("problem instance status updated", slog.String("op", op), slog.String("instance_id", id), slog.String("status", string(status)))

	return nil
}

func (s *ProblemInstanceServiceImpl) UpdateFields(ctx context.Context, id string, changes domain.ProblemInstanceChanges) error {
	const op = "internal.service.probleminstance.UpdateFields"

	now := s.now()
	tr := domain.InstanceTransition(changes.Status, changes.CompletedAt, now)

	if err := s.repo.UpdateInstance(ctx, s.ext, id, changes, tr, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("problem instance updated", slog.String("op", op), slog.String("instance_id", id))

	return nil
}
