package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/YusovID/pangea-backend/internal/repository"
	"github.com/YusovID/pangea-backend/internal/validation"
	"github.com/google/uuid"
)

type DiscussionService interface {
	Create(ctx context.Context, problemID, content, userID string, parentID *string) (*domain.Discussion, error)
	ListByProblem(ctx context.Context, problemID string) ([]domain.DiscussionThread, error)
	Vote(ctx context.Context, id string) error
}

type DiscussionServiceImpl struct {
	log  *slog.Logger
	repo repository.DiscussionRepository
	now  func() time.Time
}

func NewDiscussionService(log *slog.Logger, repo repository.DiscussionRepository) *DiscussionServiceImpl {
	return &DiscussionServiceImpl{
		log:  log,
		repo: repo,
		now:  utcNow,
	}
}

func (s *DiscussionServiceImpl) Create(ctx context.Context, problemID, content, userID string, parentID *string) (*domain.Discussion, error) {
	const op = "internal.service.discussion.Create"
	log := s.log.With(slog.String("op", op), slog.String("problem_id", problemID), slog.String("user_id", userID))

	if parentID != nil {
		parent, err := s.repo.GetDiscussion(ctx, *parentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, validation.Invalid("parent discussion '%s' not found", *parentID)
			}

			return nil, fmt.Errorf("%s: failed to get parent discussion: %w", op, err)
		}

		// Threads are two levels deep.
		if parent.ParentID != nil {
			return nil, validation.Invalid("discussion '%s' is a reply and cannot be replied to", *parentID)
		}

		if parent.ProblemID != problemID {
			return nil, validation.Invalid("parent discussion '%s' belongs to another problem", *parentID)
		}
	}

	d := &domain.Discussion{
		ID:        uuid.NewString(),
		ProblemID: problemID,
		Content:   content,
		UserID:    userID,
		ParentID:  parentID,
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateDiscussion(ctx, d); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("discussion posted", slog.String("discussion_id", d.ID))

	return d, nil
}

func (s *DiscussionServiceImpl) ListByProblem(ctx context.Context, problemID string) ([]domain.DiscussionThread, error) {
	const op = "internal.service.discussion.ListByProblem"

	top, err := s.repo.ListTopLevel(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := make([]string, len(top))
	for i, d := range top {
		ids[i] = d.ID
	}

	replies, err := s.repo.ListReplies(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byParent := make(map[string][]domain.Discussion, len(top))
	for _, reply := range replies {
		if reply.ParentID == nil {
			continue
		}

		byParent[*reply.ParentID] = append(byParent[*reply.ParentID], reply)
	}

	threads := make([]domain.DiscussionThread, len(top))
	for i, d := range top {
		r := byParent[d.ID]
		if r == nil {
			r = []domain.Discussion{}
		}

		threads[i] = domain.DiscussionThread{Discussion: d, Replies: r}
	}

	return threads, nil
}

func (s *DiscussionServiceImpl) Vote(ctx context.Context, id string) error {
	const op = "internal.service.discussion.Vote"

	if err := s.repo.IncrementVotes(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
