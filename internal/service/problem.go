package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/pangea-backend/internal/cache"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/YusovID/pangea-backend/internal/repository"
	"github.com/YusovID/pangea-backend/pkg/logger/sl"
)

type ProblemService interface {
	List(ctx context.Context, category string) ([]domain.Problem, error)
	Get(ctx context.Context, problemNum string) (*domain.Problem, error)
	Add(ctx context.Context, p domain.Problem) error
	Update(ctx context.Context, problemNum string, patch domain.ProblemPatch) error
	Delete(ctx context.Context, problemNum string) error
}

type ProblemServiceImpl struct {
	log   *slog.Logger
	repo  repository.ProblemRepository
	cache cache.ProblemCache
	now   func() time.Time
}

func NewProblemService(log *slog.Logger, repo repository.ProblemRepository, c cache.ProblemCache) *ProblemServiceImpl {
	if c == nil {
		c = cache.Noop{}
	}

	return &ProblemServiceImpl{
		log:   log,
		repo:  repo,
		cache: c,
		now:   utcNow,
	}
}

func (s *ProblemServiceImpl) List(ctx context.Context, category string) ([]domain.Problem, error) {
	const op = "internal.service.problem.List"

	problems, err := s.repo.ListProblems(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range problems {
		problems[i].NormalizeCriteria()
	}

	return problems, nil
}

func (s *ProblemServiceImpl) Get(ctx context.Context, problemNum string) (*domain.Problem, error) {
	const op = "internal.service.problem.Get"
	log := s.log.With(slog.String("op", op), slog.String("problem_num", problemNum))

	cached, err := s.cache.Get(ctx, problemNum)
	if err != nil {
		log.Warn("problem cache read failed", sl.Err(err))
	}

	if cached != nil {
		return cached, nil
	}

	p, err := s.repo.GetProblem(ctx, problemNum)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.NormalizeCriteria()

	if err := s.cache.Set(ctx, p); err != nil {
		log.Warn("problem cache write failed", sl.Err(err))
	}

	return p, nil
}

func (s *ProblemServiceImpl) Add(ctx context.Context, p domain.Problem) error {
	const op = "internal.service.problem.Add"

	p.CreatedAt = s.now()

	if err := s.repo.CreateProblem(ctx, &p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ProblemServiceImpl) Update(ctx context.Context, problemNum string, patch domain.ProblemPatch) error {
	const op = "internal.service.problem.Update"

	if err := s.repo.UpdateProblem(ctx, problemNum, patch); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.evict(ctx, op, problemNum)

	return nil
}

func (s *ProblemServiceImpl) Delete(ctx context.Context, problemNum string) error {
	const op = "internal.service.problem.Delete"

	if err := s.repo.DeleteProblem(ctx, problemNum); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.evict(ctx, op, problemNum)

	return nil
}

func (s *ProblemServiceImpl) evict(ctx context.Context, op, problemNum string) {
	if err := s.cache.Delete(ctx, problemNum); err != nil {
		s.log.Warn("problem cache eviction failed",
			slog.String("op", op),
			slog.String("problem_num", problemNum),
			sl.Err(err),
		)
	}
}
