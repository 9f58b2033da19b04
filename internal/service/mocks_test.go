package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/YusovID/pangea-backend/internal/cache"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/YusovID/pangea-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type TransactorMock struct {
	mock.Mock
}

func (m *TransactorMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	var tx *sqlx.Tx

	args := m.Called(ctx, opts)
	if args.Get(0) != nil {
		tx = args.Get(0).(*sqlx.Tx)
	}

	return tx, args.Error(1)
}

type ProblemInstanceRepositoryMock struct {
	mock.Mock
}

var _ repository.ProblemInstanceRepository = (*ProblemInstanceRepositoryMock)(nil)

func (m *ProblemInstanceRepositoryMock) CreateInstance(ctx context.Context, inst *domain.ProblemInstance) error {
	args := m.Called(ctx, inst)
	return args.Error(0)
}

func (m *ProblemInstanceRepositoryMock) GetInstanceByID(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.ProblemInstance, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ProblemInstance), args.Error(1)
}

func (m *ProblemInstanceRepositoryMock) GetInstanceByOwner(ctx context.Context, problemNum string, userID string) (*domain.ProblemInstance, error) {
	args := m.Called(ctx, problemNum, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ProblemInstance), args.Error(1)
}

func (m *ProblemInstanceRepositoryMock) AddCollaborator(ctx context.Context, tx *sqlx.Tx, instanceID string, c domain.Collaborator) error {
	args := m.Called(ctx, tx, instanceID, c)
	return args.Error(0)
}

func (m *ProblemInstanceRepositoryMock) UpdateInstance(
	ctx context.Context,
	ext sqlx.ExtContext,
	id string,
	changes domain.ProblemInstanceChanges,
	tr domain.Transition,
	at time.Time,
) error {
	args := m.Called(ctx, ext, id, changes, tr, at)
	return args.Error(0)
}

type SubtaskInstanceRepositoryMock struct {
	mock.Mock
}

var _ repository.SubtaskInstanceRepository = (*SubtaskInstanceRepositoryMock)(nil)

func (m *SubtaskInstanceRepositoryMock) CreateSubtask(ctx context.Context, tx *sqlx.Tx, st *domain.SubtaskInstance) error {
	args := m.Called(ctx, tx, st)
	return args.Error(0)
}

func (m *SubtaskInstanceRepositoryMock) ReplaceCriteria(ctx context.Context, tx *sqlx.Tx, subtaskID string, criteria []domain.AcceptanceCriterion) error {
	args := m.Called(ctx, tx, subtaskID, criteria)
	return args.Error(0)
}

func (m *SubtaskInstanceRepositoryMock) GetSubtask(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.SubtaskInstance, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.SubtaskInstance), args.Error(1)
}

func (m *SubtaskInstanceRepositoryMock) ListSubtasks(ctx context.Context, instanceID string) ([]domain.SubtaskInstance, error) {
	args := m.Called(ctx, instanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.SubtaskInstance), args.Error(1)
}

func (m *SubtaskInstanceRepositoryMock) UpdateSubtask(ctx context.Context, tx *sqlx.Tx, id string, changes domain.SubtaskChanges, tr domain.Transition) error {
	args := m.Called(ctx, tx, id, changes, tr)
	return args.Error(0)
}

func (m *SubtaskInstanceRepositoryMock) SetCriterionCompleted(ctx context.Context, subtaskID string, ref domain.CriterionRef, completed bool) (bool, error) {
	args := m.Called(ctx, subtaskID, ref, completed)
	return args.Bool(0), args.Error(1)
}

type DiscussionRepositoryMock struct {
	mock.Mock
}

var _ repository.DiscussionRepository = (*DiscussionRepositoryMock)(nil)

func (m *DiscussionRepositoryMock) CreateDiscussion(ctx context.Context, d *domain.Discussion) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *DiscussionRepositoryMock) GetDiscussion(ctx context.Context, id string) (*domain.Discussion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Discussion), args.Error(1)
}

func (m *DiscussionRepositoryMock) ListTopLevel(ctx context.Context, problemID string) ([]domain.Discussion, error) {
	args := m.Called(ctx, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Discussion), args.Error(1)
}

func (m *DiscussionRepositoryMock) ListReplies(ctx context.Context, parentIDs []string) ([]domain.Discussion, error) {
	args := m.Called(ctx, parentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Discussion), args.Error(1)
}

func (m *DiscussionRepositoryMock) IncrementVotes(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProblemRepositoryMock struct {
	mock.Mock
}

var _ repository.ProblemRepository = (*ProblemRepositoryMock)(nil)

func (m *ProblemRepositoryMock) ListProblems(ctx context.Context, category string) ([]domain.Problem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Problem), args.Error(1)
}

func (m *ProblemRepositoryMock) GetProblem(ctx context.Context, problemNum string) (*domain.Problem, error) {
	args := m.Called(ctx, problemNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Problem), args.Error(1)
}

func (m *ProblemRepositoryMock) CreateProblem(ctx context.Context, p *domain.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProblemRepositoryMock) UpdateProblem(ctx context.Context, problemNum string, patch domain.ProblemPatch) error {
	args := m.Called(ctx, problemNum, patch)
	return args.Error(0)
}

func (m *ProblemRepositoryMock) DeleteProblem(ctx context.Context, problemNum string) error {
	args := m.Called(ctx, problemNum)
	return args.Error(0)
}

type ProblemCacheMock struct {
	mock.Mock
}

var _ cache.ProblemCache = (*ProblemCacheMock)(nil)

func (m *ProblemCacheMock) Get(ctx context.Context, problemNum string) (*domain.Problem, error) {
	args := m.Called(ctx, problemNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Problem), args.Error(1)
}

func (m *ProblemCacheMock) Set(ctx context.Context, p *domain.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProblemCacheMock) Delete(ctx context.Context, problemNum string) error {
	args := m.Called(ctx, problemNum)
	return args.Error(0)
}

type ContactRepositoryMock struct {
	mock.Mock
}

var _ repository.ContactRepository = (*ContactRepositoryMock)(nil)

func (m *ContactRepositoryMock) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
