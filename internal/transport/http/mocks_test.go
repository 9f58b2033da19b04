package http

import (
	"context"
	"time"

	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/YusovID/pangea-backend/internal/service"
	"github.com/stretchr/testify/mock"
)

var (
	_ service.ProblemInstanceService = (*InstanceServiceMock)(nil)
	_ service.SubtaskInstanceService = (*SubtaskServiceMock)(nil)
	_ service.DiscussionService      = (*DiscussionServiceMock)(nil)
	_ service.ProblemService         = (*ProblemServiceMock)(nil)
	_ service.ContactService         = (*ContactServiceMock)(nil)
)

type InstanceServiceMock struct {
	mock.Mock
}

func (m *InstanceServiceMock) GetByProblemAndUser(ctx context.Context, problemNum string, userID string) (*domain.ProblemInstance, error) {
	args := m.Called(ctx, problemNum, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ProblemInstance), args.Error(1)
}

func (m *InstanceServiceMock) GetByID(ctx context.Context, id string) (*domain.ProblemInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ProblemInstance), args.Error(1)
}

func (m *InstanceServiceMock) ListCollaborators(ctx context.Context, id string) ([]domain.Collaborator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Collaborator), args.Error(1)
}

func (m *InstanceServiceMock) Create(ctx context.Context, in domain.NewProblemInstance) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *InstanceServiceMock) AddCollaborator(ctx context.Context, id string, user domain.Owner) error {
	return m.Called(ctx, id, user).Error(0)
}

func (m *InstanceServiceMock) UpdateStatus(ctx context.Context, id string, status domain.Status, completedAt *time.Time) error {
	return m.Called(ctx, id, status, completedAt).Error(0)
}

func (m *InstanceServiceMock) UpdateFields(ctx context.Context, id string, changes domain.ProblemInstanceChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

type SubtaskServiceMock struct {
	mock.Mock
}

func (m *SubtaskServiceMock) Create(ctx context.Context, problemInstanceID string, in domain.NewSubtask) (string, error) {
	args := m.Called(ctx, problemInstanceID, in)
	return args.String(0), args.Error(1)
}

func (m *SubtaskServiceMock) Get(ctx context.Context, id string) (*domain.SubtaskInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.SubtaskInstance), args.Error(1)
}

func (m *SubtaskServiceMock) ListByParent(ctx context.Context, problemInstanceID string) ([]domain.SubtaskInstance, error) {
	args := m.Called(ctx, problemInstanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.SubtaskInstance), args.Error(1)
}

func (m *SubtaskServiceMock) Update(ctx context.Context, id string, changes domain.SubtaskChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *SubtaskServiceMock) UpdateCriterion(ctx context.Context, id string, ref domain.CriterionRef, completed bool) error {
	return m.Called(ctx, id, ref, completed).Error(0)
}

type DiscussionServiceMock struct {
	mock.Mock
}

func (m *DiscussionServiceMock) Create(ctx context.Context, problemID, content, userID string, parentID *string) (*domain.Discussion, error) {
	args := m.Called(ctx, problemID, content, userID, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Discussion), args.Error(1)
}

func (m *DiscussionServiceMock) ListByProblem(ctx context.Context, problemID string) ([]domain.DiscussionThread, error) {
	args := m.Called(ctx, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.DiscussionThread), args.Error(1)
}

func (m *DiscussionServiceMock) Vote(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type ProblemServiceMock struct {
	mock.Mock
}

func (m *ProblemServiceMock) List(ctx context.Context, category string) ([]domain.Problem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Problem), args.Error(1)
}

func (m *ProblemServiceMock) Get(ctx context.Context, problemNum string) (*domain.Problem, error) {
	args := m.Called(ctx, problemNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Problem), args.Error(1)
}

func (m *ProblemServiceMock) Add(ctx context.Context, p domain.Problem) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProblemServiceMock) Update(ctx context.Context, problemNum string, patch domain.ProblemPatch) error {
	return m.Called(ctx, problemNum, patch).Error(0)
}

func (m *ProblemServiceMock) Delete(ctx context.Context, problemNum string) error {
	return m.Called(ctx, problemNum).Error(0)
}

type ContactServiceMock struct {
	mock.Mock
}

func (m *ContactServiceMock) Submit(ctx context.Context, name, email, subject, message string) error {
	return m.Called(ctx, name, email, subject, message).Error(0)
}

type serviceMocks struct {
	instances   *InstanceServiceMock
	subtasks    *SubtaskServiceMock
	discussions *DiscussionServiceMock
	problems    *ProblemServiceMock
	contact     *ContactServiceMock
}

func newServiceMocks() *serviceMocks {
	return &serviceMocks{
		instances:   new(InstanceServiceMock),
		subtasks:    new(SubtaskServiceMock),
		discussions: new(DiscussionServiceMock),
		problems:    new(ProblemServiceMock),
		contact:     new(ContactServiceMock),
	}
}

func (m *serviceMocks) services() Services {
	return Services{
		Instances:   m.instances,
		Subtasks:    m.subtasks,
		Discussions: m.discussions,
		Problems:    m.problems,
		Contact:     m.contact,
	}
}

func (m *serviceMocks) assertExpectations(t mock.TestingT) {
	m.instances.AssertExpectations(t)
	m.subtasks.AssertExpectations(t)
	m.discussions.AssertExpectations(t)
	m.problems.AssertExpectations(t)
	m.contact.AssertExpectations(t)
}
