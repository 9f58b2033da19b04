package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProblemInstanceService(transactor *TransactorMock, repo *ProblemInstanceRepositoryMock) *ProblemInstanceServiceImpl {
	s := NewProblemInstanceService(transactor, nil, discardLogger(), repo)
	s.now = fixedClock

	return s
}

func TestProblemInstanceServiceImpl_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		input         domain.NewProblemInstance
		setupMocks    func(repo *ProblemInstanceRepositoryMock)
		expectedError error
	}{
		{
			name: "Success with defaults",
			input: domain.NewProblemInstance{
				ProblemNum:        "P1",
				Owner:             domain.Owner{UserID: "u1", Username: "alice", Email: "a@example.com"},
				CollaborationMode: domain.CollaborationSolo,
			},
			setupMocks: func(repo *ProblemInstanceRepositoryMock) {
				repo.On("CreateInstance", ctx, mock.MatchedBy(func(inst *domain.ProblemInstance) bool {
					return inst.ID != "" &&
						inst.Status == domain.StatusInProgress &&
						inst.StartedAt.Equal(fixedNow) &&
						inst.LastUpdatedAt.Equal(fixedNow) &&
						inst.CompletedAt == nil &&
						inst.CollaborationDetails != nil &&
						inst.Collaborators != nil
				})).Return(nil).Once()
			},
		},
		{
			name: "Explicit status is kept",
			input: domain.NewProblemInstance{
				ProblemNum:        "P1",
				Owner:             domain.Owner{UserID: "u1"},
				CollaborationMode: domain.CollaborationPair,
				Status:            domain.StatusNotStarted,
			},
			setupMocks: func(repo *ProblemInstanceRepositoryMock) {
				repo.On("CreateInstance", ctx, mock.MatchedBy(func(inst *domain.ProblemInstance) bool {
					return inst.Status == domain.StatusNotStarted
				})).Return(nil).Once()
			},
		},
		{
			name:  "Duplicate instance",
			input: domain.NewProblemInstance{ProblemNum: "P1", Owner: domain.Owner{UserID: "u1"}, CollaborationMode: domain.CollaborationSolo},
			setupMocks: func(repo *ProblemInstanceRepositoryMock) {
				repo.On("CreateInstance", ctx, mock.Anything).
					Return(&apperrors.InstanceAlreadyExistsError{ProblemNum: "P1", OwnerID: "u1"}).Once()
			},
			expectedError: apperrors.ErrAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(ProblemInstanceRepositoryMock)
			tc.setupMocks(repo)

			s := newTestProblemInstanceService(new(TransactorMock), repo)

			id, err := s.Create(ctx, tc.input)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, id)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, id)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestProblemInstanceServiceImpl_AddCollaborator(t *testing.T) {
	ctx := context.Background()
	user := domain.Owner{UserID: "u2", Username: "bob", Email: "bob@example.com"}
	expectedCollaborator := domain.Collaborator{
		UserID:    "u2",
		Username:  "bob",
		Email:     "bob@example.com",
		InvitedAt: fixedNow,
		Status:    domain.CollaboratorInvited,
	}

	testCases := []struct {
		name          string
		setupMocks    func(transactor *TransactorMock, repo *ProblemInstanceRepositoryMock)
		expectedError error
	}{
		{
			name: "Success",
			setupMocks: func(transactor *TransactorMock, repo *ProblemInstanceRepositoryMock) {
				_, mockedTx, smock := newMockDBAndTx(t)
				smock.ExpectCommit()

				transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(mockedTx, nil).Once()
				repo.On("UpdateInstance", ctx, mockedTx, "inst-1", domain.ProblemInstanceChanges{}, domain.Transition{}, fixedNow).Return(nil).Once()
				repo.On("AddCollaborator", ctx, mockedTx, "inst-1", expectedCollaborator).Return(nil).Once()
			},
		},
		{
			name: "Instance not found",
			setupMocks: func(transactor *TransactorMock, repo *ProblemInstanceRepositoryMock) {
				_, mockedTx, smock := newMockDBAndTx(t)
				smock.ExpectRollback()

				transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(mockedTx, nil).Once()
				repo.On("UpdateInstance", ctx, mockedTx, "inst-1", mock.Anything, mock.Anything, fixedNow).
					Return(apperrors.NotFound("problem instance")).Once()
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name: "Duplicate collaborator rolls back the touch",
			setupMocks: func(transactor *TransactorMock, repo *ProblemInstanceRepositoryMock) {
				_, mockedTx, smock := newMockDBAndTx(t)
				smock.ExpectRollback()

				transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(mockedTx, nil).Once()
				repo.On("UpdateInstance", ctx, mockedTx, "inst-1", mock.Anything, mock.Anything, fixedNow).Return(nil).Once()
				repo.On("AddCollaborator", ctx, mockedTx, "inst-1", expectedCollaborator).
					Return(&apperrors.CollaboratorAlreadyExistsError{UserID: "u2"}).Once()
			},
			expectedError: apperrors.ErrAlreadyExists,
		},
		{
			name: "Failure on BeginTxx",
			setupMocks: func(transactor *TransactorMock, repo *ProblemInstanceRepositoryMock) {
				transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(nil, errors.New("cannot begin tx")).Once()
			},
			expectedError: errors.New("cannot begin tx"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transactor := new(TransactorMock)
			repo := new(ProblemInstanceRepositoryMock)
			tc.setupMocks(transactor, repo)

			s := newTestProblemInstanceService(transactor, repo)

			err := s.AddCollaborator(ctx, "inst-1", user)
			switch {
			case tc.expectedError == nil:
				require.NoError(t, err)
			case errors.Is(tc.expectedError, apperrors.ErrNotFound), errors.Is(tc.expectedError, apperrors.ErrAlreadyExists):
				assert.ErrorIs(t, err, tc.expectedError)
			default:
				assert.ErrorContains(t, err, tc.expectedError.Error())
			}

			transactor.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestProblemInstanceServiceImpl_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	completed := domain.StatusCompleted
	inProgress := domain.StatusInProgress
	explicit := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		status      domain.Status
		completedAt *time.Time
		expectedTr  domain.Transition
	}{
		{
			name:       "Completed stamps now only if unset",
			status:     domain.StatusCompleted,
			expectedTr: domain.Transition{Status: &completed, CompletedAtIfUnset: &fixedNow},
		},
		{
			name:        "Explicit completedAt wins",
			status:      domain.StatusCompleted,
			completedAt: &explicit,
			expectedTr:  domain.Transition{Status: &completed, CompletedAt: &explicit},
		},
		{
			name:       "Other statuses only set status",
			status:     domain.StatusInProgress,
			expectedTr: domain.Transition{Status: &inProgress},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(ProblemInstanceRepositoryMock)
			repo.On("UpdateInstance", ctx, mock.Anything, "inst-1", domain.ProblemInstanceChanges{}, tc.expectedTr, fixedNow).Return(nil).Once()

			s := newTestProblemInstanceService(new(TransactorMock), repo)

			require.NoError(t, s.UpdateStatus(ctx, "inst-1", tc.status, tc.completedAt))
			repo.AssertExpectations(t)
		})
	}

	t.Run("Not found", func(t *testing.T) {
		repo := new(ProblemInstanceRepositoryMock)
		repo.On("UpdateInstance", ctx, mock.Anything, "missing", mock.Anything, mock.Anything, fixedNow).
			Return(apperrors.NotFound("problem instance")).Once()

		s := newTestProblemInstanceService(new(TransactorMock), repo)

		assert.ErrorIs(t, s.UpdateStatus(ctx, "missing", domain.StatusCompleted, nil), apperrors.ErrNotFound)
	})
}

func TestProblemInstanceServiceImpl_UpdateFields(t *testing.T) {
	ctx := context.Background()
	completed := domain.StatusCompleted
	pair := domain.CollaborationPair

	changes := domain.ProblemInstanceChanges{
		Status:               &completed,
		CollaborationMode:    &pair,
		CollaborationDetails: map[string]any{"room": "42"},
	}

	repo := new(ProblemInstanceRepositoryMock)
	repo.On("UpdateInstance", ctx, mock.Anything, "inst-1", changes,
		domain.Transition{Status: &completed, CompletedAtIfUnset: &fixedNow}, fixedNow).Return(nil).Once()

	s := newTestProblemInstanceService(new(TransactorMock), repo)

	require.NoError(t, s.UpdateFields(ctx, "inst-1", changes))
	repo.AssertExpectations(t)
}

func TestProblemInstanceServiceImpl_Reads(t *testing.T) {
	ctx := context.Background()

	inst := &domain.ProblemInstance{
		ID:            "inst-1",
		ProblemNum:    "P1",
		Status:        domain.StatusInProgress,
		Collaborators: []domain.Collaborator{{UserID: "u2"}, {UserID: "u3"}},
	}

	repo := new(ProblemInstanceRepositoryMock)
	repo.On("GetInstanceByOwner", ctx, "P1", "u1").Return(inst, nil).Once()
	repo.On("GetInstanceByOwner", ctx, "P2", "u1").Return(nil, apperrors.NotFound("problem instance")).Once()
	repo.On("GetInstanceByID", ctx, mock.Anything, "inst-1").Return(inst, nil).Once()
	repo.On("GetInstanceByID", ctx, mock.Anything, "bad").Return(nil, apperrors.NotFound("problem instance")).Once()

	s := newTestProblemInstanceService(new(TransactorMock), repo)

	got, err := s.GetByProblemAndUser(ctx, "P1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "inst-1", got.ID)

	_, err = s.GetByProblemAndUser(ctx, "P2", "u1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	collaborators, err := s.ListCollaborators(ctx, "inst-1")
	require.NoError(t, err)
	require.Len(t, collaborators, 2)
	assert.Equal(t, "u2", collaborators[0].UserID)

	_, err = s.ListCollaborators(ctx, "bad")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	repo.AssertExpectations(t)
}
