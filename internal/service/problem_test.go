package service

import (
	"context"
	"errors"
	"testing"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProblemService(repo *ProblemRepositoryMock, c *ProblemCacheMock) *ProblemServiceImpl {
	s := NewProblemService(discardLogger(), repo, c)
	s.now = fixedClock

	return s
}

func TestProblemServiceImpl_Get(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMocks    func(repo *ProblemRepositoryMock, c *ProblemCacheMock)
		expectedTitle string
		expectedError error
	}{
		{
			name: "Cache hit skips the database",
			setupMocks: func(repo *ProblemRepositoryMock, c *ProblemCacheMock) {
				c.On("Get", ctx, "1").Return(&domain.Problem{ProblemNum: "1", Title: "cached"}, nil).Once()
			},
			expectedTitle: "cached",
		},
		{
			name: "Cache miss reads through and normalizes",
			setupMocks: func(repo *ProblemRepositoryMock, c *ProblemCacheMock) {
				c.On("Get", ctx, "1").Return(nil, nil).Once()
				repo.On("GetProblem", ctx, "1").Return(&domain.Problem{
					ProblemNum:         "1",
					Title:              "db",
					Steps:              []domain.Step{{Step: 1}},
					AcceptanceCriteria: []string{"x", "x"},
				}, nil).Once()
				c.On("Set", ctx, mock.MatchedBy(func(p *domain.Problem) bool {
					return p.AcceptanceCriteria == nil && len(p.Steps[0].AcceptanceCriteria) == 1
				})).Return(nil).Once()
			},
			expectedTitle: "db",
		},
		{
			name: "Cache failures fall back to the database",
			setupMocks: func(repo *ProblemRepositoryMock, c *ProblemCacheMock) {
				c.On("Get", ctx, "1").Return(nil, errors.New("redis down")).Once()
				repo.On("GetProblem", ctx, "1").Return(&domain.Problem{ProblemNum: "1", Title: "db"}, nil).Once()
				c.On("Set", ctx, mock.Anything).Return(errors.New("redis down")).Once()
			},
			expectedTitle: "db",
		},
		{
			name: "Not found",
			setupMocks: func(repo *ProblemRepositoryMock, c *ProblemCacheMock) {
				c.On("Get", ctx, "1").Return(nil, nil).Once()
				repo.On("GetProblem", ctx, "1").Return(nil, apperrors.NotFound("problem")).Once()
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(ProblemRepositoryMock)
			c := new(ProblemCacheMock)
			tc.setupMocks(repo, c)

			s := newTestProblemService(repo, c)

			p, err := s.Get(ctx, "1")
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedTitle, p.Title)
			}

			repo.AssertExpectations(t)
			c.AssertExpectations(t)
		})
	}
}

func TestProblemServiceImpl_List(t *testing.T) {
	ctx := context.Background()

	repo := new(ProblemRepositoryMock)
	repo.On("ListProblems", ctx, "backend").Return([]domain.Problem{
		{ProblemNum: "1", Steps: []domain.Step{{Step: 1}}, AcceptanceCriteria: []string{"a"}},
	}, nil).Once()

	s := newTestProblemService(repo, new(ProblemCacheMock))

	problems, err := s.List(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, []string{"a"}, problems[0].Steps[0].AcceptanceCriteria)
	assert.Nil(t, problems[0].AcceptanceCriteria)
}

func TestProblemServiceImpl_Mutations(t *testing.T) {
	ctx := context.Background()
	title := "new"

	repo := new(ProblemRepositoryMock)
	c := new(ProblemCacheMock)

	repo.On("CreateProblem", ctx, mock.MatchedBy(func(p *domain.Problem) bool {
		return p.ProblemNum == "1" && p.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	repo.On("CreateProblem", ctx, mock.MatchedBy(func(p *domain.Problem) bool {
		return p.ProblemNum == "2"
	})).Return(&apperrors.ProblemAlreadyExistsError{ProblemNum: "2"}).Once()
	repo.On("UpdateProblem", ctx, "1", domain.ProblemPatch{Title: &title}).Return(nil).Once()
	repo.On("UpdateProblem", ctx, "9", mock.Anything).Return(apperrors.NotFound("problem")).Once()
	repo.On("DeleteProblem", ctx, "1").Return(nil).Once()
	c.On("Delete", ctx, "1").Return(nil).Once()
	c.On("Delete", ctx, "1").Return(errors.New("redis down")).Once()

	s := newTestProblemService(repo, c)

	require.NoError(t, s.Add(ctx, domain.Problem{ProblemNum: "1"}))
	assert.ErrorIs(t, s.Add(ctx, domain.Problem{ProblemNum: "2"}), apperrors.ErrAlreadyExists)

	require.NoError(t, s.Update(ctx, "1", domain.ProblemPatch{Title: &title}))
	assert.ErrorIs(t, s.Update(ctx, "9", domain.ProblemPatch{Title: &title}), apperrors.ErrNotFound)

	require.NoError(t, s.Delete(ctx, "1"), "eviction failures are only logged")

	repo.AssertExpectations(t)
	c.AssertExpectations(t)
}
