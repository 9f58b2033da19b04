//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewProblemRepository(testDB, logger)
	ctx := context.Background()

	p := &domain.Problem{
		ProblemNum: "1",
		Title:      "URL shortener",
		Category:   "backend",
		Tags:       []string{"go", "http"},
		Steps: []domain.Step{
			{Step: 1, Title: "Setup", AcceptanceCriteria: []string{"Repo exists"}},
		},
		AcceptanceCriteria: []string{"legacy"},
		CreatedAt:          time.Now().UTC(),
	}
	require.NoError(t, repo.CreateProblem(ctx, p))
	require.NoError(t, repo.CreateProblem(ctx, &domain.Problem{ProblemNum: "2", Category: "frontend", CreatedAt: time.Now().UTC()}))

	err := repo.CreateProblem(ctx, &domain.Problem{ProblemNum: "1", CreatedAt: time.Now().UTC()})
	var existsErr *apperrors.ProblemAlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)

	fetched, err := repo.GetProblem(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "URL shortener", fetched.Title)
	assert.Equal(t, []string{"go", "http"}, fetched.Tags)
	require.Len(t, fetched.Steps, 1)
	assert.Equal(t, []string{"Repo exists"}, fetched.Steps[0].AcceptanceCriteria)
	assert.Equal(t, []string{"legacy"}, fetched.AcceptanceCriteria)

	backend, err := repo.ListProblems(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, backend, 1)

	all, err := repo.ListProblems(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	title := "Shortener v2"
	require.NoError(t, repo.UpdateProblem(ctx, "1", domain.ProblemPatch{Title: &title}))

	fetched, err = repo.GetProblem(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Shortener v2", fetched.Title)
	assert.Equal(t, "backend", fetched.Category)

	assert.ErrorIs(t, repo.UpdateProblem(ctx, "404", domain.ProblemPatch{Title: &title}), apperrors.ErrNotFound)

	require.NoError(t, repo.DeleteProblem(ctx, "1"))
	_, err = repo.GetProblem(ctx, "1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteProblem(ctx, "1"), apperrors.ErrNotFound)
}

func TestContactRepository_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewContactRepository(testDB, logger)
	ctx := context.Background()

	msg := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      "Bob",
		Email:     "bob@example.com",
		Subject:   "Hi",
		Message:   "Hello there",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateContactMessage(ctx, msg))

	var count int
	require.NoError(t, testDB.GetContext(ctx, &count, "SELECT COUNT(*) FROM contact_messages"))
	assert.Equal(t, 1, count)
}
