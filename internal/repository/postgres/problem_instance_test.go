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

func newTestInstance(problemNum, ownerID string) *domain.ProblemInstance {
	now := time.Now().UTC().Truncate(time.Millisecond)

	return &domain.ProblemInstance{
		ID:                   uuid.NewString(),
		ProblemNum:           problemNum,
		Owner:                domain.Owner{UserID: ownerID, Username: "alice", Email: "alice@example.com"},
		CollaborationMode:    domain.CollaborationSolo,
		Collaborators:        []domain.Collaborator{},
		Status:               domain.StatusInProgress,
		StartedAt:            now,
		LastUpdatedAt:        now,
		CollaborationDetails: map[string]any{"channel": "general"},
	}
}

func TestProblemInstanceRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewProblemInstanceRepository(testDB, logger)
	ctx := context.Background()

	inst := newTestInstance("7", "u1")
	require.NoError(t, repo.CreateInstance(ctx, inst))

	err := repo.CreateInstance(ctx, newTestInstance("7", "u1"))
	var existsErr *apperrors.InstanceAlreadyExistsError
	require.ErrorAs(t, err, &existsErr)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	require.NoError(t, repo.CreateInstance(ctx, newTestInstance("7", "u2")))

	fetched, err := repo.GetInstanceByID(ctx, testDB, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, "7", fetched.ProblemNum)
	assert.Equal(t, "alice", fetched.Owner.Username)
	assert.Equal(t, "general", fetched.CollaborationDetails["channel"])
	assert.Empty(t, fetched.Collaborators)
	assert.Nil(t, fetched.CompletedAt)

	byOwner, err := repo.GetInstanceByOwner(ctx, "7", "u1")
	require.NoError(t, err)
	assert.Equal(t, inst.ID, byOwner.ID)

	_, err = repo.GetInstanceByOwner(ctx, "8", "u1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.GetInstanceByID(ctx, testDB, "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.GetInstanceByID(ctx, testDB, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProblemInstanceRepository_AddCollaborator(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewProblemInstanceRepository(testDB, logger)
	ctx := context.Background()

	inst := newTestInstance("1", "owner")
	require.NoError(t, repo.CreateInstance(ctx, inst))

	invitedAt := time.Now().UTC()
	for _, id := range []string{"c1", "c2"} {
		tx, err := testDB.Beginx()
		require.NoError(t, err)
		require.NoError(t, repo.AddCollaborator(ctx, tx, inst.ID, domain.Collaborator{
			UserID: id, Username: id, Email: id + "@example.com", InvitedAt: invitedAt, Status: domain.CollaboratorInvited,
		}))
		require.NoError(t, tx.Commit())
	}

	tx, err := testDB.Beginx()
	require.NoError(t, err)
	err = repo.AddCollaborator(ctx, tx, inst.ID, domain.Collaborator{UserID: "c1", InvitedAt: invitedAt, Status: domain.CollaboratorInvited})
	var dupErr *apperrors.CollaboratorAlreadyExistsError
	assert.ErrorAs(t, err, &dupErr)
	require.NoError(t, tx.Rollback())

	fetched, err := repo.GetInstanceByID(ctx, testDB, inst.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Collaborators, 2)
	assert.Equal(t, "c1", fetched.Collaborators[0].UserID)
	assert.Equal(t, "c2", fetched.Collaborators[1].UserID)
	assert.Equal(t, domain.CollaboratorInvited, fetched.Collaborators[0].Status)
}

func TestProblemInstanceRepository_UpdateInstance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewProblemInstanceRepository(testDB, logger)
	ctx := context.Background()

	inst := newTestInstance("3", "u1")
	require.NoError(t, repo.CreateInstance(ctx, inst))

	completed := domain.StatusCompleted
	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.UpdateInstance(ctx, testDB, inst.ID, domain.ProblemInstanceChanges{},
		domain.InstanceTransition(&completed, nil, first), first))

	fetched, err := repo.GetInstanceByID(ctx, testDB, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, fetched.Status)
	require.NotNil(t, fetched.CompletedAt)
	assert.True(t, first.Equal(*fetched.CompletedAt))

	second := first.Add(time.Hour)
	pair := domain.CollaborationPair
	require.NoError(t, repo.UpdateInstance(ctx, testDB, inst.ID, domain.ProblemInstanceChanges{CollaborationMode: &pair},
		domain.InstanceTransition(&completed, nil, second), second))

	fetched, err = repo.GetInstanceByID(ctx, testDB, inst.ID)
	require.NoError(t, err)
	assert.True(t, first.Equal(*fetched.CompletedAt), "completedAt is not overwritten")
	assert.True(t, second.Equal(fetched.LastUpdatedAt))
	assert.Equal(t, domain.CollaborationPair, fetched.CollaborationMode)

	err = repo.UpdateInstance(ctx, testDB, uuid.NewString(), domain.ProblemInstanceChanges{}, domain.Transition{}, second)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
