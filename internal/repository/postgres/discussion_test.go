//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscussionRepository_Flow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewDiscussionRepository(testDB, logger)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)

	older := &domain.Discussion{ID: uuid.NewString(), ProblemID: "p1", Content: "first", UserID: "u1", CreatedAt: base}
	newer := &domain.Discussion{ID: uuid.NewString(), ProblemID: "p1", Content: "second", UserID: "u2", CreatedAt: base.Add(time.Minute)}
	other := &domain.Discussion{ID: uuid.NewString(), ProblemID: "p2", Content: "elsewhere", UserID: "u1", CreatedAt: base}
	for _, d := range []*domain.Discussion{older, newer, other} {
		require.NoError(t, repo.CreateDiscussion(ctx, d))
	}

	reply := &domain.Discussion{ID: uuid.NewString(), ProblemID: "p1", Content: "re", UserID: "u3", ParentID: &older.ID, CreatedAt: base.Add(2 * time.Minute)}
	require.NoError(t, repo.CreateDiscussion(ctx, reply))

	top, err := repo.ListTopLevel(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, newer.ID, top[0].ID)
	assert.Equal(t, older.ID, top[1].ID)

	replies, err := repo.ListReplies(ctx, []string{older.ID, newer.ID})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.NotNil(t, replies[0].ParentID)
	assert.Equal(t, older.ID, *replies[0].ParentID)

	require.NoError(t, repo.IncrementVotes(ctx, older.ID))
	require.NoError(t, repo.IncrementVotes(ctx, older.ID))

	fetched, err := repo.GetDiscussion(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.Votes)
	assert.Nil(t, fetched.ParentID)

	assert.ErrorIs(t, repo.IncrementVotes(ctx, uuid.NewString()), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.IncrementVotes(ctx, "garbage"), apperrors.ErrNotFound)

	empty, err := repo.ListTopLevel(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDiscussionRepository_ConcurrentVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewDiscussionRepository(testDB, logger)
	ctx := context.Background()

	d := &domain.Discussion{ID: uuid.NewString(), ProblemID: "p1", Content: "vote me", UserID: "u1", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.CreateDiscussion(ctx, d))

	const voters = 25

	var wg sync.WaitGroup
	errs := make(chan error, voters)
	for range voters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrementVotes(ctx, d.ID)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	fetched, err := repo.GetDiscussion(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, voters, fetched.Votes)
}
