package holders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mothlight/delve/internal/testutils"
)

func TestInMemoryRepository_RoundTrip(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "hero-1", testutils.CreateTestEffects(2)))

	got, err := repo.Get(ctx, "hero-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := repo.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInMemoryRepository_StoredCopiesAreIsolated(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	original := testutils.CreateTestEffects(1)
	require.NoError(t, repo.Set(ctx, "hero-1", original))

	// mutate the caller's instance after storing
	original[0].DurationRemaining = 99

	got, err := repo.Get(ctx, "hero-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got[0].DurationRemaining, "store must hold its own copy")

	// mutate the retrieved instance; the store stays clean
	got[0].CurrentStacks = 42
	again, err := repo.Get(ctx, "hero-1")
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].CurrentStacks)
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "hero-1", testutils.CreateTestEffects(1)))
	require.NoError(t, repo.Delete(ctx, "hero-1"))

	got, err := repo.Get(ctx, "hero-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryRepository_GetAll(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "hero-1", testutils.CreateTestEffects(2)))
	require.NoError(t, repo.Set(ctx, "wolf-1", testutils.CreateTestEffects(1)))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Len(t, all["hero-1"], 2)
	assert.Len(t, all["wolf-1"], 1)
}
