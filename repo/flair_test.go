package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/entity"
	"folio/pkg/goutil"
)

func newTestFlairRepo(t *testing.T) FlairRepo {
	t.Helper()
	return NewFlairRepo(newTestOrm(t), NewBaseCache(context.Background()))
}

func newFlair(name, desc string) *entity.Flair {
	return &entity.Flair{
		Name:       goutil.String(name),
		FlairDesc:  goutil.String(desc),
		CreateTime: goutil.Uint64(1700000000),
		UpdateTime: goutil.Uint64(1700000000),
	}
}

func TestFlairRepo_CreateAndGet(t *testing.T) {
	var (
		ctx = context.Background()
		r   = newTestFlairRepo(t)
	)

	id, err := r.Create(ctx, newFlair("AI", "machine intelligence"))
	require.NoError(t, err)
	require.NotZero(t, id)

	byID, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "AI", byID.GetName())
	assert.Equal(t, "machine intelligence", byID.GetFlairDesc())

	byName, err := r.GetByName(ctx, "AI")
	require.NoError(t, err)
	assert.Equal(t, id, byName.GetID())
}

func TestFlairRepo_GetNotFound(t *testing.T) {
	var (
		ctx = context.Background()
		r   = newTestFlairRepo(t)
	)

	_, err := r.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrFlairNotFound)

	_, err = r.GetByName(ctx, "Unknown")
	assert.ErrorIs(t, err, ErrFlairNotFound)
}

func TestFlairRepo_GetByNameCached(t *testing.T) {
	var (
		ctx = context.Background()
		r   = newTestFlairRepo(t)
	)

	id, err := r.Create(ctx, newFlair("Robotics", ""))
	require.NoError(t, err)

	// first read warms the cache, second read must agree
	first, err := r.GetByName(ctx, "Robotics")
	require.NoError(t, err)
	second, err := r.GetByName(ctx, "Robotics")
	require.NoError(t, err)
	assert.Equal(t, first.GetID(), second.GetID())
	assert.Equal(t, id, second.GetID())
}

func TestFlairRepo_AssertNames(t *testing.T) {
	var (
		ctx = context.Background()
		r   = newTestFlairRepo(t)
	)

	_, err := r.Create(ctx, newFlair("AI", ""))
	require.NoError(t, err)
	_, err = r.Create(ctx, newFlair("Security", ""))
	require.NoError(t, err)

	assert.NoError(t, r.AssertNames(ctx, nil))
	assert.NoError(t, r.AssertNames(ctx, []string{}))
	assert.NoError(t, r.AssertNames(ctx, []string{"AI", "Security"}))
	assert.ErrorIs(t, r.AssertNames(ctx, []string{"AI", "Unknown"}), ErrFlairNotFound)
}

func TestFlairRepo_GetByKeyword(t *testing.T) {
	var (
		ctx = context.Background()
		r   = newTestFlairRepo(t)
	)

	for _, name := range []string{"AI", "Applied AI", "Security"} {
		_, err := r.Create(ctx, newFlair(name, ""))
		require.NoError(t, err)
	}

	flairs, pagination, err := r.GetByKeyword(ctx, "ai", new(Pagination))
	require.NoError(t, err)
	assert.Len(t, flairs, 2)
	assert.Equal(t, int64(2), pagination.GetTotal())
	assert.False(t, pagination.GetHasNext())

	flairs, pagination, err = r.GetByKeyword(ctx, "", &Pagination{Limit: goutil.Uint32(2)})
	require.NoError(t, err)
	assert.Len(t, flairs, 2)
	assert.Equal(t, int64(3), pagination.GetTotal())
	assert.True(t, pagination.GetHasNext())
}

func TestFlairRepo_Count(t *testing.T) {
	var (
		ctx = context.Background()
		r   = newTestFlairRepo(t)
	)

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = r.Create(ctx, newFlair("AI", ""))
	require.NoError(t, err)

	count, err = r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}
