package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/entity"
	"folio/pkg/goutil"
)

func newTestInterestRepo(t *testing.T) InterestRepo {
	t.Helper()
	return NewInterestRepo(newTestOrm(t), NewBaseCache(context.Background()))
}

func newInterest(name, desc string) *entity.Interest {
	return &entity.Interest{
		Name:         goutil.String(name),
		InterestDesc: goutil.String(desc),
		CreateTime:   goutil.Uint64(1700000000),
		UpdateTime:   goutil.Uint64(1700000000),
	}
}

func TestInterestRepo_CreateAndGet(t *testing.T) {
	var (
		ctx = context.Background()
		r   = newTestInterestRepo(t)
	)

	id, err := r.Create(ctx, newInterest("Databases", "storage systems"))
	require.NoError(t, err)
	require.NotZero(t, id)

	byID, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Databases", byID.GetName())
	assert.Equal(t, "storage systems", byID.GetInterestDesc())

	byName, err := r.GetByName(ctx, "Databases")
	require.NoError(t, err)
	assert.Equal(t, id, byName.GetID())
}

func TestInterestRepo_AssertNames(t *testing.T) {
	var (
		ctx = context.Background()
		r   = newTestInterestRepo(t)
	)

	_, err := r.Create(ctx, newInterest("AI", ""))
	require.NoError(t, err)

	assert.NoError(t, r.AssertNames(ctx, []string{"AI"}))
	assert.ErrorIs(t, r.AssertNames(ctx, []string{"Unknown"}), ErrInterestNotFound)
}
