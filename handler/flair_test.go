package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"folio/entity"
	"folio/pkg/errutil"
	"folio/pkg/goutil"
	"folio/repo"
)

func flairEntity(id uint64, name, desc string) *entity.Flair {
	return &entity.Flair{
		ID:        goutil.Uint64(id),
		Name:      goutil.String(name),
		FlairDesc: goutil.String(desc),
	}
}

func TestCreateFlair(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	r.On("GetByName", ctx, "AI").Return(nil, repo.ErrFlairNotFound)
	r.On("Create", ctx, mock.Anything).Return(uint64(1), nil)

	res := new(CreateFlairResponse)
	err := h.CreateFlair(ctx, &CreateFlairRequest{Name: goutil.String("AI")}, res)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Flair.GetID())
	assert.Equal(t, "AI", res.Flair.GetName())
	// absent description stored as empty string
	require.NotNil(t, res.Flair.FlairDesc)
	assert.Equal(t, "", res.Flair.GetFlairDesc())
}

func TestCreateFlair_PreviouslyDefined(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	r.On("GetByName", ctx, "AI").Return(flairEntity(1, "AI", ""), nil)

	err := h.CreateFlair(ctx, &CreateFlairRequest{Name: goutil.String("AI")}, new(CreateFlairResponse))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "previously defined")

	code, _ := errutil.ParseHttpError(err)
	assert.Equal(t, http.StatusConflict, code)

	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateFlair_InvalidName(t *testing.T) {
	var (
		ctx = context.Background()
		h   = NewFlairHandler(new(mockFlairRepo), nil)
	)

	for _, req := range []*CreateFlairRequest{
		{},
		{Name: goutil.String("")},
		{Name: goutil.String("a")},
	} {
		err := h.CreateFlair(ctx, req, new(CreateFlairResponse))
		require.Error(t, err)
		code, _ := errutil.ParseHttpError(err)
		assert.Equal(t, http.StatusBadRequest, code)
	}
}

func TestGetFlairName(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	r.On("GetByID", ctx, uint64(1)).Return(flairEntity(1, "AI", ""), nil)
	r.On("GetByID", ctx, uint64(2)).Return(nil, repo.ErrFlairNotFound)

	res := new(GetFlairNameResponse)
	require.NoError(t, h.GetFlairName(ctx, &GetFlairNameRequest{ID: goutil.Uint64(1)}, res))
	assert.Equal(t, "AI", *res.Name)

	err := h.GetFlairName(ctx, &GetFlairNameRequest{ID: goutil.Uint64(2)}, new(GetFlairNameResponse))
	require.Error(t, err)
	code, _ := errutil.ParseHttpError(err)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetFlairNames_OrderAndFailFast(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	r.On("GetByID", ctx, uint64(2)).Return(flairEntity(2, "Security", ""), nil)
	r.On("GetByID", ctx, uint64(1)).Return(flairEntity(1, "AI", ""), nil)

	res := new(GetFlairNamesResponse)
	require.NoError(t, h.GetFlairNames(ctx, &GetFlairNamesRequest{IDs: []uint64{2, 1}}, res))
	assert.Equal(t, []string{"Security", "AI"}, res.Names)

	r.On("GetByID", ctx, uint64(9)).Return(nil, repo.ErrFlairNotFound)
	err := h.GetFlairNames(ctx, &GetFlairNamesRequest{IDs: []uint64{2, 9, 1}}, new(GetFlairNamesResponse))
	require.Error(t, err)
	code, _ := errutil.ParseHttpError(err)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetFlairIDs_EmptyInput(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	res := new(GetFlairIDsResponse)
	require.NoError(t, h.GetFlairIDs(ctx, &GetFlairIDsRequest{}, res))
	assert.NotNil(t, res.IDs)
	assert.Empty(t, res.IDs)

	res = new(GetFlairIDsResponse)
	require.NoError(t, h.GetFlairIDs(ctx, &GetFlairIDsRequest{Names: []string{}}, res))
	assert.Empty(t, res.IDs)

	r.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestGetFlairIDs(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	r.On("GetByName", ctx, "AI").Return(flairEntity(1, "AI", ""), nil)
	r.On("GetByName", ctx, "Security").Return(flairEntity(2, "Security", ""), nil)

	res := new(GetFlairIDsResponse)
	require.NoError(t, h.GetFlairIDs(ctx, &GetFlairIDsRequest{Names: []string{"Security", "AI"}}, res))
	assert.Equal(t, []uint64{2, 1}, res.IDs)
}

func TestCheckFlairNames(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	r.On("AssertNames", ctx, []string{"AI"}).Return(nil)
	r.On("AssertNames", ctx, []string{"Unknown"}).Return(repo.ErrFlairNotFound)

	require.NoError(t, h.CheckFlairNames(ctx, &CheckFlairNamesRequest{Names: []string{"AI"}}, new(CheckFlairNamesResponse)))

	err := h.CheckFlairNames(ctx, &CheckFlairNamesRequest{Names: []string{"Unknown"}}, new(CheckFlairNamesResponse))
	require.Error(t, err)
	code, _ := errutil.ParseHttpError(err)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDumpFlair_RoundTrip(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	r.On("GetByID", ctx, uint64(1)).Return(flairEntity(1, "AI", "machine intelligence"), nil)

	dump := new(DumpFlairResponse)
	require.NoError(t, h.DumpFlair(ctx, &DumpFlairRequest{ID: goutil.Uint64(1)}, dump))
	assert.Equal(t, "AI", *dump.Name)
	assert.Equal(t, "machine intelligence", *dump.FlairDesc)

	// a dump redefined under a fresh name keeps its description
	r.On("GetByName", ctx, "AI v2").Return(nil, repo.ErrFlairNotFound)
	r.On("Create", ctx, mock.Anything).Return(uint64(2), nil)

	res := new(CreateFlairResponse)
	require.NoError(t, h.CreateFlair(ctx, &CreateFlairRequest{
		Name:      goutil.String("AI v2"),
		FlairDesc: dump.FlairDesc,
	}, res))
	assert.Equal(t, "machine intelligence", res.Flair.GetFlairDesc())
}

func TestCountFlairs(t *testing.T) {
	var (
		ctx = context.Background()
		r   = new(mockFlairRepo)
		h   = NewFlairHandler(r, nil)
	)

	r.On("Count", ctx).Return(uint64(3), nil)

	res := new(CountFlairsResponse)
	require.NoError(t, h.CountFlairs(ctx, new(CountFlairsRequest), res))
	assert.Equal(t, uint64(3), *res.Count)
}
