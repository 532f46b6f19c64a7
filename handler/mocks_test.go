package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folio/entity"
	"folio/repo"
)

type mockFlairRepo struct {
	mock.Mock
}

func (m *mockFlairRepo) Create(ctx context.Context, flair *entity.Flair) (uint64, error) {
	args := m.Called(ctx, flair)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockFlairRepo) GetByID(ctx context.Context, id uint64) (*entity.Flair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flair), args.Error(1)
}

func (m *mockFlairRepo) GetByName(ctx context.Context, name string) (*entity.Flair, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flair), args.Error(1)
}

func (m *mockFlairRepo) GetByKeyword(ctx context.Context, keyword string, p *repo.Pagination) ([]*entity.Flair, *entity.Pagination, error) {
	args := m.Called(ctx, keyword, p)
	var (
		flairs     []*entity.Flair
		pagination *entity.Pagination
	)
	if args.Get(0) != nil {
		flairs = args.Get(0).([]*entity.Flair)
	}
	if args.Get(1) != nil {
		pagination = args.Get(1).(*entity.Pagination)
	}
	return flairs, pagination, args.Error(2)
}

func (m *mockFlairRepo) Count(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockFlairRepo) AssertNames(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

type mockInterestRepo struct {
	mock.Mock
}

func (m *mockInterestRepo) Create(ctx context.Context, interest *entity.Interest) (uint64, error) {
	args := m.Called(ctx, interest)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockInterestRepo) GetByID(ctx context.Context, id uint64) (*entity.Interest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Interest), args.Error(1)
}

func (m *mockInterestRepo) GetByName(ctx context.Context, name string) (*entity.Interest, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Interest), args.Error(1)
}

func (m *mockInterestRepo) GetByKeyword(ctx context.Context, keyword string, p *repo.Pagination) ([]*entity.Interest, *entity.Pagination, error) {
	args := m.Called(ctx, keyword, p)
	var (
		interests  []*entity.Interest
		pagination *entity.Pagination
	)
	if args.Get(0) != nil {
		interests = args.Get(0).([]*entity.Interest)
	}
	if args.Get(1) != nil {
		pagination = args.Get(1).(*entity.Pagination)
	}
	return interests, pagination, args.Error(2)
}

func (m *mockInterestRepo) Count(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockInterestRepo) AssertNames(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.Profile) (uint64, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uint64) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *mockProfileRepo) GetByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *mockProfileRepo) GetByKeyword(ctx context.Context, keyword string, p *repo.Pagination) ([]*entity.Profile, *entity.Pagination, error) {
	args := m.Called(ctx, keyword, p)
	var (
		profiles   []*entity.Profile
		pagination *entity.Pagination
	)
	if args.Get(0) != nil {
		profiles = args.Get(0).([]*entity.Profile)
	}
	if args.Get(1) != nil {
		pagination = args.Get(1).(*entity.Pagination)
	}
	return profiles, pagination, args.Error(2)
}

func (m *mockProfileRepo) Count(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}
