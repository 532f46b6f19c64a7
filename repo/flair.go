package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"folio/entity"
	"folio/pkg/goutil"
)

var ErrFlairNotFound = errors.New("flair not found")

const flairCachePrefix = "flair_name"

type Flair struct {
	ID         *uint64
	Name       *string
	FlairDesc  *string
	CreateTime *uint64
	UpdateTime *uint64
}

func (m *Flair) TableName() string {
	return "flair_tab"
}

func (m *Flair) GetID() uint64 {
	if m != nil && m.ID != nil {
		return *m.ID
	}
	return 0
}

type FlairRepo interface {
	Create(ctx context.Context, flair *entity.Flair) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*entity.Flair, error)
	GetByName(ctx context.Context, name string) (*entity.Flair, error)
	GetByKeyword(ctx context.Context, keyword string, p *Pagination) ([]*entity.Flair, *entity.Pagination, error)
	Count(ctx context.Context) (uint64, error)
	AssertNames(ctx context.Context, names []string) error
}

type flairRepo struct {
	orm       *gorm.DB
	baseCache BaseCache
}

func NewFlairRepo(orm *gorm.DB, baseCache BaseCache) FlairRepo {
	return &flairRepo{
		orm:       orm,
		baseCache: baseCache,
	}
}

func (r *flairRepo) Create(ctx context.Context, flair *entity.Flair) (uint64, error) {
	flairModel := ToFlairModel(flair)

	if err := r.orm.Create(flairModel).Error; err != nil {
		return 0, err
	}

	flair.ID = flairModel.ID
	r.baseCache.Set(ctx, flairCachePrefix, flair.GetName(), flair)

	return flairModel.GetID(), nil
}

func (r *flairRepo) GetByID(_ context.Context, id uint64) (*entity.Flair, error) {
	flair := new(Flair)
	if err := r.orm.Where("id = ?", id).First(flair).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlairNotFound
		}
		return nil, err
	}
	return ToFlair(flair), nil
}

func (r *flairRepo) GetByName(ctx context.Context, name string) (*entity.Flair, error) {
	if v, ok := r.baseCache.Get(ctx, flairCachePrefix, name); ok {
		if flair, ok := v.(*entity.Flair); ok {
			return flair, nil
		}
	}

	flairModel := new(Flair)
	if err := r.orm.Where("name = ?", name).First(flairModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlairNotFound
		}
		return nil, err
	}

	flair := ToFlair(flairModel)
	r.baseCache.Set(ctx, flairCachePrefix, name, flair)

	return flair, nil
}

func (r *flairRepo) keywordQuery(keyword string) *gorm.DB {
	query := r.orm.Model(&Flair{})
	if keyword != "" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(keyword))
		query = query.Where("LOWER(name) LIKE ? OR LOWER(flair_desc) LIKE ?", like, like)
	}
	return query
}

func (r *flairRepo) GetByKeyword(_ context.Context, keyword string, p *Pagination) ([]*entity.Flair, *entity.Pagination, error) {
	var count int64
	if err := r.keywordQuery(keyword).Count(&count).Error; err != nil {
		return nil, nil, err
	}

	var (
		limit = p.GetLimit()
		page  = p.GetPage()
	)
	if page == 0 {
		page = 1
	}

	var (
		offset  = (page - 1) * limit
		mFlairs = make([]*Flair, 0)
	)
	query := r.keywordQuery(keyword).Offset(int(offset)).Order("id")
	if limit > 0 {
		query = query.Limit(int(limit + 1))
	}

	if err := query.Find(&mFlairs).Error; err != nil {
		return nil, nil, err
	}

	var hasNext bool
	if limit > 0 && len(mFlairs) > int(limit) {
		hasNext = true
		mFlairs = mFlairs[:limit]
	}

	flairs := make([]*entity.Flair, len(mFlairs))
	for i, mFlair := range mFlairs {
		flairs[i] = ToFlair(mFlair)
	}

	return flairs, &entity.Pagination{
		Page:    goutil.Uint32(page),
		Limit:   p.Limit, // may be nil
		HasNext: goutil.Bool(hasNext),
		Total:   goutil.Int64(count),
	}, nil
}

func (r *flairRepo) Count(_ context.Context) (uint64, error) {
	var count int64
	if err := r.orm.Model(&Flair{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return uint64(count), nil
}

// AssertNames checks each name in order and fails on the first one
// that does not resolve to an existing flair.
func (r *flairRepo) AssertNames(ctx context.Context, names []string) error {
	for _, name := range names {
		if _, err := r.GetByName(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func ToFlairModel(flair *entity.Flair) *Flair {
	return &Flair{
		ID:         flair.ID,
		Name:       flair.Name,
		FlairDesc:  flair.FlairDesc,
		CreateTime: flair.CreateTime,
		UpdateTime: flair.UpdateTime,
	}
}

func ToFlair(flair *Flair) *entity.Flair {
	return &entity.Flair{
		ID:         flair.ID,
		Name:       flair.Name,
		FlairDesc:  flair.FlairDesc,
		CreateTime: flair.CreateTime,
		UpdateTime: flair.UpdateTime,
	}
}
