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

var ErrInterestNotFound = errors.New("interest not found")

const interestCachePrefix = "interest_name"

type Interest struct {
	ID           *uint64
	Name         *string
	InterestDesc *string
	CreateTime   *uint64
	UpdateTime   *uint64
}

func (m *Interest) TableName() string {
	return "interest_tab"
}

func (m *Interest) GetID() uint64 {
	if m != nil && m.ID != nil {
		return *m.ID
	}
	return 0
}

type InterestRepo interface {
	Create(ctx context.Context, interest *entity.Interest) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*entity.Interest, error)
	GetByName(ctx context.Context, name string) (*entity.Interest, error)
	GetByKeyword(ctx context.Context, keyword string, p *Pagination) ([]*entity.Interest, *entity.Pagination, error)
	Count(ctx context.Context) (uint64, error)
	AssertNames(ctx context.Context, names []string) error
}

type interestRepo struct {
	orm       *gorm.DB
	baseCache BaseCache
}

func NewInterestRepo(orm *gorm.DB, baseCache BaseCache) InterestRepo {
	return &interestRepo{
		orm:       orm,
		baseCache: baseCache,
	}
}

func (r *interestRepo) Create(ctx context.Context, interest *entity.Interest) (uint64, error) {
	interestModel := ToInterestModel(interest)

	if err := r.orm.Create(interestModel).Error; err != nil {
		return 0, err
	}

	interest.ID = interestModel.ID
	r.baseCache.Set(ctx, interestCachePrefix, interest.GetName(), interest)

	return interestModel.GetID(), nil
}

func (r *interestRepo) GetByID(_ context.Context, id uint64) (*entity.Interest, error) {
	interest := new(Interest)
	if err := r.orm.Where("id = ?", id).First(interest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}
	return ToInterest(interest), nil
}

func (r *interestRepo) GetByName(ctx context.Context, name string) (*entity.Interest, error) {
	if v, ok := r.baseCache.Get(ctx, interestCachePrefix, name); ok {
		if interest, ok := v.(*entity.Interest); ok {
			return interest, nil
		}
	}

	interestModel := new(Interest)
	if err := r.orm.Where("name = ?", name).First(interestModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}

	interest := ToInterest(interestModel)
	r.baseCache.Set(ctx, interestCachePrefix, name, interest)

	return interest, nil
}

func (r *interestRepo) keywordQuery(keyword string) *gorm.DB {
	query := r.orm.Model(&Interest{})
	if keyword != "" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(keyword))
		query = query.Where("LOWER(name) LIKE ? OR LOWER(interest_desc) LIKE ?", like, like)
	}
	return query
}

func (r *interestRepo) GetByKeyword(_ context.Context, keyword string, p *Pagination) ([]*entity.Interest, *entity.Pagination, error) {
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
		offset     = (page - 1) * limit
		mInterests = make([]*Interest, 0)
	)
	query := r.keywordQuery(keyword).Offset(int(offset)).Order("id")
	if limit > 0 {
		query = query.Limit(int(limit + 1))
	}

	if err := query.Find(&mInterests).Error; err != nil {
		return nil, nil, err
	}

	var hasNext bool
	if limit > 0 && len(mInterests) > int(limit) {
		hasNext = true
		mInterests = mInterests[:limit]
	}

	interests := make([]*entity.Interest, len(mInterests))
	for i, mInterest := range mInterests {
		interests[i] = ToInterest(mInterest)
	}

	return interests, &entity.Pagination{
		Page:    goutil.Uint32(page),
		Limit:   p.Limit, // may be nil
		HasNext: goutil.Bool(hasNext),
		Total:   goutil.Int64(count),
	}, nil
}

func (r *interestRepo) Count(_ context.Context) (uint64, error) {
	var count int64
	if err := r.orm.Model(&Interest{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return uint64(count), nil
}

// AssertNames checks each name in order and fails on the first one
// that does not resolve to an existing interest.
func (r *interestRepo) AssertNames(ctx context.Context, names []string) error {
	for _, name := range names {
		if _, err := r.GetByName(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func ToInterestModel(interest *entity.Interest) *Interest {
	return &Interest{
		ID:           interest.ID,
		Name:         interest.Name,
		InterestDesc: interest.InterestDesc,
		CreateTime:   interest.CreateTime,
		UpdateTime:   interest.UpdateTime,
	}
}

func ToInterest(interest *Interest) *entity.Interest {
	return &entity.Interest{
		ID:           interest.ID,
		Name:         interest.Name,
		InterestDesc: interest.InterestDesc,
		CreateTime:   interest.CreateTime,
		UpdateTime:   interest.UpdateTime,
	}
}
