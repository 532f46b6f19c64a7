package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"folio/entity"
	"folio/pkg/goutil"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	ID         *uint64
	Username   *string
	FirstName  *string
	LastName   *string
	Bio        *string
	Title      *string
	Picture    *string
	Github     *string
	Facebook   *string
	Instagram  *string
	Interests  *string
	Flairs     *string
	CreateTime *uint64
	UpdateTime *uint64
}

func (m *Profile) TableName() string {
	return "profile_tab"
}

func (m *Profile) GetID() uint64 {
	if m != nil && m.ID != nil {
		return *m.ID
	}
	return 0
}

func (m *Profile) GetInterests() string {
	if m != nil && m.Interests != nil {
		return *m.Interests
	}
	return ""
}

func (m *Profile) GetFlairs() string {
	if m != nil && m.Flairs != nil {
		return *m.Flairs
	}
	return ""
}

type ProfileRepo interface {
	Create(ctx context.Context, profile *entity.Profile) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*entity.Profile, error)
	GetByUsername(ctx context.Context, username string) (*entity.Profile, error)
	GetByKeyword(ctx context.Context, keyword string, p *Pagination) ([]*entity.Profile, *entity.Pagination, error)
	Count(ctx context.Context) (uint64, error)
}

type profileRepo struct {
	orm *gorm.DB
}

func NewProfileRepo(orm *gorm.DB) ProfileRepo {
	return &profileRepo{orm: orm}
}

func (r *profileRepo) Create(_ context.Context, profile *entity.Profile) (uint64, error) {
	profileModel, err := ToProfileModel(profile)
	if err != nil {
		return 0, err
	}

	if err := r.orm.Create(profileModel).Error; err != nil {
		return 0, err
	}

	profile.ID = profileModel.ID

	return profileModel.GetID(), nil
}

func (r *profileRepo) GetByID(_ context.Context, id uint64) (*entity.Profile, error) {
	profile := new(Profile)
	if err := r.orm.Where("id = ?", id).First(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return ToProfile(profile)
}

func (r *profileRepo) GetByUsername(_ context.Context, username string) (*entity.Profile, error) {
	profile := new(Profile)
	if err := r.orm.Where("username = ?", username).First(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return ToProfile(profile)
}

func (r *profileRepo) keywordQuery(keyword string) *gorm.DB {
	query := r.orm.Model(&Profile{})
	if keyword != "" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(keyword))
		query = query.Where("LOWER(username) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}
	return query
}

func (r *profileRepo) GetByKeyword(_ context.Context, keyword string, p *Pagination) ([]*entity.Profile, *entity.Pagination, error) {
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
		offset    = (page - 1) * limit
		mProfiles = make([]*Profile, 0)
	)
	query := r.keywordQuery(keyword).Offset(int(offset)).Order("id")
	if limit > 0 {
		query = query.Limit(int(limit + 1))
	}

	if err := query.Find(&mProfiles).Error; err != nil {
		return nil, nil, err
	}

	var hasNext bool
	if limit > 0 && len(mProfiles) > int(limit) {
		hasNext = true
		mProfiles = mProfiles[:limit]
	}

	profiles := make([]*entity.Profile, len(mProfiles))
	for i, mProfile := range mProfiles {
		profile, err := ToProfile(mProfile)
		if err != nil {
			return nil, nil, err
		}
		profiles[i] = profile
	}

	return profiles, &entity.Pagination{
		Page:    goutil.Uint32(page),
		Limit:   p.Limit, // may be nil
		HasNext: goutil.Bool(hasNext),
		Total:   goutil.Int64(count),
	}, nil
}

func (r *profileRepo) Count(_ context.Context) (uint64, error) {
	var count int64
	if err := r.orm.Model(&Profile{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return uint64(count), nil
}

func ToProfileModel(profile *entity.Profile) (*Profile, error) {
	interests, err := json.Marshal(profile.GetInterests())
	if err != nil {
		return nil, err
	}

	flairs, err := json.Marshal(profile.GetFlairs())
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:         profile.ID,
		Username:   profile.Username,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Bio:        profile.Bio,
		Title:      profile.Title,
		Picture:    profile.Picture,
		Github:     profile.Github,
		Facebook:   profile.Facebook,
		Instagram:  profile.Instagram,
		Interests:  goutil.String(string(interests)),
		Flairs:     goutil.String(string(flairs)),
		CreateTime: profile.CreateTime,
		UpdateTime: profile.UpdateTime,
	}, nil
}

func ToProfile(profile *Profile) (*entity.Profile, error) {
	interests := make([]string, 0)
	if s := profile.GetInterests(); s != "" {
		if err := json.Unmarshal([]byte(s), &interests); err != nil {
			return nil, err
		}
	}

	flairs := make([]string, 0)
	if s := profile.GetFlairs(); s != "" {
		if err := json.Unmarshal([]byte(s), &flairs); err != nil {
			return nil, err
		}
	}

	return &entity.Profile{
		ID:         profile.ID,
		Username:   profile.Username,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Bio:        profile.Bio,
		Title:      profile.Title,
		Picture:    profile.Picture,
		Github:     profile.Github,
		Facebook:   profile.Facebook,
		Instagram:  profile.Instagram,
		Interests:  interests,
		Flairs:     flairs,
		CreateTime: profile.CreateTime,
		UpdateTime: profile.UpdateTime,
	}, nil
}
