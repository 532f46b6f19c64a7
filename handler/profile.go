package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"folio/entity"
	"folio/pkg/errutil"
	"folio/pkg/goutil"
	"folio/pkg/mq"
	"folio/pkg/validator"
	"folio/repo"
)

type ProfileHandler interface {
	CreateProfile(ctx context.Context, req *CreateProfileRequest, res *CreateProfileResponse) error
	GetProfiles(ctx context.Context, req *GetProfilesRequest, res *GetProfilesResponse) error
	CountProfiles(ctx context.Context, req *CountProfilesRequest, res *CountProfilesResponse) error
	DumpProfile(ctx context.Context, req *DumpProfileRequest, res *DumpProfileResponse) error
}

type profileHandler struct {
	profileRepo  repo.ProfileRepo
	interestRepo repo.InterestRepo
	flairRepo    repo.FlairRepo
	producer     *mq.Producer
}

func NewProfileHandler(profileRepo repo.ProfileRepo, interestRepo repo.InterestRepo, flairRepo repo.FlairRepo, producer *mq.Producer) ProfileHandler {
	return &profileHandler{
		profileRepo:  profileRepo,
		interestRepo: interestRepo,
		flairRepo:    flairRepo,
		producer:     producer,
	}
}

type CreateProfileRequest struct {
	Username  *string  `json:"username,omitempty"`
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Title     *string  `json:"title,omitempty"`
	Picture   *string  `json:"picture,omitempty"`
	Github    *string  `json:"github,omitempty"`
	Facebook  *string  `json:"facebook,omitempty"`
	Instagram *string  `json:"instagram,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Flairs    []string `json:"flairs,omitempty"`
}

func (req *CreateProfileRequest) GetUsername() string {
	if req != nil && req.Username != nil {
		return *req.Username
	}
	return ""
}

func (req *CreateProfileRequest) GetInterests() []string {
	if req != nil && req.Interests != nil {
		return req.Interests
	}
	return nil
}

func (req *CreateProfileRequest) GetFlairs() []string {
	if req != nil && req.Flairs != nil {
		return req.Flairs
	}
	return nil
}

// ToProfile applies defaults: absent strings become empty, absent name
// lists become empty sequences.
func (req *CreateProfileRequest) ToProfile() *entity.Profile {
	now := uint64(time.Now().Unix())

	orEmpty := func(s *string) *string {
		if s == nil {
			return goutil.String("")
		}
		return s
	}

	interests := req.Interests
	if interests == nil {
		interests = make([]string, 0)
	}

	flairs := req.Flairs
	if flairs == nil {
		flairs = make([]string, 0)
	}

	return &entity.Profile{
		Username:   orEmpty(req.Username),
		FirstName:  orEmpty(req.FirstName),
		LastName:   orEmpty(req.LastName),
		Bio:        orEmpty(req.Bio),
		Title:      orEmpty(req.Title),
		Picture:    orEmpty(req.Picture),
		Github:     orEmpty(req.Github),
		Facebook:   orEmpty(req.Facebook),
		Instagram:  orEmpty(req.Instagram),
		Interests:  interests,
		Flairs:     flairs,
		CreateTime: goutil.Uint64(now),
		UpdateTime: goutil.Uint64(now),
	}
}

type CreateProfileResponse struct {
	Profile *entity.Profile `json:"profile,omitempty"`
}

var CreateProfileValidator = validator.MustForm(map[string]validator.Validator{
	"username":   UsernameValidator(true),
	"first_name": OptionalTextValidator(60),
	"last_name":  OptionalTextValidator(60),
	"bio":        OptionalTextValidator(1000),
	"title":      OptionalTextValidator(120),
	"picture":    OptionalTextValidator(256),
	"github":     OptionalTextValidator(256),
	"facebook":   OptionalTextValidator(256),
	"instagram":  OptionalTextValidator(256),
	"interests":  NameListValidator(),
	"flairs":     NameListValidator(),
})

func (h *profileHandler) CreateProfile(ctx context.Context, req *CreateProfileRequest, res *CreateProfileResponse) error {
	if err := CreateProfileValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	// username uniqueness check, not atomic with the insert below
	_, err := h.profileRepo.GetByUsername(ctx, req.GetUsername())
	if err == nil {
		return errutil.ConflictError(errors.New("username previously registered"))
	}

	if !errors.Is(err, repo.ErrProfileNotFound) {
		log.Ctx(ctx).Error().Msgf("get profile failed: %v", err)
		return err
	}

	if err := h.interestRepo.AssertNames(ctx, req.GetInterests()); err != nil {
		if errors.Is(err, repo.ErrInterestNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("check interests failed: %v", err)
		return err
	}

	if name, ok := goutil.FirstDuplicate(req.GetInterests()); ok {
		return errutil.ValidationError(fmt.Errorf("duplicate interest %s", name))
	}

	if err := h.flairRepo.AssertNames(ctx, req.GetFlairs()); err != nil {
		if errors.Is(err, repo.ErrFlairNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("check flairs failed: %v", err)
		return err
	}

	if name, ok := goutil.FirstDuplicate(req.GetFlairs()); ok {
		return errutil.ValidationError(fmt.Errorf("duplicate flair %s", name))
	}

	profile := req.ToProfile()

	id, err := h.profileRepo.Create(ctx, profile)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("create profile failed: %v", err)
		return err
	}

	profile.ID = goutil.Uint64(id)
	res.Profile = profile

	h.sendCreatedEvent(ctx, profile)

	return nil
}

func (h *profileHandler) sendCreatedEvent(ctx context.Context, profile *entity.Profile) {
	if h.producer == nil {
		return
	}

	err := h.producer.SendMessage(&mq.Message{
		Payload: mq.PayloadProfileCreated,
		Key:     profile.GetUsername(),
		Body: &mq.ProfileCreated{
			ProfileID: profile.ID,
		},
	})
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("send profile created event failed: %v", err)
	}
}

type GetProfilesRequest struct {
	Keyword    *string          `json:"keyword,omitempty" schema:"keyword"`
	Pagination *repo.Pagination `json:"pagination,omitempty" schema:"pagination"`
}

func (r *GetProfilesRequest) GetKeyword() string {
	if r != nil && r.Keyword != nil {
		return *r.Keyword
	}
	return ""
}

type GetProfilesResponse struct {
	Profiles   []*entity.Profile  `json:"profiles"`
	Pagination *entity.Pagination `json:"pagination,omitempty"`
}

var GetProfilesValidator = validator.MustForm(map[string]validator.Validator{
	"keyword": &validator.String{
		Optional: true,
	},
	"pagination": PaginationValidator(),
})

func (h *profileHandler) GetProfiles(ctx context.Context, req *GetProfilesRequest, res *GetProfilesResponse) error {
	if err := GetProfilesValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	req.Pagination = defaultPagination(req.Pagination)

	profiles, pagination, err := h.profileRepo.GetByKeyword(ctx, req.GetKeyword(), req.Pagination)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("get profiles failed: %v", err)
		return err
	}

	res.Profiles = profiles
	res.Pagination = pagination

	return nil
}

type CountProfilesRequest struct{}

type CountProfilesResponse struct {
	Count *uint64 `json:"count,omitempty"`
}

func (h *profileHandler) CountProfiles(ctx context.Context, _ *CountProfilesRequest, res *CountProfilesResponse) error {
	count, err := h.profileRepo.Count(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("count profiles failed: %v", err)
		return err
	}

	res.Count = goutil.Uint64(count)

	return nil
}

type DumpProfileRequest struct {
	ID *uint64 `json:"id,omitempty" schema:"id"`
}

func (r *DumpProfileRequest) GetID() uint64 {
	if r != nil && r.ID != nil {
		return *r.ID
	}
	return 0
}

// DumpProfileResponse matches the shape CreateProfileRequest accepts,
// so a dump can be fed back into create.
type DumpProfileResponse struct {
	Username  *string  `json:"username,omitempty"`
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Title     *string  `json:"title,omitempty"`
	Picture   *string  `json:"picture,omitempty"`
	Github    *string  `json:"github,omitempty"`
	Facebook  *string  `json:"facebook,omitempty"`
	Instagram *string  `json:"instagram,omitempty"`
	Interests []string `json:"interests"`
	Flairs    []string `json:"flairs"`
}

var DumpProfileValidator = validator.MustForm(map[string]validator.Validator{
	"id": &validator.UInt64{},
})

func (h *profileHandler) DumpProfile(ctx context.Context, req *DumpProfileRequest, res *DumpProfileResponse) error {
	if err := DumpProfileValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	profile, err := h.profileRepo.GetByID(ctx, req.GetID())
	if err != nil {
		if errors.Is(err, repo.ErrProfileNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("get profile failed: %v", err)
		return err
	}

	res.Username = profile.Username
	res.FirstName = profile.FirstName
	res.LastName = profile.LastName
	res.Bio = profile.Bio
	res.Title = profile.Title
	res.Picture = profile.Picture
	res.Github = profile.Github
	res.Facebook = profile.Facebook
	res.Instagram = profile.Instagram
	res.Interests = profile.GetInterests()
	res.Flairs = profile.GetFlairs()

	return nil
}
