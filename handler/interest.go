package handler

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"folio/entity"
	"folio/pkg/errutil"
	"folio/pkg/goutil"
	"folio/pkg/mq"
	"folio/pkg/validator"
	"folio/repo"
)

type InterestHandler interface {
	CreateInterest(ctx context.Context, req *CreateInterestRequest, res *CreateInterestResponse) error
	GetInterests(ctx context.Context, req *GetInterestsRequest, res *GetInterestsResponse) error
	CountInterests(ctx context.Context, req *CountInterestsRequest, res *CountInterestsResponse) error
	GetInterestName(ctx context.Context, req *GetInterestNameRequest, res *GetInterestNameResponse) error
	GetInterestNames(ctx context.Context, req *GetInterestNamesRequest, res *GetInterestNamesResponse) error
	CheckInterestNames(ctx context.Context, req *CheckInterestNamesRequest, res *CheckInterestNamesResponse) error
	GetInterestID(ctx context.Context, req *GetInterestIDRequest, res *GetInterestIDResponse) error
	GetInterestIDs(ctx context.Context, req *GetInterestIDsRequest, res *GetInterestIDsResponse) error
	DumpInterest(ctx context.Context, req *DumpInterestRequest, res *DumpInterestResponse) error
}

type interestHandler struct {
	interestRepo repo.InterestRepo
	producer     *mq.Producer
}

func NewInterestHandler(interestRepo repo.InterestRepo, producer *mq.Producer) InterestHandler {
	return &interestHandler{
		interestRepo: interestRepo,
		producer:     producer,
	}
}

type CreateInterestRequest struct {
	Name         *string `json:"name,omitempty"`
	InterestDesc *string `json:"interest_desc,omitempty"`
}

func (req *CreateInterestRequest) ToInterest() *entity.Interest {
	now := uint64(time.Now().Unix())
	interestDesc := req.InterestDesc
	if interestDesc == nil {
		interestDesc = goutil.String("")
	}
	return &entity.Interest{
		Name:         req.Name,
		InterestDesc: interestDesc,
		CreateTime:   goutil.Uint64(now),
		UpdateTime:   goutil.Uint64(now),
	}
}

type CreateInterestResponse struct {
	Interest *entity.Interest `json:"interest,omitempty"`
}

var CreateInterestValidator = validator.MustForm(map[string]validator.Validator{
	"name":          ResourceNameValidator(false),
	"interest_desc": ResourceDescValidator(true),
})

func (h *interestHandler) CreateInterest(ctx context.Context, req *CreateInterestRequest, res *CreateInterestResponse) error {
	if err := CreateInterestValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	interest := req.ToInterest()

	// uniqueness check, not atomic with the insert below
	_, err := h.interestRepo.GetByName(ctx, interest.GetName())
	if err == nil {
		return errutil.ConflictError(errors.New("interest previously defined"))
	}

	if !errors.Is(err, repo.ErrInterestNotFound) {
		log.Ctx(ctx).Error().Msgf("get interest failed: %v", err)
		return err
	}

	id, err := h.interestRepo.Create(ctx, interest)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("create interest failed: %v", err)
		return err
	}

	interest.ID = goutil.Uint64(id)
	res.Interest = interest

	h.sendCreatedEvent(ctx, interest)

	return nil
}

func (h *interestHandler) sendCreatedEvent(ctx context.Context, interest *entity.Interest) {
	if h.producer == nil {
		return
	}

	err := h.producer.SendMessage(&mq.Message{
		Payload: mq.PayloadInterestCreated,
		Key:     interest.GetName(),
		Body: &mq.InterestCreated{
			InterestID: interest.ID,
		},
	})
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("send interest created event failed: %v", err)
	}
}

type GetInterestsRequest struct {
	Keyword    *string          `json:"keyword,omitempty" schema:"keyword"`
	Pagination *repo.Pagination `json:"pagination,omitempty" schema:"pagination"`
}

func (r *GetInterestsRequest) GetKeyword() string {
	if r != nil && r.Keyword != nil {
		return *r.Keyword
	}
	return ""
}

type GetInterestsResponse struct {
	Interests  []*entity.Interest `json:"interests"`
	Pagination *entity.Pagination `json:"pagination,omitempty"`
}

var GetInterestsValidator = validator.MustForm(map[string]validator.Validator{
	"keyword": &validator.String{
		Optional: true,
	},
	"pagination": PaginationValidator(),
})

func (h *interestHandler) GetInterests(ctx context.Context, req *GetInterestsRequest, res *GetInterestsResponse) error {
	if err := GetInterestsValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	req.Pagination = defaultPagination(req.Pagination)

	interests, pagination, err := h.interestRepo.GetByKeyword(ctx, req.GetKeyword(), req.Pagination)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("get interests failed: %v", err)
		return err
	}

	res.Interests = interests
	res.Pagination = pagination

	return nil
}

type CountInterestsRequest struct{}

type CountInterestsResponse struct {
	Count *uint64 `json:"count,omitempty"`
}

func (h *interestHandler) CountInterests(ctx context.Context, _ *CountInterestsRequest, res *CountInterestsResponse) error {
	count, err := h.interestRepo.Count(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("count interests failed: %v", err)
		return err
	}

	res.Count = goutil.Uint64(count)

	return nil
}

type GetInterestNameRequest struct {
	ID *uint64 `json:"id,omitempty" schema:"id"`
}

func (r *GetInterestNameRequest) GetID() uint64 {
	if r != nil && r.ID != nil {
		return *r.ID
	}
	return 0
}

type GetInterestNameResponse struct {
	Name *string `json:"name,omitempty"`
}

var GetInterestNameValidator = validator.MustForm(map[string]validator.Validator{
	"id": &validator.UInt64{},
})

func (h *interestHandler) GetInterestName(ctx context.Context, req *GetInterestNameRequest, res *GetInterestNameResponse) error {
	if err := GetInterestNameValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	interest, err := h.interestRepo.GetByID(ctx, req.GetID())
	if err != nil {
		if errors.Is(err, repo.ErrInterestNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("get interest failed: %v", err)
		return err
	}

	res.Name = interest.Name

	return nil
}

type GetInterestNamesRequest struct {
	IDs []uint64 `json:"ids,omitempty"`
}

type GetInterestNamesResponse struct {
	Names []string `json:"names"`
}

var GetInterestNamesValidator = validator.MustForm(map[string]validator.Validator{
	"ids": &validator.Slice{
		Optional: true,
		MaxLen:   100,
	},
})

// GetInterestNames resolves each ID in input order, failing on the
// first one that does not exist.
func (h *interestHandler) GetInterestNames(ctx context.Context, req *GetInterestNamesRequest, res *GetInterestNamesResponse) error {
	if err := GetInterestNamesValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	names := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		interest, err := h.interestRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repo.ErrInterestNotFound) {
				return errutil.NotFoundError(err)
			}
			log.Ctx(ctx).Error().Msgf("get interest failed: %v", err)
			return err
		}
		names = append(names, interest.GetName())
	}

	res.Names = names

	return nil
}

type CheckInterestNamesRequest struct {
	Names []string `json:"names,omitempty"`
}

type CheckInterestNamesResponse struct{}

var CheckInterestNamesValidator = validator.MustForm(map[string]validator.Validator{
	"names": NameListValidator(),
})

func (h *interestHandler) CheckInterestNames(ctx context.Context, req *CheckInterestNamesRequest, _ *CheckInterestNamesResponse) error {
	if err := CheckInterestNamesValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	if err := h.interestRepo.AssertNames(ctx, req.Names); err != nil {
		if errors.Is(err, repo.ErrInterestNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("check interest names failed: %v", err)
		return err
	}

	return nil
}

type GetInterestIDRequest struct {
	Name *string `json:"name,omitempty" schema:"name"`
}

func (r *GetInterestIDRequest) GetName() string {
	if r != nil && r.Name != nil {
		return *r.Name
	}
	return ""
}

type GetInterestIDResponse struct {
	ID *uint64 `json:"id,omitempty"`
}

var GetInterestIDValidator = validator.MustForm(map[string]validator.Validator{
	"name": ResourceNameValidator(false),
})

func (h *interestHandler) GetInterestID(ctx context.Context, req *GetInterestIDRequest, res *GetInterestIDResponse) error {
	if err := GetInterestIDValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	interest, err := h.interestRepo.GetByName(ctx, req.GetName())
	if err != nil {
		if errors.Is(err, repo.ErrInterestNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("get interest failed: %v", err)
		return err
	}

	res.ID = interest.ID

	return nil
}

type GetInterestIDsRequest struct {
	Names []string `json:"names,omitempty"`
}

type GetInterestIDsResponse struct {
	IDs []uint64 `json:"ids"`
}

var GetInterestIDsValidator = validator.MustForm(map[string]validator.Validator{
	"names": NameListValidator(),
})

// GetInterestIDs resolves each name in input order. An empty or absent
// input yields an empty sequence rather than an error.
func (h *interestHandler) GetInterestIDs(ctx context.Context, req *GetInterestIDsRequest, res *GetInterestIDsResponse) error {
	if err := GetInterestIDsValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	ids := make([]uint64, 0, len(req.Names))
	for _, name := range req.Names {
		interest, err := h.interestRepo.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, repo.ErrInterestNotFound) {
				return errutil.NotFoundError(err)
			}
			log.Ctx(ctx).Error().Msgf("get interest failed: %v", err)
			return err
		}
		ids = append(ids, interest.GetID())
	}

	res.IDs = ids

	return nil
}

type DumpInterestRequest struct {
	ID *uint64 `json:"id,omitempty" schema:"id"`
}

func (r *DumpInterestRequest) GetID() uint64 {
	if r != nil && r.ID != nil {
		return *r.ID
	}
	return 0
}

// DumpInterestResponse matches the shape CreateInterestRequest accepts,
// so a dump can be fed back into create.
type DumpInterestResponse struct {
	Name         *string `json:"name,omitempty"`
	InterestDesc *string `json:"interest_desc,omitempty"`
}

var DumpInterestValidator = validator.MustForm(map[string]validator.Validator{
	"id": &validator.UInt64{},
})

func (h *interestHandler) DumpInterest(ctx context.Context, req *DumpInterestRequest, res *DumpInterestResponse) error {
	if err := DumpInterestValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	interest, err := h.interestRepo.GetByID(ctx, req.GetID())
	if err != nil {
		if errors.Is(err, repo.ErrInterestNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("get interest failed: %v", err)
		return err
	}

	res.Name = interest.Name
	res.InterestDesc = interest.InterestDesc

	return nil
}
