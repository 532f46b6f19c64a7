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

type FlairHandler interface {
	CreateFlair(ctx context.Context, req *CreateFlairRequest, res *CreateFlairResponse) error
	GetFlairs(ctx context.Context, req *GetFlairsRequest, res *GetFlairsResponse) error
	CountFlairs(ctx context.Context, req *CountFlairsRequest, res *CountFlairsResponse) error
	GetFlairName(ctx context.Context, req *GetFlairNameRequest, res *GetFlairNameResponse) error
	GetFlairNames(ctx context.Context, req *GetFlairNamesRequest, res *GetFlairNamesResponse) error
	CheckFlairNames(ctx context.Context, req *CheckFlairNamesRequest, res *CheckFlairNamesResponse) error
	GetFlairID(ctx context.Context, req *GetFlairIDRequest, res *GetFlairIDResponse) error
	GetFlairIDs(ctx context.Context, req *GetFlairIDsRequest, res *GetFlairIDsResponse) error
	DumpFlair(ctx context.Context, req *DumpFlairRequest, res *DumpFlairResponse) error
}

type flairHandler struct {
	flairRepo repo.FlairRepo
	producer  *mq.Producer
}

func NewFlairHandler(flairRepo repo.FlairRepo, producer *mq.Producer) FlairHandler {
	return &flairHandler{
		flairRepo: flairRepo,
		producer:  producer,
	}
}

type CreateFlairRequest struct {
	Name      *string `json:"name,omitempty"`
	FlairDesc *string `json:"flair_desc,omitempty"`
}

func (req *CreateFlairRequest) ToFlair() *entity.Flair {
	now := uint64(time.Now().Unix())
	flairDesc := req.FlairDesc
	if flairDesc == nil {
		flairDesc = goutil.String("")
	}
	return &entity.Flair{
		Name:       req.Name,
		FlairDesc:  flairDesc,
		CreateTime: goutil.Uint64(now),
		UpdateTime: goutil.Uint64(now),
	}
}

type CreateFlairResponse struct {
	Flair *entity.Flair `json:"flair,omitempty"`
}

var CreateFlairValidator = validator.MustForm(map[string]validator.Validator{
	"name":       ResourceNameValidator(false),
	"flair_desc": ResourceDescValidator(true),
})

func (h *flairHandler) CreateFlair(ctx context.Context, req *CreateFlairRequest, res *CreateFlairResponse) error {
	if err := CreateFlairValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	flair := req.ToFlair()

	// uniqueness check, not atomic with the insert below
	_, err := h.flairRepo.GetByName(ctx, flair.GetName())
	if err == nil {
		return errutil.ConflictError(errors.New("flair previously defined"))
	}

	if !errors.Is(err, repo.ErrFlairNotFound) {
		log.Ctx(ctx).Error().Msgf("get flair failed: %v", err)
		return err
	}

	id, err := h.flairRepo.Create(ctx, flair)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("create flair failed: %v", err)
		return err
	}

	flair.ID = goutil.Uint64(id)
	res.Flair = flair

	h.sendCreatedEvent(ctx, flair)

	return nil
}

func (h *flairHandler) sendCreatedEvent(ctx context.Context, flair *entity.Flair) {
	if h.producer == nil {
		return
	}

	err := h.producer.SendMessage(&mq.Message{
		Payload: mq.PayloadFlairCreated,
		Key:     flair.GetName(),
		Body: &mq.FlairCreated{
			FlairID: flair.ID,
		},
	})
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("send flair created event failed: %v", err)
	}
}

type GetFlairsRequest struct {
	Keyword    *string          `json:"keyword,omitempty" schema:"keyword"`
	Pagination *repo.Pagination `json:"pagination,omitempty" schema:"pagination"`
}

func (r *GetFlairsRequest) GetKeyword() string {
	if r != nil && r.Keyword != nil {
		return *r.Keyword
	}
	return ""
}

type GetFlairsResponse struct {
	Flairs     []*entity.Flair    `json:"flairs"`
	Pagination *entity.Pagination `json:"pagination,omitempty"`
}

var GetFlairsValidator = validator.MustForm(map[string]validator.Validator{
	"keyword": &validator.String{
		Optional: true,
	},
	"pagination": PaginationValidator(),
})

func (h *flairHandler) GetFlairs(ctx context.Context, req *GetFlairsRequest, res *GetFlairsResponse) error {
	if err := GetFlairsValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	req.Pagination = defaultPagination(req.Pagination)

	flairs, pagination, err := h.flairRepo.GetByKeyword(ctx, req.GetKeyword(), req.Pagination)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("get flairs failed: %v", err)
		return err
	}

	res.Flairs = flairs
	res.Pagination = pagination

	return nil
}

type CountFlairsRequest struct{}

type CountFlairsResponse struct {
	Count *uint64 `json:"count,omitempty"`
}

func (h *flairHandler) CountFlairs(ctx context.Context, _ *CountFlairsRequest, res *CountFlairsResponse) error {
	count, err := h.flairRepo.Count(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("count flairs failed: %v", err)
		return err
	}

	res.Count = goutil.Uint64(count)

	return nil
}

type GetFlairNameRequest struct {
	ID *uint64 `json:"id,omitempty" schema:"id"`
}

func (r *GetFlairNameRequest) GetID() uint64 {
	if r != nil && r.ID != nil {
		return *r.ID
	}
	return 0
}

type GetFlairNameResponse struct {
	Name *string `json:"name,omitempty"`
}

var GetFlairNameValidator = validator.MustForm(map[string]validator.Validator{
	"id": &validator.UInt64{},
})

func (h *flairHandler) GetFlairName(ctx context.Context, req *GetFlairNameRequest, res *GetFlairNameResponse) error {
	if err := GetFlairNameValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	flair, err := h.flairRepo.GetByID(ctx, req.GetID())
	if err != nil {
		if errors.Is(err, repo.ErrFlairNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("get flair failed: %v", err)
		return err
	}

	res.Name = flair.Name

	return nil
}

type GetFlairNamesRequest struct {
	IDs []uint64 `json:"ids,omitempty"`
}

type GetFlairNamesResponse struct {
	Names []string `json:"names"`
}

var GetFlairNamesValidator = validator.MustForm(map[string]validator.Validator{
	"ids": &validator.Slice{
		Optional: true,
		MaxLen:   100,
	},
})

// GetFlairNames resolves each ID in input order, failing on the first
// one that does not exist.
func (h *flairHandler) GetFlairNames(ctx context.Context, req *GetFlairNamesRequest, res *GetFlairNamesResponse) error {
	if err := GetFlairNamesValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	names := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		flair, err := h.flairRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repo.ErrFlairNotFound) {
				return errutil.NotFoundError(err)
			}
			log.Ctx(ctx).Error().Msgf("get flair failed: %v", err)
			return err
		}
		names = append(names, flair.GetName())
	}

	res.Names = names

	return nil
}

type CheckFlairNamesRequest struct {
	Names []string `json:"names,omitempty"`
}

type CheckFlairNamesResponse struct{}

var CheckFlairNamesValidator = validator.MustForm(map[string]validator.Validator{
	"names": NameListValidator(),
})

func (h *flairHandler) CheckFlairNames(ctx context.Context, req *CheckFlairNamesRequest, _ *CheckFlairNamesResponse) error {
	if err := CheckFlairNamesValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	if err := h.flairRepo.AssertNames(ctx, req.Names); err != nil {
		if errors.Is(err, repo.ErrFlairNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("check flair names failed: %v", err)
		return err
	}

	return nil
}

type GetFlairIDRequest struct {
	Name *string `json:"name,omitempty" schema:"name"`
}

func (r *GetFlairIDRequest) GetName() string {
	if r != nil && r.Name != nil {
		return *r.Name
	}
	return ""
}

type GetFlairIDResponse struct {
	ID *uint64 `json:"id,omitempty"`
}

var GetFlairIDValidator = validator.MustForm(map[string]validator.Validator{
	"name": ResourceNameValidator(false),
})

func (h *flairHandler) GetFlairID(ctx context.Context, req *GetFlairIDRequest, res *GetFlairIDResponse) error {
	if err := GetFlairIDValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	flair, err := h.flairRepo.GetByName(ctx, req.GetName())
	if err != nil {
		if errors.Is(err, repo.ErrFlairNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("get flair failed: %v", err)
		return err
	}

	res.ID = flair.ID

	return nil
}

type GetFlairIDsRequest struct {
	Names []string `json:"names,omitempty"`
}

type GetFlairIDsResponse struct {
	IDs []uint64 `json:"ids"`
}

var GetFlairIDsValidator = validator.MustForm(map[string]validator.Validator{
	"names": NameListValidator(),
})

// GetFlairIDs resolves each name in input order. An empty or absent
// input yields an empty sequence rather than an error.
func (h *flairHandler) GetFlairIDs(ctx context.Context, req *GetFlairIDsRequest, res *GetFlairIDsResponse) error {
	if err := GetFlairIDsValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	ids := make([]uint64, 0, len(req.Names))
	for _, name := range req.Names {
		flair, err := h.flairRepo.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, repo.ErrFlairNotFound) {
				return errutil.NotFoundError(err)
			}
			log.Ctx(ctx).Error().Msgf("get flair failed: %v", err)
			return err
		}
		ids = append(ids, flair.GetID())
	}

	res.IDs = ids

	return nil
}

type DumpFlairRequest struct {
	ID *uint64 `json:"id,omitempty" schema:"id"`
}

func (r *DumpFlairRequest) GetID() uint64 {
	if r != nil && r.ID != nil {
		return *r.ID
	}
	return 0
}

// DumpFlairResponse matches the shape CreateFlairRequest accepts, so a
// dump can be fed back into create.
type DumpFlairResponse struct {
	Name      *string `json:"name,omitempty"`
	FlairDesc *string `json:"flair_desc,omitempty"`
}

var DumpFlairValidator = validator.MustForm(map[string]validator.Validator{
	"id": &validator.UInt64{},
})

func (h *flairHandler) DumpFlair(ctx context.Context, req *DumpFlairRequest, res *DumpFlairResponse) error {
	if err := DumpFlairValidator.Validate(req); err != nil {
		return errutil.ValidationError(err)
	}

	flair, err := h.flairRepo.GetByID(ctx, req.GetID())
	if err != nil {
		if errors.Is(err, repo.ErrFlairNotFound) {
			return errutil.NotFoundError(err)
		}
		log.Ctx(ctx).Error().Msgf("get flair failed: %v", err)
		return err
	}

	res.Name = flair.Name
	res.FlairDesc = flair.FlairDesc

	return nil
}
