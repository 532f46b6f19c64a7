package handler

import (
	"regexp"

	"folio/pkg/validator"
	"folio/repo"
)

var resourceNameRegex = regexp.MustCompile(`^[0-9a-zA-Z_.\s-]+$`)

func ResourceNameValidator(optional bool) validator.Validator {
	return &validator.String{
		Optional:  optional,
		UnsetZero: true,
		MinLen:    2,
		MaxLen:    60,
		Regex:     resourceNameRegex,
	}
}

func ResourceDescValidator(optional bool) validator.Validator {
	return &validator.String{
		Optional:  optional,
		UnsetZero: true,
		MaxLen:    200,
	}
}

func UsernameValidator(optional bool) validator.Validator {
	return &validator.String{
		Optional:  optional,
		UnsetZero: true,
		MaxLen:    60,
		Regex:     regexp.MustCompile(`^[0-9a-zA-Z_.-]+$`),
	}
}

func OptionalTextValidator(maxLen int) validator.Validator {
	return &validator.String{
		Optional: true,
		MaxLen:   maxLen,
	}
}

func NameListValidator() validator.Validator {
	return &validator.Slice{
		Optional:  true,
		MaxLen:    100,
		Validator: ResourceNameValidator(false),
	}
}

func PaginationValidator() validator.Validator {
	return validator.MustForm(map[string]validator.Validator{
		"limit": &validator.UInt32{Optional: true},
		"page":  &validator.UInt32{Optional: true},
	})
}

func defaultPagination(p *repo.Pagination) *repo.Pagination {
	if p == nil {
		return new(repo.Pagination)
	}
	return p
}
