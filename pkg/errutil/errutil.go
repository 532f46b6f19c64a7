package errutil

import (
	"errors"
	"net/http"
)

type HttpError struct {
	code int
	err  error
}

func (e *HttpError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *HttpError) Code() int {
	return e.code
}

func (e *HttpError) Unwrap() error {
	return e.err
}

func newHttpError(code int, err error) error {
	return &HttpError{
		code: code,
		err:  err,
	}
}

func BadRequestError(err error) error {
	return newHttpError(http.StatusBadRequest, err)
}

func ValidationError(err error) error {
	return newHttpError(http.StatusBadRequest, err)
}

func NotFoundError(err error) error {
	return newHttpError(http.StatusNotFound, err)
}

func ConflictError(err error) error {
	return newHttpError(http.StatusConflict, err)
}

// ParseHttpError maps an error to an HTTP status code and message.
// Unwrapped errors default to 500.
func ParseHttpError(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}

	httpErr := new(HttpError)
	if errors.As(err, &httpErr) {
		return httpErr.Code(), httpErr.Error()
	}

	return http.StatusInternalServerError, err.Error()
}
