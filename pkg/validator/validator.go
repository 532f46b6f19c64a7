package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"folio/pkg/goutil"
)

var (
	ErrMissingValue  = errors.New("value is required")
	ErrUnexpectedTyp = errors.New("unexpected value type")
)

type Validator interface {
	Validate(value interface{}) error
}

type StringFunc func(string) error

// String validates a string or *string field.
// An empty value counts as unset when UnsetZero is set.
type String struct {
	Optional   bool
	UnsetZero  bool
	MinLen     int
	MaxLen     int
	Regex      *regexp.Regexp
	Validators []StringFunc
}

func (v *String) Validate(value interface{}) error {
	s, isSet, err := toString(value)
	if err != nil {
		return err
	}

	if v.UnsetZero && s == "" {
		isSet = false
	}

	if !isSet {
		if v.Optional {
			return nil
		}
		return ErrMissingValue
	}

	if v.MinLen > 0 && len(s) < v.MinLen {
		return fmt.Errorf("length must be at least %d", v.MinLen)
	}

	if v.MaxLen > 0 && len(s) > v.MaxLen {
		return fmt.Errorf("length cannot exceed %d", v.MaxLen)
	}

	if v.Regex != nil && !v.Regex.MatchString(s) {
		return fmt.Errorf("invalid format %s", s)
	}

	for _, fn := range v.Validators {
		if err := fn(s); err != nil {
			return err
		}
	}

	return nil
}

func toString(value interface{}) (s string, isSet bool, err error) {
	switch t := value.(type) {
	case string:
		return t, true, nil
	case *string:
		if t == nil {
			return "", false, nil
		}
		return *t, true, nil
	default:
		return "", false, ErrUnexpectedTyp
	}
}

type UInt32Func func(uint32) error

type UInt32 struct {
	Optional   bool
	Validators []UInt32Func
}

func (v *UInt32) Validate(value interface{}) error {
	var (
		ui    uint32
		isSet bool
	)
	switch t := value.(type) {
	case uint32:
		ui, isSet = t, true
	case *uint32:
		if t != nil {
			ui, isSet = *t, true
		}
	default:
		return ErrUnexpectedTyp
	}

	if !isSet {
		if v.Optional {
			return nil
		}
		return ErrMissingValue
	}

	for _, fn := range v.Validators {
		if err := fn(ui); err != nil {
			return err
		}
	}

	return nil
}

type UInt64Func func(uint64) error

type UInt64 struct {
	Optional   bool
	Validators []UInt64Func
}

func (v *UInt64) Validate(value interface{}) error {
	var (
		ui    uint64
		isSet bool
	)
	switch t := value.(type) {
	case uint64:
		ui, isSet = t, true
	case *uint64:
		if t != nil {
			ui, isSet = *t, true
		}
	default:
		return ErrUnexpectedTyp
	}

	if !isSet {
		if v.Optional {
			return nil
		}
		return ErrMissingValue
	}

	for _, fn := range v.Validators {
		if err := fn(ui); err != nil {
			return err
		}
	}

	return nil
}

// Slice validates a slice field, optionally running a Validator over
// each element. A nil slice counts as unset.
type Slice struct {
	Optional  bool
	MinLen    int
	MaxLen    int
	Validator Validator
}

func (v *Slice) Validate(value interface{}) error {
	if goutil.IsNil(value) {
		if v.Optional {
			return nil
		}
		return ErrMissingValue
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return ErrUnexpectedTyp
	}

	if v.MinLen > 0 && rv.Len() < v.MinLen {
		return fmt.Errorf("length must be at least %d", v.MinLen)
	}

	if v.MaxLen > 0 && rv.Len() > v.MaxLen {
		return fmt.Errorf("length cannot exceed %d", v.MaxLen)
	}

	if v.Validator != nil {
		for i := 0; i < rv.Len(); i++ {
			if err := v.Validator.Validate(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("element %d: %v", i, err)
			}
		}
	}

	return nil
}
