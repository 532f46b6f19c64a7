package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// Form validates the fields of a request struct. Fields are keyed by
// their json tag, or by field name for embedded structs.
type Form struct {
	validators map[string]Validator
}

func MustForm(validators map[string]Validator) *Form {
	for k, v := range validators {
		if k == "" || v == nil {
			panic(fmt.Sprintf("invalid form validator config, key: %s", k))
		}
	}
	return &Form{validators: validators}
}

func (f *Form) Validate(value interface{}) error {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		// absent sub-form, nothing to check
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ErrUnexpectedTyp
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)

		key := field.Name
		if !field.Anonymous {
			key = jsonKey(field)
		}

		v, ok := f.validators[key]
		if !ok {
			continue
		}

		if err := v.Validate(rv.Field(i).Interface()); err != nil {
			return fmt.Errorf("%s: %v", key, err)
		}
	}

	return nil
}

func jsonKey(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
