package validator

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestString(t *testing.T) {
	v := &String{MinLen: 2, MaxLen: 5}

	assert.NoError(t, v.Validate("abc"))
	assert.NoError(t, v.Validate(strPtr("abc")))
	assert.Error(t, v.Validate("a"))
	assert.Error(t, v.Validate("toolong"))
	assert.Error(t, v.Validate((*string)(nil)))
	assert.Error(t, v.Validate(123))

	optional := &String{Optional: true}
	assert.NoError(t, optional.Validate((*string)(nil)))
}

func TestString_UnsetZero(t *testing.T) {
	v := &String{UnsetZero: true, MinLen: 2}
	assert.Error(t, v.Validate(""))

	optional := &String{Optional: true, UnsetZero: true, MinLen: 2}
	assert.NoError(t, optional.Validate(""))
}

func TestString_Regex(t *testing.T) {
	v := &String{Regex: regexp.MustCompile(`^[a-z]+$`)}
	assert.NoError(t, v.Validate("abc"))
	assert.Error(t, v.Validate("ABC"))
}

func TestString_Validators(t *testing.T) {
	errBad := errors.New("bad value")
	v := &String{Validators: []StringFunc{
		func(s string) error {
			if s == "bad" {
				return errBad
			}
			return nil
		},
	}}
	assert.NoError(t, v.Validate("good"))
	assert.ErrorIs(t, v.Validate("bad"), errBad)
}

func TestUInt64(t *testing.T) {
	v := &UInt64{}
	assert.NoError(t, v.Validate(uint64(1)))
	assert.Error(t, v.Validate((*uint64)(nil)))

	optional := &UInt64{Optional: true}
	assert.NoError(t, optional.Validate((*uint64)(nil)))
}

func TestSlice(t *testing.T) {
	v := &Slice{MaxLen: 2}
	assert.NoError(t, v.Validate([]string{"a"}))
	assert.Error(t, v.Validate([]string{"a", "b", "c"}))
	assert.Error(t, v.Validate([]string(nil)))

	optional := &Slice{Optional: true}
	assert.NoError(t, optional.Validate([]string(nil)))

	each := &Slice{Optional: true, Validator: &String{MinLen: 2}}
	assert.NoError(t, each.Validate([]string{"ab", "cd"}))
	assert.Error(t, each.Validate([]string{"ab", "c"}))
}

func TestForm(t *testing.T) {
	type req struct {
		Name *string  `json:"name,omitempty"`
		Tags []string `json:"tags,omitempty"`
	}

	f := MustForm(map[string]Validator{
		"name": &String{MinLen: 2},
		"tags": &Slice{Optional: true, MaxLen: 2},
	})

	assert.NoError(t, f.Validate(&req{Name: strPtr("ab")}))
	assert.Error(t, f.Validate(&req{}))
	assert.Error(t, f.Validate(&req{Name: strPtr("ab"), Tags: []string{"a", "b", "c"}}))

	// nil sub-form passes
	assert.NoError(t, f.Validate((*req)(nil)))
}

func TestMustForm_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustForm(map[string]Validator{"": &String{}})
	})
	assert.Panics(t, func() {
		MustForm(map[string]Validator{"name": nil})
	})
}
