package goutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsStr(t *testing.T) {
	assert.True(t, ContainsStr([]string{"a", "b"}, "b"))
	assert.False(t, ContainsStr([]string{"a", "b"}, "c"))
	assert.False(t, ContainsStr(nil, "a"))
}

func TestFirstDuplicate(t *testing.T) {
	name, ok := FirstDuplicate([]string{"a", "b", "a"})
	assert.True(t, ok)
	assert.Equal(t, "a", name)

	_, ok = FirstDuplicate([]string{"a", "b"})
	assert.False(t, ok)

	_, ok = FirstDuplicate(nil)
	assert.False(t, ok)
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil((*string)(nil)))
	assert.True(t, IsNil([]string(nil)))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(String("")))
}
