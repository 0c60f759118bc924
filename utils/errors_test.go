package utils

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWrapError_Nil(t *testing.T) {
	assert.Nil(t, WrapError(nil, "nothing"))
	assert.Nil(t, WrapErrorf(nil, "nothing %d", 1))
}

func TestWrapError_Cause(t *testing.T) {
	base := errors.New("base")
	err := WrapErrorf(WrapError(base, "inner"), "outer %s", "call")
	require.NotNil(t, err)

	assert.Equal(t, "outer call: inner: base", err.Error())
	assert.Equal(t, base, Cause(err))
	assert.True(t, errors.Is(err, base))
}

func TestMustAtoi(t *testing.T) {
	assert.Equal(t, 5672, MustAtoi("5672"))
	assert.Panics(t, func() { MustAtoi("port") })
}
