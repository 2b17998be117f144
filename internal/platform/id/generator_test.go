package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	first, err := gen.NewID()
	require.NoError(t, err)
	second, err := gen.NewID()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	canonical, ok := Valid(first)
	assert.True(t, ok)
	assert.Equal(t, first, canonical)
}

func TestValid(t *testing.T) {
	canonical, ok := Valid("6F9619FF-8B86-D011-B42D-00C04FC964FF")
	assert.True(t, ok)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", canonical)

	_, ok = Valid("not-a-uuid")
	assert.False(t, ok)
}
