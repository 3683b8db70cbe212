package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(16)
	b := GenerateRandByteArray(16)

	require.Len(t, a, 16)
	require.Len(t, b, 16)
	assert.False(t, bytes.Equal(a, b), "two salts should differ")
	assert.Empty(t, GenerateRandByteArray(0))
}

func TestWipeByteArray(t *testing.T) {
	pw := []byte("Passw0rd1")
	WipeByteArray(pw)
	assert.Equal(t, make([]byte, 9), pw)

	require.NotPanics(t, func() { WipeByteArray(nil) })
}
