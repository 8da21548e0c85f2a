package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestNewBox_RejectsShortKey(t *testing.T) {
	_, err := NewBox("too-short")

	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestObscureReveal_RoundTrip(t *testing.T) {
	box, err := NewBox(testKey)
	require.NoError(t, err)

	token, err := box.Obscure("alicecode")
	require.NoError(t, err)

	assert.NotEqual(t, "alicecode", token)
	assert.Equal(t, "alicecode", box.Reveal(token))
}

func TestObscure_NonDeterministic(t *testing.T) {
	box, err := NewBox(testKey)
	require.NoError(t, err)

	first, err := box.Obscure("alicecode")
	require.NoError(t, err)
	second, err := box.Obscure("alicecode")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestReveal_ReturnsEmptyOnFailure(t *testing.T) {
	box, err := NewBox(testKey)
	require.NoError(t, err)

	assert.Empty(t, box.Reveal("not-base64!!"))
	assert.Empty(t, box.Reveal("c2hvcnQ="))

	other, err := NewBox("ffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	token, err := other.Obscure("secret")
	require.NoError(t, err)

	assert.Empty(t, box.Reveal(token))
}
