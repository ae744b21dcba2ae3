package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pastelpay/internal/identifier"
)

func TestDecodeRoundTrip(t *testing.T) {
	id := identifier.New()

	decoded, err := identifier.Decode(id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, id, decoded)
	assert.Equal(t, id.Hex(), decoded.Hex())
}

func TestDecodeKnownHex(t *testing.T) {
	decoded, err := identifier.Decode("64f1c2a9e3b0d85a7c4f1e2d")
	assert.NoError(t, err)
	assert.Equal(t, "64f1c2a9e3b0d85a7c4f1e2d", decoded.Hex())
}

func TestDecodeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"123",
		"not-a-product-id",
		"zzzzzzzzzzzzzzzzzzzzzzzz",  // right length, wrong charset
		"64f1c2a9e3b0d85a7c4f1e2",   // 23 characters
		"64f1c2a9e3b0d85a7c4f1e2d0", // 25 characters
	}

	for _, input := range inputs {
		_, err := identifier.Decode(input)
		assert.ErrorIs(t, err, identifier.ErrInvalidIdentifier, "input %q", input)
	}
}

func TestFromValue(t *testing.T) {
	id := identifier.New()

	got, ok := identifier.FromValue(id)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	got, ok = identifier.FromValue(id.ObjectID())
	assert.True(t, ok)
	assert.Equal(t, id, got)

	got, ok = identifier.FromValue(id.Hex())
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = identifier.FromValue(nil)
	assert.False(t, ok)

	_, ok = identifier.FromValue(42)
	assert.False(t, ok)

	_, ok = identifier.FromValue("nope")
	assert.False(t, ok)
}
