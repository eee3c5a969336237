package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivateKeyFromHex(t *testing.T) {
	priv, err := NewPrivateKey()
	require.NoError(t, err)

	actual, err := NewPrivateKeyFromHex(priv.String())
	require.NoError(t, err)
	assert.Equal(t, priv.Bytes(), actual.Bytes())
	assert.Equal(t, priv.Address(), actual.Address())

	_, err = NewPrivateKeyFromHex("not a hex string")
	require.Error(t, err)

	// Too short for a 32-byte scalar.
	_, err = NewPrivateKeyFromHex("2a2a2a")
	require.Error(t, err)
}
