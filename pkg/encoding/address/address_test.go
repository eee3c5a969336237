package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vela-chain/vela-go/pkg/util"
)

func TestUint160DecodeEncodeAddress(t *testing.T) {
	var u util.Uint160
	for i := range u {
		u[i] = byte(i * 7)
	}

	s := Uint160ToString(u)
	actual, err := StringToUint160(s)
	require.NoError(t, err)
	assert.Equal(t, u, actual)
}

func TestDecodeKnownBad(t *testing.T) {
	u := util.Uint160{0x2a}
	s := Uint160ToString(u)

	// Corrupted checksum.
	corrupted := "1"
	if s[len(s)-1] == '1' {
		corrupted = "2"
	}
	_, err := StringToUint160(s[:len(s)-1] + corrupted)
	require.Error(t, err)

	// Not base58 at all.
	_, err = StringToUint160("0O0O0O")
	require.Error(t, err)

	// Too short.
	_, err = StringToUint160("2d3b96ae")
	require.Error(t, err)
}
