package keys

import (
	"crypto/elliptic"
	"encoding/hex"
	"math/rand"
	"sort"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vela-chain/vela-go/internal/testserdes"
)

func TestEncodeDecodeInfinity(t *testing.T) {
	key := &PublicKey{Curve: elliptic.P256()}
	b, err := testserdes.EncodeBinary(key)
	require.NoError(t, err)
	require.Equal(t, 1, len(b))

	keyDecode, err := NewPublicKeyFromBytes(b, elliptic.P256())
	require.NoError(t, err)
	require.True(t, keyDecode.IsInfinity())
	require.Equal(t, []byte{0x00}, keyDecode.Bytes())
}

func TestEncodeDecodePublicKey(t *testing.T) {
	for i := 0; i < 4; i++ {
		k, err := NewPrivateKey()
		require.NoError(t, err)
		p := k.PublicKey()
		testserdes.EncodeDecodeBinary(t, p, &PublicKey{})
	}
}

func TestEncodeDecodeSecp256k1(t *testing.T) {
	k, err := NewSecp256k1PrivateKey()
	require.NoError(t, err)
	p := k.PublicKey()

	b, err := testserdes.EncodeBinary(p)
	require.NoError(t, err)

	actual, err := NewPublicKeyFromBytes(b, btcec.S256())
	require.NoError(t, err)
	require.Equal(t, p.X, actual.X)
	require.Equal(t, p.Y, actual.Y)
}

func TestPublicKeyFromBytesTrailingData(t *testing.T) {
	k, err := NewPrivateKey()
	require.NoError(t, err)

	b := append(k.PublicKey().Bytes(), 0x2a)
	_, err = NewPublicKeyFromBytes(b, elliptic.P256())
	require.Error(t, err)
}

func TestDecodeFromString(t *testing.T) {
	k, err := NewPrivateKey()
	require.NoError(t, err)
	str := hex.EncodeToString(k.PublicKey().Bytes())

	pubKey, err := NewPublicKeyFromString(str)
	require.NoError(t, err)
	assert.Equal(t, str, hex.EncodeToString(pubKey.Bytes()))
}

func TestPubkeyToAddress(t *testing.T) {
	k, err := NewPrivateKey()
	require.NoError(t, err)
	pubKey := k.PublicKey()

	actual := pubKey.Address()
	assert.NotEmpty(t, actual)

	other, err := NewPrivateKey()
	require.NoError(t, err)
	assert.NotEqual(t, actual, other.Address())
}

func TestContains(t *testing.T) {
	pubs := make(PublicKeys, 3)
	for i := range pubs {
		priv, err := NewPrivateKey()
		require.NoError(t, err)
		pubs[i] = priv.PublicKey()
	}

	assert.True(t, pubs.Contains(pubs[1]))

	stranger, err := NewPrivateKey()
	require.NoError(t, err)
	assert.False(t, pubs.Contains(stranger.PublicKey()))
}

func TestSort(t *testing.T) {
	pubs1 := make(PublicKeys, 10)
	for i := range pubs1 {
		priv, err := NewPrivateKey()
		require.NoError(t, err)
		pubs1[i] = priv.PublicKey()
	}

	pubs2 := make(PublicKeys, len(pubs1))
	copy(pubs2, pubs1)

	sort.Sort(pubs1)

	rand.Shuffle(len(pubs2), func(i, j int) {
		pubs2[i], pubs2[j] = pubs2[j], pubs2[i]
	})
	sort.Sort(pubs2)

	// Check that sorting is deterministic.
	for i := range pubs1 {
		require.Equal(t, pubs1[i], pubs2[i])
	}
}
