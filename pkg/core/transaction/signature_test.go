package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vela-chain/vela-go/internal/testserdes"
	"github.com/vela-chain/vela-go/pkg/crypto/keys"
)

func TestSignatureSerDes(t *testing.T) {
	priv, err := keys.NewPrivateKey()
	require.NoError(t, err)

	sig := &Signature{
		Kind:      SignatureECDSAP256,
		PublicKey: priv.PublicKey(),
		Data:      priv.Sign([]byte("message")),
	}
	testserdes.EncodeDecodeBinary(t, sig, new(Signature))

	k1, err := keys.NewSecp256k1PrivateKey()
	require.NoError(t, err)
	sig = &Signature{
		Kind:      SignatureECDSASecp256k1,
		PublicKey: k1.PublicKey(),
		Data:      k1.Sign([]byte("message")),
	}
	testserdes.EncodeDecodeBinary(t, sig, new(Signature))
}

func TestSignatureDecodeUnknownScheme(t *testing.T) {
	priv, err := keys.NewPrivateKey()
	require.NoError(t, err)

	sig := &Signature{
		Kind:      SignatureECDSAP256,
		PublicKey: priv.PublicKey(),
		Data:      priv.Sign([]byte("message")),
	}
	b, err := testserdes.EncodeBinary(sig)
	require.NoError(t, err)

	b[0] = 0x7f
	require.Error(t, testserdes.DecodeBinary(b, new(Signature)))
}

func TestSignatureVerifyAndAddress(t *testing.T) {
	priv, err := keys.NewPrivateKey()
	require.NoError(t, err)

	message := []byte("the signed surface")
	sig := &Signature{
		Kind:      SignatureECDSAP256,
		PublicKey: priv.PublicKey(),
		Data:      priv.Sign(message),
	}

	assert.True(t, sig.Verify(message))
	assert.False(t, sig.Verify([]byte("another surface")))
	assert.Equal(t, priv.GetScriptHash(), sig.Address())
}
