package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	input := []byte("hello")
	data := Sha256(input)

	expected := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	actual := data.StringBE() // the digest is stored big-endian

	assert.Equal(t, expected, actual)
}

func TestSha256Determinism(t *testing.T) {
	input := []byte("hello")
	assert.Equal(t, Sha256(input), Sha256(input))
	assert.NotEqual(t, Sha256(input), Sha256([]byte("hellp")))
}

func TestHashDoubleSha256(t *testing.T) {
	input := []byte("hello")
	data := DoubleSha256(input)

	firstSha := Sha256(input)
	doubleSha := Sha256(firstSha.BytesBE())
	expected := doubleSha.StringBE()

	actual := data.StringBE()
	assert.Equal(t, expected, actual)
}

func TestHash160(t *testing.T) {
	input := "02cccafb41b220cab63fd77108d2d1ebcffa32be26da29a04dca4996afce5f75db"
	publicKeyBytes, err := hex.DecodeString(input)
	require.NoError(t, err)
	data := Hash160(publicKeyBytes)

	assert.NotEqual(t, data, Hash160([]byte{}))
	assert.Equal(t, data, Hash160(publicKeyBytes))
}

func TestChecksum(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	sum := Checksum(data)
	require.Len(t, sum, 4)
	assert.Equal(t, DoubleSha256(data).BytesBE()[:4], sum)
}
