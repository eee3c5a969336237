package io

// Serializable defines the binary encoding/decoding interface. Errors are
// not returned by these methods, they're accumulated in the Err field of
// BinReader/BinWriter instead.
type Serializable interface {
	DecodeBinary(*BinReader)
	EncodeBinary(*BinWriter)
}
