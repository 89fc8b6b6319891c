package cbor

import "github.com/agentflare-ai/tagtree/value"

// Marshal is Dump renamed to match the conventional Go codec surface;
// it encodes v as a complete CBOR byte string.
func Marshal(v value.Value) ([]byte, error) {
	return Dump(v)
}

// Unmarshal decodes exactly one CBOR item from data using
// DefaultMaxDepth, returning an error if data carries trailing bytes
// after that item.
func Unmarshal(data []byte) (value.Value, error) {
	v, n, err := Load(data)
	if err != nil {
		return value.Value{}, err
	}
	if n != len(data) {
		return value.Value{}, ErrTrailingData
	}
	return v, nil
}
