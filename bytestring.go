package foundation

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"iter"
	"unicode/utf8"
)

// ByteString is an immutable sequence of bytes.
//
// ByteStrings are comparable with == and may therefore be used as map keys.
// The zero value is the empty ByteString.
type ByteString struct {
	data string // never mutated, holds raw bytes
}

// CopyFrom creates a ByteString from a copy of b.
func CopyFrom(b ...byte) ByteString {
	return ByteString{data: string(b)}
}

// ByteStringFromString creates a ByteString from the bytes of s.
func ByteStringFromString(s string) ByteString {
	return ByteString{data: s}
}

// ByteStringFromBase64 decodes a standard base64 string. An empty input
// yields the empty ByteString.
func ByteStringFromBase64(s string) (ByteString, error) {
	if s == "" {
		return ByteString{}, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		T().Debugf("foundation: invalid base64 input: %v", err)
		return ByteString{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return ByteString{data: string(b)}, nil
}

// Len returns the number of bytes.
func (bs ByteString) Len() int {
	return len(bs.data)
}

// IsEmpty reports whether bs has no bytes.
func (bs ByteString) IsEmpty() bool {
	return len(bs.data) == 0
}

// At returns the byte at position i.
func (bs ByteString) At(i int) (byte, error) {
	if i < 0 || i >= len(bs.data) {
		return 0, ErrIndexOutOfBounds
	}
	return bs.data[i], nil
}

// Bytes returns a copy of the bytes.
func (bs ByteString) Bytes() []byte {
	return []byte(bs.data)
}

// All iterates over the bytes.
func (bs ByteString) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(bs.data); i++ {
			if !yield(bs.data[i]) {
				return
			}
		}
	}
}

// Compare compares bs and other lexicographically, like bytes.Compare.
func (bs ByteString) Compare(other ByteString) int {
	return bytes.Compare([]byte(bs.data), []byte(other.data))
}

// Equal reports whether bs and other contain the same bytes.
func (bs ByteString) Equal(other ByteString) bool {
	return bs.data == other.data
}

// Base64 encodes bs using standard base64 encoding.
func (bs ByteString) Base64() string {
	return base64.StdEncoding.EncodeToString([]byte(bs.data))
}

// IsValidUTF8 reports whether bs holds valid UTF-8 text.
func (bs ByteString) IsValidUTF8() bool {
	return utf8.ValidString(bs.data)
}

// String interprets the bytes as UTF-8 text.
func (bs ByteString) String() string {
	return bs.data
}
