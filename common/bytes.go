// Copyright (C) 2019 gyee authors
//
// This file is part of the gyee library.
//
// The gyee library is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The gyee library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with the gyee library.  If not, see <http://www.gnu.org/licenses/>.

package common

import (
	"bytes"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/yeeco/nbre/common/codec"
)

// ErrInvalidInput is matched (errors.Is) by every failed From* decode.
var ErrInvalidInput = codec.ErrInvalidInput

// Bytes is a fixed size binary value that owns its storage.
//
// A Bytes of size 0 holds no storage at all. Copy and CopyFrom duplicate
// the storage, Move and MoveFrom hand it over and leave the source empty.
// Plain assignment (b2 := b1) aliases the storage and should only be used
// when b1 is not used afterwards.
//
// A Bytes may be read from many goroutines once built. CopyFrom, MoveFrom
// and Move replace the storage without locking.
type Bytes struct {
	value []byte
}

// NewBytesSize returns a buffer of size bytes for the caller to fill.
func NewBytesSize(size int) Bytes {
	if size <= 0 {
		return Bytes{}
	}
	return Bytes{value: make([]byte, size)}
}

// NewBytes copies a literal list of byte values.
func NewBytes(values ...byte) Bytes {
	return BytesFromSlice(values)
}

// BytesFromSlice deep copies buf. A zero length buf gives the empty value
// whether or not it is nil.
func BytesFromSlice(buf []byte) Bytes {
	if len(buf) == 0 {
		return Bytes{}
	}
	value := make([]byte, len(buf))
	copy(value, buf)
	return Bytes{value: value}
}

func (b Bytes) Size() int { return len(b.value) }

func (b Bytes) IsEmpty() bool { return len(b.value) == 0 }

// Value returns the owned storage, nil for the empty value. Writes through
// the returned slice modify b.
func (b Bytes) Value() []byte { return b.value }

// Copy returns a deep copy of b.
func (b Bytes) Copy() Bytes {
	return BytesFromSlice(b.value)
}

// CopyFrom replaces b's content with a deep copy of src.
func (b *Bytes) CopyFrom(src *Bytes) {
	if b == src {
		return
	}
	*b = src.Copy()
}

// Move returns b's storage and leaves b empty.
func (b *Bytes) Move() Bytes {
	moved := *b
	*b = Bytes{}
	return moved
}

// MoveFrom takes over src's storage and leaves src empty.
func (b *Bytes) MoveFrom(src *Bytes) {
	if b == src {
		return
	}
	*b = src.Move()
}

func (b Bytes) Equals(o Bytes) bool {
	if len(b.value) != len(o.value) {
		return false
	}
	return bytes.Equal(b.value, o.value)
}

func (b Bytes) Hex() string { return b.Encode(codec.Hex) }

func (b Bytes) Base58() string { return b.Encode(codec.Base58) }

func (b Bytes) Base64() string { return b.Encode(codec.Base64) }

func (b Bytes) String() string { return b.Hex() }

// Encode renders the full range of b with c.
func (b Bytes) Encode(c codec.Codec) string {
	return c.Encode(b.value)
}

func FromHex(text string) (Bytes, error) { return Decode(codec.Hex, text) }

func FromBase58(text string) (Bytes, error) { return Decode(codec.Base58, text) }

func FromBase64(text string) (Bytes, error) { return Decode(codec.Base64, text) }

// Decode builds a Bytes from text with c. On failure the returned value is
// the empty Bytes and must be ignored.
func Decode(c codec.Codec, text string) (Bytes, error) {
	value, err := c.Decode(text)
	if err != nil {
		return Bytes{}, err
	}
	if len(value) == 0 {
		return Bytes{}, nil
	}
	// the codec allocated value for us, no second copy
	return Bytes{value: value}, nil
}

// EncodeRLP writes b as an RLP string.
func (b Bytes) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, b.value)
}

func (b *Bytes) DecodeRLP(s *rlp.Stream) error {
	value, err := s.Bytes()
	if err != nil {
		return err
	}
	*b = BytesFromSlice(value)
	return nil
}

// MarshalText uses the hex form, so JSON carries buffers as hex strings.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.Hex()), nil
}

func (b *Bytes) UnmarshalText(text []byte) error {
	decoded, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
