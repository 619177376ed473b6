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
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

func TestConstruct(t *testing.T) {
	b := NewBytesSize(4)
	assert.Equal(t, 4, b.Size())
	assert.Len(t, b.Value(), 4)

	empty := NewBytesSize(0)
	assert.Equal(t, 0, empty.Size())
	assert.Nil(t, empty.Value())
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, NewBytesSize(-1).Value())

	lit := NewBytes(1, 2, 3)
	assert.Equal(t, []byte{1, 2, 3}, lit.Value())
	assert.Nil(t, NewBytes().Value())

	raw := []byte{9, 8, 7}
	fromRaw := BytesFromSlice(raw)
	raw[0] = 0
	assert.Equal(t, []byte{9, 8, 7}, fromRaw.Value())
	assert.Nil(t, BytesFromSlice(raw[:0]).Value())
	assert.Nil(t, BytesFromSlice(nil).Value())
}

func TestVariadicLiteralIsCopied(t *testing.T) {
	raw := []byte{1, 2}
	b := NewBytes(raw...)
	raw[0] = 5
	assert.Equal(t, byte(1), b.Value()[0])
}

func TestCopy(t *testing.T) {
	b1 := NewBytes(0xde, 0xad, 0xbe, 0xef)
	b2 := b1.Copy()
	assert.True(t, b1.Equals(b2))

	b2.Value()[0] = 0x00
	assert.Equal(t, byte(0xde), b1.Value()[0])
	assert.False(t, b1.Equals(b2))

	var b3 Bytes
	b3.CopyFrom(&b1)
	assert.True(t, b3.Equals(b1))
	b3.CopyFrom(&b3)
	assert.True(t, b3.Equals(b1))

	empty := Bytes{}
	b3.CopyFrom(&empty)
	assert.Equal(t, 0, b3.Size())
	assert.Nil(t, b3.Value())
}

func TestMove(t *testing.T) {
	b1 := NewBytes(1, 2, 3)
	storage := b1.Value()

	b2 := b1.Move()
	assert.Equal(t, 0, b1.Size())
	assert.Nil(t, b1.Value())
	assert.Equal(t, 3, b2.Size())
	assert.True(t, &storage[0] == &b2.Value()[0], "move must not copy")

	var b3 Bytes
	b3.MoveFrom(&b2)
	assert.Equal(t, 0, b2.Size())
	assert.Equal(t, []byte{1, 2, 3}, b3.Value())

	b3.MoveFrom(&b3)
	assert.Equal(t, 3, b3.Size())
}

func TestEquals(t *testing.T) {
	assert.True(t, Bytes{}.Equals(NewBytes()))
	assert.True(t, NewBytes(1, 2).Equals(NewBytes(1, 2)))
	assert.False(t, NewBytes(1, 2).Equals(NewBytes(1, 2, 3)))
	assert.False(t, NewBytes(1, 2).Equals(NewBytes(1, 3)))
	assert.False(t, NewBytes(0).Equals(Bytes{}))
}

func TestHex(t *testing.T) {
	b := NewBytes(0x00, 0x01, 0xab, 0xff)
	assert.Equal(t, "0001abff", b.Hex())
	assert.Equal(t, "0001abff", b.String())
	assert.Len(t, b.Hex(), 2*b.Size())

	got, err := FromHex("0001ABff")
	require.NoError(t, err)
	assert.True(t, got.Equals(b))
}

func TestFromHexInvalid(t *testing.T) {
	for _, text := range []string{"zz", "abc", "0", "0x", "12 4"} {
		got, err := FromHex(text)
		require.Error(t, err, text)
		assert.True(t, errors.Is(err, ErrInvalidInput), text)
		assert.Equal(t, 0, got.Size())
	}
}

func TestFromBase58Invalid(t *testing.T) {
	_, err := FromBase58("0OIl")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestFromBase64Invalid(t *testing.T) {
	_, err := FromBase64("abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = FromBase64("ab$=")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEmptyEncodings(t *testing.T) {
	var empty Bytes
	assert.Equal(t, "", empty.Hex())
	assert.Equal(t, "", empty.Base58())
	assert.Equal(t, "", empty.Base64())

	for name, from := range map[string]func(string) (Bytes, error){
		"hex":    FromHex,
		"base58": FromBase58,
		"base64": FromBase64,
	} {
		got, err := from("")
		require.NoError(t, err, name)
		assert.Equal(t, 0, got.Size(), name)
		assert.Nil(t, got.Value(), name)
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	inputs := [][]byte{
		{0x00},
		{0x00, 0x00, 0x00},
		{0x00, 0x00, 0x01, 0x02},
		{0xff},
		{0x61, 0x00, 0x62},
	}
	for n := 1; n <= 64; n++ {
		inputs = append(inputs, randBytes(r, n))
	}

	for _, in := range inputs {
		b := BytesFromSlice(in)

		got, err := FromHex(b.Hex())
		require.NoError(t, err)
		assert.True(t, got.Equals(b), "hex %x", in)

		got, err = FromBase58(b.Base58())
		require.NoError(t, err)
		assert.True(t, got.Equals(b), "base58 %x", in)

		got, err = FromBase64(b.Base64())
		require.NoError(t, err)
		assert.True(t, got.Equals(b), "base64 %x", in)
	}
}

func TestBase64EmbeddedZero(t *testing.T) {
	// the whole range is encoded, not a prefix up to the first zero byte
	b := NewBytes('n', 'e', 'b', 0x00, 'u', 'l', 'a', 's')
	assert.Equal(t, "bmViAHVsYXM=", b.Base64())

	got, err := FromBase64(b.Base64())
	require.NoError(t, err)
	assert.Equal(t, b.Size(), got.Size())
	assert.True(t, got.Equals(b))

	zeros := NewBytesSize(5)
	assert.Equal(t, "AAAAAAA=", zeros.Base64())
}

func TestBase58LeadingZeros(t *testing.T) {
	b := NewBytes(0x00, 0x00, 0x2a)
	assert.Equal(t, "11j", b.Base58())

	got, err := FromBase58("11j")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x2a}, got.Value())
}

type rlpRecord struct {
	Name string
	Data Bytes
	Tail Bytes
}

func TestRLP(t *testing.T) {
	in := rlpRecord{Name: "tx", Data: NewBytes(0x00, 0x01, 0x80, 0xff)}
	enc, err := rlp.EncodeToBytes(&in)
	require.NoError(t, err)

	var out rlpRecord
	require.NoError(t, rlp.DecodeBytes(enc, &out))
	assert.Equal(t, "tx", out.Name)
	assert.True(t, out.Data.Equals(in.Data))
	assert.Nil(t, out.Tail.Value())
}

func TestJSON(t *testing.T) {
	in := struct {
		Hash Bytes `json:"hash"`
	}{Hash: NewBytes(0xca, 0xfe)}
	enc, err := json.Marshal(&in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hash":"cafe"}`, string(enc))

	var out struct {
		Hash Bytes `json:"hash"`
	}
	require.NoError(t, json.Unmarshal(enc, &out))
	assert.True(t, out.Hash.Equals(in.Hash))

	err = json.Unmarshal([]byte(`{"hash":"caf"}`), &out)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
