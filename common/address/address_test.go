/*
 *  Copyright (C) 2017 gyee authors
 *
 *  This file is part of the gyee library.
 *
 *  The gyee library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The gyee library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with the gyee library.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package address

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPublicKey(seed byte) []byte {
	pub := make([]byte, PublicKeyLength)
	pub[0] = 0x04
	for i := 1; i < len(pub); i++ {
		pub[i] = seed + byte(i)
	}
	return pub
}

func TestNewAddressFromPublicKey(t *testing.T) {
	addr, err := NewAddressFromPublicKey(testPublicKey(1))
	require.NoError(t, err)
	assert.Equal(t, AddressTypeAccount, addr.Type())
	assert.Equal(t, AddressLength, addr.Bytes().Size())

	_, err = NewAddressFromPublicKey([]byte{1, 2, 3})
	assert.Equal(t, ErrInvalidPublicKey, err)
}

func TestParse(t *testing.T) {
	addr, err := NewAddressFromPublicKey(testPublicKey(7))
	require.NoError(t, err)

	parsed, err := Parse(addr.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equals(addr))

	fromBytes, err := ParseFromBytes(addr.Bytes().Value())
	require.NoError(t, err)
	assert.True(t, fromBytes.Equals(addr))
}

func TestParseErrors(t *testing.T) {
	addr, err := NewAddressFromPublicKey(testPublicKey(3))
	require.NoError(t, err)
	raw := addr.Bytes().Value()

	_, err = Parse("0OIl")
	assert.Equal(t, ErrInvalidAddressFormat, errors.Cause(err))

	_, err = ParseFromBytes(raw[:AddressLength-1])
	assert.Equal(t, ErrInvalidAddressFormat, err)

	badType := append([]byte{}, raw...)
	badType[AddressTypeIndex] = 0x7f
	_, err = ParseFromBytes(badType)
	assert.Equal(t, ErrInvalidAddressType, err)

	badSum := append([]byte{}, raw...)
	badSum[AddressContentIndex] ^= 0xff
	_, err = ParseFromBytes(badSum)
	assert.Equal(t, ErrInvalidAddressChecksum, err)
}

func TestContractAddress(t *testing.T) {
	from, err := NewAddressFromPublicKey(testPublicKey(9))
	require.NoError(t, err)

	c1, err := NewContractAddress(from, 1)
	require.NoError(t, err)
	c2, err := NewContractAddress(from, 2)
	require.NoError(t, err)
	assert.Equal(t, AddressTypeContract, c1.Type())
	assert.False(t, c1.Equals(c2))
	assert.Equal(t, "contract", c1.Type().String())

	_, err = NewContractAddress(nil, 0)
	assert.Equal(t, ErrInvalidAddress, err)
}
