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

/*
The address calculation formula is as follows:
```
1.  content = ripemd160(sha3_256(public key))            account
    content = ripemd160(sha3_256(sender, nonce))         contract
    length: 20 bytes
                            +--------+--------------+-----------+
2.  checksum = sha3_256(    |  type  |  network id  |  content  |  )[:4]
                            +--------+--------------+-----------+
    length: 4 bytes

                        +--------+--------------+-----------+------------+
3.  address = base58(   |  type  |  network id  |  content  |  checksum  |  )
                        +--------+--------------+-----------+------------+
    length: 26 bytes
```
*/

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/yeeco/nbre/common"
	"github.com/yeeco/nbre/crypto/hash"
)

type AddressType byte

const (
	AddressTypeAccount AddressType = 0x01 + iota
	AddressTypeContract
)

func (t AddressType) String() string {
	switch t {
	case AddressTypeAccount:
		return "account"
	case AddressTypeContract:
		return "contract"
	}
	return "unknown"
}

const (
	AddressTypeIndex       = 0
	AddressTypeLength      = 1
	AddressNetworkIdIndex  = 1
	AddressNetworkIdLength = 1
	AddressContentIndex    = 2
	AddressContentLength   = 20
	AddressChecksumIndex   = 22
	AddressChecksumLength  = 4
	AddressLength          = AddressTypeLength + AddressNetworkIdLength + AddressContentLength + AddressChecksumLength

	// uncompressed secp256k1 public key
	PublicKeyLength = 65

	NetworkId = 0x05
)

var (
	ErrInvalidAddress         = errors.New("address: invalid address")
	ErrInvalidAddressFormat   = errors.New("address: invalid address format")
	ErrInvalidAddressType     = errors.New("address: invalid address type")
	ErrInvalidAddressChecksum = errors.New("address: invalid address checksum")
	ErrInvalidPublicKey       = errors.New("address: invalid public key length")
)

type Address struct {
	raw common.Bytes
}

func NewAddressFromPublicKey(pubkey []byte) (*Address, error) {
	if len(pubkey) != PublicKeyLength {
		return nil, ErrInvalidPublicKey
	}
	return newAddress(AddressTypeAccount, hash.Ripemd160(hash.Sha3256(pubkey))), nil
}

// NewContractAddress derives the address of the contract deployed by from
// with the given nonce.
func NewContractAddress(from *Address, nonce uint64) (*Address, error) {
	if from == nil || from.raw.IsEmpty() {
		return nil, ErrInvalidAddress
	}
	enc := make([]byte, 8)
	binary.BigEndian.PutUint64(enc, nonce)
	return newAddress(AddressTypeContract, hash.Ripemd160(hash.Sha3256(from.raw.Value(), enc))), nil
}

func newAddress(t AddressType, content []byte) *Address {
	raw := common.NewBytesSize(AddressLength)
	buffer := raw.Value()
	buffer[AddressTypeIndex] = byte(t)
	buffer[AddressNetworkIdIndex] = NetworkId
	copy(buffer[AddressContentIndex:AddressChecksumIndex], content)
	copy(buffer[AddressChecksumIndex:], checkSum(buffer[:AddressChecksumIndex]))
	return &Address{raw: raw}
}

// Bytes returns a copy of the raw address.
func (a *Address) Bytes() common.Bytes {
	return a.raw.Copy()
}

func (a *Address) Type() AddressType {
	return AddressType(a.raw.Value()[AddressTypeIndex])
}

// String returns the base58 form of the address.
func (a *Address) String() string {
	return a.raw.Base58()
}

func (a *Address) Equals(b *Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.raw.Equals(b.raw)
}

// Parse parses the base58 address string.
func Parse(s string) (*Address, error) {
	raw, err := common.FromBase58(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidAddressFormat, err.Error())
	}
	return parse(raw)
}

// ParseFromBytes parses and copies a raw address.
func ParseFromBytes(b []byte) (*Address, error) {
	return parse(common.BytesFromSlice(b))
}

func parse(raw common.Bytes) (*Address, error) {
	b := raw.Value()
	if len(b) != AddressLength || b[AddressNetworkIdIndex] != NetworkId {
		return nil, ErrInvalidAddressFormat
	}

	switch AddressType(b[AddressTypeIndex]) {
	case AddressTypeAccount, AddressTypeContract:
	default:
		return nil, ErrInvalidAddressType
	}

	if !bytes.Equal(checkSum(b[:AddressChecksumIndex]), b[AddressChecksumIndex:]) {
		return nil, ErrInvalidAddressChecksum
	}

	return &Address{raw: raw}, nil
}

func checkSum(data []byte) []byte {
	return hash.Sha3256(data)[:AddressChecksumLength]
}
