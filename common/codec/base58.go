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

package codec

import (
	"strings"

	"github.com/mr-tron/base58"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

type base58Codec struct{}

func (base58Codec) Name() string { return "base58" }

// Encode maps each leading zero byte to a leading '1'.
func (base58Codec) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	return base58.Encode(src)
}

// Decode treats the empty string as the empty value; base58.Decode
// itself refuses zero length input.
func (c base58Codec) Decode(text string) ([]byte, error) {
	if len(text) == 0 {
		return nil, nil
	}
	if i := strings.IndexFunc(text, notBase58); i >= 0 {
		return nil, newDecodeError(c.Name(), i, ErrInvalidCharacter)
	}
	dst, err := base58.Decode(text)
	if err != nil {
		return nil, newDecodeError(c.Name(), -1, err)
	}
	return dst, nil
}

func notBase58(r rune) bool {
	return r > 0x7f || strings.IndexByte(base58Alphabet, byte(r)) < 0
}
