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
	"encoding/hex"
)

type hexCodec struct{}

func (hexCodec) Name() string { return "hex" }

// Encode writes two lowercase digits per byte, high nibble first.
func (hexCodec) Encode(src []byte) string {
	return hex.EncodeToString(src)
}

// Decode accepts upper and lower case digits. Odd length input is
// rejected instead of dropping the trailing digit.
func (c hexCodec) Decode(text string) ([]byte, error) {
	n, err := c.decodedLen(text)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	dst := make([]byte, n)
	m, err := hex.Decode(dst, []byte(text))
	if err != nil {
		return nil, newDecodeError(c.Name(), -1, err)
	}
	if m != n {
		return nil, newDecodeError(c.Name(), -1, ErrLengthMismatch)
	}
	return dst, nil
}

// decodedLen checks every character so that no allocation happens for
// malformed input.
func (c hexCodec) decodedLen(text string) (int, error) {
	if len(text)%2 != 0 {
		return 0, newDecodeError(c.Name(), len(text)-1, ErrOddLength)
	}
	for i := 0; i < len(text); i++ {
		if !isHexDigit(text[i]) {
			return 0, newDecodeError(c.Name(), i, ErrInvalidCharacter)
		}
	}
	return len(text) / 2, nil
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
