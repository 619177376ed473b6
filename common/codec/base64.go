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
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

// strict rejects non-zero trailing bits. It still skips CR and LF, which
// Decode refuses first, so every accepted text is the one Encode would
// produce.
var strict = base64.StdEncoding.Strict()

type base64Codec struct{}

func (base64Codec) Name() string { return "base64" }

func (base64Codec) Encode(src []byte) string {
	return base64.StdEncoding.EncodeToString(src)
}

func (c base64Codec) Decode(text string) ([]byte, error) {
	if len(text) == 0 {
		return nil, nil
	}
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return nil, newDecodeError(c.Name(), i, ErrInvalidCharacter)
	}
	dst, err := strict.DecodeString(text)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, newDecodeError(c.Name(), int(corrupt), ErrMalformed)
		}
		return nil, newDecodeError(c.Name(), -1, err)
	}
	if len(dst) == 0 {
		return nil, nil
	}
	return dst, nil
}
