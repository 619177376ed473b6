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
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrOddLength        = errors.New("odd length")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrMalformed        = errors.New("malformed input")
	ErrLengthMismatch   = errors.New("decoded length mismatch")
	ErrUnknownCodec     = errors.New("unknown codec")
)

// DecodeError reports malformed text handed to a Decode call.
// Offset is the index of the offending character, or -1 when the
// failure is not tied to a single position.
type DecodeError struct {
	Codec  string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: invalid input at offset %d: %v", e.Codec, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: invalid input: %v", e.Codec, e.Err)
}

func (e *DecodeError) Cause() error { return e.Err }

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes every DecodeError match ErrInvalidInput.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidInput
}

func newDecodeError(codec string, offset int, err error) error {
	return &DecodeError{Codec: codec, Offset: offset, Err: err}
}
