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

// Package codec holds the stateless text encodings used for binary values:
// lowercase hex, Base58 (bitcoin alphabet) and padded standard Base64.
package codec

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Codec converts a byte range to and from a text alphabet.
//
// Encode covers the whole of src, zero bytes included.
// Decode validates and sizes its output from text before filling it, and
// returns a newly allocated slice owned by the caller. An empty text
// decodes to an empty (nil) slice.
type Codec interface {
	Name() string
	Encode(src []byte) string
	Decode(text string) ([]byte, error)
}

var (
	Hex    Codec = hexCodec{}
	Base58 Codec = base58Codec{}
	Base64 Codec = base64Codec{}
)

var registry = map[string]Codec{
	Hex.Name():    Hex,
	Base58.Name(): Base58,
	Base64.Name(): Base64,
}

// Lookup returns the codec registered under name (case insensitive).
func Lookup(name string) (Codec, error) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCodec, "%q", name)
	}
	return c, nil
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
