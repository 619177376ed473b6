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

package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	base := filepath.Join("/", "var", "nbre")
	assert.Equal(t, filepath.Join(base, "data"), ResolvePath(base, "data"))
	assert.Equal(t, "/tmp/x", ResolvePath(base, "/tmp/x"))
	assert.Equal(t, "", ResolvePath(base, ""))
}

func TestMemUsagePairs(t *testing.T) {
	kv := MemUsage()
	assert.Equal(t, 0, len(kv)%2)
	for i := 0; i < len(kv); i += 2 {
		_, ok := kv[i].(string)
		assert.True(t, ok)
	}
}

func TestDefaultDataDir(t *testing.T) {
	dir := DefaultDataDir()
	if dir != "" {
		assert.Contains(t, []string{".nbre", "Nbre"}, filepath.Base(dir))
	}
}
