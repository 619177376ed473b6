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
	"runtime"
)

// MemUsage returns key / value pairs describing the heap, ready to be
// passed as log context.
func MemUsage() []interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	return []interface{}{
		"allocMiB", bToMb(m.Alloc),
		"totalAllocMiB", bToMb(m.TotalAlloc),
		"sysMiB", bToMb(m.Sys),
		"heapObjects", m.HeapObjects,
		"numGC", m.NumGC,
		"goroutines", runtime.NumGoroutine(),
	}
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
