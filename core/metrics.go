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

package core

import (
	"fmt"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/yeeco/nbre/log"
)

// chainMeters is shared by every ChainStore of the process, the meters are
// registered once under their global names.
var chainMeters = newChainMetrics()

type chainMetrics struct {
	blockCacheHit  metrics.Meter
	blockCacheMiss metrics.Meter
	blockRead      metrics.Meter
	blockWrite     metrics.Meter
	txRead         metrics.Meter

	accountCacheHit  metrics.Meter
	accountCacheMiss metrics.Meter
}

func newChainMetrics() *chainMetrics {
	metrics.Enabled = true
	return &chainMetrics{
		blockCacheHit:  metrics.NewRegisteredMeter("core/chain/block/cache/hit", nil),
		blockCacheMiss: metrics.NewRegisteredMeter("core/chain/block/cache/miss", nil),
		blockRead:      metrics.NewRegisteredMeter("core/chain/block/read", nil),
		blockWrite:     metrics.NewRegisteredMeter("core/chain/block/write", nil),
		txRead:         metrics.NewRegisteredMeter("core/chain/tx/read", nil),

		accountCacheHit:  metrics.NewRegisteredMeter("core/chain/account/cache/hit", nil),
		accountCacheMiss: metrics.NewRegisteredMeter("core/chain/account/cache/miss", nil),
	}
}

func (cm *chainMetrics) printMetrics() {
	m := make(map[string]string)
	m["block"] = fmt.Sprintf("h%d m%d / read%d write%d",
		cm.blockCacheHit.Count(), cm.blockCacheMiss.Count(), cm.blockRead.Count(), cm.blockWrite.Count())
	m["tx"] = fmt.Sprintf("%d", cm.txRead.Count())
	m["account"] = fmt.Sprintf("h%d m%d", cm.accountCacheHit.Count(), cm.accountCacheMiss.Count())
	log.Info("chain metrics", "metrics", m)
}
