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

// Package txdb reads transactions over block height ranges.
package txdb

import (
	"github.com/pkg/errors"
	"github.com/yeeco/nbre/common"
	"github.com/yeeco/nbre/core"
	"github.com/yeeco/nbre/log"
)

// TransactionDB queries a core.BlockchainAPI it does not own.
//
// The BlockchainAPI must outlive the TransactionDB. TransactionDB does no
// locking of its own, concurrent use is only as safe as the API behind it.
type TransactionDB struct {
	blockchain core.BlockchainAPI
}

func NewTransactionDB(blockchain core.BlockchainAPI) *TransactionDB {
	return &TransactionDB{blockchain: blockchain}
}

// ReadTransactionsFromDBWithDuration returns, in block order, the
// transactions of every block in [startBlock, endBlock].
//
// An inverted range, or one past the last block, gives an empty result.
// Heights missing from the chain are skipped. Other storage errors are
// returned as they are.
// The result is shared read-only data.
func (db *TransactionDB) ReadTransactionsFromDBWithDuration(startBlock, endBlock uint64) ([]*core.TransactionInfo, error) {
	txs := make([]*core.TransactionInfo, 0)
	if startBlock > endBlock {
		return txs, nil
	}

	last, err := db.blockchain.LastBlockHeight()
	if errors.Is(err, core.ErrBlockNotFound) {
		return txs, nil
	}
	if err != nil {
		return nil, err
	}
	if startBlock > last {
		return txs, nil
	}
	if endBlock > last {
		endBlock = last
	}

	for height := startBlock; ; height++ {
		blockTxs, err := db.blockchain.BlockTransactions(height)
		switch {
		case errors.Is(err, core.ErrBlockNotFound):
			log.Debug("skip missing block", "height", height)
		case err != nil:
			return nil, err
		default:
			txs = append(txs, blockTxs...)
		}
		// checked here so endBlock == MaxUint64 cannot wrap
		if height == endBlock {
			break
		}
	}
	return txs, nil
}

// ReadAccountInterTransactions is ReadTransactionsFromDBWithDuration
// restricted to transactions whose sender and receiver are both normal
// accounts at the transaction's height. Unknown accounts exclude the
// transaction.
func (db *TransactionDB) ReadAccountInterTransactions(startBlock, endBlock uint64) ([]*core.TransactionInfo, error) {
	txs, err := db.ReadTransactionsFromDBWithDuration(startBlock, endBlock)
	if err != nil {
		return nil, err
	}

	filter := &accountFilter{blockchain: db.blockchain, normal: make(map[accountKey]bool)}
	ret := make([]*core.TransactionInfo, 0, len(txs))
	for _, tx := range txs {
		fromOk, err := filter.isNormal(tx.From, tx.Height)
		if err != nil {
			return nil, err
		}
		if !fromOk {
			continue
		}
		toOk, err := filter.isNormal(tx.To, tx.Height)
		if err != nil {
			return nil, err
		}
		if toOk {
			ret = append(ret, tx)
		}
	}
	return ret, nil
}

// accountFilter memoises account lookups for the duration of one query.
type accountFilter struct {
	blockchain core.BlockchainAPI
	normal     map[accountKey]bool
}

type accountKey struct {
	addr   string
	height uint64
}

func (f *accountFilter) isNormal(addr common.Bytes, height uint64) (bool, error) {
	key := accountKey{addr: string(addr.Value()), height: height}
	if ok, seen := f.normal[key]; seen {
		return ok, nil
	}
	acc, err := f.blockchain.Account(addr, height)
	if errors.Is(err, core.ErrAccountNotFound) {
		f.normal[key] = false
		return false, nil
	}
	if err != nil {
		return false, err
	}
	f.normal[key] = acc.IsNormal()
	return f.normal[key], nil
}
