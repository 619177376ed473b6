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
	"sync"
	"time"

	"github.com/allegro/bigcache"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/yeeco/nbre/common"
	"github.com/yeeco/nbre/log"
	"github.com/yeeco/nbre/persistent"
)

var ErrChainStoreNoStorage = errors.New("must provide chain storage")

const (
	DefaultBlockCacheSize = 128
	DefaultAccountCacheMB = 16

	accountCacheLife = 10 * time.Minute
)

// ChainStore is a BlockchainAPI backed by a persistent.Storage.
//
// The storage must outlive the store. Reads may run concurrently, writes
// are serialised by the store.
type ChainStore struct {
	storage  persistent.Storage
	accounts persistent.Storage

	blockCache   *lru.Cache // height => []*TransactionInfo
	accountCache *bigcache.BigCache

	metrics *chainMetrics
	lock    sync.Mutex
}

// NewChainStore wraps storage. Cache sizes <= 0 select the defaults.
func NewChainStore(storage persistent.Storage, blockCacheSize, accountCacheMB int) (*ChainStore, error) {
	if storage == nil {
		return nil, ErrChainStoreNoStorage
	}
	if blockCacheSize <= 0 {
		blockCacheSize = DefaultBlockCacheSize
	}
	if accountCacheMB <= 0 {
		accountCacheMB = DefaultAccountCacheMB
	}

	blockCache, err := lru.New(blockCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "block cache")
	}

	cacheConfig := bigcache.DefaultConfig(accountCacheLife)
	cacheConfig.Shards = 16
	cacheConfig.MaxEntriesInWindow = 1024
	cacheConfig.MaxEntrySize = 128
	cacheConfig.HardMaxCacheSize = accountCacheMB
	accountCache, err := bigcache.NewBigCache(cacheConfig)
	if err != nil {
		return nil, errors.Wrap(err, "account cache")
	}

	log.Debug("Create chain store", "blockCache", blockCacheSize, "accountCacheMB", accountCacheMB)
	return &ChainStore{
		storage:      storage,
		accounts:     persistent.NewTable(storage, KeyPrefixAccount),
		blockCache:   blockCache,
		accountCache: accountCache,
		metrics:      chainMeters,
	}, nil
}

func (cs *ChainStore) LastBlockHeight() (uint64, error) {
	return getLastBlockHeight(cs.storage)
}

// BlockTransactions returns copies, callers may keep them.
func (cs *ChainStore) BlockTransactions(height uint64) ([]*TransactionInfo, error) {
	cs.metrics.blockRead.Mark(1)
	if cached, ok := cs.blockCache.Get(height); ok {
		cs.metrics.blockCacheHit.Mark(1)
		txs := cached.([]*TransactionInfo)
		cs.metrics.txRead.Mark(int64(len(txs)))
		return copyTransactions(txs), nil
	}
	cs.metrics.blockCacheMiss.Mark(1)

	txs, err := getBlockTransactions(cs.storage, height)
	if err != nil {
		return nil, err
	}
	cs.blockCache.Add(height, txs)
	cs.metrics.txRead.Mark(int64(len(txs)))
	return copyTransactions(txs), nil
}

// Account returns the recorded account for addr. An account recorded
// after height did not exist yet and is reported as ErrAccountNotFound.
func (cs *ChainStore) Account(addr common.Bytes, height uint64) (*Account, error) {
	if addr.IsEmpty() {
		return nil, ErrAccountNotFound
	}
	key := addr.Hex()

	var acc *Account
	if enc, err := cs.accountCache.Get(key); err == nil {
		cs.metrics.accountCacheHit.Mark(1)
		if acc, err = decodeAccount(enc); err != nil {
			return nil, err
		}
	} else {
		cs.metrics.accountCacheMiss.Mark(1)
		if acc, err = getAccount(cs.accounts, addr); err != nil {
			return nil, err
		}
		if enc, err := encodeAccount(acc); err == nil {
			if err := cs.accountCache.Set(key, enc); err != nil {
				log.Debug("account cache set", "address", key, "err", err)
			}
		}
	}

	if acc.Height > height {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

// PutBlockTransactions stores the transactions of the block at height,
// replacing any previous content, and advances the last block height.
func (cs *ChainStore) PutBlockTransactions(height uint64, txs []*TransactionInfo) error {
	for i, tx := range txs {
		if tx == nil {
			return errors.Wrapf(ErrInvalidTransaction, "nil tx %d in block %d", i, height)
		}
		if tx.Height != height {
			return errors.Wrapf(ErrTxHeightMismatch, "tx %s at %d in block %d", tx.Hash.Hex(), tx.Height, height)
		}
	}

	cs.lock.Lock()
	defer cs.lock.Unlock()

	batch := cs.storage.NewBatch()
	if err := putBlockTransactions(batch, height, txs); err != nil {
		return err
	}
	last, err := getLastBlockHeight(cs.storage)
	if err != nil && err != ErrBlockNotFound {
		return err
	}
	if err == ErrBlockNotFound || height > last {
		if err := putLastBlockHeight(batch, height); err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}

	cs.blockCache.Remove(height)
	cs.metrics.blockWrite.Mark(1)
	log.Debug("Put block transactions", "height", height, "txs", len(txs))
	return nil
}

// PutAccount records acc, replacing the previous record of its address.
func (cs *ChainStore) PutAccount(acc *Account) error {
	if acc == nil || acc.Address.IsEmpty() {
		return ErrInvalidAccount
	}
	enc, err := encodeAccount(acc)
	if err != nil {
		return err
	}

	cs.lock.Lock()
	defer cs.lock.Unlock()

	if err := cs.accounts.Put(acc.Address.Value(), enc); err != nil {
		return err
	}
	cs.evictAccount(acc.Address)
	return nil
}

// PutAccounts records accs in batches of about persistent.IdealBatchSize.
// On error the accounts of the batches already written stay recorded.
func (cs *ChainStore) PutAccounts(accs []*Account) error {
	encs := make([][]byte, len(accs))
	for i, acc := range accs {
		if acc == nil || acc.Address.IsEmpty() {
			return errors.Wrapf(ErrInvalidAccount, "account %d", i)
		}
		enc, err := encodeAccount(acc)
		if err != nil {
			return err
		}
		encs[i] = enc
	}

	cs.lock.Lock()
	defer cs.lock.Unlock()

	batch := cs.accounts.NewBatch()
	pending := 0
	flush := func(end int) error {
		if err := batch.Write(); err != nil {
			return err
		}
		for _, acc := range accs[pending:end] {
			cs.evictAccount(acc.Address)
		}
		log.Debug("Put accounts", "count", end-pending, "bytes", batch.ValueSize())
		batch.Reset()
		pending = end
		return nil
	}
	for i, acc := range accs {
		if err := batch.Put(acc.Address.Value(), encs[i]); err != nil {
			return err
		}
		if batch.ValueSize() >= persistent.IdealBatchSize {
			if err := flush(i + 1); err != nil {
				return err
			}
		}
	}
	if pending < len(accs) {
		return flush(len(accs))
	}
	return nil
}

func (cs *ChainStore) evictAccount(addr common.Bytes) {
	key := addr.Hex()
	if err := cs.accountCache.Delete(key); err != nil && err != bigcache.ErrEntryNotFound {
		log.Debug("account cache delete", "address", key, "err", err)
	}
}

// PrintMetrics logs the cache and read counters.
func (cs *ChainStore) PrintMetrics() {
	cs.metrics.printMetrics()
}
