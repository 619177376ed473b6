/*
 *  Copyright (C) 2017 gyee authors
 *
 *  This file is part of the gyee library.
 *
 *  The gyee library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The gyee library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with the gyee library.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package node

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/yeeco/nbre/config"
	"github.com/yeeco/nbre/core"
	"github.com/yeeco/nbre/core/txdb"
	"github.com/yeeco/nbre/log"
	"github.com/yeeco/nbre/persistent"
	"github.com/yeeco/nbre/utils"
	"github.com/yeeco/nbre/utils/fdlimit"
)

// leveldb keeps a file descriptor per table file
const wantFdLimit = 2048

var (
	ErrDataDirLocked  = errors.New("node: data dir is used by another process")
	ErrNodeRunning    = errors.New("node: already started")
	ErrNodeNotRunning = errors.New("node: not started")
)

type Node struct {
	config *config.Config

	storage    persistent.Storage
	chainStore *core.ChainStore
	txdb       *txdb.TransactionDB

	lock     sync.RWMutex
	filelock *flock.Flock
	running  bool
}

func New(conf *config.Config) (*Node, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	node := &Node{config: conf}
	if conf.DataDir != "" {
		absdatadir, err := filepath.Abs(conf.DataDir)
		if err != nil {
			return nil, errors.Wrap(err, "node: data dir")
		}
		conf.DataDir = absdatadir
		if err := os.MkdirAll(conf.DataDir, 0700); err != nil {
			return nil, errors.Wrap(err, "node: create data dir")
		}
		node.filelock = flock.New(filepath.Join(conf.DataDir, "LOCK"))
	}
	log.Info("Create new node", "name", conf.Name, "datadir", conf.DataDir, "storage", conf.Storage.Engine)
	return node, nil
}

func (n *Node) Start() (err error) {
	n.lock.Lock()
	defer n.lock.Unlock()
	if n.running {
		return ErrNodeRunning
	}
	log.Info("Node Start...")

	if err = n.lockDataDir(); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			n.unlockDataDir()
		}
	}()

	if n.storage, err = n.openStorage(); err != nil {
		return err
	}
	n.chainStore, err = core.NewChainStore(n.storage,
		n.config.Storage.BlockCacheSize, n.config.Storage.AccountCacheMB)
	if err != nil {
		n.storage.Close()
		n.storage = nil
		return err
	}
	n.txdb = txdb.NewTransactionDB(n.chainStore)
	n.running = true

	height, _ := n.chainStore.LastBlockHeight()
	log.Info("Node Started", "lastBlock", height)
	return nil
}

func (n *Node) Stop() error {
	n.lock.Lock()
	defer n.lock.Unlock()
	if !n.running {
		return ErrNodeNotRunning
	}
	log.Info("Node Stop...")

	n.chainStore.PrintMetrics()
	log.Debug("Memory usage", utils.MemUsage()...)
	err := n.storage.Close()
	n.storage, n.chainStore, n.txdb = nil, nil, nil
	n.running = false

	if uerr := n.unlockDataDir(); uerr != nil && err == nil {
		err = uerr
	}
	return err
}

func (n *Node) openStorage() (persistent.Storage, error) {
	switch n.config.Storage.Engine {
	case config.EngineMemory:
		return persistent.NewMemoryStorage(), nil
	case config.EngineLevelDB:
		if _, err := fdlimit.Ensure(wantFdLimit); err != nil {
			log.Warn("Failed to raise fd limit", "err", err)
		}
		dir := n.config.StorageDir()
		log.Info("Open leveldb storage", "dir", dir, "cacheMB", n.config.Storage.LevelDBCacheMB)
		return persistent.NewLevelStorageWithCache(dir, n.config.Storage.LevelDBCacheMB)
	}
	return nil, errors.Wrapf(config.ErrInvalidConfig, "unknown storage engine %q", n.config.Storage.Engine)
}

func (n *Node) lockDataDir() error {
	if n.filelock == nil {
		return nil
	}
	locked, err := n.filelock.TryLock()
	if err != nil {
		return errors.Wrap(err, "node: lock data dir")
	}
	if !locked {
		return ErrDataDirLocked
	}
	return nil
}

func (n *Node) unlockDataDir() error {
	if n.filelock == nil {
		return nil
	}
	return n.filelock.Unlock()
}

func (n *Node) Config() *config.Config {
	return n.config
}

func (n *Node) ChainStore() *core.ChainStore {
	n.lock.RLock()
	defer n.lock.RUnlock()
	return n.chainStore
}

func (n *Node) TransactionDB() *txdb.TransactionDB {
	n.lock.RLock()
	defer n.lock.RUnlock()
	return n.txdb
}
