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
	"github.com/pkg/errors"
	"github.com/yeeco/nbre/common"
)

var (
	ErrBlockNotFound      = errors.New("block not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrTxHeightMismatch   = errors.New("transaction height does not match block")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// BlockchainAPI supplies raw chain data by block height.
type BlockchainAPI interface {
	// LastBlockHeight returns ErrBlockNotFound for an empty chain.
	LastBlockHeight() (uint64, error)

	// BlockTransactions returns the transactions of the block at height in
	// block order, or ErrBlockNotFound.
	BlockTransactions(height uint64) ([]*TransactionInfo, error)

	// Account returns the account at addr as known at height, or
	// ErrAccountNotFound.
	Account(addr common.Bytes, height uint64) (*Account, error)
}
