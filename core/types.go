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
	"math/big"

	"github.com/yeeco/nbre/common"
	"github.com/yeeco/nbre/common/address"
)

// Transaction execution status
const (
	TxStatusFailed uint32 = iota
	TxStatusSuccess
	TxStatusPending
)

// Transaction types
const (
	TxTypeBinary   = "binary"
	TxTypeDeploy   = "deploy"
	TxTypeCall     = "call"
	TxTypeProtocol = "protocol"
)

// TransactionInfo is the stored summary of an executed transaction.
//
// Values handed out by a BlockchainAPI are not to be modified.
type TransactionInfo struct {
	Height    uint64       `json:"height"`
	Status    uint32       `json:"status"`
	From      common.Bytes `json:"from"`
	To        common.Bytes `json:"to"`
	TxType    string       `json:"type"`
	Value     *big.Int     `json:"value"`
	GasPrice  *big.Int     `json:"gasPrice"`
	GasUsed   *big.Int     `json:"gasUsed"`
	Timestamp uint64       `json:"timestamp"`
	Hash      common.Hash  `json:"hash"`
}

// Copy returns a deep copy of tx.
func (tx *TransactionInfo) Copy() *TransactionInfo {
	cpy := *tx
	cpy.From = tx.From.Copy()
	cpy.To = tx.To.Copy()
	cpy.Hash = tx.Hash.Copy()
	cpy.Value = copyBig(tx.Value)
	cpy.GasPrice = copyBig(tx.GasPrice)
	cpy.GasUsed = copyBig(tx.GasUsed)
	return &cpy
}

// Account is the state of an address as recorded at Height.
type Account struct {
	Address common.Bytes        `json:"address"`
	Type    address.AddressType `json:"type"`
	Balance *big.Int            `json:"balance"`
	Height  uint64              `json:"height"`
}

func (a *Account) IsNormal() bool {
	return a.Type == address.AddressTypeAccount
}

func copyBig(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

func copyTransactions(txs []*TransactionInfo) []*TransactionInfo {
	cpy := make([]*TransactionInfo, len(txs))
	for i, tx := range txs {
		cpy[i] = tx.Copy()
	}
	return cpy
}
