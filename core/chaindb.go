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
	"encoding/binary"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/yeeco/nbre/common"
	"github.com/yeeco/nbre/persistent"
)

// Key / KeyPrefix for chain data used in persistent.Storage
const (
	KeyLastBlock = "LastBlock"

	KeyPrefixBlockTxs = "blkTx-" // blockNum => encoded []*TransactionInfo
	KeyPrefixAccount  = "acc-"   // address => encoded Account
)

func getLastBlockHeight(getter persistent.Getter) (uint64, error) {
	enc, err := getter.Get(keyLastBlock())
	if err == persistent.ErrKeyNotFound {
		return 0, ErrBlockNotFound
	}
	if err != nil {
		return 0, err
	}
	if len(enc) != 8 {
		return 0, errors.Errorf("corrupted %s entry, %d bytes", KeyLastBlock, len(enc))
	}
	return binary.BigEndian.Uint64(enc), nil
}

func putLastBlockHeight(putter persistent.Putter, height uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, height)
	return putter.Put(keyLastBlock(), buf)
}

func getBlockTransactions(getter persistent.Getter, height uint64) ([]*TransactionInfo, error) {
	enc, err := getter.Get(keyBlockTxs(height))
	if err == persistent.ErrKeyNotFound {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, err
	}
	var txs []*TransactionInfo
	if err := rlp.DecodeBytes(enc, &txs); err != nil {
		return nil, errors.Wrapf(err, "decode block %d transactions", height)
	}
	return txs, nil
}

func putBlockTransactions(putter persistent.Putter, height uint64, txs []*TransactionInfo) error {
	if txs == nil {
		txs = []*TransactionInfo{}
	}
	enc, err := rlp.EncodeToBytes(txs)
	if err != nil {
		return errors.Wrapf(err, "encode block %d transactions", height)
	}
	return putter.Put(keyBlockTxs(height), enc)
}

func getAccount(getter persistent.Getter, addr common.Bytes) (*Account, error) {
	enc, err := getter.Get(addr.Value())
	if err == persistent.ErrKeyNotFound {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeAccount(enc)
}

func encodeAccount(acc *Account) ([]byte, error) {
	enc, err := rlp.EncodeToBytes(acc)
	if err != nil {
		return nil, errors.Wrapf(err, "encode account %s", acc.Address.Base58())
	}
	return enc, nil
}

func decodeAccount(enc []byte) (*Account, error) {
	acc := new(Account)
	if err := rlp.DecodeBytes(enc, acc); err != nil {
		return nil, errors.Wrap(err, "decode account")
	}
	return acc, nil
}

func keyLastBlock() []byte {
	return []byte(KeyLastBlock)
}

func keyBlockTxs(num uint64) []byte {
	buf := append([]byte(KeyPrefixBlockTxs), make([]byte, 8)...)
	binary.BigEndian.PutUint64(buf[len(buf)-8:], num)
	return buf
}
