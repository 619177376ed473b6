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

package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/yeeco/nbre/common/address"
	"github.com/yeeco/nbre/config"
	"github.com/yeeco/nbre/core"
	"github.com/yeeco/nbre/log"
)

var importCommand = cli.Command{
	Name:      "import",
	Usage:     "Import blocks and accounts from a JSON file",
	ArgsUsage: "<file.json>",
	Category:  "CHAIN COMMANDS",
	Action:    config.MergeFlags(importFile),
	Description: `
The file holds {"blocks": [{"height": 1, "transactions": [...]}], "accounts": [...]}.
Buffers are hex strings, account addresses are raw 26 byte addresses in hex.
A transaction without height takes its block's.`,
}

type importBlock struct {
	Height       uint64                  `json:"height"`
	Transactions []*core.TransactionInfo `json:"transactions"`
}

type importData struct {
	Blocks   []importBlock   `json:"blocks"`
	Accounts []*core.Account `json:"accounts"`
}

func importFile(ctx *cli.Context) error {
	fileName, err := firstArg(ctx, "json file")
	if err != nil {
		return err
	}
	f, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := startNode(ctx)
	if err != nil {
		return err
	}
	defer stopNode(n)
	if n.Config().Storage.Engine == config.EngineMemory {
		log.Warn("Importing into memory storage, data is dropped on exit")
	}

	blocks, accounts, err := importChain(n.ChainStore(), f)
	if err != nil {
		return err
	}
	log.Info("Import done", "file", fileName, "blocks", blocks, "accounts", accounts)
	return nil
}

func importChain(store *core.ChainStore, r io.Reader) (blocks, accounts int, err error) {
	var data importData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return 0, 0, errors.Wrap(err, "decode import file")
	}
	for i, acc := range data.Accounts {
		if err := checkAccount(acc); err != nil {
			return 0, 0, errors.Wrapf(err, "account %d", i)
		}
	}
	if err := store.PutAccounts(data.Accounts); err != nil {
		return 0, 0, err
	}
	accounts = len(data.Accounts)

	for _, b := range data.Blocks {
		for _, tx := range b.Transactions {
			// nil entries are refused by the store
			if tx != nil && tx.Height == 0 {
				tx.Height = b.Height
			}
		}
		if err := store.PutBlockTransactions(b.Height, b.Transactions); err != nil {
			return blocks, accounts, errors.Wrapf(err, "block %d", b.Height)
		}
		blocks++
	}
	return blocks, accounts, nil
}

// checkAccount requires a well formed address whose type byte agrees with
// the recorded account type.
func checkAccount(acc *core.Account) error {
	if acc == nil {
		return core.ErrInvalidAccount
	}
	addr, err := address.ParseFromBytes(acc.Address.Value())
	if err != nil {
		return errors.Wrap(core.ErrInvalidAccount, err.Error())
	}
	if addr.Type() != acc.Type {
		return errors.Wrapf(core.ErrInvalidAccount, "%s is a %s address, recorded as %s",
			addr, addr.Type(), acc.Type)
	}
	return nil
}
