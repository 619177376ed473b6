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
	"math"
	"os"

	"github.com/urfave/cli"
	"github.com/yeeco/nbre/config"
	"github.com/yeeco/nbre/core"
)

var (
	startFlag = cli.Uint64Flag{
		Name:  "start",
		Usage: "first block height",
	}
	endFlag = cli.Uint64Flag{
		Name:  "end",
		Usage: "last block height, the chain head when absent",
		Value: math.MaxUint64,
	}
	interFlag = cli.BoolFlag{
		Name:  "inter",
		Usage: "only transactions between two normal accounts",
	}

	txCommand = cli.Command{
		Name:     "tx",
		Usage:    "Read stored transactions",
		Category: "CHAIN COMMANDS",

		Subcommands: []cli.Command{
			{
				Name:        "range",
				Usage:       "Print the transactions of a block height range",
				Flags:       []cli.Flag{startFlag, endFlag, interFlag},
				Action:      config.MergeFlags(txRange),
				Description: "Transactions are printed one JSON object per line, in block order.",
			},
		},
	}
)

func txRange(ctx *cli.Context) error {
	n, err := startNode(ctx)
	if err != nil {
		return err
	}
	defer stopNode(n)

	start, end := ctx.Uint64(startFlag.Name), ctx.Uint64(endFlag.Name)
	var txs []*core.TransactionInfo
	if ctx.Bool(interFlag.Name) {
		txs, err = n.TransactionDB().ReadAccountInterTransactions(start, end)
	} else {
		txs, err = n.TransactionDB().ReadTransactionsFromDBWithDuration(start, end)
	}
	if err != nil {
		return err
	}
	return writeTransactions(os.Stdout, txs)
}

func writeTransactions(w io.Writer, txs []*core.TransactionInfo) error {
	enc := json.NewEncoder(w)
	for _, tx := range txs {
		if err := enc.Encode(tx); err != nil {
			return err
		}
	}
	return nil
}
