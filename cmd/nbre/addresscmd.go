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
	"fmt"
	"strconv"

	"github.com/urfave/cli"
	"github.com/yeeco/nbre/common"
	"github.com/yeeco/nbre/common/address"
)

var (
	addressCommand = cli.Command{
		Name:     "address",
		Usage:    "Derive and inspect addresses",
		Category: "ADDRESS COMMANDS",

		Subcommands: []cli.Command{
			{
				Name:      "new",
				Usage:     "Derive the account address of an uncompressed public key",
				ArgsUsage: "<public key hex>",
				Action:    addressNew,
			},
			{
				Name:      "contract",
				Usage:     "Derive the address of a contract deployed by an account",
				ArgsUsage: "<sender address> <nonce>",
				Action:    addressContract,
			},
			{
				Name:      "inspect",
				Usage:     "Check an address and print its type and raw hex",
				ArgsUsage: "<address>",
				Action:    addressInspect,
			},
		},
	}
)

func addressNew(ctx *cli.Context) error {
	arg, err := firstArg(ctx, "public key")
	if err != nil {
		return err
	}
	pubkey, err := common.FromHex(arg)
	if err != nil {
		return err
	}
	addr, err := address.NewAddressFromPublicKey(pubkey.Value())
	if err != nil {
		return err
	}
	fmt.Println(describeAddress(addr))
	return nil
}

func addressContract(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.ShowSubcommandHelp(ctx)
	}
	addr, err := contractAddress(ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Println(describeAddress(addr))
	return nil
}

func addressInspect(ctx *cli.Context) error {
	arg, err := firstArg(ctx, "address")
	if err != nil {
		return err
	}
	addr, err := address.Parse(arg)
	if err != nil {
		return err
	}
	fmt.Println(describeAddress(addr))
	return nil
}

func contractAddress(sender, nonce string) (*address.Address, error) {
	from, err := address.Parse(sender)
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseUint(nonce, 10, 64)
	if err != nil {
		return nil, err
	}
	return address.NewContractAddress(from, n)
}

func describeAddress(addr *address.Address) string {
	return fmt.Sprintf("%s %s %s", addr, addr.Type(), addr.Bytes().Hex())
}
