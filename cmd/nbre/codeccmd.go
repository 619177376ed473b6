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

	"github.com/urfave/cli"
	"github.com/yeeco/nbre/common"
	"github.com/yeeco/nbre/common/codec"
)

var (
	toFlag = cli.StringFlag{
		Name:  "to",
		Usage: "target codec, the configured default when absent",
	}
	fromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "source codec, the configured default when absent",
	}

	encodeCommand = cli.Command{
		Name:      "encode",
		Usage:     "Encode hex bytes into a text codec",
		ArgsUsage: "<hex>",
		Category:  "CODEC COMMANDS",
		Flags:     []cli.Flag{toFlag},
		Action: func(ctx *cli.Context) error {
			return runConvert(ctx, codec.Hex.Name(), ctx.String(toFlag.Name))
		},
	}

	decodeCommand = cli.Command{
		Name:      "decode",
		Usage:     "Decode text into hex bytes",
		ArgsUsage: "<text>",
		Category:  "CODEC COMMANDS",
		Flags:     []cli.Flag{fromFlag},
		Action: func(ctx *cli.Context) error {
			return runConvert(ctx, ctx.String(fromFlag.Name), codec.Hex.Name())
		},
	}

	convertCommand = cli.Command{
		Name:      "convert",
		Usage:     "Re-encode text from one codec into another",
		ArgsUsage: "<text>",
		Category:  "CODEC COMMANDS",
		Flags:     []cli.Flag{fromFlag, toFlag},
		Action: func(ctx *cli.Context) error {
			return runConvert(ctx, ctx.String(fromFlag.Name), ctx.String(toFlag.Name))
		},
		Description: "Supported codecs: hex, base58, base64.",
	}
)

func runConvert(ctx *cli.Context, from, to string) error {
	// an empty argument is a valid empty buffer
	text := ctx.Args().First()
	if from == "" || to == "" {
		conf, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		if from == "" {
			from = conf.Codec.Default
		}
		if to == "" {
			to = conf.Codec.Default
		}
	}
	out, err := convert(text, from, to)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func convert(text, from, to string) (string, error) {
	src, err := codec.Lookup(from)
	if err != nil {
		return "", err
	}
	dst, err := codec.Lookup(to)
	if err != nil {
		return "", err
	}
	b, err := common.Decode(src, text)
	if err != nil {
		return "", err
	}
	return b.Encode(dst), nil
}
