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
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/yeeco/nbre/config"
	"github.com/yeeco/nbre/log"
	"github.com/yeeco/nbre/node"
	"github.com/yeeco/nbre/utils/logging"
)

const version = "0.1.0"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "nbre"
	app.Usage = "byte codecs and transaction reader for the nbre chain store"
	app.Version = version
	app.Flags = config.GlobalFlags
	app.Commands = []cli.Command{
		encodeCommand,
		decodeCommand,
		convertCommand,
		txCommand,
		importCommand,
		addressCommand,
		configCommand,
	}
	return app
}

// loadConfig resolves the effective config and applies its logging section.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	conf, err := config.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := logging.SetLevel(conf.App.LogLevel); err != nil {
		return nil, err
	}
	if dir := conf.LogDir(); dir != "" {
		if err := logging.SetFileRotationHooker(dir, conf.App.LogRotationCount); err != nil {
			return nil, err
		}
	}
	return conf, nil
}

// startNode builds and starts a node from the command line config. The
// caller stops it.
func startNode(ctx *cli.Context) (*node.Node, error) {
	conf, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	n, err := node.New(conf)
	if err != nil {
		return nil, err
	}
	if err := n.Start(); err != nil {
		return nil, err
	}
	return n, nil
}

func stopNode(n *node.Node) {
	if err := n.Stop(); err != nil {
		log.Error("Failed to stop node", "err", err)
	}
}

func firstArg(ctx *cli.Context, what string) (string, error) {
	if ctx.NArg() == 0 {
		return "", errors.Errorf("please give a %s arg", what)
	}
	return ctx.Args().First(), nil
}
