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
	"github.com/yeeco/nbre/config"
)

var (
	configCommand = cli.Command{
		Name:     "config",
		Usage:    "Manage config",
		Category: "CONFIG COMMANDS",
		Description: `
Manage nbre config, generate a default config file.`,

		Subcommands: []cli.Command{
			{
				Name:      "new",
				Usage:     "Generate a default config file",
				Action:    createDefaultConfig,
				ArgsUsage: "<filename>",
			},
			{
				Name:      "save",
				Usage:     "Save the effective config, flags included",
				Action:    config.MergeFlags(saveConfig),
				ArgsUsage: "<filename>",
			},
		},
	}
)

func saveConfig(ctx *cli.Context) error {
	fileName, err := firstArg(ctx, "config file")
	if err != nil {
		return err
	}
	conf, err := config.GetConfig(ctx)
	if err != nil {
		return err
	}
	if err := config.SaveConfigToFile(conf, fileName); err != nil {
		return err
	}
	fmt.Printf("save config %s\n", fileName)
	return nil
}

func createDefaultConfig(ctx *cli.Context) error {
	fileName, err := firstArg(ctx, "config file")
	if err != nil {
		return err
	}
	if err := config.SaveConfigToFile(config.GetDefaultConfig(), fileName); err != nil {
		return err
	}
	fmt.Printf("create default config %s\n", fileName)
	return nil
}
