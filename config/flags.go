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

package config

import (
	"github.com/urfave/cli"
)

var (
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}

	DataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "nbre data directory",
	}

	//AppConfig Flag
	LogLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level: trace, debug, info, warn, error",
	}

	LogDirFlag = cli.StringFlag{
		Name:  "logdir",
		Usage: "rotated log file directory",
	}

	//StorageConfig Flag
	StorageEngineFlag = cli.StringFlag{
		Name:  "storage",
		Usage: "storage engine: leveldb or memory",
	}

	//CodecConfig Flag
	CodecFlag = cli.StringFlag{
		Name:  "codec",
		Usage: "default text codec: hex, base58 or base64",
	}

	GlobalFlags = []cli.Flag{
		ConfigFileFlag,
		DataDirFlag,
		LogLevelFlag,
		LogDirFlag,
		StorageEngineFlag,
		CodecFlag,
	}
)

func getAppConfig(ctx *cli.Context, cfg *Config) {
	if cfg.App == nil {
		cfg.App = &AppConfig{}
	}
	if ctx.GlobalIsSet(LogLevelFlag.Name) {
		cfg.App.LogLevel = ctx.GlobalString(LogLevelFlag.Name)
	}
	if ctx.GlobalIsSet(LogDirFlag.Name) {
		cfg.App.LogDir = ctx.GlobalString(LogDirFlag.Name)
	}
}

func getStorageConfig(ctx *cli.Context, cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if ctx.GlobalIsSet(StorageEngineFlag.Name) {
		cfg.Storage.Engine = ctx.GlobalString(StorageEngineFlag.Name)
	}
}

func getCodecConfig(ctx *cli.Context, cfg *Config) {
	if cfg.Codec == nil {
		cfg.Codec = &CodecConfig{}
	}
	if ctx.GlobalIsSet(CodecFlag.Name) {
		cfg.Codec.Default = ctx.GlobalString(CodecFlag.Name)
	}
}

func MergeFlags(action func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, name := range ctx.FlagNames() {
			if ctx.IsSet(name) {
				ctx.GlobalSet(name, ctx.String(name))
			}
		}
		return action(ctx)
	}
}
