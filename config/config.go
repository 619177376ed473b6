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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/yeeco/nbre/common/codec"
	"github.com/yeeco/nbre/persistent"
	"github.com/yeeco/nbre/utils"
)

const (
	EngineLevelDB = "leveldb"
	EngineMemory  = "memory"

	DefaultBlockCacheSize = 128
	DefaultAccountCacheMB = 16
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Name    string
	DataDir string
	App     *AppConfig
	Storage *StorageConfig
	Codec   *CodecConfig
}

type AppConfig struct {
	LogLevel         string
	LogDir           string
	LogRotationCount uint
}

//Engine, directory relative to DataDir, cache sizes
type StorageConfig struct {
	Engine         string
	Dir            string
	LevelDBCacheMB int
	BlockCacheSize int
	AccountCacheMB int
}

type CodecConfig struct {
	Default string
}

const defaultConfig = `
Name = "nbre"

[App]
LogLevel = "info"
LogDir = ""
LogRotationCount = 7

[Storage]
Engine = "leveldb"
Dir = "chaindata"
LevelDBCacheMB = 8
BlockCacheSize = 128
AccountCacheMB = 16

[Codec]
Default = "hex"
`

func GetDefaultConfig() *Config {
	var config Config
	if _, err := toml.Decode(defaultConfig, &config); err != nil {
		panic(err)
	}
	config.DataDir = utils.DefaultDataDir()
	return &config
}

// LoadConfigFromFile overlays the file content on the default config.
func LoadConfigFromFile(filename string) (*Config, error) {
	config := GetDefaultConfig()
	if _, err := toml.DecodeFile(filename, config); err != nil {
		return nil, errors.Wrapf(err, "load config %s", filename)
	}
	config.fill()
	return config, nil
}

func SaveConfigToFile(config *Config, filename string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return errors.Wrap(err, "encode config")
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errors.Wrapf(err, "create config folder %s", dir)
		}
	}
	return ioutil.WriteFile(filename, buf.Bytes(), 0644)
}

func GetConfig(ctx *cli.Context) (*Config, error) {
	config := GetDefaultConfig()
	if ctx.GlobalIsSet(ConfigFileFlag.Name) {
		var err error
		if config, err = LoadConfigFromFile(ctx.GlobalString(ConfigFileFlag.Name)); err != nil {
			return nil, err
		}
	}
	getAppConfig(ctx, config)
	getStorageConfig(ctx, config)
	getCodecConfig(ctx, config)
	if ctx.GlobalIsSet(DataDirFlag.Name) {
		config.DataDir = ctx.GlobalString(DataDirFlag.Name)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	c.fill()
	switch c.Storage.Engine {
	case EngineLevelDB:
		if c.DataDir == "" && !filepath.IsAbs(c.Storage.Dir) {
			return errors.Wrap(ErrInvalidConfig, "no data dir for leveldb storage")
		}
	case EngineMemory:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown storage engine %q", c.Storage.Engine)
	}
	if c.Storage.LevelDBCacheMB <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "leveldb cache size %d", c.Storage.LevelDBCacheMB)
	}
	if c.Storage.BlockCacheSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "block cache size %d", c.Storage.BlockCacheSize)
	}
	if c.Storage.AccountCacheMB <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "account cache size %d", c.Storage.AccountCacheMB)
	}
	if _, err := codec.Lookup(c.Codec.Default); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// StorageDir is the resolved leveldb directory.
func (c *Config) StorageDir() string {
	return utils.ResolvePath(c.DataDir, c.Storage.Dir)
}

// LogDir is the resolved log directory, empty when file logging is off.
func (c *Config) LogDir() string {
	return utils.ResolvePath(c.DataDir, c.App.LogDir)
}

func (c *Config) fill() {
	if c.App == nil {
		c.App = &AppConfig{}
	}
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Codec == nil {
		c.Codec = &CodecConfig{}
	}
	// a partial table in a config file replaces the whole default table
	if c.Storage.Engine == "" {
		c.Storage.Engine = EngineLevelDB
	}
	if c.Storage.LevelDBCacheMB == 0 {
		c.Storage.LevelDBCacheMB = persistent.DefaultCacheMiB
	}
	if c.Storage.BlockCacheSize == 0 {
		c.Storage.BlockCacheSize = DefaultBlockCacheSize
	}
	if c.Storage.AccountCacheMB == 0 {
		c.Storage.AccountCacheMB = DefaultAccountCacheMB
	}
	if c.Codec.Default == "" {
		c.Codec.Default = codec.Hex.Name()
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	c.Storage.Engine = strings.ToLower(strings.TrimSpace(c.Storage.Engine))
}
