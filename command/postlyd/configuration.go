// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/configuration"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/rpc/listeners"
	"github.com/bitmark-inc/postly/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultPostlyDatabase   = chain.Postly + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "postlyd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// the configuration file is mapped into this so each read needs a fresh copy
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// AirdropType - faucet limits for test chains
type AirdropType struct {
	Maximum uint64  `gluamapper:"maximum" json:"maximum"`
	Rate    float64 `gluamapper:"rate" json:"rate"`
	Burst   int     `gluamapper:"burst" json:"burst"`
}

// LedgerType - slot clock and faucet
type LedgerType struct {
	SlotInterval string      `gluamapper:"slot_interval" json:"slot_interval"`
	Airdrop      AirdropType `gluamapper:"airdrop" json:"airdrop"`
}

// Configuration - the whole daemon configuration file
type Configuration struct {
	DataDirectory string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                     `gluamapper:"pidfile" json:"pidfile"`
	Chain         string                     `gluamapper:"chain" json:"chain"`
	Program       string                     `gluamapper:"program" json:"program"`
	Database      DatabaseType               `gluamapper:"database" json:"database"`
	Ledger        LedgerType                 `gluamapper:"ledger" json:"ledger"`
	ClientRPC     listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging       logger.Configuration       `gluamapper:"logging" json:"logging"`

	programID    address.Location
	slotInterval time.Duration
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Local,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},

		Ledger: LedgerType{
			SlotInterval: ledger.DefaultSlotInterval.String(),
			Airdrop: AirdropType{
				Maximum: ledger.DefaultAirdropMaximum,
				Rate:    ledger.DefaultAirdropRate,
				Burst:   ledger.DefaultAirdropBurst,
			},
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// if the database file was not specified switch to the
	// default for the chain.  Abort if the chain name is not
	// recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	if "" == options.Database.Name {
		switch options.Chain {
		case chain.Postly:
			options.Database.Name = defaultPostlyDatabase
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		default:
			options.Database.Name = defaultLocalDatabase
		}
	}

	if "" == options.Program {
		return nil, fmt.Errorf("program: is not set, use gen-program-id to create one")
	}
	options.programID, err = address.FromBase58(options.Program)
	if nil != err {
		return nil, fmt.Errorf("program: %q error: %s", options.Program, err)
	}

	options.slotInterval, err = time.ParseDuration(options.Ledger.SlotInterval)
	if nil != err {
		return nil, fmt.Errorf("slot_interval: %q error: %s", options.Ledger.SlotInterval, err)
	}
	if options.slotInterval <= 0 {
		return nil, fmt.Errorf("slot_interval: %q must be positive", options.Ledger.SlotInterval)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must not contain path separator
	// then add the correct directory prefix, file item is first and corresponding directory is second
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, &options.Logging.Directory},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			*f[0] = util.EnsureAbsolute(*f[1], *f[0])
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// ledgerConfiguration - the ledger settings derived from the file
func (c *Configuration) ledgerConfiguration() ledger.Configuration {
	return ledger.Configuration{
		Chain:          c.Chain,
		SlotInterval:   c.slotInterval,
		AirdropMaximum: c.Ledger.Airdrop.Maximum,
		AirdropRate:    c.Ledger.Airdrop.Rate,
		AirdropBurst:   c.Ledger.Airdrop.Burst,
	}
}

// logLevels - only the logging table, for reloading levels on change
type logLevels struct {
	Logging struct {
		Levels map[string]string `gluamapper:"levels"`
	} `gluamapper:"logging"`
}

// read just the logging levels from the configuration file
func getLogLevels(configurationFileName string) (map[string]string, error) {
	levels := logLevels{}
	if err := configuration.ParseConfigurationFile(configurationFileName, &levels); nil != err {
		return nil, err
	}
	if 0 == len(levels.Logging.Levels) {
		return nil, fmt.Errorf("logging: no levels in: %q", configurationFileName)
	}
	return levels.Logging.Levels, nil
}
