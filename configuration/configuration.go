// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/projectpai/datashare/chain"
	"github.com/projectpai/datashare/datastore"
	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/satoshi"
	"github.com/projectpai/datashare/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "~/.paicoin-data"

	defaultNodeHost      = "127.0.0.1"
	defaultNodeTimeout   = 10 // seconds
	defaultNodeRateLimit = 50 // requests/second
	defaultNodeRateBurst = 100

	defaultFee  = "0.0001"
	defaultDust = "0.00001"

	defaultLogDirectory = "log"
	defaultLogFile      = "paicoin-data.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// NodeConfiguration - access to the paicoind JSON-RPC
type NodeConfiguration struct {
	URL           string  `gluamapper:"url" json:"url"`
	Username      string  `gluamapper:"username" json:"username"`
	Password      string  `gluamapper:"password" json:"-"`
	Certificate   string  `gluamapper:"certificate" json:"certificate"`
	PrivateKey    string  `gluamapper:"private_key" json:"private_key"`
	CACertificate string  `gluamapper:"ca_certificate" json:"ca_certificate"`
	PaicoinConf   string  `gluamapper:"paicoin_conf" json:"paicoin_conf"`
	Timeout       int     `gluamapper:"timeout" json:"timeout"`
	RateLimit     float64 `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst     int     `gluamapper:"rate_burst" json:"rate_burst"`
}

// FeeConfiguration - decimal coin strings to avoid rounding errors
type FeeConfiguration struct {
	Fee             string `gluamapper:"fee" json:"fee"`
	Dust            string `gluamapper:"dust" json:"dust"`
	ChunkSize       int    `gluamapper:"chunk_size" json:"chunk_size"`
	MaximumDataSize int    `gluamapper:"maximum_data_size" json:"maximum_data_size"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Node          NodeConfiguration    `gluamapper:"node" json:"node"`
	Fees          FeeConfiguration     `gluamapper:"fees" json:"fees"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
//
// an empty file name uses the defaults; testnet forces the testing
// chain
func GetConfiguration(configurationFileName string, testnet bool) (*Configuration, error) {

	home, err := os.UserHomeDir()
	if nil != err {
		home = "."
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Paicoin,

		Node: NodeConfiguration{
			Timeout:   defaultNodeTimeout,
			RateLimit: defaultNodeRateLimit,
			RateBurst: defaultNodeRateBurst,
		},

		Fees: FeeConfiguration{
			Fee:             defaultFee,
			Dust:            defaultDust,
			ChunkSize:       datastore.DefaultChunkSize,
			MaximumDataSize: datastore.DefaultMaximumDataSize,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	// absolute path to the main directory
	configurationDirectory := ""
	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		configurationDirectory, _ = filepath.Split(configurationFileName)

		if err := ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if testnet {
		options.Chain = chain.Testing
	}
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidChain, options.Chain)
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "":
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	case ".":
		if "" == configurationDirectory {
			return nil, fmt.Errorf("path: %q needs a configuration file", options.DataDirectory)
		}
		options.DataDirectory = configurationDirectory // same directory as the configuration file
	default:
		options.DataDirectory = util.ExpandHome(home, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	if err := os.MkdirAll(options.DataDirectory, 0700); nil != err {
		return nil, err
	}
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.Node.Certificate,
		&options.Node.PrivateKey,
		&options.Node.CACertificate,
		&options.Node.PaicoinConf,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, util.ExpandHome(home, *f))
		}
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	if err := options.resolveNode(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// fill in credentials and URL, from paicoin.conf if necessary
func (options *Configuration) resolveNode() error {
	node := &options.Node

	port := 0
	if "" == node.Username || "" == node.Password {
		fileName := node.PaicoinConf
		if "" == fileName {
			fileName = DefaultNodeConfigurationPath()
		}
		if !util.EnsureFileExists(fileName) {
			return fmt.Errorf("%w: node configuration: %q not found", fault.ErrMissingCredentials, fileName)
		}
		settings, err := ReadNodeConfiguration(fileName)
		if nil != err {
			return fmt.Errorf("%w: %s", fault.ErrMissingCredentials, err)
		}
		if "" == node.Username {
			node.Username = settings.Username
		}
		if "" == node.Password {
			node.Password = settings.Password
		}
		if settings.Testnet {
			options.Chain = chain.Testing
		}
		port = settings.Port
	}

	if "" == node.Username || "" == node.Password {
		return fault.ErrMissingCredentials
	}

	if "" == node.URL {
		if 0 == port {
			port = chain.DefaultRPCPort(options.Chain)
		}
		node.URL = fmt.Sprintf("http://%s:%d/", defaultNodeHost, port)
	}
	return nil
}

// Parameters - fee and size settings for the data store
func (options *Configuration) Parameters() (datastore.Parameters, error) {
	fee := satoshi.FromByteString([]byte(options.Fees.Fee))
	dust := satoshi.FromByteString([]byte(options.Fees.Dust))
	if 0 == fee {
		return datastore.Parameters{}, fault.ErrInvalidAmount
	}
	p := datastore.Parameters{
		Fee:             fee,
		Dust:            dust,
		ChunkSize:       options.Fees.ChunkSize,
		MaximumDataSize: options.Fees.MaximumDataSize,
	}
	return p, nil
}
