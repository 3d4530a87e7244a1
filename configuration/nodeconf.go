// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/projectpai/datashare/util"
)

// NodeConfigurationFile - name of the node's own configuration
const NodeConfigurationFile = "paicoin.conf"

// NodeSettings - the RPC settings found in paicoin.conf
type NodeSettings struct {
	Username string
	Password string
	Port     int
	Testnet  bool
}

// DefaultNodeConfigurationPath - paicoin.conf in the node's data
// directory for this OS
func DefaultNodeConfigurationPath() string {
	return filepath.Join(util.NodeDataDirectory(), NodeConfigurationFile)
}

// ReadNodeConfiguration - extract rpcuser, rpcpassword, rpcport and
// testnet from a paicoin.conf
//
// lines are key=value; blank lines, comments and other keys are ignored
func ReadNodeConfiguration(fileName string) (*NodeSettings, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	settings := &NodeSettings{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if 2 != len(parts) {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "rpcuser":
			settings.Username = value
		case "rpcpassword":
			settings.Password = value
		case "rpcport":
			port, err := strconv.Atoi(value)
			if nil == err && port > 0 && port < 65536 {
				settings.Port = port
			}
		case "testnet":
			settings.Testnet = "" != value && "0" != value
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return settings, nil
}
