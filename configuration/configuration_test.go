// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projectpai/datashare/chain"
	"github.com/projectpai/datashare/configuration"
	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/satoshi"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write: %q  error: %s", fileName, err)
	}
	return fileName
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	return dir
}

func TestParseConfigurationFile(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "test.conf", `
local M = {}
M.chain = "Testing"
M.node = {
    url = "http://10.0.0.1:1234/",
    username = "user",
    password = "pass" .. "word",
    rate_limit = 5,
}
M.fees = {
    fee = "0.0002",
    chunk_size = 40,
}
return M
`)

	var options configuration.Configuration
	err := configuration.ParseConfigurationFile(fileName, &options)
	if !assert.Nil(t, err, "parse error") {
		return
	}
	assert.Equal(t, "Testing", options.Chain, "chain")
	assert.Equal(t, "http://10.0.0.1:1234/", options.Node.URL, "url")
	assert.Equal(t, "password", options.Node.Password, "computed password")
	assert.Equal(t, float64(5), options.Node.RateLimit, "rate limit")
	assert.Equal(t, "0.0002", options.Fees.Fee, "fee")
	assert.Equal(t, 40, options.Fees.ChunkSize, "chunk size")

	err = configuration.ParseConfigurationFile(fileName, options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &options)
	assert.NotNil(t, err, "missing file")
}

func TestGetConfiguration(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "paicoin-data.conf", `
return {
    data_directory = ".",
    node = {
        username = "alice",
        password = "secret",
    },
    fees = {
        fee = "0.0003",
        dust = "0.00002",
    },
}
`)

	options, err := configuration.GetConfiguration(fileName, false)
	if !assert.Nil(t, err, "configuration error") {
		return
	}
	assert.Equal(t, chain.Paicoin, options.Chain, "chain")
	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "http://127.0.0.1:8566/", options.Node.URL, "default url")

	parameters, err := options.Parameters()
	assert.Nil(t, err, "parameters error")
	assert.Equal(t, satoshi.Amount(30000), parameters.Fee, "fee")
	assert.Equal(t, satoshi.Amount(2000), parameters.Dust, "dust")
	assert.Equal(t, 80, parameters.ChunkSize, "chunk size")

	options, err = configuration.GetConfiguration(fileName, true)
	if assert.Nil(t, err, "testnet error") {
		assert.Equal(t, chain.Testing, options.Chain, "testnet chain")
		assert.Equal(t, "http://127.0.0.1:18566/", options.Node.URL, "testnet url")
	}
}

func TestGetConfigurationFromNode(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	nodeConf := writeFile(t, dir, "paicoin.conf", `
# node settings
server=1
rpcuser=bob
rpcpassword = p=ss
rpcport=19000
testnet=1
`)
	fileName := writeFile(t, dir, "paicoin-data.conf", `
return {
    data_directory = ".",
    node = {
        paicoin_conf = "paicoin.conf",
    },
}
`)

	options, err := configuration.GetConfiguration(fileName, false)
	if !assert.Nil(t, err, "configuration error") {
		return
	}
	assert.Equal(t, nodeConf, options.Node.PaicoinConf, "node configuration path")
	assert.Equal(t, "bob", options.Node.Username, "username")
	assert.Equal(t, "p=ss", options.Node.Password, "password")
	assert.Equal(t, chain.Testing, options.Chain, "chain")
	assert.Equal(t, "http://127.0.0.1:19000/", options.Node.URL, "url")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	badChain := writeFile(t, dir, "chain.conf", `return { data_directory = ".", chain = "bitcoin" }`)
	_, err := configuration.GetConfiguration(badChain, false)
	assert.True(t, errors.Is(err, fault.ErrInvalidChain), "error: %v", err)

	noCredentials := writeFile(t, dir, "credentials.conf", `
return {
    data_directory = ".",
    node = { paicoin_conf = "absent.conf" },
}
`)
	_, err = configuration.GetConfiguration(noCredentials, false)
	assert.True(t, errors.Is(err, fault.ErrMissingCredentials), "error: %v", err)
	if assert.NotNil(t, err, "absent node configuration accepted") {
		assert.Contains(t, err.Error(), filepath.Join(dir, "absent.conf"), "error names the file")
		assert.Contains(t, err.Error(), "not found", "error reason")
	}

	directoryConf := writeFile(t, dir, "directory.conf", `
return {
    data_directory = ".",
    node = { paicoin_conf = "." },
}
`)
	_, err = configuration.GetConfiguration(directoryConf, false)
	assert.True(t, errors.Is(err, fault.ErrMissingCredentials), "error: %v", err)

	badLog := writeFile(t, dir, "log.conf", `
return {
    data_directory = ".",
    node = { username = "u", password = "p" },
    logging = { file = "sub/x.log" },
}
`)
	_, err = configuration.GetConfiguration(badLog, false)
	assert.NotNil(t, err, "log file with a path accepted")
}

func TestReadNodeConfiguration(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "paicoin.conf", "rpcuser=carol\nrpcport=not-a-number\ntestnet=0\nrpcpassword=\n")

	settings, err := configuration.ReadNodeConfiguration(fileName)
	if !assert.Nil(t, err, "read error") {
		return
	}
	assert.Equal(t, "carol", settings.Username, "username")
	assert.Equal(t, "", settings.Password, "password")
	assert.Equal(t, 0, settings.Port, "port")
	assert.False(t, settings.Testnet, "testnet")

	_, err = configuration.ReadNodeConfiguration(filepath.Join(dir, "missing"))
	assert.NotNil(t, err, "missing file")
}
