// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paicoind

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/projectpai/datashare/configuration"
	"github.com/projectpai/datashare/fault"
)

// global constants
const (
	blockCacheExpiration = 10 * time.Minute
	blockCacheCleanup    = 20 * time.Minute
)

// RPC error codes that mean the item does not exist
const (
	rpcInvalidAddressOrKey = -5
	rpcInvalidParameter    = -8
)

// Client - a connection to one node
type Client struct {
	sync.Mutex // serialise calls

	log *logger.L

	// connection to the node
	client *http.Client
	url    string

	// authentication
	username string
	password string

	// identifier for the RPC
	id uint64

	limiter *rate.Limiter

	// raw blocks by hash
	blocks *cache.Cache
}

// New - create a client from the node configuration
func New(log *logger.L, node configuration.NodeConfiguration) (*Client, error) {

	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if "" == node.Username || "" == node.Password {
		return nil, fault.ErrMissingCredentials
	}

	timeout := time.Duration(node.Timeout) * time.Second
	httpClient := &http.Client{
		Timeout: timeout,
	}

	if "" != node.Certificate {
		keyPair, err := tls.LoadX509KeyPair(node.Certificate, node.PrivateKey)
		if nil != err {
			return nil, err
		}

		certificatePool := x509.NewCertPool()

		data, err := ioutil.ReadFile(node.CACertificate)
		if err != nil {
			log.Criticalf("failed to read certificate from: %q", node.CACertificate)
			return nil, err
		}

		if !certificatePool.AppendCertsFromPEM(data) {
			log.Criticalf("failed to parse certificate from: %q", node.CACertificate)
			return nil, fault.ErrInvalidCertificate
		}

		tlsConfiguration := &tls.Config{
			Certificates:             []tls.Certificate{keyPair},
			RootCAs:                  certificatePool,
			InsecureSkipVerify:       false,
			PreferServerCipherSuites: true,
			MinVersion:               tls.VersionTLS12,
		}

		httpClient.Transport = &http.Transport{
			TLSClientConfig: tlsConfiguration,
		}
	}

	limit := rate.Limit(node.RateLimit)
	if node.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := node.RateBurst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		log:      log,
		client:   httpClient,
		url:      node.URL,
		username: node.Username,
		password: node.Password,
		id:       0,
		limiter:  rate.NewLimiter(limit, burst),
		blocks:   cache.New(blockCacheExpiration, blockCacheCleanup),
	}
	log.Infof("node: %s  user: %s", c.url, c.username)
	return c, nil
}

// for encoding the RPC arguments
type rpcArguments struct {
	Id     uint64        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

// the RPC error response
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// for decoding the RPC reply
type rpcReply struct {
	Id     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// high level call
// the HTTP RPC cannot interleave calls and responses
func (c *Client) call(method string, params []interface{}, reply interface{}) error {

	if err := c.limit(); nil != err {
		return err
	}

	c.Lock()
	c.id += 1
	arguments := rpcArguments{
		Id:     c.id,
		Method: method,
		Params: params,
	}
	c.Unlock()

	if nil == arguments.Params {
		arguments.Params = []interface{}{}
	}

	response, err := c.rpc(&arguments)
	if nil != err {
		c.log.Tracef("rpc: %s  returned error: %s", method, err)
		return err
	}

	if nil != response.Error {
		return c.rpcFailure(method, response.Error)
	}

	if nil == reply {
		return nil
	}
	if 0 == len(response.Result) || "null" == string(response.Result) {
		return fault.ErrEmptyReply
	}
	return json.Unmarshal(response.Result, reply)
}

// classify node errors
func (c *Client) rpcFailure(method string, e *rpcError) error {
	c.log.Debugf("rpc: %s  error code: %d  message: %s", method, e.Code, e.Message)
	switch e.Code {
	case rpcInvalidAddressOrKey, rpcInvalidParameter:
		return fmt.Errorf("%w: %s", fault.ErrNotFound, e.Message)
	default:
		return fault.ProcessError("node RPC error: " + e.Message)
	}
}

// basic RPC
func (c *Client) rpc(arguments *rpcArguments) (*rpcReply, error) {

	s, err := json.Marshal(arguments)
	if nil != err {
		return nil, err
	}

	c.log.Tracef("rpc send: %s", s)

	postData := bytes.NewBuffer(s)

	request, err := http.NewRequest("POST", c.url, postData)
	if nil != err {
		return nil, err
	}
	request.SetBasicAuth(c.username, c.password)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(request)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrNodeNotReady, err)
	}
	defer response.Body.Close()
	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrNodeNotReady, err)
	}

	c.log.Tracef("rpc response status: %d  body: %s", response.StatusCode, body)

	if http.StatusUnauthorized == response.StatusCode || http.StatusForbidden == response.StatusCode {
		return nil, fault.ErrMissingCredentials
	}

	// node reports RPC errors with a non-200 status and a JSON body
	var reply rpcReply
	err = json.Unmarshal(body, &reply)
	if nil != err {
		if http.StatusOK != response.StatusCode {
			return nil, fmt.Errorf("%w: status: %s", fault.ErrNodeNotReady, response.Status)
		}
		return nil, err
	}

	return &reply, nil
}

// limiting for a single request
func (c *Client) limit() error {
	r := c.limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
