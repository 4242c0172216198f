// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON-RPC client for postlyd
//
// Client satisfies the ledger interface of the postly store so the
// same store code runs locally and over the network.
package rpccalls

import (
	"crypto/tls"
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    io.Closer
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a postlyd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	return NewClientFromConn(conn, verbose, handle), nil
}

// NewClientFromConn - client over an already open stream
func NewClientFromConn(conn io.ReadWriteCloser, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the postlyd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}
