// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/postly"
)

type postReply struct {
	Owner string `json:"owner"`
	ID    uint32 `json:"id"`
}

func runPost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	content := c.String("content")
	if "" == content {
		return fault.ErrMissingParameters
	}

	programID, err := m.config.ProgramID()
	if nil != err {
		return err
	}

	name, private, err := privateIdentity(c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "program: %s\n", programID)
		fmt.Fprintf(m.e, "content: %q\n", content)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	id, err := postly.New(client, programID).Append(private.PrivateKey, content)
	if nil != err {
		return err
	}

	return printJson(m.w, postReply{
		Owner: private.PrivateKey.Account().String(),
		ID:    id,
	})
}
