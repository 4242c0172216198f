// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/postly"
)

func runView(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.String("owner")
	if "" == owner {
		owner = c.GlobalString("identity")
	}

	name, acc, err := checkOwner(owner, m.config)
	if nil != err {
		return err
	}

	programID, err := m.config.ProgramID()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "program: %s\n", programID)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return listPosts(m.w, postly.New(client, programID), acc.Location())
}

// one line per post in id order, stopping at the first unreadable item
func listPosts(w io.Writer, store *postly.Store, owner address.Location) error {
	cursor, err := store.ListAll(owner)
	if nil != err {
		return err
	}

	for cursor.Next() {
		post := cursor.Post()
		fmt.Fprintf(w, "My %d Post => %s\n", post.ID, post.Payload)
	}
	return cursor.Err()
}
