// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/postly/fault"
)

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := identityName(c, m.config)
	if nil != err {
		return err
	}

	acc, err := m.config.Account(name)
	if nil != err {
		return err
	}

	lamports := c.Uint64("lamports")
	if 0 == lamports {
		return fault.ErrInvalidCount
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "location: %s\n", acc.Location())
		fmt.Fprintf(m.e, "lamports: %d\n", lamports)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Airdrop(acc.Location(), lamports)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}
