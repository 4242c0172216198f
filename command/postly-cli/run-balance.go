// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/postly/fault"
)

type balanceReply struct {
	Owner    string `json:"owner"`
	Location string `json:"location"`
	Lamports uint64 `json:"lamports"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.String("owner")
	if "" == owner {
		owner = c.GlobalString("identity")
	}

	_, acc, err := checkOwner(owner, m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply := balanceReply{
		Owner:    acc.String(),
		Location: acc.Location().String(),
	}

	a, err := client.GetAccount(acc.Location())
	if nil == err {
		reply.Lamports = a.Lamports
	} else if !fault.IsErrNotFound(err) {
		return err
	}

	return printJson(m.w, reply)
}
