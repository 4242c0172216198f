// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/postly/command/postly-cli/configuration"
)

// decrypt the selected identity, prompting for its password if necessary
func privateIdentity(c *cli.Context, config *configuration.Configuration) (string, *configuration.Private, error) {
	name, err := identityName(c, config)
	if nil != err {
		return "", nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return "", nil, err
		}
	}

	private, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}
	return name, private, nil
}
