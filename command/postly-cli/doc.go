// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// postly-cli - command line client for postlyd
//
// identities are kept in $XDG_CONFIG_HOME/postly-cli/NETWORK-postly-cli.json
// with their seeds encrypted under a password.  A typical session:
//
//   postly-cli setup -c 127.0.0.1:2130 -P PROGRAM -d "me"
//   postly-cli airdrop
//   postly-cli post -c "hello"
//   postly-cli view
package main
