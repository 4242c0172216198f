// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed as a Lua chunk and must return a table; most
// of base Lua is available so os.getenv and arg[0] can be used to
// compute values at load time.
package configuration
