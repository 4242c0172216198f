// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// errors are grouped into classes (exists, invalid, length, not
// found, process, record) and the record store adds two top level
// classes, account and post, attached with Wrap
package fault
