// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/bitmark-inc/postly/fault"
)

// rent parameters
const (
	AccountStorageOverhead = 128
	LamportsPerByteYear    = 3480
	ExemptionThreshold     = 2

	// MaximumAccountSize - largest data area that may be allocated
	MaximumAccountSize = 10 * 1024 * 1024
)

// MinimumBalance - balance an account of size data bytes must hold
// to be created
func MinimumBalance(size int) (uint64, error) {
	if size < 0 || size > MaximumAccountSize {
		return 0, fault.ErrInvalidCount
	}
	n := uint64(AccountStorageOverhead+size) * LamportsPerByteYear
	if n > math.MaxUint64/ExemptionThreshold {
		return 0, fault.ErrInvalidCount
	}
	return n * ExemptionThreshold, nil
}
