// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/ledger"
)

func TestMinimumBalance(t *testing.T) {
	tests := []struct {
		size     int
		lamports uint64
	}{
		{0, 890880},
		{4, 918720},
		{9, 953520},
		{1000, 7850880},
	}

	for i, item := range tests {
		lamports, err := ledger.MinimumBalance(item.size)
		assert.Nil(t, err, "%d: size: %d", i, item.size)
		assert.Equal(t, item.lamports, lamports, "%d: size: %d", i, item.size)
	}

	_, err := ledger.MinimumBalance(-1)
	assert.Equal(t, fault.ErrInvalidCount, err, "negative")

	_, err = ledger.MinimumBalance(ledger.MaximumAccountSize + 1)
	assert.Equal(t, fault.ErrInvalidCount, err, "too large")
}
