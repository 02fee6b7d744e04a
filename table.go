// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Nth Party, Ltd. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ge25519

import (
	"sync"
)

// The fixed-base table holds 32 rows of 8 affine entries; row i, column k
// stores (k+1)*16^(2i)*B. It is generated on first use by the module's own
// arithmetic; table_test.go regenerates it independently and validates
// every entry against the curve equation.
var (
	baseTable     [32][8]Precomp
	baseTableOnce sync.Once
)

func basePointTable() *[32][8]Precomp {
	baseTableOnce.Do(func() {
		row := NewGeneratorPoint()
		for i := 0; i < 32; i++ {
			var rowCached Cached
			var q P3
			var t P1P1

			rowCached.FromP3(row)
			q.Set(row)
			for j := 0; j < 8; j++ {
				baseTable[i][j].FromP3(&q)
				t.Add(&q, &rowCached)
				q.FromP1P1(&t)
			}

			// row <- 16^2 * row
			for k := 0; k < 8; k++ {
				row.Double(row)
			}
		}
	})

	return &baseTable
}
