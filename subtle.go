// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Nth Party, Ltd. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ge25519

import (
	"filippo.io/edwards25519/field"
)

// Constant-time primitives. None of these branch or index memory on their
// arguments; the field-level conditional move is field.Element.Select.

// equal returns 1 if b == c and 0 otherwise.
func equal(b, c uint8) int {
	x := uint32(b ^ c)
	x-- // underflows to 0xffffffff exactly when b == c
	return int(x >> 31)
}

// negative returns 1 if b < 0 and 0 otherwise, by sign-extending the top
// bit.
func negative(b int8) int {
	return int((uint64(int64(b))) >> 63)
}

// absDigit splits a signed window digit in [-8, 8] into its magnitude and a
// negation flag.
func absDigit(b int8) (babs uint8, bneg int) {
	bneg = negative(b)
	mask := int8(-bneg) // 0x00 or 0xff
	babs = uint8(b - ((mask & b) << 1))
	return babs, bneg
}

// Select sets v to a if cond == 1 and to b if cond == 0. v, a and b may
// overlap.
func (v *Cached) Select(a, b *Cached, cond int) *Cached {
	v.YplusX.Select(&a.YplusX, &b.YplusX, cond)
	v.YminusX.Select(&a.YminusX, &b.YminusX, cond)
	v.Z.Select(&a.Z, &b.Z, cond)
	v.T2d.Select(&a.T2d, &b.T2d, cond)
	return v
}

// CondNeg negates v if cond == 1 and leaves it unchanged if cond == 0.
// Negation of a Cached value swaps the Y+X and Y-X components and negates
// the 2dXY term.
func (v *Cached) CondNeg(cond int) *Cached {
	v.YplusX.Swap(&v.YminusX, cond)

	var negT2d field.Element
	negT2d.Negate(&v.T2d)
	v.T2d.Select(&negT2d, &v.T2d, cond)
	return v
}

// Select sets v to a if cond == 1 and to b if cond == 0.
func (v *Precomp) Select(a, b *Precomp, cond int) *Precomp {
	v.YplusX.Select(&a.YplusX, &b.YplusX, cond)
	v.YminusX.Select(&a.YminusX, &b.YminusX, cond)
	v.XY2d.Select(&a.XY2d, &b.XY2d, cond)
	return v
}

// CondNeg negates v if cond == 1 and leaves it unchanged if cond == 0.
func (v *Precomp) CondNeg(cond int) *Precomp {
	v.YplusX.Swap(&v.YminusX, cond)

	var negXY2d field.Element
	negXY2d.Negate(&v.XY2d)
	v.XY2d.Select(&negXY2d, &v.XY2d, cond)
	return v
}

// lookup sets v to the entry of table holding |b|*P, negated when b < 0,
// for a digit b in [-8, 8]. A zero digit yields the Cached identity. Every
// table slot is read regardless of b.
func (v *Cached) lookup(table *[8]Cached, b int8) *Cached {
	babs, bneg := absDigit(b)

	v.Zero()
	for i := 0; i < 8; i++ {
		v.Select(&table[i], v, equal(babs, uint8(i+1)))
	}

	return v.CondNeg(bneg)
}

// lookup sets v to column |b|-1 of row, negated when b < 0, for a digit b
// in [-8, 8]. The row position is public; the digit is not.
func (v *Precomp) lookup(row *[8]Precomp, b int8) *Precomp {
	babs, bneg := absDigit(b)

	v.Zero()
	for i := 0; i < 8; i++ {
		v.Select(&row[i], v, equal(babs, uint8(i+1)))
	}

	return v.CondNeg(bneg)
}
