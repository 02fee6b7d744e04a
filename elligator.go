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

	"github.com/nthparty/ge25519/internal"
)

// uniformLength is the input size of the Elligator 2 map.
const uniformLength = 32

var errParamInputLength = internal.ParameterError("invalid uniform input length")

// SetUniformBytes sets v to the group element obtained by applying the
// Elligator 2 map to x, and returns v. The high bit of byte 31 selects the
// sign of the mapped point's x coordinate, before the cofactor is cleared;
// the remaining 255 bits are the field element fed to the map. The mapped
// point is multiplied by the cofactor 8, so the result always lies in the
// prime-order subgroup.
func (v *P3) SetUniformBytes(x []byte) (*P3, error) {
	if len(x) != uniformLength {
		return nil, errParamInputLength
	}

	var s [32]byte
	copy(s[:], x)
	xSign := s[31] & 0x80
	s[31] &= 0x7f

	r, err := new(field.Element).SetBytes(s[:])
	if err != nil {
		return nil, errParamInputLength
	}

	// u = -A/(1 + 2r^2) on the Montgomery curve v^2 = u^3 + A*u^2 + u.
	var rr2, u field.Element
	rr2.Square(r)
	rr2.Add(&rr2, &rr2)
	rr2.Add(&rr2, &feOne)
	rr2.Invert(&rr2)
	u.Multiply(&montA, &rr2)
	u.Negate(&u)

	// gu = u^3 + A*u^2 + u.
	var u2, gu field.Element
	u2.Square(&u)
	gu.Multiply(&u, &u2)
	gu.Add(&gu, &u)
	u2.Multiply(&u2, &montA)
	gu.Add(&gu, &u2)

	// When gu is not a square the candidate moves to the other branch,
	// u <- -u - A, whose curve polynomial value is a square.
	var probe field.Element
	_, wasSquare := probe.SqrtRatio(&gu, &feOne)
	notSquare := 1 - wasSquare

	var negU, corr field.Element
	negU.Negate(&u)
	u.Select(&negU, &u, notSquare)
	corr.Select(&montA, &feZero, notSquare)
	u.Subtract(&u, &corr)

	// Edwards y = (u-1)/(u+1); the Edwards x is recovered by decoding y
	// with the requested sign.
	var num, den, yed field.Element
	num.Subtract(&u, &feOne)
	den.Add(&u, &feOne)
	den.Invert(&den)
	yed.Multiply(&num, &den)

	bs := yed.Bytes()
	bs[31] |= xSign

	if _, err := v.SetBytes(bs); err != nil {
		return nil, err
	}

	// Clear the cofactor: three doublings.
	var t P1P1
	var p2 P2

	t.Double(p2.FromP3(v))
	p2.FromP1P1(&t)
	t.Double(&p2)
	p2.FromP1P1(&t)
	t.Double(&p2)
	v.FromP1P1(&t)

	return v, nil
}
