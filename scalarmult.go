// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Nth Party, Ltd. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ge25519

import (
	"github.com/nthparty/ge25519/internal"
)

const scalarLength = 32

var errParamScalarLength = internal.ParameterError("invalid scalar length")

// signedDigits expands a 32-byte little-endian scalar into 64 nibbles and
// rebalances them to the signed range [-8, 8]. For scalars below 2^255 the
// top digit absorbs the final carry and stays in range.
func signedDigits(a []byte) [64]int8 {
	var e [64]int8

	for i, b := range a {
		e[2*i] = int8(b & 15)
		e[2*i+1] = int8((b >> 4) & 15)
	}

	var carry int8
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}
	e[63] += carry

	return e
}

// ScalarMult sets v = a*p for a 32-byte little-endian scalar a, and returns
// v. The execution trace is independent of both a and p.
//
// The scalar is not reduced; a must be below 2^255 for the top window digit
// to stay in range.
func (v *P3) ScalarMult(a []byte, p *P3) *P3 {
	if len(a) != scalarLength {
		panic(errParamScalarLength)
	}

	// Table of the odd and even multiples p, 2p, ..., 8p in Cached form.
	// Even multiples come from doubling the half multiple, odd ones from
	// adding p to the preceding even one.
	var table [8]Cached
	var mult [8]P3
	var t P1P1

	mult[0].Set(p)
	table[0].FromP3(p)
	for i := 1; i < 8; i++ {
		if i%2 == 1 {
			var p2 P2
			t.Double(p2.FromP3(&mult[i/2]))
		} else {
			t.Add(p, &table[i-1])
		}
		mult[i].FromP1P1(&t)
		table[i].FromP3(&mult[i])
	}

	e := signedDigits(a)

	// Accumulate most-significant digit first, multiplying by 16 between
	// digits with four doublings through the P2/P1P1 chain.
	var h P3
	var s P2
	var c Cached

	h.Zero()
	for i := 63; i > 0; i-- {
		c.lookup(&table, e[i])
		t.Add(&h, &c)

		s.FromP1P1(&t)
		t.Double(&s)
		s.FromP1P1(&t)
		t.Double(&s)
		s.FromP1P1(&t)
		t.Double(&s)
		s.FromP1P1(&t)
		t.Double(&s)

		h.FromP1P1(&t)
	}

	c.lookup(&table, e[0])
	t.Add(&h, &c)
	h.FromP1P1(&t)

	return v.Set(&h)
}

// ScalarBaseMult sets v = a*B for the canonical generator B and a 32-byte
// little-endian scalar a, and returns v. It consumes the odd window digits
// against the precomputed table first, multiplies the accumulator by 16,
// then consumes the even digits, so each table row serves two digit
// positions.
func (v *P3) ScalarBaseMult(a []byte) *P3 {
	if len(a) != scalarLength {
		panic(errParamScalarLength)
	}

	table := basePointTable()
	e := signedDigits(a)

	var h P3
	var t P1P1
	var s P2
	var pre Precomp

	h.Zero()
	for i := 1; i < 64; i += 2 {
		pre.lookup(&table[i/2], e[i])
		t.AddAffine(&h, &pre)
		h.FromP1P1(&t)
	}

	var p2 P2
	t.Double(p2.FromP3(&h))
	s.FromP1P1(&t)
	t.Double(&s)
	s.FromP1P1(&t)
	t.Double(&s)
	s.FromP1P1(&t)
	t.Double(&s)
	h.FromP1P1(&t)

	for i := 0; i < 64; i += 2 {
		pre.lookup(&table[i/2], e[i])
		t.AddAffine(&h, &pre)
		h.FromP1P1(&t)
	}

	return v.Set(&h)
}

// MulByGroupOrder sets v = l*p for the order l of the main subgroup, and
// returns v. The result is the identity exactly when p lies in the
// prime-order subgroup (up to the order-2 torsion component, whose X
// coordinate is also zero).
func (v *P3) MulByGroupOrder(p *P3) *P3 {
	return v.ScalarMult(groupOrder[:], p)
}
