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

// canonicalEncodingLength is the byte size of both the Ed25519 and the
// Ristretto255 encodings of a group element.
const canonicalEncodingLength = 32

var (
	errParamEncodingLength = internal.ParameterError("invalid encoding length")
	errNoSquareRoot        = internal.DecodeError("not a valid point encoding")
)

// SetBytes decodes the Ed25519 compressed form of a point: bits 0-254 are
// the little-endian y coordinate, bit 7 of byte 31 is the sign of x. It
// returns an error when neither square root candidate for x exists.
//
// Non-canonical y values are accepted and reduced, as is an encoding of
// x = 0 with the sign bit set.
func (v *P3) SetBytes(x []byte) (*P3, error) {
	if len(x) != canonicalEncodingLength {
		return nil, errParamEncodingLength
	}

	y, err := new(field.Element).SetBytes(x)
	if err != nil {
		return nil, errParamEncodingLength
	}

	// u = y^2 - 1, w = d*y^2 + 1, so that x^2 = u/w.
	var u, w field.Element
	u.Square(y)
	w.Multiply(&u, &d)
	u.Subtract(&u, &feOne)
	w.Add(&w, &feOne)

	// SqrtRatio yields the non-negative root of u/w when one exists,
	// applying the sqrt(-1) correction internally; wasSquare == 0 is the
	// case where neither candidate root exists.
	var xx field.Element
	_, wasSquare := xx.SqrtRatio(&u, &w)
	if wasSquare == 0 {
		return nil, errNoSquareRoot
	}

	// Pick the root whose parity matches the encoded sign bit.
	var negXX field.Element
	negXX.Negate(&xx)
	xx.Select(&negXX, &xx, int(x[31]>>7)^xx.IsNegative())

	v.X.Set(&xx)
	v.Y.Set(y)
	v.Z.One()
	v.T.Multiply(&xx, y)
	return v, nil
}

// Bytes returns the 32-byte Ed25519 encoding of v: the canonical y with the
// sign of x packed into the most significant bit of byte 31.
func (v *P3) Bytes() []byte {
	var recip, x, y field.Element

	recip.Invert(&v.Z)
	x.Multiply(&v.X, &recip)
	y.Multiply(&v.Y, &recip)

	out := y.Bytes()
	out[31] |= byte(x.IsNegative() << 7)
	return out
}

// IsCanonical reports whether s, with the sign bit ignored, encodes a field
// element strictly smaller than p = 2^255 - 19. The test is branch-free.
func IsCanonical(s []byte) bool {
	if len(s) != canonicalEncodingLength {
		panic(errParamEncodingLength)
	}

	c := (s[31] & 0x7f) ^ 0x7f
	for i := 30; i > 0; i-- {
		c |= s[i] ^ 0xff
	}
	// c == 0 iff bits 8..254 are all set; then s is non-canonical iff
	// s[0] >= 237.
	c = byte((uint32(c) - 1) >> 8)
	low := byte((0xed - 1 - uint32(s[0])) >> 8)

	return 1-(c&low&1) == 1
}

// HasSmallOrder reports whether s encodes one of the eight points whose
// order divides 8. The comparison reads the whole blocklist and ignores the
// sign bit, so both sign variants of each torsion point are caught.
func HasSmallOrder(s []byte) bool {
	if len(s) != canonicalEncodingLength {
		panic(errParamEncodingLength)
	}

	var c [len(smallOrderEncodings)]byte

	for j := 0; j < 31; j++ {
		for i := range smallOrderEncodings {
			c[i] |= s[j] ^ smallOrderEncodings[i][j]
		}
	}
	for i := range smallOrderEncodings {
		c[i] |= (s[31] & 0x7f) ^ smallOrderEncodings[i][31]
	}

	k := 0
	for i := range c {
		k |= int(c[i]) - 1
	}

	return (k>>8)&1 == 1
}

// IsOnCurve reports whether v satisfies -x^2 + y^2 = 1 + d*x^2*y^2, checked
// on the projective coordinates as (y^2 - x^2)*z^2 = z^4 + d*x^2*y^2.
func (v *P3) IsOnCurve() bool {
	var x2, y2, z2, z4, lhs, rhs field.Element

	x2.Square(&v.X)
	y2.Square(&v.Y)
	z2.Square(&v.Z)
	z4.Square(&z2)

	lhs.Subtract(&y2, &x2)
	lhs.Multiply(&lhs, &z2)

	rhs.Multiply(&x2, &y2)
	rhs.Multiply(&rhs, &d)
	rhs.Add(&rhs, &z4)

	return lhs.Equal(&rhs) == 1
}

// IsOnMainSubgroup reports whether v lies in the prime-order subgroup, by
// multiplying by the group order and checking that the X coordinate of the
// result is zero.
func (v *P3) IsOnMainSubgroup() bool {
	var pl P3
	pl.MulByGroupOrder(v)
	return pl.X.Equal(&feZero) == 1
}
