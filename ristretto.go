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

// ristrettoUniformLength is the input size of the Ristretto255
// hash-to-group map.
const ristrettoUniformLength = 64

var (
	errRistrettoNonCanonical = internal.DecodeError("non-canonical ristretto255 encoding")
	errRistrettoInvalid      = internal.DecodeError("invalid ristretto255 encoding")
	errParamUniformLength    = internal.ParameterError("invalid uniform input length")
)

// isCanonicalRistretto reports whether s is a canonical, non-negative field
// element encoding with the high bit clear; all Ristretto255 encodings are
// of this shape. Branch-free.
func isCanonicalRistretto(s []byte) bool {
	c := (s[31] & 0x7f) ^ 0x7f
	for i := 30; i > 0; i-- {
		c |= s[i] ^ 0xff
	}
	c = byte((uint32(c) - 1) >> 8)
	low := byte((0xed - 1 - uint32(s[0])) >> 8)
	top := s[31] >> 7

	return ((c&low)|top|(s[0]&1))&1 == 0
}

// SetRistrettoBytes decodes a 32-byte Ristretto255 encoding and sets v to
// the canonical coset representative. It returns an error for non-canonical
// encodings, for candidates with no square root, and for representatives
// whose sign components disagree with the canonical form.
func (v *P3) SetRistrettoBytes(x []byte) (*P3, error) {
	if len(x) != canonicalEncodingLength {
		return nil, errParamEncodingLength
	}
	if !isCanonicalRistretto(x) {
		return nil, errRistrettoNonCanonical
	}

	s, err := new(field.Element).SetBytes(x)
	if err != nil {
		return nil, errParamEncodingLength
	}

	// x^2 = 4s^2 / (a*d*(1+a*s^2)^2 - (1-a*s^2)^2) with a = -1.
	var ss, u1, u2, u2Sqr, vv field.Element
	ss.Square(s)
	u1.Subtract(&feOne, &ss)
	u2.Add(&feOne, &ss)
	u2Sqr.Square(&u2)

	vv.Square(&u1)
	vv.Multiply(&vv, &d)
	vv.Negate(&vv)
	vv.Subtract(&vv, &u2Sqr)

	var invSqrt, tmp field.Element
	tmp.Multiply(&vv, &u2Sqr)
	_, wasSquare := invSqrt.SqrtRatio(&feOne, &tmp)

	var denX, denY field.Element
	denX.Multiply(&invSqrt, &u2)
	denY.Multiply(&invSqrt, &denX)
	denY.Multiply(&denY, &vv)

	var xx, yy, tt field.Element
	xx.Add(s, s)
	xx.Multiply(&xx, &denX)
	xx.Absolute(&xx)
	yy.Multiply(&u1, &denY)
	tt.Multiply(&xx, &yy)

	if wasSquare == 0 || tt.IsNegative() == 1 || yy.Equal(&feZero) == 1 {
		return nil, errRistrettoInvalid
	}

	v.X.Set(&xx)
	v.Y.Set(&yy)
	v.Z.One()
	v.T.Set(&tt)
	return v, nil
}

// BytesRistretto returns the 32-byte Ristretto255 encoding of v. Any two
// group elements of the same coset produce identical bytes.
func (v *P3) BytesRistretto() []byte {
	var u1, u2, tmp field.Element
	u1.Add(&v.Z, &v.Y)
	tmp.Subtract(&v.Z, &v.Y)
	u1.Multiply(&u1, &tmp)
	u2.Multiply(&v.X, &v.Y)

	var invSqrt field.Element
	tmp.Square(&u2)
	tmp.Multiply(&tmp, &u1)
	invSqrt.SqrtRatio(&feOne, &tmp)

	var den1, den2, zInv field.Element
	den1.Multiply(&invSqrt, &u1)
	den2.Multiply(&invSqrt, &u2)
	zInv.Multiply(&den1, &den2)
	zInv.Multiply(&zInv, &v.T)

	var ix, iy, enchantedDen field.Element
	ix.Multiply(&v.X, &sqrtM1)
	iy.Multiply(&v.Y, &sqrtM1)
	enchantedDen.Multiply(&den1, &invSqrtAMinusD)

	tmp.Multiply(&v.T, &zInv)
	rotate := tmp.IsNegative()

	var x, y, denInv field.Element
	x.Select(&iy, &v.X, rotate)
	y.Select(&ix, &v.Y, rotate)
	denInv.Select(&enchantedDen, &den2, rotate)

	tmp.Multiply(&x, &zInv)
	var negY field.Element
	negY.Negate(&y)
	y.Select(&negY, &y, tmp.IsNegative())

	var s field.Element
	s.Subtract(&v.Z, &y)
	s.Multiply(&s, &denInv)
	s.Absolute(&s)

	return s.Bytes()
}

// ristrettoMap is the one-way map of the Ristretto255 hash-to-group
// construction, carrying a field element to a group element.
func (v *P3) ristrettoMap(t *field.Element) *P3 {
	var r, u, c, rPlusD, vv field.Element
	r.Square(t)
	r.Multiply(&r, &sqrtM1)
	u.Add(&r, &feOne)
	u.Multiply(&u, &oneMinusDSq)

	c.Negate(&feOne)
	rPlusD.Add(&r, &d)
	vv.Multiply(&r, &d)
	vv.Subtract(&c, &vv)
	vv.Multiply(&vv, &rPlusD)

	var s, sPrime field.Element
	_, wasSquare := s.SqrtRatio(&u, &vv)
	sPrime.Multiply(&s, t)
	sPrime.Absolute(&sPrime)
	sPrime.Negate(&sPrime)

	s.Select(&s, &sPrime, wasSquare)
	c.Select(&c, &r, wasSquare)

	var n field.Element
	n.Subtract(&r, &feOne)
	n.Multiply(&n, &c)
	n.Multiply(&n, &dMinusOneSq)
	n.Subtract(&n, &vv)

	var w0, w1, w2, w3, sSq field.Element
	w0.Add(&s, &s)
	w0.Multiply(&w0, &vv)
	w1.Multiply(&n, &sqrtAdMinusOne)
	sSq.Square(&s)
	w2.Subtract(&feOne, &sSq)
	w3.Add(&feOne, &sSq)

	v.X.Multiply(&w0, &w3)
	v.Y.Multiply(&w2, &w1)
	v.Z.Multiply(&w1, &w3)
	v.T.Multiply(&w0, &w2)
	return v
}

// SetRistrettoUniformBytes sets v to the group element obtained by mapping
// each half of a 64-byte uniform string through the one-way map and adding
// the two results, as specified for the Ristretto255 hash-to-group.
func (v *P3) SetRistrettoUniformBytes(x []byte) (*P3, error) {
	if len(x) != ristrettoUniformLength {
		return nil, errParamUniformLength
	}

	// SetBytes ignores the top bit of each half.
	r0, err := new(field.Element).SetBytes(x[:32])
	if err != nil {
		return nil, errParamUniformLength
	}
	r1, err := new(field.Element).SetBytes(x[32:])
	if err != nil {
		return nil, errParamUniformLength
	}

	var p0, p1 P3
	p0.ristrettoMap(r0)
	p1.ristrettoMap(r1)

	return v.Add(&p0, &p1), nil
}
