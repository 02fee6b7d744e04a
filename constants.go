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

// Field constants. The field type offers no limb-level construction, so
// everything is derived once from d = -121665/121666; constants_test.go pins
// the byte encoding of d and checks each other constant against its defining
// equation and sign. a = -1 throughout (the curve coefficient).
var (
	feZero field.Element
	feOne  field.Element

	// d is the Edwards curve constant -121665/121666.
	d field.Element
	// d2 = 2*d.
	d2 field.Element
	// sqrtM1 is the square root of -1 with non-negative representative.
	sqrtM1 field.Element

	// Ristretto255 constants.
	invSqrtAMinusD field.Element // 1/sqrt(a-d)
	oneMinusDSq    field.Element // 1-d^2
	dMinusOneSq    field.Element // (d-1)^2
	sqrtAdMinusOne field.Element // sqrt(a*d-1), the negative root

	// montA is the coefficient A = 486662 of the birationally equivalent
	// Montgomery curve, used by the Elligator 2 map.
	montA field.Element

	// basePoint is the canonical generator.
	basePoint P3
)

// groupOrder is the little-endian encoding of the prime order
// l = 2^252 + 27742317777372353535851937790883648493 of the main subgroup.
var groupOrder = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// smallOrderEncodings lists the canonical and non-canonical encodings of the
// points whose order divides 8, the torsion subgroup.
var smallOrderEncodings = [7][32]byte{
	// 0 (order 4)
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	// 1 (order 1, the identity)
	{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	// 2707385501144840649318225287225658788936804267575313519463743609750303402022 (order 8)
	{0x26, 0xe8, 0x95, 0x8f, 0xc2, 0xb2, 0x27, 0xb0,
		0x45, 0xc3, 0xf4, 0x89, 0xf2, 0xef, 0x98, 0xf0,
		0xd5, 0xdf, 0xac, 0x05, 0xd3, 0xc6, 0x33, 0x39,
		0xb1, 0x38, 0x02, 0x88, 0x6d, 0x53, 0xfc, 0x05},
	// 55188659117513257062467267217118295137698188065244968500265048394206261417927 (order 8)
	{0xc7, 0x17, 0x6a, 0x70, 0x3d, 0x4d, 0xd8, 0x4f,
		0xba, 0x3c, 0x0b, 0x76, 0x0d, 0x10, 0x67, 0x0f,
		0x2a, 0x20, 0x53, 0xfa, 0x2c, 0x39, 0xcc, 0xc6,
		0x4e, 0xc7, 0xfd, 0x77, 0x92, 0xac, 0x03, 0x7a},
	// p-1 (order 2)
	{0xec, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
	// p (non-canonical 0, order 4)
	{0xed, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
	// p+1 (non-canonical 1, order 1)
	{0xee, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
}

func init() {
	feZero.Zero()
	feOne.One()

	// d = -121665/121666
	var num, den field.Element
	num.Mult32(&feOne, 121665)
	den.Mult32(&feOne, 121666)
	den.Invert(&den)
	d.Multiply(&num, &den)
	d.Negate(&d)

	d2.Add(&d, &d)

	var minusOne field.Element
	minusOne.Negate(&feOne)
	sqrtM1.SqrtRatio(&minusOne, &feOne)

	// a-d = -1-d, which is also a*d-1.
	var aMinusD field.Element
	aMinusD.Subtract(&minusOne, &d)
	invSqrtAMinusD.SqrtRatio(&feOne, &aMinusD)

	var dSq field.Element
	dSq.Square(&d)
	oneMinusDSq.Subtract(&feOne, &dSq)

	dMinusOneSq.Subtract(&d, &feOne)
	dMinusOneSq.Square(&dMinusOneSq)

	// The Ristretto255 map is defined with the odd root of a*d-1.
	sqrtAdMinusOne.SqrtRatio(&aMinusD, &feOne)
	var negRoot field.Element
	negRoot.Negate(&sqrtAdMinusOne)
	sqrtAdMinusOne.Select(&negRoot, &sqrtAdMinusOne, 1-sqrtAdMinusOne.IsNegative())

	montA.Mult32(&feOne, 486662)

	// The generator has y = 4/5 and positive x.
	var y field.Element
	y.Mult32(&feOne, 5)
	y.Invert(&y)
	y.Mult32(&y, 4)
	if _, err := basePoint.SetBytes(y.Bytes()); err != nil {
		panic(err)
	}
}
