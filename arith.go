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

// The formulas below are the extended twisted Edwards coordinate formulas
// from Hisil, Wong, Carter and Dawson, complete for a = -1 and non-square d.
// The identity needs no special casing.

// Add sets v = p + q and returns v.
func (v *P1P1) Add(p *P3, q *Cached) *P1P1 {
	var yPlusX, yMinusX, pp, mm, tt2d, zz2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YplusX)
	mm.Multiply(&yMinusX, &q.YminusX)
	tt2d.Multiply(&p.T, &q.T2d)
	zz2.Multiply(&p.Z, &q.Z)

	zz2.Add(&zz2, &zz2)

	v.X.Subtract(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Add(&zz2, &tt2d)
	v.T.Subtract(&zz2, &tt2d)
	return v
}

// Sub sets v = p - q and returns v. It is Add with the Y+X and Y-X
// components of q swapped and the 2dXY term negated.
func (v *P1P1) Sub(p *P3, q *Cached) *P1P1 {
	var yPlusX, yMinusX, pp, mm, tt2d, zz2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YminusX)
	mm.Multiply(&yMinusX, &q.YplusX)
	tt2d.Multiply(&p.T, &q.T2d)
	zz2.Multiply(&p.Z, &q.Z)

	zz2.Add(&zz2, &zz2)

	v.X.Subtract(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Subtract(&zz2, &tt2d)
	v.T.Add(&zz2, &tt2d)
	return v
}

// AddAffine sets v = p + q for an affine q, eliminating the Z2
// multiplication from the addition formula, and returns v.
func (v *P1P1) AddAffine(p *P3, q *Precomp) *P1P1 {
	var yPlusX, yMinusX, pp, mm, tt2d, z2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YplusX)
	mm.Multiply(&yMinusX, &q.YminusX)
	tt2d.Multiply(&p.T, &q.XY2d)

	z2.Add(&p.Z, &p.Z)

	v.X.Subtract(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Add(&z2, &tt2d)
	v.T.Subtract(&z2, &tt2d)
	return v
}

// SubAffine sets v = p - q for an affine q and returns v.
func (v *P1P1) SubAffine(p *P3, q *Precomp) *P1P1 {
	var yPlusX, yMinusX, pp, mm, tt2d, z2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YminusX)
	mm.Multiply(&yMinusX, &q.YplusX)
	tt2d.Multiply(&p.T, &q.XY2d)

	z2.Add(&p.Z, &p.Z)

	v.X.Subtract(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Subtract(&z2, &tt2d)
	v.T.Add(&z2, &tt2d)
	return v
}

// Double sets v = 2*p and returns v. One squaring is saved by computing
// 2XY as (X+Y)^2 - X^2 - Y^2.
func (v *P1P1) Double(p *P2) *P1P1 {
	var xx, yy, zz2, xPlusYSq field.Element

	xx.Square(&p.X)
	yy.Square(&p.Y)
	zz2.Square(&p.Z)
	zz2.Add(&zz2, &zz2)
	xPlusYSq.Add(&p.X, &p.Y)
	xPlusYSq.Square(&xPlusYSq)

	v.Y.Add(&yy, &xx)
	v.Z.Subtract(&yy, &xx)

	v.X.Subtract(&xPlusYSq, &v.Y)
	v.T.Subtract(&zz2, &v.Z)
	return v
}

// P3-level composites, chaining the conversions.

// Add sets v = p + q and returns v.
func (v *P3) Add(p, q *P3) *P3 {
	var qCached Cached
	var result P1P1

	qCached.FromP3(q)
	result.Add(p, &qCached)
	return v.FromP1P1(&result)
}

// Subtract sets v = p - q and returns v.
func (v *P3) Subtract(p, q *P3) *P3 {
	var qCached Cached
	var result P1P1

	qCached.FromP3(q)
	result.Sub(p, &qCached)
	return v.FromP1P1(&result)
}

// Double sets v = 2*p and returns v.
func (v *P3) Double(p *P3) *P3 {
	var p2 P2
	var result P1P1

	p2.FromP3(p)
	result.Double(&p2)
	return v.FromP1P1(&result)
}
