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

// The four projective representations of a group element, plus the affine
// Precomp form used by the fixed-base table. All of them encode the same
// affine point (x, y); they differ in which coordinates are materialized.

// P2 holds a point as (X, Y, Z) with x = X/Z and y = Y/Z. It is the input
// form of doubling.
type P2 struct {
	X, Y, Z field.Element
}

// P3 holds a point in extended coordinates (X, Y, Z, T) with x = X/Z,
// y = Y/Z and T/Z = x*y. It is the canonical in-memory form.
type P3 struct {
	X, Y, Z, T field.Element
}

// P1P1 holds the output of an addition or doubling as (X, Y, Z, T) with
// x = X/Z and y = Y/T. It only exists to bridge one operation to the next
// conversion.
type P1P1 struct {
	X, Y, Z, T field.Element
}

// Cached holds (Y+X, Y-X, Z, 2dXY), precomputed from a P3 value for use as
// the second operand of an addition.
type Cached struct {
	YplusX, YminusX, Z, T2d field.Element
}

// Precomp holds (y+x, y-x, 2dxy) for an affine point (Z = 1). The
// fixed-base table stores its entries in this form.
type Precomp struct {
	YplusX, YminusX, XY2d field.Element
}

// Constructors.

// NewIdentityPoint returns a new P3 set to the identity element (0, 1).
func NewIdentityPoint() *P3 {
	return new(P3).Zero()
}

// NewGeneratorPoint returns a new P3 set to the canonical generator, the
// point of order l with y = 4/5 and x positive.
func NewGeneratorPoint() *P3 {
	return new(P3).Set(&basePoint)
}

// Zero sets v to the identity element and returns it.
func (v *P3) Zero() *P3 {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	v.T.Zero()
	return v
}

// Zero sets v to the Cached form of the identity element and returns it.
func (v *Cached) Zero() *Cached {
	v.YplusX.One()
	v.YminusX.One()
	v.Z.One()
	v.T2d.Zero()
	return v
}

// Zero sets v to the Precomp form of the identity element and returns it.
func (v *Precomp) Zero() *Precomp {
	v.YplusX.One()
	v.YminusX.One()
	v.XY2d.Zero()
	return v
}

// Assignments.

// Set sets v = u and returns v.
func (v *P3) Set(u *P3) *P3 {
	*v = *u
	return v
}

// Negate sets v = -u and returns v.
func (v *P3) Negate(u *P3) *P3 {
	v.X.Negate(&u.X)
	v.Y.Set(&u.Y)
	v.Z.Set(&u.Z)
	v.T.Negate(&u.T)
	return v
}

// Equal returns 1 if v and u represent the same affine point, and 0
// otherwise. The comparison runs in constant time.
func (v *P3) Equal(u *P3) int {
	var t1, t2, t3, t4 field.Element

	t1.Multiply(&v.X, &u.Z)
	t2.Multiply(&u.X, &v.Z)
	t3.Multiply(&v.Y, &u.Z)
	t4.Multiply(&u.Y, &v.Z)

	return t1.Equal(&t2) & t3.Equal(&t4)
}

// Conversions. These are the only multiplications outside of the group
// operations proper.

// FromP3 sets v to the P2 view of p, dropping T, and returns v.
func (v *P2) FromP3(p *P3) *P2 {
	v.X.Set(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	return v
}

// FromP1P1 sets v = (X*T, Y*Z, Z*T) and returns v.
func (v *P2) FromP1P1(p *P1P1) *P2 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	return v
}

// FromP1P1 sets v = (X*T, Y*Z, Z*T, X*Y) and returns v.
func (v *P3) FromP1P1(p *P1P1) *P3 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	v.T.Multiply(&p.X, &p.Y)
	return v
}

// FromP3 sets v = (Y+X, Y-X, Z, T*2d) and returns v.
func (v *Cached) FromP3(p *P3) *Cached {
	v.YplusX.Add(&p.Y, &p.X)
	v.YminusX.Subtract(&p.Y, &p.X)
	v.Z.Set(&p.Z)
	v.T2d.Multiply(&p.T, &d2)
	return v
}

// FromP3 normalizes p to affine coordinates and sets v = (y+x, y-x, 2dxy).
// It costs one field inversion.
func (v *Precomp) FromP3(p *P3) *Precomp {
	var recip, x, y field.Element

	recip.Invert(&p.Z)
	x.Multiply(&p.X, &recip)
	y.Multiply(&p.Y, &recip)

	v.YplusX.Add(&y, &x)
	v.YminusX.Subtract(&y, &x)
	v.XY2d.Multiply(&x, &y)
	v.XY2d.Multiply(&v.XY2d, &d2)
	return v
}
