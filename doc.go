// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Nth Party, Ltd. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

/*
Package ge25519 implements group-element arithmetic for the twisted Edwards
curve Ed25519

	-x^2 + y^2 = 1 + d*x^2*y^2, d = -121665/121666 over GF(2^255-19)

together with the Ristretto255 encoding of its prime-order subgroup.

The package exposes the point representations used by extended-coordinate
arithmetic (P2, P3, P1P1, Cached, and the affine Precomp form used by the
fixed-base table), the additions, doublings and conversions between them,
windowed variable-base and comb fixed-base scalar multiplication, the
Ed25519 and Ristretto255 byte codecs, and maps from uniform byte strings to
group elements.

Every operation that may receive a secret operand is constant-time: no
data-dependent branches, no data-dependent memory indices. Field arithmetic
is provided by filippo.io/edwards25519/field.
*/
package ge25519
