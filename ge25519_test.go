// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Nth Party, Ltd. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ge25519

import (
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

const testTrials = 256

// testStream returns a deterministic byte stream for multi-trial tests,
// domain-separated by label.
func testStream(label string) sha3.ShakeHash {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte("ge25519 test vectors: " + label))
	return h
}

func testBytes(h sha3.ShakeHash, n int) []byte {
	out := make([]byte, n)
	_, _ = h.Read(out)
	return out
}

// testPoint derives a pseudo-random element of the prime-order subgroup.
func testPoint(h sha3.ShakeHash) *P3 {
	s := testScalar(h)
	return new(P3).ScalarBaseMult(s)
}

// testScalar derives a pseudo-random canonical scalar, reduced through the
// reference implementation so it can also be fed to filippo.io points.
func testScalar(h sha3.ShakeHash) []byte {
	wide := testBytes(h, 64)
	sc, err := edwards25519.NewScalar().SetUniformBytes(wide)
	if err != nil {
		panic(err)
	}
	return sc.Bytes()
}

func TestIdentity(t *testing.T) {
	id := NewIdentityPoint()
	assert.True(t, id.IsOnCurve())
	assert.True(t, id.IsOnMainSubgroup())

	// Doubling the identity yields the identity.
	var dbl P3
	dbl.Double(id)
	assert.Equal(t, 1, dbl.Equal(id))

	// Adding the identity is a no-op, on the identity and on an arbitrary
	// point.
	var sum P3
	sum.Add(id, id)
	assert.Equal(t, 1, sum.Equal(id))

	g := NewGeneratorPoint()
	sum.Add(g, id)
	assert.Equal(t, 1, sum.Equal(g))
	sum.Add(id, g)
	assert.Equal(t, 1, sum.Equal(g))
}

func TestNegate(t *testing.T) {
	h := testStream("negate")

	for i := 0; i < 16; i++ {
		p := testPoint(h)

		var neg, sum P3
		neg.Negate(p)
		assert.True(t, neg.IsOnCurve())

		sum.Add(p, &neg)
		assert.Equal(t, 1, sum.Equal(NewIdentityPoint()))
	}
}

func TestEqualAcrossRepresentations(t *testing.T) {
	h := testStream("equal")
	p := testPoint(h)

	// The same affine point expressed with a different Z must compare
	// equal: run p through a doubling and halve by adding -p.
	var dbl, back P3
	dbl.Double(p)

	var neg P3
	neg.Negate(p)
	back.Add(&dbl, &neg)

	assert.Equal(t, 1, back.Equal(p))
	assert.Equal(t, 0, back.Equal(&dbl))
}

func TestConversionsPreserveThePoint(t *testing.T) {
	h := testStream("conversions")

	for i := 0; i < 16; i++ {
		p := testPoint(h)
		enc := p.Bytes()

		// P3 -> Cached -> (add identity) -> P1P1 -> P3
		var c Cached
		c.FromP3(p)

		var r P1P1
		r.Add(NewIdentityPoint(), &c)

		var viaP3 P3
		viaP3.FromP1P1(&r)
		require.True(t, viaP3.IsOnCurve())
		assert.Equal(t, enc, viaP3.Bytes())

		// P1P1 -> P2 keeps the same affine point: double both ways.
		var p2 P2
		p2.FromP1P1(&r)

		var d1, d2v P1P1
		d1.Double(&p2)
		d2v.Double(new(P2).FromP3(&viaP3))

		var q1, q2 P3
		q1.FromP1P1(&d1)
		q2.FromP1P1(&d2v)
		assert.Equal(t, 1, q1.Equal(&q2))
	}
}

func TestPrecompMatchesCached(t *testing.T) {
	h := testStream("precomp")

	for i := 0; i < 16; i++ {
		p := testPoint(h)
		q := testPoint(h)

		var c Cached
		c.FromP3(q)

		var pre Precomp
		pre.FromP3(q)

		var r1, r2 P1P1
		r1.Add(p, &c)
		r2.AddAffine(p, &pre)

		var s1, s2 P3
		s1.FromP1P1(&r1)
		s2.FromP1P1(&r2)
		assert.Equal(t, 1, s1.Equal(&s2))

		r1.Sub(p, &c)
		r2.SubAffine(p, &pre)
		s1.FromP1P1(&r1)
		s2.FromP1P1(&r2)
		assert.Equal(t, 1, s1.Equal(&s2))
	}
}
