// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Nth Party, Ltd. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ge25519

import (
	"encoding/hex"
	"testing"

	"github.com/gtank/ristretto255"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hexRistrettoBasePoint = "e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76"

func TestRistrettoBasePointEncoding(t *testing.T) {
	enc := NewGeneratorPoint().BytesRistretto()
	assert.Equal(t, hexRistrettoBasePoint, hex.EncodeToString(enc))

	p, err := new(P3).SetRistrettoBytes(enc)
	require.NoError(t, err)
	assert.True(t, p.IsOnCurve())
	assert.Equal(t, enc, p.BytesRistretto())
}

func TestRistrettoIdentity(t *testing.T) {
	zero := make([]byte, 32)
	assert.Equal(t, zero, NewIdentityPoint().BytesRistretto())

	p, err := new(P3).SetRistrettoBytes(zero)
	require.NoError(t, err)
	assert.Equal(t, zero, p.BytesRistretto())
}

func TestRistrettoRoundTrip(t *testing.T) {
	h := testStream("ristretto roundtrip")

	for i := 0; i < testTrials; i++ {
		p := testPoint(h)
		enc := p.BytesRistretto()

		q, err := new(P3).SetRistrettoBytes(enc)
		require.NoError(t, err)
		assert.True(t, q.IsOnCurve())
		assert.Equal(t, enc, q.BytesRistretto())
	}
}

// Two Edwards points in the same coset must encode identically: offsetting
// a point by any 4-torsion element does not change its Ristretto encoding.
func TestRistrettoCosetCanonicity(t *testing.T) {
	torsionEncodings := []string{
		"0100000000000000000000000000000000000000000000000000000000000000", // identity
		"ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f", // order 2
		"0000000000000000000000000000000000000000000000000000000000000000", // order 4
		"0000000000000000000000000000000000000000000000000000000000000080", // order 4, other sign
	}

	h := testStream("ristretto coset")

	for i := 0; i < 32; i++ {
		p := testPoint(h)
		enc := p.BytesRistretto()

		for _, torsionHex := range torsionEncodings {
			raw, err := hex.DecodeString(torsionHex)
			require.NoError(t, err)

			torsion, err := new(P3).SetBytes(raw)
			require.NoError(t, err)

			var offset P3
			offset.Add(p, torsion)
			assert.Equal(t, enc, offset.BytesRistretto(), "torsion %s", torsionHex)
		}
	}
}

// Decoding must agree with the reference implementation on arbitrary
// candidate strings: same accept/reject decision and, on accept, the same
// element.
func TestRistrettoDecodeMatchesReference(t *testing.T) {
	h := testStream("ristretto decode")

	accepted := 0
	for i := 0; i < testTrials; i++ {
		candidate := testBytes(h, 32)

		ours, ourErr := new(P3).SetRistrettoBytes(candidate)
		refErr := ristretto255.NewElement().Decode(candidate)

		require.Equal(t, refErr != nil, ourErr != nil, "trial %d: %x", i, candidate)
		if ourErr != nil {
			continue
		}
		accepted++

		assert.Equal(t, candidate, ours.BytesRistretto())
	}

	assert.Greater(t, accepted, 0)
}

func TestRistrettoDecodeRejects(t *testing.T) {
	bad := []string{
		// Negative field element.
		"0100000000000000000000000000000000000000000000000000000000000080",
		// Non-canonical: p.
		"edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
		// Non-canonical: all bits set.
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		// High bit set.
		"0000000000000000000000000000000000000000000000000000000000000080",
		// Odd (negative) low bit.
		"0300000000000000000000000000000000000000000000000000000000000000",
	}

	for _, encHex := range bad {
		enc, err := hex.DecodeString(encHex)
		require.NoError(t, err)

		_, decodeErr := new(P3).SetRistrettoBytes(enc)
		assert.Error(t, decodeErr, "%s must be rejected", encHex)

		// The reference agrees.
		assert.Error(t, ristretto255.NewElement().Decode(enc), encHex)
	}

	_, err := new(P3).SetRistrettoBytes(make([]byte, 31))
	assert.Error(t, err)
}

func TestRistrettoUniformBytesMatchesReference(t *testing.T) {
	h := testStream("ristretto hash")

	for i := 0; i < testTrials; i++ {
		uniform := testBytes(h, 64)

		ours, err := new(P3).SetRistrettoUniformBytes(uniform)
		require.NoError(t, err)
		require.True(t, ours.IsOnCurve())

		ref := ristretto255.NewElement().FromUniformBytes(uniform)
		assert.Equal(t, ref.Encode(nil), ours.BytesRistretto(), "trial %d", i)
	}

	_, err := new(P3).SetRistrettoUniformBytes(make([]byte, 32))
	assert.Error(t, err)
}

func TestRistrettoUniformOutputIsOnMainSubgroupCoset(t *testing.T) {
	h := testStream("ristretto hash subgroup")

	// The sum of two mapped points always carries a canonical encoding
	// that decodes back to the same element.
	for i := 0; i < 16; i++ {
		uniform := testBytes(h, 64)

		p, err := new(P3).SetRistrettoUniformBytes(uniform)
		require.NoError(t, err)

		enc := p.BytesRistretto()
		q, err := new(P3).SetRistrettoBytes(enc)
		require.NoError(t, err)
		assert.Equal(t, enc, q.BytesRistretto())
	}
}
