// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Nth Party, Ltd. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ge25519

import (
	"golang.org/x/crypto/sha3"

	"github.com/nthparty/ge25519/internal"
)

const (
	dstMaxLength  = 255
	dstLongPrefix = "H2C-OVERSIZE-DST-"

	// shakeSecurityLength is ceil(2*k/8) for the 256-bit security level of
	// SHAKE256, the size oversize domain separation tags are reduced to.
	shakeSecurityLength = 64
)

var errZeroLenDST = internal.ParameterError("zero-length DST")

// i2osp2 is the two-byte big-endian integer encoding used by
// expand_message.
func i2osp2(value int) []byte {
	return []byte{byte(value >> 8), byte(value)}
}

func vetDST(dst []byte) []byte {
	if len(dst) <= dstMaxLength {
		return dst
	}

	// Tags longer than 255 bytes are reduced by hashing them.
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(dstLongPrefix))
	_, _ = h.Write(dst)

	out := make([]byte, shakeSecurityLength)
	_, _ = h.Read(out)
	return out
}

// ExpandMessageXOF expands input to length uniform bytes under the domain
// separation tag dst with SHAKE256, following the expand_message_xof
// construction of the hash-to-curve specification.
func ExpandMessageXOF(input, dst []byte, length int) []byte {
	dst = vetDST(dst)

	h := sha3.NewShake256()
	_, _ = h.Write(input)
	_, _ = h.Write(i2osp2(length))
	_, _ = h.Write(dst)
	_, _ = h.Write([]byte{byte(len(dst))})

	out := make([]byte, length)
	_, _ = h.Read(out)
	return out
}

// HashToGroup hashes arbitrary input to a group element of the prime-order
// subgroup, via 64 uniform bytes fed to the Ristretto255 hash-to-group map.
// The domain separation tag must be non-empty.
func HashToGroup(input, dst []byte) *P3 {
	if len(dst) == 0 {
		panic(errZeroLenDST)
	}

	uniform := ExpandMessageXOF(input, dst, ristrettoUniformLength)

	p, err := new(P3).SetRistrettoUniformBytes(uniform)
	if err != nil {
		panic(err)
	}

	return p
}
