// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bip32ed25519

import (
	"math/big"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

// groupOrder is L, the prime order of the Ed25519 base point:
// 2^252 + 27742317777372353535851937790883648493.
var groupOrder = func() *big.Int {
	l, ok := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
	if !ok {
		panic("bip32ed25519: failed to parse group order constant")
	}
	return l
}()

// add28Mul8 computes out = x + 8*y with carry propagation across all 32
// bytes but treating only the low 28 bytes of y as significant (the high
// 4 bytes of y are assumed zero), matching the reference
// _cardano_crypto_add28_mul8.
func add28Mul8(x, y [32]byte) [32]byte {
	var out [32]byte
	var carry uint32
	for i := 0; i < 28; i++ {
		r := uint32(x[i]) + uint32(y[i])<<3 + carry
		out[i] = byte(r & 0xFF)
		carry = r >> 8
	}
	for i := 28; i < 32; i++ {
		r := uint32(x[i]) + carry
		out[i] = byte(r & 0xFF)
		carry = r >> 8
	}
	return out
}

// add256Bits computes out = x + y mod 2^256 with byte-wise carry
// propagation, matching _cardano_crypto_add256bits.
func add256Bits(x, y [32]byte) [32]byte {
	var out [32]byte
	var carry uint32
	for i := 0; i < 32; i++ {
		r := uint32(x[i]) + uint32(y[i]) + carry
		out[i] = byte(r & 0xFF)
		carry = r >> 8
	}
	return out
}

// reduceScalarLE interprets b as a little-endian integer of any
// magnitude and returns its canonical (< L) 32-byte little-endian scalar
// encoding. This is always a mathematically valid substitution when the
// scalar is about to be used for multiplication by a point of order L
// (the Ed25519 base point), since k*B = (k mod L)*B.
func reduceScalarLE(b []byte) [32]byte {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	n := new(big.Int).SetBytes(be)
	n.Mod(n, groupOrder)

	reducedBE := n.Bytes()
	var out [32]byte
	for i, v := range reducedBE {
		out[len(reducedBE)-1-i] = v
	}
	return out
}

func scalarFromRawLE(b []byte) (*edwards25519.Scalar, error) {
	var arr [32]byte
	copy(arr[:], b)
	reduced := reduceScalarLE(arr[:])
	s, err := edwards25519.NewScalar().SetCanonicalBytes(reduced[:])
	if err != nil {
		return nil, cborerr.Wrap(cborerr.KindGeneric, "scalar reduction produced non-canonical bytes", err)
	}
	return s, nil
}

// scalarBaseMultNoClamp computes scalar·G for the raw (possibly
// non-canonical, possibly > L) little-endian scalar bytes in raw,
// returning the 32-byte compressed Edwards point — the Go equivalent of
// libsodium's crypto_scalarmult_ed25519_base_noclamp.
func scalarBaseMultNoClamp(raw []byte) ([32]byte, error) {
	s, err := scalarFromRawLE(raw)
	if err != nil {
		return [32]byte{}, err
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	var out [32]byte
	copy(out[:], p.Bytes())
	return out, nil
}

// pointAdd adds two compressed Edwards points.
func pointAdd(a, b [32]byte) ([32]byte, error) {
	pa, err := new(edwards25519.Point).SetBytes(a[:])
	if err != nil {
		return [32]byte{}, cborerr.Wrap(cborerr.KindGeneric, "point not on curve", err)
	}
	pb, err := new(edwards25519.Point).SetBytes(b[:])
	if err != nil {
		return [32]byte{}, cborerr.Wrap(cborerr.KindGeneric, "point not on curve", err)
	}
	sum := new(edwards25519.Point).Add(pa, pb)
	var out [32]byte
	copy(out[:], sum.Bytes())
	return out, nil
}

// pointOfTrunc28Mul8 computes scalarBaseMultNoClamp(add28Mul8(0, sk)),
// matching _cardano_crypto_point_of_trunc28_mul8.
func pointOfTrunc28Mul8(sk [32]byte) ([32]byte, error) {
	scalar := add28Mul8([32]byte{}, sk)
	return scalarBaseMultNoClamp(scalar[:])
}

// clampScalar applies the standard Ed25519 clamping bits in place: clear
// bits 0-2, clear bit 255, set bit 254.
func clampScalar(b *[32]byte) {
	b[0] &= 0xF8
	b[31] &= 0x7F
	b[31] |= 0x40
}

// isClamped reports whether b satisfies the clamped-scalar invariant.
func isClamped(b [32]byte) bool {
	return b[0]&0x07 == 0 && b[31]&0x80 == 0 && b[31]&0x40 != 0
}
