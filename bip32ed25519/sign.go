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
	"crypto/sha512"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

// Sign produces an extended-Ed25519 signature over message using the
// 96-byte extended private key. Unlike plain Ed25519, the scalar kL is
// used directly rather than derived by hashing a 32-byte seed, which is
// what lets BIP32-Ed25519 child scalars (the sums computed in DerivePrivate)
// serve directly as signing keys.
func Sign(key ExtendedPrivateKey, message []byte) ([]byte, error) {
	var klArr [32]byte
	copy(klArr[:], key.Scalar())

	kl, err := scalarFromRawLE(klArr[:])
	if err != nil {
		return nil, err
	}

	pubPoint := new(edwards25519.Point).ScalarBaseMult(kl)
	a := pubPoint.Bytes()

	rh := sha512.New()
	rh.Write(key.Nonce())
	rh.Write(message)
	rSum := rh.Sum(nil)

	r, err := edwards25519.NewScalar().SetUniformBytes(rSum)
	if err != nil {
		return nil, cborerr.Wrap(cborerr.KindGeneric, "failed to reduce nonce digest", err)
	}

	bigR := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	hh := sha512.New()
	hh.Write(bigR)
	hh.Write(a)
	hh.Write(message)
	hSum := hh.Sum(nil)

	hram, err := edwards25519.NewScalar().SetUniformBytes(hSum)
	if err != nil {
		return nil, cborerr.Wrap(cborerr.KindGeneric, "failed to reduce challenge digest", err)
	}

	s := edwards25519.NewScalar().MultiplyAdd(hram, kl, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, bigR...)
	sig = append(sig, s.Bytes()...)
	return sig, nil
}

// Verify checks an extended-Ed25519 signature over message against the
// extended public key's curve point.
func Verify(key ExtendedPublicKey, message, signature []byte) (bool, error) {
	if len(signature) != SignatureSize {
		return false, cborerr.New(cborerr.KindInvalidArgument, "signature must be 64 bytes")
	}

	a := key.Point()
	bigR := signature[0:32]
	sBytes := signature[32:64]

	s, err := edwards25519.NewScalar().SetCanonicalBytes(sBytes)
	if err != nil {
		return false, nil
	}

	aPoint, err := new(edwards25519.Point).SetBytes(a)
	if err != nil {
		return false, cborerr.Wrap(cborerr.KindGeneric, "public key is not a valid curve point", err)
	}

	hh := sha512.New()
	hh.Write(bigR)
	hh.Write(a)
	hh.Write(message)
	hSum := hh.Sum(nil)

	hram, err := edwards25519.NewScalar().SetUniformBytes(hSum)
	if err != nil {
		return false, cborerr.Wrap(cborerr.KindGeneric, "failed to reduce challenge digest", err)
	}

	// Check S*B == R + hram*A.
	sb := new(edwards25519.Point).ScalarBaseMult(s)
	hramA := new(edwards25519.Point).ScalarMult(hram, aPoint)
	rPoint, err := new(edwards25519.Point).SetBytes(bigR)
	if err != nil {
		return false, cborerr.Wrap(cborerr.KindGeneric, "signature R is not a valid curve point", err)
	}
	rhs := new(edwards25519.Point).Add(rPoint, hramA)

	return sb.Equal(rhs) == 1, nil
}
