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
	"github.com/blinklabs-io/cardano-core/hashing"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

const (
	bip39PBKDF2Iterations = 4096
	bip39PBKDF2KeySize    = 96
)

// MasterKeyFromEntropy derives a 96-byte extended private key from BIP-39
// entropy and an optional passphrase, via PBKDF2-HMAC-SHA-512 followed by
// standard Ed25519 scalar clamping of the leftmost 32 bytes.
func MasterKeyFromEntropy(passphrase, entropy []byte) (ExtendedPrivateKey, error) {
	if len(entropy) == 0 {
		return ExtendedPrivateKey{}, cborerr.New(cborerr.KindInsufficientBufferSize, "entropy must not be empty")
	}

	material := hashing.PBKDF2HMACSHA512(passphrase, entropy, bip39PBKDF2Iterations, bip39PBKDF2KeySize)

	var scalar [32]byte
	copy(scalar[:], material[0:32])
	clampScalar(&scalar)
	copy(material[0:32], scalar[:])

	return NewExtendedPrivateKey(material)
}

func indexToLEBytes(index uint32) [4]byte {
	return [4]byte{
		byte(index & 0xFF),
		byte((index >> 8) & 0xFF),
		byte((index >> 16) & 0xFF),
		byte((index >> 24) & 0xFF),
	}
}

// deriveHardenedMACs computes the pair of HMAC-SHA-512 MACs used for
// hardened child derivation, keyed on the parent chain code and mixing in
// the full scalar and nonce halves of the parent key.
func deriveHardenedMACs(index uint32, scalar, iv, chainCode []byte) (zMac, ccMac [64]byte) {
	data := make([]byte, 1+64+4)
	copy(data[1:33], scalar)
	copy(data[33:65], iv)
	idx := indexToLEBytes(index)
	copy(data[65:69], idx[:])

	data[0] = 0x00
	zMac = hashing.HMACSHA512(chainCode, data)

	data[0] = 0x01
	ccMac = hashing.HMACSHA512(chainCode, data)
	return
}

// deriveSoftMACs computes the pair of HMAC-SHA-512 MACs used for soft
// (non-hardened) child derivation, mixing in only the public point derived
// from the parent scalar so that public-key derivation can agree with it.
func deriveSoftMACs(index uint32, scalar, chainCode []byte) (zMac, ccMac [64]byte, err error) {
	var scalarArr [32]byte
	copy(scalarArr[:], scalar)

	vk, err := scalarBaseMultNoClamp(scalarArr[:])
	if err != nil {
		return zMac, ccMac, err
	}

	data := make([]byte, 1+32+4)
	copy(data[1:33], vk[:])
	idx := indexToLEBytes(index)
	copy(data[33:37], idx[:])

	data[0] = 0x02
	zMac = hashing.HMACSHA512(chainCode, data)

	data[0] = 0x03
	ccMac = hashing.HMACSHA512(chainCode, data)
	return zMac, ccMac, nil
}

// DerivePrivate derives the child extended private key at index from key,
// following hardened or soft derivation depending on whether index carries
// the hardened-offset bit.
func DerivePrivate(key ExtendedPrivateKey, index uint32) (ExtendedPrivateKey, error) {
	kl := key.Scalar()
	kr := key.Nonce()
	cc := key.ChainCode()

	var zMac, ccMac [64]byte
	if IsHardened(index) {
		zMac, ccMac = deriveHardenedMACs(index, kl, kr, cc)
	} else {
		var err error
		zMac, ccMac, err = deriveSoftMACs(index, kl, cc)
		if err != nil {
			return ExtendedPrivateKey{}, err
		}
	}

	var zl, zr, klArr, krArr [32]byte
	copy(zl[:], zMac[0:32])
	copy(zr[:], zMac[32:64])
	copy(klArr[:], kl)
	copy(krArr[:], kr)

	left := add28Mul8(klArr, zl)
	right := add256Bits(krArr, zr)

	out := make([]byte, 0, ExtendedPrivateKeySize)
	out = append(out, left[:]...)
	out = append(out, right[:]...)
	out = append(out, ccMac[32:64]...)

	return NewExtendedPrivateKey(out)
}

// DerivePublic derives the child extended public key at index from key.
// index must not carry the hardened-offset bit: public-key derivation has
// no hardened variant, since it has no access to the private scalar.
func DerivePublic(key ExtendedPublicKey, index uint32) (ExtendedPublicKey, error) {
	if IsHardened(index) {
		return ExtendedPublicKey{}, cborerr.New(cborerr.KindInvalidBip32DerivationIndex, "cannot derive a hardened child from a public key")
	}

	pk := key.Point()
	cc := key.ChainCode()

	data := make([]byte, 1+32+4)
	copy(data[1:33], pk)
	idx := indexToLEBytes(index)
	copy(data[33:37], idx[:])

	data[0] = 0x02
	z := hashing.HMACSHA512(cc, data)

	data[0] = 0x03
	c := hashing.HMACSHA512(cc, data)

	var zl [32]byte
	copy(zl[:], z[0:32])

	p, err := pointOfTrunc28Mul8(zl)
	if err != nil {
		return ExtendedPublicKey{}, err
	}

	var pkArr [32]byte
	copy(pkArr[:], pk)
	sum, err := pointAdd(p, pkArr)
	if err != nil {
		return ExtendedPublicKey{}, err
	}

	out := make([]byte, 0, ExtendedPublicKeySize)
	out = append(out, sum[:]...)
	out = append(out, c[32:64]...)

	return NewExtendedPublicKey(out)
}

// PublicKey extracts the extended public key corresponding to an extended
// private key: the non-clamped scalar multiplication of the scalar half by
// the base point, paired with the private key's chain code.
func PublicKey(key ExtendedPrivateKey) (ExtendedPublicKey, error) {
	var scalar [32]byte
	copy(scalar[:], key.Scalar())

	point, err := scalarBaseMultNoClamp(scalar[:])
	if err != nil {
		return ExtendedPublicKey{}, err
	}

	out := make([]byte, 0, ExtendedPublicKeySize)
	out = append(out, point[:]...)
	out = append(out, key.ChainCode()...)

	return NewExtendedPublicKey(out)
}

// Harden sets the hardened-offset bit on a derivation index.
func Harden(index uint32) uint32 {
	return index | hardenedOffset
}
