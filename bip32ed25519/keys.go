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

// Package bip32ed25519 implements Cardano's extended (BIP32-style)
// Ed25519 key derivation: 96-byte extended private keys (scalar ‖ nonce ‖
// chain code), 64-byte extended public keys (point ‖ chain code), and
// hardened/soft child derivation that agree under soft derivation per
// the Khovratovich/Law BIP32-Ed25519 scheme.
package bip32ed25519

import (
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

const (
	// ExtendedPrivateKeySize is the length of an extended private key:
	// 32-byte scalar ‖ 32-byte nonce ‖ 32-byte chain code.
	ExtendedPrivateKeySize = 96
	// ExtendedPublicKeySize is the length of an extended public key:
	// 32-byte curve point ‖ 32-byte chain code.
	ExtendedPublicKeySize = 64
	// SignatureSize is the length of an Ed25519 signature.
	SignatureSize = 64

	hardenedOffset uint32 = 0x80000000
)

// ExtendedPrivateKey is a 96-byte scalar‖nonce‖chain-code extended
// private key.
type ExtendedPrivateKey [ExtendedPrivateKeySize]byte

// ExtendedPublicKey is a 64-byte point‖chain-code extended public key.
type ExtendedPublicKey [ExtendedPublicKeySize]byte

// NewExtendedPrivateKey validates and wraps 96 raw bytes. The scalar is
// accepted as an opaque blob — clamping is only enforced when a key is
// constructed from entropy via MasterKeyFromEntropy.
func NewExtendedPrivateKey(b []byte) (ExtendedPrivateKey, error) {
	var k ExtendedPrivateKey
	if len(b) != ExtendedPrivateKeySize {
		return k, cborerr.New(cborerr.KindInvalidBip32PrivateKeySize, "extended private key must be 96 bytes")
	}
	copy(k[:], b)
	return k, nil
}

// NewExtendedPublicKey validates and wraps 64 raw bytes.
func NewExtendedPublicKey(b []byte) (ExtendedPublicKey, error) {
	var k ExtendedPublicKey
	if len(b) != ExtendedPublicKeySize {
		return k, cborerr.New(cborerr.KindInvalidBip32PublicKeySize, "extended public key must be 64 bytes")
	}
	copy(k[:], b)
	return k, nil
}

// Scalar returns the 32-byte scalar half.
func (k ExtendedPrivateKey) Scalar() []byte { return k[0:32] }

// Nonce returns the 32-byte nonce half, used for signing and as input to
// child-key derivation.
func (k ExtendedPrivateKey) Nonce() []byte { return k[32:64] }

// ChainCode returns the 32-byte chain code half.
func (k ExtendedPrivateKey) ChainCode() []byte { return k[64:96] }

// Point returns the 32-byte curve point half.
func (k ExtendedPublicKey) Point() []byte { return k[0:32] }

// ChainCode returns the 32-byte chain code half.
func (k ExtendedPublicKey) ChainCode() []byte { return k[32:64] }

// Bytes returns the raw 96 bytes.
func (k ExtendedPrivateKey) Bytes() []byte {
	out := make([]byte, ExtendedPrivateKeySize)
	copy(out, k[:])
	return out
}

// Bytes returns the raw 64 bytes.
func (k ExtendedPublicKey) Bytes() []byte {
	out := make([]byte, ExtendedPublicKeySize)
	copy(out, k[:])
	return out
}

// IsHardened reports whether index designates hardened derivation.
func IsHardened(index uint32) bool {
	return index >= hardenedOffset
}
