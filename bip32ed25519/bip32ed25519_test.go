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

package bip32ed25519_test

import (
	"testing"

	"github.com/blinklabs-io/cardano-core/bip32ed25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntropy() []byte {
	return []byte{
		0x5c, 0xf2, 0xd4, 0xa8, 0xb0, 0x95, 0x73, 0x79,
		0xb5, 0x2f, 0x23, 0x0a, 0xb4, 0x40, 0x69, 0xc4,
	}
}

func TestMasterKeyFromEntropyDeterministic(t *testing.T) {
	a, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)
	b, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestMasterKeyFromEntropyEmptyRejected(t *testing.T) {
	_, err := bip32ed25519.MasterKeyFromEntropy(nil, nil)
	assert.Error(t, err)
}

func TestMasterKeyScalarIsClamped(t *testing.T) {
	k, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)
	scalar := k.Scalar()
	assert.Zero(t, scalar[0]&0x07)
	assert.Zero(t, scalar[31] & 0x80)
	assert.NotZero(t, scalar[31]&0x40)
}

func TestSoftDerivationAgreesOnPublicKey(t *testing.T) {
	master, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)

	const softIndex = uint32(7)

	childPriv, err := bip32ed25519.DerivePrivate(master, softIndex)
	require.NoError(t, err)

	masterPub, err := bip32ed25519.PublicKey(master)
	require.NoError(t, err)

	childPubFromPriv, err := bip32ed25519.PublicKey(childPriv)
	require.NoError(t, err)

	childPubFromPub, err := bip32ed25519.DerivePublic(masterPub, softIndex)
	require.NoError(t, err)

	assert.Equal(t, childPubFromPriv.Bytes(), childPubFromPub.Bytes())
}

func TestHardenedDerivationRejectedForPublicKeys(t *testing.T) {
	master, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)

	masterPub, err := bip32ed25519.PublicKey(master)
	require.NoError(t, err)

	hardened := bip32ed25519.Harden(0)
	assert.True(t, bip32ed25519.IsHardened(hardened))

	_, err = bip32ed25519.DerivePublic(masterPub, hardened)
	assert.Error(t, err)
}

func TestHardenedPrivateDerivationSucceeds(t *testing.T) {
	master, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)

	hardened := bip32ed25519.Harden(3)
	child, err := bip32ed25519.DerivePrivate(master, hardened)
	require.NoError(t, err)
	assert.Len(t, child.Bytes(), bip32ed25519.ExtendedPrivateKeySize)
}

func TestDerivationDeterministic(t *testing.T) {
	master, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)

	a, err := bip32ed25519.DerivePrivate(master, 42)
	require.NoError(t, err)
	b, err := bip32ed25519.DerivePrivate(master, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestSignVerifyRoundTrip(t *testing.T) {
	master, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)

	pub, err := bip32ed25519.PublicKey(master)
	require.NoError(t, err)

	message := []byte("the quick brown fox jumps over the lazy dog")
	sig, err := bip32ed25519.Sign(master, message)
	require.NoError(t, err)
	assert.Len(t, sig, bip32ed25519.SignatureSize)

	ok, err := bip32ed25519.Verify(pub, message, sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	master, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)

	pub, err := bip32ed25519.PublicKey(master)
	require.NoError(t, err)

	sig, err := bip32ed25519.Sign(master, []byte("original message"))
	require.NoError(t, err)

	ok, err := bip32ed25519.Verify(pub, []byte("tampered message"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignatureVariesAcrossDerivedKeys(t *testing.T) {
	master, err := bip32ed25519.MasterKeyFromEntropy(nil, testEntropy())
	require.NoError(t, err)

	child, err := bip32ed25519.DerivePrivate(master, 1)
	require.NoError(t, err)

	message := []byte("payload")
	sigMaster, err := bip32ed25519.Sign(master, message)
	require.NoError(t, err)
	sigChild, err := bip32ed25519.Sign(child, message)
	require.NoError(t, err)

	assert.NotEqual(t, sigMaster, sigChild)
}

func TestInvalidKeySizesRejected(t *testing.T) {
	_, err := bip32ed25519.NewExtendedPrivateKey(make([]byte, 95))
	assert.Error(t, err)

	_, err = bip32ed25519.NewExtendedPublicKey(make([]byte, 63))
	assert.Error(t, err)
}
