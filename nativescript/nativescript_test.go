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

package nativescript_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/hashing"
	"github.com/blinklabs-io/cardano-core/nativescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatedHash28(b byte) hashing.Hash28 {
	var raw [28]byte
	for i := range raw {
		raw[i] = b
	}
	h, err := hashing.NewHash28(raw[:])
	if err != nil {
		panic(err)
	}
	return h
}

func TestAllOfTwoPubkeysEncodesToSpecVector(t *testing.T) {
	h1 := repeatedHash28(0x00)
	h2 := repeatedHash28(0x11)

	s := nativescript.All([]*nativescript.Script{
		nativescript.Pubkey(h1),
		nativescript.Pubkey(h2),
	})

	encoded := nativescript.Encode(s)

	want, err := hex.DecodeString(
		"8201828200581c" + hex.EncodeToString(h1.Bytes()) +
			"8200581c" + hex.EncodeToString(h2.Bytes()),
	)
	require.NoError(t, err)
	assert.Equal(t, want, encoded)
}

func TestAllOfTwoPubkeysHashIsDeterministic(t *testing.T) {
	h1 := repeatedHash28(0x00)
	h2 := repeatedHash28(0x11)
	s := nativescript.All([]*nativescript.Script{
		nativescript.Pubkey(h1),
		nativescript.Pubkey(h2),
	})

	hash1 := nativescript.Hash(s)
	hash2 := nativescript.Hash(s)
	assert.Equal(t, hash1, hash2)
	assert.Len(t, hash1.Bytes(), 28)
}

func TestScriptCBORRoundTrip(t *testing.T) {
	tests := []*nativescript.Script{
		nativescript.Pubkey(repeatedHash28(0x42)),
		nativescript.All([]*nativescript.Script{nativescript.Pubkey(repeatedHash28(0x01))}),
		nativescript.Any([]*nativescript.Script{nativescript.Pubkey(repeatedHash28(0x02))}),
		nativescript.NOfK(2, []*nativescript.Script{
			nativescript.Pubkey(repeatedHash28(0x01)),
			nativescript.Pubkey(repeatedHash28(0x02)),
			nativescript.Pubkey(repeatedHash28(0x03)),
		}),
		nativescript.InvalidBefore(1000),
		nativescript.InvalidAfter(2000),
	}

	for _, s := range tests {
		encoded := nativescript.Encode(s)
		r := cbor.NewReader(encoded)
		decoded, err := nativescript.Decode(r)
		require.NoError(t, err)
		assert.True(t, s.Equal(decoded))
	}
}

func TestJSONIngestionRoundTrip(t *testing.T) {
	s := nativescript.NOfK(2, []*nativescript.Script{
		nativescript.Pubkey(repeatedHash28(0xAA)),
		nativescript.Any([]*nativescript.Script{
			nativescript.InvalidBefore(500),
			nativescript.InvalidAfter(900),
		}),
	})

	raw, err := s.MarshalJSON()
	require.NoError(t, err)

	var decoded nativescript.Script
	require.NoError(t, decoded.UnmarshalJSON(raw))
	assert.True(t, s.Equal(&decoded))
}

func TestJSONUnrecognizedTypeFails(t *testing.T) {
	var s nativescript.Script
	err := s.UnmarshalJSON([]byte(`{"type":"bogus"}`))
	assert.Error(t, err)
}
