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

package txtenc_test

import (
	"testing"

	"github.com/blinklabs-io/cardano-core/txtenc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBech32RoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	encoded, err := txtenc.EncodeBech32("addr_test", payload)
	require.NoError(t, err)

	hrp, decoded, err := txtenc.DecodeBech32(encoded)
	require.NoError(t, err)
	assert.Equal(t, "addr_test", hrp)
	assert.Equal(t, payload, decoded)
}

func TestBech32RejectsGarbage(t *testing.T) {
	_, _, err := txtenc.DecodeBech32("not-a-bech32-string!!!")
	assert.Error(t, err)
}

func TestBase58RoundTrip(t *testing.T) {
	payload := []byte{0x00, 0xde, 0xad, 0xbe, 0xef, 0x01}
	encoded := txtenc.EncodeBase58(payload)

	decoded, err := txtenc.DecodeBase58(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestBech32LengthEstimateIsAtLeastActual(t *testing.T) {
	payload := make([]byte, 29)
	encoded, err := txtenc.EncodeBech32("addr", payload)
	require.NoError(t, err)

	estimate := txtenc.EncodedBech32Length("addr", len(payload))
	assert.GreaterOrEqual(t, estimate, len(encoded))
}
