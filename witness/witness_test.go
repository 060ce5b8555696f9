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

package witness_test

import (
	"testing"

	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/plutus"
	"github.com/blinklabs-io/cardano-core/witness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSet() *witness.Set {
	s := witness.New()
	var vkey [32]byte
	var sig [64]byte
	vkey[0] = 0x01
	sig[0] = 0x02
	s.VkeyWitnesses = []witness.VkeyWitness{{Vkey: vkey, Signature: sig}}
	s.AddPlutusV2Script([]byte{0xCA, 0xFE})
	s.AddPlutusV2Script([]byte{0xBA, 0xBE})
	return s
}

func TestWitnessSetCacheRoundTrip(t *testing.T) {
	s := buildSet()
	encoded, err := witness.Encode(s)
	require.NoError(t, err)

	decoded, err := witness.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, encoded, decoded.Cache())

	reencoded, err := witness.Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}

func TestPlutusV2BucketOrderPreservedThroughCache(t *testing.T) {
	s := buildSet()
	encoded, err := witness.Encode(s)
	require.NoError(t, err)

	decoded, err := witness.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, decoded.PlutusV2(), 2)
	assert.Equal(t, []byte{0xCA, 0xFE}, decoded.PlutusV2()[0])
	assert.Equal(t, []byte{0xBA, 0xBE}, decoded.PlutusV2()[1])
}

func TestClearingBucketCacheStillDecodesToSameValues(t *testing.T) {
	s := buildSet()
	encoded, err := witness.Encode(s)
	require.NoError(t, err)

	decoded, err := witness.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)

	decoded.ClearPlutusV2Cache()
	reencoded, err := witness.Encode(decoded)
	require.NoError(t, err)

	redecoded, err := witness.Decode(cbor.NewReader(reencoded))
	require.NoError(t, err)
	assert.ElementsMatch(t, decoded.PlutusV2(), redecoded.PlutusV2())
}

func TestRedeemerRoundTrip(t *testing.T) {
	s := witness.New()
	s.Redeemers = []witness.Redeemer{
		{
			Tag:     witness.RedeemerTagSpend,
			Index:   0,
			Data:    plutus.NewInteger(42),
			ExUnits: witness.ExUnits{Mem: 1000, Steps: 2000},
		},
	}

	encoded, err := witness.Encode(s)
	require.NoError(t, err)

	decoded, err := witness.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, decoded.Redeemers, 1)
	r := decoded.Redeemers[0]
	assert.Equal(t, witness.RedeemerTagSpend, r.Tag)
	assert.Equal(t, uint64(0), r.Index)
	assert.True(t, r.Data.Equal(plutus.NewInteger(42)))
	assert.Equal(t, witness.ExUnits{Mem: 1000, Steps: 2000}, r.ExUnits)
}

func TestEmptySetEncodesAsEmptyMap(t *testing.T) {
	s := witness.New()
	encoded, err := witness.Encode(s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA0}, encoded)
}
