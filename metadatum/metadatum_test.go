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

package metadatum_test

import (
	"strings"
	"testing"

	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/metadatum"
	"github.com/blinklabs-io/cardano-core/nativescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	m := metadatum.NewInteger(-99)
	encoded, err := metadatum.Encode(m)
	require.NoError(t, err)

	decoded, err := metadatum.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)
	assert.True(t, m.Equal(decoded))
}

func TestBytesAtExactLimitRoundTrips(t *testing.T) {
	b := make([]byte, 64)
	for i := range b {
		b[i] = byte(i)
	}
	m := metadatum.NewBytes(b)
	encoded, err := metadatum.Encode(m)
	require.NoError(t, err)

	decoded, err := metadatum.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)
	assert.True(t, m.Equal(decoded))
}

func TestBytesOverLimitFailsToEncode(t *testing.T) {
	m := metadatum.NewBytes(make([]byte, 65))
	_, err := metadatum.Encode(m)
	assert.Error(t, err)
}

func TestTextOverLimitFailsToEncode(t *testing.T) {
	m := metadatum.NewText(strings.Repeat("a", 65))
	_, err := metadatum.Encode(m)
	assert.Error(t, err)
}

func TestTextAtLimitRoundTrips(t *testing.T) {
	m := metadatum.NewText(strings.Repeat("a", 64))
	encoded, err := metadatum.Encode(m)
	require.NoError(t, err)

	decoded, err := metadatum.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)
	assert.True(t, m.Equal(decoded))
}

func TestMapPreservesOrderAndArbitraryKeys(t *testing.T) {
	m := metadatum.NewMap([]metadatum.MapEntry{
		{Key: metadatum.NewText("z"), Value: metadatum.NewInteger(1)},
		{Key: metadatum.NewBytes([]byte{0x01}), Value: metadatum.NewInteger(2)},
	})
	encoded, err := metadatum.Encode(m)
	require.NoError(t, err)

	decoded, err := metadatum.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, metadatum.KindMap, decoded.Kind)
	require.Len(t, decoded.Map, 2)
	assert.True(t, decoded.Map[0].Key.Equal(metadatum.NewText("z")))
	assert.True(t, decoded.Map[1].Key.Equal(metadatum.NewBytes([]byte{0x01})))
}

func TestEqualIgnoresCache(t *testing.T) {
	encoded, err := metadatum.Encode(metadatum.NewInteger(5))
	require.NoError(t, err)

	decoded, err := metadatum.Decode(cbor.NewReader(encoded))
	require.NoError(t, err)
	require.NotNil(t, decoded.Cache())

	fresh := metadatum.NewInteger(5)
	assert.True(t, decoded.Equal(fresh))
	decoded.ClearCache()
	assert.Nil(t, decoded.Cache())
	assert.True(t, decoded.Equal(fresh))
}

func TestAuxiliaryDataRoundTripWithNativeScriptsAndPlutusScripts(t *testing.T) {
	a := metadatum.NewAuxiliaryData(
		[]metadatum.MetadataEntry{
			{Label: 674, Value: metadatum.NewText("hello")},
		},
		[]*nativescript.Script{nativescript.InvalidBefore(10)},
		[][]byte{{0xDE, 0xAD, 0xBE, 0xEF}},
	)

	encoded, err2 := metadatum.EncodeAuxiliaryData(a)
	require.NoError(t, err2)
	assert.Equal(t, byte(0xD9), encoded[0]) // tag 259 -> two-byte tag header 0xD9 0x01 0x03
	assert.Equal(t, byte(0x01), encoded[1])
	assert.Equal(t, byte(0x03), encoded[2])

	decoded, err3 := metadatum.DecodeAuxiliaryData(cbor.NewReader(encoded))
	require.NoError(t, err3)
	require.Len(t, decoded.Metadata, 1)
	assert.Equal(t, uint64(674), decoded.Metadata[0].Label)
	assert.True(t, decoded.Metadata[0].Value.Equal(metadatum.NewText("hello")))
	require.Len(t, decoded.NativeScripts, 1)
	assert.True(t, decoded.NativeScripts[0].Equal(nativescript.InvalidBefore(10)))
	require.Len(t, decoded.PlutusScripts, 1)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, decoded.PlutusScripts[0])
}

func TestAuxiliaryDataCacheReplaysVerbatim(t *testing.T) {
	a := metadatum.NewAuxiliaryData(
		[]metadatum.MetadataEntry{{Label: 1, Value: metadatum.NewInteger(1)}},
		[]*nativescript.Script{},
		nil,
	)
	encoded, err := metadatum.EncodeAuxiliaryData(a)
	require.NoError(t, err)

	decoded, err := metadatum.DecodeAuxiliaryData(cbor.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, encoded, decoded.Cache())

	reencoded, err := metadatum.EncodeAuxiliaryData(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}
