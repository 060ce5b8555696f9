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

package bigint_test

import (
	"testing"

	"github.com/blinklabs-io/cardano-core/bigint"
	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	v, err := bigint.FromString("ff", 16)
	require.NoError(t, err)
	assert.Equal(t, int64(255), mustInt64(t, v))

	text, err := v.Text(16)
	require.NoError(t, err)
	assert.Equal(t, "ff", text)
}

func TestBaseOutOfRange(t *testing.T) {
	_, err := bigint.FromString("10", 1)
	assert.Error(t, err)
	_, err = bigint.FromString("10", 37)
	assert.Error(t, err)
}

func TestCBORRoundTripSmall(t *testing.T) {
	v := bigint.FromInt64(-42)
	w := cbor.NewWriter()
	v.WriteCBOR(w)

	r := cbor.NewReader(w.Bytes())
	got, err := bigint.ReadCBOR(r)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(got))
}

func TestCBORRoundTripBignum(t *testing.T) {
	v, err := bigint.FromString("18446744073709551616", 10) // 2^64
	require.NoError(t, err)
	w := cbor.NewWriter()
	v.WriteCBOR(w)
	assert.Equal(t, byte(0xc2), w.Bytes()[0])

	r := cbor.NewReader(w.Bytes())
	got, err := bigint.ReadCBOR(r)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(got))
}

func TestArithmetic(t *testing.T) {
	a := bigint.FromInt64(10)
	b := bigint.FromInt64(3)
	assert.Equal(t, int64(13), mustInt64(t, a.Add(b)))
	assert.Equal(t, int64(7), mustInt64(t, a.Sub(b)))
	assert.Equal(t, int64(30), mustInt64(t, a.Mul(b)))
	assert.Equal(t, int64(3), mustInt64(t, a.Div(b)))
	assert.Equal(t, int64(1), mustInt64(t, a.Mod(b)))
}

func mustInt64(t *testing.T, v bigint.Int) int64 {
	t.Helper()
	n, ok := v.Int64()
	require.True(t, ok)
	return n
}
