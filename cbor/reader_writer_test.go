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

package cbor_test

import (
	"math/big"
	"testing"

	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 23, 24, 255, 256, 65535, 65536, 4294967295, 4294967296, ^uint64(0)} {
		w := cbor.NewWriter()
		w.WriteUint(v)
		r := cbor.NewReader(w.Bytes())
		got, err := r.ReadUint()
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(w.Bytes()), r.Pos())
	}
}

func TestIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, -1, -24, -25, 100, -1000000} {
		w := cbor.NewWriter()
		w.WriteInt(v)
		r := cbor.NewReader(w.Bytes())
		got, err := r.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestBignumTag2Encoding(t *testing.T) {
	// spec.md §8 scenario 3: 2^64 encodes as tag 2 + 9-byte bignum string.
	n := new(big.Int).SetUint64(^uint64(0))
	n.Add(n, big.NewInt(1))

	w := cbor.NewWriter()
	w.WriteBignum(n)
	got := w.Bytes()

	want := []byte{0xc2, 0x49, 0x01, 0, 0, 0, 0, 0, 0, 0, 0}
	assert.Equal(t, want, got)

	r := cbor.NewReader(got)
	decoded, err := r.ReadBignum()
	require.NoError(t, err)
	assert.Equal(t, 0, n.Cmp(decoded))
}

func TestBignumNegative(t *testing.T) {
	n := new(big.Int).SetUint64(^uint64(0))
	n.Add(n, big.NewInt(1))
	n.Neg(n)

	w := cbor.NewWriter()
	w.WriteBignum(n)
	r := cbor.NewReader(w.Bytes())
	decoded, err := r.ReadBignum()
	require.NoError(t, err)
	assert.Equal(t, 0, n.Cmp(decoded))
	assert.Equal(t, byte(0xc3), w.Bytes()[0])
}

func TestBytestringIndefiniteChunks(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i)
	}
	w := cbor.NewWriter()
	w.WriteIndefiniteBytestringChunks(data, 64)
	r := cbor.NewReader(w.Bytes())
	got, err := r.ReadBytestring()
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDefiniteArrayRoundTrip(t *testing.T) {
	w := cbor.NewWriter()
	w.WriteStartArray(3)
	w.WriteUint(1)
	w.WriteUint(2)
	w.WriteUint(3)
	w.WriteEndArray(false)

	r := cbor.NewReader(w.Bytes())
	n, err := r.ReadStartArray()
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
	for i := uint64(1); i <= 3; i++ {
		v, err := r.ReadUint()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	require.NoError(t, r.ReadEndArray())
}

func TestIndefiniteArrayRoundTrip(t *testing.T) {
	w := cbor.NewWriter()
	w.WriteStartArray(cbor.IndefiniteLength)
	w.WriteUint(7)
	w.WriteUint(8)
	w.WriteEndArray(true)

	r := cbor.NewReader(w.Bytes())
	n, err := r.ReadStartArray()
	require.NoError(t, err)
	require.Equal(t, cbor.IndefiniteLength, n)

	var got []uint64
	for {
		st, err := r.PeekState()
		require.NoError(t, err)
		if st.IsBreak {
			break
		}
		v, err := r.ReadUint()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.NoError(t, r.ReadEndArray())
	assert.Equal(t, []uint64{7, 8}, got)
}

func TestConstr3EmptyArgsEncoding(t *testing.T) {
	// spec.md §8: Constr(3, []) -> tag 124, empty definite array.
	w := cbor.NewWriter()
	w.WriteTag(121 + 3)
	w.WriteStartArray(0)
	w.WriteEndArray(false)

	want := []byte{0xd8, 0x7c, 0x80}
	assert.Equal(t, want, w.Bytes())
}

func TestReadEncodedValueCapturesExactSpan(t *testing.T) {
	w := cbor.NewWriter()
	w.WriteStartArray(2)
	w.WriteUint(1)
	w.WriteStartArray(2)
	w.WriteUint(2)
	w.WriteUint(3)
	w.WriteEndArray(false)
	w.WriteEndArray(false)
	full := w.Bytes()

	r := cbor.NewReader(full)
	captured, err := r.ReadEncodedValue()
	require.NoError(t, err)
	assert.Equal(t, full, []byte(captured))
	assert.Equal(t, len(full), r.Pos())
}

func TestWrongContainerClosePreservesCursor(t *testing.T) {
	w := cbor.NewWriter()
	w.WriteStartArray(0)
	w.WriteEndArray(false)
	buf := w.Bytes()

	r := cbor.NewReader(buf)
	_, err := r.ReadStartArray()
	require.NoError(t, err)
	err = r.ReadEndMap()
	assert.Error(t, err)
	assert.Equal(t, 1, r.Pos())
}

func TestTruncatedInputFailsCleanly(t *testing.T) {
	r := cbor.NewReader([]byte{0x19, 0x01}) // 2-byte arg header missing a byte
	_, err := r.ReadUint()
	assert.Error(t, err)
	assert.Equal(t, 0, r.Pos())
}

func TestDepthCap(t *testing.T) {
	w := cbor.NewWriter()
	depth := 5
	for i := 0; i < depth; i++ {
		w.WriteStartArray(1)
	}
	w.WriteUint(1)
	for i := 0; i < depth; i++ {
		w.WriteEndArray(false)
	}

	r := cbor.NewReader(w.Bytes())
	r.SetMaxDepth(3)
	_, err := r.ReadEncodedValue()
	assert.Error(t, err)
}

func TestInvalidUTF8(t *testing.T) {
	w := cbor.NewWriter()
	w.WriteBytestring([]byte{0xFF, 0xFE}) // not valid UTF-8, but written as a byte string so patch header below
	buf := w.Bytes()
	buf[0] = byte(cbor.MajorTextString)<<5 | (buf[0] & 0x1F)

	r := cbor.NewReader(buf)
	_, err := r.ReadTextstring()
	assert.Error(t, err)
}

func TestMapRoundTrip(t *testing.T) {
	w := cbor.NewWriter()
	w.WriteStartMap(2)
	w.WriteTextstring("a")
	w.WriteUint(1)
	w.WriteTextstring("b")
	w.WriteUint(2)
	w.WriteEndMap(false)

	r := cbor.NewReader(w.Bytes())
	n, err := r.ReadStartMap()
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	k1, _ := r.ReadTextstring()
	v1, _ := r.ReadUint()
	k2, _ := r.ReadTextstring()
	v2, _ := r.ReadUint()
	require.NoError(t, r.ReadEndMap())
	assert.Equal(t, "a", k1)
	assert.Equal(t, uint64(1), v1)
	assert.Equal(t, "b", k2)
	assert.Equal(t, uint64(2), v2)
}
