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

package ordmap_test

import (
	"math/big"
	"testing"

	"github.com/blinklabs-io/cardano-core/ordmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertReplacesAtExistingPosition(t *testing.T) {
	m := ordmap.New[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("a", 3)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLengthAfterDistinctInserts(t *testing.T) {
	m := ordmap.New[int, int]()
	for i := 0; i < 10; i++ {
		m.Insert(i, i*i)
	}
	assert.Equal(t, 10, m.Len())
}

func TestIterationOrderIsFirstSeen(t *testing.T) {
	m := ordmap.New[string, int]()
	m.Insert("z", 1)
	m.Insert("a", 2)
	m.Insert("m", 3)
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
}

func TestDeleteShiftsRemainingEntries(t *testing.T) {
	m := ordmap.New[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)
	m.Delete("b")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
}

func assetID(policy byte, name string) ordmap.AssetID {
	var p [28]byte
	p[0] = policy
	return ordmap.AssetID{PolicyID: p, AssetName: name}
}

func TestAddAssetsSumsCommonKeys(t *testing.T) {
	a := ordmap.New[ordmap.AssetID, *big.Int]()
	a.Insert(assetID(1, "token"), big.NewInt(10))

	b := ordmap.New[ordmap.AssetID, *big.Int]()
	b.Insert(assetID(1, "token"), big.NewInt(5))
	b.Insert(assetID(2, "other"), big.NewInt(7))

	sum := ordmap.AddAssets(a, b)
	v, ok := sum.Get(assetID(1, "token"))
	require.True(t, ok)
	assert.Equal(t, big.NewInt(15), v)

	v2, ok := sum.Get(assetID(2, "other"))
	require.True(t, ok)
	assert.Equal(t, big.NewInt(7), v2)
}

func TestAddAssetsDropsZeroSum(t *testing.T) {
	a := ordmap.New[ordmap.AssetID, *big.Int]()
	a.Insert(assetID(1, "token"), big.NewInt(10))

	b := ordmap.New[ordmap.AssetID, *big.Int]()
	b.Insert(assetID(1, "token"), big.NewInt(-10))

	sum := ordmap.AddAssets(a, b)
	assert.Equal(t, 0, sum.Len())
}

func TestSubtractAssets(t *testing.T) {
	a := ordmap.New[ordmap.AssetID, *big.Int]()
	a.Insert(assetID(1, "token"), big.NewInt(10))

	b := ordmap.New[ordmap.AssetID, *big.Int]()
	b.Insert(assetID(1, "token"), big.NewInt(3))

	diff := ordmap.SubtractAssets(a, b)
	v, ok := diff.Get(assetID(1, "token"))
	require.True(t, ok)
	assert.Equal(t, big.NewInt(7), v)
}

func TestMapEqual(t *testing.T) {
	a := ordmap.New[string, int]()
	a.Insert("x", 1)
	b := ordmap.New[string, int]()
	b.Insert("x", 1)
	assert.True(t, a.Equal(b, func(x, y int) bool { return x == y }))
}
