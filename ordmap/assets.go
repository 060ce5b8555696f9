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

package ordmap

import "math/big"

// AssetID identifies a native asset by its 28-byte policy ID and
// arbitrary-length asset name, the key type of an AssetMap.
type AssetID struct {
	PolicyID  [28]byte
	AssetName string
}

// AssetMap is the insertion-ordered quantity map that transaction values
// and mint fields are built from.
type AssetMap = Map[AssetID, *big.Int]

// AddAssets returns a new AssetMap where common keys hold the summed
// quantity and keys present in only one side keep that side's quantity.
// Entries whose resulting sum is zero are dropped from the result.
func AddAssets(a, b *AssetMap) *AssetMap {
	out := New[AssetID, *big.Int]()

	for i := 0; i < a.Len(); i++ {
		key := a.KeyAt(i)
		sum := new(big.Int).Set(a.ValueAt(i))
		if bv, ok := b.Get(key); ok {
			sum.Add(sum, bv)
		}
		if sum.Sign() != 0 {
			out.Insert(key, sum)
		}
	}

	for i := 0; i < b.Len(); i++ {
		key := b.KeyAt(i)
		if _, ok := a.Get(key); ok {
			continue // already combined above
		}
		if b.ValueAt(i).Sign() != 0 {
			out.Insert(key, new(big.Int).Set(b.ValueAt(i)))
		}
	}

	return out
}

// NegateAssets returns a new AssetMap with every quantity negated,
// preserving insertion order.
func NegateAssets(a *AssetMap) *AssetMap {
	out := New[AssetID, *big.Int]()
	for i := 0; i < a.Len(); i++ {
		out.Insert(a.KeyAt(i), new(big.Int).Neg(a.ValueAt(i)))
	}
	return out
}

// SubtractAssets returns AddAssets(a, NegateAssets(b)).
func SubtractAssets(a, b *AssetMap) *AssetMap {
	return AddAssets(a, NegateAssets(b))
}
