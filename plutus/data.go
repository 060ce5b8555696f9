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

// Package plutus implements Plutus Data: the recursive sum type on-chain
// redeemers and datums are built from, with byte-exact CBOR round-trip
// via a per-node cache of the bytes a value was originally parsed from.
package plutus

import (
	"github.com/blinklabs-io/cardano-core/bigint"
)

// Kind discriminates the Data sum-type arms.
type Kind int

const (
	KindInteger Kind = iota
	KindBytes
	KindList
	KindMap
	KindConstr
)

// MapEntry is one key/value pair of a Plutus Data map, preserved in
// insertion order and allowed to duplicate keys (on-chain maps are
// ordered sequences, not hash maps).
type MapEntry struct {
	Key   *Data
	Value *Data
}

// Data is the recursive Plutus Data sum type:
// Integer | Bytes | List | Map | Constr. Exactly one field group is
// meaningful, selected by Kind. A decoded node may carry cache, the exact
// bytes it was parsed from; changing a node's fields does not clear it,
// so ClearCache must be called for the change to reach the encoding.
type Data struct {
	Kind Kind

	Integer bigint.Int
	Bytes   []byte
	List    []*Data
	Map     []MapEntry

	// Definite forces a non-empty List to be emitted as a definite-length
	// array instead of the default indefinite-length framing. Ignored for
	// empty lists, which are always definite.
	Definite bool

	ConstrTag  uint64
	ConstrArgs []*Data

	cache []byte
}

// NewInteger constructs an Integer node from an int64.
func NewInteger(v int64) *Data {
	return &Data{Kind: KindInteger, Integer: bigint.FromInt64(v)}
}

// NewBigInteger constructs an Integer node from an arbitrary-precision value.
func NewBigInteger(v bigint.Int) *Data {
	return &Data{Kind: KindInteger, Integer: v}
}

// NewBytes constructs a Bytes node.
func NewBytes(b []byte) *Data {
	out := make([]byte, len(b))
	copy(out, b)
	return &Data{Kind: KindBytes, Bytes: out}
}

// NewList constructs a List node, encoded with indefinite-length framing
// when non-empty.
func NewList(items []*Data) *Data {
	return &Data{Kind: KindList, List: items}
}

// NewDefiniteList constructs a List node that opts into definite-length
// array framing on encode, even when non-empty.
func NewDefiniteList(items []*Data) *Data {
	return &Data{Kind: KindList, List: items, Definite: true}
}

// NewMap constructs a Map node.
func NewMap(entries []MapEntry) *Data {
	return &Data{Kind: KindMap, Map: entries}
}

// NewConstr constructs a Constr node with the given constructor tag and
// argument list.
func NewConstr(tag uint64, args []*Data) *Data {
	return &Data{Kind: KindConstr, ConstrTag: tag, ConstrArgs: args}
}

// Cache returns the exact source bytes this node was decoded from, or nil
// if the node was built fresh or has had its cache cleared.
func (d *Data) Cache() []byte {
	return d.cache
}

// ClearCache drops this node's cached source bytes, forcing re-encoding
// to derive canonical bytes from the current field values. It does not
// recurse into children: callers that mutate a subtree should clear the
// cache at every ancestor up to the root, since a stale ancestor cache
// would otherwise still replay the old bytes verbatim.
func (d *Data) ClearCache() {
	d.cache = nil
}

// Equal compares two Data trees structurally. Integers compare
// numerically, byte strings bytewise, lists/maps elementwise in order,
// and constructors by tag then args. The CBOR cache never participates.
func (d *Data) Equal(other *Data) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case KindInteger:
		return d.Integer.Cmp(other.Integer) == 0
	case KindBytes:
		return bytesEqual(d.Bytes, other.Bytes)
	case KindList:
		if len(d.List) != len(other.List) {
			return false
		}
		for i := range d.List {
			if !d.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(d.Map) != len(other.Map) {
			return false
		}
		for i := range d.Map {
			if !d.Map[i].Key.Equal(other.Map[i].Key) || !d.Map[i].Value.Equal(other.Map[i].Value) {
				return false
			}
		}
		return true
	case KindConstr:
		if d.ConstrTag != other.ConstrTag {
			return false
		}
		if len(d.ConstrArgs) != len(other.ConstrArgs) {
			return false
		}
		for i := range d.ConstrArgs {
			if !d.ConstrArgs[i].Equal(other.ConstrArgs[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
