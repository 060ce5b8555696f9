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

// Package metadatum implements transaction metadatum: a recursive sum
// type like Plutus Data but without a constructor arm, and bounded so
// that bytes/text atoms fit in a single on-chain chunk's nominal size.
package metadatum

import (
	"github.com/blinklabs-io/cardano-core/bigint"
)

// maxAtomSize is the largest a Bytes or Text atom may be, per §4.9.
const maxAtomSize = 64

// Kind discriminates the Metadatum sum-type arms.
type Kind int

const (
	KindInteger Kind = iota
	KindBytes
	KindText
	KindList
	KindMap
)

// MapEntry is one key/value pair of a metadatum map, in insertion order.
// Keys may be any metadatum, not just integers or bytes.
type MapEntry struct {
	Key   *Metadatum
	Value *Metadatum
}

// Metadatum is the recursive sum type transaction auxiliary data is built
// from: Integer | Bytes | Text | List | Map. A decoded node may carry
// cache, the exact bytes it was parsed from.
type Metadatum struct {
	Kind Kind

	Integer bigint.Int
	Bytes   []byte
	Text    string
	List    []*Metadatum
	Map     []MapEntry

	cache []byte
}

// NewInteger constructs an Integer node from an int64.
func NewInteger(v int64) *Metadatum {
	return &Metadatum{Kind: KindInteger, Integer: bigint.FromInt64(v)}
}

// NewBigInteger constructs an Integer node from an arbitrary-precision value.
func NewBigInteger(v bigint.Int) *Metadatum {
	return &Metadatum{Kind: KindInteger, Integer: v}
}

// NewBytes constructs a Bytes node.
func NewBytes(b []byte) *Metadatum {
	out := make([]byte, len(b))
	copy(out, b)
	return &Metadatum{Kind: KindBytes, Bytes: out}
}

// NewText constructs a Text node.
func NewText(s string) *Metadatum {
	return &Metadatum{Kind: KindText, Text: s}
}

// NewList constructs a List node.
func NewList(items []*Metadatum) *Metadatum {
	return &Metadatum{Kind: KindList, List: items}
}

// NewMap constructs a Map node.
func NewMap(entries []MapEntry) *Metadatum {
	return &Metadatum{Kind: KindMap, Map: entries}
}

// Cache returns the exact source bytes this node was decoded from, or nil.
func (m *Metadatum) Cache() []byte {
	return m.cache
}

// ClearCache drops this node's cached source bytes. Does not recurse into
// children; callers mutating a subtree must clear every affected ancestor.
func (m *Metadatum) ClearCache() {
	m.cache = nil
}

// Equal compares two Metadatum trees structurally, ignoring cache.
func (m *Metadatum) Equal(other *Metadatum) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Kind != other.Kind {
		return false
	}
	switch m.Kind {
	case KindInteger:
		return m.Integer.Cmp(other.Integer) == 0
	case KindBytes:
		return bytesEqual(m.Bytes, other.Bytes)
	case KindText:
		return m.Text == other.Text
	case KindList:
		if len(m.List) != len(other.List) {
			return false
		}
		for i := range m.List {
			if !m.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(m.Map) != len(other.Map) {
			return false
		}
		for i := range m.Map {
			if !m.Map[i].Key.Equal(other.Map[i].Key) || !m.Map[i].Value.Equal(other.Map[i].Value) {
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
