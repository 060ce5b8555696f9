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

// Package ordmap implements the insertion-ordered, equality-by-key map
// that asset-value maps build on. Plutus Data and metadatum maps keep
// their own entry slices and do not use Map[K, V].
package ordmap

// Map is a sequence of (K, V) pairs with insertion order preserved and
// equality-by-key lookup. Entries are not hashed or sorted. Inserting a
// key that is already present replaces its value in place, so a Map never
// holds duplicate keys.
type Map[K comparable, V any] struct {
	keys   []K
	values []V
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Get looks up the value for key, returning ok=false if absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	for i, k := range m.keys {
		if k == key {
			return m.values[i], true
		}
	}
	var zero V
	return zero, false
}

// Insert replaces the value of an existing entry with an equal key
// in place, or appends a new entry at the end if no match exists.
func (m *Map[K, V]) Insert(key K, value V) {
	for i, k := range m.keys {
		if k == key {
			m.values[i] = value
			return
		}
	}
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Delete removes the entry for key, if present, shifting later entries
// left to preserve relative order.
func (m *Map[K, V]) Delete(key K) {
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			m.values = append(m.values[:i], m.values[i+1:]...)
			return
		}
	}
}

// KeyAt returns the key at index i in insertion order.
func (m *Map[K, V]) KeyAt(i int) K {
	return m.keys[i]
}

// ValueAt returns the value at index i in insertion order.
func (m *Map[K, V]) ValueAt(i int) V {
	return m.values[i]
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns a copy of the values in insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.values))
	copy(out, m.values)
	return out
}

// Equal reports whether m and other hold the same entries in the same
// order, comparing values with eq.
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := range m.keys {
		if m.keys[i] != other.keys[i] {
			return false
		}
		if !eq(m.values[i], other.values[i]) {
			return false
		}
	}
	return true
}
