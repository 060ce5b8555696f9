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

// Package nativescript implements Cardano's native (non-Plutus) script
// language: a recursive boolean combinator tree over key-hash signature
// requirements and validity-interval bounds.
package nativescript

import (
	"github.com/blinklabs-io/cardano-core/hashing"
)

// Kind discriminates the Script sum-type arms.
type Kind int

const (
	KindPubkey Kind = iota
	KindAll
	KindAny
	KindNOfK
	KindInvalidBefore
	KindInvalidAfter
)

// scriptTag is the leading integer in a native script's CBOR array, per
// the §4.8 tree shape table.
const (
	tagPubkey        uint64 = 0
	tagAll           uint64 = 1
	tagAny           uint64 = 2
	tagNOfK          uint64 = 3
	tagInvalidBefore uint64 = 4
	tagInvalidAfter  uint64 = 5
)

// nativeScriptHashPrefix distinguishes a native-script hash from a
// Plutus-script hash (0x01/0x02/0x03 for V1/V2/V3), per §4.8.
const nativeScriptHashPrefix = 0x00

// Script is the recursive native-script sum type:
// Pubkey | All | Any | NOfK | InvalidBefore | InvalidAfter.
type Script struct {
	Kind Kind

	KeyHash hashing.Hash28 // Pubkey
	Scripts []*Script      // All, Any, and the NOfK member list
	N       uint64         // NOfK
	Slot    uint64         // InvalidBefore, InvalidAfter
}

// Pubkey constructs a signature-requirement leaf.
func Pubkey(hash hashing.Hash28) *Script {
	return &Script{Kind: KindPubkey, KeyHash: hash}
}

// All constructs a script requiring every child to be satisfied.
func All(scripts []*Script) *Script {
	return &Script{Kind: KindAll, Scripts: scripts}
}

// Any constructs a script requiring at least one child to be satisfied.
func Any(scripts []*Script) *Script {
	return &Script{Kind: KindAny, Scripts: scripts}
}

// NOfK constructs a script requiring at least n of the given children.
func NOfK(n uint64, scripts []*Script) *Script {
	return &Script{Kind: KindNOfK, N: n, Scripts: scripts}
}

// InvalidBefore constructs a script satisfied only at or after slot.
func InvalidBefore(slot uint64) *Script {
	return &Script{Kind: KindInvalidBefore, Slot: slot}
}

// InvalidAfter constructs a script satisfied only at or before slot.
func InvalidAfter(slot uint64) *Script {
	return &Script{Kind: KindInvalidAfter, Slot: slot}
}

// Hash returns blake2b_224(0x00 || cbor(s)), the native-script hash.
func Hash(s *Script) hashing.Hash28 {
	encoded := Encode(s)
	prefixed := make([]byte, 0, len(encoded)+1)
	prefixed = append(prefixed, nativeScriptHashPrefix)
	prefixed = append(prefixed, encoded...)
	return hashing.Compute224(prefixed)
}

// Equal compares two Script trees structurally.
func (s *Script) Equal(other *Script) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case KindPubkey:
		return s.KeyHash == other.KeyHash
	case KindAll, KindAny:
		return equalScriptSlices(s.Scripts, other.Scripts)
	case KindNOfK:
		return s.N == other.N && equalScriptSlices(s.Scripts, other.Scripts)
	case KindInvalidBefore, KindInvalidAfter:
		return s.Slot == other.Slot
	default:
		return false
	}
}

func equalScriptSlices(a, b []*Script) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
