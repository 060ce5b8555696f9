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

// Package witness implements the transaction witness set: the bundle of
// signatures, scripts, and redeemers that authorize a transaction's
// inputs and validate its Plutus scripts.
package witness

import (
	"github.com/blinklabs-io/cardano-core/nativescript"
	"github.com/blinklabs-io/cardano-core/plutus"
)

// VkeyWitness is a single Ed25519 signature over the transaction body,
// keyed by the verification key that produced it.
type VkeyWitness struct {
	Vkey      [32]byte
	Signature [64]byte
}

// BootstrapWitness is a Byron-era witness carrying the extra chain-code
// and attribute material legacy addresses require.
type BootstrapWitness struct {
	Vkey      [32]byte
	Signature [64]byte
	ChainCode [32]byte
	Attributes []byte
}

// RedeemerTag identifies which part of the transaction a redeemer
// authorizes the execution of.
type RedeemerTag int

const (
	RedeemerTagSpend RedeemerTag = iota
	RedeemerTagMint
	RedeemerTagCert
	RedeemerTagReward
	RedeemerTagVoting
	RedeemerTagProposing
)

// ExUnits bounds the execution cost a redeemer's script invocation is
// allowed to consume.
type ExUnits struct {
	Mem   uint64
	Steps uint64
}

// Redeemer supplies the Plutus Data argument and execution budget for one
// script invocation, identified by tag and index into the corresponding
// transaction body list.
type Redeemer struct {
	Tag     RedeemerTag
	Index   uint64
	Data    *plutus.Data
	ExUnits ExUnits
}

// scriptBucket is a first-seen-ordered list of raw script bytes with its
// own CBOR cache, used for the three Plutus-script buckets (keys 3/6/7).
// Neither decoding nor the AddPlutusV*Script methods remove duplicate
// scripts; a script seen twice is kept twice.
type scriptBucket struct {
	scripts [][]byte
	cache   []byte
}

// ClearCache drops the bucket's cached source bytes, so its next encoding
// is re-derived from current contents instead of replayed verbatim.
func (b *scriptBucket) ClearCache() {
	b.cache = nil
}

// Set is the product-of-optional-lists witness set: vkey witnesses,
// native scripts, Byron bootstrap witnesses, Plutus V1/V2/V3 scripts,
// Plutus Data, and redeemers. Carries its own whole-set CBOR cache in
// addition to the per-bucket caches on the Plutus script buckets.
type Set struct {
	VkeyWitnesses      []VkeyWitness
	NativeScripts      []*nativescript.Script
	BootstrapWitnesses []BootstrapWitness
	PlutusV1Scripts    scriptBucket
	PlutusData         []*plutus.Data
	Redeemers          []Redeemer
	PlutusV2Scripts    scriptBucket
	PlutusV3Scripts    scriptBucket

	cache []byte
}

// New returns an empty witness set.
func New() *Set {
	return &Set{}
}

// Cache returns the exact source bytes this set was decoded from, or nil.
func (s *Set) Cache() []byte {
	return s.cache
}

// ClearCache drops the whole-set cached source bytes. Does not affect the
// per-bucket Plutus script caches; clear those individually via
// PlutusV1Scripts.ClearCache (etc.) to force their re-derivation too.
func (s *Set) ClearCache() {
	s.cache = nil
}

// ClearPlutusV1Cache drops the Plutus V1 script bucket's cache.
func (s *Set) ClearPlutusV1Cache() { s.PlutusV1Scripts.ClearCache() }

// ClearPlutusV2Cache drops the Plutus V2 script bucket's cache.
func (s *Set) ClearPlutusV2Cache() { s.PlutusV2Scripts.ClearCache() }

// ClearPlutusV3Cache drops the Plutus V3 script bucket's cache.
func (s *Set) ClearPlutusV3Cache() { s.PlutusV3Scripts.ClearCache() }

// AddPlutusV1Script appends a raw Plutus V1 script to the bucket and
// clears its cache, since the bucket's contents changed.
func (s *Set) AddPlutusV1Script(raw []byte) {
	s.PlutusV1Scripts.scripts = append(s.PlutusV1Scripts.scripts, raw)
	s.PlutusV1Scripts.cache = nil
	s.cache = nil
}

// AddPlutusV2Script appends a raw Plutus V2 script to the bucket and
// clears its cache.
func (s *Set) AddPlutusV2Script(raw []byte) {
	s.PlutusV2Scripts.scripts = append(s.PlutusV2Scripts.scripts, raw)
	s.PlutusV2Scripts.cache = nil
	s.cache = nil
}

// AddPlutusV3Script appends a raw Plutus V3 script to the bucket and
// clears its cache.
func (s *Set) AddPlutusV3Script(raw []byte) {
	s.PlutusV3Scripts.scripts = append(s.PlutusV3Scripts.scripts, raw)
	s.PlutusV3Scripts.cache = nil
	s.cache = nil
}

// PlutusV1 returns the Plutus V1 scripts in first-seen order.
func (s *Set) PlutusV1() [][]byte { return s.PlutusV1Scripts.scripts }

// PlutusV2 returns the Plutus V2 scripts in first-seen order.
func (s *Set) PlutusV2() [][]byte { return s.PlutusV2Scripts.scripts }

// PlutusV3 returns the Plutus V3 scripts in first-seen order.
func (s *Set) PlutusV3() [][]byte { return s.PlutusV3Scripts.scripts }
