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

// Package hashing provides the fixed-width cryptographic hashes and
// checksum/KDF primitives the rest of the module builds on: Blake2b at
// the three widths Cardano uses, CRC-32 for the Byron address trailer,
// and HMAC-SHA-512/PBKDF2-HMAC-SHA-512 for HD key derivation.
package hashing

import (
	"encoding/hex"

	"github.com/blinklabs-io/cardano-core/internal/cborerr"
	"golang.org/x/crypto/blake2b"
)

// Hash28 is a Blake2b-224 digest, used for key and script hashes.
type Hash28 [28]byte

// Hash32 is a Blake2b-256 digest, used for transaction and block hashes.
type Hash32 [32]byte

// Hash64 is a Blake2b-512 digest.
type Hash64 [64]byte

// NewHash28 constructs a Hash28 from exactly 28 bytes.
func NewHash28(b []byte) (Hash28, error) {
	var h Hash28
	if len(b) != len(h) {
		return h, cborerr.New(cborerr.KindInvalidArgument, "hash must be exactly 28 bytes")
	}
	copy(h[:], b)
	return h, nil
}

// NewHash32 constructs a Hash32 from exactly 32 bytes.
func NewHash32(b []byte) (Hash32, error) {
	var h Hash32
	if len(b) != len(h) {
		return h, cborerr.New(cborerr.KindInvalidArgument, "hash must be exactly 32 bytes")
	}
	copy(h[:], b)
	return h, nil
}

// NewHash64 constructs a Hash64 from exactly 64 bytes.
func NewHash64(b []byte) (Hash64, error) {
	var h Hash64
	if len(b) != len(h) {
		return h, cborerr.New(cborerr.KindInvalidArgument, "hash must be exactly 64 bytes")
	}
	copy(h[:], b)
	return h, nil
}

func (h Hash28) Bytes() []byte   { return h[:] }
func (h Hash28) String() string  { return hex.EncodeToString(h[:]) }
func (h Hash32) Bytes() []byte   { return h[:] }
func (h Hash32) String() string  { return hex.EncodeToString(h[:]) }
func (h Hash64) Bytes() []byte   { return h[:] }
func (h Hash64) String() string  { return hex.EncodeToString(h[:]) }

// Compute224 returns the Blake2b-224 digest of data.
func Compute224(data []byte) Hash28 {
	h, _ := blake2b.New(28, nil)
	h.Write(data)
	var out Hash28
	copy(out[:], h.Sum(nil))
	return out
}

// Compute256 returns the Blake2b-256 digest of data.
func Compute256(data []byte) Hash32 {
	return blake2b.Sum256(data)
}

// Compute512 returns the Blake2b-512 digest of data.
func Compute512(data []byte) Hash64 {
	return blake2b.Sum512(data)
}
