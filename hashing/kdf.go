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

package hashing

import (
	"crypto/hmac"
	"crypto/sha512"
	"hash/crc32"

	"golang.org/x/crypto/pbkdf2"
)

// HMACSHA512 computes the HMAC-SHA-512 MAC of msg under key, as used by
// the BIP32-Ed25519 child derivation in package bip32ed25519.
func HMACSHA512(key, msg []byte) [64]byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	var out [64]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// PBKDF2HMACSHA512 derives n bytes of key material from password and salt
// using PBKDF2-HMAC-SHA-512 with the given iteration count.
func PBKDF2HMACSHA512(password, salt []byte, iterations, n int) []byte {
	return pbkdf2.Key(password, salt, iterations, n, sha512.New)
}

// CRC32IEEE computes the IEEE CRC-32 checksum used by the Byron address
// trailer.
func CRC32IEEE(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
