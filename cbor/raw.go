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

package cbor

// RawMessage holds an already-encoded CBOR item verbatim, the way
// encoding/json.RawMessage does for JSON. It is how domain types expose
// their CBOR cache to callers that just want the bytes.
type RawMessage []byte

// ByteString is a comparable wrapper around a byte slice, usable as a Go
// map key (unlike []byte). It round-trips through CBOR as an ordinary
// byte string.
type ByteString string

// NewByteString wraps b as a ByteString.
func NewByteString(b []byte) ByteString {
	return ByteString(b)
}

// Bytes returns the underlying bytes.
func (b ByteString) Bytes() []byte {
	return []byte(b)
}

func (b ByteString) String() string {
	return string(b)
}
