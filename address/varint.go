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

package address

import "github.com/blinklabs-io/cardano-core/internal/cborerr"

// EncodeVarint encodes value as big-endian base-128 with the continuation
// bit set on every byte but the last, using the minimal number of bytes.
func EncodeVarint(value uint64) []byte {
	var tmp [10]byte
	n := 0
	tmp[n] = byte(value & 0x7F)
	n++
	remaining := value >> 7
	for remaining > 0 {
		tmp[n] = byte(remaining&0x7F) | 0x80
		n++
		remaining >>= 7
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = tmp[n-i-1]
	}
	return out
}

// DecodeVarint reads a single big-endian base-128 varint from the front of
// buf, returning the decoded value and the number of bytes consumed.
// Decoding accepts 1..5 bytes.
func DecodeVarint(buf []byte) (value uint64, consumed int, err error) {
	for consumed < 5 {
		if consumed >= len(buf) {
			return 0, 0, cborerr.New(cborerr.KindInvalidAddressFormat, "truncated pointer varint")
		}
		b := buf[consumed]
		value = (value << 7) | uint64(b&0x7F)
		consumed++
		if b&0x80 == 0 {
			return value, consumed, nil
		}
	}
	return 0, 0, cborerr.New(cborerr.KindInvalidAddressFormat, "pointer varint exceeds 5 bytes")
}
