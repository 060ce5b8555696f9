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

// Package txtenc wraps the text encodings Cardano addresses are rendered
// in: bech32 for Shelley-era addresses and base58 for Byron legacy
// addresses.
package txtenc

import (
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// EncodeBech32 encodes data under human-readable prefix hrp.
func EncodeBech32(hrp string, data []byte) (string, error) {
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", cborerr.Wrap(cborerr.KindDecoding, "failed to convert bech32 payload to 5-bit groups", err)
	}
	s, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", cborerr.Wrap(cborerr.KindDecoding, "failed to bech32-encode payload", err)
	}
	return s, nil
}

// DecodeBech32 decodes s, returning its human-readable prefix and payload.
func DecodeBech32(s string) (hrp string, data []byte, err error) {
	hrp, fiveBit, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, cborerr.Wrap(cborerr.KindDecoding, "failed to bech32-decode string", err)
	}
	data, err = bech32.ConvertBits(fiveBit, 5, 8, false)
	if err != nil {
		return "", nil, cborerr.Wrap(cborerr.KindDecoding, "failed to convert bech32 payload from 5-bit groups", err)
	}
	return hrp, data, nil
}

// EncodeBase58 encodes data as base58 with no added version or checksum
// bytes, matching the Byron address's use of base58 as a pure bytes
// encoding layered outside its own CBOR/CRC-32 structure.
func EncodeBase58(data []byte) string {
	return base58.Encode(data)
}

// DecodeBase58 decodes a base58 string with no version or checksum
// bytes expected.
func DecodeBase58(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && len(s) != 0 {
		return nil, cborerr.New(cborerr.KindDecoding, "invalid base58 string")
	}
	return decoded, nil
}

// EncodedBech32Length estimates the length of the bech32 string that will
// result from encoding payloadLen bytes under hrp, matching the
// get_encoded_length style of pre-sizing helper used throughout the
// original C address-encoding routines.
func EncodedBech32Length(hrp string, payloadLen int) int {
	groups := (payloadLen*8 + 4) / 5
	return len(hrp) + 1 + groups + 6
}

// DecodedBech32Length estimates the number of raw bytes that decoding an
// encoded string of encodedLen characters under a prefix of hrpLen
// characters will produce.
func DecodedBech32Length(hrpLen, encodedLen int) int {
	groups := encodedLen - hrpLen - 1 - 6
	if groups <= 0 {
		return 0
	}
	return groups * 5 / 8
}
