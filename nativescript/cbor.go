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

package nativescript

import (
	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/hashing"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

// Encode renders s as the definite-length CBOR array §4.8 specifies.
func Encode(s *Script) []byte {
	w := cbor.NewWriter()
	writeScript(w, s)
	return w.Bytes()
}

func writeScript(w *cbor.Writer, s *Script) {
	switch s.Kind {
	case KindPubkey:
		w.WriteStartArray(2)
		w.WriteUint(tagPubkey)
		w.WriteBytestring(s.KeyHash.Bytes())
	case KindAll:
		w.WriteStartArray(2)
		w.WriteUint(tagAll)
		writeScriptArray(w, s.Scripts)
	case KindAny:
		w.WriteStartArray(2)
		w.WriteUint(tagAny)
		writeScriptArray(w, s.Scripts)
	case KindNOfK:
		w.WriteStartArray(3)
		w.WriteUint(tagNOfK)
		w.WriteUint(s.N)
		writeScriptArray(w, s.Scripts)
	case KindInvalidBefore:
		w.WriteStartArray(2)
		w.WriteUint(tagInvalidBefore)
		w.WriteUint(s.Slot)
	case KindInvalidAfter:
		w.WriteStartArray(2)
		w.WriteUint(tagInvalidAfter)
		w.WriteUint(s.Slot)
	}
}

// writeScriptArray writes a definite-length array of nested scripts, per
// §4.8's "nested script arrays are definite" rule.
func writeScriptArray(w *cbor.Writer, scripts []*Script) {
	w.WriteStartArray(int64(len(scripts)))
	for _, s := range scripts {
		writeScript(w, s)
	}
}

// Decode parses the next native script from r.
func Decode(r *cbor.Reader) (*Script, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	if n == cbor.IndefiniteLength {
		return nil, cborerr.New(cborerr.KindDecoding, "native script array must be definite-length")
	}
	tag, err := r.ReadUint()
	if err != nil {
		return nil, err
	}

	var s *Script
	switch tag {
	case tagPubkey:
		if n != 2 {
			return nil, cborerr.New(cborerr.KindDecoding, "pubkey script must have 2 elements")
		}
		raw, err := r.ReadBytestring()
		if err != nil {
			return nil, err
		}
		h, err := hashing.NewHash28(raw)
		if err != nil {
			return nil, err
		}
		s = Pubkey(h)
	case tagAll:
		if n != 2 {
			return nil, cborerr.New(cborerr.KindDecoding, "all script must have 2 elements")
		}
		scripts, err := decodeScriptArray(r)
		if err != nil {
			return nil, err
		}
		s = All(scripts)
	case tagAny:
		if n != 2 {
			return nil, cborerr.New(cborerr.KindDecoding, "any script must have 2 elements")
		}
		scripts, err := decodeScriptArray(r)
		if err != nil {
			return nil, err
		}
		s = Any(scripts)
	case tagNOfK:
		if n != 3 {
			return nil, cborerr.New(cborerr.KindDecoding, "atLeast script must have 3 elements")
		}
		k, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		scripts, err := decodeScriptArray(r)
		if err != nil {
			return nil, err
		}
		s = NOfK(k, scripts)
	case tagInvalidBefore:
		if n != 2 {
			return nil, cborerr.New(cborerr.KindDecoding, "invalidBefore script must have 2 elements")
		}
		slot, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		s = InvalidBefore(slot)
	case tagInvalidAfter:
		if n != 2 {
			return nil, cborerr.New(cborerr.KindDecoding, "invalidAfter script must have 2 elements")
		}
		slot, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		s = InvalidAfter(slot)
	default:
		return nil, cborerr.New(cborerr.KindDecoding, "unrecognized native script tag")
	}

	if err := r.ReadEndArray(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeScriptArray(r *cbor.Reader) ([]*Script, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	if n == cbor.IndefiniteLength {
		return nil, cborerr.New(cborerr.KindDecoding, "nested native script array must be definite-length")
	}
	scripts := make([]*Script, 0, n)
	for i := int64(0); i < n; i++ {
		s, err := Decode(r)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	if err := r.ReadEndArray(); err != nil {
		return nil, err
	}
	return scripts, nil
}
