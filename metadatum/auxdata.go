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

package metadatum

import (
	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
	"github.com/blinklabs-io/cardano-core/nativescript"
)

const auxiliaryDataTag uint64 = 259

const (
	auxKeyMetadata      uint64 = 0
	auxKeyNativeScripts uint64 = 1
	auxKeyPlutusScripts uint64 = 2
)

// MetadataEntry is one label/value pair of auxiliary data's top-level
// metadata map, in insertion order.
type MetadataEntry struct {
	Label uint64
	Value *Metadatum
}

// AuxiliaryData is the tag-259 wrapper carrying a transaction's
// metadata map plus the scripts that accompanied it on submission.
// Carries its own CBOR cache so re-serialization preserves the exact
// bytes a signature may have been computed over.
type AuxiliaryData struct {
	Metadata      []MetadataEntry
	NativeScripts []*nativescript.Script
	PlutusScripts [][]byte

	cache []byte
}

// NewAuxiliaryData constructs an AuxiliaryData wrapper.
func NewAuxiliaryData(metadata []MetadataEntry, nativeScripts []*nativescript.Script, plutusScripts [][]byte) *AuxiliaryData {
	return &AuxiliaryData{Metadata: metadata, NativeScripts: nativeScripts, PlutusScripts: plutusScripts}
}

// Cache returns the exact source bytes this wrapper was decoded from, or
// nil if built fresh or cleared.
func (a *AuxiliaryData) Cache() []byte {
	return a.cache
}

// ClearCache drops the cached source bytes.
func (a *AuxiliaryData) ClearCache() {
	a.cache = nil
}

// EncodeAuxiliaryData renders a as tag-259 CBOR, replaying its cache
// verbatim if populated.
func EncodeAuxiliaryData(a *AuxiliaryData) ([]byte, error) {
	w := cbor.NewWriter()
	if a.cache != nil {
		w.WriteEncodedValue(a.cache)
		return w.Bytes(), nil
	}
	w.WriteTag(auxiliaryDataTag)

	n := int64(1)
	if len(a.NativeScripts) > 0 {
		n++
	}
	if len(a.PlutusScripts) > 0 {
		n++
	}
	w.WriteStartMap(n)

	w.WriteUint(auxKeyMetadata)
	w.WriteStartMap(int64(len(a.Metadata)))
	for _, entry := range a.Metadata {
		w.WriteUint(entry.Label)
		if err := writeMetadatum(w, entry.Value); err != nil {
			return nil, err
		}
	}
	w.WriteEndMap(false)

	if len(a.NativeScripts) > 0 {
		w.WriteUint(auxKeyNativeScripts)
		w.WriteStartArray(int64(len(a.NativeScripts)))
		for _, s := range a.NativeScripts {
			w.WriteEncodedValue(nativescript.Encode(s))
		}
	}

	if len(a.PlutusScripts) > 0 {
		w.WriteUint(auxKeyPlutusScripts)
		w.WriteStartArray(int64(len(a.PlutusScripts)))
		for _, s := range a.PlutusScripts {
			w.WriteBytestring(s)
		}
	}

	return w.Bytes(), nil
}

// DecodeAuxiliaryData parses the next auxiliary-data wrapper from r,
// populating its cache with the exact bytes it spanned.
func DecodeAuxiliaryData(r *cbor.Reader) (*AuxiliaryData, error) {
	raw, err := r.ReadEncodedValue()
	if err != nil {
		return nil, err
	}
	a, err := decodeAuxiliaryDataOne(cbor.NewReader(raw))
	if err != nil {
		return nil, err
	}
	a.cache = raw
	return a, nil
}

func decodeAuxiliaryDataOne(r *cbor.Reader) (*AuxiliaryData, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return nil, err
	}
	if tag != auxiliaryDataTag {
		return nil, cborerr.New(cborerr.KindDecoding, "auxiliary data must be tagged 259")
	}

	n, err := r.ReadStartMap()
	if err != nil {
		return nil, err
	}

	a := &AuxiliaryData{}
	readEntry := func() error {
		key, err := r.ReadUint()
		if err != nil {
			return err
		}
		switch key {
		case auxKeyMetadata:
			entries, err := decodeMetadataMap(r)
			if err != nil {
				return err
			}
			a.Metadata = entries
		case auxKeyNativeScripts:
			scripts, err := decodeNativeScriptArray(r)
			if err != nil {
				return err
			}
			a.NativeScripts = scripts
		case auxKeyPlutusScripts:
			scripts, err := decodeBytestringArray(r)
			if err != nil {
				return err
			}
			a.PlutusScripts = scripts
		default:
			return cborerr.New(cborerr.KindDecoding, "unrecognized auxiliary data map key")
		}
		return nil
	}

	if n == cbor.IndefiniteLength {
		for {
			st, err := r.PeekState()
			if err != nil {
				return nil, err
			}
			if st.IsBreak {
				break
			}
			if err := readEntry(); err != nil {
				return nil, err
			}
		}
	} else {
		for i := int64(0); i < n; i++ {
			if err := readEntry(); err != nil {
				return nil, err
			}
		}
	}
	if err := r.ReadEndMap(); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeMetadataMap(r *cbor.Reader) ([]MetadataEntry, error) {
	n, err := r.ReadStartMap()
	if err != nil {
		return nil, err
	}
	var entries []MetadataEntry
	readOne := func() error {
		label, err := r.ReadUint()
		if err != nil {
			return err
		}
		value, err := Decode(r)
		if err != nil {
			return err
		}
		entries = append(entries, MetadataEntry{Label: label, Value: value})
		return nil
	}
	if n == cbor.IndefiniteLength {
		for {
			st, err := r.PeekState()
			if err != nil {
				return nil, err
			}
			if st.IsBreak {
				break
			}
			if err := readOne(); err != nil {
				return nil, err
			}
		}
	} else {
		for i := int64(0); i < n; i++ {
			if err := readOne(); err != nil {
				return nil, err
			}
		}
	}
	if err := r.ReadEndMap(); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeNativeScriptArray(r *cbor.Reader) ([]*nativescript.Script, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	var scripts []*nativescript.Script
	appendOne := func() error {
		s, err := nativescript.Decode(r)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
		return nil
	}
	if n == cbor.IndefiniteLength {
		for {
			st, err := r.PeekState()
			if err != nil {
				return nil, err
			}
			if st.IsBreak {
				break
			}
			if err := appendOne(); err != nil {
				return nil, err
			}
		}
	} else {
		for i := int64(0); i < n; i++ {
			if err := appendOne(); err != nil {
				return nil, err
			}
		}
	}
	if err := r.ReadEndArray(); err != nil {
		return nil, err
	}
	return scripts, nil
}

func decodeBytestringArray(r *cbor.Reader) ([][]byte, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	var out [][]byte
	appendOne := func() error {
		b, err := r.ReadBytestring()
		if err != nil {
			return err
		}
		out = append(out, b)
		return nil
	}
	if n == cbor.IndefiniteLength {
		for {
			st, err := r.PeekState()
			if err != nil {
				return nil, err
			}
			if st.IsBreak {
				break
			}
			if err := appendOne(); err != nil {
				return nil, err
			}
		}
	} else {
		for i := int64(0); i < n; i++ {
			if err := appendOne(); err != nil {
				return nil, err
			}
		}
	}
	if err := r.ReadEndArray(); err != nil {
		return nil, err
	}
	return out, nil
}
