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
	"github.com/blinklabs-io/cardano-core/bigint"
	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

// Encode renders m as canonical CBOR, or replays its cache verbatim if
// one is populated. Fails if any Bytes or Text atom in the tree exceeds
// the 64-byte on-chain atom limit.
func Encode(m *Metadatum) ([]byte, error) {
	w := cbor.NewWriter()
	if err := writeMetadatum(w, m); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func writeMetadatum(w *cbor.Writer, m *Metadatum) error {
	if m.cache != nil {
		w.WriteEncodedValue(m.cache)
		return nil
	}
	switch m.Kind {
	case KindInteger:
		m.Integer.WriteCBOR(w)
	case KindBytes:
		if len(m.Bytes) > maxAtomSize {
			return cborerr.New(cborerr.KindInvalidArgument, "metadatum bytes atom exceeds 64-byte limit")
		}
		w.WriteBytestring(m.Bytes)
	case KindText:
		if len(m.Text) > maxAtomSize {
			return cborerr.New(cborerr.KindInvalidArgument, "metadatum text atom exceeds 64-byte limit")
		}
		w.WriteTextstring(m.Text)
	case KindList:
		return writeMetadatumList(w, m.List)
	case KindMap:
		w.WriteStartMap(int64(len(m.Map)))
		for _, entry := range m.Map {
			if err := writeMetadatum(w, entry.Key); err != nil {
				return err
			}
			if err := writeMetadatum(w, entry.Value); err != nil {
				return err
			}
		}
		w.WriteEndMap(false)
	}
	return nil
}

func writeMetadatumList(w *cbor.Writer, items []*Metadatum) error {
	w.WriteStartArray(int64(len(items)))
	for _, item := range items {
		if err := writeMetadatum(w, item); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses the next metadatum from r, populating the node's cache
// with the exact bytes it spanned.
func Decode(r *cbor.Reader) (*Metadatum, error) {
	raw, err := r.ReadEncodedValue()
	if err != nil {
		return nil, err
	}
	m, err := decodeOne(cbor.NewReader(raw))
	if err != nil {
		return nil, err
	}
	m.cache = raw
	return m, nil
}

func decodeOne(r *cbor.Reader) (*Metadatum, error) {
	st, err := r.PeekState()
	if err != nil {
		return nil, err
	}

	switch st.Major {
	case cbor.MajorUnsignedInt, cbor.MajorNegativeInt:
		n, err := bigint.ReadCBOR(r)
		if err != nil {
			return nil, err
		}
		return &Metadatum{Kind: KindInteger, Integer: n}, nil
	case cbor.MajorByteString:
		b, err := r.ReadBytestring()
		if err != nil {
			return nil, err
		}
		if len(b) > maxAtomSize {
			return nil, cborerr.New(cborerr.KindDecoding, "metadatum bytes atom exceeds 64-byte limit")
		}
		return &Metadatum{Kind: KindBytes, Bytes: b}, nil
	case cbor.MajorTextString:
		s, err := r.ReadTextstring()
		if err != nil {
			return nil, err
		}
		if len(s) > maxAtomSize {
			return nil, cborerr.New(cborerr.KindDecoding, "metadatum text atom exceeds 64-byte limit")
		}
		return &Metadatum{Kind: KindText, Text: s}, nil
	case cbor.MajorArray:
		items, err := decodeMetadatumList(r)
		if err != nil {
			return nil, err
		}
		return &Metadatum{Kind: KindList, List: items}, nil
	case cbor.MajorMap:
		return decodeMetadatumMap(r)
	default:
		return nil, cborerr.New(cborerr.KindDecoding, "unexpected major type in metadatum")
	}
}

func decodeMetadatumList(r *cbor.Reader) ([]*Metadatum, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	var items []*Metadatum
	if n == cbor.IndefiniteLength {
		for {
			st, err := r.PeekState()
			if err != nil {
				return nil, err
			}
			if st.IsBreak {
				break
			}
			item, err := Decode(r)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	} else {
		items = make([]*Metadatum, 0, n)
		for i := int64(0); i < n; i++ {
			item, err := Decode(r)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	if err := r.ReadEndArray(); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeMetadatumMap(r *cbor.Reader) (*Metadatum, error) {
	n, err := r.ReadStartMap()
	if err != nil {
		return nil, err
	}
	var entries []MapEntry
	if n == cbor.IndefiniteLength {
		for {
			st, err := r.PeekState()
			if err != nil {
				return nil, err
			}
			if st.IsBreak {
				break
			}
			key, err := Decode(r)
			if err != nil {
				return nil, err
			}
			value, err := Decode(r)
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: key, Value: value})
		}
	} else {
		for i := int64(0); i < n; i++ {
			key, err := Decode(r)
			if err != nil {
				return nil, err
			}
			value, err := Decode(r)
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: key, Value: value})
		}
	}
	if err := r.ReadEndMap(); err != nil {
		return nil, err
	}
	return &Metadatum{Kind: KindMap, Map: entries}, nil
}
