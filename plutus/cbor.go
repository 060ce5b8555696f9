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

package plutus

import (
	"github.com/blinklabs-io/cardano-core/bigint"
	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

const (
	tagConstrSmallBase = 121 // tag = 121 + constr_tag for constr_tag in [0,6]
	tagConstrSmallMax  = 6
	tagConstrBigBase   = 1280 // tag = 1280 + (constr_tag - 7) for constr_tag in [7,127]
	tagConstrBigMax    = 127
	tagConstrGeneric   = 102

	bytestringChunkSize = 64
)

// Encode renders d as canonical CBOR, or replays its cache verbatim if
// one is populated.
func Encode(d *Data) []byte {
	w := cbor.NewWriter()
	writeData(w, d)
	return w.Bytes()
}

func writeData(w *cbor.Writer, d *Data) {
	if d.cache != nil {
		w.WriteEncodedValue(d.cache)
		return
	}
	switch d.Kind {
	case KindInteger:
		d.Integer.WriteCBOR(w)
	case KindBytes:
		if len(d.Bytes) > bytestringChunkSize {
			w.WriteIndefiniteBytestringChunks(d.Bytes, bytestringChunkSize)
		} else {
			w.WriteBytestring(d.Bytes)
		}
	case KindList:
		writeDataList(w, d.List, d.Definite)
	case KindMap:
		w.WriteStartMap(int64(len(d.Map)))
		for _, entry := range d.Map {
			writeData(w, entry.Key)
			writeData(w, entry.Value)
		}
		w.WriteEndMap(false)
	case KindConstr:
		writeConstr(w, d)
	}
}

// writeDataList emits items as a CBOR array. An empty list is always
// definite-length; a non-empty list is indefinite-length unless the
// caller opts into definite emission via definite.
func writeDataList(w *cbor.Writer, items []*Data, definite bool) {
	if len(items) == 0 {
		w.WriteStartArray(0)
		return
	}
	if definite {
		w.WriteStartArray(int64(len(items)))
		for _, item := range items {
			writeData(w, item)
		}
		w.WriteEndArray(false)
		return
	}
	w.WriteStartArray(cbor.IndefiniteLength)
	for _, item := range items {
		writeData(w, item)
	}
	w.WriteEndArray(true)
}

func writeConstr(w *cbor.Writer, d *Data) {
	switch {
	case d.ConstrTag <= tagConstrSmallMax:
		w.WriteTag(tagConstrSmallBase + d.ConstrTag)
		writeDataList(w, d.ConstrArgs, false)
	case d.ConstrTag <= tagConstrBigMax:
		w.WriteTag(tagConstrBigBase + (d.ConstrTag - 7))
		writeDataList(w, d.ConstrArgs, false)
	default:
		w.WriteTag(tagConstrGeneric)
		w.WriteStartArray(2)
		w.WriteUint(d.ConstrTag)
		writeDataList(w, d.ConstrArgs, false)
		w.WriteEndArray(false)
	}
}

// Decode parses the next Plutus Data item from r, populating the node's
// cache with the exact bytes it spanned.
func Decode(r *cbor.Reader) (*Data, error) {
	raw, err := r.ReadEncodedValue()
	if err != nil {
		return nil, err
	}
	d, err := decodeOne(cbor.NewReader(raw))
	if err != nil {
		return nil, err
	}
	d.cache = raw
	return d, nil
}

func decodeOne(r *cbor.Reader) (*Data, error) {
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
		return &Data{Kind: KindInteger, Integer: n}, nil
	case cbor.MajorByteString:
		b, err := r.ReadBytestring()
		if err != nil {
			return nil, err
		}
		return &Data{Kind: KindBytes, Bytes: b}, nil
	case cbor.MajorArray:
		items, err := decodeDataList(r)
		if err != nil {
			return nil, err
		}
		return &Data{Kind: KindList, List: items}, nil
	case cbor.MajorMap:
		return decodeDataMap(r)
	case cbor.MajorTag:
		return decodeConstrOrBignum(r)
	default:
		return nil, cborerr.New(cborerr.KindDecoding, "unexpected major type in Plutus Data")
	}
}

func decodeDataList(r *cbor.Reader) ([]*Data, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	var items []*Data
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
		items = make([]*Data, 0, n)
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

func decodeDataMap(r *cbor.Reader) (*Data, error) {
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
	return &Data{Kind: KindMap, Map: entries}, nil
}

func decodeConstrOrBignum(r *cbor.Reader) (*Data, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return nil, err
	}

	switch {
	case tag == cbor.TagBignumPositive || tag == cbor.TagBignumNegative:
		raw, err := r.ReadBytestring()
		if err != nil {
			return nil, err
		}
		n := bigint.FromBytes(raw, false)
		if tag == cbor.TagBignumNegative {
			// tag 3 stores -(n+1), so the value is -1 - magnitude.
			n = bigint.FromInt64(-1).Sub(n)
		}
		return &Data{Kind: KindInteger, Integer: n}, nil
	case tag >= tagConstrSmallBase && tag <= tagConstrSmallBase+tagConstrSmallMax:
		args, err := decodeDataList(r)
		if err != nil {
			return nil, err
		}
		return &Data{Kind: KindConstr, ConstrTag: tag - tagConstrSmallBase, ConstrArgs: args}, nil
	case tag >= tagConstrBigBase && tag <= tagConstrBigBase+(tagConstrBigMax-7):
		args, err := decodeDataList(r)
		if err != nil {
			return nil, err
		}
		return &Data{Kind: KindConstr, ConstrTag: tag - tagConstrBigBase + 7, ConstrArgs: args}, nil
	case tag == tagConstrGeneric:
		if _, err := r.ReadStartArray(); err != nil {
			return nil, err
		}
		constrTag, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		args, err := decodeDataList(r)
		if err != nil {
			return nil, err
		}
		if err := r.ReadEndArray(); err != nil {
			return nil, err
		}
		return &Data{Kind: KindConstr, ConstrTag: constrTag, ConstrArgs: args}, nil
	default:
		return nil, cborerr.New(cborerr.KindDecoding, "unrecognized tag in Plutus Data")
	}
}
