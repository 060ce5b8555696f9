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

package witness

import (
	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
	"github.com/blinklabs-io/cardano-core/nativescript"
	"github.com/blinklabs-io/cardano-core/plutus"
)

const (
	keyVkeyWitnesses      uint64 = 0
	keyNativeScripts      uint64 = 1
	keyBootstrapWitnesses uint64 = 2
	keyPlutusV1Scripts    uint64 = 3
	keyPlutusData         uint64 = 4
	keyRedeemers          uint64 = 5
	keyPlutusV2Scripts    uint64 = 6
	keyPlutusV3Scripts    uint64 = 7
)

// Encode renders s as the CBOR map §4.10 specifies, replaying the
// whole-set cache verbatim if populated.
func Encode(s *Set) ([]byte, error) {
	w := cbor.NewWriter()
	if s.cache != nil {
		w.WriteEncodedValue(s.cache)
		return w.Bytes(), nil
	}

	var n int64
	if len(s.VkeyWitnesses) > 0 {
		n++
	}
	if len(s.NativeScripts) > 0 {
		n++
	}
	if len(s.BootstrapWitnesses) > 0 {
		n++
	}
	if len(s.PlutusV1Scripts.scripts) > 0 {
		n++
	}
	if len(s.PlutusData) > 0 {
		n++
	}
	if len(s.Redeemers) > 0 {
		n++
	}
	if len(s.PlutusV2Scripts.scripts) > 0 {
		n++
	}
	if len(s.PlutusV3Scripts.scripts) > 0 {
		n++
	}
	w.WriteStartMap(n)

	if len(s.VkeyWitnesses) > 0 {
		w.WriteUint(keyVkeyWitnesses)
		w.WriteStartArray(int64(len(s.VkeyWitnesses)))
		for _, vw := range s.VkeyWitnesses {
			w.WriteStartArray(2)
			w.WriteBytestring(vw.Vkey[:])
			w.WriteBytestring(vw.Signature[:])
		}
	}

	if len(s.NativeScripts) > 0 {
		w.WriteUint(keyNativeScripts)
		w.WriteStartArray(int64(len(s.NativeScripts)))
		for _, script := range s.NativeScripts {
			w.WriteEncodedValue(nativescript.Encode(script))
		}
	}

	if len(s.BootstrapWitnesses) > 0 {
		w.WriteUint(keyBootstrapWitnesses)
		w.WriteStartArray(int64(len(s.BootstrapWitnesses)))
		for _, bw := range s.BootstrapWitnesses {
			w.WriteStartArray(4)
			w.WriteBytestring(bw.Vkey[:])
			w.WriteBytestring(bw.Signature[:])
			w.WriteBytestring(bw.ChainCode[:])
			w.WriteBytestring(bw.Attributes)
		}
	}

	if len(s.PlutusV1Scripts.scripts) > 0 {
		w.WriteUint(keyPlutusV1Scripts)
		writeScriptBucket(w, &s.PlutusV1Scripts)
	}

	if len(s.PlutusData) > 0 {
		w.WriteUint(keyPlutusData)
		w.WriteStartArray(int64(len(s.PlutusData)))
		for _, d := range s.PlutusData {
			w.WriteEncodedValue(plutus.Encode(d))
		}
	}

	if len(s.Redeemers) > 0 {
		w.WriteUint(keyRedeemers)
		w.WriteStartArray(int64(len(s.Redeemers)))
		for _, r := range s.Redeemers {
			w.WriteStartArray(4)
			w.WriteUint(redeemerTagToWire(r.Tag))
			w.WriteUint(r.Index)
			w.WriteEncodedValue(plutus.Encode(r.Data))
			w.WriteStartArray(2)
			w.WriteUint(r.ExUnits.Mem)
			w.WriteUint(r.ExUnits.Steps)
		}
	}

	if len(s.PlutusV2Scripts.scripts) > 0 {
		w.WriteUint(keyPlutusV2Scripts)
		writeScriptBucket(w, &s.PlutusV2Scripts)
	}

	if len(s.PlutusV3Scripts.scripts) > 0 {
		w.WriteUint(keyPlutusV3Scripts)
		writeScriptBucket(w, &s.PlutusV3Scripts)
	}

	return w.Bytes(), nil
}

func writeScriptBucket(w *cbor.Writer, b *scriptBucket) {
	if b.cache != nil {
		w.WriteEncodedValue(b.cache)
		return
	}
	w.WriteStartArray(int64(len(b.scripts)))
	for _, raw := range b.scripts {
		w.WriteBytestring(raw)
	}
}

func redeemerTagToWire(t RedeemerTag) uint64 {
	return uint64(t)
}

func redeemerTagFromWire(v uint64) (RedeemerTag, error) {
	if v > uint64(RedeemerTagProposing) {
		return 0, cborerr.New(cborerr.KindDecoding, "unrecognized redeemer tag")
	}
	return RedeemerTag(v), nil
}

// Decode parses a witness set from r, populating the whole-set cache and
// the per-bucket caches of the Plutus script buckets with the exact
// bytes each spanned.
func Decode(r *cbor.Reader) (*Set, error) {
	raw, err := r.ReadEncodedValue()
	if err != nil {
		return nil, err
	}
	s, err := decodeOne(cbor.NewReader(raw))
	if err != nil {
		return nil, err
	}
	s.cache = raw
	return s, nil
}

func decodeOne(r *cbor.Reader) (*Set, error) {
	n, err := r.ReadStartMap()
	if err != nil {
		return nil, err
	}

	s := &Set{}
	readEntry := func() error {
		key, err := r.ReadUint()
		if err != nil {
			return err
		}
		switch key {
		case keyVkeyWitnesses:
			witnesses, err := decodeVkeyWitnesses(r)
			if err != nil {
				return err
			}
			s.VkeyWitnesses = witnesses
		case keyNativeScripts:
			scripts, err := decodeNativeScripts(r)
			if err != nil {
				return err
			}
			s.NativeScripts = scripts
		case keyBootstrapWitnesses:
			witnesses, err := decodeBootstrapWitnesses(r)
			if err != nil {
				return err
			}
			s.BootstrapWitnesses = witnesses
		case keyPlutusV1Scripts:
			bucket, err := decodeScriptBucket(r)
			if err != nil {
				return err
			}
			s.PlutusV1Scripts = bucket
		case keyPlutusData:
			data, err := decodePlutusDataArray(r)
			if err != nil {
				return err
			}
			s.PlutusData = data
		case keyRedeemers:
			redeemers, err := decodeRedeemers(r)
			if err != nil {
				return err
			}
			s.Redeemers = redeemers
		case keyPlutusV2Scripts:
			bucket, err := decodeScriptBucket(r)
			if err != nil {
				return err
			}
			s.PlutusV2Scripts = bucket
		case keyPlutusV3Scripts:
			bucket, err := decodeScriptBucket(r)
			if err != nil {
				return err
			}
			s.PlutusV3Scripts = bucket
		default:
			return cborerr.New(cborerr.KindDecoding, "unrecognized witness set map key")
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
	return s, nil
}

// forEachArrayElement visits each element of the array already opened by
// ReadStartArray (which reported length n), handling both definite- and
// indefinite-length arrays uniformly, and consumes the closing
// ReadEndArray before returning.
func forEachArrayElement(r *cbor.Reader, n int64, fn func() error) error {
	if n == cbor.IndefiniteLength {
		for {
			st, err := r.PeekState()
			if err != nil {
				return err
			}
			if st.IsBreak {
				break
			}
			if err := fn(); err != nil {
				return err
			}
		}
	} else {
		for i := int64(0); i < n; i++ {
			if err := fn(); err != nil {
				return err
			}
		}
	}
	return r.ReadEndArray()
}

func decodeVkeyWitnesses(r *cbor.Reader) ([]VkeyWitness, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	out := make([]VkeyWitness, 0, max0(n))
	err = forEachArrayElement(r, n, func() error {
		if _, err := r.ReadStartArray(); err != nil {
			return err
		}
		vkey, err := r.ReadBytestring()
		if err != nil {
			return err
		}
		sig, err := r.ReadBytestring()
		if err != nil {
			return err
		}
		if err := r.ReadEndArray(); err != nil {
			return err
		}
		if len(vkey) != 32 || len(sig) != 64 {
			return cborerr.New(cborerr.KindDecoding, "malformed vkey witness sizes")
		}
		var vw VkeyWitness
		copy(vw.Vkey[:], vkey)
		copy(vw.Signature[:], sig)
		out = append(out, vw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeBootstrapWitnesses(r *cbor.Reader) ([]BootstrapWitness, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	out := make([]BootstrapWitness, 0, max0(n))
	err = forEachArrayElement(r, n, func() error {
		if _, err := r.ReadStartArray(); err != nil {
			return err
		}
		vkey, err := r.ReadBytestring()
		if err != nil {
			return err
		}
		sig, err := r.ReadBytestring()
		if err != nil {
			return err
		}
		cc, err := r.ReadBytestring()
		if err != nil {
			return err
		}
		attrs, err := r.ReadBytestring()
		if err != nil {
			return err
		}
		if err := r.ReadEndArray(); err != nil {
			return err
		}
		if len(vkey) != 32 || len(sig) != 64 || len(cc) != 32 {
			return cborerr.New(cborerr.KindDecoding, "malformed bootstrap witness sizes")
		}
		var bw BootstrapWitness
		copy(bw.Vkey[:], vkey)
		copy(bw.Signature[:], sig)
		copy(bw.ChainCode[:], cc)
		bw.Attributes = attrs
		out = append(out, bw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeNativeScripts(r *cbor.Reader) ([]*nativescript.Script, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	out := make([]*nativescript.Script, 0, max0(n))
	err = forEachArrayElement(r, n, func() error {
		s, err := nativescript.Decode(r)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeScriptBucket(r *cbor.Reader) (scriptBucket, error) {
	raw, err := r.ReadEncodedValue()
	if err != nil {
		return scriptBucket{}, err
	}
	sub := cbor.NewReader(raw)
	n, err := sub.ReadStartArray()
	if err != nil {
		return scriptBucket{}, err
	}
	scripts := make([][]byte, 0, max0(n))
	err = forEachArrayElement(sub, n, func() error {
		item, err := sub.ReadBytestring()
		if err != nil {
			return err
		}
		scripts = append(scripts, item)
		return nil
	})
	if err != nil {
		return scriptBucket{}, err
	}
	return scriptBucket{scripts: scripts, cache: raw}, nil
}

func decodePlutusDataArray(r *cbor.Reader) ([]*plutus.Data, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	out := make([]*plutus.Data, 0, max0(n))
	err = forEachArrayElement(r, n, func() error {
		d, err := plutus.Decode(r)
		if err != nil {
			return err
		}
		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeRedeemers(r *cbor.Reader) ([]Redeemer, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return nil, err
	}
	out := make([]Redeemer, 0, max0(n))
	err = forEachArrayElement(r, n, func() error {
		if _, err := r.ReadStartArray(); err != nil {
			return err
		}
		tagWire, err := r.ReadUint()
		if err != nil {
			return err
		}
		tag, err := redeemerTagFromWire(tagWire)
		if err != nil {
			return err
		}
		index, err := r.ReadUint()
		if err != nil {
			return err
		}
		data, err := plutus.Decode(r)
		if err != nil {
			return err
		}
		if _, err := r.ReadStartArray(); err != nil {
			return err
		}
		mem, err := r.ReadUint()
		if err != nil {
			return err
		}
		steps, err := r.ReadUint()
		if err != nil {
			return err
		}
		if err := r.ReadEndArray(); err != nil {
			return err
		}
		if err := r.ReadEndArray(); err != nil {
			return err
		}
		out = append(out, Redeemer{Tag: tag, Index: index, Data: data, ExUnits: ExUnits{Mem: mem, Steps: steps}})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func max0(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
