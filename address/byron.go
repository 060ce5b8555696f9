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

import (
	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/hashing"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
	"github.com/blinklabs-io/cardano-core/txtenc"
)

// ByronAddress is Cardano's legacy address format: a self-describing CBOR
// document (root hash, attribute map, address-type tag) wrapped in an
// outer [tag(24) encoded-bytes, crc32] sequence, rendered as base58.
type ByronAddress struct {
	Root           hashing.Hash28
	DerivationPath []byte // nil if the attribute is absent
	NetworkMagic   *uint64 // nil if the attribute is absent
	AddrType       uint64
}

func (a ByronAddress) attributeCount() int64 {
	var n int64
	if a.DerivationPath != nil {
		n++
	}
	if a.NetworkMagic != nil {
		n++
	}
	return n
}

func (a ByronAddress) encodeInner() []byte {
	w := cbor.NewWriter()
	w.WriteStartArray(3)
	w.WriteBytestring(a.Root.Bytes())

	w.WriteStartMap(a.attributeCount())
	if a.DerivationPath != nil {
		pathWriter := cbor.NewWriter()
		pathWriter.WriteBytestring(a.DerivationPath)
		w.WriteUint(1)
		w.WriteBytestring(pathWriter.Bytes())
	}
	if a.NetworkMagic != nil {
		magicWriter := cbor.NewWriter()
		magicWriter.WriteUint(*a.NetworkMagic)
		w.WriteUint(2)
		w.WriteBytestring(magicWriter.Bytes())
	}
	w.WriteEndMap(false)

	w.WriteUint(a.AddrType)
	return w.Bytes()
}

// Bytes packs the address into its outer [tag(24) bytes, crc32] CBOR
// encoding.
func (a ByronAddress) Bytes() []byte {
	inner := a.encodeInner()
	crc := hashing.CRC32IEEE(inner)

	w := cbor.NewWriter()
	w.WriteStartArray(2)
	w.WriteTag(cbor.TagEncodedCBOR)
	w.WriteBytestring(inner)
	w.WriteUint(uint64(crc))
	return w.Bytes()
}

// Base58 renders the address as base58 of its outer CBOR encoding.
func (a ByronAddress) Base58() string {
	return txtenc.EncodeBase58(a.Bytes())
}

// DecodeByron parses the outer [tag(24) bytes, crc32] CBOR sequence,
// verifying the CRC-32 trailer against the inner encoded bytes and then
// parsing the inner [root-hash, attributes, address-type] document.
func DecodeByron(data []byte) (ByronAddress, error) {
	r := cbor.NewReader(data)

	if _, err := r.ReadStartArray(); err != nil {
		return ByronAddress{}, err
	}
	tag, err := r.ReadTag()
	if err != nil {
		return ByronAddress{}, err
	}
	if tag != cbor.TagEncodedCBOR {
		return ByronAddress{}, cborerr.New(cborerr.KindInvalidAddressFormat, "expected tag 24 (encoded CBOR data item)")
	}
	inner, err := r.ReadBytestring()
	if err != nil {
		return ByronAddress{}, err
	}
	crcExpected, err := r.ReadUint()
	if err != nil {
		return ByronAddress{}, err
	}
	if err := r.ReadEndArray(); err != nil {
		return ByronAddress{}, err
	}

	crcActual := hashing.CRC32IEEE(inner)
	if uint64(crcActual) != crcExpected {
		return ByronAddress{}, cborerr.New(cborerr.KindChecksumMismatch, "byron address CRC-32 does not match trailer")
	}

	return decodeByronInner(inner)
}

func decodeByronInner(inner []byte) (ByronAddress, error) {
	ir := cbor.NewReader(inner)

	if _, err := ir.ReadStartArray(); err != nil {
		return ByronAddress{}, err
	}
	rootBytes, err := ir.ReadBytestring()
	if err != nil {
		return ByronAddress{}, err
	}
	root, err := hashing.NewHash28(rootBytes)
	if err != nil {
		return ByronAddress{}, err
	}

	mapLen, err := ir.ReadStartMap()
	if err != nil {
		return ByronAddress{}, err
	}

	a := ByronAddress{Root: root}

	for i := int64(0); i < mapLen; i++ {
		key, err := ir.ReadUint()
		if err != nil {
			return ByronAddress{}, err
		}
		switch key {
		case 1:
			pathBytes, err := ir.ReadBytestring()
			if err != nil {
				return ByronAddress{}, err
			}
			pr := cbor.NewReader(pathBytes)
			path, err := pr.ReadBytestring()
			if err != nil {
				return ByronAddress{}, err
			}
			a.DerivationPath = path
		case 2:
			magicBytes, err := ir.ReadBytestring()
			if err != nil {
				return ByronAddress{}, err
			}
			mr := cbor.NewReader(magicBytes)
			magic, err := mr.ReadUint()
			if err != nil {
				return ByronAddress{}, err
			}
			a.NetworkMagic = &magic
		default:
			return ByronAddress{}, cborerr.New(cborerr.KindDecoding, "unknown byron address attribute key")
		}
	}

	if err := ir.ReadEndMap(); err != nil {
		return ByronAddress{}, err
	}

	addrType, err := ir.ReadUint()
	if err != nil {
		return ByronAddress{}, err
	}
	a.AddrType = addrType

	if err := ir.ReadEndArray(); err != nil {
		return ByronAddress{}, err
	}

	return a, nil
}

// DecodeByronBase58 decodes a base58-rendered Byron address.
func DecodeByronBase58(s string) (ByronAddress, error) {
	raw, err := txtenc.DecodeBase58(s)
	if err != nil {
		return ByronAddress{}, err
	}
	return DecodeByron(raw)
}
