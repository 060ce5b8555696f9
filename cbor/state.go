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

// MajorType is one of the eight CBOR major types from RFC 8949 §3.
type MajorType byte

const (
	MajorUnsignedInt MajorType = 0
	MajorNegativeInt  MajorType = 1
	MajorByteString   MajorType = 2
	MajorTextString   MajorType = 3
	MajorArray        MajorType = 4
	MajorMap          MajorType = 5
	MajorTag          MajorType = 6
	MajorSimpleFloat  MajorType = 7
)

// State is what Reader.PeekState reports about the next item: either one
// of the eight major types, or the synthetic end-of-container marker the
// reader synthesises from a break byte (0xFF) while inside an
// indefinite-length container.
type State struct {
	Major       MajorType
	IsBreak     bool
	IsEndOfData bool
}

const (
	breakByte byte = 0xFF
)

// Tag numbers the codec understands natively; other tag values pass
// through ReadTag/WriteTag uninterpreted.
const (
	TagBignumPositive uint64 = 2
	TagBignumNegative uint64 = 3
	TagEncodedCBOR    uint64 = 24
	TagSelfDescribe   uint64 = 55799
)

// length discriminator returned by ReadStartArray/ReadStartMap for an
// indefinite-length container.
const IndefiniteLength int64 = -1
