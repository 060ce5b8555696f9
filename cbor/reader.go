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

// Package cbor implements a hand-written, byte-exact CBOR (RFC 8949)
// reader and writer. Unlike a reflection-based marshaler, it exposes the
// wire format at the major-type level so the domain packages can capture
// the exact byte span of any sub-document for later verbatim replay.
package cbor

import (
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/blinklabs-io/cardano-core/internal/cborerr"
	"github.com/x448/float16"
)

const defaultMaxDepth = 128

// containerKind distinguishes the two container shapes the depth stack
// can hold, so closing the wrong kind of container is caught.
type containerKind byte

const (
	containerArray containerKind = iota
	containerMap
)

type openContainer struct {
	kind        containerKind
	length      int64 // IndefiniteLength for indefinite containers
	itemsRead   int64
}

// Reader decodes CBOR items from an immutable in-memory byte buffer. A
// Reader is not safe for concurrent use.
type Reader struct {
	buf      []byte
	pos      int
	maxDepth int
	stack    []openContainer
}

// NewReader constructs a Reader over buf. buf is not copied; the caller
// must not mutate it while the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, maxDepth: defaultMaxDepth}
}

// SetMaxDepth overrides the container-nesting cap (default 128); any
// value is accepted. Intended for tests that want to exercise the depth_overflow
// failure path with a small buffer.
func (r *Reader) SetMaxDepth(n int) {
	r.maxDepth = n
}

// Pos returns the current byte offset into the source buffer.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total length of the source buffer.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Remaining returns the number of unread bytes left in the source buffer.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

func errDecoding(msg string) error {
	return cborerr.New(cborerr.KindDecoding, msg)
}

// header is the decoded fixed-size prefix of a CBOR item: major type,
// additional-information byte, the decoded argument (for additional info
// 0..27), whether additional info was 31 (indefinite/break), and the
// number of bytes the header itself occupied.
type header struct {
	major       MajorType
	info        byte
	arg         uint64
	indefinite  bool
	headerBytes int
}

// peekHeader decodes the item header at the current cursor without
// mutating it.
func (r *Reader) peekHeader() (header, error) {
	if r.pos >= len(r.buf) {
		return header{}, cborerr.New(cborerr.KindDecoding, "truncated input: expected item header")
	}
	b := r.buf[r.pos]
	major := MajorType(b >> 5)
	info := b & 0x1F
	n := 1

	var arg uint64
	indefinite := false

	switch {
	case info < 24:
		arg = uint64(info)
	case info == 24:
		if r.pos+2 > len(r.buf) {
			return header{}, cborerr.New(cborerr.KindDecoding, "truncated input: 1-byte argument")
		}
		arg = uint64(r.buf[r.pos+1])
		n = 2
	case info == 25:
		if r.pos+3 > len(r.buf) {
			return header{}, cborerr.New(cborerr.KindDecoding, "truncated input: 2-byte argument")
		}
		arg = uint64(r.buf[r.pos+1])<<8 | uint64(r.buf[r.pos+2])
		n = 3
	case info == 26:
		if r.pos+5 > len(r.buf) {
			return header{}, cborerr.New(cborerr.KindDecoding, "truncated input: 4-byte argument")
		}
		for i := 1; i <= 4; i++ {
			arg = arg<<8 | uint64(r.buf[r.pos+i])
		}
		n = 5
	case info == 27:
		if r.pos+9 > len(r.buf) {
			return header{}, cborerr.New(cborerr.KindDecoding, "truncated input: 8-byte argument")
		}
		for i := 1; i <= 8; i++ {
			arg = arg<<8 | uint64(r.buf[r.pos+i])
		}
		n = 9
	case info == 31:
		indefinite = true
	default:
		return header{}, cborerr.New(cborerr.KindDecoding, "reserved additional information value")
	}

	return header{major: major, info: info, arg: arg, indefinite: indefinite, headerBytes: n}, nil
}

// PeekState reports the shape of the next item without consuming it.
func (r *Reader) PeekState() (State, error) {
	if r.pos >= len(r.buf) {
		if len(r.stack) > 0 {
			return State{}, cborerr.New(cborerr.KindDecoding, "truncated input: expected item or break")
		}
		return State{IsEndOfData: true}, nil
	}
	if r.buf[r.pos] == breakByte {
		return State{IsBreak: true}, nil
	}
	h, err := r.peekHeader()
	if err != nil {
		return State{}, err
	}
	return State{Major: h.major}, nil
}

func (r *Reader) expectMajor(h header, want MajorType) error {
	if h.major != want {
		return cborerr.New(
			cborerr.KindDecoding,
			"major type mismatch: expected "+majorName(want)+", got "+majorName(h.major),
		)
	}
	return nil
}

func majorName(m MajorType) string {
	switch m {
	case MajorUnsignedInt:
		return "unsigned-int"
	case MajorNegativeInt:
		return "negative-int"
	case MajorByteString:
		return "byte-string"
	case MajorTextString:
		return "text-string"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tag"
	case MajorSimpleFloat:
		return "simple/float"
	default:
		return "unknown"
	}
}

// ReadUint reads an unsigned integer (major type 0).
func (r *Reader) ReadUint() (uint64, error) {
	h, err := r.peekHeader()
	if err != nil {
		return 0, err
	}
	if err := r.expectMajor(h, MajorUnsignedInt); err != nil {
		return 0, err
	}
	if h.indefinite {
		return 0, errDecoding("unsigned integer cannot be indefinite-length")
	}
	r.pos += h.headerBytes
	return h.arg, nil
}

// ReadInt reads a signed integer from either major type 0 or 1. It fails
// with a decoding error if the value doesn't fit in an int64 (use
// ReadBignum for values outside that range).
func (r *Reader) ReadInt() (int64, error) {
	h, err := r.peekHeader()
	if err != nil {
		return 0, err
	}
	switch h.major {
	case MajorUnsignedInt:
		if h.indefinite {
			return 0, errDecoding("unsigned integer cannot be indefinite-length")
		}
		if h.arg > math.MaxInt64 {
			return 0, cborerr.New(cborerr.KindDecoding, "unsigned integer exceeds int64 range")
		}
		r.pos += h.headerBytes
		return int64(h.arg), nil
	case MajorNegativeInt:
		if h.indefinite {
			return 0, errDecoding("negative integer cannot be indefinite-length")
		}
		if h.arg > math.MaxInt64 {
			return 0, cborerr.New(cborerr.KindDecoding, "negative integer exceeds int64 range")
		}
		r.pos += h.headerBytes
		return -1 - int64(h.arg), nil
	default:
		return 0, cborerr.New(
			cborerr.KindDecoding,
			"major type mismatch: expected unsigned-int or negative-int, got "+majorName(h.major),
		)
	}
}

// ReadBytestring reads a byte string (major type 2), transparently
// concatenating an indefinite-length sequence of definite-length chunks.
func (r *Reader) ReadBytestring() ([]byte, error) {
	h, err := r.peekHeader()
	if err != nil {
		return nil, err
	}
	if err := r.expectMajor(h, MajorByteString); err != nil {
		return nil, err
	}
	if !h.indefinite {
		start := r.pos + h.headerBytes
		end := start + int(h.arg)
		if end > len(r.buf) || end < start {
			return nil, errDecoding("truncated input: byte string body")
		}
		out := make([]byte, end-start)
		copy(out, r.buf[start:end])
		r.pos = end
		return out, nil
	}

	// Indefinite: a sequence of definite-length byte-string chunks
	// terminated by a break.
	pos := r.pos + h.headerBytes
	var out []byte
	for {
		if pos >= len(r.buf) {
			return nil, errDecoding("truncated input: indefinite byte string")
		}
		if r.buf[pos] == breakByte {
			pos++
			break
		}
		save := r.pos
		r.pos = pos
		chunkHeader, err := r.peekHeader()
		if err != nil {
			r.pos = save
			return nil, err
		}
		if chunkHeader.major != MajorByteString || chunkHeader.indefinite {
			r.pos = save
			return nil, errDecoding("indefinite byte string chunk must be a definite-length byte string")
		}
		start := pos + chunkHeader.headerBytes
		end := start + int(chunkHeader.arg)
		if end > len(r.buf) || end < start {
			r.pos = save
			return nil, errDecoding("truncated input: byte string chunk body")
		}
		out = append(out, r.buf[start:end]...)
		pos = end
		r.pos = save
	}
	r.pos = pos
	return out, nil
}

// ReadTextstring reads a UTF-8 text string (major type 3), concatenating
// indefinite-length chunks. Fails with a decoding error on invalid UTF-8.
func (r *Reader) ReadTextstring() (string, error) {
	h, err := r.peekHeader()
	if err != nil {
		return "", err
	}
	if err := r.expectMajor(h, MajorTextString); err != nil {
		return "", err
	}

	var out []byte
	if !h.indefinite {
		start := r.pos + h.headerBytes
		end := start + int(h.arg)
		if end > len(r.buf) || end < start {
			return "", errDecoding("truncated input: text string body")
		}
		out = r.buf[start:end]
		r.pos = end
	} else {
		pos := r.pos + h.headerBytes
		for {
			if pos >= len(r.buf) {
				return "", errDecoding("truncated input: indefinite text string")
			}
			if r.buf[pos] == breakByte {
				pos++
				break
			}
			save := r.pos
			r.pos = pos
			chunkHeader, err := r.peekHeader()
			if err != nil {
				r.pos = save
				return "", err
			}
			if chunkHeader.major != MajorTextString || chunkHeader.indefinite {
				r.pos = save
				return "", errDecoding("indefinite text string chunk must be a definite-length text string")
			}
			start := pos + chunkHeader.headerBytes
			end := start + int(chunkHeader.arg)
			if end > len(r.buf) || end < start {
				r.pos = save
				return "", errDecoding("truncated input: text string chunk body")
			}
			out = append(out, r.buf[start:end]...)
			pos = end
			r.pos = save
		}
		r.pos = pos
	}

	if !utf8.Valid(out) {
		return "", errDecoding("invalid UTF-8 in text string")
	}
	return string(out), nil
}

// ReadTag reads a tag number (major type 6). The wrapped item is read by
// a subsequent call to the appropriate Read* method.
func (r *Reader) ReadTag() (uint64, error) {
	h, err := r.peekHeader()
	if err != nil {
		return 0, err
	}
	if err := r.expectMajor(h, MajorTag); err != nil {
		return 0, err
	}
	if h.indefinite {
		return 0, errDecoding("tag cannot be indefinite-length")
	}
	r.pos += h.headerBytes
	return h.arg, nil
}

// ReadBignum reads a big integer: either a plain major-0/1 integer, or a
// tag-2 (positive) / tag-3 (negative) bignum byte string, per RFC 8949
// §3.4.3. Handles the tag transparently so callers don't need to read
// ReadTag first.
func (r *Reader) ReadBignum() (*big.Int, error) {
	h, err := r.peekHeader()
	if err != nil {
		return nil, err
	}
	switch h.major {
	case MajorUnsignedInt:
		if h.indefinite {
			return nil, errDecoding("unsigned integer cannot be indefinite-length")
		}
		r.pos += h.headerBytes
		return new(big.Int).SetUint64(h.arg), nil
	case MajorNegativeInt:
		if h.indefinite {
			return nil, errDecoding("negative integer cannot be indefinite-length")
		}
		r.pos += h.headerBytes
		n := new(big.Int).SetUint64(h.arg)
		n.Add(n, big.NewInt(1))
		n.Neg(n)
		return n, nil
	case MajorTag:
		if h.indefinite {
			return nil, errDecoding("tag cannot be indefinite-length")
		}
		if h.arg != TagBignumPositive && h.arg != TagBignumNegative {
			return nil, errDecoding("tag is not a bignum tag (2 or 3)")
		}
		save := r.pos
		r.pos += h.headerBytes
		raw, err := r.ReadBytestring()
		if err != nil {
			r.pos = save
			return nil, err
		}
		n := new(big.Int).SetBytes(raw)
		if h.arg == TagBignumNegative {
			n.Add(n, big.NewInt(1))
			n.Neg(n)
		}
		return n, nil
	default:
		return nil, cborerr.New(
			cborerr.KindDecoding,
			"major type mismatch: expected integer or bignum tag, got "+majorName(h.major),
		)
	}
}

// ReadSimple reads a simple value (major type 7, additional info 0..23 or
// 32..255 via the one-byte extension), returning the simple-value number
// (e.g. 20=false, 21=true, 22=null, 23=undefined).
func (r *Reader) ReadSimple() (uint8, error) {
	h, err := r.peekHeader()
	if err != nil {
		return 0, err
	}
	if err := r.expectMajor(h, MajorSimpleFloat); err != nil {
		return 0, err
	}
	if h.info >= 25 && h.info <= 27 {
		return 0, errDecoding("expected simple value, found float")
	}
	if h.indefinite {
		return 0, errDecoding("unexpected break: expected simple value")
	}
	r.pos += h.headerBytes
	return uint8(h.arg), nil
}

// ReadDouble reads a floating-point value (major type 7, additional info
// 25/26/27 for half/single/double precision), always widened to float64.
func (r *Reader) ReadDouble() (float64, error) {
	h, err := r.peekHeader()
	if err != nil {
		return 0, err
	}
	if err := r.expectMajor(h, MajorSimpleFloat); err != nil {
		return 0, err
	}
	switch h.info {
	case 25:
		r.pos += h.headerBytes
		return float64(float16.Frombits(uint16(h.arg)).Float32()), nil
	case 26:
		r.pos += h.headerBytes
		return float64(math.Float32frombits(uint32(h.arg))), nil
	case 27:
		r.pos += h.headerBytes
		return math.Float64frombits(h.arg), nil
	default:
		return 0, errDecoding("expected float, found simple value or integer")
	}
}

// ReadStartArray begins an array (major type 4). Returns length =
// IndefiniteLength for an indefinite-length array; the caller then loops
// reading elements until PeekState reports IsBreak, and calls
// ReadEndArray to consume the break.
func (r *Reader) ReadStartArray() (int64, error) {
	h, err := r.peekHeader()
	if err != nil {
		return 0, err
	}
	if err := r.expectMajor(h, MajorArray); err != nil {
		return 0, err
	}
	if len(r.stack) >= r.maxDepth {
		return 0, cborerr.New(cborerr.KindDecoding, "container nesting exceeds depth cap")
	}
	r.pos += h.headerBytes
	length := IndefiniteLength
	if !h.indefinite {
		length = int64(h.arg)
	}
	r.stack = append(r.stack, openContainer{kind: containerArray, length: length})
	return length, nil
}

// ReadEndArray closes the array opened by the matching ReadStartArray. For
// an indefinite-length array this consumes the break byte.
func (r *Reader) ReadEndArray() error {
	return r.readEndContainer(containerArray)
}

// ReadStartMap begins a map (major type 5). Length is a count of key/value
// pairs (not of individual keys and values), with IndefiniteLength meaning indefinite, exactly
// as ReadStartArray.
func (r *Reader) ReadStartMap() (int64, error) {
	h, err := r.peekHeader()
	if err != nil {
		return 0, err
	}
	if err := r.expectMajor(h, MajorMap); err != nil {
		return 0, err
	}
	if len(r.stack) >= r.maxDepth {
		return 0, cborerr.New(cborerr.KindDecoding, "container nesting exceeds depth cap")
	}
	r.pos += h.headerBytes
	length := IndefiniteLength
	if !h.indefinite {
		length = int64(h.arg)
	}
	r.stack = append(r.stack, openContainer{kind: containerMap, length: length})
	return length, nil
}

// ReadEndMap closes the map opened by the matching ReadStartMap.
func (r *Reader) ReadEndMap() error {
	return r.readEndContainer(containerMap)
}

func (r *Reader) readEndContainer(kind containerKind) error {
	if len(r.stack) == 0 {
		return errDecoding("unexpected end-of-container: no open container")
	}
	top := r.stack[len(r.stack)-1]
	if top.kind != kind {
		return errDecoding("closing wrong container type")
	}
	if top.length == IndefiniteLength {
		if r.pos >= len(r.buf) || r.buf[r.pos] != breakByte {
			return errDecoding("expected break to close indefinite-length container")
		}
		r.pos++
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Skip consumes and discards the next item, including its full
// sub-structure (a tag skips its wrapped item; an indefinite container
// skips everything up to and including its break).
func (r *Reader) Skip() error {
	_, err := r.ReadEncodedValue()
	return err
}

// ReadEncodedValue returns the exact bytes spanning the next item
// (including a wrapped tag payload, or an entire indefinite-length
// container up to and including its break), advancing the cursor past
// it. This is the mechanism domain types use to populate their CBOR
// cache.
func (r *Reader) ReadEncodedValue() ([]byte, error) {
	start := r.pos
	if err := r.skipOne(0); err != nil {
		r.pos = start
		return nil, err
	}
	out := make([]byte, r.pos-start)
	copy(out, r.buf[start:r.pos])
	return out, nil
}

// skipOne advances the cursor past exactly one item, recursing for
// composite items. depth guards against the same nesting cap as
// ReadStartArray/Map.
func (r *Reader) skipOne(depth int) error {
	if depth >= r.maxDepth {
		return cborerr.New(cborerr.KindDecoding, "container nesting exceeds depth cap")
	}
	h, err := r.peekHeader()
	if err != nil {
		return err
	}
	switch h.major {
	case MajorUnsignedInt, MajorNegativeInt:
		if h.indefinite {
			return errDecoding("integer cannot be indefinite-length")
		}
		r.pos += h.headerBytes
		return nil
	case MajorByteString:
		_, err := r.ReadBytestring()
		return err
	case MajorTextString:
		_, err := r.ReadTextstring()
		return err
	case MajorTag:
		if h.indefinite {
			return errDecoding("tag cannot be indefinite-length")
		}
		r.pos += h.headerBytes
		return r.skipOne(depth + 1)
	case MajorSimpleFloat:
		if h.info >= 25 && h.info <= 27 {
			_, err := r.ReadDouble()
			return err
		}
		if h.indefinite {
			return errDecoding("unexpected break")
		}
		r.pos += h.headerBytes
		return nil
	case MajorArray:
		n, err := r.ReadStartArray()
		if err != nil {
			return err
		}
		if n == IndefiniteLength {
			for {
				st, err := r.PeekState()
				if err != nil {
					return err
				}
				if st.IsBreak {
					break
				}
				if err := r.skipOne(depth + 1); err != nil {
					return err
				}
			}
		} else {
			for i := int64(0); i < n; i++ {
				if err := r.skipOne(depth + 1); err != nil {
					return err
				}
			}
		}
		return r.ReadEndArray()
	case MajorMap:
		n, err := r.ReadStartMap()
		if err != nil {
			return err
		}
		if n == IndefiniteLength {
			for {
				st, err := r.PeekState()
				if err != nil {
					return err
				}
				if st.IsBreak {
					break
				}
				if err := r.skipOne(depth + 1); err != nil {
					return err
				}
				if err := r.skipOne(depth + 1); err != nil {
					return err
				}
			}
		} else {
			for i := int64(0); i < n; i++ {
				if err := r.skipOne(depth + 1); err != nil {
					return err
				}
				if err := r.skipOne(depth + 1); err != nil {
					return err
				}
			}
		}
		return r.ReadEndMap()
	default:
		return errDecoding("unknown major type")
	}
}
