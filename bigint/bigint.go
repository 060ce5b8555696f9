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

// Package bigint provides the arbitrary-precision signed integer used by
// Plutus Data and metadatum integers. It is a thin shell around
// math/big.Int: the spec's only mandated contract is bit-exact CBOR
// conversion, and math/big already gets the arithmetic right.
package bigint

import (
	"math/big"

	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
)

// Int is an arbitrary-precision signed integer.
type Int struct {
	v big.Int
}

// FromInt64 constructs an Int from a signed 64-bit value.
func FromInt64(v int64) Int {
	var i Int
	i.v.SetInt64(v)
	return i
}

// FromUint64 constructs an Int from an unsigned 64-bit value.
func FromUint64(v uint64) Int {
	var i Int
	i.v.SetUint64(v)
	return i
}

// FromBytes constructs an Int from a big-endian magnitude with an
// explicit sign (negative=true for a negative value; the zero value is
// always treated as non-negative).
func FromBytes(magnitude []byte, negative bool) Int {
	var i Int
	i.v.SetBytes(magnitude)
	if negative && i.v.Sign() != 0 {
		i.v.Neg(&i.v)
	}
	return i
}

// FromString parses s in the given base (2..36, or 0 to auto-detect a
// "0x"/"0b"/"0o" prefix).
func FromString(s string, base int) (Int, error) {
	if base != 0 && (base < 2 || base > 36) {
		return Int{}, cborerr.New(cborerr.KindInvalidArgument, "base must be in 2..36")
	}
	var i Int
	_, ok := i.v.SetString(s, base)
	if !ok {
		return Int{}, cborerr.New(cborerr.KindInvalidArgument, "malformed integer literal")
	}
	return i, nil
}

// FromBigInt wraps an existing *big.Int. The argument is copied.
func FromBigInt(v *big.Int) Int {
	var i Int
	i.v.Set(v)
	return i
}

// BigInt returns a copy of the underlying *big.Int.
func (i Int) BigInt() *big.Int {
	return new(big.Int).Set(&i.v)
}

// String renders i in base 10.
func (i Int) String() string {
	return i.v.String()
}

// Text renders i in the given base (2..36).
func (i Int) Text(base int) (string, error) {
	if base < 2 || base > 36 {
		return "", cborerr.New(cborerr.KindInvalidArgument, "base must be in 2..36")
	}
	return i.v.Text(base), nil
}

// Int64 returns i as a signed 64-bit value and whether the conversion was
// exact.
func (i Int) Int64() (int64, bool) {
	return i.v.Int64(), i.v.IsInt64()
}

// Uint64 returns i as an unsigned 64-bit value and whether the conversion
// was exact.
func (i Int) Uint64() (uint64, bool) {
	return i.v.Uint64(), i.v.IsUint64()
}

// Bytes returns the big-endian magnitude bytes (sign discarded).
func (i Int) Bytes() []byte {
	return i.v.Bytes()
}

// Sign returns -1, 0, or 1.
func (i Int) Sign() int {
	return i.v.Sign()
}

// Cmp compares i and other numerically.
func (i Int) Cmp(other Int) int {
	return i.v.Cmp(&other.v)
}

// Add returns i + other.
func (i Int) Add(other Int) Int {
	var r Int
	r.v.Add(&i.v, &other.v)
	return r
}

// Sub returns i - other.
func (i Int) Sub(other Int) Int {
	var r Int
	r.v.Sub(&i.v, &other.v)
	return r
}

// Mul returns i * other.
func (i Int) Mul(other Int) Int {
	var r Int
	r.v.Mul(&i.v, &other.v)
	return r
}

// Div returns the truncated (toward zero) quotient i / other.
func (i Int) Div(other Int) Int {
	var r Int
	r.v.Quo(&i.v, &other.v)
	return r
}

// Mod returns i mod other, using Euclidean (always non-negative) modulus.
func (i Int) Mod(other Int) Int {
	var r Int
	r.v.Mod(&i.v, &other.v)
	return r
}

// ReadCBOR decodes an Int from r: a plain integer when it fits in
// uint64/int64, otherwise a tag 2/3 bignum byte string.
func ReadCBOR(r *cbor.Reader) (Int, error) {
	v, err := r.ReadBignum()
	if err != nil {
		return Int{}, err
	}
	return FromBigInt(v), nil
}

// WriteCBOR encodes i per spec.md §4.7's Integer rule: a plain CBOR
// integer when |i| <= 2^64-1, otherwise a tag 2/3 bignum.
func (i Int) WriteCBOR(w *cbor.Writer) {
	w.WriteBignum(&i.v)
}
