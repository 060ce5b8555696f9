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

// Package cborerr defines the closed error-kind taxonomy shared by every
// package in the module, so callers can switch on failure class with
// errors.Is/errors.As instead of parsing message strings.
package cborerr

import "fmt"

// Kind is a closed taxonomy of failure classes. New values are never added
// without a corresponding section in spec.md's error table.
type Kind int

const (
	KindPointerIsNull Kind = iota
	KindInvalidArgument
	KindMemoryAllocationFailed
	KindInsufficientBufferSize
	KindDecoding
	KindInvalidAddressFormat
	KindInvalidAddressType
	KindChecksumMismatch
	KindInvalidBip32PrivateKeySize
	KindInvalidBip32PublicKeySize
	KindInvalidBip32DerivationIndex
	KindElementNotFound
	KindIndexOutOfBounds
	KindInvalidScriptLanguage
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindPointerIsNull:
		return "pointer_is_null"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindMemoryAllocationFailed:
		return "memory_allocation_failed"
	case KindInsufficientBufferSize:
		return "insufficient_buffer_size"
	case KindDecoding:
		return "decoding"
	case KindInvalidAddressFormat:
		return "invalid_address_format"
	case KindInvalidAddressType:
		return "invalid_address_type"
	case KindChecksumMismatch:
		return "checksum_mismatch"
	case KindInvalidBip32PrivateKeySize:
		return "invalid_bip32_private_key_size"
	case KindInvalidBip32PublicKeySize:
		return "invalid_bip32_public_key_size"
	case KindInvalidBip32DerivationIndex:
		return "invalid_bip32_derivation_index"
	case KindElementNotFound:
		return "element_not_found"
	case KindIndexOutOfBounds:
		return "index_out_of_bounds"
	case KindInvalidScriptLanguage:
		return "invalid_script_language"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Error is the concrete error type every fallible operation in the module
// returns. It carries a closed Kind plus a human-readable message, and
// wraps an underlying cause when one exists.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, so callers
// can do errors.Is(err, cborerr.New(cborerr.KindDecoding, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an *Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs an *Error wrapping cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}
