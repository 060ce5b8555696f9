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
	"github.com/blinklabs-io/cardano-core/hashing"
	"github.com/blinklabs-io/cardano-core/internal/cborerr"
	"github.com/blinklabs-io/cardano-core/txtenc"
)

// ShelleyAddress is the base/pointer/enterprise/reward address sum type,
// discriminated by Type. Which of Payment/Stake/Pointer is populated
// follows directly from Type, per the header-byte table.
type ShelleyAddress struct {
	Type    Type
	Network NetworkID
	Payment *Credential
	Stake   *Credential
	Pointer *StakePointer
}

func paymentIsScript(t Type) bool {
	switch t {
	case TypeBaseScriptKey, TypeBaseScriptScript, TypePointerScript, TypeEnterpriseScript:
		return true
	default:
		return false
	}
}

func stakeIsScript(t Type) bool {
	switch t {
	case TypeBaseKeyScript, TypeBaseScriptScript, TypeRewardScript:
		return true
	default:
		return false
	}
}

func hasPayment(t Type) bool {
	switch t {
	case TypeBaseKeyKey, TypeBaseScriptKey, TypeBaseKeyScript, TypeBaseScriptScript,
		TypePointerKey, TypePointerScript, TypeEnterpriseKey, TypeEnterpriseScript:
		return true
	default:
		return false
	}
}

func hasStake(t Type) bool {
	switch t {
	case TypeBaseKeyKey, TypeBaseScriptKey, TypeBaseKeyScript, TypeBaseScriptScript,
		TypeRewardKey, TypeRewardScript:
		return true
	default:
		return false
	}
}

func hasPointer(t Type) bool {
	return t == TypePointerKey || t == TypePointerScript
}

func credentialKindFor(isScript bool) CredentialKind {
	if isScript {
		return CredentialScriptHash
	}
	return CredentialKeyHash
}

// Bytes packs the address into its canonical header-byte encoding.
func (a ShelleyAddress) Bytes() ([]byte, error) {
	if a.Type == TypeByron {
		return nil, cborerr.New(cborerr.KindInvalidAddressType, "use ByronAddress for Byron legacy addresses")
	}

	header := byte(a.Type)<<4 | byte(a.Network&0x0F)
	out := []byte{header}

	if hasPayment(a.Type) {
		if a.Payment == nil {
			return nil, cborerr.New(cborerr.KindInvalidAddressFormat, "address type requires a payment credential")
		}
		out = append(out, a.Payment.Hash.Bytes()...)
	}

	switch {
	case hasPointer(a.Type):
		if a.Pointer == nil {
			return nil, cborerr.New(cborerr.KindInvalidAddressFormat, "pointer address requires a stake pointer")
		}
		out = append(out, EncodeVarint(a.Pointer.Slot)...)
		out = append(out, EncodeVarint(a.Pointer.TxIndex)...)
		out = append(out, EncodeVarint(a.Pointer.CertIndex)...)
	case hasStake(a.Type) && !hasPayment(a.Type):
		if a.Stake == nil {
			return nil, cborerr.New(cborerr.KindInvalidAddressFormat, "reward address requires a stake credential")
		}
		out = append(out, a.Stake.Hash.Bytes()...)
	case hasStake(a.Type):
		if a.Stake == nil {
			return nil, cborerr.New(cborerr.KindInvalidAddressFormat, "base address requires a stake credential")
		}
		out = append(out, a.Stake.Hash.Bytes()...)
	}

	return out, nil
}

// FromBytes unpacks a Shelley address's canonical header-byte encoding.
func FromBytes(data []byte) (ShelleyAddress, error) {
	if len(data) < 1 {
		return ShelleyAddress{}, cborerr.New(cborerr.KindInvalidAddressFormat, "address is empty")
	}

	header := data[0]
	t := Type(header >> 4)
	network := NetworkID(header & 0x0F)

	if t == TypeByron {
		return ShelleyAddress{}, cborerr.New(cborerr.KindInvalidAddressType, "use DecodeByron for Byron legacy addresses")
	}

	a := ShelleyAddress{Type: t, Network: network}
	pos := 1

	if hasPayment(t) {
		if len(data) < pos+28 {
			return ShelleyAddress{}, cborerr.New(cborerr.KindInvalidAddressFormat, "truncated payment credential")
		}
		h, err := hashing.NewHash28(data[pos : pos+28])
		if err != nil {
			return ShelleyAddress{}, err
		}
		a.Payment = &Credential{Kind: credentialKindFor(paymentIsScript(t)), Hash: h}
		pos += 28
	}

	switch {
	case hasPointer(t):
		slot, n, err := DecodeVarint(data[pos:])
		if err != nil {
			return ShelleyAddress{}, err
		}
		pos += n
		txIndex, n, err := DecodeVarint(data[pos:])
		if err != nil {
			return ShelleyAddress{}, err
		}
		pos += n
		certIndex, n, err := DecodeVarint(data[pos:])
		if err != nil {
			return ShelleyAddress{}, err
		}
		pos += n
		a.Pointer = &StakePointer{Slot: slot, TxIndex: txIndex, CertIndex: certIndex}
	case hasStake(t):
		if len(data) < pos+28 {
			return ShelleyAddress{}, cborerr.New(cborerr.KindInvalidAddressFormat, "truncated stake credential")
		}
		h, err := hashing.NewHash28(data[pos : pos+28])
		if err != nil {
			return ShelleyAddress{}, err
		}
		a.Stake = &Credential{Kind: credentialKindFor(stakeIsScript(t)), Hash: h}
		pos += 28
	}

	return a, nil
}

// Bech32 renders the address under the network- and kind-appropriate
// human-readable prefix ("addr"/"addr_test" for payment-bearing
// addresses, "stake"/"stake_test" for reward addresses).
func (a ShelleyAddress) Bech32() (string, error) {
	raw, err := a.Bytes()
	if err != nil {
		return "", err
	}
	hrp := bech32HRP(a.Type, a.Network)
	return txtenc.EncodeBech32(hrp, raw)
}

// FromBech32 parses a bech32-encoded Shelley address, validating that the
// string's human-readable prefix matches the network id carried in the
// decoded header byte.
func FromBech32(s string) (ShelleyAddress, error) {
	hrp, raw, err := txtenc.DecodeBech32(s)
	if err != nil {
		return ShelleyAddress{}, err
	}

	a, err := FromBytes(raw)
	if err != nil {
		return ShelleyAddress{}, err
	}

	if hrp != bech32HRP(a.Type, a.Network) {
		return ShelleyAddress{}, cborerr.New(cborerr.KindInvalidAddressFormat, "bech32 prefix does not match network id encoded in header")
	}

	return a, nil
}
