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
)

// Builder assembles a ShelleyAddress from its component credentials. Each
// With* call is infallible at call time; malformed input is recorded and
// surfaced by Build, so a chain of With* calls can always be written
// fluently without interleaved error checks.
type Builder struct {
	network  NetworkID
	addrType Type
	payment  *Credential
	stake    *Credential
	pointer  *StakePointer
	hashErr  error
}

// NewBuilder starts a Builder for the given address type and network.
func NewBuilder(addrType Type, network NetworkID) *Builder {
	return &Builder{addrType: addrType, network: network}
}

// WithPaymentKeyHash sets a 28-byte payment key-hash credential.
func (b *Builder) WithPaymentKeyHash(hash []byte) *Builder {
	return b.withPayment(hash, CredentialKeyHash)
}

// WithPaymentScriptHash sets a 28-byte payment script-hash credential.
func (b *Builder) WithPaymentScriptHash(hash []byte) *Builder {
	return b.withPayment(hash, CredentialScriptHash)
}

func (b *Builder) withPayment(hash []byte, kind CredentialKind) *Builder {
	h, err := hashing.NewHash28(hash)
	if err != nil {
		b.hashErr = err
		return b
	}
	b.payment = &Credential{Kind: kind, Hash: h}
	return b
}

// WithStakeKeyHash sets a 28-byte stake key-hash credential.
func (b *Builder) WithStakeKeyHash(hash []byte) *Builder {
	return b.withStake(hash, CredentialKeyHash)
}

// WithStakeScriptHash sets a 28-byte stake script-hash credential.
func (b *Builder) WithStakeScriptHash(hash []byte) *Builder {
	return b.withStake(hash, CredentialScriptHash)
}

func (b *Builder) withStake(hash []byte, kind CredentialKind) *Builder {
	h, err := hashing.NewHash28(hash)
	if err != nil {
		b.hashErr = err
		return b
	}
	b.stake = &Credential{Kind: kind, Hash: h}
	return b
}

// WithPointer sets the stake pointer for a pointer address.
func (b *Builder) WithPointer(pointer StakePointer) *Builder {
	b.pointer = &pointer
	return b
}

// Build validates the assembled components against addrType's required
// shape and returns the finished address.
func (b *Builder) Build() (ShelleyAddress, error) {
	if b.hashErr != nil {
		return ShelleyAddress{}, b.hashErr
	}

	if hasPayment(b.addrType) && b.payment == nil {
		return ShelleyAddress{}, cborerr.New(cborerr.KindInvalidAddressFormat, "address type requires a payment credential")
	}
	if hasPointer(b.addrType) && b.pointer == nil {
		return ShelleyAddress{}, cborerr.New(cborerr.KindInvalidAddressFormat, "pointer address requires a stake pointer")
	}
	if hasStake(b.addrType) && !hasPointer(b.addrType) && b.stake == nil {
		return ShelleyAddress{}, cborerr.New(cborerr.KindInvalidAddressFormat, "address type requires a stake credential")
	}

	return ShelleyAddress{
		Type:    b.addrType,
		Network: b.network,
		Payment: b.payment,
		Stake:   b.stake,
		Pointer: b.pointer,
	}, nil
}
