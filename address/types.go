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

// Package address implements Cardano's Shelley-era header-byte address
// formats (base/pointer/enterprise/reward, each over key or script
// credentials) and the Byron legacy CBOR+CRC32+base58 address format.
package address

import (
	"github.com/blinklabs-io/cardano-core/hashing"
)

// NetworkID is the low 4 bits of a Shelley address header byte.
type NetworkID uint8

const (
	NetworkTestnet NetworkID = 0
	NetworkMainnet NetworkID = 1
)

// CredentialKind distinguishes a key-hash from a script-hash credential.
type CredentialKind uint8

const (
	CredentialKeyHash CredentialKind = iota
	CredentialScriptHash
)

// Credential is a 28-byte payment or stake credential tagged by kind.
type Credential struct {
	Kind CredentialKind
	Hash hashing.Hash28
}

// Type is the Shelley address type tag occupying the high 4 bits of the
// header byte, per the address-model header-byte table.
type Type uint8

const (
	TypeBaseKeyKey       Type = 0b0000
	TypeBaseScriptKey    Type = 0b0001
	TypeBaseKeyScript    Type = 0b0010
	TypeBaseScriptScript Type = 0b0011
	TypePointerKey       Type = 0b0100
	TypePointerScript    Type = 0b0101
	TypeEnterpriseKey    Type = 0b0110
	TypeEnterpriseScript Type = 0b0111
	TypeRewardKey        Type = 0b1110
	TypeRewardScript     Type = 0b1111
	TypeByron            Type = 0b1000
)

// StakePointer addresses a stake registration certificate by its on-chain
// position: slot, transaction index within the slot, certificate index
// within the transaction.
type StakePointer struct {
	Slot      uint64
	TxIndex   uint64
	CertIndex uint64
}

func bech32HRP(prefix Type, network NetworkID) string {
	reward := prefix == TypeRewardKey || prefix == TypeRewardScript
	if network == NetworkMainnet {
		if reward {
			return "stake"
		}
		return "addr"
	}
	if reward {
		return "stake_test"
	}
	return "addr_test"
}
