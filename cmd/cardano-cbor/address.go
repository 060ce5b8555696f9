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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"strings"

	"github.com/blinklabs-io/cardano-core/address"
	"github.com/blinklabs-io/cardano-core/internal/config"
)

func runAddress(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("address", flag.ExitOnError)
	network := fs.String("network", cfg.Network, "mainnet or testnet")
	paymentKeyHash := fs.String("payment-key-hash", "", "hex-encoded 28-byte payment key hash")
	stakeKeyHash := fs.String("stake-key-hash", "", "hex-encoded 28-byte stake key hash")
	decode := fs.String("decode", "", "a bech32 or base58 address to inspect instead of building one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *decode != "" {
		return decodeAddress(*decode)
	}

	if *paymentKeyHash == "" {
		return fmt.Errorf("-payment-key-hash is required when not using -decode")
	}
	payment, err := hex.DecodeString(strings.TrimSpace(*paymentKeyHash))
	if err != nil {
		return fmt.Errorf("invalid payment key hash: %w", err)
	}

	netID, err := parseNetwork(*network)
	if err != nil {
		return err
	}

	addrType := address.TypeEnterpriseKey
	builder := address.NewBuilder(addrType, netID).WithPaymentKeyHash(payment)

	if *stakeKeyHash != "" {
		stake, err := hex.DecodeString(strings.TrimSpace(*stakeKeyHash))
		if err != nil {
			return fmt.Errorf("invalid stake key hash: %w", err)
		}
		addrType = address.TypeBaseKeyKey
		builder = address.NewBuilder(addrType, netID).
			WithPaymentKeyHash(payment).
			WithStakeKeyHash(stake)
	}

	addr, err := builder.Build()
	if err != nil {
		return fmt.Errorf("building address: %w", err)
	}

	bech32, err := addr.Bech32()
	if err != nil {
		return fmt.Errorf("encoding address: %w", err)
	}
	fmt.Println(bech32)
	return nil
}

func parseNetwork(name string) (address.NetworkID, error) {
	switch strings.ToLower(name) {
	case "mainnet":
		return address.NetworkMainnet, nil
	case "testnet":
		return address.NetworkTestnet, nil
	default:
		return 0, fmt.Errorf("unknown network: %s", name)
	}
}

func decodeAddress(s string) error {
	if strings.HasPrefix(s, "addr") || strings.HasPrefix(s, "stake") {
		addr, err := address.FromBech32(s)
		if err != nil {
			return fmt.Errorf("decoding bech32 address: %w", err)
		}
		raw, err := addr.Bytes()
		if err != nil {
			return fmt.Errorf("encoding decoded address: %w", err)
		}
		fmt.Printf("type:    shelley\nnetwork: %d\nbytes:   %s\n", addr.Network, hex.EncodeToString(raw))
		return nil
	}

	addr, err := address.DecodeByronBase58(s)
	if err != nil {
		return fmt.Errorf("decoding base58 address: %w", err)
	}
	fmt.Printf("type:  byron\nbytes: %s\n", hex.EncodeToString(addr.Bytes()))
	return nil
}
