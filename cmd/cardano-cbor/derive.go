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
	"strconv"
	"strings"

	"github.com/blinklabs-io/cardano-core/bip32ed25519"
)

func runDerive(args []string) error {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	entropyHex := fs.String("entropy", "", "hex-encoded BIP-39 entropy")
	passphrase := fs.String("passphrase", "", "optional mnemonic passphrase")
	path := fs.String("path", "1852H/1815H/0H/0/0", "derivation path, e.g. 1852H/1815H/0H/0/0")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *entropyHex == "" {
		return fmt.Errorf("-entropy is required")
	}
	entropy, err := hex.DecodeString(strings.TrimSpace(*entropyHex))
	if err != nil {
		return fmt.Errorf("invalid hex entropy: %w", err)
	}

	indices, err := parsePath(*path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	key, err := bip32ed25519.MasterKeyFromEntropy([]byte(*passphrase), entropy)
	if err != nil {
		return fmt.Errorf("deriving master key: %w", err)
	}

	for _, index := range indices {
		key, err = bip32ed25519.DerivePrivate(key, index)
		if err != nil {
			return fmt.Errorf("deriving child key: %w", err)
		}
	}

	pub, err := bip32ed25519.PublicKey(key)
	if err != nil {
		return fmt.Errorf("deriving public key: %w", err)
	}

	fmt.Printf("extended private key: %s\n", hex.EncodeToString(key.Bytes()))
	fmt.Printf("extended public key:  %s\n", hex.EncodeToString(pub.Bytes()))
	return nil
}

// parsePath splits a "/"-separated derivation path into BIP32 indices,
// treating a trailing "H", "h" or "'" on a segment as a hardened-index marker.
func parsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	indices := make([]uint32, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		hardened := false
		if strings.HasSuffix(segment, "H") || strings.HasSuffix(segment, "h") || strings.HasSuffix(segment, "'") {
			hardened = true
			segment = segment[:len(segment)-1]
		}
		n, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", segment, err)
		}
		index := uint32(n)
		if hardened {
			index = bip32ed25519.Harden(index)
		}
		indices = append(indices, index)
	}
	return indices, nil
}
