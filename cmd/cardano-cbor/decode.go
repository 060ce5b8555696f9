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
	"os"
	"strings"

	"github.com/blinklabs-io/cardano-core/cbor"
	"github.com/blinklabs-io/cardano-core/plutus"
)

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	hexData := fs.String("hex", "", "hex-encoded CBOR Plutus Data")
	path := fs.String("file", "", "path to a file containing raw CBOR bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := decodeInput(*hexData, *path)
	if err != nil {
		return err
	}

	d, err := plutus.Decode(cbor.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decoding Plutus Data: %w", err)
	}

	fmt.Println(describeData(d, 0))

	reencoded := plutus.Encode(d)
	if hex.EncodeToString(reencoded) == hex.EncodeToString(raw) {
		fmt.Println("round-trip: OK (byte-identical)")
	} else {
		fmt.Printf("round-trip: re-encoded to %s\n", hex.EncodeToString(reencoded))
	}
	return nil
}

func decodeInput(hexData, path string) ([]byte, error) {
	switch {
	case hexData != "":
		raw, err := hex.DecodeString(strings.TrimSpace(hexData))
		if err != nil {
			return nil, fmt.Errorf("invalid hex: %w", err)
		}
		return raw, nil
	case path != "":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("one of -hex or -file is required")
	}
}

func describeData(d *plutus.Data, depth int) string {
	indent := strings.Repeat("  ", depth)
	switch d.Kind {
	case plutus.KindInteger:
		return fmt.Sprintf("%sinteger %s", indent, d.Integer.BigInt().String())
	case plutus.KindBytes:
		return fmt.Sprintf("%sbytes %s", indent, hex.EncodeToString(d.Bytes))
	case plutus.KindList:
		lines := []string{indent + "list"}
		for _, item := range d.List {
			lines = append(lines, describeData(item, depth+1))
		}
		return strings.Join(lines, "\n")
	case plutus.KindMap:
		lines := []string{indent + "map"}
		for _, entry := range d.Map {
			lines = append(lines, describeData(entry.Key, depth+1)+" =>")
			lines = append(lines, describeData(entry.Value, depth+2))
		}
		return strings.Join(lines, "\n")
	case plutus.KindConstr:
		lines := []string{fmt.Sprintf("%sconstr %d", indent, d.ConstrTag)}
		for _, arg := range d.ConstrArgs {
			lines = append(lines, describeData(arg, depth+1))
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprintf("%s<unknown>", indent)
	}
}
