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

// Command cardano-cbor is a small collaborator CLI exercising the
// library: decoding and re-encoding Plutus Data, deriving BIP32-Ed25519
// child keys, and rendering Shelley addresses.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/cardano-core/internal/clilog"
	"github.com/blinklabs-io/cardano-core/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("CARDANO_CBOR_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	clilog.Configure(cfg.LogLevel)

	var cmdErr error
	switch os.Args[1] {
	case "decode":
		cmdErr = runDecode(os.Args[2:])
	case "derive":
		cmdErr = runDerive(os.Args[2:])
	case "address":
		cmdErr = runAddress(os.Args[2:], cfg)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown sub-command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if cmdErr != nil {
		slog.Error("command failed", "error", cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `cardano-cbor <sub-command> [flags]

Sub-commands:
  decode   decode a CBOR-encoded Plutus Data value and re-encode it
  derive   derive a BIP32-Ed25519 child key from a path
  address  render or inspect a Shelley address`)
}
