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
	"testing"

	"github.com/blinklabs-io/cardano-core/bip32ed25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathHardensTrailingMarkers(t *testing.T) {
	indices, err := parsePath("1852H/1815'/0h/0/0")
	require.NoError(t, err)
	require.Len(t, indices, 5)
	assert.Equal(t, bip32ed25519.Harden(1852), indices[0])
	assert.Equal(t, bip32ed25519.Harden(1815), indices[1])
	assert.Equal(t, bip32ed25519.Harden(0), indices[2])
	assert.Equal(t, uint32(0), indices[3])
	assert.Equal(t, uint32(0), indices[4])
}

func TestParsePathRejectsNonNumericSegment(t *testing.T) {
	_, err := parsePath("1852H/abc/0")
	assert.Error(t, err)
}
