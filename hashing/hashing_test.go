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

package hashing_test

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/cardano-core/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashConstructorLengthValidation(t *testing.T) {
	_, err := hashing.NewHash28(make([]byte, 27))
	assert.Error(t, err)

	h, err := hashing.NewHash28(make([]byte, 28))
	require.NoError(t, err)
	assert.Len(t, h.Bytes(), 28)
}

func TestComputeWidths(t *testing.T) {
	data := []byte("hello cardano")
	assert.Len(t, hashing.Compute224(data).Bytes(), 28)
	assert.Len(t, hashing.Compute256(data).Bytes(), 32)
	assert.Len(t, hashing.Compute512(data).Bytes(), 64)
}

func TestComputeDeterministic(t *testing.T) {
	data := []byte("determinism")
	a := hashing.Compute256(data)
	b := hashing.Compute256(data)
	assert.True(t, bytes.Equal(a[:], b[:]))
}

func TestPBKDF2Deterministic(t *testing.T) {
	a := hashing.PBKDF2HMACSHA512([]byte(""), make([]byte, 16), 4096, 96)
	b := hashing.PBKDF2HMACSHA512([]byte(""), make([]byte, 16), 4096, 96)
	assert.Equal(t, a, b)
	assert.Len(t, a, 96)
}
