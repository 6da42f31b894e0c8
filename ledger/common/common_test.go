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

package common

import (
	"encoding/json"
	"testing"

	"github.com/jehzlau/cardano-node/internal/test"
	"github.com/stretchr/testify/assert"
)

func TestBlake2bHash(t *testing.T) {
	assert.Equal(
		t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		Blake2b256Hash(nil).String(),
	)
	assert.Equal(
		t,
		"836cc68931c2e4e3e838602eca1902591d216837bafddfe6f0c8cb07",
		Blake2b224Hash(nil).String(),
	)
}

func TestBlake2b256_MarshalCBOR(t *testing.T) {
	// A zero-valued hash still encodes as a full 32-byte string
	cborData, err := Blake2b256{}.MarshalCBOR()
	assert.NoError(t, err)
	assert.Equal(t, 34, len(cborData))
	assert.Equal(t, byte(0x58), cborData[0])
	assert.Equal(t, byte(0x20), cborData[1])
}

func TestBlake2b224_MarshalJSON(t *testing.T) {
	hash := NewBlake2b224(
		test.DecodeHexString(
			"52563c5410bff6a0d43ccebb7c37e1f69f5eb260552521adff33b9c2",
		),
	)
	jsonData, err := json.Marshal(hash)
	assert.NoError(t, err)
	assert.Equal(
		t,
		`"52563c5410bff6a0d43ccebb7c37e1f69f5eb260552521adff33b9c2"`,
		string(jsonData),
	)
}
