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

package cbor_test

import (
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/jehzlau/cardano-node/cbor"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    any
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex:   "83010203",
		Object:    []any{uint64(1), uint64(2), uint64(3)},
		BytesRead: 4,
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []any{uint64(1)},
		BytesRead: 2,
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest any
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if bytesRead != test.BytesRead {
			t.Fatalf(
				"expected to read %d bytes, read %d instead",
				test.BytesRead,
				bytesRead,
			)
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf(
				"CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v",
				dest,
				test.Object,
			)
		}
	}
}

func TestDecodeExactTrailingData(t *testing.T) {
	cborData, _ := hex.DecodeString("81018102")
	var dest []uint64
	err := cbor.DecodeExact(cborData, &dest)
	if !errors.Is(err, cbor.ErrTrailingData) {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
	if err := cbor.DecodeExact(cborData[:2], &dest); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !reflect.DeepEqual(dest, []uint64{1}) {
		t.Fatalf("did not get expected value, got: %#v", dest)
	}
}

type storedItem struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Name  string
	Value uint64
}

func (s *storedItem) UnmarshalCBOR(data []byte) error {
	return s.UnmarshalCborGeneric(data, s)
}

func TestDecodeStoreCbor(t *testing.T) {
	// ["abc", 5]
	cborData, _ := hex.DecodeString("8263616263" + "05")
	var item storedItem
	if _, err := cbor.Decode(cborData, &item); err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	if item.Name != "abc" || item.Value != 5 {
		t.Fatalf("did not get expected values, got: %#v", item)
	}
	if hex.EncodeToString(item.Cbor()) != hex.EncodeToString(cborData) {
		t.Fatalf(
			"stored CBOR did not match\n  got: %x\n  wanted: %x",
			item.Cbor(),
			cborData,
		)
	}
}
