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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the encoding options
// used for Cardano ledger data.
//
// Encoding is deterministic (sorted map keys). Decoding rejects unknown struct
// fields. Tag 24 (embedded CBOR) maps to WrappedCbor.
//
// Embed StructAsArray to encode a struct as a CBOR array, and DecodeStoreCbor
// to keep the original bytes of a decoded value.
package cbor
