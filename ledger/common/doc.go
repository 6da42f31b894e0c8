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

// Package common provides the ledger value types shared by the converters.
//
// # Key Files by Purpose
//
//   - common.go: Blake2b-256/224 hash types
//   - address.go: Address interface, decoder priority list, bech32/base58 parsing
//   - address_shelley.go: Shelley payment addresses (base, pointer, enterprise)
//   - address_byron.go: Byron (bootstrap) addresses
//   - address_reward.go: reward accounts
//   - tx.go: TransactionInput, TransactionOutput
//   - errors.go: address decoding errors
//
// # Address Disambiguation
//
// Raw address bytes carry no tag saying which era's encoding they use. The
// decoders returned by PaymentAddressDecoders are tried in order and the
// first one to accept the bytes wins: Shelley first, then Byron.
package common
