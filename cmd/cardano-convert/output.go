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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/jehzlau/cardano-node/cbor"
	"github.com/jehzlau/cardano-node/convert"
	"github.com/jehzlau/cardano-node/internal/config"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var errUnsupportedFormat = errors.New("output format not supported for this value")

// errorMessage returns the text shown to the user for a failed command
func errorMessage(err error) string {
	var convErr convert.ConversionError
	if errors.As(err, &convErr) {
		return convert.RenderConversionError(convErr)
	}
	return err.Error()
}

func unsupportedFormat(format config.OutputFormat) error {
	return fmt.Errorf("%w: %s", errUnsupportedFormat, format)
}

func (r *runContext) printLine(line string) error {
	_, err := fmt.Fprintln(r.out, line)
	return err
}

func (r *runContext) printJson(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return r.printLine(string(out))
}

func (r *runContext) printCbor(v any) error {
	out, err := cbor.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode CBOR: %w", err)
	}
	return r.printLine(hex.EncodeToString(out))
}

func (r *runContext) printProto(msg proto.Message) error {
	out, err := protojson.MarshalOptions{Multiline: true}.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode utxorpc message: %w", err)
	}
	return r.printLine(string(out))
}

func (r *runContext) printPlutusData(pd data.PlutusData) error {
	if pd == nil {
		return unsupportedFormat(config.OutputFormatPlutusData)
	}
	out, err := data.Encode(pd)
	if err != nil {
		return fmt.Errorf("failed to encode Plutus data: %w", err)
	}
	return r.printLine(hex.EncodeToString(out))
}
