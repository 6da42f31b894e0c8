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
	"github.com/jehzlau/cardano-node/internal/config"
	"github.com/spf13/cobra"
)

type txOutInfo struct {
	Address string `json:"address"`
	Hex     string `json:"hex"`
	Amount  uint64 `json:"amount"`
}

func txInCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tx-in <tx id>#<index>",
		Short: "Parse a transaction input reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			txIn, err := r.parser.ParseTxIn(args[0])
			if err != nil {
				return err
			}
			r.logger.Debug(
				"parsed transaction input",
				"component", programName,
				"txId", txIn.Id().String(),
				"index", txIn.Index(),
			)
			switch r.cfg.OutputFormat {
			case config.OutputFormatText:
				return r.printLine(r.parser.RenderTxIn(txIn))
			case config.OutputFormatJson:
				return r.printJson(txIn)
			case config.OutputFormatCbor:
				return r.printCbor(txIn)
			case config.OutputFormatUtxorpc:
				return r.printProto(txIn.Utxorpc())
			case config.OutputFormatPlutusData:
				return r.printPlutusData(txIn.ToPlutusData())
			default:
				return unsupportedFormat(r.cfg.OutputFormat)
			}
		},
	}
}

func txOutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tx-out <address hex>+<lovelace>",
		Short: "Parse a transaction output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			txOut, err := r.parser.ParseTxOut(args[0])
			if err != nil {
				return err
			}
			switch r.cfg.OutputFormat {
			case config.OutputFormatText:
				rendered, err := r.parser.RenderTxOut(txOut)
				if err != nil {
					return err
				}
				return r.printLine(rendered)
			case config.OutputFormatJson:
				addrHex, err := r.codec.AddressToHex(txOut.Address())
				if err != nil {
					return err
				}
				return r.printJson(txOutInfo{
					Address: txOut.Address().String(),
					Hex:     addrHex,
					Amount:  txOut.Amount(),
				})
			case config.OutputFormatCbor:
				return r.printCbor(txOut)
			case config.OutputFormatUtxorpc:
				msg, err := txOut.Utxorpc()
				if err != nil {
					return err
				}
				return r.printProto(msg)
			default:
				return unsupportedFormat(r.cfg.OutputFormat)
			}
		},
	}
}
