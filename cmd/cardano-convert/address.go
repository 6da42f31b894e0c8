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
	"fmt"
	"strconv"

	"github.com/jehzlau/cardano-node/internal/config"
	"github.com/jehzlau/cardano-node/ledger/common"
	"github.com/spf13/cobra"
)

type addressInfo struct {
	Type         string `json:"type"`
	Network      uint   `json:"network"`
	Address      string `json:"address"`
	Hex          string `json:"hex"`
	StakeAddress string `json:"stakeAddress,omitempty"`
}

func addressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Address conversions",
	}
	cmd.AddCommand(addressInfoCommand())
	cmd.AddCommand(addressToHexCommand())
	return cmd
}

func addressInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <hex>",
		Short: "Decode a hex encoded address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			addr, ok := r.codec.AddressFromHex(args[0])
			if !ok {
				return fmt.Errorf("invalid address: %s", args[0])
			}
			return r.printAddress(addr)
		},
	}
}

func addressToHexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-hex <bech32 or base58 address>",
		Short: "Convert a human readable address to hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			addr, err := common.NewAddress(args[0])
			if err != nil {
				return fmt.Errorf("invalid address: %w", err)
			}
			addrHex, err := r.codec.AddressToHex(addr)
			if err != nil {
				return err
			}
			return r.printLine(addrHex)
		},
	}
}

func addressType(addr common.Address) string {
	switch a := addr.(type) {
	case common.ByronAddress:
		return "byron"
	case common.ShelleyAddress:
		return "shelley (type " + strconv.Itoa(int(a.Type())) + ")"
	case common.RewardAccount:
		return "reward account"
	default:
		return fmt.Sprintf("%T", addr)
	}
}

func (r *runContext) printAddress(addr common.Address) error {
	addrHex, err := r.codec.AddressToHex(addr)
	if err != nil {
		return err
	}
	info := addressInfo{
		Type:    addressType(addr),
		Network: addr.NetworkId(),
		Address: addr.String(),
		Hex:     addrHex,
	}
	if shelleyAddr, ok := addr.(common.ShelleyAddress); ok {
		if stakeAddr := shelleyAddr.StakeAddress(); stakeAddr != nil {
			info.StakeAddress = stakeAddr.String()
		}
	}
	switch r.cfg.OutputFormat {
	case config.OutputFormatText:
		lines := []string{
			"type: " + info.Type,
			"network: " + strconv.FormatUint(uint64(info.Network), 10),
			"address: " + info.Address,
		}
		if info.StakeAddress != "" {
			lines = append(lines, "stake address: "+info.StakeAddress)
		}
		for _, line := range lines {
			if err := r.printLine(line); err != nil {
				return err
			}
		}
		return nil
	case config.OutputFormatJson:
		return r.printJson(info)
	case config.OutputFormatCbor:
		addrBytes, err := addr.Bytes()
		if err != nil {
			return err
		}
		return r.printCbor(addrBytes)
	case config.OutputFormatPlutusData:
		return r.printPlutusData(addr.ToPlutusData())
	default:
		return unsupportedFormat(r.cfg.OutputFormat)
	}
}
