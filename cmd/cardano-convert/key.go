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
	"errors"
	"fmt"

	"github.com/jehzlau/cardano-node/convert"
	"github.com/jehzlau/cardano-node/internal/config"
	"github.com/jehzlau/cardano-node/keyfile"
	"github.com/spf13/cobra"
)

func keyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key conversions",
	}
	cmd.AddCommand(convertITNKeyCommand())
	cmd.AddCommand(convertITNExtendedKeyCommand())
	cmd.AddCommand(keyInfoCommand())
	return cmd
}

type keyInfo struct {
	Type            string `json:"type"`
	Description     string `json:"description"`
	Era             string `json:"era"`
	Bech32          string `json:"bech32"`
	VerificationKey string `json:"verificationKey,omitempty"`
	KeyHash         string `json:"keyHash"`
}

func keyInfoCommand() *cobra.Command {
	var keyFile string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show a converted stake key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			env, err := keyfile.ReadFile(keyFile)
			if err != nil {
				return err
			}
			rawKey, err := env.RawKey()
			if err != nil {
				return err
			}
			key, err := convert.NewStakeKey(env.Type, rawKey)
			if err != nil {
				return err
			}
			return r.printKey(key)
		},
	}
	cmd.Flags().
		StringVar(&keyFile, "key-file", "", "path to a stake key file")
	_ = cmd.MarkFlagRequired("key-file")
	return cmd
}

func (r *runContext) printKey(key convert.StakeKey) error {
	keyBech32, err := key.Bech32()
	if err != nil {
		return err
	}
	info := keyInfo{
		Type:        key.EnvelopeType(),
		Description: key.Description(),
		Era:         key.Era().String(),
		Bech32:      keyBech32,
	}
	var vkey convert.StakingVerificationKey
	switch k := key.(type) {
	case convert.StakingVerificationKey:
		vkey = k
	case convert.SigningKey:
		vkey = k.VerificationKey()
	case convert.ExtendedSigningKey:
		vkey = k.VerificationKey()
	default:
		return fmt.Errorf("unsupported stake key: %T", key)
	}
	if key.EnvelopeType() != vkey.EnvelopeType() {
		if info.VerificationKey, err = vkey.Bech32(); err != nil {
			return err
		}
	}
	info.KeyHash = vkey.Hash().String()
	switch r.cfg.OutputFormat {
	case config.OutputFormatText:
		lines := []string{
			"type: " + info.Type,
			"description: " + info.Description,
			"era: " + info.Era,
			"bech32: " + info.Bech32,
		}
		if info.VerificationKey != "" {
			lines = append(lines, "verification key: "+info.VerificationKey)
		}
		lines = append(lines, "key hash: "+info.KeyHash)
		for _, line := range lines {
			if err := r.printLine(line); err != nil {
				return err
			}
		}
		return nil
	case config.OutputFormatJson:
		return r.printJson(info)
	case config.OutputFormatCbor:
		return r.printCbor(key.Bytes())
	default:
		return unsupportedFormat(r.cfg.OutputFormat)
	}
}

func convertITNKeyCommand() *cobra.Command {
	var vkeyFile, skeyFile, outFile string
	cmd := &cobra.Command{
		Use:   "convert-itn-key",
		Short: "Convert an Incentivized Testnet key to a Shelley stake key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			var key keyfile.Key
			switch {
			case vkeyFile != "" && skeyFile != "":
				return errors.New(
					"only one of --itn-verification-key-file and --itn-signing-key-file may be given",
				)
			case vkeyFile != "":
				vkey, err := convert.ImportVerificationKeyFile(vkeyFile)
				if err != nil {
					return err
				}
				key = vkey
			case skeyFile != "":
				skey, err := convert.ImportSigningKeyFile(skeyFile)
				if err != nil {
					return err
				}
				key = skey
			default:
				return errors.New(
					"one of --itn-verification-key-file or --itn-signing-key-file is required",
				)
			}
			return r.writeKey(outFile, key)
		},
	}
	cmd.Flags().
		StringVar(&vkeyFile, "itn-verification-key-file", "", "path to the ITN verification key")
	cmd.Flags().
		StringVar(&skeyFile, "itn-signing-key-file", "", "path to the ITN signing key")
	cmd.Flags().
		StringVar(&outFile, "out-file", "", "path to write the converted key")
	_ = cmd.MarkFlagRequired("out-file")
	return cmd
}

func convertITNExtendedKeyCommand() *cobra.Command {
	var skeyFile, outFile string
	cmd := &cobra.Command{
		Use:   "convert-itn-extended-key",
		Short: "Convert an Incentivized Testnet extended signing key to a Shelley stake key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			xskey, err := convert.ImportExtendedSigningKeyFile(skeyFile)
			if err != nil {
				return err
			}
			return r.writeKey(outFile, xskey)
		},
	}
	cmd.Flags().
		StringVar(&skeyFile, "itn-signing-key-file", "", "path to the ITN extended signing key")
	cmd.Flags().
		StringVar(&outFile, "out-file", "", "path to write the converted key")
	_ = cmd.MarkFlagRequired("itn-signing-key-file")
	_ = cmd.MarkFlagRequired("out-file")
	return cmd
}

func (r *runContext) writeKey(path string, key keyfile.Key) error {
	if err := keyfile.WriteFile(path, key); err != nil {
		return err
	}
	r.logger.Info(
		"wrote key file",
		"component", programName,
		"path", path,
		"type", key.EnvelopeType(),
	)
	return nil
}
