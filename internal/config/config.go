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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "cardano-convert.config"

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

const envPrefix = "cardano_convert"

// OutputFormat selects how parsed values are printed
type OutputFormat string

const (
	OutputFormatText       OutputFormat = "text"
	OutputFormatJson       OutputFormat = "json"
	OutputFormatCbor       OutputFormat = "cbor"
	OutputFormatUtxorpc    OutputFormat = "utxorpc"
	OutputFormatPlutusData OutputFormat = "plutus-data"
)

func (f OutputFormat) Valid() bool {
	switch f {
	case OutputFormatText,
		OutputFormatJson,
		OutputFormatCbor,
		OutputFormatUtxorpc,
		OutputFormatPlutusData:
		return true
	}
	return false
}

type Config struct {
	OutputFormat OutputFormat `yaml:"outputFormat" split_words:"true"`
	StrictHex    bool         `yaml:"strictHex"    split_words:"true"`
	Debug        bool         `yaml:"debug"`
}

// DefaultConfig returns the configuration used when no file or environment overrides are present
func DefaultConfig() *Config {
	return &Config{
		OutputFormat: OutputFormatText,
		StrictHex:    false,
		Debug:        false,
	}
}

// LoadConfig applies the config file and then the environment on top of the defaults.
// With an empty path, ~/.cardano-convert/config.yaml is used if it exists
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	if configFile == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			userPath := filepath.Join(homeDir, ".cardano-convert", "config.yaml")
			if _, err := os.Stat(userPath); err == nil {
				configFile = userPath
			}
		}
	}
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Process environment variables
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !c.OutputFormat.Valid() {
		return fmt.Errorf(
			"invalid outputFormat: %q (must be 'text', 'json', 'cbor', 'utxorpc', or 'plutus-data')",
			c.OutputFormat,
		)
	}
	return nil
}
