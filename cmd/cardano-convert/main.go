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
	"io"
	"log/slog"
	"os"

	"github.com/jehzlau/cardano-node/convert"
	"github.com/jehzlau/cardano-node/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

const (
	programName = "cardano-convert"
)

func slogPrintf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...),
		"component", programName,
	)
}

var (
	globalFlags = struct {
		debug     bool
		strictHex bool
		output    string
	}{}
	configFile string
)

func commonRun(cfg *config.Config, logOutput io.Writer) (*slog.Logger, error) {
	// Configure logger
	logLevel := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		logLevel = slog.LevelDebug
		addSource = true
	}
	logger := slog.New(
		slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     logLevel,
		}),
	)
	slog.SetDefault(logger)
	// Configure max processes with our logger wrapper, toss undo func
	if _, err := maxprocs.Set(maxprocs.Logger(slogPrintf)); err != nil {
		return nil, err
	}
	return logger, nil
}

// loadConfig merges the config file and environment with any flags given on the command line
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("debug") {
		cfg.Debug = globalFlags.debug
	}
	if flags.Changed("strict-hex") {
		cfg.StrictHex = globalFlags.strictHex
	}
	if flags.Changed("output") {
		cfg.OutputFormat = config.OutputFormat(globalFlags.output)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runContext carries what every subcommand needs
type runContext struct {
	cfg    *config.Config
	logger *slog.Logger
	parser *convert.Parser
	codec  *convert.AddressCodec
	out    io.Writer
}

func newRunContext(cmd *cobra.Command) (*runContext, error) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		return nil, errors.New("no config found in context")
	}
	logger := slog.Default()
	codec := convert.NewAddressCodec(
		convert.WithStrictHex(cfg.StrictHex),
		convert.WithLogger(logger),
	)
	return &runContext{
		cfg:    cfg,
		logger: logger,
		parser: convert.NewParser(codec),
		codec:  codec,
		out:    cmd.OutOrStdout(),
	}, nil
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Convert Cardano addresses, transaction references and ITN keys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().
		BoolVar(&globalFlags.strictHex, "strict-hex", false, "reject hex input containing invalid characters")
	rootCmd.PersistentFlags().
		StringVarP(&globalFlags.output, "output", "o", string(config.OutputFormatText), "output format: text, json, cbor, utxorpc or plutus-data")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := commonRun(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger.Debug(
			"loaded config",
			"component", programName,
			"outputFormat", cfg.OutputFormat,
			"strictHex", cfg.StrictHex,
		)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	}

	// Subcommands
	rootCmd.AddCommand(addressCommand())
	rootCmd.AddCommand(txInCommand())
	rootCmd.AddCommand(txOutCommand())
	rootCmd.AddCommand(keyCommand())

	return rootCmd
}

func main() {
	rootCmd := newRootCommand()
	// Execute cobra command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}
