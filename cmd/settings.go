// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chloeskafte/gardening-mvp/internal/analyzer"
	"github.com/chloeskafte/gardening-mvp/internal/config"
	"github.com/chloeskafte/gardening-mvp/internal/observability"
	"github.com/chloeskafte/gardening-mvp/internal/paths"
)

// loadConfiguration reads the config file named by --config, or the first one
// found in the standard locations. An explicitly named file must load; a
// discovered one that fails falls back to defaults with a warning.
func (c *cli) loadConfiguration() (*config.Config, error) {
	if c.flags.configFile != "" {
		cfg, err := config.LoadConfig(c.flags.configFile)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	configPath := config.FindConfigFile()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(c.stderr, "⚠️  Warning: %v, using default configuration\n", err)
		cfg, _ = config.LoadConfig("")
	}
	return cfg, nil
}

// loadSettings resolves command line flags over the selected profile over
// the configuration file defaults
func (c *cli) loadSettings(cmd *cobra.Command) (config.Settings, error) {
	cfg, err := c.loadConfiguration()
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := cfg.Resolve(c.flags.profile)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		settings.Format = c.flags.format
	}
	if flags.Changed("output-dir") {
		settings.OutputDir = c.flags.outputDir
	}
	if flags.Changed("top") {
		if c.flags.topN < 1 {
			return config.Settings{}, fmt.Errorf("--top must be at least 1, got %d", c.flags.topN)
		}
		settings.TopN = c.flags.topN
	}
	if flags.Changed("entities") {
		settings.Entities = c.flags.entities
	}
	if flags.Changed("gazetteer") {
		settings.Gazetteer = c.flags.gazetteer
	}
	if flags.Changed("max-pages") {
		settings.MaxPages = c.flags.maxPages
	}
	if flags.Changed("no-color") {
		settings.NoColor = c.flags.noColor
	}
	if flags.Changed("debug") {
		settings.Debug = c.flags.debug
	}
	if flags.Changed("verbose") {
		settings.Verbose = c.flags.verbose
	}

	if settings.OutputDir, err = paths.ResolvePath(settings.OutputDir); err != nil {
		return config.Settings{}, fmt.Errorf("invalid output directory: %w", err)
	}
	if !config.IsSupportedFormat(settings.Format) {
		return config.Settings{}, fmt.Errorf("unsupported format '%s' (supported: %v)", settings.Format, config.SupportedFormats)
	}
	if !isTerminal(c.stdout) {
		settings.NoColor = true
	}

	return settings, nil
}

func (c *cli) newAnalyzer(settings config.Settings) (*analyzer.Analyzer, error) {
	return analyzer.New(analyzer.Options{
		Vocabulary:     settings.Vocabulary,
		TopN:           settings.TopN,
		Entities:       settings.Entities,
		Gazetteer:      settings.Gazetteer,
		EntityTopN:     settings.EntityTopN,
		Format:         settings.Format,
		OutputDir:      settings.OutputDir,
		WriteExtracted: settings.WriteExtracted,
		MaxPages:       settings.MaxPages,
		Observer:       observability.New(settings.Debug, c.stderr),
	})
}
