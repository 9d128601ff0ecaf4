// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chloeskafte/gardening-mvp/internal/discovery"
	"github.com/chloeskafte/gardening-mvp/internal/paths"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
	"github.com/chloeskafte/gardening-mvp/internal/vocabulary"

	"gopkg.in/yaml.v3"
)

// SupportedFormats lists the report formats accepted by format settings
var SupportedFormats = []string{"json", "yaml", "xlsx", "csv", "text"}

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format         string `yaml:"format"`
		TopN           int    `yaml:"top_n"`
		Verbose        bool   `yaml:"verbose"`
		Debug          bool   `yaml:"debug"`
		NoColor        bool   `yaml:"no_color"`
		OutputDir      string `yaml:"output_dir"`
		WriteExtracted bool   `yaml:"write_extracted"`
		Entities       bool   `yaml:"entities"`
		PreviewChars   int    `yaml:"preview_chars"`
	} `yaml:"defaults"`

	Extraction struct {
		MaxPages int `yaml:"max_pages"`
	} `yaml:"extraction"`

	Entities struct {
		Gazetteer string `yaml:"gazetteer"`
		TopN      int    `yaml:"top_n"`
	} `yaml:"entities"`

	// Vocabulary extends or replaces the built-in category tables
	Vocabulary struct {
		Replace        bool `yaml:"replace"`
		vocabulary.Set `yaml:",inline"`
	} `yaml:"vocabulary"`

	Discovery struct {
		MinLength int      `yaml:"min_length"`
		Limit     int      `yaml:"limit"`
		Stopwords []string `yaml:"stopwords"`
	} `yaml:"discovery"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a named preset layered over the defaults
type Profile struct {
	Description string `yaml:"description"`
	Format      string `yaml:"format"`
	TopN        int    `yaml:"top_n"`
	Verbose     bool   `yaml:"verbose"`
	Debug       bool   `yaml:"debug"`
	NoColor     bool   `yaml:"no_color"`
	OutputDir   string `yaml:"output_dir"`
	Entities    bool   `yaml:"entities"`
	Gazetteer   string `yaml:"gazetteer"`
	MaxPages    int    `yaml:"max_pages"`
}

// Settings is the effective configuration after a profile is applied
type Settings struct {
	Format         string
	TopN           int
	Verbose        bool
	Debug          bool
	NoColor        bool
	OutputDir      string
	WriteExtracted bool
	Entities       bool
	Gazetteer      string
	EntityTopN     int
	MaxPages       int
	PreviewChars   int
	Vocabulary     vocabulary.Set
	Discovery      discovery.Options
	Stopwords      map[string]bool
}

func defaultConfig() *Config {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Format = "json"
	config.Defaults.TopN = tagger.DefaultTopN
	config.Defaults.WriteExtracted = true
	config.Defaults.PreviewChars = 500

	config.Entities.TopN = 5
	config.Discovery.MinLength = discovery.DefaultMinLength
	config.Discovery.Limit = discovery.DefaultLimit

	config.Profiles["quick"] = Profile{
		Description: "Vocabulary tagging only with a console summary",
		Format:      "text",
	}
	config.Profiles["full"] = Profile{
		Description: "Vocabulary and general entities with a spreadsheet report",
		Format:      "xlsx",
		TopN:        20,
		Entities:    true,
	}

	return config
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	defaultWriteExtracted := config.Defaults.WriteExtracted

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// yaml leaves bools false when absent, so restore true defaults
	if !containsField(data, "defaults", "write_extracted") {
		config.Defaults.WriteExtracted = defaultWriteExtracted
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in the working directory,
// then in the platform config directory
func FindConfigFile() string {
	for _, name := range []string{"garden-ner.yaml", "garden-ner.yml", ".garden-ner.yaml", ".garden-ner.yml"} {
		if fileExists(name) {
			return name
		}
	}

	standardConfig := paths.GetConfigFile()
	if fileExists(standardConfig) {
		return standardConfig
	}
	if alt := strings.TrimSuffix(standardConfig, ".yaml") + ".yml"; fileExists(alt) {
		return alt
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the available profile names, sorted
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// Resolve applies the named profile over the defaults. An empty name uses
// the defaults alone.
func (c *Config) Resolve(profileName string) (Settings, error) {
	settings := Settings{
		Format:         c.Defaults.Format,
		TopN:           c.Defaults.TopN,
		Verbose:        c.Defaults.Verbose,
		Debug:          c.Defaults.Debug,
		NoColor:        c.Defaults.NoColor,
		OutputDir:      c.Defaults.OutputDir,
		WriteExtracted: c.Defaults.WriteExtracted,
		Entities:       c.Defaults.Entities,
		Gazetteer:      c.Entities.Gazetteer,
		EntityTopN:     c.Entities.TopN,
		MaxPages:       c.Extraction.MaxPages,
		PreviewChars:   c.Defaults.PreviewChars,
		Vocabulary:     vocabulary.Merge(vocabulary.Default(), c.Vocabulary.Set, c.Vocabulary.Replace),
		Discovery: discovery.Options{
			MinLength: c.Discovery.MinLength,
			Limit:     c.Discovery.Limit,
		},
		Stopwords: vocabulary.Stopwords(),
	}
	for _, word := range c.Discovery.Stopwords {
		settings.Stopwords[strings.ToLower(strings.TrimSpace(word))] = true
	}

	if profileName == "" {
		return settings, nil
	}

	profile := c.GetProfile(profileName)
	if profile == nil {
		return settings, fmt.Errorf("profile '%s' not found (available: %s)", profileName, strings.Join(c.ListProfiles(), ", "))
	}

	if profile.Format != "" {
		settings.Format = profile.Format
	}
	if profile.TopN > 0 {
		settings.TopN = profile.TopN
	}
	if profile.OutputDir != "" {
		settings.OutputDir = profile.OutputDir
	}
	if profile.Gazetteer != "" {
		settings.Gazetteer = profile.Gazetteer
	}
	if profile.MaxPages > 0 {
		settings.MaxPages = profile.MaxPages
	}
	settings.Verbose = settings.Verbose || profile.Verbose
	settings.Debug = settings.Debug || profile.Debug
	settings.NoColor = settings.NoColor || profile.NoColor
	settings.Entities = settings.Entities || profile.Entities

	return settings, nil
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}

// IsSupportedFormat reports whether format names a known report format
func IsSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ValidateConfig checks formats, limits, paths and vocabulary patterns
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if !IsSupportedFormat(config.Defaults.Format) {
		return fmt.Errorf("unsupported format '%s' (supported: %s)", config.Defaults.Format, strings.Join(SupportedFormats, ", "))
	}
	if config.Defaults.TopN < 0 || config.Entities.TopN < 0 {
		return fmt.Errorf("top_n must not be negative")
	}
	if config.Extraction.MaxPages < 0 {
		return fmt.Errorf("extraction.max_pages must not be negative")
	}
	if config.Discovery.MinLength < 0 || config.Discovery.Limit < 0 {
		return fmt.Errorf("discovery limits must not be negative")
	}

	if err := validateConfigPaths(config); err != nil {
		return fmt.Errorf("path validation failed: %w", err)
	}

	if err := config.Vocabulary.Set.Validate(); err != nil {
		return fmt.Errorf("vocabulary validation failed: %w", err)
	}

	for name, profile := range config.Profiles {
		if profile.Format != "" && !IsSupportedFormat(profile.Format) {
			return fmt.Errorf("unsupported format '%s' in profile '%s'", profile.Format, name)
		}
		if profile.TopN < 0 || profile.MaxPages < 0 {
			return fmt.Errorf("negative limit in profile '%s'", name)
		}
	}

	return nil
}

// validateConfigPaths validates all paths in the configuration
func validateConfigPaths(config *Config) error {
	if err := paths.ValidatePath(config.Defaults.OutputDir); err != nil {
		return fmt.Errorf("invalid output directory: %w", err)
	}
	if err := paths.ValidatePath(config.Entities.Gazetteer); err != nil {
		return fmt.Errorf("invalid gazetteer path: %w", err)
	}

	for profileName, profile := range config.Profiles {
		if err := paths.ValidatePath(profile.OutputDir); err != nil {
			return fmt.Errorf("invalid output directory in profile '%s': %w", profileName, err)
		}
		if err := paths.ValidatePath(profile.Gazetteer); err != nil {
			return fmt.Errorf("invalid gazetteer path in profile '%s': %w", profileName, err)
		}
	}

	return nil
}
