// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// AppName is the directory name used under the platform config root
	AppName = "garden-ner"

	// ConfigDirEnv overrides the configuration directory on every platform
	ConfigDirEnv = "GARDEN_NER_CONFIG_DIR"

	ExtractedSuffix = "_extracted"
	AnalysisSuffix  = "_ner_analysis"
)

// GetConfigDir returns the garden-ner configuration directory
func GetConfigDir() string {
	// Check for explicit override first (works on all platforms)
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// BaseName returns the file name of path without its extension
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath builds <outputDir>/<input base><suffix><ext>. An empty outputDir
// places the file next to the input.
func OutputPath(inputPath, outputDir, suffix, ext string) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(dir, BaseName(inputPath)+suffix+ext)
}

// ExtractedTextPath returns where the page text of inputPath is written
func ExtractedTextPath(inputPath, outputDir string) string {
	return OutputPath(inputPath, outputDir, ExtractedSuffix, ".txt")
}

// AnalysisPath returns where the analysis report of inputPath is written
func AnalysisPath(inputPath, outputDir, ext string) string {
	return OutputPath(inputPath, outputDir, AnalysisSuffix, ext)
}

// ResolvePath resolves a path to its absolute form
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return filepath.Abs(filepath.Clean(path))
}

// ValidatePath validates a path for the current platform
func ValidatePath(path string) error {
	if path == "" {
		return nil // Empty path is valid
	}

	if runtime.GOOS == "windows" {
		return validateWindowsPath(path)
	}

	return validateUnixPath(path)
}

// validateWindowsPath validates a Windows path
func validateWindowsPath(path string) error {
	invalidChars := `<>:"|?*`
	for i, char := range path {
		if !strings.ContainsRune(invalidChars, char) {
			continue
		}
		// drive letter colon, as in C:
		if char == ':' && i == 1 {
			continue
		}
		return &PathValidationError{
			Path:   path,
			Reason: "contains invalid character: " + string(char),
		}
	}

	if len(path) > 32767 {
		return &PathValidationError{
			Path:   path,
			Reason: "path exceeds maximum length of 32,767 characters",
		}
	}

	return nil
}

// validateUnixPath validates a Unix path
func validateUnixPath(path string) error {
	if strings.ContainsRune(path, 0) {
		return &PathValidationError{
			Path:   path,
			Reason: "contains null byte",
		}
	}
	return nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Reason
}
