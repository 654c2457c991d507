package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

type TsConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Files           []string        `json:"files"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

type CompilerOptions struct {
	Target           string `json:"target"`
	Module           string `json:"module"`
	ModuleResolution string `json:"moduleResolution"`
}

// ParseTsConfig reads and parses a tsconfig.json file from the OS filesystem.
func ParseTsConfig(path string) (*TsConfig, error) {
	return ParseTsConfigFS(afero.NewOsFs(), path)
}

// ParseTsConfigFS reads and parses a tsconfig.json file through fs, so callers can
// substitute an in-memory filesystem in tests.
func ParseTsConfigFS(fs afero.Fs, path string) (*TsConfig, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("failed to resolve path: %w", err)
	}

	data, err := afero.ReadFile(fs, absPath)
	if err != nil {
		return nil, errors.Errorf("failed to read tsconfig: %w", err)
	}

	var config TsConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Errorf("failed to parse tsconfig: %w", err)
	}

	return &config, nil
}

// GetProjectRoot returns the directory containing the tsconfig
func (c *TsConfig) GetProjectRoot(tsconfigPath string) string {
	return filepath.Dir(tsconfigPath)
}
