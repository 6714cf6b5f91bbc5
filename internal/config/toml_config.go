package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/standardbeagle/lfind/internal/types"
)

// tomlConfig mirrors the KDL layout; pointer fields distinguish "unset" from zero values
type tomlConfig struct {
	Search struct {
		TextExtensions []string `toml:"text_extensions"`
		FilterWorkers  *int     `toml:"filter_workers"`
		Sort           *bool    `toml:"sort"`
	} `toml:"search"`
	Logging struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"logging"`
	Exclude []string `toml:"exclude"`
}

// LoadTOML attempts to load configuration from the .lfind.toml file in dir
func LoadTOML(dir string) (*Config, error) {
	tomlPath := filepath.Join(dir, types.TOMLConfigFileName)

	content, err := os.ReadFile(tomlPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", types.TOMLConfigFileName, err)
	}

	return parseTOML(content, dir)
}

func parseTOML(content []byte, root string) (*Config, error) {
	var raw tomlConfig
	if err := toml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	cfg := Default(root)
	if raw.Search.TextExtensions != nil {
		cfg.Search.TextExtensions = raw.Search.TextExtensions
	}
	if raw.Search.FilterWorkers != nil {
		cfg.Search.FilterWorkers = *raw.Search.FilterWorkers
	}
	if raw.Search.Sort != nil {
		cfg.Search.Sort = *raw.Search.Sort
	}
	if raw.Logging.Level != "" {
		cfg.Logging.Level = raw.Logging.Level
	}
	if raw.Logging.Format != "" {
		cfg.Logging.Format = raw.Logging.Format
	}
	if raw.Exclude != nil {
		cfg.Exclude = raw.Exclude
	}
	return cfg, nil
}
