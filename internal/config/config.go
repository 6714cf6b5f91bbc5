package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/lfind/internal/types"
)

type Config struct {
	Version int
	Project Project
	Search  Search
	Logging Logging
	Exclude []string // doublestar globs matched against root-relative slash paths
}

type Project struct {
	Root string
}

type Search struct {
	TextExtensions []string // Name suffixes that make a match a content-filter candidate
	FilterWorkers  int      // Fixed batch count for the content filter, 0 = default
	Sort           bool     // Sort results by path even without --sort
}

type Logging struct {
	Level  string // logrus level name
	Format string // "text" or "json"
}

// Default returns the configuration used when no config file is found
func Default(root string) *Config {
	return &Config{
		Version: 1,
		Project: Project{Root: root},
		Search: Search{
			TextExtensions: []string{types.DefaultTextExtension},
			FilterWorkers:  types.DefaultFilterBatchCount,
		},
		Logging: Logging{
			Level:  "warn",
			Format: "text",
		},
		Exclude: []string{},
	}
}

// Load reads an explicit config file. Files ending in .toml are parsed as TOML,
// everything else as KDL.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	root := filepath.Dir(path)
	if absRoot, err := filepath.Abs(root); err == nil {
		root = absRoot
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(content, root)
	}
	return parseKDL(string(content), root)
}

// LoadWithRoot loads the global config from the home directory and the project
// config from rootDir, then merges them. Either may be missing.
func LoadWithRoot(rootDir string) (*Config, error) {
	searchDir := "."
	if rootDir != "" {
		searchDir = rootDir
	}
	if abs, err := filepath.Abs(searchDir); err == nil {
		searchDir = abs
	}

	// Step 1: Load global base config from ~/.lfind.kdl (if exists)
	var baseConfig *Config
	if homeDir, err := os.UserHomeDir(); err == nil && filepath.Clean(homeDir) != searchDir {
		if globalCfg, err := loadDir(homeDir); err == nil && globalCfg != nil {
			baseConfig = globalCfg
		}
	}

	// Step 2: Load project-specific config from the search root
	projectConfig, err := loadDir(searchDir)
	if err != nil {
		return nil, err
	}

	// Step 3: Merge configs (project overrides base, but preserve base exclusions)
	var cfg *Config
	switch {
	case baseConfig != nil && projectConfig != nil:
		cfg = mergeConfigs(baseConfig, projectConfig)
	case projectConfig != nil:
		cfg = projectConfig
	case baseConfig != nil:
		cfg = baseConfig
	default:
		cfg = Default(searchDir)
	}
	cfg.Project.Root = searchDir
	return cfg, nil
}

// loadDir loads .lfind.kdl from dir, falling back to .lfind.toml.
// Returns nil, nil when neither exists.
func loadDir(dir string) (*Config, error) {
	cfg, err := LoadKDL(dir)
	if err != nil || cfg != nil {
		return cfg, err
	}
	return LoadTOML(dir)
}

// mergeConfigs merges a base config with a project config
// Project config takes precedence, but base exclusions are preserved
func mergeConfigs(base, project *Config) *Config {
	merged := *project

	if len(base.Exclude) > 0 {
		combined := make([]string, 0, len(base.Exclude)+len(project.Exclude))
		combined = append(combined, base.Exclude...)
		combined = append(combined, project.Exclude...)
		merged.Exclude = DeduplicatePatterns(combined)
	}

	return &merged
}

// DeduplicatePatterns removes duplicate exclusion patterns, keeping first occurrences
func DeduplicatePatterns(patterns []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		if !seen[pattern] {
			seen[pattern] = true
			result = append(result, pattern)
		}
	}

	return result
}
