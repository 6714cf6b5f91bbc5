package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("", "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/project", cfg.Project.Root)
	assert.Equal(t, []string{".txt"}, cfg.Search.TextExtensions)
	assert.Equal(t, 4, cfg.Search.FilterWorkers)
	assert.False(t, cfg.Search.Sort)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Exclude)
}

func TestParseKDL_SearchConfig(t *testing.T) {
	kdlContent := `
search {
    text_extensions ".txt" ".md" ".log"
    filter_workers 8
    sort true
}
`
	cfg, err := parseKDL(kdlContent, "/project")
	require.NoError(t, err)

	assert.Equal(t, []string{".txt", ".md", ".log"}, cfg.Search.TextExtensions)
	assert.Equal(t, 8, cfg.Search.FilterWorkers)
	assert.True(t, cfg.Search.Sort)
}

func TestParseKDL_LoggingConfig(t *testing.T) {
	kdlContent := `
logging {
    level "debug"
    format "json"
}
`
	cfg, err := parseKDL(kdlContent, "/project")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestParseKDL_ExcludeForms(t *testing.T) {
	inline := `exclude "**/node_modules/**" "**/.git/**"`
	cfg, err := parseKDL(inline, "/project")
	require.NoError(t, err)
	assert.Equal(t, []string{"**/node_modules/**", "**/.git/**"}, cfg.Exclude)

	block := `
exclude {
    "**/dist/**"
    "**/build/**"
}
`
	cfg, err = parseKDL(block, "/project")
	require.NoError(t, err)
	assert.Equal(t, []string{"**/dist/**", "**/build/**"}, cfg.Exclude)
}

func TestParseKDL_IgnoresUnknownNodes(t *testing.T) {
	cfg, err := parseKDL(`telemetry { enabled true; }`, "/project")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Search.FilterWorkers)
}

// The sample shown to users must load as written
func TestParseKDL_DocumentedSample(t *testing.T) {
	sample := `
search {
    text_extensions ".txt" ".md"
    filter_workers 4
    sort true
}
logging { level "info"; format "text"; }
exclude "**/node_modules/**" "**/.git/**"
`
	cfg, err := parseKDL(sample, "/project")
	require.NoError(t, err)

	assert.Equal(t, []string{".txt", ".md"}, cfg.Search.TextExtensions)
	assert.Equal(t, 4, cfg.Search.FilterWorkers)
	assert.True(t, cfg.Search.Sort)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, []string{"**/node_modules/**", "**/.git/**"}, cfg.Exclude)
	require.NoError(t, ValidateConfig(cfg))
}

func TestParseKDL_OneLineBlockNeedsTerminator(t *testing.T) {
	_, err := parseKDL(`logging { level "info" }`, "/project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "';' before '}'")

	cfg, err := parseKDL(`logging { level "info"; }`, "/project")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseKDL_Invalid(t *testing.T) {
	_, err := parseKDL(`search {`, "/project")
	assert.Error(t, err)
}

func TestLoadKDL_Missing(t *testing.T) {
	cfg, err := LoadKDL(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadKDL_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lfind.kdl"), []byte(`search { sort true; }`), 0644))

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.Search.Sort)
	assert.Equal(t, dir, cfg.Project.Root)
}

func TestParseTOML(t *testing.T) {
	tomlContent := `
exclude = ["**/vendor/**"]

[search]
text_extensions = [".txt", ".csv"]
filter_workers = 2
sort = true

[logging]
level = "info"
`
	cfg, err := parseTOML([]byte(tomlContent), "/project")
	require.NoError(t, err)

	assert.Equal(t, []string{".txt", ".csv"}, cfg.Search.TextExtensions)
	assert.Equal(t, 2, cfg.Search.FilterWorkers)
	assert.True(t, cfg.Search.Sort)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format, "unset values keep defaults")
	assert.Equal(t, []string{"**/vendor/**"}, cfg.Exclude)
}

func TestParseTOML_ExplicitZeroWorkers(t *testing.T) {
	cfg, err := parseTOML([]byte("[search]\nfilter_workers = 0\n"), "/project")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Search.FilterWorkers)
}

func TestParseTOML_Invalid(t *testing.T) {
	_, err := parseTOML([]byte("[search\n"), "/project")
	assert.Error(t, err)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()

	kdlPath := filepath.Join(dir, "custom.kdl")
	require.NoError(t, os.WriteFile(kdlPath, []byte(`search { filter_workers 3; }`), 0644))
	cfg, err := Load(kdlPath)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.FilterWorkers)

	tomlPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[search]\nfilter_workers = 5\n"), 0644))
	cfg, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.FilterWorkers)

	_, err = Load(filepath.Join(dir, "missing.kdl"))
	assert.Error(t, err)
}
