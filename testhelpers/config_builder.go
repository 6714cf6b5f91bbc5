package testhelpers

import (
	"github.com/standardbeagle/lfind/internal/config"
)

// TestConfigBuilder provides a fluent API for building validated test configs
// Usage:
//
//	cfg := testhelpers.NewTestConfigBuilder(root).
//		WithExclusions("**/node_modules/**").
//		WithTextExtensions(".txt", ".md").
//		Build()
type TestConfigBuilder struct {
	cfg *config.Config
}

// NewTestConfigBuilder starts from the built-in defaults for root
func NewTestConfigBuilder(projectRoot string) *TestConfigBuilder {
	return &TestConfigBuilder{cfg: config.Default(projectRoot)}
}

// WithExclusions adds exclusion patterns
func (b *TestConfigBuilder) WithExclusions(patterns ...string) *TestConfigBuilder {
	b.cfg.Exclude = append(b.cfg.Exclude, patterns...)
	return b
}

// WithTextExtensions replaces the text candidate extensions
func (b *TestConfigBuilder) WithTextExtensions(exts ...string) *TestConfigBuilder {
	b.cfg.Search.TextExtensions = exts
	return b
}

// WithFilterWorkers sets the content filter batch count
func (b *TestConfigBuilder) WithFilterWorkers(n int) *TestConfigBuilder {
	b.cfg.Search.FilterWorkers = n
	return b
}

// WithSort turns sorting on by default
func (b *TestConfigBuilder) WithSort() *TestConfigBuilder {
	b.cfg.Search.Sort = true
	return b
}

// Build validates the config and panics on invalid test input
func (b *TestConfigBuilder) Build() *config.Config {
	if err := config.ValidateConfig(b.cfg); err != nil {
		panic("invalid test config: " + err.Error())
	}
	return b.cfg
}
