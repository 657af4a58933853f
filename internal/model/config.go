package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all tool configuration
type Config struct {
	Limits      LimitsConfig      `yaml:"limits" mapstructure:"limits"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// LimitsConfig bounds document content
type LimitsConfig struct {
	MaxStatementLength int   `yaml:"max_statement_length" mapstructure:"max_statement_length"` // Runes per statement
	MaxDocumentBytes   int64 `yaml:"max_document_bytes" mapstructure:"max_document_bytes"`     // Bytes per document file
}

// CacheConfig controls the check-report cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose        bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeSummary bool `yaml:"include_summary" mapstructure:"include_summary"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	cacheDir := ".proofdoc-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".proofdoc", "cache")
	}

	return &Config{
		Limits: LimitsConfig{
			MaxStatementLength: DefaultMaxStatementLength,
			MaxDocumentBytes:   10_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:        false,
			IncludeSummary: true,
		},
	}
}
