package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aarushdubey/Guardian-PDF/internal/chunker"
	"github.com/aarushdubey/Guardian-PDF/internal/dedup"
)

// ChunkerConfig configures how page text is split into word windows.
type ChunkerConfig struct {
	ChunkSize   int `yaml:"chunk_size"`
	OverlapSize int `yaml:"overlap_size"`
}

// DedupConfig configures near-duplicate elimination.
type DedupConfig struct {
	Enabled             *bool   `yaml:"enabled,omitempty"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	NGramSize           int     `yaml:"ngram_size"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Chunker ChunkerConfig `yaml:"chunker"`
	Dedup   DedupConfig   `yaml:"dedup"`
}

// DedupEnabled reports whether deduplication should run (default true).
func (c *AppConfig) DedupEnabled() bool {
	return c.Dedup.Enabled == nil || *c.Dedup.Enabled
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/guardian-pdf/config.yaml.
// If neither exists, it writes defaults to ~/.config/guardian-pdf/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "guardian-pdf", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Chunker: ChunkerConfig{
			ChunkSize:   chunker.DefaultChunkSize,
			OverlapSize: chunker.DefaultOverlapSize,
		},
		Dedup: DedupConfig{
			SimilarityThreshold: dedup.DefaultThreshold,
			NGramSize:           dedup.DefaultNGramSize,
		},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	// An absent chunker section gets both defaults; an explicit
	// overlap_size of 0 with a chunk_size set is honored as-is.
	if cfg.Chunker.ChunkSize == 0 {
		if cfg.Chunker.OverlapSize == 0 {
			cfg.Chunker.OverlapSize = chunker.DefaultOverlapSize
		}
		cfg.Chunker.ChunkSize = chunker.DefaultChunkSize
	}
	if cfg.Dedup.SimilarityThreshold == 0 {
		cfg.Dedup.SimilarityThreshold = dedup.DefaultThreshold
	}
	if cfg.Dedup.NGramSize == 0 {
		cfg.Dedup.NGramSize = dedup.DefaultNGramSize
	}
}
