// Package params holds the runtime configuration loaded from an optional
// TOML file, overridden by environment variables.
package params

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/solmint/mintgen/internal/log"
)

const (
	defaultTable          = "mint_addresses"
	defaultReportInterval = 5
)

var (
	config            *Config
	loadConfigStarter sync.Once
)

// Config config items (decode from toml file)
type Config struct {
	Supabase *SupabaseConfig
	Generate *GenerateConfig `toml:",omitempty"`
}

// SupabaseConfig is the REST endpoint the upload pipeline writes to.
type SupabaseConfig struct {
	URL     string
	AnonKey string
	Table   string `toml:",omitempty"`
}

// GenerateConfig holds search defaults that flags may override.
type GenerateConfig struct {
	BatchSize             int `toml:",omitempty"`
	Workers               int `toml:",omitempty"`
	ReportIntervalSeconds int `toml:",omitempty"`
}

// LoadConfig loads the config file at configFile (may be empty), applies
// environment overrides and defaults, and caches the result.
func LoadConfig(configFile string) *Config {
	loadConfigStarter.Do(func() {
		cfg, err := loadConfigFile(configFile)
		if err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}
		config = cfg
		log.Info("load config success", "config", configFile)
	})
	return config
}

func loadConfigFile(configFile string) (*Config, error) {
	cfg := &Config{}
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("config file '%v' not exist", configFile)
		}
		if _, err := toml.DecodeFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("toml decode: %w", err)
		}
	}
	applyEnvAndDefaults(cfg)
	return cfg, nil
}

func applyEnvAndDefaults(c *Config) {
	if c.Supabase == nil {
		c.Supabase = &SupabaseConfig{}
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Supabase.URL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		c.Supabase.AnonKey = v
	}
	if c.Supabase.Table == "" {
		c.Supabase.Table = defaultTable
	}
	if c.Generate == nil {
		c.Generate = &GenerateConfig{}
	}
	if c.Generate.ReportIntervalSeconds == 0 {
		c.Generate.ReportIntervalSeconds = defaultReportInterval
	}
}
