// Package config loads generator settings from an optional YAML file,
// with the DATABASE_URL environment variable as the usual way to supply
// the connection string.
package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// EnvDatabaseURL is the environment variable consulted for the
// connection string when the config file and flags leave it empty.
const EnvDatabaseURL = "DATABASE_URL"

// Config is the full configuration for a generation run.
type Config struct {
	Database Database `yaml:"database"`
	Generate Generate `yaml:"generate"`
	Log      Log      `yaml:"log"`
}

// Database holds connection settings.
type Database struct {
	// DSN is the postgres connection string. Falls back to the
	// DATABASE_URL environment variable when empty.
	DSN string `yaml:"dsn"`

	// Schema is the database schema to introspect.
	Schema string `yaml:"schema"`
}

// Generate holds output settings.
type Generate struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package"`

	// Out is the output file path; empty writes to stdout.
	Out string `yaml:"out"`

	// ExcludeTables are skipped in addition to the migrations table.
	ExcludeTables []string `yaml:"exclude_tables"`

	// EmitInputStructs also emits <Name>Input insert-payload structs.
	EmitInputStructs bool `yaml:"emit_input_structs"`
}

// Log holds logging settings.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Database: Database{Schema: "public"},
		Generate: Generate{Package: "models"},
		Log:      Log{Level: "info", Format: "console"},
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// ResolveDSN applies the DATABASE_URL fallback when no DSN was configured.
func (c *Config) ResolveDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return os.Getenv(EnvDatabaseURL)
}

func (c *Config) applyDefaults() {
	if c.Database.Schema == "" {
		c.Database.Schema = "public"
	}
	if c.Generate.Package == "" {
		c.Generate.Package = "models"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}
