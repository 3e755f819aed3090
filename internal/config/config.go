// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

// Package config loads service configuration from an optional YAML file
// with command-line flag overrides.
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config is the full service configuration.
type Config struct {
	Database      DatabaseConfig      `koanf:"database"`
	Server        ServerConfig        `koanf:"server"`
	Observability ObservabilityConfig `koanf:"observability"`
	Logging       LoggingConfig       `koanf:"logging"`
	Session       SessionConfig       `koanf:"session"`
	Hasher        HasherConfig        `koanf:"hasher"`
}

// DatabaseConfig holds the account store connection settings.
type DatabaseConfig struct {
	URL string `koanf:"url"`
}

// ServerConfig holds the public HTTP listener settings.
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// ObservabilityConfig holds the metrics/health listener settings.
type ObservabilityConfig struct {
	Addr string `koanf:"addr"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Format string `koanf:"format"` // "json" or "text"
}

// SessionConfig holds the session codec settings. The key is the
// process-wide symmetric secret; it must come from deployment
// configuration, never from a constant in the code.
type SessionConfig struct {
	Key string `koanf:"key"`
}

// HasherConfig selects the credential digest algorithm. "sha1" is the
// legacy default, compatible with previously stored digests; "pbkdf2"
// requires a pepper and only suits fresh deployments.
type HasherConfig struct {
	Algorithm string `koanf:"algorithm"`
	Pepper    string `koanf:"pepper"`
}

// Flags returns the pflag set understood by Load. Flag names use hyphens
// and map onto the dotted config keys (database-url -> database.url),
// so a flag given explicitly overrides the file, and a flag default only
// applies when the file is silent.
func Flags() *pflag.FlagSet {
	f := pflag.NewFlagSet("ecommit", pflag.ContinueOnError)
	f.String("database-url", "", "PostgreSQL connection URL")
	f.String("server-addr", ":8080", "public HTTP listen address")
	f.String("observability-addr", ":9100", "metrics/health listen address")
	f.String("logging-format", "json", "log output format (json or text)")
	f.String("session-key", "", "session cookie encryption key")
	f.String("hasher-algorithm", "sha1", "credential digest algorithm (sha1 or pbkdf2)")
	f.String("hasher-pepper", "", "deployment pepper for the pbkdf2 hasher")
	return f
}

// Load reads the YAML file at path (skipped when path is empty) and then
// applies the flag set on top.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithValue(flags, ".", k, func(key, value string) (string, any) {
			return strings.ReplaceAll(key, "-", "."), value
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("source", "flags").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_PARSE_FAILED").Wrap(err)
	}

	return &cfg, nil
}

// Validate checks the invariants serve depends on.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database.url is required")
	}
	if c.Session.Key == "" {
		return oops.Code("CONFIG_INVALID").Errorf("session.key is required")
	}
	switch c.Hasher.Algorithm {
	case "sha1":
	case "pbkdf2":
		if c.Hasher.Pepper == "" {
			return oops.Code("CONFIG_INVALID").Errorf("hasher.pepper is required for pbkdf2")
		}
	default:
		return oops.Code("CONFIG_INVALID").
			With("algorithm", c.Hasher.Algorithm).
			Errorf("unknown hasher algorithm")
	}
	return nil
}
