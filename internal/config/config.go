// Package config loads signetctl's runtime configuration from flags,
// environment variables, and an optional config file via viper,
// mirroring the corpus convention of layering cobra flags over a
// viper-backed settings store.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// HashChoice selects which hash function backs RFC 6979 nonce
// generation.
type HashChoice string

const (
	HashSHA256 HashChoice = "sha256"
	HashSHA512 HashChoice = "sha512"
)

// Config holds every setting signetctl's subcommands read, merged
// from (in increasing priority) defaults, a config file, environment
// variables prefixed SIGNETCTL_, and command-line flags.
type Config struct {
	Curve            string
	Hash             HashChoice
	LowS             bool
	ExtraEntropy     bool
	OutputEncoding   string
	ChainID          uint64
	LogLevel         string
}

// Load builds a Config from v, which the caller has already bound to
// cobra flags via BindPFlags.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Curve:          v.GetString("curve"),
		Hash:           HashChoice(v.GetString("hash")),
		LowS:           v.GetBool("low-s"),
		ExtraEntropy:   v.GetBool("extra-entropy"),
		OutputEncoding: v.GetString("output"),
		ChainID:        v.GetUint64("chain-id"),
		LogLevel:       v.GetString("log-level"),
	}

	if cfg.Hash != HashSHA256 && cfg.Hash != HashSHA512 {
		return nil, fmt.Errorf("config: unsupported hash %q (want sha256 or sha512)", cfg.Hash)
	}
	if cfg.Curve != "secp256k1" {
		return nil, fmt.Errorf("config: unsupported curve %q (only secp256k1 is implemented)", cfg.Curve)
	}
	switch strings.ToLower(cfg.OutputEncoding) {
	case "hex", "sec1", "p1363":
	default:
		return nil, fmt.Errorf("config: unsupported output encoding %q", cfg.OutputEncoding)
	}
	return cfg, nil
}

// New returns a viper instance pre-loaded with defaults, environment
// variable binding, and an optional config file search path.
func New(configFile string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SIGNETCTL")
	v.AutomaticEnv()
	v.SetDefault("curve", "secp256k1")
	v.SetDefault("hash", "sha256")
	v.SetDefault("low-s", true)
	v.SetDefault("extra-entropy", false)
	v.SetDefault("output", "hex")
	v.SetDefault("chain-id", uint64(1))
	v.SetDefault("log-level", "info")

	if configFile != "" {
		v.SetConfigFile(configFile)
		// A missing config file is not fatal; flags/env/defaults
		// still apply.
		_ = v.ReadInConfig()
	}
	return v
}
