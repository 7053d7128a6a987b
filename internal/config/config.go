// Package config resolves the run configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvConverter = "UNICONV_CONVERTER"
	EnvStrict    = "UNICONV_STRICT"
	EnvClipboard = "UNICONV_CLIPBOARD"
)

// Config holds the settings of one run. Command line flags override it.
type Config struct {
	Converter string
	Strict    bool
	Clipboard bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Converter: "dummy",
		Strict:    false,
		Clipboard: true,
	}
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, keeping defaults for unset or malformed values.
func FromEnv(lookup func(string) (string, bool)) Config {
	cfg := Default()

	if v, ok := lookup(EnvConverter); ok && strings.TrimSpace(v) != "" {
		cfg.Converter = strings.TrimSpace(v)
	}

	cfg.Strict = boolEnv(lookup, EnvStrict, cfg.Strict)
	cfg.Clipboard = boolEnv(lookup, EnvClipboard, cfg.Clipboard)

	return cfg
}

func boolEnv(lookup func(string) (string, bool), key string, fallback bool) bool {
	v, ok := lookup(key)
	if !ok {
		return fallback
	}

	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}

	return b
}
