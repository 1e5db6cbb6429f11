// Package config assembles the yoga-client configuration from multiple
// sources: an optional .env file, environment variables, command-line flags
// and an optional JSON file. Later sources are merged on top of earlier
// ones, and defaults fill whatever remains unset.
package config

import (
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultServerAddress is used when no backend address is configured.
	DefaultServerAddress = "http://localhost:8080"

	// DefaultRequestTimeout bounds every outbound request.
	DefaultRequestTimeout = 15 * time.Second
)

// ClientConfig is the top-level configuration container for the client.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// Server holds the backend connection settings.
	Server ServerConn `envPrefix:"SERVER_"`

	// Logs holds log output settings.
	Logs Logs `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// ServerConn holds connection settings for the booking backend.
type ServerConn struct {
	// Address is the base URL of the backend REST API
	// (e.g. "http://localhost:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Logs holds log output settings.
type Logs struct {
	// Path is the log file path. Empty means a "logs" file next to the
	// executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

func (c *ClientConfig) applyDefaults() {
	if strings.TrimSpace(c.Server.Address) == "" {
		c.Server.Address = DefaultServerAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
}

func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.Server.Address)
	if err != nil || u.Host == "" && u.Path == "" {
		return ErrInvalidServerAddress
	}
	if c.Server.RequestTimeout <= 0 {
		return ErrNonPositiveTimeout
	}
	return nil
}

// GetClientConfig builds the client configuration from all sources, applies
// defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
