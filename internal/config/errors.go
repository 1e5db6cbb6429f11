package config

import "errors"

var (
	ErrInvalidServerAddress = errors.New("invalid server address")
	ErrNonPositiveTimeout   = errors.New("request timeout must be positive")
)
