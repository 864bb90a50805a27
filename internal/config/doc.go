// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. The animal coefficients are not
// configurable; only process and transport settings live here.
package config
