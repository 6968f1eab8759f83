// Package config handles configuration for the development backend,
// including defaults, a JSON or TOML file overlay, and command-line flags.
package config

import "time"

// DefaultSecretKey signs tokens when no secret is configured.
const DefaultSecretKey = "secretKey"

// Config holds runtime settings for the development backend.
//
// Fields:
//   - HTTPAddr: bind address of the JSON API.
//   - HealthAddr: bind address of the gRPC health service.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: lifetime of issued bearer tokens.
//   - ResetTokenValidityDuration: lifetime of password reset tokens.
//   - LogFormat / LogLevel: see logging.New.
type Config struct {
	HTTPAddr                    string
	HealthAddr                  string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	ResetTokenValidityDuration  time.Duration
	LogFormat                   string
	LogLevel                    string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.HealthAddr = ":50051"
	c.SecretKey = DefaultSecretKey
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.ResetTokenValidityDuration = 15 * time.Minute
	c.LogFormat = "json"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
