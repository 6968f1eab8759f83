package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/cryptotracker/internal/flagx"
	"github.com/dmitrijs2005/cryptotracker/internal/timex"
	"github.com/pelletier/go-toml/v2"
)

// FileConfig defines a configuration structure tailored for file decoding.
// It uses timex.Duration for token lifetimes, which allows parsing both
// string values such as "15m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading config files.
// Empty or missing fields leave the corresponding Config value untouched.
type FileConfig struct {
	HTTPAddr                    string          `json:"http_addr" toml:"http_addr"`
	HealthAddr                  string          `json:"health_addr" toml:"health_addr"`
	SecretKey                   string          `json:"secret_key" toml:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration" toml:"access_token_validity_duration"`
	ResetTokenValidityDuration  *timex.Duration `json:"reset_token_validity_duration" toml:"reset_token_validity_duration"`
	LogFormat                   string          `json:"log_format" toml:"log_format"`
	LogLevel                    string          `json:"log_level" toml:"log_level"`
}

// parseFile loads configuration values from the file named by the -c or
// -config flag into cfg. Files ending in .toml are decoded as TOML, anything
// else as JSON. If no flag is given nothing is loaded. If the file cannot be
// read or decoded, the function panics.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.HTTPAddr != "" {
		cfg.HTTPAddr = fc.HTTPAddr
	}
	if fc.HealthAddr != "" {
		cfg.HealthAddr = fc.HealthAddr
	}
	if fc.SecretKey != "" {
		cfg.SecretKey = fc.SecretKey
	}
	if fc.AccessTokenValidityDuration != nil {
		cfg.AccessTokenValidityDuration = fc.AccessTokenValidityDuration.Duration
	}
	if fc.ResetTokenValidityDuration != nil {
		cfg.ResetTokenValidityDuration = fc.ResetTokenValidityDuration.Duration
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
