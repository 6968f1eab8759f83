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

// FileConfig is a DTO used exclusively for decoding config files. Intervals
// use timex.Duration so files can say "3s" or give integer nanoseconds.
// Empty or missing fields leave the current value untouched.
type FileConfig struct {
	ServerURL           string          `json:"server_url" toml:"server_url"`
	HealthAddr          string          `json:"health_addr" toml:"health_addr"`
	StorePath           string          `json:"store_path" toml:"store_path"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" toml:"online_check_interval"`
	StoreWatchInterval  *timex.Duration `json:"store_watch_interval" toml:"store_watch_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout" toml:"request_timeout"`
	LogFormat           string          `json:"log_format" toml:"log_format"`
	LogLevel            string          `json:"log_level" toml:"log_level"`
}

// parseFile overlays Config with values from the file named by -c/-config.
// Files ending in .toml are decoded as TOML, anything else as JSON.
// Panics on read or decode errors.
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
	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.HealthAddr != "" {
		cfg.HealthAddr = fc.HealthAddr
	}
	if fc.StorePath != "" {
		cfg.StorePath = fc.StorePath
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.StoreWatchInterval != nil {
		cfg.StoreWatchInterval = fc.StoreWatchInterval.Duration
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
