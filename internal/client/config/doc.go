// Package config loads runtime configuration for the cryptotracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. ".toml" files are
//     decoded with go-toml, everything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # File schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "health_addr": "127.0.0.1:50051",
//	  "store_path": "session.db",
//	  "online_check_interval": "3s",
//	  "store_watch_interval": "0s",
//	  "request_timeout": "10s",
//	  "log_format": "text",
//	  "log_level": "info"
//	}
//
// The same keys are used in TOML files.
package config
