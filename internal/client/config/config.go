package config

import "time"

// Config holds runtime settings for the cryptotracker CLI.
//
// Fields:
//   - ServerURL: base URL of the portfolio backend (HTTP API).
//   - HealthAddr: optional host:port of the backend gRPC health endpoint; when
//     empty the online watcher polls ServerURL + "/health" instead.
//   - StorePath: SQLite file holding the persisted credential. Every CLI
//     process pointing at the same file shares the credential.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - StoreWatchInterval: how often the session re-reads the store to pick up
//     logins/logouts made by other processes. Zero disables the watcher.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - LogFormat / LogLevel: see logging.New.
type Config struct {
	ServerURL           string
	HealthAddr          string
	StorePath           string
	OnlineCheckInterval time.Duration
	StoreWatchInterval  time.Duration
	RequestTimeout      time.Duration
	LogFormat           string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://crypto-portfolio-tracker-backend.onrender.com"
	c.HealthAddr = ""
	c.StorePath = "session.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.StoreWatchInterval = 0
	c.RequestTimeout = 10 * time.Second
	c.LogFormat = "text"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
