package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend
//	-g string   gRPC health endpoint (host:port)
//	-s string   credential store file
//	-i int      online check interval (seconds)
//	-w int      store watch interval (seconds, 0 disables)
//	-t int      request timeout (seconds)
//	-l string   log format: text, json or console
//	-v string   log level: debug, info, warn, error
//
// Only the flags above are taken from os.Args (see flagx.FilterArgs).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-s", "-i", "-w", "-t", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	fs.StringVar(&cfg.HealthAddr, "g", cfg.HealthAddr, "gRPC health endpoint")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "credential store file")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	storeWatchInterval := fs.Int("w", int(cfg.StoreWatchInterval.Seconds()), "store watch interval (in seconds, 0 disables)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format (text, json, console)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Interval flags are whole seconds; only explicit ones replace the value
	// from defaults or the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "w":
			cfg.StoreWatchInterval = time.Duration(*storeWatchInterval) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
