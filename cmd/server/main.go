// Command server runs the development backend: the JSON API used by the
// CryptoTracker CLI and a gRPC health service.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/cryptotracker/internal/server"
	"github.com/dmitrijs2005/cryptotracker/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.SecretKey == config.DefaultSecretKey {
		log.Printf("warning: signing tokens with the built-in development secret, pass -s to override")
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("cannot start backend: %v", err)
	}

	log.Printf("api on %s, health on %s", cfg.HTTPAddr, cfg.HealthAddr)
	app.Run(context.Background())
}
