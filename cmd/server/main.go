package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"staffhub/internal/app/server"
	"staffhub/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		if cfg.Environment == "production" {
			log.Fatal("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-only-secret"
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("staffhub server listening on %s (store: %s)", cfg.Addr, cfg.Driver())
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
