package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/schemehub/schemehub/internal/app"
)

func main() {
	// Local development convenience; in containers the env is injected.
	_ = godotenv.Load()

	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ schemehub failed to start: %v", err)
	}
}
