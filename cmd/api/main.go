package main

import (
	"context"
	"log"
	"time"

	_ "opticai/docs"
	"opticai/internal/adapter/http/routes"
	"opticai/internal/config"
	"opticai/internal/infrastructure/telemetry"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OpticAI Service Order API
// @version         1.0
// @description     Service orders, editing sessions and printable slips of an optical shop.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Authenticated user id forwarded by the auth gateway.

func main() {
	cfg := config.Load()

	shutdown := telemetry.Setup(routes.ServiceName)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("telemetry shutdown error: %v", err)
		}
	}()

	routes.Run(cfg)
}
