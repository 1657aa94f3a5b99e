// Package main is the entry point for the bundle-service application.
//
// @title           Bundle Service API
// @version         1.0.0
// @description     API for assembling a product bundle from a fixed catalog.
//
//	The service tracks running subtotal and discount per shopper session and gates checkout behind a minimum item count.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/bundle-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Bundle
// @tag.description Bundle session operations
//
// @tag.name        Catalog
// @tag.description Catalog display data
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/bundle-service/docs" // swagger docs

	"github.com/guttosm/bundle-service/config"
	"github.com/guttosm/bundle-service/internal/app"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	err := server.Run()
	cleanup()
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
