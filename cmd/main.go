// Package main is the entry point for the habitat-service application.
//
// @title           Habitat Service API
// @version         1.0.0
// @description     API for analyzing which zoo enclosures can house a group of animals.
//
//	The analysis checks biome compatibility, available space and species
//	cohabitation rules before listing every viable enclosure.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/zoocore/habitat-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Analysis
// @tag.description Enclosure feasibility analysis
//
// @tag.name        Roster
// @tag.description Enclosure roster and species catalog
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/zoocore/habitat-service/docs" // swagger docs

	"github.com/rs/zerolog/log"
	"github.com/zoocore/habitat-service/config"
	"github.com/zoocore/habitat-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
