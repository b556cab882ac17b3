// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/zoocore/habitat-service/config"
	"github.com/zoocore/habitat-service/internal/http"
	"github.com/zoocore/habitat-service/internal/repository"
	"github.com/zoocore/habitat-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	// Initialize roster service when a repository is available
	var rosterService service.RosterService
	if dbComponents != nil && dbComponents.EnclosureRepo != nil {
		rosterService = service.NewRosterService(dbComponents.EnclosureRepo)
	}

	handler := http.NewHandler(
		services.Analyzer,
		services.Catalog,
		rosterService,
		http.WithRosterCacheTTL(cfg.Roster.CacheTTL),
	)
	healthHandler := http.NewHealthHandler()

	// Register the database readiness check
	if dbComponents != nil && dbComponents.DB != nil {
		healthHandler.RegisterChecker("mongodb", &mongoChecker{db: dbComponents.DB})
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// mongoChecker adapts the MongoDB client to the health checker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (c *mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.db.HealthCheck(ctx)
}
