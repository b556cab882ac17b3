// Package app provides service initialization.
package app

import (
	"github.com/zoocore/habitat-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog  service.Catalog
	Analyzer service.HabitatAnalyzer
}

// InitializeServices initializes business logic services.
func InitializeServices() *ServiceComponents {
	catalog := service.DefaultCatalog()
	analyzer := service.NewHabitatAnalyzerService(service.WithCatalog(catalog))

	return &ServiceComponents{
		Catalog:  catalog,
		Analyzer: analyzer,
	}
}
