// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zoocore/habitat-service/config"
	"github.com/zoocore/habitat-service/internal/repository"
	"github.com/zoocore/habitat-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB            *repository.MongoDB
	EnclosureRepo repository.EnclosureRepositoryInterface
}

// InitializeDatabase initializes the MongoDB connection and the roster repository.
// Returns nil if the database is disabled or the connection fails; the service
// then falls back to the built-in default roster.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with default roster")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	enclosureRepo := repository.NewEnclosureRepository(db)

	// Seed the default roster if the collection is empty
	if err := seedDefaultRoster(enclosureRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default roster")
	}

	return &DatabaseComponents{
		DB:            db,
		EnclosureRepo: enclosureRepo,
	}
}

// seedDefaultRoster stores the built-in enclosure layout when none exists.
func seedDefaultRoster(repo repository.EnclosureRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs := rosterDocuments()
	seeded, err := repo.Seed(ctx, docs)
	if err != nil {
		return err
	}
	if seeded {
		log.Info().Int("enclosures", len(docs)).Msg("Seeded default enclosure roster")
	}
	return nil
}

// rosterDocuments converts the built-in roster into storable documents.
func rosterDocuments() []repository.EnclosureDocument {
	roster := service.DefaultRoster()
	docs := make([]repository.EnclosureDocument, 0, len(roster))
	for _, enc := range roster {
		occupants := make([]repository.OccupantDocument, 0, len(enc.Occupants))
		for _, occ := range enc.Occupants {
			occupants = append(occupants, repository.OccupantDocument{
				Species:  occ.Species,
				Count:    occ.Count,
				UnitSize: occ.UnitSize,
			})
		}
		docs = append(docs, repository.EnclosureDocument{
			EnclosureID: enc.ID,
			Biome:       enc.Biome,
			Capacity:    enc.Capacity,
			Occupants:   occupants,
		})
	}
	return docs
}
