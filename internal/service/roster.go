package service

import (
	"context"
	"errors"

	"github.com/zoocore/habitat-service/internal/domain/model"
	"github.com/zoocore/habitat-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// RosterService provides access to the stored enclosure roster.
type RosterService interface {
	// GetRoster returns the current roster snapshot in ascending id order.
	GetRoster(ctx context.Context) ([]model.Enclosure, error)
}

// RosterServiceImpl implements RosterService over an enclosure repository.
type RosterServiceImpl struct {
	enclosureRepo repository.EnclosureRepositoryInterface
}

// NewRosterService creates a new roster service.
func NewRosterService(enclosureRepo repository.EnclosureRepositoryInterface) RosterService {
	return &RosterServiceImpl{
		enclosureRepo: enclosureRepo,
	}
}

func (s *RosterServiceImpl) GetRoster(ctx context.Context) ([]model.Enclosure, error) {
	if s.enclosureRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	docs, err := s.enclosureRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]model.Enclosure, 0, len(docs))
	for _, doc := range docs {
		occupants := make([]model.Occupant, 0, len(doc.Occupants))
		for _, o := range doc.Occupants {
			occupants = append(occupants, model.Occupant{
				Species:  o.Species,
				Count:    o.Count,
				UnitSize: o.UnitSize,
			})
		}
		roster = append(roster, model.NewEnclosure(doc.EnclosureID, doc.Biome, doc.Capacity, occupants))
	}

	return roster, nil
}
