package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoocore/habitat-service/internal/domain/model"
	"github.com/zoocore/habitat-service/internal/repository"
)

// fakeEnclosureRepository is a test double for the enclosure repository.
type fakeEnclosureRepository struct {
	docs []repository.EnclosureDocument
	err  error
}

func (f *fakeEnclosureRepository) GetAll(_ context.Context) ([]repository.EnclosureDocument, error) {
	return f.docs, f.err
}

func (f *fakeEnclosureRepository) GetByEnclosureID(_ context.Context, enclosureID int) (*repository.EnclosureDocument, error) {
	for i := range f.docs {
		if f.docs[i].EnclosureID == enclosureID {
			return &f.docs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEnclosureRepository) Seed(_ context.Context, docs []repository.EnclosureDocument) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if len(f.docs) > 0 {
		return false, nil
	}
	f.docs = docs
	return true, nil
}

// TestRosterService_GetRoster tests document to domain conversion.
func TestRosterService_GetRoster(t *testing.T) {
	repo := &fakeEnclosureRepository{
		docs: []repository.EnclosureDocument{
			{
				EnclosureID: 1,
				Biome:       model.BiomeSavana,
				Capacity:    10,
				Occupants: []repository.OccupantDocument{
					{Species: model.SpeciesMacaco, Count: 3, UnitSize: 1},
				},
			},
			{
				EnclosureID: 3,
				Biome:       model.BiomeSavanaERio,
				Capacity:    7,
				Occupants:   nil,
			},
		},
	}
	svc := NewRosterService(repo)

	roster, err := svc.GetRoster(context.Background())

	require.NoError(t, err)
	require.Len(t, roster, 2)

	assert.Equal(t, 1, roster[0].ID)
	assert.Equal(t, model.BiomeSavana, roster[0].Biome)
	assert.Equal(t, 10, roster[0].Capacity)
	require.Len(t, roster[0].Occupants, 1)
	assert.Equal(t, model.SpeciesMacaco, roster[0].Occupants[0].Species)
	assert.Equal(t, 7, roster[0].FreeSpace())

	assert.Equal(t, 3, roster[1].ID)
	assert.True(t, roster[1].HasBiome(model.BiomeSavana))
	assert.True(t, roster[1].HasBiome(model.BiomeRio))
	assert.Empty(t, roster[1].Occupants)
}

// TestRosterService_GetRoster_Errors tests failure propagation.
func TestRosterService_GetRoster_Errors(t *testing.T) {
	t.Run("repository error is propagated", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		svc := NewRosterService(&fakeEnclosureRepository{err: repoErr})

		_, err := svc.GetRoster(context.Background())

		require.ErrorIs(t, err, repoErr)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := NewRosterService(nil)

		_, err := svc.GetRoster(context.Background())

		require.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

// TestRosterService_GetRoster_Empty tests an empty collection.
func TestRosterService_GetRoster_Empty(t *testing.T) {
	svc := NewRosterService(&fakeEnclosureRepository{})

	roster, err := svc.GetRoster(context.Background())

	require.NoError(t, err)
	assert.Empty(t, roster)
}
