package service

import (
	"sort"

	"github.com/zoocore/habitat-service/internal/domain/model"
)

// DefaultSpecies is the fixed table of species the zoo accepts.
var DefaultSpecies = []model.Species{
	{Name: model.SpeciesLeao, UnitSize: 3, Biomes: []string{model.BiomeSavana}, Carnivore: true},
	{Name: model.SpeciesLeopardo, UnitSize: 2, Biomes: []string{model.BiomeSavana}, Carnivore: true},
	{Name: model.SpeciesCrocodilo, UnitSize: 3, Biomes: []string{model.BiomeRio}, Carnivore: true},
	{Name: model.SpeciesMacaco, UnitSize: 1, Biomes: []string{model.BiomeSavana, model.BiomeFloresta}, Carnivore: false},
	{Name: model.SpeciesGazela, UnitSize: 2, Biomes: []string{model.BiomeSavana}, Carnivore: false},
	{Name: model.SpeciesHipopotamo, UnitSize: 4, Biomes: []string{model.BiomeSavana, model.BiomeRio}, Carnivore: false},
}

// Catalog provides read-only lookup of species traits.
type Catalog interface {
	// Lookup returns the traits for the given species identifier.
	Lookup(name string) (model.Species, bool)
	// List returns all accepted species sorted by name.
	List() []model.Species
}

// staticCatalog is an immutable Catalog backed by a map.
type staticCatalog struct {
	species map[string]model.Species
}

// NewCatalog creates a Catalog from the given species entries.
// Later entries with duplicate names override earlier ones.
func NewCatalog(entries []model.Species) Catalog {
	species := make(map[string]model.Species, len(entries))
	for _, s := range entries {
		species[s.Name] = s
	}
	return &staticCatalog{species: species}
}

// DefaultCatalog returns a Catalog over the zoo's fixed species table.
func DefaultCatalog() Catalog {
	return NewCatalog(DefaultSpecies)
}

func (c *staticCatalog) Lookup(name string) (model.Species, bool) {
	s, ok := c.species[name]
	return s, ok
}

func (c *staticCatalog) List() []model.Species {
	entries := make([]model.Species, 0, len(c.species))
	for _, s := range c.species {
		entries = append(entries, s)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
