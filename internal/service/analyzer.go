package service

import (
	"errors"
	"sort"

	"github.com/zoocore/habitat-service/internal/domain/model"
)

// Analysis failure modes. All three are recoverable and surfaced to the
// caller; none carries a placement list.
var (
	// ErrUnknownSpecies is returned when the species is not in the catalog.
	ErrUnknownSpecies = errors.New("animal inválido")
	// ErrInvalidQuantity is returned when the requested count is zero or negative.
	ErrInvalidQuantity = errors.New("quantidade inválida")
	// ErrNoViableEnclosure is returned when no enclosure satisfies biome,
	// capacity and cohabitation rules jointly.
	ErrNoViableEnclosure = errors.New("não há recinto viável")
)

// DefaultRoster returns the zoo's standard enclosure layout.
func DefaultRoster() []model.Enclosure {
	return []model.Enclosure{
		model.NewEnclosure(1, model.BiomeSavana, 10, []model.Occupant{{Species: model.SpeciesMacaco, Count: 3, UnitSize: 1}}),
		model.NewEnclosure(2, model.BiomeFloresta, 5, nil),
		model.NewEnclosure(3, model.BiomeSavanaERio, 7, []model.Occupant{{Species: model.SpeciesGazela, Count: 1, UnitSize: 2}}),
		model.NewEnclosure(4, model.BiomeRio, 8, nil),
		model.NewEnclosure(5, model.BiomeSavana, 9, []model.Occupant{{Species: model.SpeciesLeao, Count: 1, UnitSize: 3}}),
	}
}

// HabitatAnalyzer defines the interface for enclosure feasibility analysis.
type HabitatAnalyzer interface {
	// Analyze evaluates the hypothetical addition against the configured roster.
	Analyze(species string, quantity int) (model.AnalysisResult, error)
	// AnalyzeWithRoster evaluates the addition against a caller-provided
	// roster snapshot instead of the configured one.
	AnalyzeWithRoster(species string, quantity int, roster []model.Enclosure) (model.AnalysisResult, error)
}

// Option configures a HabitatAnalyzerService.
type Option func(*HabitatAnalyzerService)

// HabitatAnalyzerService implements HabitatAnalyzer. Analysis is a pure query:
// it never writes back to the roster, so a service instance is safe for
// concurrent use without locking.
type HabitatAnalyzerService struct {
	catalog Catalog
	roster  []model.Enclosure
}

// NewHabitatAnalyzerService creates a new HabitatAnalyzerService with the
// given options. Without options it uses the default catalog and roster.
func NewHabitatAnalyzerService(opts ...Option) *HabitatAnalyzerService {
	s := &HabitatAnalyzerService{
		catalog: DefaultCatalog(),
		roster:  DefaultRoster(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCatalog sets a custom species catalog.
func WithCatalog(c Catalog) Option {
	return func(s *HabitatAnalyzerService) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithRoster sets a custom enclosure roster.
func WithRoster(roster []model.Enclosure) Option {
	return func(s *HabitatAnalyzerService) {
		if len(roster) > 0 {
			s.roster = make([]model.Enclosure, len(roster))
			copy(s.roster, roster)
		}
	}
}

// Analyze evaluates the hypothetical addition against the configured roster.
func (s *HabitatAnalyzerService) Analyze(species string, quantity int) (model.AnalysisResult, error) {
	return s.AnalyzeWithRoster(species, quantity, s.roster)
}

// AnalyzeWithRoster evaluates the addition against the given roster snapshot.
//
// Species is validated before quantity: an unknown species with an invalid
// quantity still reports ErrUnknownSpecies. This ordering is part of the
// documented contract.
func (s *HabitatAnalyzerService) AnalyzeWithRoster(species string, quantity int, roster []model.Enclosure) (model.AnalysisResult, error) {
	candidate, ok := s.catalog.Lookup(species)
	if !ok {
		return model.EmptyAnalysis(species, quantity), ErrUnknownSpecies
	}

	if quantity <= 0 {
		return model.EmptyAnalysis(species, quantity), ErrInvalidQuantity
	}

	required := candidate.SpaceFor(quantity)

	placements := make([]model.Placement, 0, len(roster))
	for _, enc := range roster {
		if !biomeMatches(enc, candidate) {
			continue
		}

		free := enc.FreeSpace()
		extra := extraSpace(enc, candidate.Name)
		if free < required+extra {
			continue
		}

		if !s.compatible(enc, candidate) {
			continue
		}

		placements = append(placements, model.NewPlacement(enc.ID, free-required-extra, enc.Capacity))
	}

	if len(placements) == 0 {
		return model.EmptyAnalysis(species, quantity), ErrNoViableEnclosure
	}

	sort.Slice(placements, func(i, j int) bool {
		return placements[i].EnclosureID < placements[j].EnclosureID
	})

	return model.AnalysisResult{
		Species:    species,
		Requested:  quantity,
		Placements: placements,
	}, nil
}

// biomeMatches reports whether the candidate species can live in the
// enclosure's biome. Compound descriptors match on either constituent tag.
func biomeMatches(enc model.Enclosure, candidate model.Species) bool {
	for _, biome := range candidate.Biomes {
		if enc.HasBiome(biome) {
			return true
		}
	}
	return false
}

// extraSpace returns the additional space to reserve when introducing a new
// species into an already-occupied enclosure. The unit is charged once per
// analysis, not per animal.
func extraSpace(enc model.Enclosure, species string) int {
	if len(enc.Occupants) > 0 && !enc.Holds(species) {
		return 1
	}
	return 0
}

// compatible applies the cohabitation rules against every occupant group of
// a different species:
//
//   - carnivores tolerate only their own species, never mixed company,
//     in either direction and even with other carnivores;
//   - a hippopotamus shares an enclosure with another species, in either
//     direction, only when the enclosure carries the exact dual-biome
//     descriptor "savana e rio".
//
// An empty enclosure is compatible with any species. Biome suitability and
// capacity are checked separately by the analyzer.
func (s *HabitatAnalyzerService) compatible(enc model.Enclosure, candidate model.Species) bool {
	for _, occ := range enc.Occupants {
		if occ.Species == candidate.Name {
			continue
		}

		if candidate.Carnivore || s.isCarnivore(occ.Species) {
			return false
		}

		if candidate.Name == model.SpeciesHipopotamo || occ.Species == model.SpeciesHipopotamo {
			if enc.Biome != model.BiomeSavanaERio {
				return false
			}
		}
	}
	return true
}

// isCarnivore looks up the carnivore flag for a resident species.
// Residents absent from the catalog are treated as non-carnivores.
func (s *HabitatAnalyzerService) isCarnivore(species string) bool {
	sp, ok := s.catalog.Lookup(species)
	return ok && sp.Carnivore
}
