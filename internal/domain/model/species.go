// Package model defines the core domain entities for the habitat service.
package model

// Accepted species identifiers.
const (
	SpeciesLeao       = "LEAO"
	SpeciesLeopardo   = "LEOPARDO"
	SpeciesCrocodilo  = "CROCODILO"
	SpeciesMacaco     = "MACACO"
	SpeciesGazela     = "GAZELA"
	SpeciesHipopotamo = "HIPOPOTAMO"
)

// Species describes the static traits of an accepted species.
//
// @Description Species traits: space one individual occupies, compatible biomes, and carnivore flag
// @Example {"name": "LEAO", "unit_size": 3, "biomes": ["savana"], "carnivore": true}
type Species struct {
	// Name is the unique species identifier
	Name string `json:"name" example:"LEAO"`
	// UnitSize is the space one individual of this species occupies
	UnitSize int `json:"unit_size" example:"3"`
	// Biomes lists the biome tags this species can live in
	Biomes []string `json:"biomes" example:"savana"`
	// Carnivore indicates whether the species refuses mixed company
	Carnivore bool `json:"carnivore" example:"true"`
}

// LivesIn reports whether the species tolerates the given biome tag.
func (s Species) LivesIn(biome string) bool {
	for _, b := range s.Biomes {
		if b == biome {
			return true
		}
	}
	return false
}

// SpaceFor returns the space a group of the given size occupies.
func (s Species) SpaceFor(count int) int {
	return s.UnitSize * count
}
