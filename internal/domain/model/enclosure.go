package model

import "strings"

// Biome descriptors used by the zoo's enclosures.
// BiomeSavanaERio is the only compound descriptor: an enclosure carrying it
// belongs to both "savana" and "rio" simultaneously.
const (
	BiomeSavana    = "savana"
	BiomeFloresta  = "floresta"
	BiomeRio       = "rio"
	BiomeSavanaERio = "savana e rio"
)

// biomeSeparator joins the constituent tags of a compound biome descriptor.
const biomeSeparator = " e "

// SplitBiomes decomposes a biome descriptor into its constituent tags.
// Single descriptors yield one tag; the compound "savana e rio" yields both.
func SplitBiomes(descriptor string) []string {
	parts := strings.Split(descriptor, biomeSeparator)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Occupant is a group of animals of a single species living in an enclosure.
//
// @Description Group of one species currently housed in an enclosure
// @Example {"species": "MACACO", "count": 3, "unit_size": 1}
type Occupant struct {
	// Species is the species identifier of this group
	Species string `json:"species" example:"MACACO"`
	// Count is the number of individuals in this group
	Count int `json:"count" example:"3"`
	// UnitSize is the space one individual occupies
	UnitSize int `json:"unit_size" example:"1"`
}

// Space returns the total space this group consumes.
func (o Occupant) Space() int {
	return o.Count * o.UnitSize
}

// Enclosure is a habitat unit with fixed capacity, a biome classification,
// and the groups of animals it currently houses.
//
// The biome descriptor is kept verbatim (the hippopotamus cohabitation rule
// keys on the exact compound descriptor) and decomposed into tags once at
// construction for membership checks.
type Enclosure struct {
	// ID is the enclosure number, unique within the zoo
	ID int `json:"id" example:"1"`
	// Biome is the verbatim biome descriptor
	Biome string `json:"biome" example:"savana"`
	// Capacity is the total space available
	Capacity int `json:"capacity" example:"10"`
	// Occupants lists the species groups currently housed
	Occupants []Occupant `json:"occupants"`

	biomes []string
}

// NewEnclosure builds an Enclosure, decomposing the biome descriptor into
// its constituent tags.
func NewEnclosure(id int, biome string, capacity int, occupants []Occupant) Enclosure {
	return Enclosure{
		ID:        id,
		Biome:     biome,
		Capacity:  capacity,
		Occupants: occupants,
		biomes:    SplitBiomes(biome),
	}
}

// HasBiome reports whether the enclosure belongs to the given biome tag.
// Compound descriptors match on either constituent.
func (e Enclosure) HasBiome(tag string) bool {
	tags := e.biomes
	if tags == nil {
		tags = SplitBiomes(e.Biome)
	}
	for _, b := range tags {
		if b == tag {
			return true
		}
	}
	return false
}

// Occupied returns the space already consumed by the current occupants.
// An empty enclosure yields 0.
func (e Enclosure) Occupied() int {
	total := 0
	for _, o := range e.Occupants {
		total += o.Space()
	}
	return total
}

// FreeSpace returns the space still available before any hypothetical addition.
func (e Enclosure) FreeSpace() int {
	return e.Capacity - e.Occupied()
}

// Holds reports whether any occupant group is of the given species.
func (e Enclosure) Holds(species string) bool {
	for _, o := range e.Occupants {
		if o.Species == species {
			return true
		}
	}
	return false
}
