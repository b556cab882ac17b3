package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitBiomes tests biome descriptor decomposition.
func TestSplitBiomes(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		expected   []string
	}{
		{
			name:       "single descriptor",
			descriptor: BiomeSavana,
			expected:   []string{"savana"},
		},
		{
			name:       "compound descriptor yields both tags",
			descriptor: BiomeSavanaERio,
			expected:   []string{"savana", "rio"},
		},
		{
			name:       "empty descriptor yields no tags",
			descriptor: "",
			expected:   []string{},
		},
		{
			name:       "surrounding whitespace is trimmed",
			descriptor: "savana e  rio",
			expected:   []string{"savana", "rio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitBiomes(tt.descriptor))
		})
	}
}

// TestEnclosure_HasBiome tests biome membership, including the compound descriptor.
func TestEnclosure_HasBiome(t *testing.T) {
	tests := []struct {
		name     string
		biome    string
		tag      string
		expected bool
	}{
		{"savanna has savanna", BiomeSavana, BiomeSavana, true},
		{"savanna lacks river", BiomeSavana, BiomeRio, false},
		{"dual biome has savanna", BiomeSavanaERio, BiomeSavana, true},
		{"dual biome has river", BiomeSavanaERio, BiomeRio, true},
		{"dual biome lacks forest", BiomeSavanaERio, BiomeFloresta, false},
		{"membership uses whole tags not substrings", BiomeSavana, "sav", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEnclosure(1, tt.biome, 10, nil)
			assert.Equal(t, tt.expected, enc.HasBiome(tt.tag))
		})
	}
}

// TestEnclosure_HasBiome_ZeroValue tests that a literal Enclosure without
// the constructor still resolves biome membership.
func TestEnclosure_HasBiome_ZeroValue(t *testing.T) {
	enc := Enclosure{ID: 3, Biome: BiomeSavanaERio, Capacity: 7}

	assert.True(t, enc.HasBiome(BiomeRio))
	assert.False(t, enc.HasBiome(BiomeFloresta))
}

// TestEnclosure_Space tests occupancy arithmetic.
func TestEnclosure_Space(t *testing.T) {
	enc := NewEnclosure(1, BiomeSavana, 10, []Occupant{
		{Species: SpeciesMacaco, Count: 3, UnitSize: 1},
		{Species: SpeciesGazela, Count: 2, UnitSize: 2},
	})

	assert.Equal(t, 7, enc.Occupied())
	assert.Equal(t, 3, enc.FreeSpace())
}

// TestEnclosure_Space_Empty tests an empty enclosure.
func TestEnclosure_Space_Empty(t *testing.T) {
	enc := NewEnclosure(2, BiomeFloresta, 5, nil)

	assert.Equal(t, 0, enc.Occupied())
	assert.Equal(t, 5, enc.FreeSpace())
}

// TestEnclosure_Holds tests resident species lookup.
func TestEnclosure_Holds(t *testing.T) {
	enc := NewEnclosure(1, BiomeSavana, 10, []Occupant{
		{Species: SpeciesMacaco, Count: 3, UnitSize: 1},
	})

	assert.True(t, enc.Holds(SpeciesMacaco))
	assert.False(t, enc.Holds(SpeciesGazela))
}

// TestOccupant_Space tests group space consumption.
func TestOccupant_Space(t *testing.T) {
	occ := Occupant{Species: SpeciesHipopotamo, Count: 2, UnitSize: 4}

	assert.Equal(t, 8, occ.Space())
}

// TestSpecies_LivesIn tests biome suitability per species.
func TestSpecies_LivesIn(t *testing.T) {
	monkey := Species{Name: SpeciesMacaco, UnitSize: 1, Biomes: []string{BiomeSavana, BiomeFloresta}}

	assert.True(t, monkey.LivesIn(BiomeSavana))
	assert.True(t, monkey.LivesIn(BiomeFloresta))
	assert.False(t, monkey.LivesIn(BiomeRio))
}

// TestSpecies_SpaceFor tests required space for a group.
func TestSpecies_SpaceFor(t *testing.T) {
	lion := Species{Name: SpeciesLeao, UnitSize: 3}

	assert.Equal(t, 3, lion.SpaceFor(1))
	assert.Equal(t, 9, lion.SpaceFor(3))
	assert.Equal(t, 0, lion.SpaceFor(0))
}
