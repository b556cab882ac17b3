package model

import "fmt"

// Placement describes one viable enclosure for a hypothetical addition.
// It implements JSON serialization for direct use in HTTP responses.
//
// @Description Viable enclosure with the free space left after the hypothetical addition
// @Example {"enclosure_id": 1, "free_space": 5, "total_capacity": 10, "description": "Recinto 1 (espaço livre: 5 total: 10)"}
type Placement struct {
	// EnclosureID is the enclosure number
	EnclosureID int `json:"enclosure_id" example:"1"`
	// FreeSpace is the space remaining after the hypothetical addition
	FreeSpace int `json:"free_space" example:"5"`
	// Capacity is the enclosure's total capacity
	Capacity int `json:"total_capacity" example:"10"`
	// Description is the rendered display string for this placement
	Description string `json:"description" example:"Recinto 1 (espaço livre: 5 total: 10)"`
}

// NewPlacement builds a Placement with its rendered description.
func NewPlacement(enclosureID, freeSpace, capacity int) Placement {
	p := Placement{
		EnclosureID: enclosureID,
		FreeSpace:   freeSpace,
		Capacity:    capacity,
	}
	p.Description = p.Describe()
	return p
}

// Describe renders the placement in the zoo's display convention.
func (p Placement) Describe() string {
	return fmt.Sprintf("Recinto %d (espaço livre: %d total: %d)", p.EnclosureID, p.FreeSpace, p.Capacity)
}

// AnalysisResult is the outcome of a feasibility analysis.
//
// @Description Feasibility analysis result: the requested group and the viable enclosures, ordered by enclosure id
type AnalysisResult struct {
	// Species is the species identifier that was analyzed
	Species string `json:"species" example:"MACACO"`
	// Requested is the number of animals in the hypothetical addition
	Requested int `json:"requested" example:"2"`
	// Placements lists the viable enclosures in ascending id order
	Placements []Placement `json:"placements"`
}

// EmptyAnalysis returns an AnalysisResult with no placements for the given query.
func EmptyAnalysis(species string, requested int) AnalysisResult {
	return AnalysisResult{
		Species:    species,
		Requested:  requested,
		Placements: []Placement{},
	}
}
