// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// OccupantInput is one resident species group in a roster override.
type OccupantInput struct {
	// Species is the species identifier of the resident group.
	Species string `json:"especie" example:"MACACO"`
	// Count is the number of individuals in the group.
	Count int `json:"quantidade" example:"3" minimum:"1"`
}

// EnclosureInput is one enclosure in a roster override.
type EnclosureInput struct {
	// ID is the enclosure number, unique within the override.
	ID int `json:"numero" example:"1"`
	// Biome is the biome descriptor ("savana", "floresta", "rio" or "savana e rio").
	Biome string `json:"bioma" example:"savana"`
	// Capacity is the total space available.
	Capacity int `json:"tamanho" example:"10" minimum:"1"`
	// Occupants lists the species groups already housed.
	Occupants []OccupantInput `json:"animais"`
}

// AnalyzeRequest represents the JSON request body for the analysis endpoint.
//
// Species and quantity are validated by the analyzer, not here, so that the
// documented validation order (species before quantity) is preserved even
// when both are invalid. Enclosures is an optional roster override: when
// provided, the analysis runs against it instead of the stored roster.
//
// @Description Request to analyze which enclosures can house a group of animals
// @Example {"animal": "MACACO", "quantidade": 2}
type AnalyzeRequest struct {
	// Animal is the species identifier of the group to place.
	Animal string `json:"animal" example:"MACACO"`
	// Quantity is the number of animals in the group. Must be greater than 0.
	Quantity int `json:"quantidade" example:"2" minimum:"1"`
	// Enclosures is an optional hypothetical roster to analyze against.
	Enclosures []EnclosureInput `json:"recintos,omitempty"`
} // @name AnalyzeRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs structural validation on the roster override.
// Species and quantity semantics stay with the analyzer.
func (r *AnalyzeRequest) Validate() error {
	seen := make(map[int]bool, len(r.Enclosures))
	for _, enc := range r.Enclosures {
		if enc.Capacity <= 0 {
			return &ValidationError{Field: "recintos", Message: "capacity must be a positive integer"}
		}
		if enc.Biome == "" {
			return &ValidationError{Field: "recintos", Message: "biome descriptor is required"}
		}
		if seen[enc.ID] {
			return &ValidationError{Field: "recintos", Message: "enclosure numbers must be unique"}
		}
		seen[enc.ID] = true
		for _, occ := range enc.Occupants {
			if occ.Count <= 0 {
				return &ValidationError{Field: "recintos", Message: "occupant count must be a positive integer"}
			}
		}
	}
	return nil
}
