package repository

import "context"

// EnclosureRepositoryInterface defines the contract for enclosure roster access.
type EnclosureRepositoryInterface interface {
	// GetAll returns all enclosures sorted ascending by enclosure number.
	GetAll(ctx context.Context) ([]EnclosureDocument, error)
	// GetByEnclosureID returns a single enclosure by its number, or nil when absent.
	GetByEnclosureID(ctx context.Context, enclosureID int) (*EnclosureDocument, error)
	// Seed inserts the given enclosures if the collection is empty.
	Seed(ctx context.Context, docs []EnclosureDocument) (bool, error)
}

// Compile-time interface check.
var _ EnclosureRepositoryInterface = (*EnclosureRepository)(nil)
