// Package repository provides data access for the enclosure roster.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OccupantDocument represents one species group inside an enclosure document.
type OccupantDocument struct {
	Species  string `bson:"species" json:"species"`
	Count    int    `bson:"count" json:"count"`
	UnitSize int    `bson:"unit_size" json:"unit_size"`
}

// EnclosureDocument represents an enclosure roster document.
type EnclosureDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EnclosureID int                `bson:"enclosure_id" json:"enclosure_id"`
	Biome       string             `bson:"biome" json:"biome"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	Occupants   []OccupantDocument `bson:"occupants" json:"occupants"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// EnclosureRepository provides methods for enclosure roster operations.
type EnclosureRepository struct {
	collection *mongo.Collection
}

// NewEnclosureRepository creates a new enclosure repository.
func NewEnclosureRepository(db *MongoDB) *EnclosureRepository {
	return &EnclosureRepository{
		collection: db.Enclosures,
	}
}

// GetAll returns all enclosures sorted ascending by enclosure number.
func (r *EnclosureRepository) GetAll(ctx context.Context) ([]EnclosureDocument, error) {
	opts := options.Find().SetSort(bson.M{"enclosure_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []EnclosureDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// GetByEnclosureID returns a single enclosure by its number.
func (r *EnclosureRepository) GetByEnclosureID(ctx context.Context, enclosureID int) (*EnclosureDocument, error) {
	var doc EnclosureDocument
	err := r.collection.FindOne(ctx, bson.M{"enclosure_id": enclosureID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Seed inserts the given enclosures if the collection is empty.
// Returns true when documents were inserted.
func (r *EnclosureRepository) Seed(ctx context.Context, docs []EnclosureDocument) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now()
	inserts := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		doc.ID = primitive.NewObjectID()
		doc.CreatedAt = now
		doc.UpdatedAt = now
		inserts = append(inserts, doc)
	}

	if _, err := r.collection.InsertMany(ctx, inserts); err != nil {
		return false, err
	}

	return true, nil
}
