package repository

import (
	"context"
	"time"

	"study-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MaterialRepository struct {
	Col *mongo.Collection
}

func NewMaterialRepository(db *mongo.Database) *MaterialRepository {
	return &MaterialRepository{Col: db.Collection("materials")}
}

func (r *MaterialRepository) FindByID(ctx context.Context, id string) (*models.Material, error) {
	var material models.Material
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&material)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	if material.ID == "" {
		material.ID = uuid.NewString()
	}
	if material.CreatedAt.IsZero() {
		material.CreatedAt = time.Now().UTC()
	}
	_, err := r.Col.InsertOne(ctx, material)
	return err
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListByOwner returns one page of a user's materials, newest first, together
// with the total count for pagination.
func (r *MaterialRepository) ListByOwner(ctx context.Context, ownerID string, page, perPage int) ([]models.Material, int64, error) {
	filter := bson.M{"owner_id": ownerID}
	total, err := r.Col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var materials []models.Material
	for cur.Next(ctx) {
		var m models.Material
		if err := cur.Decode(&m); err != nil {
			return nil, 0, err
		}
		materials = append(materials, m)
	}
	return materials, total, cur.Err()
}
