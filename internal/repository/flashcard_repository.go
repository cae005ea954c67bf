package repository

import (
	"context"

	"study-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FlashcardRepository struct {
	Col *mongo.Collection
}

func NewFlashcardRepository(db *mongo.Database) *FlashcardRepository {
	return &FlashcardRepository{Col: db.Collection("flashcards")}
}

func (r *FlashcardRepository) FindByMaterial(ctx context.Context, materialID string) ([]models.Flashcard, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"material_id": materialID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var flashcards []models.Flashcard
	for cur.Next(ctx) {
		var f models.Flashcard
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		flashcards = append(flashcards, f)
	}
	return flashcards, cur.Err()
}

func (r *FlashcardRepository) CountByMaterial(ctx context.Context, materialID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"material_id": materialID})
}

func (r *FlashcardRepository) CreateMany(ctx context.Context, flashcards []models.Flashcard) error {
	if len(flashcards) == 0 {
		return nil
	}
	docs := make([]any, 0, len(flashcards))
	for i := range flashcards {
		if flashcards[i].ID == "" {
			flashcards[i].ID = uuid.NewString()
		}
		docs = append(docs, flashcards[i])
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *FlashcardRepository) DeleteByMaterial(ctx context.Context, materialID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"material_id": materialID})
	return err
}
