package repository

import (
	"context"
	"log"
	"time"

	"study-service/internal/apperr"
	"study-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepository persists the per-(user, material) mastery aggregate.
// Writes are optimistic: every save checks the version it loaded and bumps it,
// so two concurrent merges to the same row cannot silently lose one another.
type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	r := &ProgressRepository{Col: db.Collection("progress")}
	r.ensureIndexes()
	return r
}

// ensureIndexes enforces the (user_id, material_id) natural key. A racing
// first insert for the same pair surfaces as a duplicate-key conflict instead
// of a second row.
func (r *ProgressRepository) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "material_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Error creating progress index: %s", err)
	}
}

func (r *ProgressRepository) Find(ctx context.Context, userID, materialID string) (*models.Progress, error) {
	var p models.Progress
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "material_id": materialID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save persists the whole aggregate in one write. A zero version means the row
// has never been stored and is inserted; otherwise the update filter includes
// the loaded version and a miss reports a conflict for the caller to retry.
func (r *ProgressRepository) Save(ctx context.Context, p *models.Progress) error {
	if p.Version == 0 {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.Version = 1
		_, err := r.Col.InsertOne(ctx, p)
		if mongo.IsDuplicateKeyError(err) {
			p.Version = 0
			return apperr.Wrap(err, apperr.CodeConflict, "concurrent progress creation")
		}
		return err
	}

	res, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": p.UserID, "material_id": p.MaterialID, "version": p.Version},
		bson.M{"$set": bson.M{
			"flashcard_scores": p.FlashcardScores,
			"question_scores":  p.QuestionScores,
			"overall_mastery":  p.OverallMastery,
			"last_reviewed":    p.LastReviewed,
			"next_review":      p.NextReview,
			"weak_topics":      p.WeakTopics,
			"version":          p.Version + 1,
		}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return apperr.New(apperr.CodeConflict, "concurrent progress update")
	}
	p.Version++
	return nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]models.Progress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.Progress
	for cur.Next(ctx) {
		var p models.Progress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		rows = append(rows, p)
	}
	return rows, cur.Err()
}
