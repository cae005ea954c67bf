package service

import (
	"context"

	"study-service/internal/apperr"
	"study-service/internal/models"
)

// Store interfaces consumed by the services. The mongo and redis repositories
// satisfy them in production; tests substitute in-memory fakes.

type MaterialStore interface {
	FindByID(ctx context.Context, id string) (*models.Material, error)
	Create(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string, page, perPage int) ([]models.Material, int64, error)
}

type QuestionStore interface {
	FindByMaterial(ctx context.Context, materialID string) ([]models.Question, error)
	CountByMaterial(ctx context.Context, materialID string) (int64, error)
	CreateMany(ctx context.Context, questions []models.Question) error
	DeleteByMaterial(ctx context.Context, materialID string) error
}

type FlashcardStore interface {
	FindByMaterial(ctx context.Context, materialID string) ([]models.Flashcard, error)
	CountByMaterial(ctx context.Context, materialID string) (int64, error)
	CreateMany(ctx context.Context, flashcards []models.Flashcard) error
	DeleteByMaterial(ctx context.Context, materialID string) error
}

type ProgressStore interface {
	// Find returns (nil, nil) when no row exists for the pair.
	Find(ctx context.Context, userID, materialID string) (*models.Progress, error)
	// Save persists the whole aggregate; a concurrent write surfaces as a
	// CONFLICT error.
	Save(ctx context.Context, progress *models.Progress) error
	ListByUser(ctx context.Context, userID string) ([]models.Progress, error)
}

type SessionStore interface {
	Put(ctx context.Context, session *models.QuizSession) error
	// Get fails with a SESSION_EXPIRED error when the id is absent or past TTL.
	Get(ctx context.Context, sessionID string) (*models.QuizSession, error)
}

// verifyMaterialAccess checks that the material exists and belongs to the
// authenticated user. Every operation taking a (user, material) pair starts
// here.
func verifyMaterialAccess(ctx context.Context, store MaterialStore, materialID, userID string) (*models.Material, error) {
	material, err := store.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperr.New(apperr.CodeNotFound, "material not found")
	}
	if material.OwnerID != userID {
		return nil, apperr.New(apperr.CodeForbidden, "not authorized to access this material")
	}
	return material, nil
}
