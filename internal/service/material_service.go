package service

import (
	"context"

	"study-service/internal/apperr"
	"study-service/internal/models"
)

// MaterialService is the write side of the content store: materials plus the
// generated questions and flashcards attached to them. Content generation
// itself happens elsewhere; this service only persists and serves the results.
type MaterialService struct {
	Materials  MaterialStore
	Questions  QuestionStore
	Flashcards FlashcardStore
}

func NewMaterialService(materials MaterialStore, questions QuestionStore, flashcards FlashcardStore) *MaterialService {
	return &MaterialService{Materials: materials, Questions: questions, Flashcards: flashcards}
}

func (s *MaterialService) CreateMaterial(ctx context.Context, ownerID, title, content, sourceType, sourceURL string) (*models.Material, error) {
	if title == "" {
		return nil, apperr.New(apperr.CodeValidation, "title is required")
	}
	if content == "" {
		return nil, apperr.New(apperr.CodeValidation, "content is required")
	}
	if sourceType != models.SourceTypePDF && sourceType != models.SourceTypeYouTube {
		return nil, apperr.New(apperr.CodeValidation, "unknown source type %q", sourceType)
	}
	material := &models.Material{
		Title:      title,
		Content:    content,
		SourceType: sourceType,
		SourceURL:  sourceURL,
		OwnerID:    ownerID,
	}
	if err := s.Materials.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, materialID, userID string) (*models.Material, error) {
	return verifyMaterialAccess(ctx, s.Materials, materialID, userID)
}

func (s *MaterialService) ListMaterials(ctx context.Context, ownerID string, page, perPage int) ([]models.Material, int64, error) {
	return s.Materials.ListByOwner(ctx, ownerID, page, perPage)
}

// DeleteMaterial removes the material together with its generated content.
func (s *MaterialService) DeleteMaterial(ctx context.Context, materialID, userID string) error {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return err
	}
	if err := s.Questions.DeleteByMaterial(ctx, materialID); err != nil {
		return err
	}
	if err := s.Flashcards.DeleteByMaterial(ctx, materialID); err != nil {
		return err
	}
	return s.Materials.Delete(ctx, materialID)
}

// ListQuestions returns the material's questions as presentation views,
// numbered in stable store order, without correct answers.
func (s *MaterialService) ListQuestions(ctx context.Context, materialID, userID string) ([]models.QuestionView, error) {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return nil, err
	}
	questions, err := s.Questions.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	views := make([]models.QuestionView, 0, len(questions))
	for i := range questions {
		views = append(views, questions[i].View(i+1))
	}
	return views, nil
}

func (s *MaterialService) ListFlashcards(ctx context.Context, materialID, userID string) ([]models.Flashcard, error) {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return nil, err
	}
	flashcards, err := s.Flashcards.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if flashcards == nil {
		flashcards = []models.Flashcard{}
	}
	return flashcards, nil
}

// AddQuestions persists a batch of generated questions for a material. Each
// question must carry at least two options and a correct answer matching one
// of them; a bad item fails the whole batch before anything is written.
func (s *MaterialService) AddQuestions(ctx context.Context, materialID, userID string, questions []models.Question) error {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return err
	}
	for i := range questions {
		q := &questions[i]
		if q.QuestionText == "" {
			return apperr.New(apperr.CodeValidation, "question %d has no text", i+1)
		}
		if len(q.Options) < 2 {
			return apperr.New(apperr.CodeValidation, "question %d needs at least two options", i+1)
		}
		if _, ok := q.CorrectLetter(); !ok {
			return apperr.New(apperr.CodeValidation, "question %d: correct answer does not match any option", i+1)
		}
		q.MaterialID = materialID
		q.UserID = userID
	}
	return s.Questions.CreateMany(ctx, questions)
}

// AddFlashcards persists a batch of generated flashcards for a material.
func (s *MaterialService) AddFlashcards(ctx context.Context, materialID, userID string, flashcards []models.Flashcard) error {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return err
	}
	for i := range flashcards {
		f := &flashcards[i]
		if f.Front == "" || f.Back == "" {
			return apperr.New(apperr.CodeValidation, "flashcard %d needs both a front and a back", i+1)
		}
		f.MaterialID = materialID
		f.UserID = userID
	}
	return s.Flashcards.CreateMany(ctx, flashcards)
}
