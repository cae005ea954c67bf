package service

import (
	"context"
	"time"

	"study-service/internal/analysis"
	"study-service/internal/apperr"
	"study-service/internal/models"
	"study-service/internal/srs"
)

// ProgressService owns the mastery record for each (user, material) pair.
// UpdateProgress is the only write path; stats, weak areas and the overview
// are derived reads over the persisted state.
type ProgressService struct {
	Progress   ProgressStore
	Materials  MaterialStore
	Questions  QuestionStore
	Flashcards FlashcardStore

	// Threshold is the mean score below which a category counts as weak.
	Threshold float64
	// MergeRetries bounds how often a merge is retried after a detected
	// concurrent write before the conflict is surfaced.
	MergeRetries int

	Now func() time.Time
}

func NewProgressService(
	progress ProgressStore,
	materials MaterialStore,
	questions QuestionStore,
	flashcards FlashcardStore,
	threshold float64,
	mergeRetries int,
) *ProgressService {
	return &ProgressService{
		Progress:     progress,
		Materials:    materials,
		Questions:    questions,
		Flashcards:   flashcards,
		Threshold:    threshold,
		MergeRetries: mergeRetries,
		Now:          time.Now,
	}
}

// UpdateProgress validates the score delta, merges it into the aggregate,
// recomputes the derived fields and persists everything as one optimistic
// write. On a version conflict the whole load-merge-save cycle is retried.
func (s *ProgressService) UpdateProgress(ctx context.Context, materialID, userID string, scores map[string]float64, kind models.ScoreKind) (*models.Progress, error) {
	if kind != models.ScoreKindFlashcard && kind != models.ScoreKindQuestion {
		return nil, apperr.New(apperr.CodeValidation, "unknown score kind %q", kind)
	}
	for id, score := range scores {
		// Written as a positive range check so NaN fails it too.
		if !(score >= 0 && score <= 1) {
			return nil, apperr.New(apperr.CodeValidation, "score for %q must be between 0 and 1", id)
		}
	}
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= s.MergeRetries; attempt++ {
		current, err := s.Progress.Find(ctx, userID, materialID)
		if err != nil {
			return nil, err
		}
		base := models.NewProgress(userID, materialID)
		if current != nil {
			base = *current
		}

		merged := base.MergeScores(kind, scores)
		now := s.Now().UTC()
		merged.OverallMastery = merged.Mastery()
		merged.LastReviewed = now
		merged.NextReview = srs.NextReview(merged.OverallMastery, now)
		topics, err := s.weakTopics(ctx, materialID, merged)
		if err != nil {
			return nil, err
		}
		merged.WeakTopics = topics

		if err := s.Progress.Save(ctx, &merged); err != nil {
			if apperr.IsCode(err, apperr.CodeConflict) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return &merged, nil
	}
	return nil, lastErr
}

// weakTopics recomputes the persisted weak-topic list from category metadata
// of every scored item, flashcards included.
func (s *ProgressService) weakTopics(ctx context.Context, materialID string, p models.Progress) ([]string, error) {
	questions, err := s.Questions.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	flashcards, err := s.Flashcards.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]string, len(questions)+len(flashcards))
	for _, q := range questions {
		categories[q.ID] = q.Category
	}
	for _, f := range flashcards {
		categories[f.ID] = f.Category
	}
	scores := make(map[string]float64, len(p.QuestionScores)+len(p.FlashcardScores))
	for id, score := range p.QuestionScores {
		scores[id] = score
	}
	for id, score := range p.FlashcardScores {
		scores[id] = score
	}
	return analysis.WeakTopics(categories, scores, s.Threshold), nil
}

func (s *ProgressService) GetProgress(ctx context.Context, materialID, userID string) (*models.Progress, error) {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return nil, err
	}
	p, err := s.Progress.Find(ctx, userID, materialID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.CodeNotFound, "no progress recorded for this material")
	}
	return p, nil
}

// GetMaterialStats reports progress counts and averages for one material. A
// pair with no Progress row reads as zeroed stats; nothing is created.
func (s *ProgressService) GetMaterialStats(ctx context.Context, materialID, userID string) (*models.MaterialStats, error) {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return nil, err
	}

	totalQuestions, err := s.Questions.CountByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	totalFlashcards, err := s.Flashcards.CountByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	stats := &models.MaterialStats{
		TotalQuestions:  int(totalQuestions),
		TotalFlashcards: int(totalFlashcards),
	}
	p, err := s.Progress.Find(ctx, userID, materialID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return stats, nil
	}

	stats.QuestionsAttempted = len(p.QuestionScores)
	stats.FlashcardsReviewed = len(p.FlashcardScores)
	stats.OverallMastery = p.OverallMastery
	lastReviewed, nextReview := p.LastReviewed, p.NextReview
	stats.LastReviewed = &lastReviewed
	stats.NextReview = &nextReview
	stats.AverageQuestionScore = meanScore(p.QuestionScores)
	stats.AverageFlashcardScore = meanScore(p.FlashcardScores)
	return stats, nil
}

// GetWeakAreas ranks the material's question categories by performance,
// weakest first.
func (s *ProgressService) GetWeakAreas(ctx context.Context, materialID, userID string) (*models.WeakAreasReport, error) {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return nil, err
	}
	questions, err := s.Questions.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	scores := map[string]float64{}
	p, err := s.Progress.Find(ctx, userID, materialID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		scores = p.QuestionScores
	}

	report := analysis.Report(questions, scores, s.Threshold)
	return &report, nil
}

// GetWeakTopics returns the persisted weak-topic list, empty when the pair has
// no Progress row yet.
func (s *ProgressService) GetWeakTopics(ctx context.Context, materialID, userID string) ([]string, error) {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return nil, err
	}
	p, err := s.Progress.Find(ctx, userID, materialID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.WeakTopics == nil {
		return []string{}, nil
	}
	return p.WeakTopics, nil
}

// ListMaterialProgress builds the paginated per-material overview for a user.
func (s *ProgressService) ListMaterialProgress(ctx context.Context, userID string, page, perPage int) (*models.MaterialProgressList, error) {
	materials, total, err := s.Materials.ListByOwner(ctx, userID, page, perPage)
	if err != nil {
		return nil, err
	}
	progress, err := s.Progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byMaterial := make(map[string]models.Progress, len(progress))
	for _, p := range progress {
		byMaterial[p.MaterialID] = p
	}

	rows := make([]models.MaterialProgress, 0, len(materials))
	for _, m := range materials {
		row := models.MaterialProgress{MaterialID: m.ID, Title: m.Title}
		if p, ok := byMaterial[m.ID]; ok {
			row.OverallMastery = p.OverallMastery
			lastReviewed := p.LastReviewed
			row.LastReviewed = &lastReviewed
			row.QuestionsCompleted = len(p.QuestionScores)
			row.FlashcardsReviewed = len(p.FlashcardScores)
			row.WeakAreasCount = len(p.WeakTopics)
		}
		rows = append(rows, row)
	}
	return &models.MaterialProgressList{
		Materials: rows,
		Total:     total,
		Page:      page,
		PerPage:   perPage,
	}, nil
}

func meanScore(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
