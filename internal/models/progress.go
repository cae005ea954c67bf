package models

import "time"

type ScoreKind string

const (
	ScoreKindFlashcard ScoreKind = "flashcard"
	ScoreKindQuestion  ScoreKind = "question"
)

// Progress is the per-(user, material) mastery record. One row exists per pair,
// created lazily on the first score update. OverallMastery, NextReview and
// WeakTopics are derived on every merge and never set by callers directly.
type Progress struct {
	ID              string             `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          string             `bson:"user_id" json:"user_id"`
	MaterialID      string             `bson:"material_id" json:"material_id"`
	FlashcardScores map[string]float64 `bson:"flashcard_scores" json:"flashcard_scores"`
	QuestionScores  map[string]float64 `bson:"question_scores" json:"question_scores"`
	OverallMastery  float64            `bson:"overall_mastery" json:"overall_mastery"`
	LastReviewed    time.Time          `bson:"last_reviewed" json:"last_reviewed"`
	NextReview      time.Time          `bson:"next_review" json:"next_review"`
	WeakTopics      []string           `bson:"weak_topics" json:"weak_topics"`
	// Version backs the optimistic write check in the progress repository.
	Version int64 `bson:"version" json:"-"`
}

func NewProgress(userID, materialID string) Progress {
	return Progress{
		UserID:          userID,
		MaterialID:      materialID,
		FlashcardScores: map[string]float64{},
		QuestionScores:  map[string]float64{},
		WeakTopics:      []string{},
	}
}

// MergeScores returns a copy of p with delta unioned into the score map for
// kind. Existing keys are overwritten, new keys added. The receiver is never
// mutated so a failed persist leaves the loaded aggregate untouched.
func (p Progress) MergeScores(kind ScoreKind, delta map[string]float64) Progress {
	merged := p
	merged.FlashcardScores = copyScores(p.FlashcardScores)
	merged.QuestionScores = copyScores(p.QuestionScores)

	target := merged.FlashcardScores
	if kind == ScoreKindQuestion {
		target = merged.QuestionScores
	}
	for id, score := range delta {
		target[id] = score
	}
	return merged
}

// Mastery is the mean of all scores across both maps, 0.0 when both are empty.
func (p Progress) Mastery() float64 {
	total := 0.0
	count := 0
	for _, s := range p.FlashcardScores {
		total += s
		count++
	}
	for _, s := range p.QuestionScores {
		total += s
		count++
	}
	if count == 0 {
		return 0.0
	}
	return total / float64(count)
}

func copyScores(scores map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for id, s := range scores {
		out[id] = s
	}
	return out
}
