package models

import "time"

// MaterialStats is the detailed progress view for one material.
type MaterialStats struct {
	TotalQuestions        int        `json:"total_questions"`
	QuestionsAttempted    int        `json:"questions_attempted"`
	TotalFlashcards       int        `json:"total_flashcards"`
	FlashcardsReviewed    int        `json:"flashcards_reviewed"`
	OverallMastery        float64    `json:"overall_mastery"`
	LastReviewed          *time.Time `json:"last_reviewed"`
	NextReview            *time.Time `json:"next_review"`
	AverageQuestionScore  float64    `json:"average_question_score"`
	AverageFlashcardScore float64    `json:"average_flashcard_score"`
}

// CategoryProgress aggregates per-category question performance.
type CategoryProgress struct {
	Category       string  `json:"category"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	MasteryLevel   float64 `json:"mastery_level"`
}

type WeakAreasReport struct {
	WeakCategories         []CategoryProgress `json:"weak_categories"`
	RecommendedFocus       []string           `json:"recommended_focus"`
	LowestScoringQuestions []string           `json:"lowest_scoring_questions"`
	OverallWeakAreasCount  int                `json:"overall_weak_areas_count"`
}

// MaterialProgress is one row of the per-user progress overview.
type MaterialProgress struct {
	MaterialID         string     `json:"material_id"`
	Title              string     `json:"title"`
	OverallMastery     float64    `json:"overall_mastery"`
	LastReviewed       *time.Time `json:"last_reviewed"`
	QuestionsCompleted int        `json:"questions_completed"`
	FlashcardsReviewed int        `json:"flashcards_reviewed"`
	WeakAreasCount     int        `json:"weak_areas_count"`
}

type MaterialProgressList struct {
	Materials []MaterialProgress `json:"materials"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PerPage   int                `json:"per_page"`
}

// OptionView is one lettered answer option as presented to the client.
type OptionView struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuestionView is a question as handed to a quiz taker: numbered within the
// session, options lettered, correct answer and explanation omitted.
type QuestionView struct {
	QuestionNumber int          `json:"question_number"`
	ID             string       `json:"id"`
	QuestionText   string       `json:"question_text"`
	Options        []OptionView `json:"options"`
	Category       string       `json:"category"`
}

// QuestionAnswer is one submitted answer: the 1-based position the question
// had in the session, and the chosen option letter.
type QuestionAnswer struct {
	QuestionNumber int    `json:"question_number"`
	SelectedOption string `json:"selected_option"`
}

// QuestionResult reports grading for one answer. CorrectOption echoes the
// selected letter when the answer is correct, so a correct submission never
// reveals anything new.
type QuestionResult struct {
	QuestionNumber int    `json:"question_number"`
	Correct        bool   `json:"correct"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
}

type EvaluationResult struct {
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	Score          float64          `json:"score"`
	Results        []QuestionResult `json:"results"`
}
