package analysis

import (
	"math"
	"reflect"
	"testing"

	"study-service/internal/models"
)

const threshold = 0.7

func question(id, category string) models.Question {
	return models.Question{ID: id, Category: category, QuestionText: id}
}

func TestCategoriesRanking(t *testing.T) {
	questions := []models.Question{
		question("q1", "algebra"),
		question("q2", "algebra"),
		question("q3", "geometry"),
		question("q4", "calculus"),
		question("q5", "calculus"),
	}
	scores := map[string]float64{
		"q1": 0.9,
		"q2": 0.5, // algebra mean 0.7
		"q3": 0.4, // geometry mean 0.4
		"q4": 0.3,
		"q5": 0.5, // calculus mean 0.4, ties with geometry
	}

	ranked := Categories(questions, scores, threshold)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked categories, got %d", len(ranked))
	}

	// Weakest first; the 0.4 tie breaks on the category label.
	if ranked[0].Category != "calculus" || ranked[1].Category != "geometry" || ranked[2].Category != "algebra" {
		t.Errorf("unexpected order: %s, %s, %s", ranked[0].Category, ranked[1].Category, ranked[2].Category)
	}

	algebra := ranked[2]
	if algebra.TotalQuestions != 2 {
		t.Errorf("algebra total = %d, expected 2", algebra.TotalQuestions)
	}
	if algebra.CorrectAnswers != 1 { // only q1 at 0.9 clears the threshold
		t.Errorf("algebra correct = %d, expected 1", algebra.CorrectAnswers)
	}
	if math.Abs(algebra.MasteryLevel-0.7) > 1e-9 {
		t.Errorf("algebra mean = %v, expected 0.7", algebra.MasteryLevel)
	}
}

func TestCategoriesExcludesUnanswered(t *testing.T) {
	questions := []models.Question{
		question("q1", "algebra"),
		question("q2", "geometry"),
	}
	scores := map[string]float64{"q1": 0.4}

	ranked := Categories(questions, scores, threshold)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked category, got %d", len(ranked))
	}
	if ranked[0].Category != "algebra" {
		t.Errorf("expected algebra, got %s", ranked[0].Category)
	}
}

func TestRecommendedFocusCap(t *testing.T) {
	ranked := []models.CategoryProgress{
		{Category: "a", MasteryLevel: 0.1},
		{Category: "b", MasteryLevel: 0.2},
		{Category: "c", MasteryLevel: 0.3},
		{Category: "d", MasteryLevel: 0.4},
	}
	focus := RecommendedFocus(ranked, 3)
	if !reflect.DeepEqual(focus, []string{"a", "b", "c"}) {
		t.Errorf("unexpected focus: %v", focus)
	}

	if got := RecommendedFocus(nil, 3); len(got) != 0 {
		t.Errorf("expected empty focus, got %v", got)
	}
}

func TestLowestScoring(t *testing.T) {
	scores := map[string]float64{
		"q1": 0.9,
		"q2": 0.2,
		"q3": 0.2, // ties with q2, broken by id
		"q4": 0.5,
		"q5": 0.1,
		"q6": 0.6,
		"q7": 0.7,
	}
	got := LowestScoring(scores, 5)
	expected := []string{"q5", "q2", "q3", "q4", "q6"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("LowestScoring = %v, expected %v", got, expected)
	}
}

func TestWeakCount(t *testing.T) {
	ranked := []models.CategoryProgress{
		{Category: "a", MasteryLevel: 0.4},
		{Category: "b", MasteryLevel: 0.69},
		{Category: "c", MasteryLevel: 0.7},
		{Category: "d", MasteryLevel: 0.9},
	}
	if got := WeakCount(ranked, threshold); got != 2 {
		t.Errorf("WeakCount = %d, expected 2", got)
	}
}

func TestReportEmptyProgress(t *testing.T) {
	report := Report([]models.Question{question("q1", "algebra")}, nil, threshold)
	if len(report.WeakCategories) != 0 || len(report.RecommendedFocus) != 0 ||
		len(report.LowestScoringQuestions) != 0 || report.OverallWeakAreasCount != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}

func TestWeakTopics(t *testing.T) {
	categories := map[string]string{
		"q1": "algebra",
		"q2": "algebra",
		"f1": "geometry",
		"f2": "history",
	}
	scores := map[string]float64{
		"q1": 0.9,
		"q2": 0.6, // algebra mean 0.75, not weak
		"f1": 0.2, // geometry weak
		"f2": 0.3, // history weak
		"f9": 0.1, // no category metadata, ignored
	}

	topics := WeakTopics(categories, scores, threshold)
	if !reflect.DeepEqual(topics, []string{"geometry", "history"}) {
		t.Errorf("WeakTopics = %v", topics)
	}
}

func TestWeakTopicsEmpty(t *testing.T) {
	topics := WeakTopics(nil, nil, threshold)
	if topics == nil || len(topics) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", topics)
	}
}
