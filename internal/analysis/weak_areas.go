// Package analysis derives weak-area reports from per-item scores and category
// metadata. Everything here is a pure function of its inputs.
package analysis

import (
	"sort"

	"study-service/internal/models"
)

// Categories aggregates question scores per category, ranked weakest first
// (ascending mean score, ties broken by category label). A category none of
// whose questions have been answered has no mean and is excluded.
func Categories(questions []models.Question, scores map[string]float64, threshold float64) []models.CategoryProgress {
	type bucket struct {
		total    int
		answered int
		correct  int
		sum      float64
	}
	buckets := map[string]*bucket{}
	for _, q := range questions {
		b := buckets[q.Category]
		if b == nil {
			b = &bucket{}
			buckets[q.Category] = b
		}
		b.total++
		score, ok := scores[q.ID]
		if !ok {
			continue
		}
		b.answered++
		b.sum += score
		if score > threshold {
			b.correct++
		}
	}

	var out []models.CategoryProgress
	for category, b := range buckets {
		if b.answered == 0 {
			continue
		}
		out = append(out, models.CategoryProgress{
			Category:       category,
			TotalQuestions: b.total,
			CorrectAnswers: b.correct,
			MasteryLevel:   b.sum / float64(b.answered),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MasteryLevel != out[j].MasteryLevel {
			return out[i].MasteryLevel < out[j].MasteryLevel
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// RecommendedFocus lists the labels of up to max weakest categories.
func RecommendedFocus(ranked []models.CategoryProgress, max int) []string {
	focus := []string{}
	for _, c := range ranked {
		if len(focus) >= max {
			break
		}
		focus = append(focus, c.Category)
	}
	return focus
}

// LowestScoring returns up to max question ids ordered by ascending score,
// ties broken by id.
func LowestScoring(scores map[string]float64, max int) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] < scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > max {
		ids = ids[:max]
	}
	return ids
}

// WeakCount counts categories whose mean score falls below threshold.
func WeakCount(ranked []models.CategoryProgress, threshold float64) int {
	count := 0
	for _, c := range ranked {
		if c.MasteryLevel < threshold {
			count++
		}
	}
	return count
}

// Report assembles the full weak-areas view for one material.
func Report(questions []models.Question, scores map[string]float64, threshold float64) models.WeakAreasReport {
	ranked := Categories(questions, scores, threshold)
	if ranked == nil {
		ranked = []models.CategoryProgress{}
	}
	return models.WeakAreasReport{
		WeakCategories:         ranked,
		RecommendedFocus:       RecommendedFocus(ranked, 3),
		LowestScoringQuestions: LowestScoring(scores, 5),
		OverallWeakAreasCount:  WeakCount(ranked, threshold),
	}
}

// WeakTopics lists the category labels whose mean scored-item score falls
// below threshold, across any mix of item kinds. itemCategories maps item id
// to its category label; items without a recorded score are ignored. Sorted
// for deterministic persistence.
func WeakTopics(itemCategories map[string]string, scores map[string]float64, threshold float64) []string {
	sums := map[string]float64{}
	counts := map[string]int{}
	for id, score := range scores {
		category, ok := itemCategories[id]
		if !ok || category == "" {
			continue
		}
		sums[category] += score
		counts[category]++
	}

	topics := []string{}
	for category, n := range counts {
		if sums[category]/float64(n) < threshold {
			topics = append(topics, category)
		}
	}
	sort.Strings(topics)
	return topics
}
