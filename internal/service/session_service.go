package service

import (
	"context"
	"math/rand"

	"study-service/internal/apperr"
	"study-service/internal/models"

	"github.com/google/uuid"
)

// SessionService creates quiz sessions and grades submissions against them.
// A session pins the sampled question order server-side so grading never
// trusts client-supplied ordering.
type SessionService struct {
	Sessions  SessionStore
	Materials MaterialStore
	Questions QuestionStore
}

func NewSessionService(sessions SessionStore, materials MaterialStore, questions QuestionStore) *SessionService {
	return &SessionService{Sessions: sessions, Materials: materials, Questions: questions}
}

// CreateSession samples count distinct questions of the material uniformly at
// random, records the order under a fresh session id, and returns the
// questions in that order with correct answers stripped.
func (s *SessionService) CreateSession(ctx context.Context, materialID, userID string, count int) (*models.QuizSession, []models.QuestionView, error) {
	if _, err := verifyMaterialAccess(ctx, s.Materials, materialID, userID); err != nil {
		return nil, nil, err
	}
	questions, err := s.Questions.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, nil, err
	}

	available := len(questions)
	if count < 1 {
		return nil, nil, apperr.New(apperr.CodeValidation, "question count must be at least 1")
	}
	if count > available {
		return nil, nil, apperr.New(apperr.CodeValidation, "requested %d questions but only %d are available", count, available)
	}

	order := rand.Perm(available)[:count]
	session := &models.QuizSession{
		SessionID:     "qsess_" + uuid.NewString(),
		MaterialID:    materialID,
		UserID:        userID,
		QuestionOrder: order,
	}
	if err := s.Sessions.Put(ctx, session); err != nil {
		return nil, nil, err
	}

	views := make([]models.QuestionView, 0, count)
	for pos, idx := range order {
		views = append(views, questions[idx].View(pos+1))
	}
	return session, views, nil
}

// Evaluate resolves the session, maps each submitted position back to the
// underlying question through the stored order, and grades by comparing the
// selected option's text against the stored correct answer.
func (s *SessionService) Evaluate(ctx context.Context, sessionID, materialID, userID string, answers []models.QuestionAnswer) (*models.EvaluationResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MaterialID != materialID || session.UserID != userID {
		return nil, apperr.New(apperr.CodeForbidden, "quiz session does not belong to this user and material")
	}
	if len(answers) == 0 {
		return nil, apperr.New(apperr.CodeValidation, "no answers submitted")
	}

	questions, err := s.Questions.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	results := make([]models.QuestionResult, 0, len(answers))
	correctCount := 0
	answered := make(map[int]bool, len(answers))
	for _, answer := range answers {
		if answer.QuestionNumber < 1 || answer.QuestionNumber > len(session.QuestionOrder) {
			return nil, apperr.New(apperr.CodeInvalidAnswer, "question number %d is out of range", answer.QuestionNumber)
		}
		// A position may be answered once per submission, otherwise a known
		// correct answer could be repeated to inflate the score.
		if answered[answer.QuestionNumber] {
			return nil, apperr.New(apperr.CodeInvalidAnswer, "question %d answered more than once", answer.QuestionNumber)
		}
		answered[answer.QuestionNumber] = true
		idx := session.QuestionOrder[answer.QuestionNumber-1]
		if idx < 0 || idx >= len(questions) {
			return nil, apperr.New(apperr.CodeInvalidAnswer, "question %d no longer exists for this material", answer.QuestionNumber)
		}
		question := questions[idx]

		optionIdx, ok := models.LetterIndex(answer.SelectedOption)
		if !ok || optionIdx >= len(question.Options) {
			return nil, apperr.New(apperr.CodeInvalidAnswer, "invalid option %q for question %d", answer.SelectedOption, answer.QuestionNumber)
		}
		selected := models.OptionLetter(optionIdx)

		correct := question.Options[optionIdx] == question.CorrectAnswer
		// When the answer is correct the correct-option field simply echoes
		// the selection, so a wrong guess is the only way to learn the answer.
		correctOption := selected
		if !correct {
			correctOption, _ = question.CorrectLetter()
		}
		if correct {
			correctCount++
		}
		results = append(results, models.QuestionResult{
			QuestionNumber: answer.QuestionNumber,
			Correct:        correct,
			SelectedOption: selected,
			CorrectOption:  correctOption,
		})
	}

	total := len(answers)
	return &models.EvaluationResult{
		TotalQuestions: total,
		CorrectAnswers: correctCount,
		Score:          float64(correctCount) / float64(total),
		Results:        results,
	}, nil
}
