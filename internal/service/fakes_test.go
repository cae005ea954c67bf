package service

import (
	"context"

	"study-service/internal/apperr"
	"study-service/internal/models"
)

// In-memory stand-ins for the mongo and redis repositories.

type fakeMaterialStore struct {
	materials map[string]models.Material
}

func newFakeMaterialStore(materials ...models.Material) *fakeMaterialStore {
	s := &fakeMaterialStore{materials: map[string]models.Material{}}
	for _, m := range materials {
		s.materials[m.ID] = m
	}
	return s
}

func (s *fakeMaterialStore) FindByID(_ context.Context, id string) (*models.Material, error) {
	m, ok := s.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (s *fakeMaterialStore) Create(_ context.Context, m *models.Material) error {
	if m.ID == "" {
		m.ID = "mat_" + m.Title
	}
	s.materials[m.ID] = *m
	return nil
}

func (s *fakeMaterialStore) Delete(_ context.Context, id string) error {
	delete(s.materials, id)
	return nil
}

func (s *fakeMaterialStore) ListByOwner(_ context.Context, ownerID string, page, perPage int) ([]models.Material, int64, error) {
	var owned []models.Material
	for _, m := range s.materials {
		if m.OwnerID == ownerID {
			owned = append(owned, m)
		}
	}
	total := int64(len(owned))
	start := (page - 1) * perPage
	if start >= len(owned) {
		return nil, total, nil
	}
	end := start + perPage
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], total, nil
}

type fakeQuestionStore struct {
	byMaterial map[string][]models.Question
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{byMaterial: map[string][]models.Question{}}
}

func (s *fakeQuestionStore) FindByMaterial(_ context.Context, materialID string) ([]models.Question, error) {
	return s.byMaterial[materialID], nil
}

func (s *fakeQuestionStore) CountByMaterial(_ context.Context, materialID string) (int64, error) {
	return int64(len(s.byMaterial[materialID])), nil
}

func (s *fakeQuestionStore) CreateMany(_ context.Context, questions []models.Question) error {
	for _, q := range questions {
		s.byMaterial[q.MaterialID] = append(s.byMaterial[q.MaterialID], q)
	}
	return nil
}

func (s *fakeQuestionStore) DeleteByMaterial(_ context.Context, materialID string) error {
	delete(s.byMaterial, materialID)
	return nil
}

type fakeFlashcardStore struct {
	byMaterial map[string][]models.Flashcard
}

func newFakeFlashcardStore() *fakeFlashcardStore {
	return &fakeFlashcardStore{byMaterial: map[string][]models.Flashcard{}}
}

func (s *fakeFlashcardStore) FindByMaterial(_ context.Context, materialID string) ([]models.Flashcard, error) {
	return s.byMaterial[materialID], nil
}

func (s *fakeFlashcardStore) CountByMaterial(_ context.Context, materialID string) (int64, error) {
	return int64(len(s.byMaterial[materialID])), nil
}

func (s *fakeFlashcardStore) CreateMany(_ context.Context, flashcards []models.Flashcard) error {
	for _, f := range flashcards {
		s.byMaterial[f.MaterialID] = append(s.byMaterial[f.MaterialID], f)
	}
	return nil
}

func (s *fakeFlashcardStore) DeleteByMaterial(_ context.Context, materialID string) error {
	delete(s.byMaterial, materialID)
	return nil
}

// fakeProgressStore mimics the optimistic versioning of the mongo repository,
// including forced conflicts for retry tests.
type fakeProgressStore struct {
	rows map[string]models.Progress
	// failConflicts makes the next n saves fail with a conflict.
	failConflicts int
	saves         int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{rows: map[string]models.Progress{}}
}

func progressKey(userID, materialID string) string {
	return userID + "|" + materialID
}

func (s *fakeProgressStore) Find(_ context.Context, userID, materialID string) (*models.Progress, error) {
	p, ok := s.rows[progressKey(userID, materialID)]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *fakeProgressStore) Save(_ context.Context, p *models.Progress) error {
	s.saves++
	if s.failConflicts > 0 {
		s.failConflicts--
		return apperr.New(apperr.CodeConflict, "concurrent progress update")
	}
	key := progressKey(p.UserID, p.MaterialID)
	existing, ok := s.rows[key]
	if p.Version == 0 {
		if ok {
			return apperr.New(apperr.CodeConflict, "concurrent progress creation")
		}
		p.Version = 1
		s.rows[key] = *p
		return nil
	}
	if !ok || existing.Version != p.Version {
		return apperr.New(apperr.CodeConflict, "concurrent progress update")
	}
	p.Version++
	s.rows[key] = *p
	return nil
}

func (s *fakeProgressStore) ListByUser(_ context.Context, userID string) ([]models.Progress, error) {
	var rows []models.Progress
	for _, p := range s.rows {
		if p.UserID == userID {
			rows = append(rows, p)
		}
	}
	return rows, nil
}

type fakeSessionStore struct {
	sessions map[string]models.QuizSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]models.QuizSession{}}
}

func (s *fakeSessionStore) Put(_ context.Context, session *models.QuizSession) error {
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, sessionID string) (*models.QuizSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperr.New(apperr.CodeSessionExpired, "quiz session expired or not found")
	}
	return &session, nil
}

// expire simulates redis TTL expiry.
func (s *fakeSessionStore) expire(sessionID string) {
	delete(s.sessions, sessionID)
}
