package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"study-service/internal/apperr"
	"study-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// SessionRepository keeps quiz sessions in redis under their session id with a
// fixed TTL. Expiry is enforced by the key expiring, so a resolve after the
// deadline cannot succeed.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Put(ctx context.Context, session *models.QuizSession) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding quiz session: %w", err)
	}
	return r.client.Set(ctx, session.SessionID, val, r.ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	data, err := r.client.Get(ctx, sessionID).Bytes()
	if err == redis.Nil {
		return nil, apperr.New(apperr.CodeSessionExpired, "quiz session expired or not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading quiz session: %w", err)
	}
	var session models.QuizSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("error decoding quiz session: %w", err)
	}
	return &session, nil
}
