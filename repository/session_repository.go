package repository

import (
	"context"
	"fmt"
	"time"

	"go-food-ordering/apperrors"

	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) getKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (r *sessionRepository) Create(ctx context.Context, sessionID, uid string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.getKey(sessionID), uid, ttl).Err(); err != nil {
		return apperrors.Write("failed to start session", err)
	}
	return nil
}

func (r *sessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.getKey(sessionID)).Result()
	if err != nil {
		return false, apperrors.Internal("failed to look up session", err)
	}
	return n > 0, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.getKey(sessionID)).Err(); err != nil {
		return apperrors.Write("failed to end session", err)
	}
	return nil
}
