// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/goaltracker/backend/internal/application/adapter"
)

// resetTokenTTL bounds how long a password reset link stays valid. Expiry is
// enforced by Redis itself, so no sweeper is needed.
const resetTokenTTL = 1 * time.Hour

// resetTokenKeyPrefix namespaces reset tokens in the shared Redis keyspace.
const resetTokenKeyPrefix = "pwreset:"

// resetTokenPayload is the JSON document stored per token.
type resetTokenPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// redisResetTokenStore implements adapter.PasswordResetTokenService on Redis.
// Tokens are single use: validation leaves the token in place, invalidation
// deletes it.
type redisResetTokenStore struct {
	client *redis.Client
}

// NewRedisResetTokenStore creates a Redis-backed password reset token store.
func NewRedisResetTokenStore(client *redis.Client) adapter.PasswordResetTokenService {
	return &redisResetTokenStore{
		client: client,
	}
}

// GenerateResetToken creates a random token and stores it with a 1 hour TTL.
func (s *redisResetTokenStore) GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	payload, err := json.Marshal(resetTokenPayload{
		UserID: userID.String(),
		Email:  email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reset token payload: %w", err)
	}

	if err := s.client.Set(ctx, resetTokenKeyPrefix+token, payload, resetTokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}

	return &adapter.PasswordResetToken{
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}, nil
}

// ValidateResetToken looks up a token. A missing key means the token is
// unknown, already used, or expired.
func (s *redisResetTokenStore) ValidateResetToken(ctx context.Context, token string) (*adapter.PasswordResetToken, error) {
	data, err := s.client.Get(ctx, resetTokenKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("invalid or expired reset token")
		}
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	var payload resetTokenPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reset token payload: %w", err)
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in reset token: %w", err)
	}

	ttl, err := s.client.TTL(ctx, resetTokenKeyPrefix+token).Result()
	if err != nil || ttl < 0 {
		ttl = 0
	}

	return &adapter.PasswordResetToken{
		Token:     token,
		UserID:    userID,
		Email:     payload.Email,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}, nil
}

// InvalidateResetToken deletes the token so it cannot be replayed.
func (s *redisResetTokenStore) InvalidateResetToken(ctx context.Context, token string) error {
	return s.client.Del(ctx, resetTokenKeyPrefix+token).Err()
}
