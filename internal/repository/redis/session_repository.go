package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"student-guide-be/internal/entity"
	"student-guide-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "guide:session:"

// SessionRepositoryImpl stores one JSON document per session. Merge is a
// read-modify-write without locking: two concurrent messages for the same
// session id can race and the last writer wins, which matches the engine's
// documented session semantics.
type SessionRepositoryImpl struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) contract.SessionRepository {
	return &SessionRepositoryImpl{client: client}
}

func sessionKey(sessionId string) string {
	return sessionKeyPrefix + sessionId
}

func (r *SessionRepositoryImpl) Get(ctx context.Context, sessionId string) (*entity.SessionState, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionId)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session get: %w", err)
	}

	var state entity.SessionState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &state, nil
}

func (r *SessionRepositoryImpl) Merge(ctx context.Context, sessionId string, turns []entity.Turn, lastIntent string) error {
	state, err := r.Get(ctx, sessionId)
	if err != nil {
		return err
	}
	if state == nil {
		state = &entity.SessionState{SessionId: sessionId}
	}

	state.History = append(state.History, turns...)
	if lastIntent != "" {
		state.LastIntent = lastIntent
	}
	state.UpdatedAt = time.Now()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(sessionId), data, 0).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}
