package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	mem "tripnation/pkg/memcache"
	"tripnation/pkg/quiz"
)

// QuizSessionRepository persists quiz progress. Get returns (nil, nil) for
// unknown or expired sessions.
type QuizSessionRepository interface {
	SaveSession(ctx context.Context, sessionID string, state quiz.State) error
	GetSession(ctx context.Context, sessionID string) (*quiz.State, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type memoryQuizSessionRepository struct {
	store mem.QuizSessionStore
	ttl   time.Duration
}

func NewMemoryQuizSessionRepository(store mem.QuizSessionStore, ttl time.Duration) QuizSessionRepository {
	return &memoryQuizSessionRepository{store: store, ttl: ttl}
}

func (r *memoryQuizSessionRepository) SaveSession(_ context.Context, sessionID string, state quiz.State) error {
	r.store.Set(sessionID, state, r.ttl)
	return nil
}

func (r *memoryQuizSessionRepository) GetSession(_ context.Context, sessionID string) (*quiz.State, error) {
	state, ok := r.store.Get(sessionID)
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (r *memoryQuizSessionRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.store.Delete(sessionID)
	return nil
}

const quizSessionKeyPrefix = "quiz:session:"

type redisQuizSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisQuizSessionRepository(client *redis.Client, ttl time.Duration) QuizSessionRepository {
	return &redisQuizSessionRepository{client: client, ttl: ttl}
}

func (r *redisQuizSessionRepository) SaveSession(ctx context.Context, sessionID string, state quiz.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode quiz session: %w", err)
	}
	return r.client.Set(ctx, quizSessionKeyPrefix+sessionID, data, r.ttl).Err()
}

func (r *redisQuizSessionRepository) GetSession(ctx context.Context, sessionID string) (*quiz.State, error) {
	data, err := r.client.Get(ctx, quizSessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var state quiz.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode quiz session: %w", err)
	}
	if state.Answers == nil {
		state.Answers = quiz.Answers{}
	}
	return &state, nil
}

func (r *redisQuizSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, quizSessionKeyPrefix+sessionID).Err()
}
