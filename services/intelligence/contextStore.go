package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"campushire/models"

	"github.com/go-redis/redis/v8"
)

const interviewContextPrefix = "ai:interview:"

// RedisContextStore holds per-student mock interview state between turns.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, studentID string) (*models.InterviewContext, error) {
	key := interviewContextPrefix + studentID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.InterviewContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var ic models.InterviewContext
	if err := json.Unmarshal([]byte(data), &ic); err != nil {
		return nil, err
	}
	return &ic, nil
}

func (s *RedisContextStore) Set(ctx context.Context, studentID string, ic *models.InterviewContext) error {
	key := interviewContextPrefix + studentID
	b, err := json.Marshal(ic)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, studentID string) error {
	key := interviewContextPrefix + studentID
	return s.client.Del(ctx, key).Err()
}
