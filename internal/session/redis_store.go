package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/facility-console/internal/domain"
)

// redisStore keeps the credential slots in Redis under the flat
// `<userType>_token` / `<userType>_user` key scheme. Entries carry no TTL:
// token lifetime is enforced upstream and the client only learns about
// expiry through a 401.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore builds the durable credential store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) SaveCredential(ctx context.Context, cred domain.Credential) error {
	profile, err := json.Marshal(cred.User)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey(cred.UserType), cred.Token, 0)
	pipe.Set(ctx, userKey(cred.UserType), profile, 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *redisStore) Token(ctx context.Context, userType domain.UserType) (string, error) {
	val, err := s.client.Get(ctx, tokenKey(userType)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *redisStore) Profile(ctx context.Context, userType domain.UserType) (*domain.Profile, error) {
	val, err := s.client.Get(ctx, userKey(userType)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

func (s *redisStore) Clear(ctx context.Context, userType domain.UserType) error {
	return s.client.Del(ctx, tokenKey(userType), userKey(userType)).Err()
}

func (s *redisStore) IsAuthenticated(ctx context.Context, userType domain.UserType) (bool, error) {
	token, err := s.Token(ctx, userType)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}
	profile, err := s.Profile(ctx, userType)
	if err != nil {
		return false, err
	}
	return profile != nil, nil
}

func (s *redisStore) Resolve(ctx context.Context) (domain.UserType, error) {
	return resolveWith(ctx, s)
}

func (s *redisStore) ForceClearAll(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, "*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		if authRelated(iter.Val()) {
			keys = append(keys, iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
