package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrInvalidSession = errors.New("session invalid or expired")

// Store keeps admin sessions in redis, keyed by an opaque token carried
// inside the JWT. Revoking the token logs the admin out everywhere the
// token is presented, regardless of JWT expiry.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(token string) string {
	return "admin_session:" + token
}

func (s *Store) Create(ctx context.Context, adminID uint) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(
		ctx,
		key(token),
		strconv.FormatUint(uint64(adminID), 10),
		s.ttl,
	).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Validate returns the admin id for a live session and slides its
// expiry, mirroring a last-activity update.
func (s *Store) Validate(ctx context.Context, token string) (uint, error) {
	val, err := s.rdb.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		return 0, ErrInvalidSession
	}
	if err != nil {
		return 0, fmt.Errorf("validate session: %w", err)
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}

	s.rdb.Expire(ctx, key(token), s.ttl)

	return uint(id), nil
}

func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, key(token)).Err()
}
