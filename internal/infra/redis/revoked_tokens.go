package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	radix "github.com/mediocregopher/radix/v3"
)

// RevokedTokenStore はログアウト済みJWTのjtiを有効期限まで保持する
type RevokedTokenStore struct {
	redis radix.Client
}

// DI
func NewRevokedTokenStore(redis radix.Client) *RevokedTokenStore {
	return &RevokedTokenStore{redis: redis}
}

func (s *RevokedTokenStore) cacheKey(jti string) string {
	sum := sha1.Sum([]byte(jti))
	return fmt.Sprintf("auth:revoked:%s", hex.EncodeToString(sum[:]))
}

// Revoke はトークンを失効済みとして記録する（TTLはトークンの残り有効期限）
func (s *RevokedTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if s.redis == nil || jti == "" {
		return nil
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	key := s.cacheKey(jti)
	return s.redis.Do(radix.FlatCmd(nil, "SETEX", key, int64(ttl/time.Second), "1"))
}

// IsRevoked は失効済みかどうかを返す
func (s *RevokedTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s.redis == nil || jti == "" {
		return false, nil
	}
	key := s.cacheKey(jti)
	var n int
	if err := s.redis.Do(radix.Cmd(&n, "EXISTS", key)); err != nil {
		return false, err
	}
	return n > 0, nil
}
