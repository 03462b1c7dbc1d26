package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kimtth/chatroom-api/internal/chat"
)

// Store caches category-scoped code lists. A nil *Store is a valid no-op
// cache, so deployments without Redis just skip it.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *Store {
	if addr == "" {
		return nil
	}
	return &Store{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl: ttl,
	}
}

func codeKey(category string) string { return "codes:" + category }

func (s *Store) GetCodes(ctx context.Context, category string) ([]chat.Code, bool) {
	if s == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, codeKey(category)).Bytes()
	if err != nil {
		return nil, false
	}
	var codes []chat.Code
	if err := json.Unmarshal(raw, &codes); err != nil {
		return nil, false
	}
	return codes, true
}

func (s *Store) SetCodes(ctx context.Context, category string, codes []chat.Code) {
	if s == nil {
		return
	}
	raw, err := json.Marshal(codes)
	if err != nil {
		return
	}
	_ = s.rdb.Set(ctx, codeKey(category), raw, s.ttl).Err()
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.rdb.Close()
}
