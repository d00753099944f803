// Package bulk implements multi-select operations over the admin article
// list: a per-admin selection set plus delete, status change, and CSV export
// applied to the whole set at once.
package bulk

import (
	"context"
	"sync"

	pkgredis "github.com/awqat-travel/core/internal/pkg/redis"
)

// Store keeps each admin's current selection. Selections are working state,
// not data, so losing them costs nothing but a few clicks.
type Store interface {
	Add(ctx context.Context, owner string, ids ...string) error
	Remove(ctx context.Context, owner string, ids ...string) error
	Members(ctx context.Context, owner string) ([]string, error)
	Clear(ctx context.Context, owner string) error
}

const selectionKeyPrefix = "bulk:selection:"

// RedisStore backs selections with a Redis set per admin, so the selection
// survives server restarts and is shared across instances.
type RedisStore struct {
	client *pkgredis.Client
}

func NewRedisStore(client *pkgredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(owner string) string { return selectionKeyPrefix + owner }

func (s *RedisStore) Add(ctx context.Context, owner string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.client.SAdd(ctx, s.key(owner), toMembers(ids)...)
}

func (s *RedisStore) Remove(ctx context.Context, owner string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.client.SRem(ctx, s.key(owner), toMembers(ids)...)
}

func (s *RedisStore) Members(ctx context.Context, owner string) ([]string, error) {
	return s.client.SMembers(ctx, s.key(owner))
}

func (s *RedisStore) Clear(ctx context.Context, owner string) error {
	return s.client.Del(ctx, s.key(owner))
}

func toMembers(ids []string) []interface{} {
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	return members
}

// MemoryStore is the in-process fallback used when Redis is not configured.
type MemoryStore struct {
	mu   sync.Mutex
	sets map[string]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string]map[string]struct{})}
}

func (s *MemoryStore) Add(_ context.Context, owner string, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[owner]
	if !ok {
		set = make(map[string]struct{})
		s.sets[owner] = set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, owner string, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.sets[owner], id)
	}
	return nil
}

func (s *MemoryStore) Members(_ context.Context, owner string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.sets[owner]))
	for id := range s.sets[owner] {
		out = append(out, id)
	}
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, owner)
	return nil
}
