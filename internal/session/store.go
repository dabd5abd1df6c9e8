// Package session persists per-widget picker state between requests.  Each
// mounted widget owns one session keyed by an opaque ID; the handler loads
// the state, applies exactly one pure transition and stores the result, so
// a committed value is visible to the very next request with no
// eventual-consistency window.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davolio/osteria-reservations/internal/picker"
)

// ErrNotFound is returned when no session exists for an ID (never created,
// expired, or evicted).
var ErrNotFound = errors.New("picker session not found")

// Store is the persistence boundary for picker state.
type Store interface {
	Load(ctx context.Context, id string) (picker.State, error)
	Save(ctx context.Context, id string, st picker.State) error
	Delete(ctx context.Context, id string) error
}

const pickerPrefix = "picker:"

// RedisStore keeps sessions in Redis as JSON with a TTL, so abandoned
// pickers clean themselves up and the widget survives server restarts.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, id string) (picker.State, error) {
	var st picker.State
	data, err := s.rdb.Get(ctx, pickerPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return st, ErrNotFound
	}
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, err
	}
	return st, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, st picker.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, pickerPrefix+id, data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, pickerPrefix+id).Err()
}

// MemoryStore is the fallback when Redis is unavailable and the store the
// tests use.  Entries expire lazily on access.
type MemoryStore struct {
	mu  sync.RWMutex
	m   map[string]memoryEntry
	ttl time.Duration
	now func() time.Time
}

type memoryEntry struct {
	state   picker.State
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MemoryStore{m: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Load(_ context.Context, id string) (picker.State, error) {
	s.mu.RLock()
	e, ok := s.m[id]
	s.mu.RUnlock()
	if !ok || s.now().After(e.expires) {
		return picker.State{}, ErrNotFound
	}
	return e.state, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, st picker.State) error {
	s.mu.Lock()
	s.m[id] = memoryEntry{state: st, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
	return nil
}
