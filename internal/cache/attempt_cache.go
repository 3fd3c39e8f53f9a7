package cache

import (
	"animalquiz/internal/quiz"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrAttemptNotFound is returned for unknown or expired attempts
var ErrAttemptNotFound = errors.New("attempt not found")

// DefaultAttemptTTL bounds how long an idle attempt is kept
const DefaultAttemptTTL = 24 * time.Hour

// AttemptCache stores engine snapshots by attempt id
type AttemptCache interface {
	// Create stores a new attempt and reports false if id is taken
	Create(ctx context.Context, id string, snapshot *quiz.Snapshot) (bool, error)
	Set(ctx context.Context, id string, snapshot *quiz.Snapshot) error
	Get(ctx context.Context, id string) (*quiz.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

type attemptCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAttemptCache creates a Redis-backed attempt cache. Every write
// refreshes the TTL.
func NewAttemptCache(client *redis.Client, ttl time.Duration) AttemptCache {
	if ttl <= 0 {
		ttl = DefaultAttemptTTL
	}
	return &attemptCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *attemptCache) key(id string) string {
	return fmt.Sprintf("attempt:%s", id)
}

func (c *attemptCache) Create(ctx context.Context, id string, snapshot *quiz.Snapshot) (bool, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return false, err
	}
	return c.client.SetNX(ctx, c.key(id), data, c.ttl).Result()
}

func (c *attemptCache) Set(ctx context.Context, id string, snapshot *quiz.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(id), data, c.ttl).Err()
}

func (c *attemptCache) Get(ctx context.Context, id string) (*quiz.Snapshot, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	var snapshot quiz.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode attempt %s: %w", id, err)
	}
	return &snapshot, nil
}

func (c *attemptCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memoryAttemptCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryAttemptCache keeps attempts in process memory, for single-node
// runs without Redis and for tests. Expired entries are dropped on read.
func NewMemoryAttemptCache(ttl time.Duration) AttemptCache {
	if ttl <= 0 {
		ttl = DefaultAttemptTTL
	}
	return &memoryAttemptCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *memoryAttemptCache) Create(ctx context.Context, id string, snapshot *quiz.Snapshot) (bool, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[id]; ok && c.now().Before(entry.expiresAt) {
		return false, nil
	}
	c.entries[id] = memoryEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	return true, nil
}

func (c *memoryAttemptCache) Set(ctx context.Context, id string, snapshot *quiz.Snapshot) error {
	// stored as JSON so callers never share slices with the cache
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = memoryEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	return nil
}

func (c *memoryAttemptCache) Get(ctx context.Context, id string) (*quiz.Snapshot, error) {
	c.mu.Lock()
	entry, ok := c.entries[id]
	if ok && !c.now().Before(entry.expiresAt) {
		delete(c.entries, id)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return nil, ErrAttemptNotFound
	}
	var snapshot quiz.Snapshot
	if err := json.Unmarshal(entry.data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *memoryAttemptCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}
