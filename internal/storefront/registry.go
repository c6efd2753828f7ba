package storefront

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/preston-bernstein/game-deals-service/internal/logging"
	"github.com/preston-bernstein/game-deals-service/internal/metrics"
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 1000
	minSweepInterval   = time.Second
)

// Factory builds a new session for id.
type Factory func(id string) *Session

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry maps session IDs to sessions. Idle sessions expire after the TTL and,
// once the registry is full, the least recently used session is evicted.
type Registry struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *entry]

	factory Factory
	ttl     time.Duration
	max     int
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
	newID   func() string
}

// NewRegistry creates an empty registry. A non-positive ttl or maxSessions uses the default.
func NewRegistry(factory Factory, ttl time.Duration, maxSessions int, logger *slog.Logger, recorder *metrics.Recorder) *Registry {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	r := &Registry{
		factory: factory,
		ttl:     ttl,
		max:     maxSessions,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	// Only fails for a non-positive size.
	r.sessions, _ = lru.NewWithEvict[string, *entry](maxSessions, r.onEvict)
	return r
}

// onEvict runs for every session leaving the cache, whether expired or pushed out.
func (r *Registry) onEvict(id string, _ *entry) {
	r.metrics.AddSessions(-1)
	if r.logger != nil {
		r.logger.Debug("session removed", logging.FieldSessionID, id)
	}
}

// Get returns a live session and refreshes its idle timer.
func (r *Registry) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions.Get(id)
	if !ok {
		return nil, false
	}
	now := r.now()
	if now.Sub(e.lastSeen) > r.ttl {
		r.sessions.Remove(id)
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// GetOrCreate returns the session for id, creating one under a fresh ID when id
// is unknown, malformed or expired. created reports whether a new session was made.
func (r *Registry) GetOrCreate(id string) (session *Session, created bool) {
	if _, err := uuid.Parse(id); err == nil {
		if s, ok := r.Get(id); ok {
			return s, false
		}
	}

	newID := r.newID()
	s := r.factory(newID)

	r.mu.Lock()
	r.metrics.AddSessions(1)
	r.sessions.Add(newID, &entry{session: s, lastSeen: r.now()})
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug("session created", logging.FieldSessionID, newID)
	}
	return s, true
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Len()
}

// Sweep drops sessions idle for longer than the TTL and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for _, id := range r.sessions.Keys() {
		e, ok := r.sessions.Peek(id)
		if ok && now.Sub(e.lastSeen) > r.ttl {
			r.sessions.Remove(id)
			removed++
		}
	}
	if removed > 0 {
		logging.Info(r.logger, "expired idle sessions", logging.FieldCount, removed)
	}
	return removed
}

// Run sweeps expired sessions until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	interval := r.ttl / 2
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
