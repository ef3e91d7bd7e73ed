package resettoken

import (
	"context"
	"sync"
	"time"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/resettoken"
)

var _ ports.ResetTokenStore = (*MemoryStore)(nil)

// MemoryStore keeps tokens for the life of the process. Expired entries are
// kept until looked up or swept so an expired token is reported as such.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]resettoken.Entry
	now     func() time.Time
	grace   time.Duration
}

// NewMemoryStore drops entries grace after their expiry on Sweep.
func NewMemoryStore(grace time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]resettoken.Entry),
		now:     time.Now,
		grace:   grace,
	}
}

func (s *MemoryStore) Save(_ context.Context, token string, e resettoken.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = e
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, token string) (*resettoken.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[token]
	delete(s.entries, token)
	return ok, nil
}

// Sweep removes entries past expiry+grace and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.grace)
	n := 0
	for token, e := range s.entries {
		if e.ExpiresAt.Before(cutoff) {
			delete(s.entries, token)
			n++
		}
	}
	return n
}

// SweepWorker runs Sweep every interval until ctx is done.
func (s *MemoryStore) SweepWorker(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			s.Sweep()
		case <-ctx.Done():
			return
		}
	}
}
