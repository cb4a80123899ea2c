package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Yiling-J/theine-go"
)

// SessionStore keeps one ViewState per visitor session. Idle sessions
// expire after the configured TTL.
type SessionStore struct {
	cache *theine.LoadingCache[string, *ViewState]
	ttl   time.Duration
}

// NewSessionStore builds a store holding at most capacity sessions. Unknown
// sessions are created with newView; concurrent first requests for the same
// id share one load.
func NewSessionStore(capacity int64, ttl time.Duration, newView func() *ViewState) (*SessionStore, error) {
	cache, err := theine.NewBuilder[string, *ViewState](capacity).BuildWithLoader(func(ctx context.Context, id string) (theine.Loaded[*ViewState], error) {
		return theine.Loaded[*ViewState]{
			Value: newView(),
			Cost:  1,
			TTL:   ttl,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not build session cache: %w", err)
	}
	return &SessionStore{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Get returns the view state of session id, creating a fresh one in the
// list state when the session is unknown or expired. Every access extends
// the session's lifetime.
func (s *SessionStore) Get(ctx context.Context, id string) (*ViewState, error) {
	view, err := s.cache.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not load session: %w", err)
	}
	s.cache.SetWithTTL(id, view, 1, s.ttl)
	return view, nil
}

// Close stops the cache's background maintenance.
func (s *SessionStore) Close() {
	s.cache.Close()
}
