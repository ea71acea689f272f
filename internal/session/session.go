// Package session owns the currently selected documentation version and its
// resolved dataset for one logical viewing session.
package session

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"docnav/internal/docs"
)

// ErrStale is returned by Select when a newer selection happened while the
// load was in flight. The result is discarded instead of overwriting the
// newer state.
var ErrStale = errors.New("version selection superseded")

// Session tracks the active version and the data resolved for it. Selecting
// a version discards the prior tree entirely; no merge, no cache reuse.
// Session methods may be called from multiple goroutines, but resolved data
// is read-only for consumers.
type Session struct {
	loader *docs.Loader
	group  singleflight.Group

	mu         sync.Mutex
	version    string
	data       *docs.VersionData
	generation uint64
}

func New(loader *docs.Loader) *Session {
	return &Session{loader: loader}
}

// Select makes version the active selection and resolves its dataset. Each
// call is tagged with a generation; if another Select arrives before this
// one's resolution completes, the completed result is dropped and ErrStale
// returned. Concurrent loads of the same version share one resolution run.
func (s *Session) Select(ctx context.Context, version string) (*docs.VersionData, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.version = version
	s.data = nil // prior tree is gone the moment a new selection starts
	s.mu.Unlock()

	v, err, _ := s.group.Do(version, func() (any, error) {
		return s.loader.LoadVersionData(ctx, version)
	})
	if err != nil {
		return nil, err
	}
	data := v.(*docs.VersionData)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return nil, ErrStale
	}
	s.data = data
	return data, nil
}

// Current returns the active version and its resolved data. Data is nil while
// a selection is still resolving or after a failed load.
func (s *Session) Current() (string, *docs.VersionData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version, s.data
}
