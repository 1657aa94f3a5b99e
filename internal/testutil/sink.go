package testutil

import (
	"sync"

	"github.com/guttosm/bundle-service/internal/domain/model"
)

// CaptureSink records every rendered view so tests can assert on the
// notification order and the final projection a renderer would have seen.
type CaptureSink struct {
	mu       sync.Mutex
	sessions []string
	views    []model.BundleView
}

// NewCaptureSink returns an empty capture sink.
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

// Render implements session.RenderSink.
func (s *CaptureSink) Render(sessionID string, view model.BundleView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, sessionID)
	s.views = append(s.views, view)
}

// Count returns how many views were rendered.
func (s *CaptureSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// Last returns the most recent view and whether any view was rendered.
func (s *CaptureSink) Last() (model.BundleView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.views) == 0 {
		return model.BundleView{}, false
	}
	return s.views[len(s.views)-1], true
}

// Views returns a copy of all rendered views in order.
func (s *CaptureSink) Views() []model.BundleView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.BundleView, len(s.views))
	copy(out, s.views)
	return out
}

// Sessions returns a copy of the session ids the views were rendered for.
func (s *CaptureSink) Sessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Reset discards everything recorded so far.
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = nil
	s.views = nil
}
