package render

import (
	"sync"
	"sync/atomic"

	"github.com/guttosm/bundle-service/internal/domain/model"
	"github.com/guttosm/bundle-service/internal/session"
)

// frame is one rendered view queued for delivery.
type frame struct {
	sessionID string
	view      model.BundleView
}

// AsyncSinkConfig holds configuration for the async render sink.
type AsyncSinkConfig struct {
	// BufferSize is the size of the frame channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines delivering frames.
	NumWorkers int
}

// DefaultAsyncSinkConfig returns sensible defaults for the async sink.
func DefaultAsyncSinkConfig() AsyncSinkConfig {
	return AsyncSinkConfig{
		BufferSize: 1024,
		NumWorkers: 2,
	}
}

// AsyncSink decouples engines from slow render consumers through a buffered
// worker pool. Render is called with the engine lock held, so delivery must
// never block a session: frames that do not fit the buffer are dropped, a
// stale frame is always superseded by the next one.
type AsyncSink struct {
	inner   session.RenderSink
	frameCh chan frame
	wg      sync.WaitGroup
	stopCh  chan struct{}

	// Metrics
	enqueued  int64
	dropped   int64
	delivered int64
}

// NewAsyncSink creates an async sink delivering to inner. Returns nil when
// inner is nil, mirroring a disabled render boundary.
func NewAsyncSink(inner session.RenderSink, cfg AsyncSinkConfig) *AsyncSink {
	if inner == nil {
		return nil
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultAsyncSinkConfig().BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = DefaultAsyncSinkConfig().NumWorkers
	}

	s := &AsyncSink{
		inner:   inner,
		frameCh: make(chan frame, cfg.BufferSize),
		stopCh:  make(chan struct{}),
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	return s
}

// worker delivers frames from the channel.
func (s *AsyncSink) worker() {
	defer s.wg.Done()

	for {
		select {
		case f, ok := <-s.frameCh:
			if !ok {
				return
			}
			s.deliver(f)
		case <-s.stopCh:
			// Drain remaining frames before stopping.
			for {
				select {
				case f := <-s.frameCh:
					s.deliver(f)
				default:
					return
				}
			}
		}
	}
}

func (s *AsyncSink) deliver(f frame) {
	s.inner.Render(f.sessionID, f.view)
	atomic.AddInt64(&s.delivered, 1)
}

// Render implements session.RenderSink. It enqueues the frame and returns
// immediately; when the buffer is full the frame is dropped.
func (s *AsyncSink) Render(sessionID string, view model.BundleView) {
	select {
	case s.frameCh <- frame{sessionID: sessionID, view: view}:
		atomic.AddInt64(&s.enqueued, 1)
	default:
		atomic.AddInt64(&s.dropped, 1)
	}
}

// Stop shuts the sink down, waiting for queued frames to be delivered.
func (s *AsyncSink) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// Stats returns current sink counters.
func (s *AsyncSink) Stats() (enqueued, dropped, delivered int64) {
	return atomic.LoadInt64(&s.enqueued),
		atomic.LoadInt64(&s.dropped),
		atomic.LoadInt64(&s.delivered)
}
