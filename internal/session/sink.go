package session

import "github.com/guttosm/bundle-service/internal/domain/model"

// RenderSink receives the projected view after every applied state change:
// toggles landing, quantity shifts, removals, resets, and checkout button
// transitions. The rendering itself (DOM, terminal, websocket push) lives
// outside this module.
//
// Render is called with the engine lock held, in mutation order. Sinks must
// return quickly and must not call back into the engine.
type RenderSink interface {
	Render(sessionID string, view model.BundleView)
}

// RenderFunc adapts a plain function to the RenderSink interface.
type RenderFunc func(sessionID string, view model.BundleView)

// Render implements RenderSink.
func (f RenderFunc) Render(sessionID string, view model.BundleView) {
	f(sessionID, view)
}
