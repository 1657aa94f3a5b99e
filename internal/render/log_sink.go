// Package render provides the render-sink implementations the service wires
// behind a session engine. The engine publishes a full view after every
// applied change; what a browser would paint, this package logs or fans out.
package render

import (
	"github.com/guttosm/bundle-service/internal/domain/model"
	"github.com/guttosm/bundle-service/internal/logger"
)

// LogSink writes every rendered view to the structured log at debug level.
// It is the render boundary of the headless service: external renderers poll
// the projection endpoint, while operators can follow the same stream in the
// logs.
type LogSink struct{}

// NewLogSink returns a LogSink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Render implements session.RenderSink.
func (*LogSink) Render(sessionID string, view model.BundleView) {
	log := logger.Logger()
	log.Debug().
		Str("session_id", sessionID).
		Int("size", view.Size).
		Int("progress_percent", view.ProgressPercent).
		Bool("checkout_eligible", view.CheckoutEligible).
		Str("button_state", view.Button.State.String()).
		Str("subtotal", view.Subtotal).
		Str("discount", view.Discount).
		Str("total", view.Total).
		Msg("Bundle view rendered")
}
