// Package session owns one shopper's bundle-building session: the selection
// state, the busy guard around the simulated toggle round-trip, and the
// checkout button state machine. All mutations run on discrete events behind
// a single mutex; deferred work (the toggle latency window and the button
// settling delay) goes through a Scheduler and is fenced by generation
// counters so a cancelled transition can never land late.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/guttosm/bundle-service/internal/bundle"
	"github.com/guttosm/bundle-service/internal/catalog"
	"github.com/guttosm/bundle-service/internal/domain/model"
	"github.com/guttosm/bundle-service/internal/logger"
	"github.com/guttosm/bundle-service/internal/pricing"
	"github.com/guttosm/bundle-service/internal/projection"
)

// Errors returned by engine operations.
var (
	// ErrUnknownProduct indicates a toggle for an id the catalog does not
	// carry. This is an integration bug on the caller's side, never a state
	// the widget can reach on its own.
	ErrUnknownProduct = errors.New("product not in catalog")
	// ErrToggleInFlight indicates a toggle arrived while a previous one was
	// still inside its latency window. Expected flow control, not a failure.
	ErrToggleInFlight = errors.New("toggle already in flight")
	// ErrNotReady indicates a confirm outside the ReadyForCart stage.
	ErrNotReady = errors.New("checkout not ready")
	// ErrSessionClosed indicates an operation on an evicted session.
	ErrSessionClosed = errors.New("session closed")
)

// Default timings for the simulated toggle round-trip and the button
// settling delay.
const (
	DefaultToggleLatency = 400 * time.Millisecond
	DefaultReadyDelay    = 1200 * time.Millisecond
)

// Clock supplies the current time. Injected so confirm timestamps are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Engine drives one bundle session. It is safe for concurrent use; a single
// mutex serializes every mutation and every deferred callback, which gives
// the cooperative, event-ordered model the widget needs.
type Engine struct {
	mu sync.Mutex

	id      string
	catalog *catalog.Snapshot
	policy  model.DiscountPolicy
	state   *bundle.State
	button  model.ButtonState

	toggleLatency time.Duration
	readyDelay    time.Duration

	scheduler Scheduler
	clock     Clock
	sink      RenderSink

	// busy marks the toggle latency window. Reentrant toggles during the
	// window are dropped, not queued.
	busy         bool
	toggleSeq    uint64
	readySeq     uint64
	cancelToggle CancelFunc
	cancelReady  CancelFunc

	closed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithID attaches the session identifier used in log fields and render
// notifications.
func WithID(id string) Option {
	return func(e *Engine) { e.id = id }
}

// WithScheduler replaces the real-timer scheduler, letting tests drive the
// latency window and the button delay by hand.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithClock replaces the wall clock used for confirm timestamps.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithRenderSink sets the sink notified after every applied state change.
func WithRenderSink(sink RenderSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithToggleLatency sets the simulated round-trip before a toggle is
// applied. Zero or negative applies toggles inline, synchronously.
func WithToggleLatency(d time.Duration) Option {
	return func(e *Engine) { e.toggleLatency = d }
}

// WithReadyDelay sets the settling delay between the Proceeding and
// ReadyForCart button stages. Zero or negative promotes immediately.
func WithReadyDelay(d time.Duration) Option {
	return func(e *Engine) { e.readyDelay = d }
}

// NewEngine creates a session engine selling from the given catalog snapshot
// under the given discount policy. The policy must already be validated.
func NewEngine(snapshot *catalog.Snapshot, policy model.DiscountPolicy, opts ...Option) *Engine {
	e := &Engine{
		catalog:       snapshot,
		policy:        policy,
		state:         bundle.NewState(),
		button:        model.ButtonInitial,
		toggleLatency: DefaultToggleLatency,
		readyDelay:    DefaultReadyDelay,
		scheduler:     TimerScheduler{},
		clock:         systemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the session identifier.
func (e *Engine) ID() string { return e.id }

// Policy returns the discount policy the session prices under.
func (e *Engine) Policy() model.DiscountPolicy { return e.policy }

// Toggle selects the product when absent and removes it when present. The
// mutation is applied after the configured latency window; while the window
// is open the engine is busy and further toggles are dropped with
// ErrToggleInFlight. Catalog data is captured at call time, so the item a
// shopper saw is the item that lands.
func (e *Engine) Toggle(productID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrSessionClosed
	}

	product, ok := e.catalog.Get(productID)
	if !ok {
		log := logger.Logger()
		log.Warn().
			Str("session_id", e.id).
			Int("product_id", productID).
			Msg("Toggle for unknown product")
		return ErrUnknownProduct
	}

	if e.busy {
		log := logger.Logger()
		log.Debug().
			Str("session_id", e.id).
			Int("product_id", productID).
			Msg("Toggle dropped, previous toggle in flight")
		return ErrToggleInFlight
	}

	if e.toggleLatency <= 0 {
		e.applyToggleLocked(product)
		return nil
	}

	e.busy = true
	e.toggleSeq++
	seq := e.toggleSeq
	e.cancelToggle = e.scheduler.Schedule(e.toggleLatency, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		// A reset or close bumped the sequence; this fire is stale.
		if e.closed || seq != e.toggleSeq {
			return
		}
		e.busy = false
		e.cancelToggle = nil
		e.applyToggleLocked(product)
	})
	return nil
}

// Busy reports whether a toggle is inside its latency window.
func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// applyToggleLocked lands the toggle: present means remove, absent means add
// with quantity one.
func (e *Engine) applyToggleLocked(p model.Product) {
	if e.state.Contains(p.ID) {
		_ = e.state.Remove(p.ID)
	} else {
		_ = e.state.Add(model.NewSelectedItem(p))
	}
	e.refreshLocked()
}

// AdjustQuantity shifts the quantity of a selected item by delta. Reaching
// zero or below removes the item; this is the only quantity path to removal.
// Returns bundle.ErrNotFound when the product is not selected.
func (e *Engine) AdjustQuantity(productID, delta int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrSessionClosed
	}

	item, ok := e.state.Get(productID)
	if !ok {
		return bundle.ErrNotFound
	}
	if err := e.state.SetQuantity(productID, item.Quantity+delta); err != nil {
		return err
	}
	e.refreshLocked()
	return nil
}

// Remove deletes a selected item unconditionally, whatever its quantity.
// Returns bundle.ErrNotFound when the product is not selected.
func (e *Engine) Remove(productID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrSessionClosed
	}

	if err := e.state.Remove(productID); err != nil {
		return err
	}
	e.refreshLocked()
	return nil
}

// Reset clears the bundle and returns the button to Initial. Pending toggle
// applications and button transitions are cancelled; a cleared bundle stays
// cleared. Reset cannot fail and is a no-op only on a closed session.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.cancelPendingLocked()
	e.state.Clear()
	e.button = model.ButtonInitial
	e.notifyLocked()
}

// Confirm hands the bundle over to the cart. Only legal in the ReadyForCart
// stage; the produced payload is the confirmed snapshot with amounts rounded
// to cents. No network call happens here, the payload is logged and returned.
func (e *Engine) Confirm() (model.CheckoutPayload, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return model.CheckoutPayload{}, ErrSessionClosed
	}
	if !e.button.CanConfirm() {
		return model.CheckoutPayload{}, ErrNotReady
	}

	items := e.state.Items()
	breakdown := pricing.Compute(items, e.policy)
	payload := model.CheckoutPayload{
		Products:        items,
		Subtotal:        pricing.Round2(breakdown.Subtotal),
		Discount:        pricing.Round2(breakdown.Discount),
		FinalTotal:      pricing.Round2(breakdown.Total),
		DiscountPercent: e.policy.Percent,
		Timestamp:       e.clock.Now(),
	}

	e.button = model.ButtonAdded

	log := logger.Logger()
	log.Info().
		Str("session_id", e.id).
		Int("products", len(payload.Products)).
		Int("total_quantity", payload.TotalQuantity()).
		Float64("subtotal", payload.Subtotal).
		Float64("discount", payload.Discount).
		Float64("final_total", payload.FinalTotal).
		Float64("discount_percent", payload.DiscountPercent).
		Time("confirmed_at", payload.Timestamp).
		Msg("Bundle confirmed")

	e.notifyLocked()
	return payload, nil
}

// Projection returns the current renderable view of the session.
func (e *Engine) Projection() model.BundleView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.projectionLocked()
}

// Close cancels all pending work and rejects every later operation with
// ErrSessionClosed. Called by the session store on eviction so timers die
// with the session. Idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.cancelPendingLocked()
}

// Closed reports whether the session has been closed.
func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// refreshLocked re-evaluates the button state machine after a selection
// change and notifies the sink.
//
// Eligibility turning true moves Initial to Proceeding and arms the settling
// delay. Eligibility turning false drops any stage back to Initial and
// cancels the pending promotion. While eligibility holds, ReadyForCart and
// Added persist through further edits.
func (e *Engine) refreshLocked() {
	eligible := e.state.Size() >= e.policy.MinItems

	switch {
	case eligible && e.button == model.ButtonInitial:
		e.enterProceedingLocked()
	case !eligible && e.button != model.ButtonInitial:
		e.resetButtonLocked()
	}

	e.notifyLocked()
}

// enterProceedingLocked starts the two-step affordance: Proceeding now,
// ReadyForCart once the settling delay elapses. The promotion is fenced by
// readySeq; losing eligibility first makes any late fire a no-op.
func (e *Engine) enterProceedingLocked() {
	e.button = model.ButtonProceeding
	e.readySeq++
	seq := e.readySeq

	if e.readyDelay <= 0 {
		e.button = model.ButtonReadyForCart
		return
	}

	e.cancelReady = e.scheduler.Schedule(e.readyDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || seq != e.readySeq || e.button != model.ButtonProceeding {
			return
		}
		e.cancelReady = nil
		e.button = model.ButtonReadyForCart
		e.notifyLocked()
	})
}

// resetButtonLocked returns the button to Initial and defuses the pending
// promotion.
func (e *Engine) resetButtonLocked() {
	e.readySeq++
	if e.cancelReady != nil {
		e.cancelReady()
		e.cancelReady = nil
	}
	e.button = model.ButtonInitial
}

// cancelPendingLocked defuses both deferred actions: the in-flight toggle
// application and the button promotion. Bumping the sequences guarantees a
// callback that already fired and is waiting on the lock lands as a no-op.
func (e *Engine) cancelPendingLocked() {
	e.toggleSeq++
	e.readySeq++
	if e.cancelToggle != nil {
		e.cancelToggle()
		e.cancelToggle = nil
	}
	if e.cancelReady != nil {
		e.cancelReady()
		e.cancelReady = nil
	}
	e.busy = false
}

func (e *Engine) projectionLocked() model.BundleView {
	return projection.Project(projection.Input{
		Items:   e.state.Items(),
		Catalog: e.catalog.Products(),
		Policy:  e.policy,
		Button:  e.button,
	})
}

func (e *Engine) notifyLocked() {
	if e.sink != nil {
		e.sink.Render(e.id, e.projectionLocked())
	}
}
