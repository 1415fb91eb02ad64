package gesture

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ErrShutdown is returned when an engine is used after Shutdown.
var ErrShutdown = errors.New("gesture engine shut down")

// gestureState is the lifecycle shared by the flick and hover machines.
type gestureState uint8

const (
	stateNotStarted gestureState = iota
	stateOngoing
	stateFinished
	stateAborted
)

func (s gestureState) String() string {
	switch s {
	case stateNotStarted:
		return "not-started"
	case stateOngoing:
		return "ongoing"
	case stateFinished:
		return "finished"
	case stateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// session is the touch session: the recognizer states and the live count of
// pressed fingers. It is owned by the dispatch path and passed explicitly to
// every recognizer handler.
type session struct {
	cfg      Config
	clock    Scheduler
	pressed  int
	lastTime uint32
	rotation Rotation
	rotate   func() Rotation
	scroll   ScrollSink
	emit     func(Record)
	trace    func(recognizer, msg string, args ...any)

	flick flickState
	hover hoverState
	tap   tapState
}

// currentRotation is read once per gesture, when its first finger lands.
func (s *session) currentRotation() Rotation {
	if s.rotate != nil {
		return s.rotate()
	}
	return s.rotation
}

// now returns the scheduler time as an event timestamp. Timer-driven records
// carry it as their event time.
func (s *session) now() uint32 {
	return millis(s.clock.Now())
}

// Engine turns raw contact events into gesture records. All methods must be
// called from the host loop goroutine that also advances the engine's
// Scheduler.
type Engine struct {
	id       string
	sess     session
	callback Callback
	userData any
	store    RecordStore
	source   Source
	sub      Subscription
	logger   *slog.Logger
	debug    bool
	closed   bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSource subscribes the engine to src. A subscription failure makes New
// fail.
func WithSource(src Source) Option {
	return func(e *Engine) { e.source = src }
}

// WithScheduler sets the timer facility. The default is a fresh Clock.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sess.clock = s }
}

// WithLogger sets the structured logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithScrollSink receives the pass-through stream of flick-to-scroll.
func WithScrollSink(sink ScrollSink) Option {
	return func(e *Engine) { e.sess.scroll = sink }
}

// WithRotationSource is polled for the screen rotation when a gesture starts.
// It takes precedence over SetRotation.
func WithRotationSource(fn func() Rotation) Option {
	return func(e *Engine) { e.sess.rotate = fn }
}

// New validates cfg, builds the touch session and subscribes to the input
// source if one was given. On error no engine is returned and nothing stays
// subscribed.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{id: uuid.NewString()}
	e.sess.cfg = cfg
	for _, opt := range opts {
		opt(e)
	}
	if e.sess.clock == nil {
		e.sess.clock = NewClock()
	}
	if e.sess.scroll == nil {
		e.sess.scroll = nopScroll{}
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.logger = e.logger.With(slog.String("session", e.id))
	e.sess.emit = e.emit
	e.sess.trace = e.trace

	if e.source != nil {
		sub, err := e.source.Subscribe(e)
		if err != nil {
			return nil, fmt.Errorf("subscribe input source: %w", err)
		}
		e.sub = sub
	}
	e.logger.Info("gesture engine started",
		slog.Int("flick_min_length", cfg.FlickMinLength),
		slog.Duration("flick_max_duration", cfg.FlickMaxDuration),
		slog.Duration("tap_timeout", cfg.TapTimeout),
		slog.Int("tap_radius", cfg.TapRadius))
	return e, nil
}

// ID returns the session id attached to every log line.
func (e *Engine) ID() string { return e.id }

// Config returns the engine's copy of its configuration.
func (e *Engine) Config() Config { return e.sess.cfg }

// Scheduler returns the timer facility the recognizers arm.
func (e *Engine) Scheduler() Scheduler { return e.sess.clock }

// Pressed returns the number of fingers currently down.
func (e *Engine) Pressed() int { return e.sess.pressed }

// Register installs the consumer callback. There is one slot; the last
// registration wins and a nil cb clears it.
func (e *Engine) Register(cb Callback, userData any) {
	e.callback = cb
	e.userData = userData
}

// SetRecordStore sets the optional ECS bridge.
func (e *Engine) SetRecordStore(store RecordStore) {
	e.store = store
}

// SetRotation sets the screen rotation used by gestures that start after the
// call.
func (e *Engine) SetRotation(r Rotation) {
	e.sess.rotation = r
}

// HandleContact dispatches ev by kind. It implements Handler.
func (e *Engine) HandleContact(ev ContactEvent) {
	switch ev.Kind {
	case ContactDown:
		e.Down(ev)
	case ContactMove:
		e.Move(ev)
	case ContactUp:
		e.Up(ev)
	}
}

// Down counts the new finger, then feeds the flick, hover and tap
// recognizers in that order.
func (e *Engine) Down(ev ContactEvent) {
	if e.closed {
		return
	}
	s := &e.sess
	s.pressed++
	s.lastTime = ev.Timestamp
	s.flick.down(s, ev)
	s.hover.down(s, ev)
	s.tap.down(s, ev)
}

// Move feeds the flick, hover and tap recognizers in that order.
func (e *Engine) Move(ev ContactEvent) {
	if e.closed {
		return
	}
	s := &e.sess
	s.lastTime = ev.Timestamp
	s.flick.move(s, ev)
	s.hover.move(s, ev)
	s.tap.move(s, ev)
}

// Up uncounts the finger first, then feeds the flick, hover and tap
// recognizers in that order.
func (e *Engine) Up(ev ContactEvent) {
	if e.closed {
		return
	}
	s := &e.sess
	if s.pressed > 0 {
		s.pressed--
	}
	s.lastTime = ev.Timestamp
	s.flick.up(s, ev)
	s.hover.up(s, ev)
	s.tap.up(s, ev)
}

// Shutdown releases the input source subscription and every pending timer.
// Events arriving afterwards are dropped.
func (e *Engine) Shutdown() error {
	if e.closed {
		return ErrShutdown
	}
	e.closed = true
	s := &e.sess
	s.flick.cancel(s)
	s.hover.reset()
	s.tap.reset()
	s.pressed = 0

	var err error
	if e.sub != nil {
		if cerr := e.sub.Close(); cerr != nil {
			err = fmt.Errorf("close input source: %w", cerr)
		}
		e.sub = nil
	}
	e.logger.Info("gesture engine stopped")
	return err
}

// emit hands a record to the registered callback, then to the store.
func (e *Engine) emit(r Record) {
	if e.debug {
		e.logger.Debug("gesture", slog.String("type", r.Type.String()),
			slog.String("phase", r.Phase.String()),
			slog.Int("x", int(r.XEnd)), slog.Int("y", int(r.YEnd)),
			slog.Uint64("time", uint64(r.EventTime)))
	}
	if e.callback != nil {
		e.callback(e.userData, r)
	}
	if e.store != nil {
		e.store.EmitRecord(r)
	}
}
