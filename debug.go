package gesture

import "log/slog"

// Recognizer names used in debug traces.
const (
	traceFlick = "flick"
	traceHover = "hover"
	traceTap   = "tap"
)

// SetDebugMode enables or disables debug mode. When enabled, every
// recognizer transition and every emitted record is logged at debug level
// with the recognizer name and, for aborts, the reason.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (e *Engine) DebugMode() bool { return e.debug }

// trace logs a recognizer transition. It is a no-op unless debug mode is on,
// so recognizers may call it on every event.
func (e *Engine) trace(recognizer, msg string, args ...any) {
	if !e.debug {
		return
	}
	attrs := make([]any, 0, len(args)+2)
	attrs = append(attrs, slog.String("recognizer", recognizer))
	attrs = append(attrs, args...)
	e.logger.Debug(msg, attrs...)
}

// debugSnapshot is a read-only view of the recognizer states for logs and
// tests.
type debugSnapshot struct {
	Pressed int
	Flick   string
	Hover   string
	Tap     string
	Taps    int
}

// snapshot captures the current machine states.
func (e *Engine) snapshot() debugSnapshot {
	s := &e.sess
	tap := "idle"
	if s.tap.started {
		tap = "started"
	}
	return debugSnapshot{
		Pressed: s.pressed,
		Flick:   s.flick.state.String(),
		Hover:   s.hover.state.String(),
		Tap:     tap,
		Taps:    s.tap.taps,
	}
}

// LogState writes the recognizer states at info level.
func (e *Engine) LogState() {
	snap := e.snapshot()
	e.logger.Info("gesture state",
		slog.Int("pressed", snap.Pressed),
		slog.String("flick", snap.Flick),
		slog.String("hover", snap.Hover),
		slog.String("tap", snap.Tap),
		slog.Int("taps", snap.Taps))
}
