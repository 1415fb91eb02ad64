package gesture

import "errors"

// ErrNoSource is returned when a source cannot accept a subscriber.
var ErrNoSource = errors.New("input source unavailable")

// Handler consumes raw contact events. Engine implements it.
type Handler interface {
	HandleContact(ev ContactEvent)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev ContactEvent)

// HandleContact calls f(ev).
func (f HandlerFunc) HandleContact(ev ContactEvent) { f(ev) }

// Source delivers raw contact events from the host input system. Events must
// be delivered on the host loop goroutine, one at a time.
type Source interface {
	Subscribe(h Handler) (Subscription, error)
}

// Subscription ends a Source subscription when closed.
type Subscription interface {
	Close() error
}

// SubscriptionFunc adapts a function to Subscription.
type SubscriptionFunc func() error

// Close calls f.
func (f SubscriptionFunc) Close() error { return f() }

// ScrollSink receives the synthetic scroll stream produced when a two-finger
// flick is converted to a scroll. Positions are the midpoint of both fingers.
type ScrollSink interface {
	BeginScroll(x, y int32, t uint32)
	Scroll(x, y int32, t uint32)
	EndScroll(x, y int32, t uint32)
}

type nopScroll struct{}

func (nopScroll) BeginScroll(int32, int32, uint32) {}
func (nopScroll) Scroll(int32, int32, uint32)      {}
func (nopScroll) EndScroll(int32, int32, uint32)   {}
