// Package ebitensrc feeds Ebitengine mouse and touch input into a gesture
// engine.
//
// Call [Source.Update] once from the game's Update method. Each call advances
// the gesture clock by one tick and turns the difference between this frame's
// pointers and the last frame's into down, move and up contact events.
//
//	clock := gesture.NewClock()
//	src := ebitensrc.New(clock)
//	engine, err := gesture.New(cfg, gesture.WithScheduler(clock), gesture.WithSource(src))
package ebitensrc

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gesture"
)

// maxPointers is the mouse (slot 0) plus nine touch slots.
const maxPointers = 10

// defaultTPS is assumed when ebiten reports no fixed tick rate.
const defaultTPS = 60

type pointer struct {
	down bool
	x, y int32
}

// Source is a gesture.Source polling ebiten input once per tick.
type Source struct {
	clock   *gesture.Clock
	handler gesture.Handler

	// Mouse reports the left mouse button as finger 0. Enabled by default so
	// gestures can be tried on a desktop.
	Mouse bool

	pointers     [maxPointers]pointer
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// New returns a source that advances clock on every Update.
func New(clock *gesture.Clock) *Source {
	return &Source{clock: clock, Mouse: true}
}

// Subscribe attaches the single handler.
func (s *Source) Subscribe(h gesture.Handler) (gesture.Subscription, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil handler", gesture.ErrNoSource)
	}
	if s.handler != nil {
		return nil, fmt.Errorf("%w: already subscribed", gesture.ErrNoSource)
	}
	s.handler = h
	return gesture.SubscriptionFunc(func() error {
		s.handler = nil
		return nil
	}), nil
}

// Update advances the clock by one tick, letting due recognizer timers fire,
// then delivers this frame's contact events.
func (s *Source) Update() {
	s.advance(tickDuration(ebiten.TPS()))
	if s.handler == nil {
		return
	}
	if s.Mouse {
		s.processMouse()
	}
	s.processTouches()
}

func tickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = defaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (s *Source) advance(d time.Duration) {
	s.clock.Advance(d)
}

func (s *Source) now() uint32 {
	return uint32(s.clock.Now() / time.Millisecond)
}

// processMouse handles the left mouse button (pointer 0).
func (s *Source) processMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, int32(mx), int32(my), pressed)
}

// processTouches handles touch input (pointers 1-9).
func (s *Source) processTouches() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, int32(tx), int32(ty), true)
	}
	s.releaseInactive(active)
}

// releaseInactive lifts every touch slot not seen this frame.
func (s *Source) releaseInactive(active [maxPointers]bool) {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			p := &s.pointers[i]
			s.processPointer(i, p.x, p.y, false)
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Source) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer turns one pointer's new sample into at most one contact
// event. The slot index is the finger id.
func (s *Source) processPointer(slot int, x, y int32, pressed bool) {
	p := &s.pointers[slot]
	ev := gesture.ContactEvent{FingerID: int32(slot), X: x, Y: y, Timestamp: s.now()}
	switch {
	case pressed && !p.down:
		ev.Kind = gesture.ContactDown
	case pressed && (x != p.x || y != p.y):
		ev.Kind = gesture.ContactMove
	case !pressed && p.down:
		ev.Kind = gesture.ContactUp
	default:
		return
	}
	p.down = pressed
	p.x, p.y = x, y
	if s.handler != nil {
		s.handler.HandleContact(ev)
	}
}
