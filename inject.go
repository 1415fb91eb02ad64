package gesture

import (
	"fmt"
	"time"
)

// fingerSpacing separates the fingers of a synthetic multi-finger gesture.
const fingerSpacing = 40

// defaultTapHold is how long a synthetic tap keeps its finger down.
const defaultTapHold = 50 * time.Millisecond

// InjectSource is a Source fed with synthetic contact events. Events are
// stamped from an internal cursor that only moves forward; Step advances the
// clock to each event's timestamp before delivering it, so timers fire
// between events exactly as they would live.
type InjectSource struct {
	clock   *Clock
	handler Handler
	queue   []ContactEvent
	cursor  uint32
}

// NewInjectSource returns a source that drives clock.
func NewInjectSource(clock *Clock) *InjectSource {
	return &InjectSource{clock: clock, cursor: millis(clock.Now())}
}

// Subscribe attaches the single handler.
func (src *InjectSource) Subscribe(h Handler) (Subscription, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil handler", ErrNoSource)
	}
	if src.handler != nil {
		return nil, fmt.Errorf("%w: already subscribed", ErrNoSource)
	}
	src.handler = h
	return SubscriptionFunc(func() error {
		src.handler = nil
		src.queue = src.queue[:0]
		return nil
	}), nil
}

// Clock returns the clock the source advances.
func (src *InjectSource) Clock() *Clock { return src.clock }

// Now returns the timestamp the next queued event will carry.
func (src *InjectSource) Now() uint32 { return src.cursor }

// Len returns the number of undelivered events.
func (src *InjectSource) Len() int { return len(src.queue) }

func (src *InjectSource) push(kind ContactKind, id, x, y int32) {
	src.queue = append(src.queue, ContactEvent{
		Kind: kind, FingerID: id, X: x, Y: y, Timestamp: src.cursor,
	})
}

// Down queues a finger press at the current cursor.
func (src *InjectSource) Down(id, x, y int32) { src.push(ContactDown, id, x, y) }

// Move queues a finger move at the current cursor.
func (src *InjectSource) Move(id, x, y int32) { src.push(ContactMove, id, x, y) }

// Up queues a finger release at the current cursor.
func (src *InjectSource) Up(id, x, y int32) { src.push(ContactUp, id, x, y) }

// Wait moves the cursor forward by d.
func (src *InjectSource) Wait(d time.Duration) {
	if d > 0 {
		src.cursor += millis(d)
	}
}

// Tap queues a press and release at the same point.
func (src *InjectSource) Tap(id, x, y int32) {
	src.Down(id, x, y)
	src.Wait(defaultTapHold)
	src.Up(id, x, y)
}

// MultiTap queues a simultaneous tap of fingers fingers, ids 0..fingers-1,
// spaced horizontally from (x, y).
func (src *InjectSource) MultiTap(fingers int, x, y int32) {
	for i := 0; i < fingers; i++ {
		src.Down(int32(i), x+int32(i*fingerSpacing), y)
	}
	src.Wait(defaultTapHold)
	for i := 0; i < fingers; i++ {
		src.Up(int32(i), x+int32(i*fingerSpacing), y)
	}
}

// Hold queues a press, a wait of d, and a release at the same point.
func (src *InjectSource) Hold(id, x, y int32, d time.Duration) {
	src.Down(id, x, y)
	src.Wait(d)
	src.Up(id, x, y)
}

// Flick queues a straight swipe of fingers fingers, ids 0..fingers-1, from
// (fromX, fromY) to (toX, toY) over d with steps intermediate moves per
// finger. Fingers are spaced horizontally; all land and lift together.
func (src *InjectSource) Flick(fingers int, fromX, fromY, toX, toY int32, d time.Duration, steps int) {
	src.Path(fingers, []Point{{fromX, fromY}, {toX, toY}}, d, steps)
}

// Point is a screen position in a synthetic path.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Path queues a swipe of fingers fingers through the given waypoints over d,
// with steps interpolated moves per segment. A path that leaves and comes
// back produces a return flick.
func (src *InjectSource) Path(fingers int, points []Point, d time.Duration, steps int) {
	if len(points) < 2 || fingers < 1 {
		return
	}
	if steps < 0 {
		steps = 0
	}
	segments := len(points) - 1
	moves := segments * (steps + 1)
	tick := d / time.Duration(moves)

	offset := func(i int) int32 { return int32(i * fingerSpacing) }
	start := points[0]
	for i := 0; i < fingers; i++ {
		src.Down(int32(i), start.X+offset(i), start.Y)
	}
	for seg := 0; seg < segments; seg++ {
		a, b := points[seg], points[seg+1]
		for k := 1; k <= steps+1; k++ {
			src.Wait(tick)
			t := float64(k) / float64(steps+1)
			x := a.X + int32(float64(b.X-a.X)*t)
			y := a.Y + int32(float64(b.Y-a.Y)*t)
			for i := 0; i < fingers; i++ {
				src.Move(int32(i), x+offset(i), y)
			}
		}
	}
	end := points[len(points)-1]
	for i := 0; i < fingers; i++ {
		src.Up(int32(i), end.X+offset(i), end.Y)
	}
}

// Step delivers the oldest queued event. It reports false when the queue is
// empty or nothing is subscribed.
func (src *InjectSource) Step() bool {
	if len(src.queue) == 0 || src.handler == nil {
		return false
	}
	ev := src.queue[0]
	copy(src.queue, src.queue[1:])
	src.queue = src.queue[:len(src.queue)-1]

	src.clock.AdvanceTo(Millis(ev.Timestamp))
	src.handler.HandleContact(ev)
	return true
}

// Drain delivers every queued event, then advances the clock to the cursor
// so trailing waits let pending timers fire.
func (src *InjectSource) Drain() {
	for src.Step() {
	}
	src.clock.AdvanceTo(Millis(src.cursor))
}

// Settle waits d past the cursor and drains, letting every recognizer time
// out.
func (src *InjectSource) Settle(d time.Duration) {
	src.Wait(d)
	src.Drain()
}
