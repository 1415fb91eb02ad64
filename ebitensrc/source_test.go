package ebitensrc

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gesture"
)

type eventLog struct {
	events []gesture.ContactEvent
}

func (l *eventLog) HandleContact(ev gesture.ContactEvent) { l.events = append(l.events, ev) }

func newTestSource(t *testing.T) (*Source, *eventLog) {
	t.Helper()
	s := New(gesture.NewClock())
	log := &eventLog{}
	if _, err := s.Subscribe(log); err != nil {
		t.Fatal(err)
	}
	return s, log
}

func TestProcessPointer_Transitions(t *testing.T) {
	s, log := newTestSource(t)

	s.processPointer(0, 10, 10, true)
	s.advance(16 * time.Millisecond)
	s.processPointer(0, 10, 10, true) // unchanged: no event
	s.processPointer(0, 30, 10, true)
	s.advance(16 * time.Millisecond)
	s.processPointer(0, 30, 10, false)
	s.processPointer(0, 30, 10, false) // still up: no event

	want := []gesture.ContactEvent{
		{Kind: gesture.ContactDown, FingerID: 0, X: 10, Y: 10, Timestamp: 0},
		{Kind: gesture.ContactMove, FingerID: 0, X: 30, Y: 10, Timestamp: 16},
		{Kind: gesture.ContactUp, FingerID: 0, X: 30, Y: 10, Timestamp: 32},
	}
	if len(log.events) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(log.events), log.events, len(want))
	}
	for i := range want {
		if log.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, log.events[i], want[i])
		}
	}
}

func TestTouchSlot(t *testing.T) {
	s, _ := newTestSource(t)

	a := s.touchSlot(ebiten.TouchID(100))
	b := s.touchSlot(ebiten.TouchID(200))
	if a != 1 || b != 2 {
		t.Fatalf("slots = %d, %d; want 1, 2", a, b)
	}
	if again := s.touchSlot(ebiten.TouchID(100)); again != a {
		t.Errorf("existing touch remapped to %d", again)
	}
	for i := 0; i < maxPointers; i++ {
		s.touchSlot(ebiten.TouchID(300 + i))
	}
	if full := s.touchSlot(ebiten.TouchID(999)); full != -1 {
		t.Errorf("full table returned slot %d", full)
	}
}

func TestReleaseInactive(t *testing.T) {
	s, log := newTestSource(t)

	slot := s.touchSlot(ebiten.TouchID(7))
	s.processPointer(slot, 50, 60, true)
	s.releaseInactive([maxPointers]bool{})

	if len(log.events) != 2 || log.events[1].Kind != gesture.ContactUp || log.events[1].X != 50 {
		t.Fatalf("events = %v, want down then up at the last position", log.events)
	}
	if s.touchUsed[slot] {
		t.Error("slot not freed")
	}
}

func TestTickDuration(t *testing.T) {
	if got := tickDuration(60); got != time.Second/60 {
		t.Errorf("tickDuration(60) = %v", got)
	}
	if got := tickDuration(ebiten.SyncWithFPS); got != time.Second/defaultTPS {
		t.Errorf("tickDuration(SyncWithFPS) = %v, want the default", got)
	}
}

func TestSubscribe(t *testing.T) {
	s := New(gesture.NewClock())
	sub, err := s.Subscribe(&eventLog{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Subscribe(&eventLog{}); !errors.Is(err, gesture.ErrNoSource) {
		t.Errorf("second Subscribe err = %v, want ErrNoSource", err)
	}
	if err := sub.Close(); err != nil {
		t.Fatal(err)
	}
	s.processPointer(0, 1, 1, true) // no handler: dropped
	if _, err := s.Subscribe(&eventLog{}); err != nil {
		t.Errorf("Subscribe after Close: %v", err)
	}
}

func TestDrivesEngine(t *testing.T) {
	clock := gesture.NewClock()
	s := New(clock)
	e, err := gesture.New(gesture.DefaultConfig(), gesture.WithScheduler(clock), gesture.WithSource(s))
	if err != nil {
		t.Fatal(err)
	}
	var got []gesture.Record
	e.Register(func(_ any, r gesture.Record) { got = append(got, r) }, nil)

	tick := time.Second / 60
	s.processPointer(0, 100, 100, true)
	for i := 1; i <= 6; i++ {
		s.advance(tick)
		s.processPointer(0, 100+int32(i)*25, 100, true)
	}
	s.processPointer(0, 250, 100, false)
	for i := 0; i < 60; i++ {
		s.advance(tick)
	}

	if len(got) != 1 || got[0].Type != gesture.OneFingerFlickRight {
		t.Fatalf("got %v, want one ONE_FINGER_FLICK_RIGHT", got)
	}
}
