package gesture

import (
	"errors"
	"testing"
	"time"
)

type eventLog struct {
	events []ContactEvent
}

func (l *eventLog) HandleContact(ev ContactEvent) { l.events = append(l.events, ev) }

func TestInjectSource_Tap(t *testing.T) {
	src := NewInjectSource(NewClock())
	log := &eventLog{}
	if _, err := src.Subscribe(log); err != nil {
		t.Fatal(err)
	}

	src.Tap(2, 10, 20)
	if src.Len() != 2 {
		t.Fatalf("Len = %d, want 2", src.Len())
	}
	src.Drain()

	want := []ContactEvent{
		{Kind: ContactDown, FingerID: 2, X: 10, Y: 20, Timestamp: 0},
		{Kind: ContactUp, FingerID: 2, X: 10, Y: 20, Timestamp: 50},
	}
	if len(log.events) != len(want) {
		t.Fatalf("got %d events, want %d", len(log.events), len(want))
	}
	for i := range want {
		if log.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, log.events[i], want[i])
		}
	}
}

func TestInjectSource_PathTiming(t *testing.T) {
	src := NewInjectSource(NewClock())
	log := &eventLog{}
	if _, err := src.Subscribe(log); err != nil {
		t.Fatal(err)
	}

	src.Flick(2, 0, 0, 100, 0, 100*time.Millisecond, 1)
	src.Drain()

	// 2 downs, 2 steps of 2 moves, 2 ups.
	if len(log.events) != 8 {
		t.Fatalf("got %d events, want 8", len(log.events))
	}
	last := log.events[len(log.events)-1]
	if last.Kind != ContactUp || last.FingerID != 1 || last.X != 100+fingerSpacing || last.Timestamp != 100 {
		t.Errorf("last event = %+v", last)
	}
	mid := log.events[2]
	if mid.Kind != ContactMove || mid.X != 50 || mid.Timestamp != 50 {
		t.Errorf("first move = %+v", mid)
	}
}

func TestInjectSource_StepAdvancesClock(t *testing.T) {
	clock := NewClock()
	src := NewInjectSource(clock)
	var firedAt time.Duration = -1
	clock.AfterFunc(30*time.Millisecond, func() { firedAt = clock.Now() })

	var sawNow time.Duration
	if _, err := src.Subscribe(HandlerFunc(func(ContactEvent) { sawNow = clock.Now() })); err != nil {
		t.Fatal(err)
	}
	src.Wait(80 * time.Millisecond)
	src.Down(0, 0, 0)
	src.Step()

	if firedAt != 30*time.Millisecond {
		t.Errorf("timer fired at %v, want 30ms", firedAt)
	}
	if sawNow != 80*time.Millisecond {
		t.Errorf("handler saw Now = %v, want 80ms", sawNow)
	}
}

func TestInjectSource_Settle(t *testing.T) {
	clock := NewClock()
	src := NewInjectSource(clock)
	if _, err := src.Subscribe(&eventLog{}); err != nil {
		t.Fatal(err)
	}
	src.Settle(time.Second)
	if clock.Now() != time.Second {
		t.Errorf("Now = %v after Settle, want 1s", clock.Now())
	}
}

func TestInjectSource_SingleSubscriber(t *testing.T) {
	src := NewInjectSource(NewClock())
	sub, err := src.Subscribe(&eventLog{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.Subscribe(&eventLog{}); !errors.Is(err, ErrNoSource) {
		t.Errorf("second Subscribe err = %v, want ErrNoSource", err)
	}
	if _, err := src.Subscribe(nil); !errors.Is(err, ErrNoSource) {
		t.Errorf("nil Subscribe err = %v, want ErrNoSource", err)
	}
	if err := sub.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Subscribe(&eventLog{}); err != nil {
		t.Errorf("Subscribe after Close: %v", err)
	}
}

func TestInjectSource_StepWithoutSubscriber(t *testing.T) {
	src := NewInjectSource(NewClock())
	src.Down(0, 0, 0)
	if src.Step() {
		t.Error("Step delivered without a subscriber")
	}
	if src.Len() != 1 {
		t.Errorf("Len = %d, event should stay queued", src.Len())
	}
}
