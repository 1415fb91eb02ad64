package gesture

import (
	"testing"
	"time"
)

func TestTap_Single(t *testing.T) {
	_, src, rec := newTestEngine(t)

	src.Tap(0, 100, 100)
	src.Settle(time.Second)

	expectRecords(t, rec.records, Record{
		Type:   OneFingerSingleTap,
		XBegin: 100, YBegin: 100,
		XEnd: 100, YEnd: 100,
		Phase:     PhaseEnd,
		EventTime: 400,
	})
}

func TestTap_Sequences(t *testing.T) {
	tests := []struct {
		name string
		taps int
		want Type
	}{
		{"single", 1, OneFingerSingleTap},
		{"double", 2, OneFingerDoubleTap},
		{"triple", 3, OneFingerTripleTap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, src, rec := newTestEngine(t)
			for i := 0; i < tt.taps; i++ {
				if i > 0 {
					src.Wait(100 * time.Millisecond)
				}
				src.Tap(0, 100+int32(i), 100)
			}
			src.Settle(time.Second)

			if len(rec.records) != 1 {
				t.Fatalf("got %v, want exactly one %s", rec.records, tt.want)
			}
			if got := rec.records[0]; got.Type != tt.want || got.Phase != PhaseEnd {
				t.Errorf("got %v, want %s end", got, tt.want)
			}
		})
	}
}

func TestTap_FourTapsAbort(t *testing.T) {
	_, src, rec := newTestEngine(t)

	for i := 0; i < 4; i++ {
		src.Tap(0, 100, 100)
		src.Wait(100 * time.Millisecond)
	}
	src.Settle(time.Second)

	if len(rec.records) != 0 {
		t.Errorf("got %v, want none", rec.records)
	}
}

func TestTap_SequentialFingersRaiseCount(t *testing.T) {
	_, src, rec := newTestEngine(t)

	src.Tap(0, 100, 100)
	src.Wait(100 * time.Millisecond)
	src.Tap(1, 100, 100)
	src.Wait(100 * time.Millisecond)
	src.Tap(2, 100, 100)
	src.Settle(time.Second)

	if len(rec.records) != 1 || rec.records[0].Type != ThreeFingersTripleTap {
		t.Fatalf("got %v, want one THREE_FINGERS_TRIPLE_TAP", rec.records)
	}
}

func TestTap_TwoFingersTogether(t *testing.T) {
	_, src, rec := newTestEngine(t)

	src.MultiTap(2, 100, 100)
	src.Settle(time.Second)

	expectRecords(t, rec.records, Record{
		Type:   TwoFingersSingleTap,
		XBegin: 100, YBegin: 100,
		XEnd: 140, YEnd: 100,
		Phase:     PhaseEnd,
		EventTime: 400,
	})
}

func TestTap_ThreeFingersDouble(t *testing.T) {
	_, src, rec := newTestEngine(t)

	src.MultiTap(3, 100, 100)
	src.Wait(100 * time.Millisecond)
	src.MultiTap(3, 100, 100)
	src.Settle(time.Second)

	if len(rec.records) != 1 || rec.records[0].Type != ThreeFingersDoubleTap {
		t.Fatalf("got %v, want one THREE_FINGERS_DOUBLE_TAP", rec.records)
	}
}

func TestTap_HeldAtTimeoutAborts(t *testing.T) {
	_, src, rec := newTestEngine(t)

	src.Tap(0, 100, 100)
	src.Wait(100 * time.Millisecond)
	src.Down(0, 100, 100)
	src.Wait(500 * time.Millisecond)
	src.Up(0, 100, 100)
	src.Settle(time.Second)

	expectRecords(t, rec.records, Record{
		Type:   OneFingerSingleTap,
		XBegin: 100, YBegin: 100,
		XEnd: 100, YEnd: 100,
		Phase:     PhaseAbort,
		EventTime: 550,
	})
}

func TestTap_NoTapsNoRecord(t *testing.T) {
	_, src, rec := newTestEngine(t)

	// Held past the tap timeout but released before hover arms.
	src.Hold(0, 100, 100, 500*time.Millisecond)
	src.Settle(time.Second)

	if len(rec.records) != 0 {
		t.Errorf("got %v, want none", rec.records)
	}
}

func TestTap_MovedOutsideRadius(t *testing.T) {
	e, src, rec := newTestEngine(t)

	src.Down(0, 100, 100)
	src.Wait(50 * time.Millisecond)
	src.Move(0, 150, 100)
	src.Drain()
	if e.sess.tap != (tapState{}) {
		t.Fatalf("tap not reset after leaving radius: %+v", e.sess.tap)
	}
	src.Up(0, 150, 100)
	src.Settle(time.Second)

	if len(rec.records) != 0 {
		t.Errorf("got %v, want none", rec.records)
	}
}

func TestTap_ReleasedOutsideRadius(t *testing.T) {
	_, src, rec := newTestEngine(t)

	src.Down(0, 100, 100)
	src.Wait(50 * time.Millisecond)
	src.Up(0, 150, 100)
	src.Settle(time.Second)

	if len(rec.records) != 0 {
		t.Errorf("got %v, want none", rec.records)
	}
}

func TestTap_SecondPressFarAwayRestarts(t *testing.T) {
	_, src, rec := newTestEngine(t)

	src.Tap(0, 100, 100)
	src.Wait(100 * time.Millisecond)
	src.Tap(0, 400, 400)
	src.Settle(time.Second)

	expectRecords(t, rec.records, Record{
		Type:   OneFingerSingleTap,
		XBegin: 400, YBegin: 400,
		XEnd: 400, YEnd: 400,
		Phase:     PhaseEnd,
		EventTime: 550,
	})
}

func TestTapState_StaleTimerAfterReset(t *testing.T) {
	s, clock, rec := newTestSession(DefaultConfig())
	var tp tapState

	s.pressed = 1
	tp.down(s, ContactEvent{Kind: ContactDown, FingerID: 0, X: 10, Y: 10})
	tp.reset()
	clock.Advance(time.Second)

	if len(rec.records) != 0 {
		t.Errorf("reset sequence emitted %v", rec.records)
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending = %d after reset", clock.Pending())
	}
}
