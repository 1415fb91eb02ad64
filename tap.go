package gesture

// maxTaps is the longest tap sequence in the catalogue.
const maxTaps = 3

type tapFinger struct {
	id   int32
	x, y int32 // origin of the latest press
	used bool
}

// tapState is the tap recognizer. One sequence spans every press of a
// multi-tap, independent of flick and hover. The zero value is idle.
type tapState struct {
	started bool
	taps    int // committed taps, 0-3
	fingers [maxFingers]tapFinger
	// classification is the finger count of the sequence, 1-3.
	classification int
	// counted is set once a tap was committed for the current press cycle.
	counted bool
	timer   Timer
}

func (t *tapState) slotOf(id int32) int {
	for i := range t.fingers {
		if t.fingers[i].used && t.fingers[i].id == id {
			return i
		}
	}
	return -1
}

func (t *tapState) down(s *session, ev ContactEvent) {
	if !t.started {
		t.begin(s, ev)
		return
	}
	if s.pressed == 1 {
		t.counted = false
	}

	slot0 := &t.fingers[0]
	if slot0.used && ev.FingerID == slot0.id {
		if !withinRadius(slot0.x, slot0.y, ev.X, ev.Y, s.cfg.TapRadius) {
			s.trace(traceTap, "tap restarted", "reason", "first finger outside radius")
			t.reset()
			t.begin(s, ev)
			return
		}
		slot0.x, slot0.y = ev.X, ev.Y
		t.arm(s)
		return
	}

	i := t.slotOf(ev.FingerID)
	if i < 0 {
		for j := 1; j < maxFingers; j++ {
			if !t.fingers[j].used {
				i = j
				break
			}
		}
	}
	if i < 0 {
		s.trace(traceTap, "tap finger ignored", "finger", ev.FingerID)
		return
	}
	t.fingers[i] = tapFinger{id: ev.FingerID, x: ev.X, y: ev.Y, used: true}
	if i+1 > t.classification {
		t.classification = i + 1
	}
	t.arm(s)
	s.trace(traceTap, "tap finger joined", "finger", ev.FingerID, "fingers", t.classification)
}

// begin starts a fresh sequence with ev in slot 0.
func (t *tapState) begin(s *session, ev ContactEvent) {
	t.stopTimer()
	*t = tapState{started: true, classification: 1}
	t.fingers[0] = tapFinger{id: ev.FingerID, x: ev.X, y: ev.Y, used: true}
	t.arm(s)
	s.trace(traceTap, "tap started", "finger", ev.FingerID)
}

// arm (re)starts the inter-tap timer.
func (t *tapState) arm(s *session) {
	t.stopTimer()
	t.timer = s.clock.AfterFunc(s.cfg.TapTimeout, func() { t.expire(s) })
}

func (t *tapState) stopTimer() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *tapState) up(s *session, ev ContactEvent) {
	if !t.started {
		return
	}
	i := t.slotOf(ev.FingerID)
	if i < 0 {
		return
	}
	fg := &t.fingers[i]
	if !withinRadius(fg.x, fg.y, ev.X, ev.Y, s.cfg.TapRadius) {
		// Flagged only; the pending timer clears the slots.
		t.started = false
		s.trace(traceTap, "tap aborted", "reason", "released outside radius")
		return
	}
	if t.counted {
		return
	}
	t.counted = true
	t.taps++
	if t.taps > maxTaps {
		t.started = false
		s.trace(traceTap, "tap aborted", "reason", "too many taps")
		return
	}
	s.trace(traceTap, "tap counted", "taps", t.taps)
}

func (t *tapState) move(s *session, ev ContactEvent) {
	if !t.started {
		return
	}
	i := t.slotOf(ev.FingerID)
	if i < 0 {
		return
	}
	fg := &t.fingers[i]
	if withinRadius(fg.x, fg.y, ev.X, ev.Y, s.cfg.TapRadius) {
		return
	}
	s.trace(traceTap, "tap aborted", "reason", "moved outside radius")
	t.reset()
}

// expire reports the sequence when the inter-tap window lapses: end if every
// finger is up, abort if one is still held.
func (t *tapState) expire(s *session) {
	t.timer = nil
	if t.started {
		typ := TapType(t.classification, t.taps)
		if typ != TypeUndefined {
			phase := PhaseEnd
			if s.pressed > 0 {
				phase = PhaseAbort
			}
			first, last := t.fingers[0], t.fingers[t.classification-1]
			s.trace(traceTap, "tap "+phase.String(), "type", typ.String())
			s.emit(Record{
				Type:   typ,
				XBegin: first.x, YBegin: first.y,
				XEnd: last.x, YEnd: last.y,
				Phase:     phase,
				EventTime: s.now(),
			})
		}
	}
	t.reset()
}

// reset cancels the timer and returns to idle.
func (t *tapState) reset() {
	t.stopTimer()
	*t = tapState{}
}
