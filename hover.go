package gesture

// maxHoverFingers is how many contacts hover tracks. The second finger is
// tracked only to recognize a deliberate cancel.
const maxHoverFingers = 2

type hoverFinger struct {
	id   int32
	x, y int32
}

// hoverState is the hover recognizer: NOT_STARTED -> ONGOING -> ABORTED ->
// NOT_STARTED once every finger is up. Only the one-finger hover is emitted.
type hoverState struct {
	state       gestureState
	fingers     [maxHoverFingers]hoverFinger
	n           int
	begun       bool // a begin record went out for this press
	longpressed bool
	timer       Timer
}

func (h *hoverState) indexOf(id int32) int {
	for i := 0; i < h.n; i++ {
		if h.fingers[i].id == id {
			return i
		}
	}
	return -1
}

func (h *hoverState) down(s *session, ev ContactEvent) {
	if h.state == stateNotStarted {
		if s.pressed != 1 {
			return
		}
		*h = hoverState{state: stateOngoing, n: 1}
		h.fingers[0] = hoverFinger{id: ev.FingerID, x: ev.X, y: ev.Y}
		h.arm(s)
		s.trace(traceHover, "hover started", "finger", ev.FingerID)
		return
	}
	if h.state != stateOngoing {
		return
	}

	switch {
	case s.pressed == 2 && h.n == 1:
		if h.longpressed {
			// Second finger after hover began is an explicit cancel.
			h.abort(s, "second finger cancel")
			return
		}
		h.fingers[1] = hoverFinger{id: ev.FingerID, x: ev.X, y: ev.Y}
		h.n = 2
		h.arm(s)
		s.trace(traceHover, "hover second finger", "finger", ev.FingerID)
	default:
		h.abort(s, "too many fingers")
	}
}

// arm (re)starts the longpress timer.
func (h *hoverState) arm(s *session) {
	h.longpressed = false
	h.stopTimer()
	h.timer = s.clock.AfterFunc(s.cfg.HoverLongpressTimeout, func() { h.expire(s) })
}

func (h *hoverState) stopTimer() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}

func (h *hoverState) expire(s *session) {
	h.timer = nil
	if h.state != stateOngoing {
		return
	}
	h.longpressed = true
	s.trace(traceHover, "hover longpressed", "fingers", h.n)
	if !h.begun && h.n == 1 {
		h.emit(s, PhaseBegin, s.now())
		h.begun = true
	}
}

func (h *hoverState) move(s *session, ev ContactEvent) {
	if h.state != stateOngoing || !h.longpressed {
		return
	}
	i := h.indexOf(ev.FingerID)
	if i < 0 {
		return
	}
	h.fingers[i].x, h.fingers[i].y = ev.X, ev.Y
	if h.n == 1 {
		h.emit(s, PhaseOngoing, ev.Timestamp)
	}
}

func (h *hoverState) up(s *session, ev ContactEvent) {
	if h.state == stateOngoing {
		if i := h.indexOf(ev.FingerID); i >= 0 {
			h.fingers[i].x, h.fingers[i].y = ev.X, ev.Y
			h.abort(s, "finger released")
		}
	}
	if s.pressed == 0 && h.state != stateNotStarted {
		s.trace(traceHover, "hover reset")
		h.reset()
	}
}

// abort cancels the longpress timer, closes an open hover with an end
// record, and waits for every finger to lift.
func (h *hoverState) abort(s *session, reason string) {
	h.stopTimer()
	if h.begun {
		h.emit(s, PhaseEnd, s.lastTime)
	}
	h.state = stateAborted
	s.trace(traceHover, "hover aborted", "reason", reason)
}

// reset cancels the timer and returns to the constructed state.
func (h *hoverState) reset() {
	h.stopTimer()
	*h = hoverState{}
}

func (h *hoverState) emit(s *session, phase Phase, t uint32) {
	if h.n != 1 {
		return
	}
	x, y := h.average()
	s.trace(traceHover, "hover "+phase.String())
	s.emit(Record{
		Type:   OneFingerHover,
		XBegin: x, YBegin: y,
		XEnd: x, YEnd: y,
		Phase:     phase,
		EventTime: t,
	})
}

// average returns the mean position of the tracked fingers.
func (h *hoverState) average() (int32, int32) {
	var sx, sy int64
	for i := 0; i < h.n; i++ {
		sx += int64(h.fingers[i].x)
		sy += int64(h.fingers[i].y)
	}
	n := int64(h.n)
	return int32(sx / n), int32(sy / n)
}
