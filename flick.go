package gesture

// flickFinger tracks one contact of a flick.
type flickFinger struct {
	id       int32
	x0, y0   int32 // origin
	x1, y1   int32 // release point
	cx, cy   int32 // last seen position
	t0       uint32
	exited   bool      // moved beyond the minimum length at some point
	ret      Direction // tentative return direction, set on exit
	released bool
}

// flickState is the flick recognizer: NOT_STARTED -> ONGOING -> FINISHED or
// ABORTED -> NOT_STARTED once every finger is up. The zero value is the
// freshly constructed state.
type flickState struct {
	state   gestureState
	fingers [maxFingers]flickFinger
	n       int // fingers that joined
	left    int // joined fingers still down
	// dir is locked by the first validated release.
	dir      Direction
	rotation Rotation
	// scrolling is set once flick-to-scroll has armed.
	scrolling bool
}

func (f *flickState) indexOf(id int32) int {
	for i := 0; i < f.n; i++ {
		if f.fingers[i].id == id {
			return i
		}
	}
	return -1
}

func (f *flickState) down(s *session, ev ContactEvent) {
	switch f.state {
	case stateNotStarted:
		*f = flickState{
			state:    stateOngoing,
			n:        1,
			left:     1,
			rotation: s.currentRotation(),
		}
		f.fingers[0] = newFlickFinger(ev)
		s.trace(traceFlick, "flick started", "finger", ev.FingerID)
	case stateOngoing:
		if s.pressed > maxFingers || f.n >= maxFingers {
			f.abort(s, ev, "too many fingers")
			return
		}
		f.fingers[f.n] = newFlickFinger(ev)
		f.n++
		f.left++
		s.trace(traceFlick, "flick finger joined", "finger", ev.FingerID, "fingers", f.n)
	}
}

func newFlickFinger(ev ContactEvent) flickFinger {
	return flickFinger{
		id: ev.FingerID,
		x0: ev.X, y0: ev.Y,
		cx: ev.X, cy: ev.Y,
		t0: ev.Timestamp,
	}
}

func (f *flickState) move(s *session, ev ContactEvent) {
	if f.state != stateOngoing {
		return
	}
	i := f.indexOf(ev.FingerID)
	if i < 0 {
		return
	}
	fg := &f.fingers[i]
	fg.cx, fg.cy = ev.X, ev.Y

	if f.scrolling {
		x, y := f.midpoint()
		s.scroll.Scroll(x, y, ev.Timestamp)
		return
	}
	if fg.exited {
		return
	}

	// Scroll conversion wins when one move qualifies for both it and the
	// return-flick mark.
	if i == 1 && f.n == 2 && f.scrollArmed(s, fg, ev) {
		f.scrolling = true
		x, y := f.midpoint()
		s.scroll.BeginScroll(x, y, ev.Timestamp)
		s.trace(traceFlick, "flick converted to scroll", "finger", ev.FingerID)
		return
	}

	dx, dy := f.rotation.Apply(ev.X-fg.x0, ev.Y-fg.y0)
	limit := int32(s.cfg.FlickMinLength)
	var tentative Direction
	switch {
	case abs32(dx) > limit && dx > 0:
		tentative = DirectionRightReturn
	case abs32(dx) > limit:
		tentative = DirectionLeftReturn
	case abs32(dy) > limit && dy > 0:
		tentative = DirectionDownReturn
	case abs32(dy) > limit:
		tentative = DirectionUpReturn
	default:
		return
	}
	fg.exited = true
	fg.ret = tentative
	for j := 0; j < f.n; j++ {
		if j != i && f.fingers[j].ret == tentative.opposite() {
			f.abort(s, ev, "return direction conflict")
			return
		}
	}
}

// scrollArmed reports whether the second finger has moved far enough, late
// enough, to turn the flick into a scroll.
func (f *flickState) scrollArmed(s *session, fg *flickFinger, ev ContactEvent) bool {
	if Millis(elapsed(fg.t0, ev.Timestamp)) <= s.cfg.FlickToScrollTimeout {
		return false
	}
	return !withinRadius(fg.x0, fg.y0, ev.X, ev.Y, s.cfg.FlickToScrollMinLength)
}

func (f *flickState) up(s *session, ev ContactEvent) {
	if f.state == stateOngoing {
		f.release(s, ev)
	}
	if f.state != stateOngoing && f.state != stateNotStarted && s.pressed == 0 {
		s.trace(traceFlick, "flick reset")
		*f = flickState{}
	}
}

func (f *flickState) release(s *session, ev ContactEvent) {
	i := f.indexOf(ev.FingerID)
	if i < 0 {
		f.abort(s, ev, "unknown finger")
		return
	}
	fg := &f.fingers[i]
	fg.cx, fg.cy = ev.X, ev.Y
	if f.scrolling {
		f.abort(s, ev, "flick-to-scroll released")
		return
	}
	if fg.released {
		return
	}
	if elapsed(fg.t0, ev.Timestamp) > s.cfg.flickWindow() {
		f.abort(s, ev, "timeout")
		return
	}

	returned := false
	if !reaches(fg.x0, fg.y0, ev.X, ev.Y, s.cfg.FlickMinLength) {
		if !fg.exited {
			f.abort(s, ev, "too short")
			return
		}
		returned = true
	}

	// A full-length release overrides the finger's tentative return direction.
	dir := fg.ret
	if !returned {
		dir = ClassifyDirection(fg.x0, fg.y0, ev.X, ev.Y, f.rotation)
		if dir == DirectionUndefined {
			f.abort(s, ev, "no direction")
			return
		}
	}
	if f.dir == DirectionUndefined {
		f.dir = dir
	} else if dir != f.dir {
		f.abort(s, ev, "direction mismatch")
		return
	}

	fg.x1, fg.y1 = ev.X, ev.Y
	fg.released = true
	f.left--
	if f.left > 0 {
		return
	}

	typ := FlickType(f.n, f.dir)
	if typ == TypeUndefined {
		f.abort(s, ev, "no flick type")
		return
	}
	xb, yb, xe, ye := f.average()
	f.state = stateFinished
	s.trace(traceFlick, "flick finished", "type", typ.String())
	s.emit(Record{
		Type:   typ,
		XBegin: xb, YBegin: yb,
		XEnd: xe, YEnd: ye,
		Phase:     PhaseEnd,
		EventTime: ev.Timestamp,
	})
}

// abort abandons the flick. The state stays ABORTED until every finger is up.
func (f *flickState) abort(s *session, ev ContactEvent, reason string) {
	if f.scrolling {
		x, y := f.midpoint()
		s.scroll.EndScroll(x, y, ev.Timestamp)
		f.scrolling = false
	}
	f.state = stateAborted
	s.trace(traceFlick, "flick aborted", "reason", reason, "finger", ev.FingerID)
}

// cancel ends any scroll in flight and returns to the constructed state.
func (f *flickState) cancel(s *session) {
	if f.scrolling {
		x, y := f.midpoint()
		s.scroll.EndScroll(x, y, s.lastTime)
	}
	*f = flickState{}
}

// average returns the mean origin and release point across all fingers.
func (f *flickState) average() (xb, yb, xe, ye int32) {
	var sxb, syb, sxe, sye int64
	for i := 0; i < f.n; i++ {
		fg := &f.fingers[i]
		sxb += int64(fg.x0)
		syb += int64(fg.y0)
		sxe += int64(fg.x1)
		sye += int64(fg.y1)
	}
	n := int64(f.n)
	return int32(sxb / n), int32(syb / n), int32(sxe / n), int32(sye / n)
}

// midpoint returns the mean current position of the first two fingers.
func (f *flickState) midpoint() (int32, int32) {
	a, b := &f.fingers[0], &f.fingers[1]
	return int32((int64(a.cx) + int64(b.cx)) / 2), int32((int64(a.cy) + int64(b.cy)) / 2)
}
