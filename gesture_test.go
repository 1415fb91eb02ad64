package gesture

import "testing"

func TestTypeNamesRoundTrip(t *testing.T) {
	types := Types()
	if len(types) != 34 {
		t.Fatalf("Types() returned %d types, want 34", len(types))
	}
	seen := make(map[string]bool)
	for _, typ := range types {
		name := typ.String()
		if name == "" || seen[name] {
			t.Errorf("type %d has empty or duplicate name %q", typ, name)
		}
		seen[name] = true
		got, err := ParseType(name)
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", name, got, err)
		}
	}
}

func TestParseType_Unknown(t *testing.T) {
	for _, name := range []string{"", "UNDEFINED", "FOUR_FINGERS_SINGLE_TAP"} {
		if _, err := ParseType(name); err == nil {
			t.Errorf("ParseType(%q) succeeded", name)
		}
	}
}

func TestTypeProperties(t *testing.T) {
	tests := []struct {
		typ     Type
		fingers int
		taps    int
		dir     Direction
	}{
		{OneFingerHover, 1, 0, DirectionUndefined},
		{OneFingerFlickLeft, 1, 0, DirectionLeft},
		{TwoFingersFlickUp, 2, 0, DirectionUp},
		{ThreeFingersFlickDown, 3, 0, DirectionDown},
		{OneFingerFlickRightReturn, 1, 0, DirectionRightReturn},
		{TwoFingersFlickDownReturn, 2, 0, DirectionDownReturn},
		{ThreeFingersFlickLeftReturn, 3, 0, DirectionLeftReturn},
		{OneFingerSingleTap, 1, 1, DirectionUndefined},
		{TwoFingersTripleTap, 2, 3, DirectionUndefined},
		{ThreeFingersDoubleTap, 3, 2, DirectionUndefined},
		{TypeUndefined, 0, 0, DirectionUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.Fingers(); got != tt.fingers {
				t.Errorf("Fingers = %d, want %d", got, tt.fingers)
			}
			if got := tt.typ.Taps(); got != tt.taps {
				t.Errorf("Taps = %d, want %d", got, tt.taps)
			}
			if got := tt.typ.Direction(); got != tt.dir {
				t.Errorf("Direction = %s, want %s", got, tt.dir)
			}
		})
	}
}

func TestFlickTypeMatchesProperties(t *testing.T) {
	for fingers := 1; fingers <= 3; fingers++ {
		for dir := DirectionLeft; dir < directionCount; dir++ {
			typ := FlickType(fingers, dir)
			if !typ.IsFlick() || typ.Fingers() != fingers || typ.Direction() != dir {
				t.Errorf("FlickType(%d, %s) = %s", fingers, dir, typ)
			}
		}
	}
}

func TestTapTypeMatchesProperties(t *testing.T) {
	for fingers := 1; fingers <= 3; fingers++ {
		for taps := 1; taps <= 3; taps++ {
			typ := TapType(fingers, taps)
			if !typ.IsTap() || typ.Fingers() != fingers || typ.Taps() != taps {
				t.Errorf("TapType(%d, %d) = %s", fingers, taps, typ)
			}
		}
	}
}

func TestTypeLookupOutOfRange(t *testing.T) {
	cases := []Type{
		FlickType(0, DirectionLeft),
		FlickType(4, DirectionLeft),
		FlickType(1, DirectionUndefined),
		TapType(1, 0),
		TapType(1, 4),
		TapType(0, 1),
	}
	for i, typ := range cases {
		if typ != TypeUndefined {
			t.Errorf("case %d: got %s, want UNDEFINED", i, typ)
		}
	}
}

func TestParsePhase(t *testing.T) {
	for p := PhaseBegin; p <= PhaseAbort; p++ {
		got, err := ParsePhase(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePhase(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePhase("done"); err == nil {
		t.Error("ParsePhase accepted an unknown phase")
	}
}

func TestRecordString(t *testing.T) {
	r := Record{Type: OneFingerFlickUp, XBegin: 1, YBegin: 2, XEnd: 3, YEnd: 4, Phase: PhaseEnd, EventTime: 99}
	want := "ONE_FINGER_FLICK_UP end (1,2)->(3,4) t=99"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
