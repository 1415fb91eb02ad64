package gesture

import "fmt"

// maxFingers is the number of simultaneous contacts the recognizers track.
const maxFingers = 3

// ContactKind identifies a raw contact transition.
type ContactKind uint8

const (
	ContactDown ContactKind = iota // finger touched the screen
	ContactMove                    // finger moved while down
	ContactUp                      // finger left the screen
)

// String returns the lower-case name of the kind.
func (k ContactKind) String() string {
	switch k {
	case ContactDown:
		return "down"
	case ContactMove:
		return "move"
	case ContactUp:
		return "up"
	default:
		return fmt.Sprintf("ContactKind(%d)", uint8(k))
	}
}

// ContactEvent is one raw per-finger event delivered by an input source.
// Timestamp is a monotonic millisecond counter; wraparound is tolerated.
type ContactEvent struct {
	Kind      ContactKind
	FingerID  int32
	X, Y      int32
	Timestamp uint32
}

// Phase marks where in its lifecycle a gesture record sits.
type Phase uint8

const (
	PhaseBegin   Phase = iota // hover armed
	PhaseOngoing              // hover position update
	PhaseEnd                  // gesture completed
	PhaseAbort                // gesture abandoned after partial recognition
)

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseOngoing:
		return "ongoing"
	case PhaseEnd:
		return "end"
	case PhaseAbort:
		return "abort"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, error) {
	for p := PhaseBegin; p <= PhaseAbort; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

// Type is the closed catalogue of recognizable gestures.
type Type uint8

const (
	TypeUndefined Type = iota

	OneFingerHover

	OneFingerFlickLeft
	OneFingerFlickRight
	OneFingerFlickUp
	OneFingerFlickDown
	TwoFingersFlickLeft
	TwoFingersFlickRight
	TwoFingersFlickUp
	TwoFingersFlickDown
	ThreeFingersFlickLeft
	ThreeFingersFlickRight
	ThreeFingersFlickUp
	ThreeFingersFlickDown

	OneFingerFlickLeftReturn
	OneFingerFlickRightReturn
	OneFingerFlickUpReturn
	OneFingerFlickDownReturn
	TwoFingersFlickLeftReturn
	TwoFingersFlickRightReturn
	TwoFingersFlickUpReturn
	TwoFingersFlickDownReturn
	ThreeFingersFlickLeftReturn
	ThreeFingersFlickRightReturn
	ThreeFingersFlickUpReturn
	ThreeFingersFlickDownReturn

	OneFingerSingleTap
	OneFingerDoubleTap
	OneFingerTripleTap
	TwoFingersSingleTap
	TwoFingersDoubleTap
	TwoFingersTripleTap
	ThreeFingersSingleTap
	ThreeFingersDoubleTap
	ThreeFingersTripleTap

	typeCount
)

var typeNames = [typeCount]string{
	TypeUndefined:                "UNDEFINED",
	OneFingerHover:               "ONE_FINGER_HOVER",
	OneFingerFlickLeft:           "ONE_FINGER_FLICK_LEFT",
	OneFingerFlickRight:          "ONE_FINGER_FLICK_RIGHT",
	OneFingerFlickUp:             "ONE_FINGER_FLICK_UP",
	OneFingerFlickDown:           "ONE_FINGER_FLICK_DOWN",
	TwoFingersFlickLeft:          "TWO_FINGERS_FLICK_LEFT",
	TwoFingersFlickRight:         "TWO_FINGERS_FLICK_RIGHT",
	TwoFingersFlickUp:            "TWO_FINGERS_FLICK_UP",
	TwoFingersFlickDown:          "TWO_FINGERS_FLICK_DOWN",
	ThreeFingersFlickLeft:        "THREE_FINGERS_FLICK_LEFT",
	ThreeFingersFlickRight:       "THREE_FINGERS_FLICK_RIGHT",
	ThreeFingersFlickUp:          "THREE_FINGERS_FLICK_UP",
	ThreeFingersFlickDown:        "THREE_FINGERS_FLICK_DOWN",
	OneFingerFlickLeftReturn:     "ONE_FINGER_FLICK_LEFT_RETURN",
	OneFingerFlickRightReturn:    "ONE_FINGER_FLICK_RIGHT_RETURN",
	OneFingerFlickUpReturn:       "ONE_FINGER_FLICK_UP_RETURN",
	OneFingerFlickDownReturn:     "ONE_FINGER_FLICK_DOWN_RETURN",
	TwoFingersFlickLeftReturn:    "TWO_FINGERS_FLICK_LEFT_RETURN",
	TwoFingersFlickRightReturn:   "TWO_FINGERS_FLICK_RIGHT_RETURN",
	TwoFingersFlickUpReturn:      "TWO_FINGERS_FLICK_UP_RETURN",
	TwoFingersFlickDownReturn:    "TWO_FINGERS_FLICK_DOWN_RETURN",
	ThreeFingersFlickLeftReturn:  "THREE_FINGERS_FLICK_LEFT_RETURN",
	ThreeFingersFlickRightReturn: "THREE_FINGERS_FLICK_RIGHT_RETURN",
	ThreeFingersFlickUpReturn:    "THREE_FINGERS_FLICK_UP_RETURN",
	ThreeFingersFlickDownReturn:  "THREE_FINGERS_FLICK_DOWN_RETURN",
	OneFingerSingleTap:           "ONE_FINGER_SINGLE_TAP",
	OneFingerDoubleTap:           "ONE_FINGER_DOUBLE_TAP",
	OneFingerTripleTap:           "ONE_FINGER_TRIPLE_TAP",
	TwoFingersSingleTap:          "TWO_FINGERS_SINGLE_TAP",
	TwoFingersDoubleTap:          "TWO_FINGERS_DOUBLE_TAP",
	TwoFingersTripleTap:          "TWO_FINGERS_TRIPLE_TAP",
	ThreeFingersSingleTap:        "THREE_FINGERS_SINGLE_TAP",
	ThreeFingersDoubleTap:        "THREE_FINGERS_DOUBLE_TAP",
	ThreeFingersTripleTap:        "THREE_FINGERS_TRIPLE_TAP",
}

// String returns the catalogue name, e.g. "TWO_FINGERS_FLICK_LEFT_RETURN".
func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType is the inverse of Type.String.
func ParseType(name string) (Type, error) {
	for t := OneFingerHover; t < typeCount; t++ {
		if typeNames[t] == name {
			return t, nil
		}
	}
	return TypeUndefined, fmt.Errorf("unknown gesture type %q", name)
}

// Types returns every defined gesture type in catalogue order.
func Types() []Type {
	out := make([]Type, 0, typeCount-1)
	for t := OneFingerHover; t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// flickTypes maps finger count (1-3) and direction to a flick type.
var flickTypes = [maxFingers][directionCount]Type{
	{
		DirectionLeft:        OneFingerFlickLeft,
		DirectionRight:       OneFingerFlickRight,
		DirectionUp:          OneFingerFlickUp,
		DirectionDown:        OneFingerFlickDown,
		DirectionLeftReturn:  OneFingerFlickLeftReturn,
		DirectionRightReturn: OneFingerFlickRightReturn,
		DirectionUpReturn:    OneFingerFlickUpReturn,
		DirectionDownReturn:  OneFingerFlickDownReturn,
	},
	{
		DirectionLeft:        TwoFingersFlickLeft,
		DirectionRight:       TwoFingersFlickRight,
		DirectionUp:          TwoFingersFlickUp,
		DirectionDown:        TwoFingersFlickDown,
		DirectionLeftReturn:  TwoFingersFlickLeftReturn,
		DirectionRightReturn: TwoFingersFlickRightReturn,
		DirectionUpReturn:    TwoFingersFlickUpReturn,
		DirectionDownReturn:  TwoFingersFlickDownReturn,
	},
	{
		DirectionLeft:        ThreeFingersFlickLeft,
		DirectionRight:       ThreeFingersFlickRight,
		DirectionUp:          ThreeFingersFlickUp,
		DirectionDown:        ThreeFingersFlickDown,
		DirectionLeftReturn:  ThreeFingersFlickLeftReturn,
		DirectionRightReturn: ThreeFingersFlickRightReturn,
		DirectionUpReturn:    ThreeFingersFlickUpReturn,
		DirectionDownReturn:  ThreeFingersFlickDownReturn,
	},
}

// tapTypes maps finger count (1-3) and tap count (1-3) to a tap type.
var tapTypes = [maxFingers][3]Type{
	{OneFingerSingleTap, OneFingerDoubleTap, OneFingerTripleTap},
	{TwoFingersSingleTap, TwoFingersDoubleTap, TwoFingersTripleTap},
	{ThreeFingersSingleTap, ThreeFingersDoubleTap, ThreeFingersTripleTap},
}

// FlickType returns the flick gesture for the finger count and direction.
// It returns TypeUndefined when either is out of range.
func FlickType(fingers int, dir Direction) Type {
	if fingers < 1 || fingers > maxFingers || dir == DirectionUndefined || dir >= directionCount {
		return TypeUndefined
	}
	return flickTypes[fingers-1][dir]
}

// TapType returns the tap gesture for the finger and tap counts.
// It returns TypeUndefined when either is out of range.
func TapType(fingers, taps int) Type {
	if fingers < 1 || fingers > maxFingers || taps < 1 || taps > 3 {
		return TypeUndefined
	}
	return tapTypes[fingers-1][taps-1]
}

// IsHover reports whether t is the hover gesture.
func (t Type) IsHover() bool { return t == OneFingerHover }

// IsFlick reports whether t is a flick, plain or return.
func (t Type) IsFlick() bool { return t >= OneFingerFlickLeft && t <= ThreeFingersFlickDownReturn }

// IsTap reports whether t is a tap sequence.
func (t Type) IsTap() bool { return t >= OneFingerSingleTap && t <= ThreeFingersTripleTap }

// Fingers returns the number of fingers the gesture involves, or 0 for
// TypeUndefined.
func (t Type) Fingers() int {
	switch {
	case t.IsHover():
		return 1
	case t >= OneFingerFlickLeft && t <= ThreeFingersFlickDown:
		return int(t-OneFingerFlickLeft)/4 + 1
	case t >= OneFingerFlickLeftReturn && t <= ThreeFingersFlickDownReturn:
		return int(t-OneFingerFlickLeftReturn)/4 + 1
	case t.IsTap():
		return int(t-OneFingerSingleTap)/3 + 1
	default:
		return 0
	}
}

// Taps returns the tap count of a tap gesture, or 0 for other types.
func (t Type) Taps() int {
	if !t.IsTap() {
		return 0
	}
	return int(t-OneFingerSingleTap)%3 + 1
}

// Direction returns the flick direction of a flick gesture, or
// DirectionUndefined for other types.
func (t Type) Direction() Direction {
	switch {
	case t >= OneFingerFlickLeft && t <= ThreeFingersFlickDown:
		return [4]Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown}[(t-OneFingerFlickLeft)%4]
	case t >= OneFingerFlickLeftReturn && t <= ThreeFingersFlickDownReturn:
		return [4]Direction{DirectionLeftReturn, DirectionRightReturn, DirectionUpReturn, DirectionDownReturn}[(t-OneFingerFlickLeftReturn)%4]
	default:
		return DirectionUndefined
	}
}

// Record is one recognized gesture transition handed to the consumer.
// Records are not retained by the engine after dispatch. Positions are raw
// screen coordinates; rotation only affects how directions are classified.
type Record struct {
	Type      Type
	XBegin    int32
	YBegin    int32
	XEnd      int32
	YEnd      int32
	Phase     Phase
	EventTime uint32
}

// String formats the record for logs and the replay command.
func (r Record) String() string {
	return fmt.Sprintf("%s %s (%d,%d)->(%d,%d) t=%d",
		r.Type, r.Phase, r.XBegin, r.YBegin, r.XEnd, r.YEnd, r.EventTime)
}

// Callback receives every record synchronously from the dispatch path.
// userData is the value passed to Engine.Register.
type Callback func(userData any, r Record)

// RecordStore is the interface for optional ECS integration. When set on an
// Engine, every record is forwarded after the registered callback runs.
type RecordStore interface {
	EmitRecord(r Record)
}
