package gesture

import "fmt"

// Direction is the classified direction of a flick.
type Direction uint8

const (
	DirectionUndefined Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
	DirectionLeftReturn  // out to the left and back
	DirectionRightReturn // out to the right and back
	DirectionUpReturn    // out upward and back
	DirectionDownReturn  // out downward and back

	directionCount
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUndefined:
		return "undefined"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeftReturn:
		return "left-return"
	case DirectionRightReturn:
		return "right-return"
	case DirectionUpReturn:
		return "up-return"
	case DirectionDownReturn:
		return "down-return"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// IsReturn reports whether d is an out-and-return direction.
func (d Direction) IsReturn() bool {
	return d >= DirectionLeftReturn && d <= DirectionDownReturn
}

// opposite returns the return direction on the same axis with the other sign.
func (d Direction) opposite() Direction {
	switch d {
	case DirectionLeftReturn:
		return DirectionRightReturn
	case DirectionRightReturn:
		return DirectionLeftReturn
	case DirectionUpReturn:
		return DirectionDownReturn
	case DirectionDownReturn:
		return DirectionUpReturn
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	default:
		return DirectionUndefined
	}
}

// Rotation is the screen orientation the host reports, in quarter turns.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// RotationFromDegrees converts 0, 90, 180 or 270 (and their equivalents
// modulo 360) to a Rotation.
func RotationFromDegrees(deg int) (Rotation, error) {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	switch deg {
	case 0:
		return Rotation0, nil
	case 90:
		return Rotation90, nil
	case 180:
		return Rotation180, nil
	case 270:
		return Rotation270, nil
	default:
		return Rotation0, fmt.Errorf("unsupported rotation %d", deg)
	}
}

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int { return int(r%4) * 90 }

// Apply remaps a raw screen delta into the rotated frame so that direction
// semantics are orientation-invariant. At 90° a rightward raw delta reads as
// downward; at 270° it reads as upward.
func (r Rotation) Apply(dx, dy int32) (int32, int32) {
	switch r % 4 {
	case Rotation90:
		return -dy, dx
	case Rotation180:
		return -dx, -dy
	case Rotation270:
		return dy, -dx
	default:
		return dx, dy
	}
}

// ClassifyDirection maps the segment (x1,y1)->(x2,y2) under rotation r to one
// of up, down, left or right. Diagonals and zero-length segments are
// DirectionUndefined.
func ClassifyDirection(x1, y1, x2, y2 int32, r Rotation) Direction {
	dx, dy := r.Apply(x2-x1, y2-y1)
	switch {
	case dy < 0 && abs32(dx) < -dy:
		return DirectionUp
	case dy > 0 && abs32(dx) < dy:
		return DirectionDown
	case dx > 0 && dx > abs32(dy):
		return DirectionRight
	case dx < 0 && -dx > abs32(dy):
		return DirectionLeft
	default:
		return DirectionUndefined
	}
}

// withinRadius reports whether (x2,y2) lies within r pixels of (x1,y1).
func withinRadius(x1, y1, x2, y2 int32, r int) bool {
	dx := int64(x2) - int64(x1)
	dy := int64(y2) - int64(y1)
	return dx*dx+dy*dy <= int64(r)*int64(r)
}

// reaches reports whether the segment (x1,y1)->(x2,y2) is at least length
// pixels long.
func reaches(x1, y1, x2, y2 int32, length int) bool {
	dx := int64(x2) - int64(x1)
	dy := int64(y2) - int64(y1)
	return dx*dx+dy*dy >= int64(length)*int64(length)
}

// elapsed returns the milliseconds between two wrapping timestamps.
func elapsed(from, to uint32) uint32 { return to - from }

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
