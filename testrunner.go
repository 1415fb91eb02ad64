package gesture

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrScript is wrapped by every failed script expectation.
var ErrScript = errors.New("gesture script failed")

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action  string  `json:"action"`
	Finger  int32   `json:"finger,omitempty"`
	Fingers int     `json:"fingers,omitempty"`
	X       int32   `json:"x,omitempty"`
	Y       int32   `json:"y,omitempty"`
	ToX     int32   `json:"toX,omitempty"`
	ToY     int32   `json:"toY,omitempty"`
	Path    []Point `json:"path,omitempty"`
	MS      int     `json:"ms,omitempty"`
	Steps   int     `json:"steps,omitempty"`
	Degrees int     `json:"degrees,omitempty"`
	Gesture string  `json:"gesture,omitempty"`
	Phase   string  `json:"phase,omitempty"`
}

// script is the top-level JSON structure of a gesture script.
type script struct {
	Name  string       `json:"name,omitempty"`
	Steps []scriptStep `json:"steps"`
}

// Runner replays a gesture script through an engine and checks the records
// it produces. Actions: down, move, up, tap, multitap, hold, flick, path,
// wait, rotate, expect and none.
type Runner struct {
	name  string
	steps []scriptStep
}

// LoadScript parses a JSON gesture script.
func LoadScript(data []byte) (*Runner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &Runner{name: sc.Name, steps: sc.Steps}, nil
}

// Name returns the script's name, if it has one.
func (r *Runner) Name() string { return r.name }

func (st scriptStep) validate() error {
	switch st.Action {
	case "down", "move", "up", "tap", "hold", "wait", "none":
	case "multitap", "flick", "path":
		if st.Fingers < 0 || st.Fingers > maxFingers {
			return fmt.Errorf("fingers must be 1-%d, got %d", maxFingers, st.Fingers)
		}
		if st.Action == "path" && len(st.Path) < 2 {
			return fmt.Errorf("path needs at least two points")
		}
	case "rotate":
		if _, err := RotationFromDegrees(st.Degrees); err != nil {
			return err
		}
	case "expect":
		if _, err := ParseType(st.Gesture); err != nil {
			return err
		}
		if st.Phase != "" {
			if _, err := ParsePhase(st.Phase); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Run executes the script against e, feeding events through src. It takes
// over e's registered callback for the duration of the run and returns every
// record produced, plus an ErrScript-wrapped error at the first failed
// expectation.
func (r *Runner) Run(e *Engine, src *InjectSource) ([]Record, error) {
	var records []Record
	e.Register(func(_ any, rec Record) { records = append(records, rec) }, nil)
	defer e.Register(nil, nil)

	cursor := 0
	for i, st := range r.steps {
		switch st.Action {
		case "down":
			src.Down(st.Finger, st.X, st.Y)
		case "move":
			src.Move(st.Finger, st.X, st.Y)
		case "up":
			src.Up(st.Finger, st.X, st.Y)
		case "tap":
			src.Tap(st.Finger, st.X, st.Y)
		case "multitap":
			src.MultiTap(fingersOrOne(st.Fingers), st.X, st.Y)
		case "hold":
			src.Hold(st.Finger, st.X, st.Y, time.Duration(st.MS)*time.Millisecond)
		case "flick":
			src.Flick(fingersOrOne(st.Fingers), st.X, st.Y, st.ToX, st.ToY,
				time.Duration(st.MS)*time.Millisecond, st.Steps)
		case "path":
			src.Path(fingersOrOne(st.Fingers), st.Path, time.Duration(st.MS)*time.Millisecond, st.Steps)
		case "wait":
			src.Wait(time.Duration(st.MS) * time.Millisecond)
		case "rotate":
			src.Drain()
			rot, _ := RotationFromDegrees(st.Degrees)
			e.SetRotation(rot)
		case "expect":
			src.Drain()
			want, _ := ParseType(st.Gesture)
			j := findRecord(records, cursor, want, st.Phase)
			if j < 0 {
				return records, fmt.Errorf("%w: step %d: no %s %s record after #%d",
					ErrScript, i, st.Gesture, st.Phase, cursor)
			}
			cursor = j + 1
		case "none":
			src.Drain()
			if len(records) > cursor {
				return records, fmt.Errorf("%w: step %d: unexpected record %s",
					ErrScript, i, records[cursor])
			}
		}
	}
	src.Drain()
	return records, nil
}

func fingersOrOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// findRecord returns the index of the first record at or after from with the
// given type and, if phase is non-empty, phase.
func findRecord(records []Record, from int, typ Type, phase string) int {
	for j := from; j < len(records); j++ {
		if records[j].Type != typ {
			continue
		}
		if phase != "" && records[j].Phase.String() != phase {
			continue
		}
		return j
	}
	return -1
}
