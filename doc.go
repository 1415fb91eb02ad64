// Package gesture is a multi-touch gesture recognition engine for
// [Ebitengine] games and other hosts that deliver raw per-finger contact
// events.
//
// Three independent recognizers watch the same contact stream: flick (one to
// three fingers swiping left, right, up or down, optionally out and back),
// hover (one finger resting past a longpress timeout, then moving) and tap
// (single, double or triple taps with one to three fingers). Every recognized
// transition is delivered as a [Record] to a single registered [Callback].
//
// # Quick start
//
//	clock := gesture.NewClock()
//	src := ebitensrc.New(clock)
//	engine, err := gesture.New(gesture.DefaultConfig(),
//		gesture.WithScheduler(clock),
//		gesture.WithSource(src))
//	if err != nil {
//		log.Fatal(err)
//	}
//	engine.Register(func(_ any, r gesture.Record) {
//		log.Println(r)
//	}, nil)
//
// then call src.Update() once per game tick.
//
// # Timing
//
// The recognizers arm timers (hover longpress, tap window) on a [Scheduler].
// The default [Clock] is advanced explicitly by the host loop, so timer
// callbacks run on the same goroutine as contact dispatch and replaying the
// same events always produces the same records. Event timestamps are
// milliseconds on the same time base.
//
// # Configuration
//
// [LoadConfig] layers [DefaultConfig], a YAML file and GESTURE_* environment
// variables:
//
//	flick_min_length: 100
//	flick_max_duration: 400ms
//	hover_longpress_timeout: 600ms
//	tap_timeout: 400ms
//	tap_radius: 36
//	flick_to_scroll_timeout: 200ms
//	flick_to_scroll_min_length: 50
//
// # Rotation
//
// [Engine.SetRotation] (or [WithRotationSource]) remaps flick directions so
// that a swipe toward the user's "right" is reported as right whatever the
// screen orientation. The rotation is latched when a gesture's first finger
// lands.
//
// # Flick-to-scroll
//
// When the second finger of a two-finger flick has been down longer than
// flick_to_scroll_timeout and moves beyond flick_to_scroll_min_length, the
// flick is abandoned and the midpoint of both fingers is streamed to the
// [ScrollSink] instead.
//
// # Testing
//
// [InjectSource] queues synthetic contacts (Tap, MultiTap, Flick, Path) against
// a Clock, and [Runner] replays JSON gesture scripts with expectations:
//
//	{"steps": [
//		{"action": "flick", "x": 100, "y": 300, "toX": 260, "toY": 300, "ms": 250},
//		{"action": "expect", "gesture": "ONE_FINGER_FLICK_RIGHT", "phase": "end"}
//	]}
//
// # ECS integration
//
// The ecs subpackage publishes every record into a Donburi world via
// [Engine.SetRecordStore].
//
// [Ebitengine]: https://ebitengine.org
package gesture
