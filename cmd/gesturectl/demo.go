package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/ebitensrc"
	"github.com/phanxgames/gesture/ecs"
)

const (
	markerSeconds = 0.6
	maxMarkers    = 32
	historyLines  = 12
)

func newDemoCmd(flags *globalFlags) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open a window that visualizes recognized gestures",
		Long: `Open a window and recognize gestures from touch input, or from the left
mouse button as a single finger. Press R to rotate the gesture frame by 90
degrees.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.load(cmd)
			if err != nil {
				return err
			}
			d, err := newDemo(cfg, logger, flags.debug)
			if err != nil {
				return err
			}
			defer shutdown(d.engine, logger)

			d.width, d.height = width, height
			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowTitle("gesturectl demo")
			return ebiten.RunGame(d)
		},
	}
	cmd.Flags().IntVar(&width, "width", 800, "window width")
	cmd.Flags().IntVar(&height, "height", 600, "window height")
	return cmd
}

// marker is a fading ring drawn where a gesture ended.
type marker struct {
	x, y   float32
	size   *gween.Tween
	alpha  *gween.Tween
	curS   float32
	curA   float32
	col    color.RGBA
	finish bool
}

// demo is the ebiten.Game showing recognized gestures.
type demo struct {
	engine   *gesture.Engine
	src      *ebitensrc.Source
	world    donburi.World
	rotation gesture.Rotation

	markers []*marker
	history []string
	hover   *gesture.Record

	width, height int
	pixel         *ebiten.Image
}

func newDemo(cfg gesture.Config, logger *slog.Logger, debug bool) (*demo, error) {
	clock := gesture.NewClock()
	src := ebitensrc.New(clock)
	engine, err := gesture.New(cfg,
		gesture.WithScheduler(clock),
		gesture.WithSource(src),
		gesture.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	engine.SetDebugMode(debug)

	d := &demo{
		engine: engine,
		src:    src,
		world:  donburi.NewWorld(),
		pixel:  ebiten.NewImage(1, 1),
	}
	d.pixel.Fill(color.White)
	engine.SetRecordStore(ecs.NewDonburiStore(d.world))
	ecs.GestureEventType.Subscribe(d.world, d.onRecord)
	return d, nil
}

// onRecord runs from events.ProcessAllEvents inside Update.
func (d *demo) onRecord(_ donburi.World, r gesture.Record) {
	if r.Type.IsHover() {
		if r.Phase == gesture.PhaseEnd {
			d.hover = nil
		} else {
			d.hover = &r
		}
	} else {
		d.addMarker(r)
	}
	d.history = append(d.history, r.String())
	if len(d.history) > historyLines {
		d.history = d.history[len(d.history)-historyLines:]
	}
}

func (d *demo) addMarker(r gesture.Record) {
	col := color.RGBA{R: 0x60, G: 0xd0, B: 0xff, A: 0xff}
	switch {
	case r.Type.IsTap():
		col = color.RGBA{R: 0xff, G: 0xa0, B: 0x40, A: 0xff}
	case r.Type.Direction().IsReturn():
		col = color.RGBA{R: 0xa0, G: 0xff, B: 0x70, A: 0xff}
	}
	if r.Phase == gesture.PhaseAbort {
		col = color.RGBA{R: 0xff, G: 0x50, B: 0x50, A: 0xff}
	}
	m := &marker{
		x:     float32(r.XEnd),
		y:     float32(r.YEnd),
		size:  gween.New(48, 8, markerSeconds, ease.OutCubic),
		alpha: gween.New(1, 0, markerSeconds, ease.InQuad),
		curS:  48,
		curA:  1,
		col:   col,
	}
	if len(d.markers) >= maxMarkers {
		d.markers = d.markers[1:]
	}
	d.markers = append(d.markers, m)
}

func (d *demo) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.rotation = (d.rotation + 1) % 4
		d.engine.SetRotation(d.rotation)
	}
	d.src.Update()
	events.ProcessAllEvents(d.world)

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	dt := float32(1) / float32(tps)
	live := d.markers[:0]
	for _, m := range d.markers {
		m.curS, m.finish = m.size.Update(dt)
		m.curA, _ = m.alpha.Update(dt)
		if !m.finish {
			live = append(live, m)
		}
	}
	d.markers = live
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x18, G: 0x18, B: 0x22, A: 0xff})
	for _, m := range d.markers {
		d.drawSquare(screen, m.x, m.y, m.curS, m.col, m.curA)
	}
	if d.hover != nil {
		d.drawSquare(screen, float32(d.hover.XEnd), float32(d.hover.YEnd), 24,
			color.RGBA{R: 0xff, G: 0xff, B: 0x80, A: 0xff}, 0.8)
	}

	status := fmt.Sprintf("rotation %d°  pressed %d  (R rotates)", d.rotation.Degrees(), d.engine.Pressed())
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
	for i, line := range d.history {
		ebitenutil.DebugPrintAt(screen, line, 8, 28+i*16)
	}
}

// drawSquare draws a filled square of side size centered on (x, y).
func (d *demo) drawSquare(screen *ebiten.Image, x, y, size float32, col color.RGBA, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size), float64(size))
	op.GeoM.Translate(float64(x-size/2), float64(y-size/2))
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(d.pixel, op)
}

func (d *demo) Layout(_, _ int) (int, int) {
	return d.width, d.height
}
