// Package window provides a desktop rendering backend for the turtle
// graphics in package dragon, backed by ebiten.
//
// A [Canvas] records the strokes issued by a turtle; [Canvas.Run] then opens
// a window and animates the recorded drawing at a rate derived from the
// turtle's categorical speed. The turtle drives the canvas strictly before
// Run is called, so no synchronization is needed between the command side and
// the event loop.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"honnef.co/go/dragon"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	strokeWidth   = 1.5
	cursorSize    = 6.0
)

// stroke is one visible pen move, in turtle coordinates (origin at the
// window center, y up).
type stroke struct {
	from  dragon.Point
	to    dragon.Point
	color dragon.Color
}

// Canvas implements [dragon.Canvas] on an ebiten desktop window. The zero
// value is not usable; use [New].
type Canvas struct {
	pos        dragon.Point
	heading    dragon.Angle
	pen        bool
	color      dragon.Color
	speed      dragon.Speed
	strokes    []stroke
	background dragon.Color
	title      string
	fullscreen bool
	hideCursor bool
}

var _ dragon.Canvas = (*Canvas)(nil)

// New returns an empty canvas with the pen down at the window center.
func New() *Canvas {
	return &Canvas{
		pen:        true,
		speed:      dragon.SpeedNormal,
		background: dragon.RGB(255, 255, 255),
		title:      "dragon",
	}
}

func (c *Canvas) SetBackground(col dragon.Color) { c.background = col }
func (c *Canvas) SetTitle(title string)          { c.title = title }
func (c *Canvas) EnterFullscreen()               { c.fullscreen = true }
func (c *Canvas) PenUp()                         { c.pen = false }
func (c *Canvas) PenDown()                       { c.pen = true }
func (c *Canvas) SetColor(col dragon.Color)      { c.color = col }
func (c *Canvas) SetSpeed(s dragon.Speed)        { c.speed = s }
func (c *Canvas) HideCursor()                    { c.hideCursor = true }
func (c *Canvas) Forward(dist float64)           { c.move(dist) }
func (c *Canvas) Backward(dist float64)          { c.move(-dist) }

func (c *Canvas) Right(a dragon.Angle) {
	c.heading = dragon.Deg(c.heading.Value() - a.ToDegrees().Value()).Normalized()
}

func (c *Canvas) Left(a dragon.Angle) {
	c.heading = dragon.Deg(c.heading.Value() + a.ToDegrees().Value()).Normalized()
}

func (c *Canvas) move(dist float64) {
	to := c.pos.Translate(dragon.VecFromAngle(c.heading).Mul(dist))
	if c.pen && dist != 0 {
		c.strokes = append(c.strokes, stroke{from: c.pos, to: to, color: c.color})
	}
	c.pos = to
}

// strokesPerTick maps the categorical speed to an animation rate. At 60
// ticks per second even "slowest" finishes small drawings in a few seconds.
func (c *Canvas) strokesPerTick() float64 {
	switch c.speed {
	case dragon.SpeedSlowest:
		return 0.25
	case dragon.SpeedSlow:
		return 1
	case dragon.SpeedNormal:
		return 4
	case dragon.SpeedFast:
		return 16
	case dragon.SpeedFaster:
		return 64
	case dragon.SpeedFastest:
		return 256
	default: // SpeedInstant
		return float64(len(c.strokes))
	}
}

// Run opens the window and animates the recorded drawing. It blocks until
// the window is closed and returns any error from the event loop; such
// errors are not recoverable and the caller is expected to abort.
func (c *Canvas) Run() error {
	g := &game{
		canvas: c,
		rate:   c.strokesPerTick(),
	}
	ebiten.SetWindowTitle(c.title)
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetFullscreen(c.fullscreen)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	canvas   *Canvas
	rate     float64
	revealed float64
}

func (g *game) Update() error {
	if g.revealed < float64(len(g.canvas.strokes)) {
		g.revealed += g.rate
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(g.canvas.background))

	n := min(int(g.revealed), len(g.canvas.strokes))
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, s := range g.canvas.strokes[:n] {
		x0, y0 := toScreen(s.from, w, h)
		x1, y1 := toScreen(s.to, w, h)
		vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth, rgba(s.color), true)
	}

	done := n == len(g.canvas.strokes)
	if !(done && g.canvas.hideCursor) {
		g.drawCursor(screen, n, w, h)
	}
}

// drawCursor marks the pen position at the animation front.
func (g *game) drawCursor(screen *ebiten.Image, n, w, h int) {
	pos := g.canvas.pos
	col := g.canvas.color
	if n > 0 && n <= len(g.canvas.strokes) {
		pos = g.canvas.strokes[n-1].to
		col = g.canvas.strokes[n-1].color
	}
	x, y := toScreen(pos, w, h)
	vector.DrawFilledCircle(screen, x, y, cursorSize/2, rgba(col), true)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// toScreen maps turtle coordinates (origin at the center, y up) to screen
// coordinates (origin at the top left, y down).
func toScreen(pt dragon.Point, w, h int) (float32, float32) {
	return float32(float64(w)/2 + pt.X), float32(float64(h)/2 - pt.Y)
}

func rgba(c dragon.Color) color.Color {
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: 0xFF,
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
