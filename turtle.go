package dragon

import "fmt"

// Canvas is the rendering collaborator a [Turtle] issues drawing commands to.
// The turtle treats its Canvas as a blocking, synchronous command sink and
// calls it from a single goroutine, strictly in drawing order.
//
// Canvas implementations cannot report failure through these primitives; a
// backend that can fail (say, because no drawing surface could be created)
// should surface the error from whatever runs its event loop, where the
// program treats it as fatal.
type Canvas interface {
	// SetBackground sets the background color of the drawing surface.
	SetBackground(c Color)
	// SetTitle sets the title of the drawing surface.
	SetTitle(title string)
	// EnterFullscreen switches the drawing surface to fullscreen.
	EnterFullscreen()
	// PenUp lifts the pen; subsequent moves do not draw.
	PenUp()
	// PenDown lowers the pen; subsequent moves draw.
	PenDown()
	// SetColor sets the stroke color for subsequent moves.
	SetColor(c Color)
	// SetSpeed sets the drawing speed.
	SetSpeed(s Speed)
	// Forward moves the pen forward by dist canvas units.
	Forward(dist float64)
	// Backward moves the pen backward by dist canvas units.
	Backward(dist float64)
	// Right turns the pen clockwise by a.
	Right(a Angle)
	// Left turns the pen counterclockwise by a.
	Left(a Angle)
	// HideCursor hides the cursor indicator so that only the finished
	// drawing remains visible.
	HideCursor()
}

// Speed is a categorical drawing speed. Rendering backends map speeds to
// animation rates; [SpeedInstant] skips animation entirely.
type Speed int

const (
	SpeedSlowest Speed = iota
	SpeedSlow
	SpeedNormal
	SpeedFast
	SpeedFaster
	SpeedFastest
	SpeedInstant
)

func (s Speed) String() string {
	switch s {
	case SpeedSlowest:
		return "slowest"
	case SpeedSlow:
		return "slow"
	case SpeedNormal:
		return "normal"
	case SpeedFast:
		return "fast"
	case SpeedFaster:
		return "faster"
	case SpeedFastest:
		return "fastest"
	case SpeedInstant:
		return "instant"
	default:
		return fmt.Sprintf("Speed(%d)", int(s))
	}
}

// Turtle is a stateful pen tracking position, heading, pen state, speed, and
// stroke color, driven by relative turn and move commands. Every command
// updates the turtle's own state and is forwarded to its [Canvas]. A turtle
// owns its state exclusively for the duration of a drawing session; no other
// component reads or writes it.
//
// The zero heading points along the positive x axis and positive turns are
// counterclockwise (in a y-up coordinate system). The heading is kept
// normalized to [0°, 360°) at all times.
type Turtle struct {
	canvas  Canvas
	pos     Point
	heading Angle
	pen     bool
	speed   Speed
	color   Color
}

// NewTurtle returns a turtle at the origin, facing along the positive x
// axis, with the pen down, black stroke color, and normal speed.
func NewTurtle(c Canvas) *Turtle {
	return &Turtle{
		canvas:  c,
		heading: Deg(0),
		pen:     true,
		speed:   SpeedNormal,
	}
}

// Position returns the current pen position.
func (t *Turtle) Position() Point {
	return t.pos
}

// Heading returns the current facing direction, in degrees normalized to
// [0°, 360°).
func (t *Turtle) Heading() Angle {
	return t.heading
}

// Drawing reports whether the pen is down.
func (t *Turtle) Drawing() bool {
	return t.pen
}

// Color returns the current stroke color.
func (t *Turtle) Color() Color {
	return t.color
}

// Speed returns the current drawing speed.
func (t *Turtle) Speed() Speed {
	return t.speed
}

// PenUp lifts the pen: subsequent moves reposition without drawing.
func (t *Turtle) PenUp() {
	t.pen = false
	t.canvas.PenUp()
}

// PenDown lowers the pen: subsequent moves draw.
func (t *Turtle) PenDown() {
	t.pen = true
	t.canvas.PenDown()
}

// SetColor sets the stroke color for subsequent moves.
func (t *Turtle) SetColor(c Color) {
	t.color = c
	t.canvas.SetColor(c)
}

// SetSpeed sets the drawing speed.
func (t *Turtle) SetSpeed(s Speed) {
	t.speed = s
	t.canvas.SetSpeed(s)
}

// Left turns the turtle counterclockwise by a.
func (t *Turtle) Left(a Angle) {
	t.heading = Deg(t.heading.Value() + a.ToDegrees().Value()).Normalized()
	t.canvas.Left(a)
}

// Right turns the turtle clockwise by a.
func (t *Turtle) Right(a Angle) {
	t.heading = Deg(t.heading.Value() - a.ToDegrees().Value()).Normalized()
	t.canvas.Right(a)
}

// Turn turns the turtle by a relative delta: counterclockwise for positive
// a, clockwise for negative.
func (t *Turtle) Turn(a Angle) {
	if a.Value() < 0 {
		t.Right(a.Neg())
	} else {
		t.Left(a)
	}
}

// Forward moves the turtle forward by dist canvas units. The new position is
// the trigonometric projection of the current heading and distance. If the
// pen is down, the move leaves a visible stroke.
func (t *Turtle) Forward(dist float64) {
	t.pos = t.pos.Translate(VecFromAngle(t.heading).Mul(dist))
	t.canvas.Forward(dist)
}

// Backward moves the turtle backward by dist canvas units, without changing
// its heading.
func (t *Turtle) Backward(dist float64) {
	t.pos = t.pos.Translate(VecFromAngle(t.heading).Mul(-dist))
	t.canvas.Backward(dist)
}

// Hide hides the cursor indicator on the canvas.
func (t *Turtle) Hide() {
	t.canvas.HideCursor()
}

// Run replays segments strictly in sequence order. For each segment the
// turtle sets the stroke color, applies the turn to its heading, and moves
// forward by the segment's distance. Replay is inherently sequential and
// never reordered: each segment's effect depends on the cumulative heading
// and position left by all prior segments.
func (t *Turtle) Run(segs []Segment) {
	for _, seg := range segs {
		t.SetColor(seg.Color)
		t.Turn(seg.Turn)
		t.Forward(seg.Dist)
	}
}

// dragonStep is the on-canvas length of one leaf move of a dragon curve.
const dragonStep = 5.0

// DrawDragon draws a Dragon curve of the given order and outer turn on c,
// with leaf colors sweeping from start to end. Before drawing, the pen is
// lifted and offset so the finished curve lands roughly centered, then
// lowered, with the drawing speed raised above the default. Afterwards the
// cursor is hidden so only the finished curve remains visible.
func DrawDragon(c Canvas, turn Angle, order uint, start, end Color) {
	t := NewTurtle(c)

	t.PenUp()
	t.Backward(160)
	t.Right(Deg(90))
	t.Forward(110)
	t.PenDown()
	t.SetSpeed(SpeedFaster)

	segs := Dragon(turn, order, start, end)
	for i := range segs {
		segs[i].Dist *= dragonStep
	}
	t.Run(segs)

	t.Hide()
}
