package dragon

import (
	"fmt"
	"math"
	"testing"
)

// recordingCanvas captures the command stream issued by a turtle so tests
// can assert on ordering without a display.
type recordingCanvas struct {
	commands []string
}

var _ Canvas = (*recordingCanvas)(nil)

func (r *recordingCanvas) record(format string, args ...any) {
	r.commands = append(r.commands, fmt.Sprintf(format, args...))
}

func (r *recordingCanvas) SetBackground(c Color)  { r.record("background %v", c) }
func (r *recordingCanvas) SetTitle(title string)  { r.record("title %q", title) }
func (r *recordingCanvas) EnterFullscreen()       { r.record("fullscreen") }
func (r *recordingCanvas) PenUp()                 { r.record("pen up") }
func (r *recordingCanvas) PenDown()               { r.record("pen down") }
func (r *recordingCanvas) SetColor(c Color)       { r.record("color %v", c) }
func (r *recordingCanvas) SetSpeed(s Speed)       { r.record("speed %v", s) }
func (r *recordingCanvas) Forward(dist float64)   { r.record("forward %v", dist) }
func (r *recordingCanvas) Backward(dist float64)  { r.record("backward %v", dist) }
func (r *recordingCanvas) Right(a Angle)          { r.record("right %v", a) }
func (r *recordingCanvas) Left(a Angle)           { r.record("left %v", a) }
func (r *recordingCanvas) HideCursor()            { r.record("hide") }

func TestTurtleState(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-9
	}

	tu := NewTurtle(&recordingCanvas{})
	if !tu.Drawing() {
		t.Error("expected the pen to start down")
	}
	if got := tu.Heading(); got != Deg(0) {
		t.Errorf("got initial heading %v, expected 0°", got)
	}

	tu.Forward(10)
	if got := tu.Position(); !approxEqual(got.X, 10) || !approxEqual(got.Y, 0) {
		t.Errorf("got position %v, expected (10, 0)", got)
	}

	tu.Left(Deg(90))
	if got := tu.Heading(); got != Deg(90) {
		t.Errorf("got heading %v, expected 90°", got)
	}
	tu.Forward(5)
	if got := tu.Position(); !approxEqual(got.X, 10) || !approxEqual(got.Y, 5) {
		t.Errorf("got position %v, expected (10, 5)", got)
	}

	tu.Backward(5)
	if got := tu.Position(); !approxEqual(got.X, 10) || !approxEqual(got.Y, 0) {
		t.Errorf("got position %v, expected (10, 0)", got)
	}
	if got := tu.Heading(); got != Deg(90) {
		t.Errorf("got heading %v after backward move, expected 90°", got)
	}

	// Moves at a diagonal heading project trigonometrically.
	tu = NewTurtle(&recordingCanvas{})
	tu.Left(Deg(45))
	tu.Forward(math.Sqrt2)
	if got := tu.Position(); !approxEqual(got.X, 1) || !approxEqual(got.Y, 1) {
		t.Errorf("got position %v, expected (1, 1)", got)
	}
}

func TestTurtleHeadingNormalized(t *testing.T) {
	tu := NewTurtle(&recordingCanvas{})

	tu.Right(Deg(90))
	if got := tu.Heading(); got != Deg(270) {
		t.Errorf("got heading %v, expected 270°", got)
	}

	tu.Left(Deg(450))
	if got := tu.Heading(); got != Deg(0) {
		t.Errorf("got heading %v, expected 0°", got)
	}

	// Radian turns are folded into the same degree representation.
	tu.Left(Rad(math.Pi / 2))
	if got := tu.Heading(); math.Abs(got.Value()-90) > 1e-9 || !got.IsDegrees() {
		t.Errorf("got heading %v, expected 90°", got)
	}
}

func TestTurtleTurnSign(t *testing.T) {
	rec := &recordingCanvas{}
	tu := NewTurtle(rec)

	tu.Turn(Deg(45))
	tu.Turn(Deg(-90))

	want := []string{"left 45°", "right 90°"}
	diff(t, want, rec.commands)

	if got := tu.Heading(); got != Deg(315) {
		t.Errorf("got heading %v, expected 315°", got)
	}
}

func TestTurtleRunOrdering(t *testing.T) {
	rec := &recordingCanvas{}
	tu := NewTurtle(rec)

	segs := []Segment{
		{Turn: Deg(45), Dist: 1, Color: RGB(0, 0, 0)},
		{Turn: Deg(-90), Dist: 0, Color: RGB(128, 0, 128)},
		{Turn: Deg(-45), Dist: 1, Color: RGB(128, 0, 128)},
	}
	tu.Run(segs)

	want := []string{
		"color #000000",
		"left 45°",
		"forward 1",
		"color #800080",
		"right 90°",
		"forward 0",
		"color #800080",
		"right 45°",
		"forward 1",
	}
	diff(t, want, rec.commands)
}

// TestTurtleRunEndpoint replays an order 1 curve and checks the pen lands
// where the cumulative turns and unit moves put it: the first move at 45°,
// the second at 45°−90°−45° = −90°.
func TestTurtleRunEndpoint(t *testing.T) {
	tu := NewTurtle(&recordingCanvas{})
	tu.Run(Dragon(Deg(-90), 1, RGB(0, 0, 0), RGB(255, 0, 255)))

	want := Pt(math.Sqrt2/2, math.Sqrt2/2-1)
	if got := tu.Position(); got.Distance(want) > 1e-9 {
		t.Errorf("got end position %v, expected %v", got, want)
	}
}

func TestDrawDragonProtocol(t *testing.T) {
	rec := &recordingCanvas{}
	DrawDragon(rec, Deg(-90), 2, RGB(0, 0, 0), RGB(255, 0, 255))

	setup := []string{
		"pen up",
		"backward 160",
		"right 90°",
		"forward 110",
		"pen down",
		"speed faster",
	}
	diff(t, setup, rec.commands[:len(setup)])

	if got, want := rec.commands[len(rec.commands)-1], "hide"; got != want {
		t.Errorf("got final command %q, expected %q", got, want)
	}

	// Three commands per segment between setup and teardown.
	segments := 1<<3 - 1
	if got, want := len(rec.commands), len(setup)+3*segments+1; got != want {
		t.Errorf("got %d commands, expected %d", got, want)
	}
}
