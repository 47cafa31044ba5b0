package dragon

// Segment is the atomic unit of drawing work: a turn followed by a forward
// move, tagged with a stroke color. A curve is an ordered slice of segments.
// The order is significant; each segment's effect depends on the heading and
// position left behind by the segments before it.
type Segment struct {
	// Turn is the change in heading applied before moving. Positive turns
	// are counterclockwise.
	Turn Angle
	// Dist is the distance to move forward, in canvas units. Turn-only
	// segments have a distance of zero.
	Dist float64
	// Color is the stroke color of the move.
	Color Color
}

// subTurn is the fixed rotation, in degrees, between a subdivided segment and
// its two halves.
const subTurn = 45

// Dragon returns the ordered segment sequence of a Dragon curve.
//
// order bounds the recursion depth: order 0 yields a single straight segment
// and each increment doubles the number of leaf segments, giving 2ᵒʳᵈᵉʳ unit
// moves joined by turn-only segments, 2ᵒʳᵈᵉʳ⁺¹−1 segments in total. turn is
// the outer turn of the curve and is applied at the midpoint of every
// subdivision, unchanged through the recursion; the two halves of a
// subdivision are rotated by +45° and −45° respectively.
//
// The leaf colors sweep linearly from start to end along the path, by
// splitting the color range at its midpoint on every subdivision. The
// gradient is purely visual and has no effect on the geometry.
//
// Dragon is a pure function and has no failure modes over finite inputs.
func Dragon(turn Angle, order uint, start, end Color) []Segment {
	segs := make([]Segment, 0, segmentCap(order))
	return appendDragon(segs, turn, turn, order, start, end)
}

// segmentCap returns the total segment count 2ᵒʳᵈᵉʳ⁺¹−1 as a capacity hint,
// or 0 for orders whose count would overflow any practical slice size.
func segmentCap(order uint) int {
	if order >= 26 {
		return 0
	}
	return 1<<(order+1) - 1
}

// appendDragon appends one subdivision level to segs. outer is threaded
// through unchanged and emitted at every midpoint; turn is consumed by the
// leaf at the bottom of the subtree.
func appendDragon(segs []Segment, outer, turn Angle, order uint, start, end Color) []Segment {
	if order == 0 {
		return append(segs, Segment{Turn: turn, Dist: 1, Color: start})
	}

	mid := start.Lerp(end, 0.5)
	segs = appendDragon(segs, outer, Deg(subTurn), order-1, start, mid)
	segs = append(segs, Segment{Turn: outer, Color: mid})
	return appendDragon(segs, outer, Deg(-subTurn), order-1, mid, end)
}
