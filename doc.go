// Package dragon generates Dragon curve fractals and replays them through a
// turtle-graphics pen abstraction.
//
// # Components
//
// The package has three parts, in dependency order:
//
//   - [Angle], a plane angle tagged with its unit (degrees or radians), so
//     conversions are explicit and angles can be handed to any API without
//     guesswork. Angles parse from and format to the textual forms "45°" and
//     "0.785 rad.", and decompose into degrees, minutes, and seconds.
//   - [Dragon], the curve generator: a pure recursive function that emits the
//     ordered [Segment] sequence of a Dragon curve of a given order, with a
//     linear color gradient along the path.
//   - [Turtle], the executor: a stateful pen tracking position, heading, pen
//     state, speed, and color, which replays a segment sequence strictly in
//     order and forwards every primitive command to an injected [Canvas].
//
// The Canvas is the rendering collaborator. The package issues drawing
// instructions to it and never touches pixels itself; substituting a
// recording implementation makes the whole pipeline testable without a
// display. A desktop implementation backed by ebiten lives in the window
// subpackage.
//
// # The Dragon curve
//
// The Dragon curve is a self-similar fractal built by recursively replacing
// every segment with two halves at right angles, joined by a fixed outer
// turn. The recursion depth is called the order: order 0 is a single straight
// move, and every increment doubles the number of moves. Generation and
// execution are both single-threaded and synchronous; recursion depth equals
// the order, so stack usage is never a practical concern for drawable
// curves.
package dragon
