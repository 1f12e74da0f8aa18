package outline

const UNREGISTERED = 0x0001
const REGISTERED = 0x0002
const IDLE = 0x0003
const BUSY = 0x0004

// Point is an integer pixel coordinate, origin top-left.
type Point struct {
	X, Y int
}

// Contour is an ordered closed polygon of pixel coordinates; the edge
// from the last point back to the first is implicit.
type Contour []Point
