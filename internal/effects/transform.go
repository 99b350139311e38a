package effects

import "math"

// Rotate spins points around the origin. Angle is the fixed offset in
// radians; Speed adds Speed radians per second on top.
type Rotate struct {
	Angle float64
	Speed float64
}

// NewRotate creates a fixed rotation.
func NewRotate(angle float64) Rotate {
	return Rotate{Angle: angle}
}

// AnimatedRotate creates a rotation advancing at speed radians per second.
func AnimatedRotate(speed float64) Rotate {
	return Rotate{Speed: speed}
}

func (r Rotate) Apply(x, y, elapsed float64) (float64, float64) {
	a := r.Angle + r.Speed*elapsed
	sin, cos := math.Sincos(a)
	return x*cos - y*sin, x*sin + y*cos
}

func (r Rotate) Name() string { return "Rotate" }

// Scale multiplies coordinates per axis.
type Scale struct {
	X float64
	Y float64
}

// UniformScale scales both axes by the same factor.
func UniformScale(factor float64) Scale {
	return Scale{X: factor, Y: factor}
}

func (s Scale) Apply(x, y, _ float64) (float64, float64) {
	return x * s.X, y * s.Y
}

func (s Scale) Name() string { return "Scale" }

// Translate shifts points by a fixed offset.
type Translate struct {
	DX float64
	DY float64
}

func (t Translate) Apply(x, y, _ float64) (float64, float64) {
	return x + t.DX, y + t.DY
}

func (t Translate) Name() string { return "Translate" }

// Axis selects which axis a Mirror flips across.
type Axis int

const (
	AxisX Axis = iota // flip vertically: y negates
	AxisY             // flip horizontally: x negates
	AxisBoth
)

// Mirror reflects points across an axis through the origin.
type Mirror struct {
	Axis Axis
}

func (m Mirror) Apply(x, y, _ float64) (float64, float64) {
	switch m.Axis {
	case AxisX:
		return x, -y
	case AxisY:
		return -x, y
	default:
		return -x, -y
	}
}

func (m Mirror) Name() string { return "Mirror" }
