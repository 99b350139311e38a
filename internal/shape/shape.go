// Package shape defines the parametric shape contract used by the
// synthesis engine and the primitives that implement it.
//
// A shape maps a normalized time parameter t in [0,1) to an XY point in
// display coordinates (conventionally [-1,1] on both axes). Sample must
// be a pure function of t and the shape's own immutable state: no
// mutation, no allocation, safe to call from the audio goroutine while
// other goroutines hold references to the same shape.
package shape

import (
	"errors"
	"math"
	"sort"
)

// Shape is the capability contract for anything drawable on the scope.
type Shape interface {
	// Sample returns the point at parameter t in [0,1). Out-of-range t
	// is wrapped or clamped, never rejected: the audio goroutine cannot
	// handle an error mid-frame.
	Sample(t float64) (x, y float64)

	// Name identifies the shape for display purposes.
	Name() string

	// Length is the approximate path length, used by callers to pick a
	// sampling density. Simple shapes may return 1.
	Length() float64

	// Closed reports whether the end of the path connects to the start.
	Closed() bool
}

// Point is a 2D vertex.
type Point struct {
	X float64
	Y float64
}

// wrap maps any t onto [0,1).
func wrap(t float64) float64 {
	t -= math.Floor(t)
	if t < 0 || t >= 1 {
		return 0
	}
	return t
}

// Circle is a circle centered at (CX, CY).
type Circle struct {
	CX     float64
	CY     float64
	Radius float64
}

// NewCircle creates a circle at the origin.
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius}
}

// CircleAt creates a circle at a specific center.
func CircleAt(cx, cy, radius float64) Circle {
	return Circle{CX: cx, CY: cy, Radius: radius}
}

func (c Circle) Sample(t float64) (float64, float64) {
	a := wrap(t) * 2 * math.Pi
	return c.CX + c.Radius*math.Cos(a), c.CY + c.Radius*math.Sin(a)
}

func (c Circle) Name() string    { return "Circle" }
func (c Circle) Length() float64 { return 2 * math.Pi * c.Radius }
func (c Circle) Closed() bool    { return true }

// Line is a segment from (X1,Y1) to (X2,Y2). Lines are open: t is
// clamped rather than wrapped so the endpoints stay distinct.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// NewLine creates a line between two endpoints.
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Horizontal creates a horizontal line at height y.
func Horizontal(y, xStart, xEnd float64) Line {
	return NewLine(xStart, y, xEnd, y)
}

// Vertical creates a vertical line at position x.
func Vertical(x, yStart, yEnd float64) Line {
	return NewLine(x, yStart, x, yEnd)
}

func (l Line) Sample(t float64) (float64, float64) {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return l.X1 + t*(l.X2-l.X1), l.Y1 + t*(l.Y2-l.Y1)
}

func (l Line) Name() string { return "Line" }

func (l Line) Length() float64 {
	return math.Hypot(l.X2-l.X1, l.Y2-l.Y1)
}

func (l Line) Closed() bool { return false }

// Polygon connects a list of vertices in order, closing back to the
// first. Sampling is uniform in arc length: equal steps of t travel
// equal distances along the perimeter regardless of edge-length
// variance, unlike naive uniform-t sampling which over-samples long
// edges and under-samples short ones.
type Polygon struct {
	vertices []Point
	cum      []float64 // cum[i] = perimeter length through edge i
	total    float64
	name     string
}

var errTooFewVertices = errors.New("polygon requires at least 3 vertices")

// NewPolygon creates a polygon from vertices in drawing order.
func NewPolygon(vertices []Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, errTooFewVertices
	}
	n := len(vertices)
	cum := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		total += math.Hypot(b.X-a.X, b.Y-a.Y)
		cum[i] = total
	}
	return &Polygon{
		vertices: append([]Point(nil), vertices...),
		cum:      cum,
		total:    total,
		name:     "Polygon",
	}, nil
}

// Regular creates a regular n-gon with the first vertex at the top.
func Regular(n int, radius float64) (*Polygon, error) {
	if n < 3 {
		return nil, errTooFewVertices
	}
	vertices := make([]Point, n)
	for i := range vertices {
		a := -math.Pi/2 + float64(i)/float64(n)*2*math.Pi
		vertices[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	p, err := NewPolygon(vertices)
	if err != nil {
		return nil, err
	}
	switch n {
	case 3:
		p.name = "Triangle"
	case 5:
		p.name = "Pentagon"
	case 6:
		p.name = "Hexagon"
	}
	return p, nil
}

// Star creates an n-pointed star alternating between two radii.
func Star(n int, outer, inner float64) (*Polygon, error) {
	if n < 3 {
		return nil, errors.New("star requires at least 3 points")
	}
	total := n * 2
	vertices := make([]Point, total)
	for i := range vertices {
		a := -math.Pi/2 + float64(i)/float64(total)*2*math.Pi
		r := outer
		if i%2 == 1 {
			r = inner
		}
		vertices[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	p, err := NewPolygon(vertices)
	if err != nil {
		return nil, err
	}
	p.name = "Star"
	return p, nil
}

func (p *Polygon) Sample(t float64) (float64, float64) {
	if p.total == 0 {
		return p.vertices[0].X, p.vertices[0].Y
	}
	target := wrap(t) * p.total
	// First edge whose cumulative length reaches the target distance.
	i := sort.SearchFloat64s(p.cum, target)
	if i >= len(p.cum) {
		i = len(p.cum) - 1
	}
	prev := 0.0
	if i > 0 {
		prev = p.cum[i-1]
	}
	edge := p.cum[i] - prev
	local := 0.0
	if edge > 0 {
		local = (target - prev) / edge
	}
	a := p.vertices[i]
	b := p.vertices[(i+1)%len(p.vertices)]
	return a.X + local*(b.X-a.X), a.Y + local*(b.Y-a.Y)
}

func (p *Polygon) Name() string    { return p.name }
func (p *Polygon) Length() float64 { return p.total }
func (p *Polygon) Closed() bool    { return true }

// Rect is an axis-aligned rectangle centered at (CX, CY), traced
// clockwise from the top-left corner with uniform arc-length sampling.
type Rect struct {
	CX         float64
	CY         float64
	HalfWidth  float64
	HalfHeight float64
}

// NewRect creates a rectangle at the origin.
func NewRect(width, height float64) Rect {
	return Rect{HalfWidth: width / 2, HalfHeight: height / 2}
}

// Square creates a square at the origin.
func Square(size float64) Rect {
	return NewRect(size, size)
}

// RectAt creates a rectangle at a specific center.
func RectAt(cx, cy, width, height float64) Rect {
	return Rect{CX: cx, CY: cy, HalfWidth: width / 2, HalfHeight: height / 2}
}

func (r Rect) corners() [4]Point {
	return [4]Point{
		{r.CX - r.HalfWidth, r.CY + r.HalfHeight}, // top-left
		{r.CX + r.HalfWidth, r.CY + r.HalfHeight}, // top-right
		{r.CX + r.HalfWidth, r.CY - r.HalfHeight}, // bottom-right
		{r.CX - r.HalfWidth, r.CY - r.HalfHeight}, // bottom-left
	}
}

func (r Rect) Sample(t float64) (float64, float64) {
	w := 2 * r.HalfWidth
	h := 2 * r.HalfHeight
	per := 2 * (w + h)
	if per == 0 {
		return r.CX, r.CY
	}
	target := wrap(t) * per
	corners := r.corners()
	edges := [4]float64{w, h, w, h}
	for i, edge := range edges {
		if target <= edge || i == 3 {
			local := 0.0
			if edge > 0 {
				local = target / edge
				if local > 1 {
					local = 1
				}
			}
			a := corners[i]
			b := corners[(i+1)%4]
			return a.X + local*(b.X-a.X), a.Y + local*(b.Y-a.Y)
		}
		target -= edge
	}
	return r.CX, r.CY
}

func (r Rect) Name() string    { return "Rectangle" }
func (r Rect) Length() float64 { return 4 * (r.HalfWidth + r.HalfHeight) }
func (r Rect) Closed() bool    { return true }

// Lissajous is the classic scope figure x = sin(2πAt + δ), y = sin(2πBt),
// scaled by Amp. A and B are integer frequency ratios so the curve
// closes over one period of t.
type Lissajous struct {
	A     int
	B     int
	Delta float64
	Amp   float64
	arc   float64
}

// NewLissajous creates a Lissajous figure. The path length is
// approximated once at construction by piecewise-linear integration.
func NewLissajous(a, b int, delta, amp float64) *Lissajous {
	if a < 1 {
		a = 1
	}
	if b < 1 {
		b = 1
	}
	l := &Lissajous{A: a, B: b, Delta: delta, Amp: amp}
	const segments = 512
	px, py := l.Sample(0)
	arc := 0.0
	for i := 1; i <= segments; i++ {
		x, y := l.Sample(float64(i) / segments)
		arc += math.Hypot(x-px, y-py)
		px, py = x, y
	}
	l.arc = arc
	return l
}

func (l *Lissajous) Sample(t float64) (float64, float64) {
	t = wrap(t)
	x := l.Amp * math.Sin(2*math.Pi*float64(l.A)*t+l.Delta)
	y := l.Amp * math.Sin(2*math.Pi*float64(l.B)*t)
	return x, y
}

func (l *Lissajous) Name() string { return "Lissajous" }

func (l *Lissajous) Length() float64 {
	if l.arc > 0 {
		return l.arc
	}
	return 1
}

func (l *Lissajous) Closed() bool { return true }
