package shape

import (
	"math"
	"testing"
)

const tol = 1e-6

func approx(a, b float64) bool { return math.Abs(a-b) < tol }

func TestCircleSample(t *testing.T) {
	c := NewCircle(0.5)

	x, y := c.Sample(0)
	if !approx(x, 0.5) || !approx(y, 0) {
		t.Errorf("t=0: got (%f,%f), want (0.5,0)", x, y)
	}
	x, y = c.Sample(0.25)
	if !approx(x, 0) || !approx(y, 0.5) {
		t.Errorf("t=0.25: got (%f,%f), want (0,0.5)", x, y)
	}
	if !approx(c.Length(), math.Pi) {
		t.Errorf("length: got %f, want %f", c.Length(), math.Pi)
	}
}

func TestCircleOffsetCenter(t *testing.T) {
	c := CircleAt(0.2, -0.3, 0.1)
	x, y := c.Sample(0.5)
	if !approx(x, 0.1) || !approx(y, -0.3) {
		t.Errorf("t=0.5: got (%f,%f), want (0.1,-0.3)", x, y)
	}
}

func TestLineSampleAndClamp(t *testing.T) {
	l := NewLine(-1, 0, 1, 0)

	x, y := l.Sample(0)
	if !approx(x, -1) || !approx(y, 0) {
		t.Errorf("t=0: got (%f,%f), want (-1,0)", x, y)
	}
	x, _ = l.Sample(0.5)
	if !approx(x, 0) {
		t.Errorf("t=0.5: got x=%f, want 0", x)
	}
	// Out-of-range t clamps to the endpoints instead of failing.
	x, _ = l.Sample(1.5)
	if !approx(x, 1) {
		t.Errorf("t=1.5: got x=%f, want 1 (clamped)", x)
	}
	if l.Closed() {
		t.Error("line should be open")
	}
	if !approx(l.Length(), 2) {
		t.Errorf("length: got %f, want 2", l.Length())
	}
}

func TestClosedShapesCoincideAtWrap(t *testing.T) {
	shapes := []Shape{
		NewCircle(0.7),
		Square(1.0),
		mustRegular(t, 5, 0.6),
		NewLissajous(3, 2, math.Pi/2, 0.8),
	}
	for _, s := range shapes {
		if !s.Closed() {
			t.Errorf("%s: expected closed", s.Name())
			continue
		}
		x0, y0 := s.Sample(0)
		x1, y1 := s.Sample(1 - 1e-9)
		if math.Hypot(x1-x0, y1-y0) > 1e-4 {
			t.Errorf("%s: endpoints diverge: (%f,%f) vs (%f,%f)", s.Name(), x0, y0, x1, y1)
		}
	}
}

func mustRegular(t *testing.T, n int, r float64) *Polygon {
	t.Helper()
	p, err := Regular(n, r)
	if err != nil {
		t.Fatalf("regular(%d): %v", n, err)
	}
	return p
}

func TestRectUniformArcLength(t *testing.T) {
	// A wide flat rectangle: naive per-edge t would crawl the short
	// edges; arc-length sampling keeps the pen speed constant.
	r := NewRect(1.6, 0.4)
	per := r.Length()

	// 40 steps land every sample exactly on a corner or an edge, so
	// chord length equals arc length and the comparison is exact.
	const steps = 40
	px, py := r.Sample(0)
	for i := 1; i <= steps; i++ {
		x, y := r.Sample(float64(i) / steps)
		d := math.Hypot(x-px, y-py)
		want := per / steps
		if math.Abs(d-want) > want*0.01 {
			t.Fatalf("step %d: arc increment %f, want %f", i, d, want)
		}
		px, py = x, y
	}
}

func TestRectCorners(t *testing.T) {
	r := Square(1.0)
	x, y := r.Sample(0)
	if !approx(x, -0.5) || !approx(y, 0.5) {
		t.Errorf("t=0: got (%f,%f), want top-left (-0.5,0.5)", x, y)
	}
	// Quarter of the perimeter lands on the top-right corner.
	x, y = r.Sample(0.25)
	if !approx(x, 0.5) || !approx(y, 0.5) {
		t.Errorf("t=0.25: got (%f,%f), want top-right (0.5,0.5)", x, y)
	}
}

func TestPolygonRejectsTooFewVertices(t *testing.T) {
	if _, err := NewPolygon([]Point{{0, 0}, {1, 1}}); err == nil {
		t.Fatal("expected error for 2 vertices")
	}
	if _, err := Regular(2, 1); err == nil {
		t.Fatal("expected error for 2-gon")
	}
	if _, err := Star(2, 1, 0.5); err == nil {
		t.Fatal("expected error for 2-point star")
	}
}

func TestPolygonArcDistanceMonotonic(t *testing.T) {
	// Deliberately uneven edge lengths.
	p, err := NewPolygon([]Point{{0, 0}, {2, 0}, {2, 0.1}, {0, 0.1}})
	if err != nil {
		t.Fatal(err)
	}
	const steps = 500
	traveled := 0.0
	prevTraveled := -1.0
	px, py := p.Sample(0)
	for i := 1; i <= steps; i++ {
		x, y := p.Sample(float64(i) / steps)
		traveled += math.Hypot(x-px, y-py)
		if traveled < prevTraveled-tol {
			t.Fatalf("step %d: arc distance regressed: %f < %f", i, traveled, prevTraveled)
		}
		prevTraveled = traveled
		px, py = x, y
	}
	if math.Abs(traveled-p.Length()) > p.Length()*0.01 {
		t.Fatalf("total traveled %f, perimeter %f", traveled, p.Length())
	}
}

func TestPolygonEqualEdgesEqualIncrements(t *testing.T) {
	p := mustRegular(t, 6, 0.8)
	const steps = 600
	px, py := p.Sample(0)
	want := p.Length() / steps
	for i := 1; i <= steps; i++ {
		x, y := p.Sample(float64(i) / steps)
		d := math.Hypot(x-px, y-py)
		if math.Abs(d-want) > want*0.01 {
			t.Fatalf("step %d: increment %f, want %f", i, d, want)
		}
		px, py = x, y
	}
}

func TestStarVertexCount(t *testing.T) {
	s, err := Star(5, 0.8, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.vertices) != 10 {
		t.Fatalf("5-point star has %d vertices, want 10", len(s.vertices))
	}
}

func TestLissajousStaysInAmplitude(t *testing.T) {
	l := NewLissajous(3, 2, math.Pi/2, 0.9)
	for i := 0; i < 1000; i++ {
		x, y := l.Sample(float64(i) / 1000)
		if math.Abs(x) > 0.9+tol || math.Abs(y) > 0.9+tol {
			t.Fatalf("t=%f: point (%f,%f) exceeds amplitude", float64(i)/1000, x, y)
		}
	}
	if l.Length() <= 0 {
		t.Fatalf("expected positive approximated length, got %f", l.Length())
	}
}
