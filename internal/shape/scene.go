package shape

import (
	"errors"
	"math"
	"sort"
)

// Entry is one weighted shape inside a Scene. Entries are exclusively
// owned by the scene that holds them; callers mutate through the scene
// so the boundary cache stays consistent.
type Entry struct {
	shape   Shape
	weight  float64
	enabled bool
}

// Shape returns the wrapped shape.
func (e *Entry) Shape() Shape { return e.shape }

// Weight returns the entry's time-allocation weight.
func (e *Entry) Weight() float64 { return e.weight }

// Enabled reports whether the entry participates in the trace.
func (e *Entry) Enabled() bool { return e.enabled }

// span is one [start,end) slice of the time domain assigned to an entry.
type span struct {
	start float64
	end   float64
	index int
}

// Scene composes weighted shapes into one shape by partitioning [0,1):
// each enabled entry gets a share of the trace proportional to
// weight/Σweight, in entry order. Disabled entries consume no time.
//
// Scene itself satisfies Shape, so scenes nest. A scene must not be
// added to its own entry list; Add rejects direct self-reference.
// Deeper cycles are the caller's responsibility.
//
// Mutation is not synchronized: mutate on the configuration side and
// republish to the engine; never mutate a scene the audio goroutine is
// currently sampling.
type Scene struct {
	name    string
	entries []*Entry
	bounds  []span
}

var (
	errNilShape      = errors.New("scene entry shape must not be nil")
	errSelfReference = errors.New("scene cannot contain itself")
	errBadWeight     = errors.New("scene entry weight must be positive and finite")
	errIndexRange    = errors.New("scene entry index out of range")
)

// NewScene creates an empty scene.
func NewScene(name string) *Scene {
	return &Scene{name: name}
}

// Add appends a shape with weight 1.
func (s *Scene) Add(sh Shape) error {
	return s.AddWeighted(sh, 1)
}

// AddWeighted appends a shape with the given weight. Invalid weights
// and self-references are rejected here, never discovered during
// sampling.
func (s *Scene) AddWeighted(sh Shape, weight float64) error {
	if sh == nil {
		return errNilShape
	}
	if child, ok := sh.(*Scene); ok && child == s {
		return errSelfReference
	}
	if err := checkWeight(weight); err != nil {
		return err
	}
	s.entries = append(s.entries, &Entry{shape: sh, weight: weight, enabled: true})
	s.recompute()
	return nil
}

func checkWeight(w float64) error {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return errBadWeight
	}
	return nil
}

// Remove deletes the entry at index.
func (s *Scene) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return errIndexRange
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.recompute()
	return nil
}

// SetWeight changes an entry's weight and rebuilds the boundaries.
func (s *Scene) SetWeight(index int, weight float64) error {
	if index < 0 || index >= len(s.entries) {
		return errIndexRange
	}
	if err := checkWeight(weight); err != nil {
		return err
	}
	s.entries[index].weight = weight
	s.recompute()
	return nil
}

// SetEnabled toggles an entry and rebuilds the boundaries.
func (s *Scene) SetEnabled(index int, enabled bool) error {
	if index < 0 || index >= len(s.entries) {
		return errIndexRange
	}
	s.entries[index].enabled = enabled
	s.recompute()
	return nil
}

// MoveUp swaps the entry at index with its predecessor.
func (s *Scene) MoveUp(index int) error {
	if index <= 0 || index >= len(s.entries) {
		return errIndexRange
	}
	s.entries[index-1], s.entries[index] = s.entries[index], s.entries[index-1]
	s.recompute()
	return nil
}

// MoveDown swaps the entry at index with its successor.
func (s *Scene) MoveDown(index int) error {
	if index < 0 || index+1 >= len(s.entries) {
		return errIndexRange
	}
	s.entries[index], s.entries[index+1] = s.entries[index+1], s.entries[index]
	s.recompute()
	return nil
}

// Len returns the number of entries, enabled or not.
func (s *Scene) Len() int { return len(s.entries) }

// Entry returns the entry at index, or nil if out of range.
func (s *Scene) Entry(index int) *Entry {
	if index < 0 || index >= len(s.entries) {
		return nil
	}
	return s.entries[index]
}

// recompute rebuilds the boundary cache from enabled entries. It walks
// entries in order, giving each a segment of length weight/total. The
// walk is deterministic: unchanged inputs yield bit-identical bounds.
// Runs on the configuration side, never on the audio goroutine.
func (s *Scene) recompute() {
	s.bounds = s.bounds[:0]
	total := 0.0
	for _, e := range s.entries {
		if e.enabled {
			total += e.weight
		}
	}
	if total <= 0 {
		return
	}
	cursor := 0.0
	for i, e := range s.entries {
		if !e.enabled {
			continue
		}
		d := e.weight / total
		s.bounds = append(s.bounds, span{start: cursor, end: cursor + d, index: i})
		cursor += d
	}
}

// Sample locates the segment containing t, remaps t into the segment,
// and delegates to the owning entry. t at or above 1.0 (floating slop
// included) clamps into the last segment. With no enabled entries the
// scene traces the origin.
func (s *Scene) Sample(t float64) (float64, float64) {
	if len(s.bounds) == 0 {
		return 0, 0
	}
	if t < 0 {
		t = 0
	}
	i := sort.Search(len(s.bounds), func(i int) bool { return t < s.bounds[i].end })
	if i >= len(s.bounds) {
		i = len(s.bounds) - 1
	}
	b := s.bounds[i]
	local := (t - b.start) / (b.end - b.start)
	if local >= 1 {
		local = math.Nextafter(1, 0)
	}
	if local < 0 {
		local = 0
	}
	return s.entries[b.index].shape.Sample(local)
}

// Name returns the scene's display name.
func (s *Scene) Name() string { return s.name }

// Length sums the enabled entries' path lengths.
func (s *Scene) Length() float64 {
	total := 0.0
	for _, e := range s.entries {
		if e.enabled {
			total += e.shape.Length()
		}
	}
	if total == 0 {
		return 1
	}
	return total
}

// Closed reports true when every enabled entry is closed.
func (s *Scene) Closed() bool {
	for _, e := range s.entries {
		if e.enabled && !e.shape.Closed() {
			return false
		}
	}
	return true
}
