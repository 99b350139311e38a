// Package effects transforms XY points on their way from a shape to
// the output. Effects are pure: Apply depends only on its arguments
// and the effect's immutable fields, so a chain can be shared between
// the audio goroutine and configuration code without locking.
package effects

// Effect maps a point to a new point. elapsed is seconds since
// playback started and drives any time-varying behavior.
type Effect interface {
	Apply(x, y, elapsed float64) (float64, float64)
	Name() string
}

// Chain applies a sequence of effects in order. A nil chain is valid
// and applies nothing.
type Chain struct {
	effects []Effect
}

func NewChain(effects ...Effect) *Chain {
	return &Chain{effects: effects}
}

func (c *Chain) Apply(x, y, elapsed float64) (float64, float64) {
	if c == nil {
		return x, y
	}
	for _, e := range c.effects {
		x, y = e.Apply(x, y, elapsed)
	}
	return x, y
}

func (c *Chain) Add(e Effect) {
	c.effects = append(c.effects, e)
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.effects)
}
