package transform

import (
	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Chain runs an ordered list of transforms over a frame, threading the
// output of each into the next. It stops at and surfaces the first
// error unchanged.
type Chain struct {
	Transforms []core.Transform
}

// NewChain builds a Chain from an ordered list of transforms.
func NewChain(transforms ...core.Transform) *Chain {
	return &Chain{Transforms: transforms}
}

// Name returns the transform's identifier.
func (c *Chain) Name() string { return "chain" }

// Apply runs frame through each transform in order.
func (c *Chain) Apply(frame core.Frame) (core.Frame, error) {
	cur := frame
	for _, t := range c.Transforms {
		next, err := t.Apply(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
