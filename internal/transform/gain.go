// Package transform implements frame-mutating transforms: Gain, Normalize,
// and TransformChain, all built against the core.Transform interface.
package transform

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Gain multiplies every sample by Factor, saturating back to the sample
// format's integer range.
type Gain struct {
	Factor float32
}

// NewGain builds a Gain transform.
func NewGain(factor float32) *Gain { return &Gain{Factor: factor} }

// Name returns the transform's identifier.
func (g *Gain) Name() string { return "gain" }

// Apply multiplies frame's samples in place and returns it. Factor == 1
// is a no-op rather than a round-tripped float multiply, so Gain(1.0) is
// exactly byte-identical even for 32-bit samples outside float32's exact
// integer range.
func (g *Gain) Apply(frame core.Frame) (core.Frame, error) {
	af, ok := frame.(core.AudioFrame)
	if !ok {
		return nil, &core.TransformError{Transform: g.Name(), Err: fmt.Errorf("gain applies only to audio frames")}
	}
	if g.Factor == 1 {
		return af, nil
	}

	min, max := af.MinSample(), af.FullScale()
	factor := float64(g.Factor)
	for i, s := range af.Samples {
		scaled := float64(s) * factor
		af.Samples[i] = clampSample(scaled, min, max)
	}
	return af, nil
}

func clampSample(v float64, min, max int32) int32 {
	if v >= float64(max) {
		return max
	}
	if v <= float64(min) {
		return min
	}
	return int32(v)
}
