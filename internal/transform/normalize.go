package transform

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Normalize scales a frame's samples so its absolute peak reaches
// TargetPeak * MAX, where MAX is the format's positive full scale. A
// silent frame (peak == 0) is left unchanged.
type Normalize struct {
	TargetPeak float32
}

// NewNormalize builds a Normalize transform targeting targetPeak, a
// fraction of full scale in (0, 1].
func NewNormalize(targetPeak float32) *Normalize {
	return &Normalize{TargetPeak: targetPeak}
}

// Name returns the transform's identifier.
func (n *Normalize) Name() string { return "normalize" }

// Apply rescales frame's samples to the target peak and returns it.
func (n *Normalize) Apply(frame core.Frame) (core.Frame, error) {
	af, ok := frame.(core.AudioFrame)
	if !ok {
		return nil, &core.TransformError{Transform: n.Name(), Err: fmt.Errorf("normalize applies only to audio frames")}
	}

	var peak int32
	for _, s := range af.Samples {
		abs := s
		if abs < 0 {
			abs = -abs
		}
		if abs > peak {
			peak = abs
		}
	}
	if peak == 0 {
		return af, nil
	}

	min, max := af.MinSample(), af.FullScale()
	factor := float64(n.TargetPeak) * float64(max) / float64(peak)
	for i, s := range af.Samples {
		scaled := float64(s) * factor
		af.Samples[i] = clampSample(scaled, min, max)
	}
	return af, nil
}
