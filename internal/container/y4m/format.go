// Package y4m implements the YUV4MPEG2 container: a Demuxer that parses
// the signature/tag header and per-frame raw plane bytes, and a Muxer that
// writes them back out.
package y4m

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Interlacing is the Y4M "I" tag value.
type Interlacing byte

const (
	InterlaceUnknown    Interlacing = '?'
	InterlaceProgressive Interlacing = 'p'
	InterlaceTopFirst   Interlacing = 't'
	InterlaceBottomFirst Interlacing = 'b'
	InterlaceMixed      Interlacing = 'm'
)

// Format describes a Y4M stream's header fields. AspectNum/AspectDen are
// only meaningful when HasAspect is true: the header emits an "A" tag only
// if the source carried one (spec §4.5).
type Format struct {
	Width, Height int
	FramerateNum  int64
	FramerateDen  int64
	Interlacing   Interlacing
	HasAspect     bool
	AspectNum     int64
	AspectDen     int64
	PixelFormat   core.PixelFormat
	Colorspace    string // raw C tag value, e.g. "420mpeg2"; preserved for round-trip
}

// Validate checks width, height, and frame rate are all positive.
func (f Format) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("y4m: width/height must be > 0 (got %dx%d)", f.Width, f.Height)
	}
	if f.FramerateNum <= 0 || f.FramerateDen <= 0 {
		return fmt.Errorf("y4m: frame rate num/den must be > 0 (got %d:%d)", f.FramerateNum, f.FramerateDen)
	}
	return nil
}

// FrameBytes returns the total number of raw plane bytes in one frame.
func (f Format) FrameBytes() int {
	luma := f.Width * f.Height
	switch f.PixelFormat {
	case core.Mono:
		return luma
	case core.I444:
		return luma * 3
	case core.I422:
		return luma + 2*((f.Width+1)/2)*f.Height
	default: // I420
		cw, ch := (f.Width+1)/2, (f.Height+1)/2
		return luma + 2*cw*ch
	}
}
