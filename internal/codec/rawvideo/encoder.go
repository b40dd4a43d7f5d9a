package rawvideo

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Encoder flattens a VideoFrame's planes in canonical order (Y, Cb, Cr for
// 4:2:0/4:2:2/4:4:4; Y only for Mono) without per-row padding: each plane's
// rows are copied tight, collapsing any stride slack.
type Encoder struct {
	timebase core.Timebase
}

// NewEncoder builds an Encoder that stamps packets in the given Timebase.
func NewEncoder(timebase core.Timebase) *Encoder {
	return &Encoder{timebase: timebase}
}

// Encode flattens frame's planes into packet bytes.
func (e *Encoder) Encode(frame core.Frame) (*core.Packet, error) {
	vf, ok := frame.(core.VideoFrame)
	if !ok {
		return nil, fmt.Errorf("rawvideo: %w: encoder requires a VideoFrame", core.ErrInvalidFormat)
	}

	var buf []byte
	for i, plane := range vf.Planes {
		width := vf.Width
		height := vf.Height
		if i > 0 {
			width, height = chromaDimensions(vf.Format, vf.Width, vf.Height)
		}
		buf = append(buf, flattenPlane(plane, width, height)...)
	}

	return &core.Packet{
		Bytes:       buf,
		Pts:         core.Rescale(vf.Pts, vf.Timebase, e.timebase),
		Timebase:    e.timebase,
		StreamIndex: 0,
		Keyframe:    true,
	}, nil
}

// Flush never has buffered state to release: every frame encodes fully.
func (e *Encoder) Flush() (*core.Packet, error) { return nil, nil }

func flattenPlane(p core.Plane, width, height int) []byte {
	if p.Stride == width {
		return p.Bytes[:width*height]
	}
	out := make([]byte, 0, width*height)
	for y := 0; y < height; y++ {
		row := p.Bytes[y*p.Stride : y*p.Stride+width]
		out = append(out, row...)
	}
	return out
}
