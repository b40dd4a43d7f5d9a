// Package rawvideo implements the raw-video codec: Decoder splits a
// packet's flat plane bytes into per-plane views per the Y4M colorspace's
// subsampling; Encoder flattens them back with strides collapsed to tight
// rows, reproducing identical bytes on round trip.
package rawvideo

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/container/y4m"
	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Decoder wraps a packet's raw plane bytes into a VideoFrame without
// copying: each plane is a subslice of the packet's buffer.
type Decoder struct {
	format y4m.Format
}

// NewDecoder builds a Decoder for the given Y4M format.
func NewDecoder(format y4m.Format) *Decoder {
	return &Decoder{format: format}
}

// Decode splits pkt.Bytes into Y/Cb/Cr (or Y-only, for Mono) plane views.
func (d *Decoder) Decode(pkt core.Packet) (core.Frame, error) {
	want := d.format.FrameBytes()
	if len(pkt.Bytes) != want {
		return nil, fmt.Errorf("rawvideo: %w: packet has %d bytes, format needs %d", core.ErrInvalidFormat, len(pkt.Bytes), want)
	}

	w, h := d.format.Width, d.format.Height
	luma := w * h

	planes := []core.Plane{{Bytes: pkt.Bytes[:luma], Stride: w}}
	if d.format.PixelFormat != core.Mono {
		cw, ch := chromaDimensions(d.format.PixelFormat, w, h)
		chromaSize := cw * ch
		cb := pkt.Bytes[luma : luma+chromaSize]
		cr := pkt.Bytes[luma+chromaSize : luma+2*chromaSize]
		planes = append(planes, core.Plane{Bytes: cb, Stride: cw}, core.Plane{Bytes: cr, Stride: cw})
	}

	return core.VideoFrame{
		Width:    w,
		Height:   h,
		Format:   d.format.PixelFormat,
		Planes:   planes,
		Pts:      pkt.Pts,
		Timebase: pkt.Timebase,
	}, nil
}

// Flush never has buffered state to release: every packet decodes fully.
func (d *Decoder) Flush() (core.Frame, error) { return nil, nil }

func chromaDimensions(format core.PixelFormat, w, h int) (cw, ch int) {
	switch format {
	case core.I420:
		return (w + 1) / 2, (h + 1) / 2
	case core.I422:
		return (w + 1) / 2, h
	case core.I444:
		return w, h
	default:
		return 0, 0
	}
}
