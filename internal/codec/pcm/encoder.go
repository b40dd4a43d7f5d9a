package pcm

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Encoder is the inverse of Decoder: it writes an AudioFrame's samples
// back to packet bytes in the frame's own bit depth, rescaling pts into
// its own Timebase.
type Encoder struct {
	timebase core.Timebase
}

// NewEncoder builds an Encoder that stamps packets in the given Timebase.
func NewEncoder(timebase core.Timebase) *Encoder {
	return &Encoder{timebase: timebase}
}

// Encode writes frame.Samples back to bytes per the frame's BitDepth,
// producing stream_index 0, keyframe packets with pts rescaled into the
// encoder's Timebase.
func (e *Encoder) Encode(frame core.Frame) (*core.Packet, error) {
	af, ok := frame.(core.AudioFrame)
	if !ok {
		return nil, fmt.Errorf("pcm: %w: encoder requires an AudioFrame", core.ErrInvalidFormat)
	}

	bps := int(af.BitDepth) / 8
	buf := make([]byte, len(af.Samples)*bps)
	for i, s := range af.Samples {
		encodeSample(buf[i*bps:(i+1)*bps], s, af.BitDepth)
	}

	return &core.Packet{
		Bytes:       buf,
		Pts:         core.Rescale(af.Pts, af.Timebase, e.timebase),
		Timebase:    e.timebase,
		StreamIndex: 0,
		Keyframe:    true,
	}, nil
}

// Flush never has buffered state to release: every frame encodes fully.
func (e *Encoder) Flush() (*core.Packet, error) { return nil, nil }

func encodeSample(b []byte, v int32, bitDepth uint16) {
	switch bitDepth {
	case 8:
		b[0] = byte(v + 128)
	case 16:
		u := uint16(int16(v))
		b[0] = byte(u)
		b[1] = byte(u >> 8)
	case 24:
		u := uint32(v) & 0xFFFFFF
		b[0] = byte(u)
		b[1] = byte(u >> 8)
		b[2] = byte(u >> 16)
	case 32:
		u := uint32(v)
		b[0] = byte(u)
		b[1] = byte(u >> 8)
		b[2] = byte(u >> 16)
		b[3] = byte(u >> 24)
	}
}
