// Package pcm implements the PCM audio codec: Decoder turns raw WAV sample
// bytes into an AudioFrame, Encoder turns an AudioFrame back into bytes.
package pcm

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/container/wav"
	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Decoder decodes packets of raw PCM bytes (as produced by wav.Reader)
// into a single AudioFrame per packet.
type Decoder struct {
	format wav.Format
}

// NewDecoder builds a Decoder for the given WAV format.
func NewDecoder(format wav.Format) *Decoder {
	return &Decoder{format: format}
}

// Decode splits pkt.Bytes into sample frames using the format's
// bytes-per-frame and interprets each sample per bit depth: 8-bit unsigned
// with a 128 bias, 16/24/32-bit signed little-endian. Returns (nil, nil) if
// the packet is empty, and fails on a partial trailing sample frame.
func (d *Decoder) Decode(pkt core.Packet) (core.Frame, error) {
	if len(pkt.Bytes) == 0 {
		return nil, nil
	}

	bpf := d.format.BytesPerFrame()
	if len(pkt.Bytes)%bpf != 0 {
		return nil, fmt.Errorf("pcm: %w: packet size %d not a multiple of frame size %d", core.ErrInvalidFormat, len(pkt.Bytes), bpf)
	}

	sampleCount := len(pkt.Bytes) / bpf
	channels := int(d.format.Channels)
	samples := make([]int32, sampleCount*channels)

	bps := d.format.BytesPerSample()
	for i := range samples {
		off := i * bps
		samples[i] = decodeSample(pkt.Bytes[off:off+bps], d.format.BitDepth)
	}

	return core.AudioFrame{
		Samples:     samples,
		BitDepth:    d.format.BitDepth,
		SampleRate:  d.format.SampleRate,
		Channels:    uint8(channels),
		SampleCount: sampleCount,
		Pts:         pkt.Pts,
		Timebase:    pkt.Timebase,
	}, nil
}

// Flush never has buffered state to release: every packet decodes fully.
func (d *Decoder) Flush() (core.Frame, error) { return nil, nil }

func decodeSample(b []byte, bitDepth uint16) int32 {
	switch bitDepth {
	case 8:
		return int32(b[0]) - 128
	case 16:
		return int32(int16(uint16(b[0]) | uint16(b[1])<<8))
	case 24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v -= 0x1000000 // sign-extend
		}
		return v
	case 32:
		return int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
	default:
		return 0
	}
}
