// Package wav implements the RIFF/WAVE container: a Demuxer that reads PCM
// WAV files into packets and a Muxer that writes them back, built directly
// on internal/mediaio rather than a third-party RIFF library — see
// DESIGN.md for why the byte-exact finalize flow requires hand-rolling
// this layer.
package wav

import "fmt"

// Format describes a WAV file's PCM layout.
type Format struct {
	Channels   uint16
	SampleRate uint32
	BitDepth   uint16
}

// BytesPerSample is BitDepth/8.
func (f Format) BytesPerSample() int { return int(f.BitDepth) / 8 }

// BytesPerFrame is BytesPerSample * Channels (one "frame" here means one
// sample per channel, not a container Packet).
func (f Format) BytesPerFrame() int { return f.BytesPerSample() * int(f.Channels) }

// Validate checks the legal ranges from spec.md §3: bit_depth in
// {8,16,24,32}, channels >= 1, sample_rate > 0.
func (f Format) Validate() error {
	switch f.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("wav: illegal bit depth %d", f.BitDepth)
	}
	if f.Channels == 0 {
		return fmt.Errorf("wav: channels must be >= 1")
	}
	if f.SampleRate == 0 {
		return fmt.Errorf("wav: sample_rate must be > 0")
	}
	return nil
}
