package core

// Frame is the decoded-data variant of the pipeline: either an AudioFrame
// or a VideoFrame. Sum-typed via interface rather than a single shared
// struct shape (spec §9 "do not unify into a single shape").
type Frame interface {
	isFrame()
}

// AudioFrame holds interleaved PCM samples for one stream. Samples always
// carries the signed sample value for the frame's BitDepth — 8-bit samples
// are stored centered (raw unsigned byte minus 128), so every bit depth
// shares one clamp-to-range contract in the transform layer. Only integer
// PCM is modeled: the only audio codec this pipeline wires (WavReader's
// audio_format == 1) never produces floating-point samples, so a separate
// float32 sample variant would be unexercised.
type AudioFrame struct {
	Samples     []int32
	BitDepth    uint16
	SampleRate  uint32
	Channels    uint8
	SampleCount int
	Pts         int64
	Timebase    Timebase
}

func (AudioFrame) isFrame() {}

// FullScale returns the positive full-scale magnitude for the frame's
// BitDepth, e.g. 32767 for 16-bit.
func (f AudioFrame) FullScale() int32 {
	return int32(1<<(f.BitDepth-1)) - 1
}

// MinSample returns the negative full-scale magnitude for the frame's
// BitDepth, e.g. -32768 for 16-bit.
func (f AudioFrame) MinSample() int32 {
	return -int32(1 << (f.BitDepth - 1))
}

// PixelFormat identifies a VideoFrame's plane layout.
type PixelFormat int

const (
	// I420 is 4:2:0 planar YCbCr: full-resolution Y, quarter-resolution Cb/Cr.
	I420 PixelFormat = iota
	// I422 is 4:2:2 planar YCbCr: full-resolution Y, half-horizontal-resolution Cb/Cr.
	I422
	// I444 is 4:4:4 planar YCbCr: Y, Cb, Cr all at full resolution.
	I444
	// Mono is luma-only.
	Mono
)

// String renders the pixel format the way the Y4M colorspace tag would.
func (f PixelFormat) String() string {
	switch f {
	case I420:
		return "420"
	case I422:
		return "422"
	case I444:
		return "444"
	case Mono:
		return "mono"
	default:
		return "unknown"
	}
}

// Plane is one contiguous row-major image plane.
type Plane struct {
	Bytes  []byte
	Stride int
}

// VideoFrame holds one decoded picture. For I420, Planes[0] is Y
// (width*height bytes, stride >= width), Planes[1] and Planes[2] are
// Cb/Cr each ((width+1)/2)*((height+1)/2); chroma dimensions follow the format's
// subsampling for I422/I444, and Mono carries only Planes[0].
type VideoFrame struct {
	Width, Height int
	Format        PixelFormat
	Planes        []Plane
	Pts           int64
	Timebase      Timebase
}

func (VideoFrame) isFrame() {}

// ChromaDimensions returns the width and height of the Cb/Cr planes for the
// frame's pixel format (undefined for Mono, which has none).
func (f VideoFrame) ChromaDimensions() (w, h int) {
	switch f.Format {
	case I420:
		return (f.Width + 1) / 2, (f.Height + 1) / 2
	case I422:
		return (f.Width + 1) / 2, f.Height
	case I444:
		return f.Width, f.Height
	default:
		return 0, 0
	}
}
