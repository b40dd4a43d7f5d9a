// Package mediaconfig holds the tunables spec.md leaves as open questions:
// packetization granularity and buffer sizing. Grouped const blocks with a
// one-line doc comment per group, matching the teacher's config.go style.
package mediaconfig

// WAV packetization.
const (
	// WavPacketFrames is the number of audio frames (samples per channel)
	// per demuxed packet. The last packet in a data chunk may be shorter.
	WavPacketFrames = 1024
)

// I/O buffering.
const (
	// DefaultBufferedWriterSize is a buffer size for callers that build a
	// mediaio.BufferedWriter without a more specific size in mind. It is
	// passed explicitly; NewBufferedWriter's own fallback for a
	// non-positive size is 4096.
	DefaultBufferedWriterSize = 8192
)
