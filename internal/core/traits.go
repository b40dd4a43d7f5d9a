package core

// Demuxer parses a container into packets. ReadPacket returns (nil, io.EOF)
// at a clean end of stream; any other non-nil error poisons the demuxer —
// implementations latch it and return the same error on subsequent calls.
type Demuxer interface {
	ReadPacket() (*Packet, error)
	StreamCount() int
	// Seek repositions the demuxer; implementations that don't support
	// seeking return ErrUnsupported.
	Seek(pos int64) error
}

// Muxer writes packets into a container. WritePacket after Finalize
// returns ErrUseAfterFinalize.
type Muxer interface {
	WritePacket(Packet) error
	Finalize() error
}

// Decoder turns packets into frames. A nil Frame with a nil error means no
// frame was produced from that packet yet (more input is needed); the PCM
// and raw-video decoders produce exactly one frame per non-empty packet,
// but the interface leaves room for codecs that don't.
type Decoder interface {
	Decode(Packet) (Frame, error)
	Flush() (Frame, error)
}

// Encoder turns frames into packets, with the same "absent means not yet"
// convention as Decoder.
type Encoder interface {
	Encode(Frame) (*Packet, error)
	Flush() (*Packet, error)
}

// Transform consumes and returns a Frame, mutating it in place. It must not
// alter sample/pixel counts, rate, pts, or timebase unless it is explicitly
// a resampler. Implementations carry no unexported mutable state shared
// across instances, so a Transform value may be handed to another
// goroutine between pipeline runs — but a single instance is never driven
// concurrently within one run.
type Transform interface {
	Apply(Frame) (Frame, error)
	Name() string
}
