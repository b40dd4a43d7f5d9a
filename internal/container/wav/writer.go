package wav

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/core"
	"github.com/linuxmatters/ffmpreg/internal/mediaio"
)

// seeker is the subset of mediaio.MediaWriter's backing store Writer needs
// for Finalize's seek-back header patch.
type seeker interface {
	Seek(pos int64) (int64, error)
}

// Writer muxes packets into a RIFF/WAVE file. State moves
// HEADER-PENDING -> WRITING -> FINALIZED (or FAILED); WritePacket after
// Finalize returns ErrUseAfterFinalize.
type Writer struct {
	sink      mediaio.MediaWriter
	seekSink  seeker
	format    Format
	dataBytes int64
	finalized bool
}

// NewWriter writes the RIFF/fmt header with placeholder size fields and
// returns a Writer ready to accept packets.
func NewWriter(sink mediaio.MediaWriter, format Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("wav: %w: %v", core.ErrInvalidFormat, err)
	}

	w := &Writer{sink: sink, format: format}
	if s, ok := sink.(seeker); ok {
		w.seekSink = s
	}

	var hdr []byte
	hdr = append(hdr, "RIFF"...)
	hdr = mediaio.PutUint32LE(hdr, 36) // patched in Finalize
	hdr = append(hdr, "WAVE"...)

	hdr = append(hdr, "fmt "...)
	hdr = mediaio.PutUint32LE(hdr, 16)
	hdr = mediaio.PutUint16LE(hdr, 1) // PCM
	hdr = mediaio.PutUint16LE(hdr, format.Channels)
	hdr = mediaio.PutUint32LE(hdr, format.SampleRate)
	byteRate := format.SampleRate * uint32(format.Channels) * uint32(format.BitDepth) / 8
	hdr = mediaio.PutUint32LE(hdr, byteRate)
	hdr = mediaio.PutUint16LE(hdr, uint16(format.BytesPerFrame()))
	hdr = mediaio.PutUint16LE(hdr, format.BitDepth)

	hdr = append(hdr, "data"...)
	hdr = mediaio.PutUint32LE(hdr, 0) // patched in Finalize

	if err := mediaio.WriteAll(sink, hdr); err != nil {
		return nil, fmt.Errorf("wav: writing header: %w", err)
	}
	return w, nil
}

// WritePacket appends the packet's bytes verbatim to the data region.
func (w *Writer) WritePacket(pkt core.Packet) error {
	if w.finalized {
		return core.ErrUseAfterFinalize
	}
	if err := mediaio.WriteAll(w.sink, pkt.Bytes); err != nil {
		return fmt.Errorf("wav: writing packet: %w", err)
	}
	w.dataBytes += int64(len(pkt.Bytes))
	return nil
}

// Finalize patches the RIFF and data chunk size fields by seeking back
// into the already-written header, then flushes. The sink must support
// seeking; if it doesn't, Finalize fails with ErrNonSeekableSink and the
// data chunk's declared sizes are left as placeholders (spec §5: dropping a
// writer before Finalize is a permissibly-corrupt, documented state).
func (w *Writer) Finalize() error {
	if w.finalized {
		return core.ErrUseAfterFinalize
	}
	if w.seekSink == nil {
		return core.ErrNonSeekableSink
	}

	if _, err := w.seekSink.Seek(4); err != nil {
		return fmt.Errorf("wav: seeking to RIFF size field: %w", err)
	}
	if err := mediaio.WriteAll(w.sink, mediaio.PutUint32LE(nil, uint32(36+w.dataBytes))); err != nil {
		return fmt.Errorf("wav: patching RIFF size: %w", err)
	}

	if _, err := w.seekSink.Seek(40); err != nil {
		return fmt.Errorf("wav: seeking to data size field: %w", err)
	}
	if err := mediaio.WriteAll(w.sink, mediaio.PutUint32LE(nil, uint32(w.dataBytes))); err != nil {
		return fmt.Errorf("wav: patching data size: %w", err)
	}

	if err := w.sink.Flush(); err != nil {
		return fmt.Errorf("wav: flush: %w", err)
	}
	w.finalized = true
	return nil
}
