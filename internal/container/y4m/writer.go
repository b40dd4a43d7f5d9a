package y4m

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/core"
	"github.com/linuxmatters/ffmpreg/internal/mediaio"
)

// Writer muxes raw-video packets into a YUV4MPEG2 stream. Unlike wav.Writer
// it needs no seek-based finalize: Finalize only flushes the sink, so a
// Writer can be built on a non-seekable mediaio.BufferedWriter.
type Writer struct {
	sink      mediaio.MediaWriter
	format    Format
	finalized bool
}

// NewWriter writes the YUV4MPEG2 signature line, reconstructed from
// format: only tags the format actually carries are emitted (notably the
// "A" aspect tag, which only appears if format.HasAspect is true).
func NewWriter(sink mediaio.MediaWriter, format Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("y4m: %w: %v", core.ErrInvalidFormat, err)
	}

	line := fmt.Sprintf("YUV4MPEG2 W%d H%d F%d:%d I%c",
		format.Width, format.Height, format.FramerateNum, format.FramerateDen, format.Interlacing)
	if format.HasAspect {
		line += fmt.Sprintf(" A%d:%d", format.AspectNum, format.AspectDen)
	}
	colorspace := format.Colorspace
	if colorspace == "" {
		colorspace = format.PixelFormat.String()
	}
	line += fmt.Sprintf(" C%s\n", colorspace)

	if err := mediaio.WriteAll(sink, []byte(line)); err != nil {
		return nil, fmt.Errorf("y4m: writing header: %w", err)
	}
	return &Writer{sink: sink, format: format}, nil
}

// Format returns the format this writer was constructed with.
func (w *Writer) Format() Format { return w.format }

// WritePacket writes the "FRAME\n" marker followed by the packet's raw
// plane bytes.
func (w *Writer) WritePacket(pkt core.Packet) error {
	if w.finalized {
		return core.ErrUseAfterFinalize
	}
	if err := mediaio.WriteAll(w.sink, []byte("FRAME\n")); err != nil {
		return fmt.Errorf("y4m: writing frame marker: %w", err)
	}
	if err := mediaio.WriteAll(w.sink, pkt.Bytes); err != nil {
		return fmt.Errorf("y4m: writing frame body: %w", err)
	}
	return nil
}

// Finalize flushes the underlying sink.
func (w *Writer) Finalize() error {
	if w.finalized {
		return core.ErrUseAfterFinalize
	}
	if err := w.sink.Flush(); err != nil {
		return fmt.Errorf("y4m: flush: %w", err)
	}
	w.finalized = true
	return nil
}
