package y4m

import (
	"io"
	"testing"

	"github.com/linuxmatters/ffmpreg/internal/core"
	"github.com/linuxmatters/ffmpreg/internal/mediaio"
)

func writeTestY4M(t *testing.T, format Format, frames [][]byte) []byte {
	t.Helper()
	cursor := mediaio.NewCursor(nil)
	w, err := NewWriter(cursor, format)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	for _, f := range frames {
		if err := w.WritePacket(core.Packet{Bytes: f}); err != nil {
			t.Fatalf("WritePacket: %v", err)
		}
	}
	if err := w.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return cursor.Bytes()
}

func TestReaderParsesHeaderAndFrames(t *testing.T) {
	format := Format{
		Width: 2, Height: 2,
		FramerateNum: 30, FramerateDen: 1,
		Interlacing: InterlaceProgressive,
		PixelFormat: core.I420,
		Colorspace:  "420",
	}
	frameBytes := format.FrameBytes()
	frame1 := make([]byte, frameBytes)
	frame2 := make([]byte, frameBytes)
	for i := range frame1 {
		frame1[i] = byte(i)
		frame2[i] = byte(i + 1)
	}
	data := writeTestY4M(t, format, [][]byte{frame1, frame2})

	r, err := NewReader(mediaio.NewCursor(data))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Format().Width != 2 || r.Format().Height != 2 {
		t.Fatalf("Format() = %+v", r.Format())
	}
	if r.Format().HasAspect {
		t.Errorf("expected HasAspect false when no A tag was written")
	}

	count := 0
	for {
		pkt, err := r.ReadPacket()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadPacket: %v", err)
		}
		if len(pkt.Bytes) != frameBytes {
			t.Errorf("frame %d: got %d bytes, want %d", count, len(pkt.Bytes), frameBytes)
		}
		if pkt.Pts != int64(count) {
			t.Errorf("frame %d: Pts = %d, want %d", count, pkt.Pts, count)
		}
		count++
	}
	if count != 2 {
		t.Errorf("read %d frames, want 2", count)
	}
}

func TestReaderPreservesAspectRatio(t *testing.T) {
	format := Format{
		Width: 2, Height: 2,
		FramerateNum: 30, FramerateDen: 1,
		Interlacing: InterlaceProgressive,
		HasAspect:   true,
		AspectNum:   4, AspectDen: 3,
		PixelFormat: core.I420,
		Colorspace:  "420",
	}
	data := writeTestY4M(t, format, [][]byte{make([]byte, format.FrameBytes())})

	r, err := NewReader(mediaio.NewCursor(data))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got := r.Format()
	if !got.HasAspect || got.AspectNum != 4 || got.AspectDen != 3 {
		t.Errorf("aspect ratio not preserved: %+v", got)
	}
}

func TestReaderRejectsBadSignature(t *testing.T) {
	data := []byte("NOTYUV4\n")
	if _, err := NewReader(mediaio.NewCursor(data)); err == nil {
		t.Fatal("expected an error for a bad signature")
	}
}

func TestReaderRejectsUnknownColorspace(t *testing.T) {
	data := []byte("YUV4MPEG2 W2 H2 F30:1 Ip Cbogus\n")
	if _, err := NewReader(mediaio.NewCursor(data)); err == nil {
		t.Fatal("expected an error for an unsupported colorspace tag")
	}
}

func TestReaderDefaultsColorspaceTo420(t *testing.T) {
	data := []byte("YUV4MPEG2 W2 H2 F30:1 Ip\n")
	r, err := NewReader(mediaio.NewCursor(data))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Format().PixelFormat != core.I420 {
		t.Errorf("PixelFormat = %v, want I420", r.Format().PixelFormat)
	}
}

func TestReaderPoisonsOnTruncatedFrame(t *testing.T) {
	format := Format{Width: 2, Height: 2, FramerateNum: 30, FramerateDen: 1, Interlacing: InterlaceProgressive, PixelFormat: core.I420, Colorspace: "420"}
	data := writeTestY4M(t, format, [][]byte{make([]byte, format.FrameBytes())})
	truncated := data[:len(data)-2]

	r, err := NewReader(mediaio.NewCursor(truncated))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.ReadPacket(); err == nil {
		t.Fatal("expected an error reading a truncated frame body")
	}
	if _, err := r.ReadPacket(); err == nil {
		t.Fatal("expected the reader to stay poisoned on subsequent calls")
	}
}
