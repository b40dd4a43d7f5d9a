package wav

import (
	"fmt"
	"io"

	"github.com/linuxmatters/ffmpreg/internal/core"
	"github.com/linuxmatters/ffmpreg/internal/mediaconfig"
	"github.com/linuxmatters/ffmpreg/internal/mediaio"
)

// Reader demuxes a RIFF/WAVE file into fixed-size PCM packets. State moves
// OPEN -> DATA -> EOF, or -> FAILED on any non-EOF error, at which point
// every subsequent ReadPacket call returns the same latched error.
type Reader struct {
	src    mediaio.MediaReader
	format Format

	totalFrames   int64
	framesEmitted int64

	err  error
	done bool
}

// NewReader reads and validates the RIFF header and fmt/data chunks,
// leaving the source positioned at the start of the data chunk's bytes.
func NewReader(src mediaio.MediaReader) (*Reader, error) {
	hdr := make([]byte, 12)
	if err := mediaio.ReadFull(src, hdr); err != nil {
		return nil, fmt.Errorf("wav: %w: reading RIFF header", core.ErrUnexpectedEOF)
	}
	if string(hdr[0:4]) != "RIFF" {
		return nil, fmt.Errorf("wav: %w: expected \"RIFF\", got %q", core.ErrBadMagic, hdr[0:4])
	}
	if string(hdr[8:12]) != "WAVE" {
		return nil, fmt.Errorf("wav: %w: expected \"WAVE\", got %q", core.ErrBadMagic, hdr[8:12])
	}

	r := &Reader{src: src}
	if err := r.scanChunks(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) scanChunks() error {
	var haveFmt bool

	for {
		chunkHdr := make([]byte, 8)
		if err := mediaio.ReadFull(r.src, chunkHdr); err != nil {
			return fmt.Errorf("wav: %w: scanning for data chunk", core.ErrInvalidFormat)
		}
		id := string(chunkHdr[0:4])
		size := mediaio.ReadUint32LE(chunkHdr[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return fmt.Errorf("wav: %w: fmt chunk too small (%d bytes)", core.ErrInvalidFormat, size)
			}
			body := make([]byte, size)
			if err := mediaio.ReadFull(r.src, body); err != nil {
				return fmt.Errorf("wav: %w: reading fmt chunk", core.ErrInvalidFormat)
			}
			if err := r.parseFmt(body); err != nil {
				return err
			}
			if err := skipPad(r.src, size); err != nil {
				return err
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return fmt.Errorf("wav: %w: data chunk before fmt chunk", core.ErrInvalidFormat)
			}
			bpf := r.format.BytesPerFrame()
			if int(size)%bpf != 0 {
				return fmt.Errorf("wav: %w: data size %d not a multiple of frame size %d", core.ErrInvalidFormat, size, bpf)
			}
			r.totalFrames = int64(size) / int64(bpf)
			return nil

		default:
			body := make([]byte, size)
			if err := mediaio.ReadFull(r.src, body); err != nil {
				return fmt.Errorf("wav: %w: skipping unknown chunk %q", core.ErrInvalidFormat, id)
			}
			if err := skipPad(r.src, size); err != nil {
				return err
			}
		}
	}
}

func skipPad(src mediaio.MediaReader, chunkSize uint32) error {
	if chunkSize%2 == 1 {
		if err := mediaio.ReadFull(src, make([]byte, 1)); err != nil {
			return fmt.Errorf("wav: %w: reading chunk pad byte", core.ErrInvalidFormat)
		}
	}
	return nil
}

func (r *Reader) parseFmt(body []byte) error {
	audioFormat := mediaio.ReadUint16LE(body[0:2])
	if audioFormat != 1 {
		return fmt.Errorf("wav: %w: audio format tag %d", core.ErrUnsupportedCodec, audioFormat)
	}

	format := Format{
		Channels:   mediaio.ReadUint16LE(body[2:4]),
		SampleRate: mediaio.ReadUint32LE(body[4:8]),
		BitDepth:   mediaio.ReadUint16LE(body[14:16]),
	}
	if err := format.Validate(); err != nil {
		return fmt.Errorf("wav: %w: %v", core.ErrInvalidFormat, err)
	}
	r.format = format
	return nil
}

// Format returns the parsed PCM format.
func (r *Reader) Format() Format { return r.format }

// StreamCount always reports 1: a WAV file carries a single PCM stream.
func (r *Reader) StreamCount() int { return 1 }

// Seek is not supported by Reader.
func (r *Reader) Seek(pos int64) error { return core.ErrUnsupported }

// ReadPacket returns the next fixed-size PCM packet, or (nil, io.EOF) once
// the data chunk is exhausted. Any other error poisons the reader.
func (r *Reader) ReadPacket() (*core.Packet, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.done {
		return nil, io.EOF
	}

	remaining := r.totalFrames - r.framesEmitted
	if remaining == 0 {
		r.done = true
		return nil, io.EOF
	}

	n := int64(mediaconfig.WavPacketFrames)
	if n > remaining {
		n = remaining
	}

	buf := make([]byte, n*int64(r.format.BytesPerFrame()))
	if err := mediaio.ReadFull(r.src, buf); err != nil {
		r.err = fmt.Errorf("wav: %w: data chunk truncated", core.ErrUnexpectedEOF)
		return nil, r.err
	}

	pkt := &core.Packet{
		Bytes:       buf,
		Pts:         r.framesEmitted,
		Timebase:    core.NewTimebase(1, int64(r.format.SampleRate)),
		StreamIndex: 0,
		Keyframe:    true,
	}
	r.framesEmitted += n
	return pkt, nil
}
