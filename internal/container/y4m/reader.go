package y4m

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/linuxmatters/ffmpreg/internal/core"
	"github.com/linuxmatters/ffmpreg/internal/mediaio"
)

// Reader demuxes a YUV4MPEG2 stream into one packet per frame, containing
// the frame's raw plane bytes.
type Reader struct {
	src    mediaio.MediaReader
	format Format

	frameIndex int64
	err        error
	done       bool
}

// NewReader parses the YUV4MPEG2 signature line and leaves src positioned
// at the first FRAME marker.
func NewReader(src mediaio.MediaReader) (*Reader, error) {
	line, err := readLine(src)
	if err != nil {
		return nil, fmt.Errorf("y4m: %w: reading signature line", core.ErrBadMagic)
	}

	const sig = "YUV4MPEG2"
	if !strings.HasPrefix(line, sig) {
		return nil, fmt.Errorf("y4m: %w: expected %q prefix, got %q", core.ErrBadMagic, sig, line)
	}

	format, err := parseHeaderTags(strings.TrimSpace(line[len(sig):]))
	if err != nil {
		return nil, err
	}
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("y4m: %w: %v", core.ErrInvalidFormat, err)
	}

	return &Reader{src: src, format: format}, nil
}

func parseHeaderTags(rest string) (Format, error) {
	format := Format{
		Interlacing: InterlaceUnknown,
		Colorspace:  "420",
		PixelFormat: core.I420,
	}
	hasAspectTag := false

	for _, tok := range strings.Fields(rest) {
		if tok == "" {
			continue
		}
		tag, val := tok[0], tok[1:]
		switch tag {
		case 'W':
			n, err := strconv.Atoi(val)
			if err != nil {
				return Format{}, fmt.Errorf("y4m: %w: bad W tag %q", core.ErrInvalidFormat, tok)
			}
			format.Width = n
		case 'H':
			n, err := strconv.Atoi(val)
			if err != nil {
				return Format{}, fmt.Errorf("y4m: %w: bad H tag %q", core.ErrInvalidFormat, tok)
			}
			format.Height = n
		case 'F':
			num, den, err := parseFraction(val)
			if err != nil {
				return Format{}, fmt.Errorf("y4m: %w: bad F tag %q", core.ErrInvalidFormat, tok)
			}
			format.FramerateNum, format.FramerateDen = num, den
		case 'I':
			if len(val) != 1 {
				return Format{}, fmt.Errorf("y4m: %w: bad I tag %q", core.ErrInvalidFormat, tok)
			}
			format.Interlacing = Interlacing(val[0])
		case 'A':
			num, den, err := parseFraction(val)
			if err != nil {
				return Format{}, fmt.Errorf("y4m: %w: bad A tag %q", core.ErrInvalidFormat, tok)
			}
			format.HasAspect = true
			format.AspectNum, format.AspectDen = num, den
			hasAspectTag = true
		case 'C':
			pf, err := parseColorspace(val)
			if err != nil {
				return Format{}, err
			}
			format.Colorspace = val
			format.PixelFormat = pf
		case 'X':
			// arbitrary, ignored
		default:
			// unknown tag: ignore per the tolerant tag grammar
		}
	}

	if !hasAspectTag {
		// "default 1:1 unless omitted, then left None" — spec.md §4.4
		// phrases this as a default that coexists with "may be omitted";
		// we honor the literal absence of the tag (HasAspect stays false)
		// so round-tripping a file with no A tag never invents one.
		format.HasAspect = false
	}

	return format, nil
}

func parseFraction(s string) (num, den int64, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("y4m: malformed fraction %q", s)
	}
	num, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	den, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return num, den, nil
}

func parseColorspace(tag string) (core.PixelFormat, error) {
	switch tag {
	case "420", "420jpeg", "420mpeg2", "420paldv":
		return core.I420, nil
	case "422":
		return core.I422, nil
	case "444":
		return core.I444, nil
	case "mono":
		return core.Mono, nil
	default:
		return 0, fmt.Errorf("y4m: %w: colorspace %q", core.ErrUnsupportedCodec, tag)
	}
}

// readLine reads bytes up to and not including a trailing '\n'.
func readLine(src mediaio.MediaReader) (string, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := src.Read(b)
		if n == 0 {
			if err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		if b[0] == '\n' {
			return string(line), nil
		}
		line = append(line, b[0])
	}
}

// Format returns the parsed stream format.
func (r *Reader) Format() Format { return r.format }

// StreamCount always reports 1.
func (r *Reader) StreamCount() int { return 1 }

// Seek is not supported by Reader.
func (r *Reader) Seek(pos int64) error { return core.ErrUnsupported }

// ReadPacket reads one "FRAME" marker, its optional per-frame tags, and
// the frame's raw plane bytes. Returns (nil, io.EOF) at a clean frame
// boundary; any other truncation is ErrUnexpectedEOF.
func (r *Reader) ReadPacket() (*core.Packet, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.done {
		return nil, io.EOF
	}

	magic := make([]byte, 5)
	n, err := readMaybeEOF(r.src, magic)
	if n == 0 && err == io.EOF {
		r.done = true
		return nil, io.EOF
	}
	if err != nil || n != 5 {
		r.err = fmt.Errorf("y4m: %w: reading FRAME marker", core.ErrUnexpectedEOF)
		return nil, r.err
	}
	if string(magic) != "FRAME" {
		r.err = fmt.Errorf("y4m: %w: expected \"FRAME\", got %q", core.ErrInvalidFormat, magic)
		return nil, r.err
	}

	if _, err := readLine(r.src); err != nil {
		r.err = fmt.Errorf("y4m: %w: reading frame tag line", core.ErrUnexpectedEOF)
		return nil, r.err
	}

	buf := make([]byte, r.format.FrameBytes())
	if err := mediaio.ReadFull(r.src, buf); err != nil {
		r.err = fmt.Errorf("y4m: %w: frame body truncated", core.ErrUnexpectedEOF)
		return nil, r.err
	}

	pkt := &core.Packet{
		Bytes:       buf,
		Pts:         r.frameIndex,
		Timebase:    core.NewTimebase(r.format.FramerateDen, r.format.FramerateNum),
		StreamIndex: 0,
		Keyframe:    true,
	}
	r.frameIndex++
	return pkt, nil
}

// readMaybeEOF reads into buf, returning (0, io.EOF) only if nothing at all
// could be read (a clean stream end), or a short count otherwise.
func readMaybeEOF(src mediaio.MediaReader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := src.Read(buf[total:])
		total += n
		if n == 0 || err == io.EOF {
			if total == 0 {
				return 0, io.EOF
			}
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
