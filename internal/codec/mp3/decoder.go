package mp3

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/core"
)

// Decoder is a placeholder core.Decoder: it never produces samples.
// Full Huffman/IMDCT decode is explicitly out of scope.
type Decoder struct{}

// NewDecoder builds a Decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// Decode always fails: MP3 sample decode is not implemented.
func (d *Decoder) Decode(pkt core.Packet) (core.Frame, error) {
	return nil, fmt.Errorf("mp3: %w: sample decode not implemented", core.ErrUnsupportedCodec)
}

// Flush never has buffered state, since Decode never succeeds.
func (d *Decoder) Flush() (core.Frame, error) { return nil, nil }
