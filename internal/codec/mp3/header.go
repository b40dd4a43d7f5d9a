// Package mp3 provides just enough of the MPEG-1 Layer III frame header
// to report stream parameters; it never decodes audio samples. Full
// Huffman/IMDCT decode is out of scope (spec §1 Non-goals), so Decoder
// always fails with core.ErrUnsupportedCodec.
package mp3

import (
	"fmt"

	"github.com/linuxmatters/ffmpreg/internal/mediaio"
)

// FrameInfo describes one MPEG-1 Layer III frame's header fields.
type FrameInfo struct {
	SampleRate uint32
	Channels   uint8
	FrameSize  int
	Bitrate    int
}

var bitrateTableV1L3 = [16]int{
	0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0,
}

var sampleRateTableV1 = [4]uint32{44100, 48000, 32000, 0}

// SyncFrame scans data byte-by-byte for the frame sync (0xFF followed by
// the top 3 bits of the next byte set, matching go-mp3's frame-sync
// check) and, once found, decodes the MPEG-1 Layer III header fields
// with a BitReader positioned right after the sync. Reports ok=false if
// no valid sync/header is found.
func SyncFrame(data []byte) (FrameInfo, bool) {
	for start := 0; start+4 <= len(data); start++ {
		if data[start] != 0xFF || data[start+1]&0xE0 != 0xE0 {
			continue
		}

		br := mediaio.NewBitReader(data[start:])
		br.SkipBits(11) // sync already verified above

		version, _ := br.ReadBits(2)
		layer, _ := br.ReadBits(2)
		br.SkipBits(1) // protection bit, unused
		bitrateIdx, _ := br.ReadBits(4)
		sampleRateIdx, _ := br.ReadBits(2)
		padding, _ := br.ReadBit()
		br.SkipBits(1) // private bit, unused
		channelMode, _ := br.ReadBits(2)

		if version != 0b11 || layer != 0b01 {
			// only MPEG-1 Layer III is modeled
			continue
		}
		if bitrateIdx == 0 || bitrateIdx == 15 || sampleRateIdx == 3 {
			continue
		}

		bitrate := bitrateTableV1L3[bitrateIdx]
		sampleRate := sampleRateTableV1[sampleRateIdx]
		channels := uint8(2)
		if channelMode == 0b11 {
			channels = 1
		}

		paddingBytes := 0
		if padding {
			paddingBytes = 1
		}
		frameSize := (144*bitrate*1000)/int(sampleRate) + paddingBytes

		return FrameInfo{
			SampleRate: sampleRate,
			Channels:   channels,
			FrameSize:  frameSize,
			Bitrate:    bitrate,
		}, true
	}

	return FrameInfo{}, false
}

func (f FrameInfo) String() string {
	return fmt.Sprintf("mp3 frame: %dHz %dch %d bytes @ %dkbps", f.SampleRate, f.Channels, f.FrameSize, f.Bitrate)
}
