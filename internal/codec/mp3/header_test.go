package mp3

import "testing"

// buildFrameHeader constructs a minimal 4-byte MPEG-1 Layer III frame
// header: version 1 (11), layer III (01), no protection, bitrate index,
// sample rate index, no padding, no private bit, stereo mode (00).
func buildFrameHeader(bitrateIdx, sampleRateIdx uint32) []byte {
	b := make([]byte, 4)
	b[0] = 0xFF
	b[1] = 0xE0 | 0x3<<3 | 0x1<<1 // version=11 (MPEG-1), layer=01 (Layer III), protection=0
	b[2] = byte(bitrateIdx<<4) | byte(sampleRateIdx<<2)
	b[3] = 0x00 // stereo, no emphasis
	return b
}

func TestSyncFrameFindsHeader(t *testing.T) {
	data := append([]byte{0x00, 0x00, 0x00}, buildFrameHeader(9, 0)...) // 128kbps, 44100Hz
	info, ok := SyncFrame(data)
	if !ok {
		t.Fatal("expected to find a frame sync")
	}
	if info.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.SampleRate)
	}
	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
	if info.Bitrate != 128 {
		t.Errorf("Bitrate = %d, want 128", info.Bitrate)
	}
}

func TestSyncFrameNoSync(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04}
	if _, ok := SyncFrame(data); ok {
		t.Fatal("expected no frame sync to be found")
	}
}

func TestSyncFrameSkipsReservedBitrate(t *testing.T) {
	junk := buildFrameHeader(0, 0) // bitrate index 0 is reserved/free, must be skipped
	data := append(junk, buildFrameHeader(9, 1)...)
	info, ok := SyncFrame(data)
	if !ok {
		t.Fatal("expected to find the second, valid header")
	}
	if info.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", info.SampleRate)
	}
}
