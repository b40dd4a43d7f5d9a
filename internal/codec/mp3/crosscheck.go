package mp3

import (
	"bytes"
	"fmt"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// CrossCheckSampleRate decodes just enough of an MP3 stream with go-mp3 to
// read its reported sample rate, for cross-checking against SyncFrame's
// hand-decoded header. It never reads PCM samples out of the decoder.
func CrossCheckSampleRate(data []byte) (int, error) {
	d, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("mp3: go-mp3 cross-check: %w", err)
	}
	return d.SampleRate(), nil
}
