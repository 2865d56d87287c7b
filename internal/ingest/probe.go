package ingest

import (
	"io"
	"time"

	"github.com/go-audio/wav"
	"github.com/tcolgate/mp3"
)

// Metadata is the best-effort container info shown to the uploader.
type Metadata struct {
	Duration    time.Duration
	BitrateKbps int
}

// Probe tries to read duration and bitrate from the audio container. It is
// purely informational: ok=false means "no metadata", never a reason to
// block ingestion.
func Probe(r io.ReadSeeker, declaredType string) (Metadata, bool) {
	switch declaredType {
	case "mp3":
		return probeMP3(r)
	case "wav":
		return probeWAV(r)
	default:
		return Metadata{}, false
	}
}

func probeMP3(r io.Reader) (Metadata, bool) {
	dec := mp3.NewDecoder(r)

	var (
		frame   mp3.Frame
		skipped int
		total   time.Duration
		bitrate int
		frames  int
	)
	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			break
		}
		total += frame.Duration()
		bitrate += int(frame.Header().BitRate())
		frames++
	}
	if frames == 0 || total <= 0 {
		return Metadata{}, false
	}
	return Metadata{
		Duration:    total,
		BitrateKbps: bitrate / frames / 1000,
	}, true
}

func probeWAV(r io.ReadSeeker) (Metadata, bool) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Metadata{}, false
	}
	dur, err := dec.Duration()
	if err != nil || dur <= 0 {
		return Metadata{}, false
	}
	return Metadata{
		Duration:    dur,
		BitrateKbps: int(dec.AvgBytesPerSec) * 8 / 1000,
	}, true
}
