// Package speech turns explanation text into playable audio chunks.
//
// The orchestrator narrates each extracted step through a Synthesizer and
// forwards the resulting chunks to the client alongside the step timeline
// events. Real deployments plug in a TTS backend; tests and audio-less
// deployments use NullSynthesizer.
package speech

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Chunk is one unit of synthesized audio.
type Chunk struct {
	// AudioBase64 is the base64-encoded audio payload.
	AudioBase64 string
	// MimeType describes the audio encoding, e.g. "audio/pcm".
	MimeType string
	// DurationMs is the playback duration of this chunk.
	DurationMs int64
}

// Synthesizer converts text into audio chunks.
type Synthesizer interface {
	// Synthesize returns the audio chunks for the given text.
	Synthesize(ctx context.Context, text string) ([]Chunk, error)
}

// NullSynthesizer produces deterministic placeholder audio without calling
// any TTS backend. Duration is estimated from text length at a fixed
// speaking rate so timeline tests get stable, reproducible timings.
type NullSynthesizer struct {
	// MsPerChar is the estimated playback time per character.
	// Zero means the default of 60ms (roughly 200 words per minute).
	MsPerChar int64
}

func (n *NullSynthesizer) Synthesize(ctx context.Context, text string) ([]Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	msPerChar := n.MsPerChar
	if msPerChar <= 0 {
		msPerChar = 60
	}

	payload := fmt.Sprintf("null-audio:%s", text)
	return []Chunk{{
		AudioBase64: base64.StdEncoding.EncodeToString([]byte(payload)),
		MimeType:    "audio/null",
		DurationMs:  int64(len(text)) * msPerChar,
	}}, nil
}
