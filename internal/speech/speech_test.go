package speech

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullSynthesizer(t *testing.T) {
	tests := []struct {
		name       string
		msPerChar  int64
		text       string
		wantChunks int
		wantMs     int64
	}{
		{"default rate", 0, "x = 2.", 1, 6 * 60},
		{"custom rate", 10, "2x = 4.", 1, 70},
		{"empty text", 10, "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syn := &NullSynthesizer{MsPerChar: tt.msPerChar}
			chunks, err := syn.Synthesize(context.Background(), tt.text)
			require.NoError(t, err)
			require.Len(t, chunks, tt.wantChunks)
			if tt.wantChunks == 0 {
				return
			}
			assert.Equal(t, "audio/null", chunks[0].MimeType)
			assert.Equal(t, tt.wantMs, chunks[0].DurationMs)
		})
	}
}

func TestNullSynthesizerPayloadRoundTrips(t *testing.T) {
	syn := &NullSynthesizer{MsPerChar: 1}
	chunks, err := syn.Synthesize(context.Background(), "Divide by 2.")
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	raw, err := base64.StdEncoding.DecodeString(chunks[0].AudioBase64)
	require.NoError(t, err)
	assert.Equal(t, "null-audio:Divide by 2.", string(raw))
}

func TestNullSynthesizerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	syn := &NullSynthesizer{}
	_, err := syn.Synthesize(ctx, "never spoken")
	require.ErrorIs(t, err, context.Canceled)
}
