package mp3tag

import (
	"bytes"
	"io"
	"testing"
	"time"
)

// MPEG-1 Layer III, 128 kbps, 44.1 kHz, joint stereo
var mpegFrameHeader = []byte{0xFF, 0xFB, 0x90, 0x64}

func generateMP3(tag []byte, audioBytes int) []byte {
	body := make([]byte, audioBytes)
	copy(body, mpegFrameHeader)
	return concat(tag, body)
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		totalSize int64
		want      time.Duration
		wantErr   bool
	}{
		{
			name:      "no tag",
			data:      generateMP3(nil, 16000),
			totalSize: 16000,
			want:      time.Second,
		},
		{
			name:      "ID3v2 tag is not counted",
			data:      generateMP3(v23Tag, 32000),
			totalSize: int64(len(v23Tag) + 32000),
			want:      2 * time.Second,
		},
		{
			name:      "size taken from the reader",
			data:      generateMP3(v23Tag, 8000),
			totalSize: -1,
			want:      500 * time.Millisecond,
		},
		{
			name:      "not an MPEG frame",
			data:      concat(v23Tag, audio),
			totalSize: int64(len(v23Tag) + len(audio)),
			wantErr:   true,
		},
		{
			name:      "nothing after the tag",
			data:      v23Tag,
			totalSize: int64(len(v23Tag)),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateDuration(bytes.NewReader(tt.data), tt.totalSize)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EstimateDuration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("EstimateDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateDuration_UnsizedReader(t *testing.T) {
	r := io.MultiReader(bytes.NewReader(generateMP3(nil, 100)))

	if _, err := EstimateDuration(r, -1); err == nil {
		t.Error("EstimateDuration() on an unsized reader with no size should fail")
	}
}
