package id3

import (
	"bytes"
	"io"
	"testing"
)

func TestSkipReader_ReadThrough(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x64}
	tag := generateTag(3, 0, 100, generateTextFrame("TIT2", "Foo Bar"))

	footer := generateTag(4, 0b00010000, 0, generateTextFrame("TIT2", "Foo Bar"))
	footer = append(footer, []byte("3DI\x04\x00\x10\x00\x00\x00\x12")...)

	tests := []struct {
		name    string
		input   []byte
		want    int
		wantErr bool
	}{
		{"tag then audio", append(append([]byte{}, tag...), audio...), len(tag), false},
		{"v2.4 footer", append(append([]byte{}, footer...), audio...), len(footer), false},
		{"no tag", audio, 0, false},
		{"empty input", []byte{}, 0, false},
		{"truncated tag", tag[:50], 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSkipReader(bytes.NewReader(tt.input))
			got, err := s.ReadThrough()
			if (err != nil) != tt.wantErr {
				t.Errorf("SkipReader.ReadThrough() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("SkipReader.ReadThrough() = %v, want %v", got, tt.want)
			}
			if tt.wantErr {
				return
			}

			rest, err := io.ReadAll(s)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(rest, tt.input[got:]) {
				t.Errorf("Read() after skip = %x, want %x", rest, tt.input[got:])
			}
		})
	}
}
