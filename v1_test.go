package mp3tag

import (
	"bytes"
	"testing"
)

func TestTagV1(t *testing.T) {
	tests := []struct {
		name        string
		block       []byte
		wantVersion Version
		wantTrack   int
		wantHas     bool
		wantGenre   string
		wantGenreID int
		wantGenreOK bool
		wantComment string
	}{
		{
			name:        "ID3v1.1 with genre Rock",
			block:       generateV1("t", "a", "b", "2000", "c", 9, 0x11),
			wantVersion: Version{1, 1},
			wantTrack:   9,
			wantHas:     true,
			wantGenre:   "Rock",
			wantGenreID: 17,
			wantGenreOK: true,
			wantComment: "c",
		},
		{
			name:        "ID3v1.0 with unknown genre",
			block:       generateV1("t", "a", "b", "2000", "a thirty byte long comment...", 0, 255),
			wantVersion: Version{1, 0},
			wantTrack:   0,
			wantGenre:   "",
			wantGenreID: 255,
			wantGenreOK: false,
			wantComment: "a thirty byte long comment...",
		},
		{
			// a zero byte at 125 means ID3v1.1 even with track 0
			name:        "last genre in the table",
			block:       generateV1("t", "a", "b", "2000", "", 0, 125),
			wantVersion: Version{1, 1},
			wantHas:     true,
			wantGenre:   "Dance Hall",
			wantGenreID: 125,
			wantGenreOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := ReadV1(bytes.NewReader(tt.block))
			if err != nil {
				t.Fatal(err)
			}

			if got := tag.Version(); got != tt.wantVersion {
				t.Errorf("Version() = %v, want %v", got, tt.wantVersion)
			}
			if got := tag.Track(); got != tt.wantTrack {
				t.Errorf("Track() = %d, want %d", got, tt.wantTrack)
			}
			if got := tag.HasTrack(); got != tt.wantHas {
				t.Errorf("HasTrack() = %v", got)
			}
			if got := tag.Genre(); got != tt.wantGenre {
				t.Errorf("Genre() = %q, want %q", got, tt.wantGenre)
			}
			if id, ok := tag.GenreID(); id != tt.wantGenreID || ok != tt.wantGenreOK {
				t.Errorf("GenreID() = %d, %v, want %d, %v", id, ok, tt.wantGenreID, tt.wantGenreOK)
			}
			if got := tag.Comment(); got != tt.wantComment {
				t.Errorf("Comment() = %q, want %q", got, tt.wantComment)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{1, 0}, "ID3v1.0"},
		{Version{1, 1}, "ID3v1.1"},
		{Version{3, 0}, "ID3v2.3.0"},
		{Version{4, 0}, "ID3v2.4.0"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
