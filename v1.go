package mp3tag

import (
	"github.com/yorkxin/mp3tag/internal/genre"
	"github.com/yorkxin/mp3tag/internal/id3v1"
)

// TagV1 is an ID3v1 or ID3v1.1 tag.
type TagV1 struct {
	t id3v1.Tag
}

func (t *TagV1) isTag() {}

func (t *TagV1) Version() Version {
	if t.t.HasTrack {
		return Version{Major: 1, Minor: 1}
	}

	return Version{Major: 1, Minor: 0}
}

func (t *TagV1) Title() string   { return t.t.Title }
func (t *TagV1) Artist() string  { return t.t.Artist }
func (t *TagV1) Album() string   { return t.t.Album }
func (t *TagV1) Year() int       { return t.t.Year }
func (t *TagV1) Comment() string { return t.t.Comment }

// Track returns the ID3v1.1 track number, 0 when the block has none.
func (t *TagV1) Track() int {
	if !t.t.HasTrack {
		return 0
	}

	return t.t.Track
}

// HasTrack reports whether the comment field gave up its last two bytes to
// a track number.
func (t *TagV1) HasTrack() bool {
	return t.t.HasTrack
}

func (t *TagV1) Genre() string {
	name, _ := genre.Name(t.t.GenreID)
	return name
}

func (t *TagV1) GenreID() (int, bool) {
	if _, ok := genre.Name(t.t.GenreID); !ok {
		return t.t.GenreID, false
	}

	return t.t.GenreID, true
}
