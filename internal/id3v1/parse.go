// Package id3v1 reads the fixed 128-byte ID3v1 / ID3v1.1 block found at the
// end of an MP3 file.
//
//	offset  length  field
//	0       3       "TAG"
//	3       30      title
//	33      30      artist
//	63      30      album
//	93      4       year
//	97      30      comment (28 when byte 125 is zero, see below)
//	126     1       track number (ID3v1.1, only when byte 125 is zero)
//	127     1       genre
package id3v1

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/yorkxin/mp3tag/internal/genre"
)

// Size is the length of an ID3v1 block in bytes.
const Size = 128

// Magic is the byte sequence appearing at the beginning of an ID3v1 block.
var Magic = []byte("TAG")

// ErrMalformed is returned by Parse when the block does not start with Magic.
var ErrMalformed = errors.New("id3v1: missing TAG marker")

// Tag holds the decoded fields of an ID3v1 block.
type Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    int // 0 when absent or not a number
	Comment string

	// Track is only meaningful when HasTrack is set (ID3v1.1).
	Track    int
	HasTrack bool

	GenreID int
}

// Genre returns the genre name. ok is false for ids outside the table, which
// includes 255, the customary "no genre" value.
func (t *Tag) Genre() (string, bool) {
	return genre.Name(t.GenreID)
}

// Parse slices block into its fields. Text fields are decoded with legacy;
// a nil legacy means ISO-8859-1.
//
// The track byte is recognised the way ID3v1.1 writers lay it out: a zero at
// offset 125 turns offset 126 into the track number and shortens the comment
// to 28 bytes. A v1.0 comment that happens to hold a zero there is read the
// same way.
func Parse(block [Size]byte, legacy encoding.Encoding) (*Tag, error) {
	if !bytes.Equal(block[0:3], Magic) {
		return nil, ErrMalformed
	}

	if legacy == nil {
		legacy = charmap.ISO8859_1
	}

	dec := legacy.NewDecoder()
	text := func(b []byte) string {
		// legacy decoders map every byte; an error here means a broken charmap
		s, err := dec.Bytes(b)
		if err != nil {
			s = b
		}
		return trim(string(s))
	}

	tag := &Tag{
		Title:   text(block[3:33]),
		Artist:  text(block[33:63]),
		Album:   text(block[63:93]),
		Year:    parseYear(block[93:97]),
		GenreID: int(block[127]),
	}

	if block[125] == 0 {
		tag.Comment = text(block[97:125])
		tag.Track = int(block[126])
		tag.HasTrack = true
	} else {
		tag.Comment = text(block[97:127])
	}

	return tag, nil
}

func parseYear(b []byte) int {
	year, err := strconv.Atoi(trim(string(b)))
	if err != nil || year < 0 {
		return 0
	}

	return year
}

func trim(s string) string {
	return strings.Trim(s, " \x00")
}
