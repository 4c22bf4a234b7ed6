// Package mp3tag reads ID3 tags from MP3 files.
//
// Read and Open locate the tag: an ID3v2.3 or ID3v2.4 tag at the start of the
// file yields a *TagV2, an ID3v1 block in the last 128 bytes a *TagV1. Both
// satisfy Tag; use a type switch for version specific data.
//
//	tag, err := mp3tag.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	switch t := tag.(type) {
//	case *mp3tag.TagV2:
//		for _, p := range t.Pictures() {
//			...
//		}
//	case *mp3tag.TagV1:
//		...
//	}
//
// Tags are read whole and never change afterwards.
package mp3tag

import (
	"fmt"
	"log"
)

// Version is the version of a tag. ID3v2.3.0 is {3, 0}; ID3v1 tags are {1, 0},
// or {1, 1} when the block carries a track number.
type Version struct {
	Major uint8
	Minor uint8
}

func (v Version) String() string {
	if v.Major <= 1 {
		return fmt.Sprintf("ID3v1.%d", v.Minor)
	}

	return fmt.Sprintf("ID3v2.%d.%d", v.Major, v.Minor)
}

// Tag is the metadata common to every tag version. The set of
// implementations is closed: *TagV1 and *TagV2.
type Tag interface {
	Version() Version
	Title() string
	Artist() string
	Album() string
	Comment() string

	// Year and Track are 0 when absent.
	Year() int
	Track() int

	// Genre is the genre name, "" when absent or unknown.
	Genre() string

	// GenreID is the numeric genre code. ok is false when the tag has no
	// genre or a code outside the genre table.
	GenreID() (id int, ok bool)

	isTag()
}

// Logging enables debug logging through the standard logger if set to true.
var Logging LogFlag

type LogFlag bool

func (l LogFlag) Println(args ...interface{}) {
	if l {
		log.Println(args...)
	}
}

func (l LogFlag) Printf(format string, args ...interface{}) {
	if l {
		log.Printf(format, args...)
	}
}
