package id3

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// PictureType is the picture type byte of an APIC frame.
type PictureType byte

var pictureTypes = [...]string{
	0x00: "Other",
	0x01: "32x32 pixels 'file icon' (PNG only)",
	0x02: "Other file icon",
	0x03: "Cover (front)",
	0x04: "Cover (back)",
	0x05: "Leaflet page",
	0x06: "Media (e.g. label side of CD)",
	0x07: "Lead artist/lead performer/soloist",
	0x08: "Artist/performer",
	0x09: "Conductor",
	0x0A: "Band/Orchestra",
	0x0B: "Composer",
	0x0C: "Lyricist/text writer",
	0x0D: "Recording Location",
	0x0E: "During recording",
	0x0F: "During performance",
	0x10: "Movie/video screen capture",
	0x11: "A bright coloured fish",
	0x12: "Illustration",
	0x13: "Band/artist logotype",
	0x14: "Publisher/Studio logotype",
}

// String returns the display name, or the raw value in hex when it is not in
// the table.
func (p PictureType) String() string {
	if int(p) < len(pictureTypes) {
		return pictureTypes[p]
	}

	return fmt.Sprintf("0x%02X", byte(p))
}

// Picture is the decoded payload of an APIC frame.
type Picture struct {
	Encoding byte
	MIMEType string
	Type     PictureType
	Data     []byte
}

// ParsePicture reads an APIC payload front to back:
//
//	Text encoding   $xx
//	MIME type       <text string> $00
//	Picture type    $xx
//	                $00 ...   (skipped)
//	Picture data    <binary data>
//
// A description, if the writer put one between the picture type and the
// data, is not split off.
func ParsePicture(data []byte) (*Picture, error) {
	if len(data) < 1 {
		return nil, errors.New("APIC frame is empty")
	}

	pic := &Picture{Encoding: data[0]}
	rest := data[1:]

	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return nil, errors.New("APIC frame: unterminated MIME type")
	}
	pic.MIMEType = string(rest[:end])
	rest = rest[end+1:]

	if len(rest) < 1 {
		return nil, errors.New("APIC frame: missing picture type")
	}
	pic.Type = PictureType(rest[0])
	rest = rest[1:]

	for len(rest) > 0 && rest[0] == 0 {
		rest = rest[1:]
	}
	pic.Data = rest

	return pic, nil
}
