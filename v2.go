package mp3tag

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/yorkxin/mp3tag/internal/genre"
	"github.com/yorkxin/mp3tag/internal/id3"
)

// TagV2 is an ID3v2.3 or ID3v2.4 tag.
type TagV2 struct {
	header  id3.Header
	frames  []Frame
	padding int
	legacy  encoding.Encoding
}

func (t *TagV2) isTag() {}

func (t *TagV2) Version() Version {
	return Version{Major: t.header.Version, Minor: t.header.Revision}
}

// Size returns total bytes of the tag, including the 10-byte header.
func (t *TagV2) Size() int {
	return t.header.TagSize()
}

// PaddingSize returns the number of bytes between the last frame and the end
// of the tag.
func (t *TagV2) PaddingSize() int {
	return t.padding
}

func (t *TagV2) Unsynchronised() bool {
	return t.header.Flags.Unsynchronisation()
}

func (t *TagV2) Experimental() bool {
	return t.header.Flags.Experimental()
}

// Frames returns every frame in file order.
func (t *TagV2) Frames() []Frame {
	frames := make([]Frame, len(t.frames))
	copy(frames, t.frames)
	return frames
}

// Frame returns the first frame with the given ID, or nil.
func (t *TagV2) Frame(id string) Frame {
	for _, f := range t.frames {
		if f.ID() == id {
			return f
		}
	}

	return nil
}

// Text returns the content of the first text frame with the given ID, ""
// when there is none.
func (t *TagV2) Text(id string) string {
	if f, ok := t.Frame(id).(*TextFrame); ok {
		return f.Value()
	}

	return ""
}

func (t *TagV2) Title() string  { return t.Text("TIT2") }
func (t *TagV2) Artist() string { return t.Text("TPE1") }
func (t *TagV2) Album() string  { return t.Text("TALB") }

// Year reads the first four digits of the recording time (TDRC), falling
// back to the ID3v2.3 year frame (TYER).
func (t *TagV2) Year() int {
	for _, id := range []string{"TDRC", "TYER"} {
		s := t.Text(id)
		if len(s) < 4 {
			continue
		}

		if year, err := strconv.Atoi(s[:4]); err == nil && year > 0 {
			return year
		}
	}

	return 0
}

// Track returns the track number from TRCK ("3" or "3/12").
func (t *TagV2) Track() int {
	track, _ := splitPosition(t.Text("TRCK"))
	return track
}

// Tracks returns the total number of tracks from TRCK, 0 when the frame does
// not have the "N/M" form.
func (t *TagV2) Tracks() int {
	_, tracks := splitPosition(t.Text("TRCK"))
	return tracks
}

func (t *TagV2) Genre() string {
	_, name, _ := t.genre()
	return name
}

func (t *TagV2) GenreID() (int, bool) {
	id, _, ok := t.genre()
	return id, ok
}

// genre picks the first TCON value found in the genre table, or the first
// value when none is. ID3v2.4 separates values with NUL.
func (t *TagV2) genre() (id int, name string, ok bool) {
	f, isText := t.Frame("TCON").(*TextFrame)
	if !isText {
		return -1, "", false
	}

	values := f.Values()
	for _, v := range values {
		if id, name, ok := parseGenre(v); ok {
			return id, name, true
		}
	}

	if len(values) == 0 {
		return -1, "", false
	}

	return parseGenre(values[0])
}

// Comment returns the text of the first COMM frame.
func (t *TagV2) Comment() string {
	raw, ok := t.Frame("COMM").(*RawFrame)
	if !ok {
		return ""
	}

	_, _, text, err := id3.DecodeComment(raw.Data(), t.header.Version, t.legacy)
	if err != nil {
		Logging.Printf("mp3tag: COMM: %v", err)
		return ""
	}

	return text
}

// Pictures returns the attached pictures that could be parsed.
func (t *TagV2) Pictures() []*Picture {
	var pics []*Picture

	for _, f := range t.frames {
		img, ok := f.(*ImageFrame)
		if !ok {
			continue
		}

		pic, err := img.Picture()
		if err != nil {
			Logging.Printf("mp3tag: APIC at %04X: %v", img.Offset(), err)
			continue
		}
		pics = append(pics, pic)
	}

	return pics
}

// splitPosition parses "N/M" or "N".
func splitPosition(s string) (n, total int) {
	parts := strings.SplitN(s, "/", 2)

	n, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		total, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}

	return n, total
}

// parseGenre reads a TCON value. Writers use "(17)", "(17)Rock", "17" or
// just "Rock"; the numeric forms refer to the ID3v1 table. "(RX)" and "(CR)"
// stand for Remix and Cover.
func parseGenre(s string) (id int, name string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, "", false
	}

	if strings.HasPrefix(s, "(") {
		if end := strings.IndexByte(s, ')'); end > 0 {
			ref, rest := s[1:end], strings.TrimSpace(s[end+1:])

			switch ref {
			case "RX":
				return -1, "Remix", false
			case "CR":
				return -1, "Cover", false
			}

			if n, err := strconv.Atoi(ref); err == nil {
				if name, ok := genre.Name(n); ok {
					return n, name, true
				}
				if rest != "" {
					return n, rest, false
				}
				return n, "", false
			}
		}
	}

	if n, err := strconv.Atoi(s); err == nil {
		name, ok := genre.Name(n)
		return n, name, ok
	}

	if n, ok := genre.ID(s); ok {
		name, _ := genre.Name(n)
		return n, name, true
	}

	return -1, s, false
}
