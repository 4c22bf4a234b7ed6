package mp3tag

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/encoding"

	"github.com/yorkxin/mp3tag/internal/id3"
)

// Picture is the decoded payload of an APIC frame.
type Picture = id3.Picture

// PictureType is the picture type byte of an APIC frame. Its String method
// returns names like "Cover (front)".
type PictureType = id3.PictureType

// Frame is one frame of an ID3v2 tag. The set of implementations is closed:
// *TextFrame for text information frames (IDs starting with 'T'), *ImageFrame
// for APIC and *RawFrame for everything else.
type Frame interface {
	// ID is the 4-character frame identifier, e.g. "TIT2".
	ID() string
	// Data is the frame payload as stored in the tag.
	Data() []byte
	// Version is the version of the tag the frame belongs to.
	Version() Version
	String() string

	isFrame()
}

type frameBase struct {
	raw     id3.Frame
	version Version
}

func (f *frameBase) ID() string       { return f.raw.ID }
func (f *frameBase) Data() []byte     { return f.raw.Data }
func (f *frameBase) Version() Version { return f.version }
func (f *frameBase) isFrame()         {}

// Offset is the position of the frame header from the start of the tag.
func (f *frameBase) Offset() int {
	return f.raw.Offset + id3.HeaderSize
}

// TextFrame is a text information frame. The payload starts with a text
// encoding marker; Text decodes it on first use.
type TextFrame struct {
	frameBase
	legacy encoding.Encoding

	once  sync.Once
	value string
	err   error
}

// Text returns the frame content as UTF-8 with surrounding whitespace and
// NUL padding removed.
func (f *TextFrame) Text() (string, error) {
	f.once.Do(func() {
		f.value, f.err = id3.DecodeText(f.raw.Data, f.version.Major, f.legacy)
		if f.err != nil {
			Logging.Printf("mp3tag: frame %s: %v", f.raw.ID, f.err)
		}
	})

	return f.value, f.err
}

// Value is Text without the error; undecodable frames read as "".
func (f *TextFrame) Value() string {
	s, _ := f.Text()
	return s
}

// Values splits the content on NUL, the ID3v2.4 separator for frames with
// several values.
func (f *TextFrame) Values() []string {
	s := f.Value()
	if s == "" {
		return nil
	}

	return strings.Split(s, "\x00")
}

func (f *TextFrame) String() string {
	return fmt.Sprintf("[%04X] %s %q", f.Offset(), f.raw.ID, f.Value())
}

// ImageFrame is an attached picture (APIC).
type ImageFrame struct {
	frameBase

	once sync.Once
	pic  *Picture
	err  error
}

// Picture parses the frame payload on first use.
func (f *ImageFrame) Picture() (*Picture, error) {
	f.once.Do(func() {
		f.pic, f.err = id3.ParsePicture(f.raw.Data)
	})

	return f.pic, f.err
}

func (f *ImageFrame) String() string {
	pic, err := f.Picture()
	if err != nil {
		return fmt.Sprintf("[%04X] %s invalid: %v", f.Offset(), f.raw.ID, err)
	}

	return fmt.Sprintf("[%04X] %s %s %s, %d bytes", f.Offset(), f.raw.ID, pic.Type, pic.MIMEType, len(pic.Data))
}

// RawFrame is any frame without a dedicated decoder. Data is all there is.
type RawFrame struct {
	frameBase
}

func (f *RawFrame) String() string {
	return f.raw.String()
}

func newFrame(raw id3.Frame, version Version, legacy encoding.Encoding) Frame {
	base := frameBase{raw: raw, version: version}

	switch {
	case raw.IsPicture():
		return &ImageFrame{frameBase: base}
	case raw.IsText():
		return &TextFrame{frameBase: base, legacy: legacy}
	default:
		return &RawFrame{frameBase: base}
	}
}
