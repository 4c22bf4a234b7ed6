package id3

import (
	"fmt"
)

// FrameFlags is the 2-byte flags field of a frame header.
type FrameFlags uint16

// v2.3 layout (%abc00000 ijk00000)
func (f FrameFlags) Compressed() bool { return f&0x0080 != 0 }
func (f FrameFlags) Encrypted() bool  { return f&0x0040 != 0 }

// v2.4 format flags (%0h00kmnp, low byte)
const (
	flagV24Unsynchronised      FrameFlags = 0x0002
	flagV24DataLengthIndicator FrameFlags = 0x0001
)

// Frame holds data structure for an ID3v2 frame, as found in the file.
type Frame struct {
	ID    string // 4-char
	Flags FrameFlags
	Data  []byte

	// Offset is the location in the data part, excluding tag header (10 bytes)
	// To get the offset from the first byte of ID3 tag, plus 10.
	Offset int
}

// IsText reports whether the frame is a text information frame (T000-TZZZ).
func (frame *Frame) IsText() bool {
	return len(frame.ID) == 4 && frame.ID[0] == 'T'
}

// IsPicture reports whether the frame is an attached picture.
func (frame *Frame) IsPicture() bool {
	return frame.ID == "APIC"
}

// ByteSize calculates the bytes the frame occupied in the tag: len(Data) + 10
// bytes of header.
func (frame *Frame) ByteSize() int {
	return len(frame.Data) + lenOfFrameHeader
}

func (frame *Frame) String() string {
	return fmt.Sprintf("[%04X] %s %-5d %016b %s", frame.Offset+lenOfHeader, frame.ID, len(frame.Data), uint16(frame.Flags), binaryView(frame.Data, 100))
}

// normalizeV24 undoes the v2.4 per-frame transformations that sit between
// the header and the payload proper.
func normalizeV24(data []byte, flags FrameFlags, tagFlags HeaderFlags) []byte {
	if flags&flagV24DataLengthIndicator != 0 && len(data) >= 4 {
		data = data[4:]
	}

	if flags&flagV24Unsynchronised != 0 || tagFlags.Unsynchronisation() {
		data = resync(data)
	}

	return data
}

func binaryView(buf []byte, max int) string {
	// Fallback to binary view
	if len(buf) > max {
		return fmt.Sprintf("%x[...]", buf[:max])
	}

	return fmt.Sprintf("%x", buf)
}
