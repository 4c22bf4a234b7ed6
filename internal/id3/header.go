package id3

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var id3v2Flag = []byte("ID3") // first 3 bytes of an MP3 file with ID3v2 tag
const lenOfHeader = 10        // fixed length of the ID3v2 header

// HeaderSize is the length of the ID3v2 tag header.
const HeaderSize = lenOfHeader

// HeaderFlags is the flags byte of the tag header.
type HeaderFlags uint8

func (f HeaderFlags) Unsynchronisation() bool {
	return f&0b10000000 != 0
}

func (f HeaderFlags) ExtendedHeader() bool {
	return f&0b01000000 != 0
}

func (f HeaderFlags) Experimental() bool {
	return f&0b00100000 != 0
}

// Header is the 10-byte ID3v2 tag header.
//
//	ID3v2/file identifier   "ID3"
//	ID3v2 version           $03 00
//	ID3v2 flags             %abc00000
//	ID3v2 size              4 * %0xxxxxxx
type Header struct {
	Version  uint8 // major version, e.g. 3 for ID3v2.3
	Revision uint8
	Flags    HeaderFlags
	Size     int // tag size excluding this header
}

// TagSize returns total bytes of the ID3 tag, including header.
func (h *Header) TagSize() int {
	return h.Size + lenOfHeader
}

// NotHeaderError is returned when the input does not start with "ID3".
type NotHeaderError struct {
	Magic [3]byte
}

func (err *NotHeaderError) Error() string {
	return fmt.Sprintf("not an ID3v2 header: %q", err.Magic[:])
}

// HasMagic reports whether b starts with "ID3".
func HasMagic(b []byte) bool {
	return len(b) >= 3 && bytes.Equal(b[0:3], id3v2Flag)
}

// ParseHeader decodes a tag header.
func ParseHeader(headerBytes [lenOfHeader]byte) (*Header, error) {
	if !HasMagic(headerBytes[:]) {
		err := &NotHeaderError{}
		copy(err.Magic[:], headerBytes[0:3])
		return nil, err
	}

	return &Header{
		Version:  headerBytes[3],
		Revision: headerBytes[4],
		Flags:    HeaderFlags(headerBytes[5]),
		Size:     decodeTagSize(headerBytes[6:lenOfHeader]), // 6, 7, 8, 9
	}, nil
}

// Valid reports whether headerBytes is an ID3v2 header a conforming writer
// could have produced: the magic, a version byte and revision byte that are
// not 0xFF, and a size whose bytes all have the high bit clear.
func Valid(headerBytes [lenOfHeader]byte) bool {
	if !HasMagic(headerBytes[:]) {
		return false
	}

	if headerBytes[3] == 0xFF || headerBytes[4] == 0xFF {
		return false
	}

	for _, b := range headerBytes[6:lenOfHeader] {
		if b&0x80 != 0 {
			return false
		}
	}

	return true
}

func readHeader(r io.Reader) (*Header, int, error) {
	headerBytes := [lenOfHeader]byte{}
	n, err := io.ReadFull(r, headerBytes[:])
	if err != nil {
		return nil, n, errors.Wrap(err, "read v2 header")
	}

	header, err := ParseHeader(headerBytes)
	return header, n, err
}

// decodeTagSize returns an integer from 4-byte (32-bit) input.
// In the ID3v2 format the MSB of each byte is always 0 and ignored.
//
// NOTE: If data is longer than 4 bytes, only the first 4 bytes will be processed.
//
// For example:
//
//	(0x) 00 00 02 01
//	=> _0000000 _0000000 _0000010 _0000001
//	=> 10_0000001
//	=> 0x101
//	=> 257 (dec)
func decodeTagSize(data []byte) int {
	size := 0

	for place := 0; place < 4 && place < len(data); place++ {
		value := data[place] & 0b01111111 // effect bits are lower 7 bits
		size += int(value) << ((3 - place) * 7)
	}

	return size
}
