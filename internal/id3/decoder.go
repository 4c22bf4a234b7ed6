package id3

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"go4.org/readerutil"
)

const lenOfFrameHeader = 10

// Logger receives debug messages from the Decoder. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Tag is the whole ID3v2 tag block: the header, every frame in file order and
// the size of the padding that follows them.
type Tag struct {
	Header      Header
	Frames      []Frame
	PaddingSize int
}

// Decoder reads one ID3v2 tag from r.
type Decoder struct {
	r    io.Reader
	n    int64 // n bytes that has already been read
	size int   // total size of the tag payload, excluding header

	// Log, when set, is told why the frame loop stopped early.
	Log Logger

	tag *Tag
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the header, then frames until the declared tag size is used
// up. A frame header that is cut off by the tag boundary, carries an ID
// outside [A-Z0-9]{4}, or declares a payload running past the boundary ends
// the frame list without an error: that is how padding and trailing garbage
// look. So does input that ends inside the padding or inside a frame header.
// Running out of input inside a frame payload is an error, except for
// unsynchronised tags, which are read whole and cut where the input ends.
//
// On success the reader is positioned right after the tag.
func (d *Decoder) Decode() (*Tag, error) {
	header, n, err := readHeader(d.r)
	d.n += int64(n)
	if err != nil {
		return nil, err
	}

	d.size = header.Size
	d.tag = &Tag{Header: *header, Frames: make([]Frame, 0)}

	// Avoid read exceeding ID3 Tag boundary
	var body io.Reader = io.LimitReader(d.r, int64(d.size))
	bodySize := d.size

	if header.Flags.Unsynchronisation() && header.Version < 4 {
		raw := make([]byte, d.size)
		n, err := io.ReadFull(body, raw)
		d.n += int64(n)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			d.logf("id3: input ended inside the tag at %04X", n+lenOfHeader)
			raw = raw[:n]
		} else if err != nil {
			return nil, errors.Wrap(err, "read unsynchronised tag body")
		}

		raw = resync(raw)
		body = bytes.NewReader(raw)
		bodySize = len(raw)
	} else {
		body = readerutil.CountingReader{Reader: body, N: &d.n}
	}

	pos := 0
	done := false

	if header.Flags.ExtendedHeader() {
		n, ok, err := d.skipExtendedHeader(body, bodySize)
		pos += n
		if err != nil {
			return nil, err
		}
		// nothing parsable past a bogus extended header
		done = !ok
	}

	framesEnd := pos
	truncated := false

	for !done && bodySize-pos >= lenOfFrameHeader {
		frame, n, err := d.readFrame(body, bodySize-pos)
		pos += n

		if err == errTruncatedHeader {
			truncated = true
			break
		}

		if err != nil {
			return nil, errors.Wrapf(err, "read frame failed at %04X", framesEnd+lenOfHeader)
		}

		if frame == nil {
			break
		}

		frame.Offset = framesEnd
		d.tag.Frames = append(d.tag.Frames, *frame)
		framesEnd = pos
	}

	d.tag.PaddingSize = bodySize - framesEnd

	if truncated {
		d.logf("id3: input ended inside the tag at %04X", pos+lenOfHeader)
		return d.tag, nil
	}

	// discard padding bytes
	m, err := io.CopyN(ioutil.Discard, body, int64(bodySize-pos))
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		d.logf("id3: input ended inside the tag at %04X", pos+int(m)+lenOfHeader)
		return d.tag, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "discard padding")
	}

	return d.tag, nil
}

var errTruncatedHeader = errors.New("truncated frame header")

// readFrame reads an ID3 frame from r, which has remaining bytes left before
// the tag boundary.
//
// Returns a nil *Frame and nil error when the frame loop should stop: the
// caller discards the rest of the tag as padding.
func (d *Decoder) readFrame(r io.Reader, remaining int) (*Frame, int, error) {
	header := [lenOfFrameHeader]byte{}
	n, err := io.ReadFull(r, header[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, n, errTruncatedHeader
	}
	if err != nil {
		return nil, n, err
	}

	// Frame ID       $xx xx xx xx (four characters)
	// Size           $xx xx xx xx
	// Flags          $xx xx

	// verify if the id is a valid string; all-zero padding fails here too
	idRaw := header[0:4]
	if !validFrameID(idRaw) {
		if !allZero(header[:]) {
			d.logf("id3: invalid frame id %q, stopping", idRaw)
		}
		return nil, n, nil
	}

	var size int
	if d.tag.Header.Version >= 4 {
		size = decodeTagSize(header[4:8])
	} else {
		size = int(binary.BigEndian.Uint32(header[4:8]))
	}

	if size < 0 || size > remaining-lenOfFrameHeader {
		d.logf("id3: frame %s declares %d bytes, only %d left in tag", idRaw, size, remaining-lenOfFrameHeader)
		return nil, n, nil
	}

	flags := FrameFlags(binary.BigEndian.Uint16(header[8:10]))
	data := make([]byte, size)
	// In case of HTTP response body, r is a bufio.Reader, and in some cases
	// r.Read() may not fill the whole len(data). Using io.ReadFull ensures it
	// fills the whole len(data) slice.
	m, err := io.ReadFull(r, data)
	n += m
	if err != nil {
		return nil, n, err
	}

	if d.tag.Header.Version >= 4 {
		data = normalizeV24(data, flags, d.tag.Header.Flags)
	}

	return &Frame{
		ID:    string(idRaw),
		Flags: flags,
		Data:  data,
	}, n, nil
}

// skipExtendedHeader consumes the extended header. ok is false when the
// declared size does not fit into the tag.
func (d *Decoder) skipExtendedHeader(r io.Reader, bodySize int) (n int, ok bool, err error) {
	if bodySize < 4 {
		return 0, false, nil
	}

	sizeBytes := [4]byte{}
	n, err = io.ReadFull(r, sizeBytes[:])
	if err != nil {
		return n, false, errors.Wrap(err, "read extended header")
	}

	// v2.3 counts the bytes after the size field, v2.4 counts the whole thing.
	var rest int
	if d.tag.Header.Version >= 4 {
		rest = decodeTagSize(sizeBytes[:]) - 4
	} else {
		rest = int(binary.BigEndian.Uint32(sizeBytes[:]))
	}

	if rest < 0 || rest > bodySize-n {
		d.logf("id3: extended header size %d exceeds tag", rest)
		return n, false, nil
	}

	m, err := io.CopyN(ioutil.Discard, r, int64(rest))
	n += int(m)
	if err != nil {
		return n, false, errors.Wrap(err, "skip extended header")
	}

	return n, true, nil
}

// InputOffset returns how many bytes that the decoder has read so far.
func (d *Decoder) InputOffset() int {
	return int(d.n)
}

func (d *Decoder) logf(format string, v ...interface{}) {
	if d.Log != nil {
		d.Log.Printf(format, v...)
	}
}

func validFrameID(id []byte) bool {
	if len(id) != 4 {
		return false
	}

	for _, c := range id {
		if !(('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')) {
			return false
		}
	}

	return true
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}

	return true
}
