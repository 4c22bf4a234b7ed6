package id3

import (
	"bufio"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

const lenOfFooter = 10 // v2.4 footer, a copy of the header with "3DI"

// SkipReader reads through the whole ID3v2 tag block, but does not store
// anything in the memory. Useful for ignoring ID3v2 tag section. After
// ReadThrough, Read continues with the bytes following the tag.
type SkipReader struct {
	r *bufio.Reader
	n int // n bytes that has been read
}

func NewSkipReader(r io.Reader) *SkipReader {
	return &SkipReader{r: bufio.NewReader(r)}
}

// ReadThrough discards the tag at the current position and returns the
// number of bytes skipped. Input that does not start with "ID3" is left
// untouched and 0 is returned.
func (s *SkipReader) ReadThrough() (int, error) {
	peeked, err := s.r.Peek(lenOfHeader)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return s.n, errors.Wrap(err, "peek v2 header")
	}

	if len(peeked) < lenOfHeader || !HasMagic(peeked) {
		return s.n, nil
	}

	header, n, err := readHeader(s.r)
	s.n += n
	if err != nil {
		return s.n, err
	}

	size := header.Size
	if header.Version >= 4 && header.Flags&0b00010000 != 0 {
		size += lenOfFooter
	}

	nDiscarded, err := io.CopyN(ioutil.Discard, s.r, int64(size))
	s.n += int(nDiscarded)

	if err != nil {
		return s.n, errors.Wrap(err, "skip tag body")
	}

	return s.n, nil
}

func (s *SkipReader) Read(p []byte) (int, error) {
	return s.r.Read(p)
}
