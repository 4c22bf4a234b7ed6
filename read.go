package mp3tag

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"go4.org/readerutil"

	"github.com/yorkxin/mp3tag/internal/id3"
	"github.com/yorkxin/mp3tag/internal/id3v1"
)

// Open reads the tag of the file at path. The file is closed before Open
// returns.
func Open(path string, opts ...Option) (Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return Read(io.NewSectionReader(f, 0, stat.Size()), opts...)
}

// Read locates and reads the tag in r.
//
// An "ID3" signature at offset 0 with major version 3 or later yields a
// *TagV2. Anything else is looked up as an ID3v1 block in the last 128 bytes
// and yields a *TagV1. When neither signature is found the error is an
// *UnsupportedTagError.
//
// An ID3v2.2 (or older) header routes to the ID3v1 reader, which then fails
// with *MisversionedTagError if the file also ends in an ID3v1 block and with
// *MalformedTagError if it does not.
func Read(r readerutil.SizeReaderAt, opts ...Option) (Tag, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	head, hasHead, err := readHead(r)
	if err != nil {
		return nil, err
	}

	tryV1 := false

	if hasHead && id3.HasMagic(head[:]) {
		header, err := id3.ParseHeader(head)
		if err != nil {
			return nil, err
		}

		if header.Version >= 3 {
			t, err := readV2(io.NewSectionReader(r, 0, r.Size()), o)
			if err != nil {
				return nil, err
			}
			return t, nil
		}

		Logging.Printf("mp3tag: ID3v2.%d header, trying ID3v1", header.Version)
		tryV1 = true
	}

	block, hasBlock, err := readBlock(r)
	if err != nil {
		return nil, err
	}

	if tryV1 || (hasBlock && bytes.Equal(block[0:3], id3v1.Magic)) {
		t, err := readV1(r, o)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	unsupported := &UnsupportedTagError{}
	copy(unsupported.Head[:], head[0:3])
	copy(unsupported.Tail[:], block[0:3])
	return nil, unsupported
}

// ReadV1 reads the ID3v1 block at the end of r.
func ReadV1(r readerutil.SizeReaderAt, opts ...Option) (*TagV1, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	return readV1(r, o)
}

// ReadV2 reads the ID3v2 tag at the current position of r. On success r is
// positioned right after the tag.
func ReadV2(r io.Reader, opts ...Option) (*TagV2, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	return readV2(r, o)
}

func readV1(r readerutil.SizeReaderAt, o *options) (*TagV1, error) {
	block, ok, err := readBlock(r)
	if err != nil {
		return nil, err
	}

	if !ok || !bytes.Equal(block[0:3], id3v1.Magic) {
		malformed := &MalformedTagError{}
		copy(malformed.Marker[:], block[0:3])
		return nil, malformed
	}

	head, ok, err := readHead(r)
	if err != nil {
		return nil, err
	}

	if ok && id3.Valid(head) {
		return nil, &MisversionedTagError{Version: Version{Major: head[3], Minor: head[4]}}
	}

	t, err := id3v1.Parse(block, o.legacy)
	if err != nil {
		return nil, err
	}

	return &TagV1{t: *t}, nil
}

func readV2(r io.Reader, o *options) (*TagV2, error) {
	d := id3.NewDecoder(r)
	d.Log = Logging

	raw, err := d.Decode()
	if err != nil {
		var notHeader *id3.NotHeaderError
		if errors.As(err, &notHeader) {
			return nil, &UnsupportedTagError{Head: notHeader.Magic}
		}
		return nil, err
	}

	if raw.Header.Version < 3 {
		return nil, errors.Errorf("mp3tag: ID3v2.%d tags are not supported", raw.Header.Version)
	}

	t := &TagV2{
		header:  raw.Header,
		frames:  make([]Frame, 0, len(raw.Frames)),
		padding: raw.PaddingSize,
		legacy:  o.legacy,
	}

	version := t.Version()
	for _, f := range raw.Frames {
		t.frames = append(t.frames, newFrame(f, version, o.legacy))
	}

	return t, nil
}

// readHead reads the first 10 bytes. ok is false for shorter inputs; head
// then holds what there is.
func readHead(r readerutil.SizeReaderAt) (head [id3.HeaderSize]byte, ok bool, err error) {
	n := r.Size()
	if n > id3.HeaderSize {
		n = id3.HeaderSize
	}

	if _, err := r.ReadAt(head[:n], 0); err != nil && err != io.EOF {
		return head, false, errors.Wrap(err, "read head")
	}

	return head, n == id3.HeaderSize, nil
}

// readBlock reads the last 128 bytes. ok is false for shorter inputs.
func readBlock(r readerutil.SizeReaderAt) (block [id3v1.Size]byte, ok bool, err error) {
	if r.Size() < id3v1.Size {
		return block, false, nil
	}

	if _, err := r.ReadAt(block[:], r.Size()-id3v1.Size); err != nil && err != io.EOF {
		return block, false, errors.Wrap(err, "read ID3v1 block")
	}

	return block, true, nil
}
