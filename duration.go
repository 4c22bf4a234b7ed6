package mp3tag

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/pkg/errors"
	"go4.org/readerutil"

	"github.com/yorkxin/mp3tag/internal/id3"
	"github.com/yorkxin/mp3tag/internal/mp3header"
)

// EstimateDuration reads past the ID3v2 tag at the start of r, if any, and
// estimates the play time of the MP3 stream from the bit rate of the first
// MPEG frame. The estimate is exact for constant bit rate files only.
//
// totalSize is the length of the whole file. Pass a negative value to use
// the size of r, which then has to be sized (e.g. *os.File, *bytes.Reader).
func EstimateDuration(r io.Reader, totalSize int64) (time.Duration, error) {
	// Algorithm from https://www.factorialcomplexity.com/blog/how-to-get-a-duration-of-a-remote-mp3-file
	if totalSize < 0 {
		size, ok := readerutil.Size(r)
		if !ok {
			return 0, errors.New("mp3tag: unknown input size")
		}
		totalSize = size
	}

	s := id3.NewSkipReader(r)
	tagSize, err := s.ReadThrough()
	if err != nil {
		return 0, err
	}

	// first 11 bits of an MPEG frame header are all 1
	b := make([]byte, 4)
	if _, err := io.ReadFull(s, b); err != nil {
		return 0, errors.Wrap(err, "unable to read after id3 tag")
	}

	h, err := mp3header.ParseMP3Header(binary.BigEndian.Uint32(b))
	if err != nil {
		return 0, err
	}

	Logging.Printf("mp3tag: %s after %d bytes of tag", h, tagSize)

	audioBytes := totalSize - int64(tagSize)
	if audioBytes < 0 {
		return 0, errors.Errorf("mp3tag: size %d is smaller than the tag", totalSize)
	}

	return time.Duration(audioBytes) * 8 * time.Millisecond / time.Duration(h.BitRate), nil
}
