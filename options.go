package mp3tag

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Option configures Read, Open, ReadV1 and ReadV2.
type Option func(*options) error

type options struct {
	// legacy decodes ID3v1 fields and ID3v2 text marked as ISO-8859-1.
	legacy encoding.Encoding
}

// WithLegacyCharset sets the single-byte code page used for ID3v1 fields and
// for ID3v2 text with encoding marker 0. name is an IANA charset name or alias
// such as "ISO-8859-1", "windows-1251" or "latin2". The default is ISO-8859-1,
// which is what the format prescribes; plenty of files in the wild were
// written in the local code page instead.
func WithLegacyCharset(name string) Option {
	return func(o *options) error {
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil {
			return errors.Wrapf(err, "mp3tag: charset %q", name)
		}
		if enc == nil {
			return errors.Errorf("mp3tag: charset %q is not supported", name)
		}

		o.legacy = enc
		return nil
	}
}

// WithLegacyEncoding is WithLegacyCharset for an encoding at hand.
func WithLegacyEncoding(enc encoding.Encoding) Option {
	return func(o *options) error {
		if enc == nil {
			return errors.New("mp3tag: nil legacy encoding")
		}

		o.legacy = enc
		return nil
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{legacy: charmap.ISO8859_1}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}
