package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/yorkxin/mp3tag"
)

var errInvalidInput = errors.New("arguments must be paths or HTTP URLs")

var (
	charset  = flag.String("charset", "", "code page of ID3v1 and ISO-8859-1 marked ID3v2 text, e.g. windows-1251")
	frames   = flag.Bool("frames", false, "list every ID3v2 frame")
	dump     = flag.Bool("dump", false, "dump the parsed tag")
	duration = flag.Bool("duration", false, "print the estimated play time")
	verbose  = flag.Bool("v", false, "log parser diagnostics to stderr")
)

type input interface {
	io.Reader
	io.ReaderAt
	Size() int64
}

func openFile(location *url.URL) (input, func() error, error) {
	f, err := os.Open(location.Path)
	if err != nil {
		return nil, nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return io.NewSectionReader(f, 0, stat.Size()), f.Close, nil
}

// openHTTP buffers the whole body: the ID3v1 block sits at the end.
func openHTTP(location *url.URL) (input, func() error, error) {
	req, err := http.NewRequest("GET", location.String(), nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.Errorf("GET %s: %s", location, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "GET %s", location)
	}

	return bytes.NewReader(body), func() error { return nil }, nil
}

func open(arg string) (input, func() error, error) {
	location, err := url.Parse(arg)
	if err != nil || location.Path == "" {
		return nil, nil, errInvalidInput
	}

	switch location.Scheme {
	case "http", "https":
		return openHTTP(location)
	case "file", "":
		return openFile(location)
	default:
		return nil, nil, errInvalidInput
	}
}

func printTag(name string, r input, opts []mp3tag.Option) error {
	tag, err := mp3tag.Read(r, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", name, tag.Version())
	fmt.Printf("  Title:   %s\n", tag.Title())
	fmt.Printf("  Artist:  %s\n", tag.Artist())
	fmt.Printf("  Album:   %s\n", tag.Album())
	fmt.Printf("  Year:    %d\n", tag.Year())
	fmt.Printf("  Track:   %d\n", tag.Track())
	fmt.Printf("  Genre:   %s\n", tag.Genre())
	fmt.Printf("  Comment: %s\n", tag.Comment())

	switch t := tag.(type) {
	case *mp3tag.TagV2:
		fmt.Printf("  Size:    %d (padding %d)\n", t.Size(), t.PaddingSize())
		for _, p := range t.Pictures() {
			fmt.Printf("  Picture: %s %s, %d bytes\n", p.Type, p.MIMEType, len(p.Data))
		}
		if *frames {
			for _, f := range t.Frames() {
				fmt.Printf("  %s\n", f)
			}
		}
	case *mp3tag.TagV1:
		if !t.HasTrack() {
			fmt.Println("  (no track number)")
		}
	}

	if *dump {
		spew.Dump(tag)
	}

	return nil
}

func run(arg string, opts []mp3tag.Option) error {
	r, closer, err := open(arg)
	if err != nil {
		return err
	}
	defer closer()

	if err := printTag(arg, r, opts); err != nil {
		return err
	}

	if *duration {
		d, err := mp3tag.EstimateDuration(io.NewSectionReader(r, 0, r.Size()), r.Size())
		if err != nil {
			return err
		}
		fmt.Printf("  Length:  %s\n", d)
	}

	return nil
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, errInvalidInput)
		os.Exit(1)
	}

	mp3tag.Logging = mp3tag.LogFlag(*verbose)

	var opts []mp3tag.Option
	if *charset != "" {
		opts = append(opts, mp3tag.WithLegacyCharset(*charset))
	}

	failed := false
	for _, arg := range flag.Args() {
		if err := run(arg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
