package mp3tag

import "fmt"

// UnsupportedTagError is returned when a file carries neither an ID3v2 header
// at the start nor an ID3v1 block at the end.
type UnsupportedTagError struct {
	Head [3]byte // first bytes of the file
	Tail [3]byte // first bytes of the trailing 128-byte block
}

func (err *UnsupportedTagError) Error() string {
	return fmt.Sprintf("mp3tag: no ID3 tag found (head %q, tail %q)", err.Head[:], err.Tail[:])
}

// MisversionedTagError is returned when ID3v1 parsing is attempted on a file
// whose leading bytes are a valid ID3v2 header.
type MisversionedTagError struct {
	Version Version // version announced by the ID3v2 header
}

func (err *MisversionedTagError) Error() string {
	return fmt.Sprintf("mp3tag: file holds an %s tag, not ID3v1", err.Version)
}

// MalformedTagError is returned when the trailing 128-byte block that should
// hold an ID3v1 tag does not start with "TAG".
type MalformedTagError struct {
	Marker [3]byte
}

func (err *MalformedTagError) Error() string {
	return fmt.Sprintf("mp3tag: ID3v1 marker missing, found %q", err.Marker[:])
}
