package id3

import (
	"reflect"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		version uint8
		legacy  encoding.Encoding
		want    string
	}{
		{"Latin1", []byte("\x00Foo Bar\x00"), 3, nil, "Foo Bar"},
		{"Latin1 high bytes", []byte("\x00caf\xe9"), 3, nil, "café"},
		{"Surrounding whitespace and NUL", []byte("\x00  Foo \x00\x00"), 3, nil, "Foo"},
		{"UTF-16 big endian BOM", []byte("\x01\xFE\xFF\x4E\x16\x75\x4C\x4F\x60\x59\x7D\x00\x00"), 3, nil, "世界你好"},
		{"UTF-16 little endian BOM", []byte("\x01\xFF\xFEF\x00o\x00o\x00"), 3, nil, "Foo"},
		{"UTF-16 without BOM", []byte("\x01F\x00o\x00"), 3, nil, "Fo"},
		{"UTF-16 doubled BOM", []byte("\x01\xFF\xFE\xFF\xFEa\x00"), 3, nil, "a"},
		{"UTF-16BE in v2.4", []byte("\x02\x00F\x00o"), 4, nil, "Fo"},
		{"UTF-8 in v2.4", []byte("\x03世界\x00"), 4, nil, "世界"},
		{"UTF-8 marker before v2.4 is legacy", []byte("\x03caf\xc3\xa9"), 3, nil, "cafÃ©"},
		{"Windows-1251 legacy", []byte("\x00\xCF\xF0\xE8\xE2\xE5\xF2"), 3, charmap.Windows1251, "Привет"},
		{"Only the marker", []byte{0x01}, 3, nil, ""},
		{"Empty", []byte{}, 3, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.data, tt.version, tt.legacy)
			if err != nil {
				t.Fatalf("DecodeText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeComment(t *testing.T) {
	tests := []struct {
		name                         string
		data                         []byte
		wantLang, wantDesc, wantText string
		wantErr                      bool
	}{
		{
			name:     "Latin1 without description",
			data:     []byte("\x00eng\x00Hello"),
			wantLang: "eng", wantDesc: "", wantText: "Hello",
		},
		{
			name:     "UTF-16 with description",
			data:     []byte("\x01eng\xFF\xFEd\x00\x00\x00\xFF\xFEh\x00i\x00"),
			wantLang: "eng", wantDesc: "d", wantText: "hi",
		},
		{
			name:     "No terminator",
			data:     []byte("\x00deuonly description"),
			wantLang: "deu", wantDesc: "only description", wantText: "",
		},
		{
			name:    "Too short",
			data:    []byte("\x00en"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, desc, text, err := DecodeComment(tt.data, 3, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if lang != tt.wantLang || desc != tt.wantDesc || text != tt.wantText {
				t.Errorf("DecodeComment() = %q, %q, %q, want %q, %q, %q", lang, desc, text, tt.wantLang, tt.wantDesc, tt.wantText)
			}
		})
	}
}

func TestParsePicture(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    *Picture
		wantErr bool
	}{
		{
			name: "Front cover",
			data: []byte("\x00image/jpeg\x00\x03\x00\x00\xFF\xD8\xFF"),
			want: &Picture{Encoding: 0, MIMEType: "image/jpeg", Type: 3, Data: []byte{0xFF, 0xD8, 0xFF}},
		},
		{
			name: "No padding before data",
			data: []byte("\x01image/png\x00\x0A\x89PNG"),
			want: &Picture{Encoding: 1, MIMEType: "image/png", Type: 0x0A, Data: []byte("\x89PNG")},
		},
		{
			name: "No image data",
			data: []byte("\x00image/png\x00\x03"),
			want: &Picture{MIMEType: "image/png", Type: 3, Data: []byte{}},
		},
		{name: "Empty", data: []byte{}, wantErr: true},
		{name: "Unterminated MIME type", data: []byte("\x00image/png"), wantErr: true},
		{name: "Missing picture type", data: []byte("\x00image/png\x00"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePicture(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePicture() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePicture() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPictureType_String(t *testing.T) {
	tests := []struct {
		p    PictureType
		want string
	}{
		{0x00, "Other"},
		{0x03, "Cover (front)"},
		{0x0A, "Band/Orchestra"},
		{0x14, "Publisher/Studio logotype"},
		{0x15, "0x15"},
		{0xFF, "0xFF"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("PictureType(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func Test_resync(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"sync pattern", []byte{0xFF, 0x00, 0xE0}, []byte{0xFF, 0xE0}},
		{"escaped zero", []byte{0xFF, 0x00, 0x00}, []byte{0xFF, 0x00}},
		{"trailing FF", []byte{0x00, 0xFF}, []byte{0x00, 0xFF}},
		{"untouched", []byte("plain"), []byte("plain")},
		{"empty", []byte{}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resync(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("resync() = %x, want %x", got, tt.want)
			}
		})
	}
}

func Test_normalizeV24(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		flags    FrameFlags
		tagFlags HeaderFlags
		want     []byte
	}{
		{"no flags", []byte("abc"), 0, 0, []byte("abc")},
		{"data length indicator", []byte("\x00\x00\x00\x03abc"), flagV24DataLengthIndicator, 0, []byte("abc")},
		{"frame unsynchronised", []byte{0xFF, 0x00, 0xE0}, flagV24Unsynchronised, 0, []byte{0xFF, 0xE0}},
		{"tag unsynchronised", []byte{0xFF, 0x00, 0xE0}, 0, 0b10000000, []byte{0xFF, 0xE0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeV24(tt.data, tt.flags, tt.tagFlags); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeV24() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestFrame(t *testing.T) {
	text := &Frame{ID: "TIT2", Data: []byte("\x00Foo Bar")}
	pic := &Frame{ID: "APIC", Data: []byte("\x00image/png\x00\x03")}
	priv := &Frame{ID: "PRIV", Flags: 0x0040, Data: []byte{0xDE, 0xAD}}

	if !text.IsText() || text.IsPicture() {
		t.Errorf("TIT2: IsText() = %v, IsPicture() = %v", text.IsText(), text.IsPicture())
	}
	if pic.IsText() || !pic.IsPicture() {
		t.Errorf("APIC: IsText() = %v, IsPicture() = %v", pic.IsText(), pic.IsPicture())
	}
	if priv.IsText() || priv.IsPicture() {
		t.Errorf("PRIV: IsText() = %v, IsPicture() = %v", priv.IsText(), priv.IsPicture())
	}

	if got := text.ByteSize(); got != 18 {
		t.Errorf("ByteSize() = %d, want 18", got)
	}

	if !priv.Flags.Encrypted() || priv.Flags.Compressed() {
		t.Errorf("Flags %016b: Encrypted() = %v, Compressed() = %v", uint16(priv.Flags), priv.Flags.Encrypted(), priv.Flags.Compressed())
	}

	want := "[000A] PRIV 2     0000000001000000 dead"
	if got := priv.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
