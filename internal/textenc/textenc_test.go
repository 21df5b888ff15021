package textenc

import (
	"io"
	"strings"
	"testing"

	premiserrors "github.com/jacoelho/premis/errors"
)

func TestText(t *testing.T) {
	got, err := Text("build", "tiedosto-ä.txt")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "tiedosto-ä.txt" {
		t.Fatalf("Text() = %q, want %q", got, "tiedosto-ä.txt")
	}
}

func TestTextInvalid(t *testing.T) {
	_, err := Text("build identifier", "bad\xff")
	if !premiserrors.Is(err, premiserrors.ErrEncoding) {
		t.Fatalf("Text() error = %v, want ErrEncoding", err)
	}
}

func TestTextRejectsNonXMLChars(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "nul", in: "a\x00b"},
		{name: "start of heading", in: "id\x01"},
		{name: "form feed", in: "\x0c"},
		{name: "unit separator", in: "\x1f"},
		{name: "fffe", in: "x\uFFFE"},
		{name: "ffff", in: "\uFFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Text("build", tt.in); !premiserrors.Is(err, premiserrors.ErrEncoding) {
				t.Fatalf("Text(%q) error = %v, want ErrEncoding", tt.in, err)
			}
		})
	}
}

func TestTextAcceptsXMLWhitespaceAndAstral(t *testing.T) {
	in := "tab\tnl\ncr\r\U0001F600\uFFFD"
	if got, err := Text("build", in); err != nil || got != in {
		t.Fatalf("Text(%q) = %q, %v, want input, nil", in, got, err)
	}
}

func TestCharsetReaderUTF8Passthrough(t *testing.T) {
	in := strings.NewReader("abc")
	r, err := CharsetReader("UTF-8", in)
	if err != nil {
		t.Fatalf("CharsetReader() error = %v", err)
	}
	if r != io.Reader(in) {
		t.Fatal("CharsetReader(UTF-8) did not return the input reader")
	}
}

func TestCharsetReaderLatin1(t *testing.T) {
	r, err := CharsetReader("ISO-8859-1", strings.NewReader("caf\xe9"))
	if err != nil {
		t.Fatalf("CharsetReader() error = %v", err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got := string(b); got != "café" {
		t.Fatalf("decoded = %q, want %q", got, "café")
	}
}

func TestCharsetReaderUnknown(t *testing.T) {
	_, err := CharsetReader("x-no-such-charset", strings.NewReader(""))
	if !premiserrors.Is(err, premiserrors.ErrEncoding) {
		t.Fatalf("CharsetReader() error = %v, want ErrEncoding", err)
	}
}
