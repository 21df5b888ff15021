package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		e    *Error
	}{
		{
			name: "code only",
			e:    &Error{Code: ErrEncoding},
			want: "[premis-encoding]",
		},
		{
			name: "with op and message",
			e:    &Error{Code: ErrMalformedDocument, Op: "parse identifier", Message: "missing type"},
			want: "[premis-malformed-document] parse identifier: missing type",
		},
		{
			name: "with path",
			e:    &Error{Code: ErrMalformedDocument, Message: "missing eventType", Path: "/premis/event[2]"},
			want: "[premis-malformed-document] missing eventType at /premis/event[2]",
		},
		{
			name: "with cause",
			e:    &Error{Code: ErrXMLParse, Op: "parse", Err: io.ErrUnexpectedEOF},
			want: "[xml-parse-error] parse: unexpected EOF",
		},
		{
			name: "with message and cause",
			e:    &Error{Code: ErrEncoding, Op: "charset latin9", Message: "unsupported charset", Err: io.ErrUnexpectedEOF},
			want: "[premis-encoding] charset latin9: unsupported charset: unexpected EOF",
		},
		{
			name: "with op path and cause",
			e:    &Error{Code: ErrXMLParse, Op: "parse xml", Path: "/premis", Err: io.ErrUnexpectedEOF},
			want: "[xml-parse-error] parse xml at /premis: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilErrorFormatting(t *testing.T) {
	var e *Error
	if got := e.Error(); got != "premis error <nil>" {
		t.Fatalf("Error() = %q, want %q", got, "premis error <nil>")
	}
}

func TestNewf(t *testing.T) {
	e := Newf(ErrInvalidArgument, "build outcome", "extension %d is text", 2)
	if e.Code != ErrInvalidArgument {
		t.Fatalf("Code = %q, want %q", e.Code, ErrInvalidArgument)
	}
	if e.Message != "extension 2 is text" {
		t.Fatalf("Message = %q, want %q", e.Message, "extension 2 is text")
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(ErrXMLParse, "parse", nil); err != nil {
		t.Fatalf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapUnwrap(t *testing.T) {
	err := Wrap(ErrXMLParse, "parse", io.ErrUnexpectedEOF)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("errors.Is(%v, io.ErrUnexpectedEOF) = false", err)
	}
}

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("load document: %w", New(ErrMalformedDocument, "parse event", "missing eventType"))

	if !Is(err, ErrMalformedDocument) {
		t.Fatalf("Is(%v, ErrMalformedDocument) = false", err)
	}
	if Is(err, ErrInvalidArgument) {
		t.Fatalf("Is(%v, ErrInvalidArgument) = true", err)
	}
	if !errors.Is(err, Kind(ErrMalformedDocument)) {
		t.Fatalf("errors.Is(%v, Kind(ErrMalformedDocument)) = false", err)
	}
	if errors.Is(err, Kind(ErrEncoding)) {
		t.Fatalf("errors.Is(%v, Kind(ErrEncoding)) = true", err)
	}
}

func TestCodeOf(t *testing.T) {
	if _, ok := CodeOf(nil); ok {
		t.Fatal("CodeOf(nil) ok = true")
	}
	if _, ok := CodeOf(io.EOF); ok {
		t.Fatal("CodeOf(io.EOF) ok = true")
	}
	code, ok := CodeOf(New(ErrEncoding, "", ""))
	if !ok || code != ErrEncoding {
		t.Fatalf("CodeOf() = %q, %v, want %q, true", code, ok, ErrEncoding)
	}
}

func TestWithPath(t *testing.T) {
	base := New(ErrMalformedDocument, "parse agent", "missing agentIdentifierValue")
	withPath := base.WithPath("/premis/agent[1]")
	if base.Path != "" {
		t.Fatalf("WithPath mutated receiver: Path = %q", base.Path)
	}
	if withPath.Path != "/premis/agent[1]" {
		t.Fatalf("Path = %q, want %q", withPath.Path, "/premis/agent[1]")
	}
}

func TestListError(t *testing.T) {
	tests := []struct {
		name string
		want string
		list List
	}{
		{name: "empty", list: nil, want: "no errors"},
		{
			name: "single",
			list: List{New(ErrMalformedDocument, "", "missing eventType")},
			want: "[premis-malformed-document] missing eventType",
		},
		{
			name: "multiple",
			list: List{
				New(ErrMalformedDocument, "", "missing eventType"),
				New(ErrMalformedDocument, "", "missing agentIdentifierValue"),
				New(ErrMalformedDocument, "", "missing objectIdentifierType"),
			},
			want: "[premis-malformed-document] missing eventType (and 2 more)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsList(t *testing.T) {
	list := List{New(ErrMalformedDocument, "", "a"), New(ErrMalformedDocument, "", "b")}
	wrapped := fmt.Errorf("check: %w", list)

	got, ok := AsList(wrapped)
	if !ok {
		t.Fatal("AsList() ok = false")
	}
	if len(got) != 2 {
		t.Fatalf("len(AsList()) = %d, want 2", len(got))
	}
	if !Is(wrapped, ErrMalformedDocument) {
		t.Fatal("Is(list, ErrMalformedDocument) = false")
	}
	if _, ok := AsList(io.EOF); ok {
		t.Fatal("AsList(io.EOF) ok = true")
	}
}
