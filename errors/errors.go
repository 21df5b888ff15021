package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies failures reported by the premis packages.
type ErrorCode string

const (
	// ErrInvalidArgument indicates the caller passed a structurally wrong input.
	ErrInvalidArgument ErrorCode = "premis-invalid-argument"
	// ErrMalformedDocument indicates a matching element lacks a required child.
	ErrMalformedDocument ErrorCode = "premis-malformed-document"
	// ErrEncoding indicates text could not be mapped to or from UTF-8.
	ErrEncoding ErrorCode = "premis-encoding"
	// ErrXMLParse indicates the XML document could not be parsed.
	ErrXMLParse ErrorCode = "xml-parse-error"
)

// Error describes a failure with a code, the operation that detected it,
// and an optional element path and underlying cause.
type Error struct {
	Err     error
	Code    ErrorCode
	Op      string
	Message string
	Path    string
}

// Error formats the error for display, including code, operation and path.
func (e *Error) Error() string {
	if e == nil {
		return "premis error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))
	if e.Op != "" {
		b.WriteString(" " + e.Op)
		if e.Message != "" {
			b.WriteString(":")
		}
	}
	if e.Message != "" {
		b.WriteString(" " + e.Message)
	}
	if e.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", e.Path))
	}
	if e.Err != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil || e == nil {
		return false
	}
	return t.Code == e.Code && t.Op == "" && t.Message == "" && t.Path == ""
}

// New builds an Error with a code, operation and message.
func New(code ErrorCode, op, msg string) *Error {
	return &Error{Code: code, Op: op, Message: msg}
}

// Newf formats a message and builds an Error.
func Newf(code ErrorCode, op, format string, args ...any) *Error {
	return New(code, op, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and operation to an underlying error.
// It returns nil when err is nil.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Op: op, Err: err}
}

// WithPath returns a copy of e carrying the element path.
func (e *Error) WithPath(path string) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Path = path
	return &cp
}

// Kind returns a bare Error usable as an errors.Is target for code.
//
//	if errors.Is(err, premiserrors.Kind(premiserrors.ErrMalformedDocument)) { ... }
func Kind(code ErrorCode) error {
	return &Error{Code: code}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code, true
	}
	return "", false
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}

// List is an error that aggregates several failures found in one document.
type List []*Error

// Error returns a compact summary of the listed errors.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Unwrap exposes the listed errors to errors.Is and errors.As.
func (l List) Unwrap() []error {
	out := make([]error, len(l))
	for i, e := range l {
		out[i] = e
	}
	return out
}

// AsList extracts the listed errors from err.
func AsList(err error) (List, bool) {
	if err == nil {
		return nil, false
	}
	var list List
	if errors.As(err, &list) {
		return list, true
	}
	var listPtr *List
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}
	return nil, false
}
