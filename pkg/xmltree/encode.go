package xmltree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	premiserrors "github.com/jacoelho/premis/errors"
	"github.com/jacoelho/premis/internal/textenc"
	"github.com/jacoelho/premis/internal/xiter"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// EncodeOptions controls serialization.
type EncodeOptions struct {
	// Namespaces maps prefixes to namespace URIs. The encoder never modifies
	// it. Namespaces missing from the table get generated ns0, ns1... prefixes.
	Namespaces map[string]string
	// Indent, when non-empty, puts every element on its own line indented by
	// Indent per level.
	Indent string
	// Declaration writes an XML declaration before the root element.
	Declaration bool
}

// Marshal serializes e and its subtree.
func Marshal(e *Element, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, e, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes e and its subtree to w.
func Encode(w io.Writer, e *Element, opts EncodeOptions) error {
	const op = "encode xml"
	if e == nil {
		return premiserrors.New(premiserrors.ErrInvalidArgument, op, "nil element")
	}
	if w == nil {
		return premiserrors.New(premiserrors.ErrInvalidArgument, op, "nil writer")
	}
	if err := e.Validate(); err != nil {
		return err
	}

	enc := &encoder{w: w, indent: opts.Indent}
	enc.bindPrefixes(e, opts.Namespaces)

	if opts.Declaration {
		enc.writeString(`<?xml version="1.0" encoding="UTF-8"?>`)
		enc.writeString("\n")
	}
	enc.writeElement(e, 0, true)
	if opts.Indent != "" || opts.Declaration {
		enc.writeString("\n")
	}
	if enc.err != nil {
		return fmt.Errorf("%s: %w", op, enc.err)
	}
	return nil
}

// Validate reports whether the subtree rooted at e can be written and read
// back unchanged: every text and attribute value must hold only XML 1.0
// characters, and an element with children may carry whitespace only.
func (e *Element) Validate() error {
	const op = "encode xml"
	if e == nil {
		return premiserrors.New(premiserrors.ErrInvalidArgument, op, "nil element")
	}
	if len(e.Children) > 0 && !isWhitespace(e.Text) {
		return premiserrors.Newf(premiserrors.ErrInvalidArgument, op, "element %s mixes text with child elements", e.Name.Local)
	}
	if _, err := textenc.Text(op, e.Text); err != nil {
		return err
	}
	for _, attr := range e.Attrs {
		if _, err := textenc.Text(op, attr.Value); err != nil {
			return err
		}
	}
	for _, child := range e.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type encoder struct {
	w        io.Writer
	err      error
	prefixes map[string]string // namespace URI -> prefix
	declared []string          // prefixes declared on the root, sorted
	indent   string
}

// bindPrefixes builds a fresh URI to prefix table for the namespaces used
// in the subtree rooted at e.
func (enc *encoder) bindPrefixes(e *Element, table map[string]string) {
	known := make(map[string]string, len(table))
	for prefix := range xiter.SortedKeys(table) {
		uri := table[prefix]
		if _, dup := known[uri]; !dup {
			known[uri] = prefix
		}
	}

	used := make(map[string]string)
	taken := make(map[string]bool, len(table))
	for prefix := range table {
		taken[prefix] = true
	}
	next := 0
	var visit func(*Element)
	bind := func(uri string) {
		if uri == "" || uri == xmlNamespace {
			return
		}
		if _, ok := used[uri]; ok {
			return
		}
		if prefix, ok := known[uri]; ok {
			used[uri] = prefix
			return
		}
		for {
			prefix := "ns" + strconv.Itoa(next)
			next++
			if !taken[prefix] {
				taken[prefix] = true
				used[uri] = prefix
				return
			}
		}
	}
	visit = func(el *Element) {
		bind(el.Name.Space)
		for _, attr := range el.Attrs {
			bind(attr.Name.Space)
		}
		for _, child := range el.Children {
			visit(child)
		}
	}
	visit(e)

	byPrefix := make(map[string]string, len(used))
	for uri, prefix := range used {
		byPrefix[prefix] = uri
	}
	enc.prefixes = used
	enc.declared = xiter.Collect(xiter.SortedKeys(byPrefix))
}

func (enc *encoder) qualified(name Name) string {
	switch name.Space {
	case "":
		return name.Local
	case xmlNamespace:
		return "xml:" + name.Local
	default:
		return enc.prefixes[name.Space] + ":" + name.Local
	}
}

func (enc *encoder) writeElement(e *Element, depth int, root bool) {
	if enc.indent != "" && depth > 0 {
		enc.writeString("\n")
		enc.writeString(strings.Repeat(enc.indent, depth))
	}

	tag := enc.qualified(e.Name)
	enc.writeString("<")
	enc.writeString(tag)
	if root {
		for _, prefix := range enc.declared {
			enc.writeString(" xmlns:")
			enc.writeString(prefix)
			enc.writeString(`="`)
			enc.writeString(attrEscaper.Replace(enc.uriFor(prefix)))
			enc.writeString(`"`)
		}
	}
	for _, attr := range e.Attrs {
		enc.writeString(" ")
		enc.writeString(enc.qualified(attr.Name))
		enc.writeString(`="`)
		enc.writeString(attrEscaper.Replace(attr.Value))
		enc.writeString(`"`)
	}

	if len(e.Children) == 0 && e.Text == "" {
		enc.writeString("/>")
		return
	}
	enc.writeString(">")
	if len(e.Children) == 0 {
		enc.writeString(textEscaper.Replace(e.Text))
	}
	for _, child := range e.Children {
		enc.writeElement(child, depth+1, false)
	}
	if enc.indent != "" && len(e.Children) > 0 {
		enc.writeString("\n")
		enc.writeString(strings.Repeat(enc.indent, depth))
	}
	enc.writeString("</")
	enc.writeString(tag)
	enc.writeString(">")
}

func (enc *encoder) uriFor(prefix string) string {
	for uri, p := range enc.prefixes {
		if p == prefix {
			return uri
		}
	}
	return ""
}

func (enc *encoder) writeString(s string) {
	if enc.err != nil {
		return
	}
	_, enc.err = io.WriteString(enc.w, s)
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\r", "&#xD;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#x9;",
		"\n", "&#xA;",
		"\r", "&#xD;",
	)
)
