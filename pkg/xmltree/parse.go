package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"

	premiserrors "github.com/jacoelho/premis/errors"
	"github.com/jacoelho/premis/internal/textenc"
)

const (
	defaultMaxDepth = 256
	defaultMaxAttrs = 256
)

const xmlnsNamespace = "http://www.w3.org/2000/xmlns/"

// ParseOptions bounds the documents accepted by Parse.
// Zero values select the defaults.
type ParseOptions struct {
	MaxDepth int
	MaxAttrs int
}

func (o ParseOptions) limits() (depth, attrs int, err error) {
	if o.MaxDepth < 0 {
		return 0, 0, fmt.Errorf("xml max depth must be >= 0")
	}
	if o.MaxAttrs < 0 {
		return 0, 0, fmt.Errorf("xml max attrs must be >= 0")
	}
	return defaultLimit(o.MaxDepth, defaultMaxDepth), defaultLimit(o.MaxAttrs, defaultMaxAttrs), nil
}

func defaultLimit(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

// Parse builds an element tree from XML input and returns its root.
// Whitespace between child elements is dropped; any other text in an
// element that has children is rejected, since Element keeps one text
// run per element.
func Parse(r io.Reader) (*Element, error) {
	return ParseWithOptions(r, ParseOptions{})
}

// ParseString parses an XML fragment held in a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// ParseWithOptions builds an element tree with explicit limits.
func ParseWithOptions(r io.Reader, opts ParseOptions) (*Element, error) {
	const op = "parse xml"
	if r == nil {
		return nil, premiserrors.New(premiserrors.ErrXMLParse, op, "nil reader")
	}
	maxDepth, maxAttrs, err := opts.limits()
	if err != nil {
		return nil, premiserrors.Wrap(premiserrors.ErrInvalidArgument, op, err)
	}

	var charsetErr error
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		converted, err := textenc.CharsetReader(label, input)
		if err != nil {
			charsetErr = err
		}
		return converted, err
	}

	var stack []*Element
	var root *Element
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if charsetErr != nil {
				return nil, charsetErr
			}
			return nil, premiserrors.Wrap(premiserrors.ErrXMLParse, op, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, premiserrors.Newf(premiserrors.ErrXMLParse, op, "unexpected element %s after document end", t.Name.Local)
			}
			if len(stack) >= maxDepth {
				return nil, premiserrors.Newf(premiserrors.ErrXMLParse, op, "element depth exceeds %d", maxDepth)
			}
			if len(t.Attr) > maxAttrs {
				return nil, premiserrors.Newf(premiserrors.ErrXMLParse, op, "element %s has more than %d attributes", t.Name.Local, maxAttrs)
			}
			elem := &Element{
				Name:  Name{Space: t.Name.Space, Local: t.Name.Local},
				Attrs: convertAttrs(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				closed := stack[len(stack)-1]
				if len(closed.Children) > 0 {
					if !isWhitespace(closed.Text) {
						return nil, premiserrors.Newf(premiserrors.ErrXMLParse, op, "element %s mixes text with child elements", closed.Name.Local)
					}
					closed.Text = ""
				}
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isWhitespace(string(t)) {
					return nil, premiserrors.New(premiserrors.ErrXMLParse, op, "unexpected character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].Text += string(t)
		}
	}

	if root == nil {
		return nil, premiserrors.Wrap(premiserrors.ErrXMLParse, op, io.ErrUnexpectedEOF)
	}
	return root, nil
}

func isWhitespace(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// convertAttrs drops namespace declarations; the encoder re-declares the
// namespaces a tree uses.
func convertAttrs(xmlAttrs []xml.Attr) []Attr {
	attrs := make([]Attr, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		if a.Name.Space == "xmlns" || a.Name.Space == xmlnsNamespace || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attrs = append(attrs, Attr{
			Name:  Name{Space: a.Name.Space, Local: a.Name.Local},
			Value: a.Value,
		})
	}
	return attrs
}
