package premis

import (
	premiserrors "github.com/jacoelho/premis/errors"
	"github.com/jacoelho/premis/internal/textenc"
	"github.com/jacoelho/premis/pkg/xmltree"
)

// builder keeps the first failure seen while an entity is assembled so the
// entity is returned only when every field was accepted.
type builder struct {
	err error
	op  string
}

func (b *builder) text(parent *xmltree.Element, n xmltree.Name, s string) *xmltree.Element {
	child := b.leaf(n, s)
	parent.Append(child)
	return child
}

// leaf returns a standalone element holding s.
func (b *builder) leaf(n xmltree.Name, s string) *xmltree.Element {
	e := xmltree.NewElement(n)
	if b.err != nil {
		return e
	}
	v, err := textenc.Text(b.op, s)
	if err != nil {
		b.err = err
		return e
	}
	e.Text = v
	return e
}

// optional adds a text child only when s is non-empty.
func (b *builder) optional(parent *xmltree.Element, n xmltree.Name, s string) {
	if s == "" {
		return
	}
	b.text(parent, n, s)
}

func (b *builder) each(parent *xmltree.Element, n xmltree.Name, values []string) {
	for _, v := range values {
		b.text(parent, n, v)
	}
}

func appendChildren(b *builder, parent *xmltree.Element, children []*xmltree.Element) {
	for i, child := range children {
		if child == nil {
			b.invalid("children[%d] is nil", i)
			continue
		}
		parent.Append(child)
	}
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) invalid(format string, args ...any) {
	b.fail(invalidf(b.op, format, args...))
}

// requireNamed checks that every element is non-nil and has the given name.
func (b *builder) requireNamed(field string, want xmltree.Name, elems []*xmltree.Element) {
	for i, e := range elems {
		switch {
		case e == nil:
			b.invalid("%s[%d] is nil", field, i)
		case e.Name != want:
			b.invalid("%s[%d] is %s, want %s", field, i, e.Name.Local, want.Local)
		}
	}
}

func (b *builder) done(e *xmltree.Element) (*xmltree.Element, error) {
	if b.err != nil {
		return nil, b.err
	}
	return e, nil
}

func malformed(op string, parent xmltree.Name, missing xmltree.Name) error {
	return premiserrors.Newf(premiserrors.ErrMalformedDocument, op, "%s has no %s", parent.Local, missing.Local)
}

func invalidf(op, format string, args ...any) error {
	return premiserrors.Newf(premiserrors.ErrInvalidArgument, op, format, args...)
}
