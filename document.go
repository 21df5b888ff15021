package premis

import (
	"io"

	premiserrors "github.com/jacoelho/premis/errors"
	"github.com/jacoelho/premis/pkg/xmltree"
)

// BuildDocument returns the PREMIS root element with the given entities
// appended in order:
//
//	<premis:premis xmlns:premis="info:lc/xmlns/premis-v2"
//	    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
//	    xsi:schemaLocation="info:lc/xmlns/premis-v2 http://www.loc.gov/standards/premis/v2/premis-v2-3.xsd"
//	    version="2.2">
func BuildDocument(children ...*xmltree.Element) *xmltree.Element {
	root := xmltree.NewElement(name("premis"))
	root.Set(xsiSchemaLocation, SchemaLocation)
	root.Set(versionAttr, Version)
	root.Append(children...)
	return root
}

// EncodeOptions controls document serialization.
type EncodeOptions struct {
	Indent      string
	Declaration bool
}

func (o EncodeOptions) tree() xmltree.EncodeOptions {
	return xmltree.EncodeOptions{
		Namespaces:  Namespaces(),
		Indent:      o.Indent,
		Declaration: o.Declaration,
	}
}

// Encode writes e with the premis and xsi prefixes bound.
func Encode(w io.Writer, e *xmltree.Element, opts EncodeOptions) error {
	return xmltree.Encode(w, e, opts.tree())
}

// Marshal serializes e compactly, without an XML declaration.
func Marshal(e *xmltree.Element) ([]byte, error) {
	return xmltree.Marshal(e, EncodeOptions{}.tree())
}

// Parse reads any PREMIS fragment. Object xsi:type values are rewritten
// to the premis prefix whatever prefix the input bound to Namespace, so a
// parsed tree encodes back to a well-formed document.
func Parse(r io.Reader) (*xmltree.Element, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	normalizeObjectTypes(root)
	return root, nil
}

// ParseDocument reads a document whose root must be premis:premis. It
// normalizes object xsi:type values like Parse.
func ParseDocument(r io.Reader) (*xmltree.Element, error) {
	root, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if root.Name != name("premis") {
		return nil, premiserrors.Newf(premiserrors.ErrMalformedDocument, "parse document", "root element is %s, want %s", root.Name, name("premis"))
	}
	return root, nil
}
