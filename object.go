package premis

import (
	"iter"
	"strings"

	"github.com/jacoelho/premis/internal/xiter"
	"github.com/jacoelho/premis/pkg/xmltree"
)

// ObjectKind is the xsi:type variant of a premis:object.
type ObjectKind string

// Object kinds.
const (
	KindFile           ObjectKind = "file"
	KindRepresentation ObjectKind = "representation"
	KindBitstream      ObjectKind = "bitstream"
)

// ObjectOptions holds the optional parts of an object.
type ObjectOptions struct {
	OriginalName string
	// Representation selects premis:representation. It wins over Bitstream
	// when both are set.
	Representation bool
	// Bitstream selects premis:bitstream.
	Bitstream bool
	// Children are appended after originalName, typically characteristics,
	// environments and relationships.
	Children []*xmltree.Element
	// LinkingEvents become linkingEventIdentifier segments.
	LinkingEvents []Link
}

func (o ObjectOptions) kind() ObjectKind {
	switch {
	case o.Representation:
		return KindRepresentation
	case o.Bitstream:
		return KindBitstream
	default:
		return KindFile
	}
}

// Object holds the fields of a premis:object.
type Object struct {
	Identifier    Identifier
	Kind          ObjectKind
	OriginalName  string
	LinkingEvents []Identifier
}

// BuildObject returns a premis:object:
//
//	<premis:object xsi:type="premis:file">
//	    <premis:objectIdentifier>...</premis:objectIdentifier>
//	    <premis:originalName>varmiste.sig</premis:originalName>
//	    {{ children }}
//	    <premis:linkingEventIdentifier>...</premis:linkingEventIdentifier>
//	</premis:object>
//
// id must be an objectIdentifier segment.
func BuildObject(id *xmltree.Element, opts ObjectOptions) (*xmltree.Element, error) {
	b := builder{op: "build object"}
	b.requireNamed("identifier", PrefixObject.IdentifierName(), []*xmltree.Element{id})

	object := xmltree.NewElement(name("object"))
	object.Set(xsiType, "premis:"+string(opts.kind()))
	object.Append(id)
	b.optional(object, name("originalName"), opts.OriginalName)
	appendChildren(&b, object, opts.Children)
	for _, link := range opts.LinkingEvents {
		object.Append(project(&b, link.Entity, PrefixEvent, PrefixLinkingEvent, link.Role))
	}
	return b.done(object)
}

// ParseObject reads the fields of a premis:object. The objectIdentifier is
// required. Kind is empty when the object has no xsi:type.
func ParseObject(object *xmltree.Element) (Object, error) {
	const op = "parse object"
	if object == nil {
		return Object{}, invalidf(op, "nil object")
	}
	id, ok, err := ParseIdentifier(object, PrefixObject)
	if err != nil {
		return Object{}, err
	}
	if !ok {
		return Object{}, malformed(op, object.Name, PrefixObject.IdentifierName())
	}
	events, err := ParseLinkingIdentifiers(object, PrefixLinkingEvent)
	if err != nil {
		return Object{}, err
	}

	var kind ObjectKind
	if v, ok := object.Get(xsiType); ok {
		_, local, _ := strings.Cut(v, ":")
		if local == "" {
			local = v
		}
		kind = ObjectKind(local)
	}
	originalName, _ := ParseOriginalName(object)
	return Object{
		Identifier:    id,
		Kind:          kind,
		OriginalName:  originalName,
		LinkingEvents: events,
	}, nil
}

// ParseOriginalName returns the originalName of object.
func ParseOriginalName(object *xmltree.Element) (string, bool) {
	return object.ChildText(name("originalName"))
}

// IterObjects yields every premis:object below root in document order.
func IterObjects(root *xmltree.Element) iter.Seq[*xmltree.Element] {
	return IterElements(root, "object")
}

// FindObjectByID returns the first object whose objectIdentifierValue
// equals value, or nil.
func FindObjectByID(root *xmltree.Element, value string) *xmltree.Element {
	return findByID(root, "object", PrefixObject, value)
}

// ObjectCount returns the number of objects below root.
func ObjectCount(root *xmltree.Element) int {
	return xiter.Count(IterObjects(root))
}

// ObjectsWithType yields the objects whose objectIdentifierType is exactly
// identifierType.
func ObjectsWithType(objects iter.Seq[*xmltree.Element], identifierType string) iter.Seq[*xmltree.Element] {
	return xiter.Filter(objects, func(e *xmltree.Element) bool {
		got, ok := e.Child(PrefixObject.IdentifierName()).ChildText(Resolve("IdentifierType", PrefixObject))
		return ok && got == identifierType
	})
}

// FilterObjects yields the objects not contained in any object of excluded.
func FilterObjects(objects iter.Seq[*xmltree.Element], excluded *xmltree.Element) iter.Seq[*xmltree.Element] {
	return xiter.Filter(objects, func(e *xmltree.Element) bool {
		for other := range IterObjects(excluded) {
			if ContainsObject(other, e) {
				return false
			}
		}
		return true
	})
}

// ContainsObject reports whether haystack, or any element below it, carries
// the objectIdentifierValue of candidate. candidate may be an object or a
// bare identifier segment.
func ContainsObject(candidate, haystack *xmltree.Element) bool {
	valueName := Resolve("IdentifierValue", PrefixObject)
	key := candidate.Find(valueName)
	if key == nil {
		return false
	}
	_, found := xiter.First(selfAndDescendants(haystack, valueName), func(e *xmltree.Element) bool {
		return e.Text == key.Text
	})
	return found
}

// normalizeObjectTypes rewrites the QName prefix of every object xsi:type
// under root to "premis", the prefix Encode binds to Namespace. Parsing
// keeps attribute values verbatim but drops the document's own prefix
// declarations.
func normalizeObjectTypes(root *xmltree.Element) {
	for object := range selfAndDescendants(root, name("object")) {
		v, ok := object.Get(xsiType)
		if !ok {
			continue
		}
		prefix, local, qualified := strings.Cut(v, ":")
		if !qualified || prefix == "premis" || local == "" {
			continue
		}
		object.Set(xsiType, "premis:"+local)
	}
}

func selfAndDescendants(e *xmltree.Element, n xmltree.Name) iter.Seq[*xmltree.Element] {
	return func(yield func(*xmltree.Element) bool) {
		if e == nil {
			return
		}
		if e.Name == n && !yield(e) {
			return
		}
		for d := range e.Descendants(n) {
			if !yield(d) {
				return
			}
		}
	}
}
