package premis

import (
	"github.com/jacoelho/premis/pkg/xmltree"
)

// Identifier is the (type, value) pair naming an entity, with the role
// carried by linking segments.
type Identifier struct {
	Type  string
	Value string
	Role  string
}

// BuildIdentifier returns the identifier segment of the given prefix:
//
//	<premis:objectIdentifier>
//	    <premis:objectIdentifierType>local</premis:objectIdentifierType>
//	    <premis:objectIdentifierValue>id01</premis:objectIdentifierValue>
//	</premis:objectIdentifier>
//
// PrefixRelatedObject produces relatedObjectIdentification. Role is written
// as <prefix>Role only for linking prefixes and ignored otherwise. Empty type
// or value produce elements without text.
func BuildIdentifier(id Identifier, prefix Prefix) (*xmltree.Element, error) {
	prefix = prefix.orDefault()
	b := builder{op: "build identifier"}

	segment := xmltree.NewElement(prefix.IdentifierName())
	b.text(segment, Resolve("IdentifierType", prefix), id.Type)
	b.text(segment, Resolve("IdentifierValue", prefix), id.Value)
	if id.Role != "" && prefix.IsLinking() {
		b.text(segment, Resolve("Role", prefix), id.Role)
	}
	return b.done(segment)
}

// ParseIdentifier extracts the first identifier segment of the given prefix
// from segment or its descendants. It reports false when there is none and
// fails with ErrMalformedDocument when the segment lacks its type or value.
func ParseIdentifier(segment *xmltree.Element, prefix Prefix) (Identifier, bool, error) {
	const op = "parse identifier"
	prefix = prefix.orDefault()

	outer := segment.Find(prefix.IdentifierName())
	if outer == nil {
		return Identifier{}, false, nil
	}
	id, err := identifierFields(op, outer, prefix)
	if err != nil {
		return Identifier{}, false, err
	}
	return id, true, nil
}

// ParseLinkingIdentifiers returns every direct identifier child of e with
// the given prefix, in document order.
func ParseLinkingIdentifiers(e *xmltree.Element, prefix Prefix) ([]Identifier, error) {
	const op = "parse linking identifiers"
	prefix = prefix.orDefault()

	var ids []Identifier
	for segment := range e.ChildrenNamed(prefix.IdentifierName()) {
		id, err := identifierFields(op, segment, prefix)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func identifierFields(op string, outer *xmltree.Element, prefix Prefix) (Identifier, error) {
	typeName := Resolve("IdentifierType", prefix)
	idType, ok := outer.ChildText(typeName)
	if !ok {
		return Identifier{}, malformed(op, outer.Name, typeName)
	}
	valueName := Resolve("IdentifierValue", prefix)
	idValue, ok := outer.ChildText(valueName)
	if !ok {
		return Identifier{}, malformed(op, outer.Name, valueName)
	}
	id := Identifier{Type: idType, Value: idValue}
	if prefix.IsLinking() {
		id.Role, _ = outer.ChildText(Resolve("Role", prefix))
	}
	return id, nil
}

// project re-extracts the identifier of entity under from and rebuilds it
// under to. The result shares nothing with entity.
func project(b *builder, entity *xmltree.Element, from, to Prefix, role string) *xmltree.Element {
	if b.err != nil {
		return nil
	}
	if entity == nil {
		b.invalid("nil %s entity", from)
		return nil
	}
	id, ok, err := ParseIdentifier(entity, from)
	if err != nil {
		b.fail(err)
		return nil
	}
	if !ok {
		b.invalid("%s has no %s", entity.Name.Local, from.IdentifierName().Local)
		return nil
	}
	id.Role = role
	segment, err := BuildIdentifier(id, to)
	if err != nil {
		b.fail(err)
		return nil
	}
	return segment
}
