package premis

import (
	"github.com/jacoelho/premis/pkg/xmltree"
)

// Relationship holds the fields of a premis:relationship.
type Relationship struct {
	Type    string
	SubType string
	Related Identifier
}

// BuildRelationship returns a premis:relationship pointing at related:
//
//	<premis:relationship>
//	    <premis:relationshipType>structural</premis:relationshipType>
//	    <premis:relationshipSubType>is included in</premis:relationshipSubType>
//	    <premis:relatedObjectIdentification>...</premis:relatedObjectIdentification>
//	</premis:relationship>
//
// related is an object or an objectIdentifier segment; only its identifier
// is copied. A nil related yields a nil element and no error.
func BuildRelationship(relationshipType, subType string, related *xmltree.Element) (*xmltree.Element, error) {
	if related == nil {
		return nil, nil
	}
	b := builder{op: "build relationship"}
	relationship := xmltree.NewElement(name("relationship"))
	b.text(relationship, name("relationshipType"), relationshipType)
	b.text(relationship, name("relationshipSubType"), subType)
	relationship.Append(project(&b, related, PrefixObject, PrefixRelatedObject, ""))
	return b.done(relationship)
}

// ParseRelationships returns the relationships directly under object.
func ParseRelationships(object *xmltree.Element) ([]Relationship, error) {
	const op = "parse relationship"
	var out []Relationship
	for rel := range object.ChildrenNamed(name("relationship")) {
		related, ok, err := ParseIdentifier(rel, PrefixRelatedObject)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, malformed(op, rel.Name, PrefixRelatedObject.IdentifierName())
		}
		out = append(out, Relationship{
			Type:    childText(rel, "relationshipType"),
			SubType: childText(rel, "relationshipSubType"),
			Related: related,
		})
	}
	return out, nil
}
