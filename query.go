package premis

import (
	"iter"

	"github.com/jacoelho/premis/internal/xiter"
	"github.com/jacoelho/premis/pkg/xmltree"
)

// IterElements yields every PREMIS element named tag below start, depth-first
// in document order. Each call to the returned sequence rescans the tree.
func IterElements(start *xmltree.Element, tag string) iter.Seq[*xmltree.Element] {
	return start.Descendants(name(tag))
}

// findByID returns the first tag element below root whose identifier value
// equals value. Entities with malformed identifiers never match.
func findByID(root *xmltree.Element, tag string, prefix Prefix, value string) *xmltree.Element {
	found, _ := xiter.First(IterElements(root, tag), func(e *xmltree.Element) bool {
		id, ok, err := ParseIdentifier(e, prefix)
		return err == nil && ok && id.Value == value
	})
	return found
}

// withChildText keeps entities whose direct child tag has exactly text want.
func withChildText(entities iter.Seq[*xmltree.Element], tag, want string) iter.Seq[*xmltree.Element] {
	n := name(tag)
	return xiter.Filter(entities, func(e *xmltree.Element) bool {
		got, ok := e.ChildText(n)
		return ok && got == want
	})
}

func childText(e *xmltree.Element, tag string) string {
	s, _ := e.ChildText(name(tag))
	return s
}

func childTexts(e *xmltree.Element, tag string) []string {
	var out []string
	for child := range e.ChildrenNamed(name(tag)) {
		out = append(out, child.Text)
	}
	return out
}
