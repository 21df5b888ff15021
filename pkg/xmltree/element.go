package xmltree

import (
	"iter"
	"strings"
)

// Name is a namespace-qualified XML name.
type Name struct {
	Space string
	Local string
}

// String returns the name in Clark notation, {namespace}local.
func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// Attr is a single attribute.
type Attr struct {
	Name  Name
	Value string
}

// Node is content that can be placed inside an element: an *Element subtree
// or character data.
type Node interface {
	node()
}

// CharData is a text node.
type CharData string

func (CharData) node() {}

// Element is an XML element with ordered attributes and children.
type Element struct {
	Name     Name
	Text     string
	Attrs    []Attr
	Children []*Element
}

func (*Element) node() {}

// NewElement returns an empty element.
func NewElement(name Name) *Element {
	return &Element{Name: name}
}

// SubElement creates an element, appends it to e and returns it.
func (e *Element) SubElement(name Name) *Element {
	child := NewElement(name)
	e.Children = append(e.Children, child)
	return child
}

// Append adds children at the end of e. Nil children are skipped.
func (e *Element) Append(children ...*Element) {
	for _, child := range children {
		if child == nil {
			continue
		}
		e.Children = append(e.Children, child)
	}
}

// Set assigns an attribute, replacing an existing value in place so that
// attribute order is kept.
func (e *Element) Set(name Name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Get returns the value of an attribute.
func (e *Element) Get(name Name) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given name.
func (e *Element) Child(name Name) *Element {
	if e == nil {
		return nil
	}
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// ChildText returns the text of the first direct child with the given name.
func (e *Element) ChildText(name Name) (string, bool) {
	child := e.Child(name)
	if child == nil {
		return "", false
	}
	return child.Text, true
}

// ChildrenNamed yields the direct children with the given name in order.
func (e *Element) ChildrenNamed(name Name) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if e == nil {
			return
		}
		for _, child := range e.Children {
			if child.Name != name {
				continue
			}
			if !yield(child) {
				return
			}
		}
	}
}

// Descendants yields every element below e with the given name, depth-first
// in document order. e itself is not included.
func (e *Element) Descendants(name Name) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if e == nil {
			return
		}
		for _, child := range e.Children {
			if !child.walk(name, yield) {
				return
			}
		}
	}
}

func (e *Element) walk(name Name, yield func(*Element) bool) bool {
	if e.Name == name && !yield(e) {
		return false
	}
	for _, child := range e.Children {
		if !child.walk(name, yield) {
			return false
		}
	}
	return true
}

// Find returns e when it has the given name, otherwise its first descendant
// with that name.
func (e *Element) Find(name Name) *Element {
	if e == nil {
		return nil
	}
	if e.Name == name {
		return e
	}
	for found := range e.Descendants(name) {
		return found
	}
	return nil
}

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.collectText(&sb)
	return sb.String()
}

func (e *Element) collectText(sb *strings.Builder) {
	if e == nil {
		return
	}
	sb.WriteString(e.Text)
	for _, child := range e.Children {
		child.collectText(sb)
	}
}
