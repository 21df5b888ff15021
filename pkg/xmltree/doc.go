// Package xmltree is a small mutable XML element tree with namespace-qualified
// names.
//
// Elements own their children: appending an element to a parent transfers it,
// and the same element must not be appended to two parents. Text content is
// stored per element; whitespace-only text between child elements is dropped
// on parse so indented documents round-trip to the same tree.
//
// Parse builds a tree from an io.Reader using encoding/xml tokens, converting
// non UTF-8 input through the declared charset. Encode and Marshal serialize a
// tree, binding namespaces to the prefixes of a caller supplied table and
// declaring them once on the serialized root.
package xmltree
