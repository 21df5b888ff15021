package premis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jacoelho/premis/pkg/xmltree"
)

// Namespaces and root attribute values of PREMIS 2 documents.
const (
	Namespace      = "info:lc/xmlns/premis-v2"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	Version        = "2.2"
	SchemaLocation = Namespace + " http://www.loc.gov/standards/premis/v2/premis-v2-3.xsd"
)

// Prefix selects the tag family of an identifier segment.
type Prefix string

// Identifier segment prefixes.
const (
	PrefixObject        Prefix = "object"
	PrefixRelatedObject Prefix = "relatedObject"
	PrefixEvent         Prefix = "event"
	PrefixAgent         Prefix = "agent"
	PrefixDependency    Prefix = "dependency"
	PrefixLinkingObject Prefix = "linkingObject"
	PrefixLinkingAgent  Prefix = "linkingAgent"
	PrefixLinkingEvent  Prefix = "linkingEvent"
)

var (
	xsiType           = xmltree.Name{Space: XSINamespace, Local: "type"}
	xsiSchemaLocation = xmltree.Name{Space: XSINamespace, Local: "schemaLocation"}
	versionAttr       = xmltree.Name{Local: "version"}
)

// Resolve maps a tag and prefix to a PREMIS qualified name. With a prefix
// the first letter of tag is upper-cased and the prefix prepended:
//
//	Resolve("objectIdentifier", "linking") // {info:lc/xmlns/premis-v2}linkingObjectIdentifier
func Resolve(tag string, prefix Prefix) xmltree.Name {
	if prefix == "" {
		return xmltree.Name{Space: Namespace, Local: tag}
	}
	return xmltree.Name{Space: Namespace, Local: string(prefix) + capitalize(tag)}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IdentifierName returns the name of the outer identifier segment,
// relatedObjectIdentification for PrefixRelatedObject and
// <prefix>Identifier otherwise. An empty prefix is treated as PrefixObject.
func (p Prefix) IdentifierName() xmltree.Name {
	p = p.orDefault()
	if p == PrefixRelatedObject {
		return Resolve("Identification", p)
	}
	return Resolve("Identifier", p)
}

// IsLinking reports whether segments of this prefix carry a role.
func (p Prefix) IsLinking() bool {
	return strings.Contains(string(p), "linking")
}

func (p Prefix) orDefault() Prefix {
	if p == "" {
		return PrefixObject
	}
	return p
}

// Namespaces returns a new prefix to namespace table for serialization.
// Each call returns a fresh map, so callers may modify it freely.
func Namespaces() map[string]string {
	return map[string]string{
		"premis": Namespace,
		"xsi":    XSINamespace,
	}
}

func name(tag string) xmltree.Name {
	return Resolve(tag, "")
}
